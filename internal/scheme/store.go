package scheme

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/tOgg1/hue/internal/logging"
	"github.com/tOgg1/hue/internal/models"
)

// ChangeFunc observes a successful transition.
type ChangeFunc func(prev, next State)

// Store holds one State for a caller and applies actions to it one at a time.
type Store struct {
	mu        sync.Mutex
	state     State
	lastErr   error
	listeners map[int]ChangeFunc
	nextID    int
	logger    zerolog.Logger
}

// NewStore builds the initial state from catalog.
func NewStore(catalog []models.ColorScheme) (*Store, error) {
	state, err := NewState(catalog)
	if err != nil {
		return nil, err
	}
	return NewStoreFromState(state), nil
}

// NewStoreFromState wraps an existing snapshot.
func NewStoreFromState(state State) *Store {
	return &Store{
		state:     state,
		listeners: make(map[int]ChangeFunc),
		logger:    logging.Component("scheme"),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error of the most recent dispatch, if it failed.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Dispatch reduces action against the held state. On failure the state is kept.
func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	prev := s.state
	next, err := Reduce(prev, action)
	s.lastErr = err
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn().Err(err).
			Str("action", ActionType(action)).
			Str("current", prev.Current.Name).
			Msg("transition rejected")
		return err
	}
	s.state = next
	listeners := make([]ChangeFunc, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	s.logger.Debug().
		Str("action", ActionType(action)).
		Str("from", prev.Current.Name).
		Str("to", next.Current.Name).
		Str("lightness", string(next.Lightness)).
		Msg("transition")

	for _, fn := range listeners {
		fn(prev, next)
	}
	return nil
}

// Actions returns the call-style façade bound to this store.
// Failures are available from Err after each call.
func (s *Store) Actions() DispatchActions {
	return NewDispatchActions(func(a Action) {
		_ = s.Dispatch(a)
	})
}

// OnChange registers fn and returns a function that removes it.
func (s *Store) OnChange(fn ChangeFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
