package scheme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/hue/internal/models"
)

func TestStoreDispatch(t *testing.T) {
	store, err := NewStore(testCatalog())
	require.NoError(t, err)
	require.Equal(t, darkState(), store.State())

	var changes [][2]string
	stop := store.OnChange(func(prev, next State) {
		changes = append(changes, [2]string{prev.Current.Name, next.Current.Name})
	})

	require.NoError(t, store.Dispatch(SetNextPrev{Direction: models.DirectionNext}))
	require.Equal(t, "Dark B", store.State().Current.Name)

	require.NoError(t, store.Dispatch(SetLightness{Lightness: models.LightnessLight}))
	require.Equal(t, "Light A", store.State().Current.Name)

	err = store.Dispatch(SetColorScheme{Name: "missing"})
	require.ErrorIs(t, err, ErrNameNotFound)
	require.ErrorIs(t, store.Err(), ErrNameNotFound)
	require.Equal(t, "Light A", store.State().Current.Name)

	stop()
	require.NoError(t, store.Dispatch(SetNextPrev{Direction: models.DirectionPrev}))
	require.Nil(t, store.Err())

	require.Equal(t, [][2]string{{"Dark A", "Dark B"}, {"Dark B", "Light A"}}, changes)
}

func TestStoreActions(t *testing.T) {
	store, err := NewStore(testCatalog())
	require.NoError(t, err)
	actions := store.Actions()

	actions.SetCurrentLightness(models.LightnessLight)
	actions.SetNextPrevColorScheme(models.DirectionPrev)
	require.Equal(t, "Light C", store.State().Current.Name)

	actions.SetCurrentColorScheme("Light B")
	require.Equal(t, "Light B", store.State().Current.Name)

	actions.SetCurrentColorScheme("nope")
	require.ErrorIs(t, store.Err(), ErrNameNotFound)
	require.Equal(t, "Light B", store.State().Current.Name)
}

func TestStoreConcurrentDispatchKeepsInvariant(t *testing.T) {
	store, err := NewStore(testCatalog())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = store.Dispatch(SetNextPrev{Direction: models.DirectionNext})
				return
			}
			_ = store.Dispatch(SetLightness{Lightness: models.LightnessLight})
		}(i)
	}
	wg.Wait()

	require.True(t, store.State().Consistent())
}

func TestNewStoreEmptyCatalog(t *testing.T) {
	_, err := NewStore(nil)
	require.ErrorIs(t, err, ErrEmptyCatalog)
}
