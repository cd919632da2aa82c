package scheme

import "errors"

var (
	// ErrNameNotFound means a requested scheme name is not in the list searched.
	// The selection and the catalog have diverged; callers must not paper over it.
	ErrNameNotFound = errors.New("color scheme not found")

	// ErrEmptySubset means the lightness subset needed for a default selection is empty.
	ErrEmptySubset = errors.New("no color schemes for lightness")

	// ErrEmptyCatalog means the initializer was given no schemes at all.
	ErrEmptyCatalog = errors.New("color scheme catalog is empty")

	ErrUnknownDirection = errors.New("unknown navigation direction")
	ErrUnknownLightness = errors.New("unknown lightness")
	ErrUnknownAction    = errors.New("unknown action")
)
