package scheme

import (
	"fmt"

	"github.com/tOgg1/hue/internal/models"
)

// NextPrev returns the neighbour of currentName in list, wrapping at both ends.
func NextPrev(list []models.ColorScheme, currentName string, direction models.Direction) (models.ColorScheme, error) {
	index := indexOf(list, currentName)
	if index < 0 {
		return models.ColorScheme{}, fmt.Errorf("%w: %q", ErrNameNotFound, currentName)
	}

	n := len(list)
	switch direction {
	case models.DirectionNext:
		return list[(index+1)%n], nil
	case models.DirectionPrev:
		return list[(index-1+n)%n], nil
	default:
		return models.ColorScheme{}, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}
}

// Find returns the scheme named name.
func Find(list []models.ColorScheme, name string) (models.ColorScheme, error) {
	index := indexOf(list, name)
	if index < 0 {
		return models.ColorScheme{}, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return list[index], nil
}

func indexOf(list []models.ColorScheme, name string) int {
	for i, cs := range list {
		if cs.Name == name {
			return i
		}
	}
	return -1
}
