package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidSchemeName is returned when a scheme name is empty or padded.
	ErrInvalidSchemeName = errors.New("invalid color scheme name")

	// ErrDuplicateSchemeName is returned when a catalog repeats a name.
	ErrDuplicateSchemeName = errors.New("duplicate color scheme name")

	// ErrInvalidColor is returned when a palette entry is not a #rrggbb hex color.
	ErrInvalidColor = errors.New("invalid color")
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (v ValidationError) Error() string {
	if v.Field == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors aggregates multiple validation failures.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Add records a validation error for a field.
func (v *ValidationErrors) Add(field string, err error) {
	if err == nil {
		return
	}

	var nested *ValidationErrors
	if errors.As(err, &nested) {
		for _, sub := range nested.Errors {
			v.Errors = append(v.Errors, ValidationError{
				Field:   joinField(field, sub.Field),
				Message: sub.Message,
				Cause:   sub.Cause,
			})
		}
		return
	}

	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: err.Error(),
		Cause:   err,
	})
}

// AddMessage records a validation error with a custom message.
func (v *ValidationErrors) AddMessage(field, message string) {
	if message == "" {
		return
	}
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// Err returns nil if there are no errors, otherwise returns the validation error.
func (v *ValidationErrors) Err() error {
	if v == nil || len(v.Errors) == 0 {
		return nil
	}
	return v
}

// Error implements error.
func (v *ValidationErrors) Error() string {
	if v == nil || len(v.Errors) == 0 {
		return "validation failed"
	}
	if len(v.Errors) == 1 {
		return v.Errors[0].Error()
	}

	var builder strings.Builder
	for i, err := range v.Errors {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(err.Error())
	}

	return builder.String()
}

// Is allows errors.Is to match nested validation errors.
func (v *ValidationErrors) Is(target error) bool {
	if v == nil {
		return false
	}
	for _, err := range v.Errors {
		if err.Cause != nil && errors.Is(err.Cause, target) {
			return true
		}
	}
	return false
}

func joinField(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	default:
		return prefix + "." + field
	}
}

// Validate checks the scheme name and every palette entry.
func (cs ColorScheme) Validate() error {
	validation := &ValidationErrors{}
	if cs.Name == "" || strings.TrimSpace(cs.Name) != cs.Name {
		validation.Add("name", fmt.Errorf("%w: %q", ErrInvalidSchemeName, cs.Name))
	}
	validation.Add("meta.colors", cs.Meta.Colors.Validate())
	return validation.Err()
}

// Validate checks that background and foreground are set and every set color parses.
func (p Palette) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(p.Background) == "" {
		validation.AddMessage("background", "background is required")
	}
	if strings.TrimSpace(p.Foreground) == "" {
		validation.AddMessage("foreground", "foreground is required")
	}
	for _, entry := range p.Entries() {
		if err := ValidateHex(entry.Value); err != nil {
			validation.Add(entry.Name, err)
		}
	}
	return validation.Err()
}

// ValidateHex reports whether value is a #rrggbb color.
func ValidateHex(value string) error {
	if len(value) != 7 || value[0] != '#' {
		return fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	if _, err := colorful.Hex(value); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return nil
}
