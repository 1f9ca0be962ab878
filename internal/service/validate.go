package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/jaekwang-park/todo-lists/internal/model"
)

const (
	MinNameLength = 1
	MaxNameLength = 100
)

// ValidateListName checks the length of name and that no existing list
// already uses it. Length is checked first.
func ValidateListName(name string, existing []model.List) error {
	if err := validateLength("list name", name); err != nil {
		return err
	}
	for _, l := range existing {
		if l.Name == name {
			return fmt.Errorf("%w: list name %q is taken", ErrDuplicateName, name)
		}
	}
	return nil
}

func ValidateTodoName(name string) error {
	return validateLength("todo name", name)
}

func validateLength(field, value string) error {
	n := utf8.RuneCountInString(value)
	if n < MinNameLength || n > MaxNameLength {
		return fmt.Errorf("%w: %s must be between %d and %d characters, got %d",
			ErrInvalidLength, field, MinNameLength, MaxNameLength, n)
	}
	return nil
}
