package customer

import (
	"strings"
	"unicode/utf8"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const maxNameLength = 255

var ErrNameIsNotConstructed = errs.NewValueIsRequiredError("Name must be created via NewName")

// Name is a customer display name, never blank.
type Name struct {
	value string
	guard guard.ConstructorGuard
}

// NewName trims surrounding spaces and rejects blank or overlong values.
func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, errs.NewValueIsRequiredError("name")
	}

	if n := utf8.RuneCountInString(value); n > maxNameLength {
		return Name{}, errs.NewValueIsOutOfRangeError("name length", n, 1, maxNameLength)
	}

	return Name{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (n Name) String() string {
	return n.value
}

func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}
