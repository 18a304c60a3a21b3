package customer

import (
	"fmt"
	"net/mail"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const maxEmailLength = 255

var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")

// Email is a bare e-mail address, compared case-insensitively.
type Email struct {
	address string
	guard   guard.ConstructorGuard
}

// NewEmail accepts a bare address only: display names ("Ana <ana@x.com>") are rejected.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	if len(value) > maxEmailLength {
		return Email{}, errs.NewValueIsOutOfRangeError("email length", len(value), 1, maxEmailLength)
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if addr.Address != value {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a bare address", value))
	}

	return Email{address: value, guard: guard.NewConstructorGuard()}, nil
}

// String returns the address as given.
func (e Email) String() string {
	return e.address
}

func (e Email) IsEqual(other Email) bool {
	return strings.EqualFold(e.address, other.address)
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
