package order

import (
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreatedAtIsNotConstructed = errs.NewValueIsRequiredError("CreatedAt must be created via NewCreatedAt")

// CreatedAt is the moment an order was started. It is never the zero time.
type CreatedAt struct {
	at    time.Time
	guard guard.ConstructorGuard
}

// NewCreatedAt rejects the zero time and any instant ahead of the local clock.
func NewCreatedAt(at time.Time) (CreatedAt, error) {
	if at.IsZero() {
		return CreatedAt{}, errs.NewValueIsRequiredError("created at")
	}
	if at.After(time.Now()) {
		return CreatedAt{}, errs.NewValueIsInvalidErrorWithCause(
			"created at",
			fmt.Errorf("%s is in the future", at.Format(time.RFC3339)),
		)
	}
	return CreatedAt{at: at.UTC(), guard: guard.NewConstructorGuard()}, nil
}

// RestoreCreatedAt rebuilds a stored instant. Only the zero time is rejected:
// the clock that stamped the order may run ahead of the local one.
func RestoreCreatedAt(at time.Time) (CreatedAt, error) {
	if at.IsZero() {
		return CreatedAt{}, errs.NewValueIsRequiredError("created at")
	}
	return CreatedAt{at: at.UTC(), guard: guard.NewConstructorGuard()}, nil
}

// Now returns the current instant as a CreatedAt.
func Now() CreatedAt {
	return CreatedAt{at: time.Now().UTC(), guard: guard.NewConstructorGuard()}
}

// Time returns the instant in UTC.
func (c CreatedAt) Time() time.Time {
	return c.at
}

// Validate returns ErrCreatedAtIsNotConstructed for the zero value.
func (c CreatedAt) Validate() error {
	return c.guard.Validate(ErrCreatedAtIsNotConstructed)
}
