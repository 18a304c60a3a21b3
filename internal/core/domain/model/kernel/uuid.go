package kernel

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies customers, orders and order items.
//
// The zero value (the nil UUID) is never a valid identifier: every constructor
// rejects it, so an order can not be stored or looked up by an empty id.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	itemID, err := kernel.UUIDFromString(req.ItemID)
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual form of an identifier.
//
// Parameters:
//   - s: any form accepted by uuid.Parse (hyphenated, braced, urn-prefixed or bare hex)
//
// Returns:
//   - ValueIsRequiredError when s is blank
//   - ValueIsInvalidError when s is malformed or the nil UUID
func UUIDFromString(s string) (UUID, error) {
	if strings.TrimSpace(s) == "" {
		return UUID{}, errs.NewValueIsRequiredError("id")
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}

	return fromGoogle(id)
}

// UUIDFromBytes builds an identifier from its 16-byte binary form.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}

	return fromGoogle(id)
}

// UUIDFrom wraps an already parsed identifier, as handed over by the HTTP
// binding layer or by persistence records.
func UUIDFrom(id uuid.UUID) (UUID, error) {
	return fromGoogle(id)
}

func fromGoogle(id uuid.UUID) (UUID, error) {
	newID := UUID{id: id}
	if err := newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns a copy of the underlying uuid.UUID.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether u is the nil identifier. Order items submitted
// without an id carry the zero UUID until one is generated for them.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
