package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrConflict          = errors.New("conflict")
	ErrCorruptRecord     = errors.New("corrupt record")
)

// IsValidation reports whether err carries a domain validation failure.
// Joined errors are inspected as a tree, so a constructor that reports
// several violations at once still classifies as a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsRequired)
}

// IsNotFound reports whether err carries an ObjectNotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// ObjectNotFoundError is returned when a lookup by identifier yields nothing.
// Entity reads as the subject of the message, e.g. "order" or "customer with cpf".
type ObjectNotFoundError struct {
	Entity string
	ID     any
}

func NewObjectNotFoundError(entity string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{Entity: entity, ID: id}
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a format or state rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError is raised by persistence collaborators when a write collides
// with existing state, e.g. a duplicated customer or a vanished parent order.
// It is not a validation error: use cases surface it as an internal failure.
type ConflictError struct {
	Entity string
	Reason string
	Cause  error
}

func NewConflictError(entity, reason string) *ConflictError {
	return &ConflictError{Entity: entity, Reason: reason}
}

func NewConflictErrorWithCause(entity, reason string, cause error) *ConflictError {
	return &ConflictError{Entity: entity, Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrConflict, e.Entity, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// CorruptRecordError is returned when a stored record no longer forms a valid
// aggregate. Unwrap stops at ErrCorruptRecord so the domain errors inside
// Cause never classify the failure as a validation error.
type CorruptRecordError struct {
	Entity string
	ID     any
	Cause  error
}

func NewCorruptRecordError(entity string, id any, cause error) *CorruptRecordError {
	return &CorruptRecordError{Entity: entity, ID: id, Cause: cause}
}

func (e *CorruptRecordError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrCorruptRecord, e.Entity, sanitize(e.ID)), e.Cause)
}

func (e *CorruptRecordError) Unwrap() error {
	return ErrCorruptRecord
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	if str, ok := v.(string); ok {
		s = str
	}
	return strings.ReplaceAll(s, "\n", " ")
}
