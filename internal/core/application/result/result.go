// Package result provides the envelope every use case returns.
//
// A Result is exactly one of:
//   - Success: the operation completed and Data holds its output
//   - LogicalFailure: a business rule rejected the request; Message is user facing
//   - InternalFailure: something unexpected failed; Fault keeps the original error
package result

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

type Kind int

const (
	KindSuccess Kind = iota + 1
	KindLogicalFailure
	KindInternalFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindLogicalFailure:
		return "LogicalFailure"
	case KindInternalFailure:
		return "InternalFailure"
	default:
		return "Unknown"
	}
}

// Empty is the payload of operations that succeed without output.
type Empty struct{}

type Result[T any] struct {
	kind    Kind
	data    T
	message string
	fault   error
}

func Success[T any](data T) Result[T] {
	return Result[T]{kind: KindSuccess, data: data}
}

// Done is Success(Empty{}).
func Done() Result[Empty] {
	return Success(Empty{})
}

func LogicalFailure[T any](message string) Result[T] {
	return Result[T]{kind: KindLogicalFailure, message: message}
}

// LogicalFailuref formats the failure message.
func LogicalFailuref[T any](format string, args ...any) Result[T] {
	return LogicalFailure[T](fmt.Sprintf(format, args...))
}

// InternalFailure wraps fault. A nil fault is replaced so Fault never returns nil.
func InternalFailure[T any](fault error) Result[T] {
	if fault == nil {
		fault = errors.New("internal failure without cause")
	}
	return Result[T]{kind: KindInternalFailure, message: fault.Error(), fault: fault}
}

// FromError classifies err: domain validation and not-found errors become
// logical failures carrying their message verbatim, anything else becomes an
// internal failure.
func FromError[T any](err error) Result[T] {
	if errs.IsValidation(err) || errs.IsNotFound(err) {
		return LogicalFailure[T](err.Error())
	}
	return InternalFailure[T](err)
}

// Kind returns KindInternalFailure for the zero Result.
func (r Result[T]) Kind() Kind {
	if r.kind == 0 {
		return KindInternalFailure
	}
	return r.kind
}

func (r Result[T]) IsSuccess() bool {
	return r.kind == KindSuccess
}

func (r Result[T]) IsLogicalFailure() bool {
	return r.kind == KindLogicalFailure
}

func (r Result[T]) IsInternalFailure() bool {
	return r.Kind() == KindInternalFailure
}

// Data is the zero T unless the result is a success.
func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Message() string {
	if r.kind == 0 {
		return "result was never set"
	}
	return r.message
}

func (r Result[T]) Fault() error {
	if r.kind == 0 {
		return errors.New(r.Message())
	}
	return r.fault
}

// Map converts the payload of a success and carries failures over unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.IsSuccess() {
		return Success(f(r.data))
	}
	return Recast[T, U](r)
}

// Recast moves a failure to another payload type. Recasting a success
// yields an internal failure since its payload can not be carried over.
func Recast[T, U any](r Result[T]) Result[U] {
	switch r.Kind() {
	case KindLogicalFailure:
		return LogicalFailure[U](r.message)
	case KindSuccess:
		return InternalFailure[U](fmt.Errorf("can not recast a successful %T result", r.data))
	default:
		return InternalFailure[U](r.Fault())
	}
}
