package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The numeric order encodes the
// lifecycle sequence and the kitchen priority used when listing active orders.
type Status int

const (
	Unknown Status = iota
	Started
	AwaitingPayment
	Received
	InPreparation
	Ready
	Finished
)

// getStatusStrings maps every status to its API name.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Started:         "Started",
		AwaitingPayment: "AwaitingPayment",
		Received:        "Received",
		InPreparation:   "InPreparation",
		Ready:           "Ready",
		Finished:        "Finished",
	}
}

// NewStatus converts a persisted or transported status code.
//
// Returns:
//   - the Status for codes 1 through 6
//   - ValueIsOutOfRangeError for any other code
func NewStatus(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// ActiveStatuses are the statuses shown on the kitchen board.
func ActiveStatuses() []Status {
	return []Status{Received, InPreparation, Ready}
}

// Validate rejects Unknown and any code outside the defined range.
func (s Status) Validate() error {
	if s < Started || s > Finished {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Started), int(Finished))
	}
	return nil
}

// String returns the status name, e.g. "InPreparation".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code is the integer persisted and exchanged over the API.
func (s Status) Code() int {
	return int(s)
}

// CloseForPayment transitions Started to AwaitingPayment.
func (s Status) CloseForPayment() (Status, error) {
	if err := s.require(Started, "close for payment"); err != nil {
		return Unknown, err
	}
	return AwaitingPayment, nil
}

// ConfirmPayment transitions AwaitingPayment to Received.
func (s Status) ConfirmPayment() (Status, error) {
	if err := s.require(AwaitingPayment, "confirm payment"); err != nil {
		return Unknown, err
	}
	return Received, nil
}

// StartPreparation transitions Received to InPreparation.
func (s Status) StartPreparation() (Status, error) {
	if err := s.require(Received, "start preparation"); err != nil {
		return Unknown, err
	}
	return InPreparation, nil
}

// CompletePreparation transitions InPreparation to Ready.
func (s Status) CompletePreparation() (Status, error) {
	if err := s.require(InPreparation, "complete preparation"); err != nil {
		return Unknown, err
	}
	return Ready, nil
}

// Finish is allowed from any status, Finished included.
func (s Status) Finish() (Status, error) {
	return Finished, nil
}

func (s Status) require(source Status, action string) error {
	if s != source {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("order must be %s to %s, but it is %s", source, action, s),
		)
	}
	return nil
}
