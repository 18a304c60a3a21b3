// Package order implements the order aggregate and its status state machine.
//
// An Order is created in Started with no items. Items are replaced wholesale
// while the order is being composed, then the order moves through the kitchen
// lifecycle:
//
//	Started ──> AwaitingPayment ──> Received ──> InPreparation ──> Ready ──> Finished
//	   any ──────────────────────────────────────────────────────────────> Finished
//
// Every guarded transition is a method on Order. Calling one from the wrong
// status returns an errs.ValueIsInvalidError naming the required status and
// leaves the order untouched. The total is always derived from the items.
package order
