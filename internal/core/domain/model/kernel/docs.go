// Package kernel provides the shared value objects of the orders domain.
//
// The package includes:
//   - UUID: identifier of customers, orders and order items
//   - Money: a non-negative decimal amount used for prices, line values and totals
//
// Values are immutable and can only be obtained through their constructors.
// A zero value fails Validate.
package kernel
