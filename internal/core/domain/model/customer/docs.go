// Package customer models the people orders are placed for.
//
// A Customer is created once, on registration, and is never updated afterwards.
// Its fields are validated value objects:
//   - Cpf: the Brazilian individual taxpayer number, stored as 11 digits
//   - Email: a bare e-mail address
//   - Name: a non-blank display name
//
// Walk-in orders are attached to the reserved default customer (see DefaultCpf).
package customer
