// Package commands contains the use cases that change customer or order state.
//
// Every handler follows the same skeleton: validate the inputs as value objects,
// load what it needs through the gateways, apply the entity behavior, persist,
// and wrap the outcome in a result.Result. Domain validation errors become
// logical failures with their message kept verbatim; any other error becomes
// an internal failure keeping the original fault.
package commands
