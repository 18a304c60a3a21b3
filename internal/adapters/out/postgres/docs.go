// Package postgres holds the shared pieces of the Postgres persistence adapter:
// connection setup, schema migrations and driver error translation.
// The data sources themselves live in the customerrepo and orderrepo subpackages.
package postgres
