// Package queries contains the read-only use cases. Handlers return a
// result.Result like the commands do, so callers map both the same way.
package queries
