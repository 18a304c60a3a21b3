// Package gateways translates between domain entities and the record shapes
// used by persistence and the external APIs. It is the only package that
// knows both sides; use cases talk to the ports.*Gateway interfaces.
package gateways
