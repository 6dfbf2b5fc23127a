// Package orchestrator wires the loader → body preparation → renderer pipeline
// so callers can turn a contact document into a table fragment with a single
// call.
package orchestrator
