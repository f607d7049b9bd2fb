// Package chain provides a fluent wrapper around outcome.Result[T, E]
// for building synchronous pipelines without branching at each step.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain from a Result, value, or error
// - Then (method and free): compose result-returning steps, short-circuiting
// - Map (method and free): transform the successful value
// - Ensure: run side effects on the current state without changing it
// - Recover: collapse the chain into a final value
//
// Error and Empty states pass through every step untouched; callbacks run
// only on the Value state and receive the chain's context.
package chain
