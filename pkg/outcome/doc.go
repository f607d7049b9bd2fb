// Package outcome provides a tri-state result container: a Result[T, E]
// holds exactly one of a success value T, a typed Error[E], or nothing
// (the Empty state), with combinators for inspecting and transforming it
// without sentinel values.
//
// Highlights:
// - Success/Fail/Empty: construct Result[T, E]; the zero value is Empty
// - Type/IsValue/IsError/IsEmpty: inspect the discriminant
// - Get/Err: unchecked accessors that panic with *InvalidAccessError on misuse
// - Match (method and free): dispatch exactly one handler by state
// - OnSuccess: bind a fallible transformation, short-circuiting on error
// - Recover: collapse a Result back into a plain value
// - Try: lift Go's (T, error) convention into a Result
//
// Domain failures travel as Error[E] data; the only abrupt control flow is
// the fail-fast panic on wrong-state access.
package outcome
