package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of: a success value T, an Error[E], or nothing.
// The zero value is Empty. A Result is the sole owner of whichever payload
// is active; combinators build fresh Results rather than mutating in place.
type Result[T any, E comparable] struct {
	id        uuid.UUID
	createdAt time.Time
	content   Content
	value     T
	err       Error[E]
}

// InvalidAccessError is the panic payload for a payload access that does
// not match the Result's current content. It signals a programmer error,
// never a domain failure.
type InvalidAccessError struct {
	Method  string
	Content Content
}

func (e *InvalidAccessError) Error() string {
	return fmt.Sprintf("outcome: %s called on %s result", e.Method, e.Content)
}

func Success[T any, E comparable](value T) Result[T, E] {
	return Result[T, E]{
		content:   ContentValue,
		value:     value,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any, E comparable](err Error[E]) Result[T, E] {
	return Result[T, E]{
		content:   ContentError,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Empty[T any, E comparable]() Result[T, E] {
	return Result[T, E]{
		content:   ContentEmpty,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Propagate re-types a non-value Result, carrying the error payload,
// identity and creation time forward unchanged. It panics with
// *InvalidAccessError on a Value result, since a value cannot be re-typed.
func Propagate[In, Out any, E comparable](from Result[In, E]) Result[Out, E] {
	if from.content == ContentValue {
		panic(&InvalidAccessError{Method: "Propagate", Content: from.content})
	}
	return Result[Out, E]{
		content:   from.content,
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Type reports which payload the Result currently holds.
func (r Result[T, E]) Type() Content {
	return r.content
}

func (r Result[T, E]) IsValue() bool {
	return r.content == ContentValue
}

func (r Result[T, E]) IsError() bool {
	return r.content == ContentError
}

func (r Result[T, E]) IsEmpty() bool {
	return r.content == ContentEmpty
}

// Get returns the owned value. It panics with *InvalidAccessError unless
// Type() == ContentValue; misuse is never converted into a zero value.
func (r Result[T, E]) Get() T {
	if r.content != ContentValue {
		panic(&InvalidAccessError{Method: "Get", Content: r.content})
	}
	return r.value
}

// Err returns the owned error. It panics with *InvalidAccessError unless
// Type() == ContentError.
func (r Result[T, E]) Err() Error[E] {
	if r.content != ContentError {
		panic(&InvalidAccessError{Method: "Err", Content: r.content})
	}
	return r.err
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Match dispatches at most one of the handlers: onValue with the owned
// value, or onError with the owned error. Empty dispatches neither. Nil
// handlers are skipped. This is the state-safe alternative to Get/Err.
func (r Result[T, E]) Match(onValue func(T), onError func(Error[E])) {
	switch r.content {
	case ContentValue:
		if onValue != nil {
			onValue(r.value)
		}
	case ContentError:
		if onError != nil {
			onError(r.err)
		}
	}
}

// Recover collapses the Result into a plain T: the owned value as is, the
// fallback applied to the owned error, or the zero value of T when Empty.
func (r Result[T, E]) Recover(apply func(Error[E]) T) T {
	switch r.content {
	case ContentValue:
		return r.value
	case ContentError:
		return apply(r.err)
	default:
		var zero T
		return zero
	}
}
