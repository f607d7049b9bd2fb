package outcome

// Match is the free-function form of Result.Match. It delegates to the
// method: same dispatch rule, same no-op on Empty.
func Match[T any, E comparable](r Result[T, E], onValue func(T), onError func(Error[E])) {
	r.Match(onValue, onError)
}

// OnSuccess binds a fallible transformation: on a Value result it returns
// apply(value); on Error or Empty it propagates the state to Result[Out, E]
// without invoking apply. A free function because the output type parameter
// cannot be introduced by a method.
func OnSuccess[In, Out any, E comparable](r Result[In, E], apply func(In) Result[Out, E]) Result[Out, E] {
	if r.content == ContentValue {
		return apply(r.value)
	}
	return Propagate[In, Out](r)
}

// Try lifts Go's (value, error) convention into a Result: a nil error
// gives Success, otherwise Fail with the error text and the given code.
func Try[T any, E comparable](value T, err error, code E) Result[T, E] {
	if err != nil {
		return Fail[T](NewError(err.Error(), code))
	}
	return Success[T, E](value)
}
