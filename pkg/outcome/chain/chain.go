package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result with context to enable fluent chaining.
type Chain[T any, E comparable] struct {
	ctx context.Context
	res outcome.Result[T, E]
}

// Start creates a new chain from an outcome.Result.
func Start[T any, E comparable](ctx context.Context, res outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any, E comparable](ctx context.Context, value T) Chain[T, E] {
	return Start(ctx, outcome.Success[T, E](value))
}

// FromError creates a new chain from a domain error.
func FromError[T any, E comparable](ctx context.Context, err outcome.Error[E]) Chain[T, E] {
	return Start(ctx, outcome.Fail[T](err))
}

// Result returns the underlying outcome.Result.
func (c Chain[T, E]) Result() outcome.Result[T, E] {
	return c.res
}

// Then composes a function that already returns an outcome.Result.
// Error and Empty states short-circuit without invoking it.
func (c Chain[T, E]) Then(onValue func(ctx context.Context, t T) outcome.Result[T, E]) Chain[T, E] {
	if !c.res.IsValue() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onValue(c.ctx, c.res.Get())}
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[T, E]) Map(onValue func(ctx context.Context, t T) T) Chain[T, E] {
	if !c.res.IsValue() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: outcome.Success[T, E](onValue(c.ctx, c.res.Get()))}
}

// Ensure triggers side effects for the current state without changing the
// result. Nil callbacks are safe.
func (c Chain[T, E]) Ensure(onValue func(context.Context, T), onError func(context.Context, outcome.Error[E])) Chain[T, E] {
	c.res.Match(
		func(v T) {
			if onValue != nil {
				onValue(c.ctx, v)
			}
		},
		func(err outcome.Error[E]) {
			if onError != nil {
				onError(c.ctx, err)
			}
		})
	return c
}

// Recover collapses the chain to a final value: the owned value, the
// fallback applied to the owned error, or the zero value of T when Empty.
func (c Chain[T, E]) Recover(fallback func(ctx context.Context, err outcome.Error[E]) T) T {
	return c.res.Recover(func(err outcome.Error[E]) T {
		return fallback(c.ctx, err)
	})
}

// Then chains a function that switches the chain to a new value type.
func Then[In, Out any, E comparable](c Chain[In, E], onValue func(context.Context, In) outcome.Result[Out, E]) Chain[Out, E] {
	return Chain[Out, E]{
		ctx: c.ctx,
		res: outcome.OnSuccess(c.res, func(v In) outcome.Result[Out, E] {
			return onValue(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation to a new value type.
func Map[In, Out any, E comparable](c Chain[In, E], onValue func(context.Context, In) Out) Chain[Out, E] {
	return Then(c, func(ctx context.Context, v In) outcome.Result[Out, E] {
		return outcome.Success[Out, E](onValue(ctx, v))
	})
}

// ThenTry chains a function that returns (Out, error), converting a non-nil
// error to a failure carrying the given code.
func ThenTry[In, Out any, E comparable](c Chain[In, E], code E, try func(context.Context, In) (Out, error)) Chain[Out, E] {
	return Then(c, func(ctx context.Context, v In) outcome.Result[Out, E] {
		out, err := try(ctx, v)
		return outcome.Try(out, err, code)
	})
}
