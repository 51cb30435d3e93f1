package chain

import (
	"context"

	"github.com/ib-77/bricks/pkg/bricks/result"
)

type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[T, E](v))
}

func FromError[T, E any](ctx context.Context, e E) Chain[T, E] {
	return Start(ctx, result.Err[T](e))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return result.Result[T, E]
func (c Chain[T, E]) Then(onValue func(ctx context.Context, t T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onValue(c.ctx, c.res.Unwrap())}
}

// Map transforms the value to a new value of the same type
func (c Chain[T, E]) Map(onValue func(ctx context.Context, t T) T) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: result.Ok[T, E](onValue(c.ctx, c.res.Unwrap()))}
}

// Validate keeps the value if validate accepts it, otherwise switches to the
// returned error.
func (c Chain[T, E]) Validate(validate func(ctx context.Context, t T) (valid bool, e E)) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	if valid, e := validate(c.ctx, c.res.Unwrap()); !valid {
		return Chain[T, E]{ctx: c.ctx, res: result.Err[T](e)}
	}
	return c
}

// RepeatUntil applies onValue at least once and stops on an error or as soon
// as until holds for the current value.
func (c Chain[T, E]) RepeatUntil(onValue func(ctx context.Context, t T) result.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	for {
		c = c.Then(onValue)

		if c.res.IsError() || until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

// While applies onValue as long as the chain holds a value accepted by while.
func (c Chain[T, E]) While(onValue func(ctx context.Context, t T) result.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsValue() && while(c.ctx, c.res.Unwrap()) {
		c = c.Then(onValue)
	}
	return c
}

// Or returns the first chain holding a value, or c when none does.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsValue() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsValue() {
			return alt
		}
	}
	return c
}

// And returns the first chain holding an error, or the last one when all
// hold values.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsError() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects without changing the result. Nil callbacks
// are skipped.
func (c Chain[T, E]) Ensure(onValue func(context.Context, T), onError func(context.Context, E)) Chain[T, E] {
	if c.res.IsError() {
		if onError != nil {
			onError(c.ctx, c.res.UnwrapError())
		}
		return c
	}

	if onValue != nil {
		onValue(c.ctx, c.res.Unwrap())
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T, E]) Finally(onValue func(context.Context, T) T, onError func(context.Context, E) T) T {
	return result.Match(c.res,
		func(t T) T { return onValue(c.ctx, t) },
		func(e E) T { return onError(c.ctx, e) })
}

// Switch continues the chain with a step producing a new value type
func Switch[T, U, E any](c Chain[T, E], onValue func(context.Context, T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: result.AndThen(c.res, func(t T) result.Result[U, E] { return onValue(c.ctx, t) }),
	}
}

// MapTo continues the chain with a pure transformation to a new value type
func MapTo[T, U, E any](c Chain[T, E], onValue func(context.Context, T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: result.Map(c.res, func(t T) U { return onValue(c.ctx, t) }),
	}
}
