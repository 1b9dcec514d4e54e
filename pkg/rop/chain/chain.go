package chain

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/match"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any, E rop.BaseError] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T any, E rop.BaseError](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[E rop.BaseError, T any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Ok[E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.Result[T, E]
func (c *Chain[T, E]) Then(onSuccess func(context.Context, T) rop.Result[T, E]) *Chain[T, E] {
	return Then(c, onSuccess)
}

// Map chains a pure transformation function
func (c *Chain[T, E]) Map(onSuccess func(context.Context, T) T) *Chain[T, E] {
	return Map(c, onSuccess)
}

// MapErr replaces the error of a failed chain
func (c *Chain[T, E]) MapErr(onError func(context.Context, E) E) *Chain[T, E] {
	return MapErr(c, onError)
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.result, func(r T) {
			onSuccess(c.ctx, r)
		}),
	}
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U any, E rop.BaseError](c *Chain[T, E],
	onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.Switch(c.result, func(r T) rop.Result[U, E] {
			return onSuccess(c.ctx, r)
		}),
	}
}

// Try chains a function that returns (U, error). A returned error or a
// panic becomes errorFn(cause); a nil errorFn yields rop.UnknownException.
func Try[T, U any, E rop.BaseError](c *Chain[T, E],
	tryOnSuccess func(context.Context, T) (U, error),
	errorFn func(cause any) E) *Chain[U, E] {
	return Then(c, func(ctx context.Context, r T) rop.Result[U, E] {
		return solo.TryCatchWith(ctx, func(ctx context.Context) (U, error) {
			return tryOnSuccess(ctx, r)
		}, errorFn)
	})
}

// Map chains a pure transformation function
func Map[T, U any, E rop.BaseError](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(r T) U {
			return onSuccess(c.ctx, r)
		}),
	}
}

func MapErr[T any, E, R rop.BaseError](c *Chain[T, E], onError func(context.Context, E) R) *Chain[T, R] {
	return &Chain[T, R]{
		ctx: c.ctx,
		result: solo.MapErr(c.result, func(err E) R {
			return onError(c.ctx, err)
		}),
	}
}

// CatchAll recovers any error; the returned chain can no longer fail.
func CatchAll[T any, E rop.BaseError](c *Chain[T, E], onError func(context.Context, E) T) *Chain[T, rop.Never] {
	return &Chain[T, rop.Never]{
		ctx: c.ctx,
		result: solo.CatchAllErr(c.result, func(err E) T {
			return onError(c.ctx, err)
		}),
	}
}

// CatchAllBrands recovers any error with the handler registered for its brand.
func CatchAllBrands[T any, E rop.BaseError](c *Chain[T, E], brands match.Cases[E, string, T]) *Chain[T, rop.Never] {
	return &Chain[T, rop.Never]{
		ctx:    c.ctx,
		result: solo.CatchAllBrands(c.result, brands),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any, E rop.BaseError](c *Chain[T, E],
	onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.result,
		func(r T) U { return onSuccess(c.ctx, r) },
		func(err E) U { return onFailure(c.ctx, err) })
}
