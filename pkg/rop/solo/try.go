package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/ropx/pkg/rop"
)

// TryCatch runs fn and turns a returned error or a panic into an
// UnknownException whose cause is the error or the panic value.
func TryCatch[T any](ctx context.Context,
	fn func(ctx context.Context) (T, error)) rop.Result[T, *rop.UnknownException] {
	return TryCatchWith(ctx, fn, rop.NewUnknownException)
}

// TryCatchWith is TryCatch building the error with errorFn. A nil errorFn,
// or one returning no formal error, falls back to UnknownException, which E
// must then accept.
func TryCatchWith[T any, E rop.BaseError](ctx context.Context,
	fn func(ctx context.Context) (T, error),
	errorFn func(cause any) E) rop.Result[T, E] {

	if errorFn == nil {
		errorFn = unknownAs[E]
	}

	out, cause, failed := attempt(ctx, fn)
	if failed {
		err := errorFn(cause)
		if !rop.IsBaseError(err) {
			err = unknownAs[E](cause)
		}
		return rop.Err[T](err)
	}
	return rop.Ok[E](out)
}

func attempt[T any](ctx context.Context,
	fn func(ctx context.Context) (T, error)) (out T, cause any, failed bool) {

	defer func() {
		if p := recover(); p != nil {
			cause, failed = p, true
		}
	}()

	out, err := fn(ctx)
	if err != nil {
		return out, err, true
	}
	return out, nil, false
}

func unknownAs[E rop.BaseError](cause any) E {
	e, ok := any(rop.NewUnknownException(cause)).(E)
	if !ok {
		var zero E
		panic(fmt.Errorf("%w: %T cannot hold %s", rop.ErrNotFormal, zero, rop.UnknownExceptionBrand))
	}
	return e
}

// ResultableFn adapts fn, which may return its failure either wrapped in the
// result or as a raw formal error in the second slot. A raw error takes
// precedence and is lifted into Err; otherwise the result passes through.
func ResultableFn[A, T any, E rop.BaseError](
	fn func(ctx context.Context, a A) (rop.Result[T, E], E)) func(ctx context.Context, a A) rop.Result[T, E] {

	return func(ctx context.Context, a A) rop.Result[T, E] {
		r, raw := fn(ctx, a)
		if rop.IsBaseError(raw) {
			return rop.Err[T](raw)
		}
		return r
	}
}
