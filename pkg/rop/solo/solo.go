package solo

import (
	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/match"
)

func Map[T, R any, E rop.BaseError](input rop.Result[T, E],
	onSuccess func(r T) R) rop.Result[R, E] {

	if input.IsErr() {
		return rop.Err[R](input.Err())
	}
	return rop.Ok[E](onSuccess(input.Result()))
}

// MapErr replaces the error of a failure. onError must return a formal error.
func MapErr[T any, E, R rop.BaseError](input rop.Result[T, E],
	onError func(err E) R) rop.Result[T, R] {

	if input.IsErr() {
		return rop.Err[T](onError(input.Err()))
	}
	return rop.Ok[R](input.Result())
}

// CatchAllErr absorbs the error into a success value.
func CatchAllErr[T any, E rop.BaseError](input rop.Result[T, E],
	onError func(err E) T) rop.OkResult[T] {

	if input.IsErr() {
		return rop.Ok[rop.Never](onError(input.Err()))
	}
	return rop.Ok[rop.Never](input.Result())
}

// CatchAllBrands absorbs the error into a success value using the handler
// registered for its brand. A brand without a handler panics with
// match.ErrNoHandler.
func CatchAllBrands[T any, E rop.BaseError](input rop.Result[T, E],
	brands match.Cases[E, string, T]) rop.OkResult[T] {

	if input.IsErr() {
		return rop.Ok[rop.Never](match.With(match.Brand(input.Err()), brands))
	}
	return rop.Ok[rop.Never](input.Result())
}

func Switch[In, Out any, E rop.BaseError](input rop.Result[In, E],
	onSuccess func(r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsErr() {
		return rop.Err[Out](input.Err())
	}
	return onSuccess(input.Result())
}

func Tee[T any, E rop.BaseError](input rop.Result[T, E],
	onSuccess func(r T)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func Finally[T, Out any, E rop.BaseError](input rop.Result[T, E],
	onSuccess func(r T) Out,
	onError func(err E) Out) Out {

	if input.IsErr() {
		return onError(input.Err())
	}
	return onSuccess(input.Result())
}
