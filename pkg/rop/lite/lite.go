package lite

import (
	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/match"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

func Map[E rop.BaseError, T, R any](onSuccess func(r T) R) func(
	input rop.Result[T, E]) rop.Result[R, E] {
	return func(input rop.Result[T, E]) rop.Result[R, E] {
		return solo.Map(input, onSuccess)
	}
}

func MapErr[T any, E, R rop.BaseError](onError func(err E) R) func(
	input rop.Result[T, E]) rop.Result[T, R] {
	return func(input rop.Result[T, E]) rop.Result[T, R] {
		return solo.MapErr(input, onError)
	}
}

func CatchAllErr[T any, E rop.BaseError](onError func(err E) T) func(
	input rop.Result[T, E]) rop.OkResult[T] {
	return func(input rop.Result[T, E]) rop.OkResult[T] {
		return solo.CatchAllErr(input, onError)
	}
}

func CatchAllBrands[T any, E rop.BaseError](brands match.Cases[E, string, T]) func(
	input rop.Result[T, E]) rop.OkResult[T] {
	return func(input rop.Result[T, E]) rop.OkResult[T] {
		return solo.CatchAllBrands(input, brands)
	}
}

func Switch[In, Out any, E rop.BaseError](onSuccess func(r In) rop.Result[Out, E]) func(
	input rop.Result[In, E]) rop.Result[Out, E] {
	return func(input rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Switch(input, onSuccess)
	}
}

func Tee[E rop.BaseError, T any](onSuccess func(r T)) func(
	input rop.Result[T, E]) rop.Result[T, E] {
	return func(input rop.Result[T, E]) rop.Result[T, E] {
		return solo.Tee(input, onSuccess)
	}
}

func Finally[E rop.BaseError, T, Out any](onSuccess func(r T) Out,
	onError func(err E) Out) func(input rop.Result[T, E]) Out {
	return func(input rop.Result[T, E]) Out {
		return solo.Finally(input, onSuccess, onError)
	}
}

// Pipe applies stages left to right. Stages keep running after a failure;
// the combinators themselves pass the error through.
func Pipe[T any, E rop.BaseError](input rop.Result[T, E],
	stages ...func(input rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	for _, stage := range stages {
		input = stage(input)
	}
	return input
}
