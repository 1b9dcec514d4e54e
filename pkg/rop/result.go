package rop

import "fmt"

// Void is the payload of effect-only results.
type Void = struct{}

// OkResult is a result statically known to be a success.
type OkResult[T any] = Result[T, Never]

// Result holds either a value or a formal error. Which slot is populated is
// the only discriminant. The zero Result is a success holding zero T.
type Result[T any, E BaseError] struct {
	value T
	err   E
}

func Ok[E BaseError, T any](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

// Err panics if err is not a formal error, nil included.
func Err[T any, E BaseError](err E) Result[T, E] {
	if !IsBaseError(err) {
		panic(fmt.Errorf("%w: %T", ErrNotFormal, err))
	}
	return Result[T, E]{err: err}
}

func OkVoid[E BaseError]() Result[Void, E] {
	return Result[Void, E]{}
}

// Unwrap returns the value of a success. It panics on a failure.
func Unwrap[T any, E BaseError](r Result[T, E]) T {
	if r.IsErr() {
		panic(fmt.Errorf("%w: %w", ErrUnwrapOnErr, r.err))
	}
	return r.value
}

// UnwrapErr returns the error of a failure. It panics on a success.
func UnwrapErr[T any, E BaseError](r Result[T, E]) E {
	if !r.IsErr() {
		panic(ErrUnwrapErrOnOk)
	}
	return r.err
}

func IsErr[T any, E BaseError](r Result[T, E]) bool {
	return r.IsErr()
}

func (r Result[T, E]) Result() T {
	return r.value
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) Value() (T, E) {
	return r.value, r.err
}

// IsErr is true when the error slot is populated with a formal error.
func (r Result[T, E]) IsErr() bool {
	return !IsNil(r.err) && IsBaseError(r.err)
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.IsErr()
}

func (r Result[T, E]) String() string {
	if r.IsErr() {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
