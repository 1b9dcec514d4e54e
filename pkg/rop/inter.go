package rop

// BaseError is the contract of a formal error: a failure value that carries
// a brand identifying its variant, a message and an optional cause.
//
// The identity marker is unexported, so only *Base and types embedding
// *Base implement BaseError.
type BaseError interface {
	error
	// Brand returns the tag identifying the error variant
	Brand() string
	// Message returns the human-readable message
	Message() string
	// Cause returns the wrapped failure value, nil if there is none
	Cause() any

	formal() *Base
}

// Never is a BaseError no type can implement. Result[T, Never] therefore
// always holds a value; see OkResult.
type Never interface {
	BaseError
	never()
}
