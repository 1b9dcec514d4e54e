package rop

const UnknownExceptionBrand = "UnknownException"

var unknownException = BrandedError(UnknownExceptionBrand)

// UnknownException wraps a failure of unknown shape, such as a recovered
// panic or an error returned by code outside the Result discipline.
type UnknownException struct {
	*Base
}

func NewUnknownException(cause any) *UnknownException {
	return &UnknownException{Base: unknownException.Wrap(cause, "Unknown error")}
}
