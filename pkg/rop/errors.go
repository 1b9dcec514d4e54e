package rop

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFormal     = errors.New("rop: not a formal error")
	ErrEmptyBrand    = errors.New("rop: empty brand")
	ErrUnwrapOnErr   = errors.New("rop: unwrap called on failure result")
	ErrUnwrapErrOnOk = errors.New("rop: unwrap error called on success result")
)

// Base is the formal error value. It is immutable once constructed.
// Embed *Base in a struct to declare a dedicated Go type for a variant.
type Base struct {
	id        uuid.UUID
	createdAt time.Time
	brand     string
	message   string
	cause     any
}

func newError(brand, message string, cause any) *Base {
	return &Base{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		brand:     brand,
		message:   message,
		cause:     cause,
	}
}

func (e *Base) formal() *Base {
	return e
}

func (e *Base) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.brand, e.message, e.cause)
	}
	return e.brand + ": " + e.message
}

func (e *Base) Brand() string {
	return e.brand
}

func (e *Base) Message() string {
	return e.message
}

func (e *Base) Cause() any {
	return e.cause
}

// Id identifies this error instance
func (e *Base) Id() uuid.UUID {
	return e.id
}

// CreatedAt time creation (UTC)
func (e *Base) CreatedAt() time.Time {
	return e.createdAt
}

// Unwrap exposes the cause to errors.Is and errors.As when it is an error.
func (e *Base) Unwrap() error {
	if err, ok := e.cause.(error); ok {
		return err
	}
	return nil
}

// Is reports whether target is a formal error of the same brand. Brands, not
// Go types, identify variants.
func (e *Base) Is(target error) bool {
	t, ok := target.(BaseError)
	if !ok || !IsBaseError(t) {
		return false
	}
	return t.Brand() == e.brand
}

func (e *Base) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("brand", e.brand),
		slog.String("message", e.message),
		slog.String("id", e.id.String()),
		slog.Time("created_at", e.createdAt),
	}
	if e.cause != nil {
		attrs = append(attrs, slog.Any("cause", e.cause))
	}
	return slog.GroupValue(attrs...)
}

// Variant constructs formal errors of a single brand.
type Variant struct {
	brand string
}

// BrandedError declares an error variant. Variants declared separately with
// the same brand are the same variant.
func BrandedError(brand string) Variant {
	if brand == "" {
		panic(ErrEmptyBrand)
	}
	return Variant{brand: brand}
}

func (v Variant) Brand() string {
	return v.brand
}

func (v Variant) New(message string) *Base {
	return newError(v.brand, message, nil)
}

func (v Variant) Newf(format string, args ...any) *Base {
	return newError(v.brand, fmt.Sprintf(format, args...), nil)
}

// Wrap builds an error of this variant chained to cause.
func (v Variant) Wrap(cause any, message string) *Base {
	return newError(v.brand, message, cause)
}

// Matches reports whether err, or an error it wraps, is of this variant.
func (v Variant) Matches(err error) bool {
	return errors.Is(err, &Base{brand: v.brand})
}

// IsBaseError reports whether v carries the formal error identity.
func IsBaseError(v any) bool {
	be, ok := v.(BaseError)
	return ok && !IsNil(be) && be.formal() != nil
}

// AsBaseError finds the first formal error in err's chain.
func AsBaseError(err error) (BaseError, bool) {
	var be BaseError
	if errors.As(err, &be) && IsBaseError(be) {
		return be, true
	}
	return nil, false
}
