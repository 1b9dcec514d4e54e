package rop

import (
	"errors"
	"fmt"
)

var ErrUnreachable = errors.New("rop: exhaustive switch guard reached")

// ExhaustiveSwitchGuard belongs in the default branch of a switch over a closed
// set of variants. Reaching it means a variant was added without a case.
func ExhaustiveSwitchGuard(v any) {
	panic(fmt.Errorf("%w: unhandled %T", ErrUnreachable, v))
}
