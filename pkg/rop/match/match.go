package match

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrNoHandler     = errors.New("match: no handler for discriminant")
	ErrNotExhaustive = errors.New("match: cases are not exhaustive")
)

// Cases maps every discriminant value to the handler of its variant.
type Cases[V any, D comparable, Z any] map[D]func(v V) Z

// Matcher reads the discriminant of V values. The zero Matcher is not usable.
type Matcher[V any, D comparable] struct {
	discriminant func(v V) D
	variants     []D
}

// On fixes the discriminant of a union. When variants are given the matcher
// also verifies that every mapping passed to With covers all of them.
func On[V any, D comparable](discriminant func(v V) D, variants ...D) Matcher[V, D] {
	if discriminant == nil {
		panic("match: nil discriminant")
	}
	return Matcher[V, D]{
		discriminant: discriminant,
		variants:     slices.Clone(variants),
	}
}

func (m Matcher[V, D]) Variants() []D {
	return slices.Clone(m.variants)
}

func (m Matcher[V, D]) Discriminant(v V) D {
	return m.discriminant(v)
}

// Of binds a value to the matcher, ready to be dispatched by With.
func (m Matcher[V, D]) Of(v V) Subject[V, D] {
	return Subject[V, D]{matcher: m, value: v}
}

// Subject is a value bound to the matcher that will dispatch it.
type Subject[V any, D comparable] struct {
	matcher Matcher[V, D]
	value   V
}

func (s Subject[V, D]) Value() V {
	return s.value
}

// With calls the handler registered for the subject's discriminant and returns
// its result. It panics when the handler is missing or when the cases do not
// cover every declared variant.
func With[V any, D comparable, Z any](s Subject[V, D], cases Cases[V, D, Z]) Z {
	z, err := TryWith(s, cases)
	if err != nil {
		panic(err)
	}
	return z
}

// TryWith is With reporting lookup failures as errors.
func TryWith[V any, D comparable, Z any](s Subject[V, D], cases Cases[V, D, Z]) (Z, error) {
	var zero Z

	if err := Check(s.matcher, cases); err != nil {
		return zero, err
	}

	d := s.matcher.discriminant(s.value)
	handler, ok := cases[d]
	if !ok || handler == nil {
		return zero, fmt.Errorf("%w %v", ErrNoHandler, d)
	}

	return handler(s.value), nil
}

// Check reports the declared variants that cases leave without a handler.
// A matcher without declared variants accepts any cases.
func Check[V any, D comparable, Z any](m Matcher[V, D], cases Cases[V, D, Z]) error {
	var missing []string
	for _, d := range m.variants {
		if h, ok := cases[d]; !ok || h == nil {
			missing = append(missing, fmt.Sprint(d))
		}
	}

	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return fmt.Errorf("%w: missing %s", ErrNotExhaustive, strings.Join(missing, ", "))
}
