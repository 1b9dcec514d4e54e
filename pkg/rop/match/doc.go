// Package match provides exhaustive dispatch over a closed set of variants
// that share a common discriminant.
//
// A Matcher is configured once with the function that reads the discriminant
// and, optionally, the full list of variants. Each call then supplies a value
// and a Cases mapping from discriminant to handler:
//
//	byKind := match.On(func(s Shape) string { return s.Kind }, "circle", "square")
//	area := match.With(byKind.Of(s), match.Cases[Shape, string, float64]{
//		"circle": func(s Shape) float64 { return math.Pi * s.R * s.R },
//		"square": func(s Shape) float64 { return s.Side * s.Side },
//	})
//
// There is no default branch. A value whose discriminant has no handler is a
// defect in the calling code and With panics; TryWith reports it as an error.
package match
