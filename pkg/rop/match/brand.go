package match

// Branded values carry their discriminant as a brand string.
type Branded interface {
	Brand() string
}

func ByBrand[V Branded](variants ...string) Matcher[V, string] {
	return On(func(v V) string { return v.Brand() }, variants...)
}

// Brand binds v to a brand matcher without declared variants.
func Brand[V Branded](v V) Subject[V, string] {
	return ByBrand[V]().Of(v)
}
