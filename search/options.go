package search

// Option configures optional behavior of Search.
type Option[V0 comparable, V1 comparable] func(*options[V0, V1])

type options[V0 comparable, V1 comparable] struct {
	order []V0
}

// WithOrder fixes the order in which source vertices are branched on
// during search. Passing nil (the default) uses g0's own vertex order,
// which is unspecified and may differ from one Search call to the next.
func WithOrder[V0 comparable, V1 comparable](order []V0) Option[V0, V1] {
	return func(o *options[V0, V1]) {
		o.order = order
	}
}
