package indicator

// Option configures the optional restrictions Build applies to the
// indicator graph's domain after contraction.
type Option func(*options)

type options struct {
	conservative bool
	idempotent   bool
}

// WithConservative restricts every I-vertex (x1,...,xk)'s image domain to
// {x1,...,xk}.
func WithConservative() Option {
	return func(o *options) {
		o.conservative = true
	}
}

// WithIdempotent restricts every diagonal I-vertex (x,...,x)'s image
// domain to {x}.
func WithIdempotent() Option {
	return func(o *options) {
		o.idempotent = true
	}
}
