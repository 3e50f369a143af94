package search

import (
	"github.com/WhatDothLife/triads-sub000/consistency"
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// Search runs engine once against d0 (nil meaning the uniform domain),
// then backtracks over the refined domain one vertex at a time: for each
// candidate value it pins the vertex to that value, reruns engine, and
// recurses into the remainder of the order on success. It returns the
// first all-singleton domain it reaches, or (nil, false) if no candidate
// at any level leads to success.
func Search[V0 comparable, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], d0 *domain.Map[V0, V1], engine consistency.Engine[V0, V1], opts ...Option[V0, V1]) (*domain.Map[V0, V1], bool) {
	var cfg options[V0, V1]
	for _, opt := range opts {
		opt(&cfg)
	}

	d1, ok := engine(g0, g1, d0)
	if !ok {
		return nil, false
	}

	order := cfg.order
	if order == nil {
		order = g0.Vertices()
	}

	return step(g0, g1, d1, order, engine)
}

func step[V0 comparable, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], d *domain.Map[V0, V1], remaining []V0, engine consistency.Engine[V0, V1]) (*domain.Map[V0, V1], bool) {
	if len(remaining) == 0 {
		return d, true
	}

	u := remaining[0]
	rest := remaining[1:]

	candidates, _ := d.Get(u)
	for _, a := range candidates {
		next := d.Clone()
		next.SetSingleton(u, a)

		refined, ok := engine(g0, g1, next)
		if !ok {
			continue
		}

		if result, ok := step(g0, g1, refined, rest, engine); ok {
			return result, true
		}
	}

	return nil, false
}

// Extract reads off a concrete homomorphism g0 -> g1 from a domain map,
// taking an arbitrary element of each vertex's candidate set. Callers
// normally invoke it only on a domain returned by a successful Search,
// where every candidate set is a singleton.
func Extract[V0 comparable, V1 comparable](g0 *digraph.Digraph[V0], d *domain.Map[V0, V1]) map[V0]V1 {
	out := make(map[V0]V1, g0.VertexCount())
	for _, v := range g0.Vertices() {
		vals, ok := d.Get(v)
		if ok && len(vals) > 0 {
			out[v] = vals[0]
		}
	}

	return out
}

// FindPrecolour runs Search starting from d0 and extracts a concrete
// homomorphism on success.
func FindPrecolour[V0 comparable, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], d0 *domain.Map[V0, V1], engine consistency.Engine[V0, V1], opts ...Option[V0, V1]) (map[V0]V1, bool) {
	d, ok := Search(g0, g1, d0, engine, opts...)
	if !ok {
		return nil, false
	}

	return Extract(g0, d), true
}

// Find runs FindPrecolour starting from the uniform domain.
func Find[V0 comparable, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], engine consistency.Engine[V0, V1], opts ...Option[V0, V1]) (map[V0]V1, bool) {
	return FindPrecolour[V0, V1](g0, g1, nil, engine, opts...)
}
