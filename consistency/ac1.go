package consistency

import (
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// AC1Precolour runs AC-1 to fixpoint starting from the partial domain f.
// Any vertex of g0 absent from f is assigned the full vertex set of g1.
// Returns the refined domain, or (nil, false) if some vertex's domain was
// driven empty.
func AC1Precolour[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], f *domain.Map[V0, V1]) (*domain.Map[V0, V1], bool) {
	d := cloneOrNew(f)
	fillMissing(g0, g1, d)

	edges := g0.Edges()
	changed := true
	for changed {
		changed = false
		for _, e := range edges {
			if reduce(e.From, e.To, false, d, g1) {
				changed = true
				if d.IsEmpty(e.From) {
					return nil, false
				}
			}
			if reduce(e.To, e.From, true, d, g1) {
				changed = true
				if d.IsEmpty(e.To) {
					return nil, false
				}
			}
		}
	}

	return d, true
}

// AC1 runs AC1Precolour starting from the uniform domain (every vertex of
// g0 mapped to the full vertex set of g1).
func AC1[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1]) (*domain.Map[V0, V1], bool) {
	return AC1Precolour[V0, V1](g0, g1, nil)
}
