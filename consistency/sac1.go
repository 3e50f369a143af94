package consistency

import (
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// SAC1Precolour runs singleton-arc-consistency starting from the partial
// domain f: AC-3 first, then repeated passes that probe each remaining
// (v,a) by running AC-3 on a clone of the domain with D(v) pinned to {a};
// a probe failure removes a from the live domain directly, not from the
// clone. Returns the refined domain, or (nil, false) if some vertex's
// domain was driven empty.
func SAC1Precolour[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], f *domain.Map[V0, V1]) (*domain.Map[V0, V1], bool) {
	d, ok := AC3Precolour(g0, g1, f)
	if !ok {
		return nil, false
	}

	changed := true
	for changed {
		changed = false
		for _, v := range g0.Vertices() {
			values, _ := d.Get(v)
			for _, a := range values {
				if !d.Contains(v, a) {
					// Removed earlier in this same pass.
					continue
				}

				probe := d.Clone()
				probe.SetSingleton(v, a)
				if _, ok := AC3Precolour(g0, g1, probe); !ok {
					d.Remove(v, a)
					changed = true
				}
			}
			if d.IsEmpty(v) {
				return nil, false
			}
		}
	}

	return d, true
}

// SAC1 runs SAC1Precolour starting from the uniform domain.
func SAC1[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1]) (*domain.Map[V0, V1], bool) {
	return SAC1Precolour[V0, V1](g0, g1, nil)
}
