package consistency

import (
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// Engine is the signature shared by every pre-coloured consistency
// algorithm in this package, excluding PC-2 (which has no notion of a
// per-vertex domain to hand back — it only answers a yes/no question).
// A nil f is equivalent to an empty domain: every source vertex starts
// with the full target vertex set.
type Engine[V0, V1 comparable] func(g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], f *domain.Map[V0, V1]) (*domain.Map[V0, V1], bool)

// cloneOrNew returns an independent copy of f, or a fresh empty map if f
// is nil.
func cloneOrNew[V0, V1 comparable](f *domain.Map[V0, V1]) *domain.Map[V0, V1] {
	if f == nil {
		return domain.New[V0, V1]()
	}

	return f.Clone()
}

// fillMissing assigns the full vertex set of g1 to every vertex of g0
// that has no entry in d yet.
func fillMissing[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], d *domain.Map[V0, V1]) {
	target := g1.Vertices()
	for _, v := range g0.Vertices() {
		if _, ok := d.Get(v); !ok {
			d.Set(v, target)
		}
	}
}

// reduce removes from D(x) any value with no witness in D(y). When dir is
// false the witness condition is an edge x->y in g1; when dir is true it
// is an edge y->x. Reports whether D(x) shrank.
func reduce[V0, V1 comparable](x, y V0, dir bool, d *domain.Map[V0, V1], g1 *digraph.Digraph[V1]) bool {
	xs, _ := d.Get(x)
	ys, _ := d.Get(y)

	changed := false
	for _, vx := range xs {
		supported := false
		for _, vy := range ys {
			var ok bool
			if dir {
				ok = g1.HasEdge(vy, vx)
			} else {
				ok = g1.HasEdge(vx, vy)
			}
			if ok {
				supported = true
				break
			}
		}
		if !supported {
			d.Remove(x, vx)
			changed = true
		}
	}

	return changed
}
