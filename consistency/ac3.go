package consistency

import (
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// AC3Precolour runs AC-3 (Mackworth 1977) starting from the partial domain
// f. Any vertex of g0 absent from f is assigned the full vertex set of g1.
// Returns the refined domain, or (nil, false) if some vertex's domain was
// driven empty.
func AC3Precolour[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], f *domain.Map[V0, V1]) (*domain.Map[V0, V1], bool) {
	d := cloneOrNew(f)
	fillMissing(g0, g1, d)

	type task struct {
		x, y V0
		dir  bool
	}

	worklist := make(map[task]struct{})
	for _, e := range g0.Edges() {
		worklist[task{e.From, e.To, false}] = struct{}{}
		worklist[task{e.To, e.From, true}] = struct{}{}
	}

	// items[v] holds every task whose witness side (y) is v; when v's
	// domain shrinks, those tasks must be retried.
	items := make(map[V0][]task)
	for _, v := range g0.Vertices() {
		items[v] = nil
	}
	for t := range worklist {
		items[t.y] = append(items[t.y], t)
	}

	for len(worklist) > 0 {
		var t task
		for k := range worklist {
			t = k
			break
		}
		delete(worklist, t)

		if reduce(t.x, t.y, t.dir, d, g1) {
			if d.IsEmpty(t.x) {
				return nil, false
			}
			for _, item := range items[t.x] {
				worklist[item] = struct{}{}
			}
		}
	}

	return d, true
}

// AC3 runs AC3Precolour starting from the uniform domain.
func AC3[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1]) (*domain.Map[V0, V1], bool) {
	return AC3Precolour[V0, V1](g0, g1, nil)
}
