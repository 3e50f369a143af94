package polymorphism

import (
	"github.com/WhatDothLife/triads-sub000/consistency"
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
	"github.com/WhatDothLife/triads-sub000/indicator"
	"github.com/WhatDothLife/triads-sub000/search"
)

// Find decides whether h admits a polymorphism satisfying kind, and
// returns it on success. Siggers first attempts Commutative, then WNU-3,
// falling back to the Siggers indicator directly — any of the three
// succeeding is sufficient, since each implies a Siggers polymorphism
// exists.
func Find(h *digraph.Digraph[int], kind Kind, opts ...indicator.Option) (*Polymorphism, bool) {
	switch kind {
	case Commutative:
		return findSimple(h, indicator.Commutative, opts...)
	case Majority:
		return findSimple(h, indicator.Majority, opts...)
	case Siggers:
		if p, ok := findSimple(h, indicator.Commutative, opts...); ok {
			return p, true
		}
		if p, ok := findSimple(h, indicator.WNU3, opts...); ok {
			return p, true
		}

		return findSimple(h, indicator.Siggers, opts...)
	case WNU3:
		return findSimple(h, indicator.WNU3, opts...)
	case WNU34:
		return findSimple(h, indicator.WNU34, opts...)
	default:
		return nil, false
	}
}

// FindCommutativeRestricted searches for a commutative polymorphism
// using the level-restricted indicator graph (only components whose
// representative pair sits at equal level survive) — the form used when
// the target digraph is a triad.
func FindCommutativeRestricted(h *digraph.Digraph[int], level func(int) int, opts ...indicator.Option) (*Polymorphism, bool) {
	g, d := indicator.BuildCommutativeRestricted(h, level, opts...)

	return runSearch(g, h, d)
}

func findSimple(h *digraph.Digraph[int], kind indicator.Kind, opts ...indicator.Option) (*Polymorphism, bool) {
	g, d := indicator.Build(h, kind, opts...)

	return runSearch(g, h, d)
}

func runSearch(g *digraph.Digraph[digraph.Tuple], h *digraph.Digraph[int], d *domain.Map[digraph.Tuple, int]) (*Polymorphism, bool) {
	hom, ok := search.FindPrecolour(g, h, d, consistency.AC3Precolour[digraph.Tuple, int])
	if !ok {
		return nil, false
	}

	return &Polymorphism{values: hom}, true
}
