package consistency

import (
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// SACOptPrecolour computes the same fixpoint as SAC1Precolour, amortised
// per Bessiere and Debruyne (2008): for each (v,a) it keeps a supporting
// domain D_{v,a} (the arc-consistent closure of D with v pinned to a) and
// a pending delta of removals not yet folded into it. AC-3 runs on every
// D_{v,a} once, and afterwards again only when a removal from another
// supporting domain has added to that delta. When a supporting domain
// fails to close, a is dropped from D(v) and every other supporting
// domain that relied on (v,a) is invalidated in turn.
func SACOptPrecolour[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1], f *domain.Map[V0, V1]) (*domain.Map[V0, V1], bool) {
	res, ok := AC3Precolour(g0, g1, f)
	if !ok {
		return nil, false
	}

	type key struct {
		v V0
		a V1
	}

	domains := make(map[key]*domain.Map[V0, V1])
	q := make(map[key]map[key]struct{})
	pending := make(map[key]struct{})

	for _, i := range g0.Vertices() {
		values, _ := res.Get(i)
		for _, a := range values {
			k := key{i, a}

			dom := res.Clone()
			dom.SetSingleton(i, a)
			domains[k] = dom

			delta := make(map[key]struct{})
			for _, b := range values {
				if b != a {
					delta[key{i, b}] = struct{}{}
				}
			}
			q[k] = delta
			pending[k] = struct{}{}
		}
	}

	for len(pending) > 0 {
		var k key
		for p := range pending {
			k = p
			break
		}
		delete(pending, k)

		dom := domains[k]
		for other := range q[k] {
			dom.Remove(other.v, other.a)
		}

		if refined, ok := AC3Precolour(g0, g1, dom); ok {
			q[k] = make(map[key]struct{})
			domains[k] = refined
		} else {
			res.Remove(k.v, k.a)
			if res.IsEmpty(k.v) {
				return nil, false
			}
			for other, m := range domains {
				if m.Remove(k.v, k.a) {
					if q[other] == nil {
						q[other] = make(map[key]struct{})
					}
					q[other][k] = struct{}{}
					pending[other] = struct{}{}
				}
			}
		}
	}

	return res, true
}

// SACOpt runs SACOptPrecolour starting from the uniform domain.
func SACOpt[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1]) (*domain.Map[V0, V1], bool) {
	return SACOptPrecolour[V0, V1](g0, g1, nil)
}
