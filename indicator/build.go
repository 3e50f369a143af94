package indicator

import (
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// Build constructs the indicator graph for kind over target digraph h
// (vertices numbered 0..n-1), along with any domain entries the identity
// or the supplied options pre-colour.
func Build(h *digraph.Digraph[int], kind Kind, opts ...Option) (*digraph.Digraph[digraph.Tuple], *domain.Map[digraph.Tuple, int]) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	g, groups := product(h, kind)
	d := domainFor(g, groups, kind == Majority, cfg)

	return g, d
}

// BuildCommutativeRestricted builds the commutative indicator graph, then
// retains only the weakly connected components whose representative
// (a,b) satisfies level(a) == level(b) — the restriction used when
// searching for a commutative polymorphism of a triad.
func BuildCommutativeRestricted(h *digraph.Digraph[int], level func(int) int, opts ...Option) (*digraph.Digraph[digraph.Tuple], *domain.Map[digraph.Tuple, int]) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	g, _ := product(h, Commutative)

	restricted := digraph.New[digraph.Tuple]()
	for _, comp := range g.Components() {
		verts := comp.Vertices()
		if len(verts) == 0 {
			continue
		}
		coords := verts[0].Values()
		if level(coords[0]) == level(coords[1]) {
			restricted = digraph.Union(restricted, comp)
		}
	}

	d := domainFor(restricted, nil, false, cfg)

	return restricted, d
}

// product builds the power graph for kind and applies its contraction
// groups, returning both the resulting graph and the groups applied (the
// majority pre-colouring needs the groups' representatives afterwards).
func product(h *digraph.Digraph[int], kind Kind) (*digraph.Digraph[digraph.Tuple], [][]digraph.Tuple) {
	n := h.VertexCount()

	var g *digraph.Digraph[digraph.Tuple]
	var groups [][]digraph.Tuple

	switch kind {
	case Commutative:
		g = digraph.Power(h, 2)
		groups = CommutativeGroups(n)
	case Majority:
		g = digraph.Power(h, 3)
		groups = WNUGroups(3, n)
	case Siggers:
		g = digraph.Power(h, 4)
		groups = SiggersGroups(n)
	case WNU3:
		g = digraph.Power(h, 3)
		groups = WNUGroups(3, n)
	case WNU34:
		g = digraph.Union(digraph.Power(h, 3), digraph.Power(h, 4))
		groups = WNUDualGroups(3, 4, n)
	}

	applyGroups(g, groups)

	return g, groups
}

// applyGroups contracts every group's later elements into its first
// element. A union-find over representatives means a vertex contracted
// away by an earlier group is resolved to its current representative
// before being used in a later group, and re-identifying vertices that
// already share a representative is a no-op. An edge joining the two
// merged vertices becomes a self-loop on the representative.
func applyGroups(g *digraph.Digraph[digraph.Tuple], groups [][]digraph.Tuple) {
	rep := make(map[digraph.Tuple]digraph.Tuple)
	find := func(t digraph.Tuple) digraph.Tuple {
		for {
			r, ok := rep[t]
			if !ok {
				return t
			}
			t = r
		}
	}

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		base := find(group[0])
		for _, v := range group[1:] {
			cur := find(v)
			if cur == base {
				continue
			}
			// ContractVertices drops an edge between base and cur; in the
			// quotient that edge is a loop on the merged vertex.
			loop := g.HasEdge(base, cur) || g.HasEdge(cur, base)
			if err := g.ContractVertices(base, cur); err != nil {
				continue
			}
			if loop {
				_, _ = g.AddEdge(base, base)
			}
			rep[cur] = base
		}
	}
}

func domainFor(g *digraph.Digraph[digraph.Tuple], groups [][]digraph.Tuple, precolourMajority bool, cfg options) *domain.Map[digraph.Tuple, int] {
	d := domain.New[digraph.Tuple, int]()

	if precolourMajority {
		for _, group := range groups {
			if len(group) == 0 {
				continue
			}
			d.SetSingleton(group[0], group[0].At(0))
		}
	}

	if cfg.conservative {
		for _, v := range g.Vertices() {
			d.Set(v, dedupValues(v.Values()))
		}
	}

	if cfg.idempotent {
		for _, v := range g.Vertices() {
			if allSame(v.Values()) {
				d.SetSingleton(v, v.At(0))
			}
		}
	}

	return d
}

func dedupValues(vals []int) []int {
	seen := make(map[int]struct{}, len(vals))
	out := make([]int, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

func allSame(vals []int) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[0] {
			return false
		}
	}

	return true
}
