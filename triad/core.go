package triad

import (
	"github.com/WhatDothLife/triads-sub000/consistency"
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

// IsCore reports whether the triad's digraph is a core — every
// endomorphism is an automorphism — detected as AC-3 run against itself
// collapsing every vertex's domain to a singleton. H(t) is a tree-shaped
// digraph, so AC-3's closure coincides with its endomorphism lattice.
func (t *Triad) IsCore() bool {
	g := t.Digraph()

	d, ok := consistency.AC3(g, g)
	if !ok {
		return false
	}

	return allSingletons(g, d)
}

// IsRootedCore reports whether the only endomorphism of the triad's
// digraph fixing the root (vertex 0) is the identity, detected as AC-3
// pre-coloured with root -> {root} collapsing every domain to a
// singleton.
func (t *Triad) IsRootedCore() bool {
	g := t.Digraph()

	pre := domain.New[int, int]()
	pre.SetSingleton(0, 0)

	d, ok := consistency.AC3Precolour(g, g, pre)
	if !ok {
		return false
	}

	return allSingletons(g, d)
}

func allSingletons(g *digraph.Digraph[int], d *domain.Map[int, int]) bool {
	for _, v := range g.Vertices() {
		if d.Size(v) != 1 {
			return false
		}
	}

	return true
}

// Level returns the net number of forward edges minus backward edges
// crossed to reach vertex v from the root along its arm. It panics if v
// does not exist in the triad's vertex numbering.
func Level(v int, t *Triad) int {
	count := v
	for _, arm := range t.arms {
		if count <= len(arm) {
			return levelArm(count, arm)
		}
		count -= len(arm)
	}

	panic("triad: vertex out of range")
}

func levelArm(count int, arm string) int {
	level := 0
	for i := 0; i < count; i++ {
		if arm[i] == '0' {
			level++
		} else {
			level--
		}
	}

	return level
}
