package consistency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads-sub000/consistency"
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/domain"
)

func directedCycle(t *testing.T, n int) *digraph.Digraph[int] {
	t.Helper()
	g := digraph.New[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g
}

var engines = map[string]func(*digraph.Digraph[int], *digraph.Digraph[int]) (*domain.Map[int, int], bool){
	"AC1":    consistency.AC1[int, int],
	"AC3":    consistency.AC3[int, int],
	"SAC1":   consistency.SAC1[int, int],
	"SACOpt": consistency.SACOpt[int, int],
}

func TestEnginesOnEmptyGraphReturnEmptyMap(t *testing.T) {
	g0 := digraph.New[int]()
	g1 := digraph.New[int]()

	for name, engine := range engines {
		d, ok := engine(g0, g1)
		require.True(t, ok, name)
		assert.Zero(t, d.Len(), name)
	}
}

func TestEnginesOnSingleVertexNoEdgesKeepTheFullTargetDomain(t *testing.T) {
	g0 := digraph.New[int]()
	g0.AddVertex(0)
	g1 := digraph.New[int]()
	g1.AddVertex(0)
	g1.AddVertex(1)

	for name, engine := range engines {
		d, ok := engine(g0, g1)
		require.True(t, ok, name)
		assert.Equal(t, 2, d.Size(0), name)
	}
}

func TestAC3OnIdentityReturnsEveryIdentityMapping(t *testing.T) {
	h := directedCycle(t, 3)
	d, ok := consistency.AC3[int, int](h, h)
	require.True(t, ok)

	for _, v := range h.Vertices() {
		assert.True(t, d.Contains(v, v))
	}
}

func TestAC3FailsWhenTargetHasNoEdges(t *testing.T) {
	g0 := digraph.New[int]()
	g0.AddVertex(0)
	g0.AddVertex(1)
	g0.AddEdge(0, 1)

	// g1 has no edges: no homomorphism from a single edge exists.
	g1 := digraph.New[int]()
	g1.AddVertex(0)
	g1.AddVertex(1)

	_, ok := consistency.AC3[int, int](g0, g1)
	assert.False(t, ok)
}

// A directed 4-cycle has no homomorphism into a directed 3-cycle (closing
// the loop would require 4 to be a multiple of 3), but every vertex of
// C3 trivially has both an in- and an out-neighbor, so arc consistency
// alone cannot detect the mismatch: it only examines one edge at a time.
// Pinning a single vertex, as SAC-1 does, forces the rest of the 4-cycle
// to singletons by the deterministic C3 successor/predecessor chain and
// exposes the contradiction when the chain closes.
func TestSAC1DetectsWhatAC3Misses(t *testing.T) {
	g0 := directedCycle(t, 4)
	g1 := directedCycle(t, 3)

	ac3, ok := consistency.AC3[int, int](g0, g1)
	require.True(t, ok, "AC-3 finds every C3 value locally supported")
	for _, v := range g0.Vertices() {
		assert.Equal(t, 3, ac3.Size(v), "AC-3 leaves domains untouched")
	}

	_, ok = consistency.SAC1[int, int](g0, g1)
	assert.False(t, ok, "SAC-1 must detect the cycle-length mismatch")
}

func TestSACOptMatchesSAC1Fixpoint(t *testing.T) {
	g0 := directedCycle(t, 4)
	g1 := directedCycle(t, 3)

	_, ok1 := consistency.SAC1[int, int](g0, g1)
	_, ok2 := consistency.SACOpt[int, int](g0, g1)
	assert.Equal(t, ok1, ok2)
	assert.False(t, ok1)
}

func TestPC2OnDirectedThreeCycleAgainstItself(t *testing.T) {
	h := directedCycle(t, 3)
	assert.True(t, consistency.PC2[int, int](h, h))
}

func TestPC2FailsWhenNoHomomorphismExists(t *testing.T) {
	g0 := directedCycle(t, 3)
	g1 := digraph.New[int]()
	g1.AddVertex(0)
	g1.AddVertex(1)
	g1.AddEdge(0, 1) // a single edge admits no 3-cycle homomorphism

	assert.False(t, consistency.PC2[int, int](g0, g1))
}

func TestPrecolouredVariantPreservesSingletonConstraint(t *testing.T) {
	g0 := digraph.New[int]()
	g0.AddVertex(0)
	g0.AddVertex(1)
	g0.AddEdge(0, 1)

	g1 := digraph.New[int]()
	g1.AddVertex(0)
	g1.AddVertex(1)
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 0)

	pre := domain.New[int, int]()
	pre.SetSingleton(0, 0)

	d, ok := consistency.AC3Precolour[int, int](g0, g1, pre)
	require.True(t, ok)
	assert.Equal(t, []int{0}, must(d.Get(0)))
}

func must(vals []int, ok bool) []int {
	if !ok {
		return nil
	}

	return vals
}
