package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads-sub000/digraph"
)

func TestContractVerticesRewritesIncidentEdges(t *testing.T) {
	g := digraph.New[int]()
	for _, v := range []int{1, 2, 3, 4} {
		g.AddVertex(v)
	}
	// 3 -> 2 -> 1, 2 -> 4
	g.AddEdge(3, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 4)

	require.NoError(t, g.ContractVertices(1, 2))

	assert.False(t, g.HasVertex(2))
	assert.True(t, g.HasEdge(3, 1))
	assert.True(t, g.HasEdge(1, 4))
	// The former 2->1 edge is absorbed into the merge, not turned into a
	// self-loop, because vertex 2 never had a self-loop of its own.
	assert.False(t, g.HasEdge(1, 1))
}

func TestContractVerticesPreservesExistingSelfLoop(t *testing.T) {
	g := digraph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(2, 2)
	g.AddEdge(1, 2)

	require.NoError(t, g.ContractVertices(1, 2))
	assert.True(t, g.HasEdge(1, 1))
}

func TestContractVerticesSelfContractionIsError(t *testing.T) {
	g := digraph.New[int]()
	g.AddVertex(1)
	err := g.ContractVertices(1, 1)
	assert.ErrorIs(t, err, digraph.ErrSelfContraction)
}

func TestContractIfAlwaysTrueMergesTheSecondVertexIntoTheFirst(t *testing.T) {
	g := digraph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(1, 2)

	removed := g.ContractIf(func(a, b int) bool { return a < b }, func(a, b int) bool { return true })
	assert.Len(t, removed, 1)
	assert.False(t, g.HasVertex(2))
	assert.True(t, g.HasVertex(1))
}

func TestContractIfSnapshotOrderDeterminesSurvivors(t *testing.T) {
	g := digraph.New[int]()
	for _, v := range []int{1, 2, 3} {
		g.AddVertex(v)
	}
	// Every pair satisfies p; lexicographic order means 1 absorbs 2 and 3.
	removed := g.ContractIf(func(a, b int) bool { return a < b }, func(a, b int) bool { return true })
	assert.ElementsMatch(t, []int{2, 3}, removed)
	assert.True(t, g.HasVertex(1))
	assert.Equal(t, 1, g.VertexCount())
}
