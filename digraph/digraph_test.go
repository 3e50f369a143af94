package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads-sub000/digraph"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := digraph.New[int]()
	assert.True(t, g.AddVertex(1))
	assert.False(t, g.AddVertex(1))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdgeRequiresEndpoints(t *testing.T) {
	g := digraph.New[int]()
	_, err := g.AddEdge(1, 2)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)

	g.AddVertex(1)
	g.AddVertex(2)
	added, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))

	added, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	assert.False(t, added, "re-adding an existing edge reports no change")
}

func TestRemoveVertexCascades(t *testing.T) {
	g := digraph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	outSet, inSet, ok := g.RemoveVertex(2)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{3}, outSet)
	assert.ElementsMatch(t, []int{1}, inSet)

	assert.False(t, g.HasVertex(2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 3))

	outDeg, err := g.OutDegree(1)
	require.NoError(t, err)
	assert.Zero(t, outDeg)
}

func TestSelfLoopsPermitted(t *testing.T) {
	g := digraph.New[int]()
	g.AddVertex(1)
	added, err := g.AddEdge(1, 1)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, g.HasEdge(1, 1))
}

func TestEdgesAndVerticesOnAbsentVertex(t *testing.T) {
	g := digraph.New[int]()
	_, err := g.OutDegree(99)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)

	_, _, ok := g.RemoveVertex(99)
	assert.False(t, ok)
}

func TestEmptyGraph(t *testing.T) {
	g := digraph.New[int]()
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
	assert.Empty(t, g.Components())
}
