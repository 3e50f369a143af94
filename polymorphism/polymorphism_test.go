package polymorphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/polymorphism"
)

func singleLoop(t *testing.T) *digraph.Digraph[int] {
	t.Helper()
	g := digraph.New[int]()
	g.AddVertex(0)
	g.AddEdge(0, 0)

	return g
}

func TestEveryIdentityHoldsOnTheOneVertexReflexiveGraph(t *testing.T) {
	h := singleLoop(t)

	// Each kind is applied at the arity of the indicator Find succeeds
	// with; Siggers succeeds through its commutative (binary) attempt.
	for _, tc := range []struct {
		kind polymorphism.Kind
		args []int
	}{
		{polymorphism.Commutative, []int{0, 0}},
		{polymorphism.Majority, []int{0, 0, 0}},
		{polymorphism.Siggers, []int{0, 0}},
		{polymorphism.WNU3, []int{0, 0, 0}},
		{polymorphism.WNU34, []int{0, 0, 0}},
	} {
		kind := tc.kind
		p, ok := polymorphism.Find(h, kind)
		require.True(t, ok, kind.String())
		v, found := p.Apply(tc.args...)
		assert.True(t, found, kind.String())
		assert.Equal(t, 0, v, kind.String())
	}
}

func TestKindStringIsHumanReadable(t *testing.T) {
	assert.Equal(t, "commutative", polymorphism.Commutative.String())
	assert.Equal(t, "siggers", polymorphism.Siggers.String())
}
