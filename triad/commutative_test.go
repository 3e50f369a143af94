package triad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads-sub000/polymorphism"
	"github.com/WhatDothLife/triads-sub000/triad"
)

// Scenario: triad 10,10,0 under a level-restricted commutative
// polymorphism search — the indicator graph keeps only I-vertices whose
// two coordinates sit at the same triad level. The search must succeed and
// produce a polymorphism defined on every vertex of h.
func TestTriad10_10_0CommutativePolymorphismSearch(t *testing.T) {
	tr := triad.FromStrs("10", "10", "0")
	h := tr.Digraph()

	level := func(v int) int { return triad.Level(v, tr) }

	hom, ok := polymorphism.FindCommutativeRestricted(h, level)
	require.True(t, ok)

	for _, v := range h.Vertices() {
		_, defined := hom.Apply(v, v)
		require.True(t, defined, "polymorphism must be defined on (%d,%d)", v, v)
	}
}
