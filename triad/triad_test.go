package triad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/triads-sub000/triad"
)

func TestParseRejectsWrongArmCount(t *testing.T) {
	_, err := triad.Parse("0,0")
	assert.ErrorIs(t, err, triad.ErrInvalidLiteral)

	_, err = triad.Parse("0,0,0,0")
	assert.ErrorIs(t, err, triad.ErrInvalidLiteral)
}

func TestParseRejectsNonBinaryCharacters(t *testing.T) {
	_, err := triad.Parse("02,0,0")
	assert.ErrorIs(t, err, triad.ErrInvalidArm)
}

func TestStringRoundTripsThroughParse(t *testing.T) {
	tr, err := triad.Parse("111,011,01")
	require.NoError(t, err)
	assert.Equal(t, "111,011,01", tr.String())
}

func TestAddArmRejectsAFourthArm(t *testing.T) {
	tr := triad.New()
	require.NoError(t, tr.AddArm("0"))
	require.NoError(t, tr.AddArm("1"))
	require.NoError(t, tr.AddArm("00"))
	assert.ErrorIs(t, tr.AddArm("1"), triad.ErrTooManyArms)
}

func TestDigraphThenFromDigraphRecoversTheTriadUpToArmOrder(t *testing.T) {
	tr := triad.FromStrs("111", "011", "01")
	g := tr.Digraph()

	recovered, err := triad.FromDigraph(g)
	require.NoError(t, err)

	assertSameArmMultiset(t, tr.Arms(), recovered.Arms())
}

func TestDigraphOfEmptyArmIsTheRootAlone(t *testing.T) {
	tr := triad.New()
	require.NoError(t, tr.AddArm(""))

	g := tr.Digraph()
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(0))
}

func TestTriadZeroZeroZeroIsACore(t *testing.T) {
	tr := triad.FromStrs("0", "0", "0")
	assert.True(t, tr.IsCore())
}

func TestTriad111011_01IsARootedCore(t *testing.T) {
	tr := triad.FromStrs("111", "011", "01")
	assert.True(t, tr.IsRootedCore())
}

func TestTriad1000_11_0IsACore(t *testing.T) {
	tr := triad.FromStrs("1000", "11", "0")
	assert.True(t, tr.IsCore())
}

func TestLevelOfRootIsZero(t *testing.T) {
	tr := triad.FromStrs("01", "10", "0")
	assert.Equal(t, 0, triad.Level(0, tr))
}

func TestLevelTracksForwardAndBackwardSteps(t *testing.T) {
	// arm "01": root -0-> v1 -1-> v2, so v1 is one step forward (level 1)
	// and v2 steps back toward the root (level 0).
	tr := triad.FromStrs("01", "0", "0")
	assert.Equal(t, 1, triad.Level(1, tr))
	assert.Equal(t, 0, triad.Level(2, tr))
}

func assertSameArmMultiset(t *testing.T, want, got []string) {
	t.Helper()
	require.Len(t, got, len(want))

	remaining := append([]string(nil), got...)
	for _, w := range want {
		idx := -1
		for i, g := range remaining {
			if g == w {
				idx = i
				break
			}
		}
		require.GreaterOrEqualf(t, idx, 0, "arm %q missing from recovered triad", w)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
}
