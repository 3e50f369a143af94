package indicator

import "github.com/WhatDothLife/triads-sub000/digraph"

// A contraction group is a non-empty list of power-graph vertices to be
// identified: every element after the first is contracted into the
// first, which survives as the group's representative.

// wnuHelp returns the group for weak-near-unanimity value i out of n:
// the all-i tuple of the given arity, plus every tuple obtained by
// replacing exactly one coordinate of the all-i tuple with some j != i.
func wnuHelp(arity, i, n int) []digraph.Tuple {
	base := make([]int, arity)
	for p := range base {
		base[p] = i
	}

	group := []digraph.Tuple{digraph.NewTuple(base...)}
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		for p := 0; p < arity; p++ {
			v := append([]int(nil), base...)
			v[p] = j
			group = append(group, digraph.NewTuple(v...))
		}
	}

	return group
}

// WNUGroups returns the contraction groups for the weak-near-unanimity
// identity of the given arity over a target with n vertices: for every
// value i, the all-i tuple absorbs every tuple with exactly one
// coordinate differing from i.
func WNUGroups(arity, n int) [][]digraph.Tuple {
	groups := make([][]digraph.Tuple, 0, n)
	for i := 0; i < n; i++ {
		groups = append(groups, wnuHelp(arity, i, n))
	}

	return groups
}

// WNUDualGroups returns the contraction groups for the dual WNU(k,l)
// identity: for every value i, both the arity-k and arity-l WNU groups
// for i are merged into one group sharing the arity-k all-i tuple as
// representative, linking the two power graphs at that vertex.
func WNUDualGroups(k, l, n int) [][]digraph.Tuple {
	groups := make([][]digraph.Tuple, 0, n)
	for i := 0; i < n; i++ {
		group := wnuHelp(k, i, n)
		group = append(group, wnuHelp(l, i, n)...)
		groups = append(groups, group)
	}

	return groups
}

// CommutativeGroups returns the contraction groups for f(x,y) = f(y,x):
// for every pair i < j, (i,j) and (j,i) are identified.
func CommutativeGroups(n int) [][]digraph.Tuple {
	var groups [][]digraph.Tuple
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			groups = append(groups, []digraph.Tuple{
				digraph.NewTuple(i, j),
				digraph.NewTuple(j, i),
			})
		}
	}

	return groups
}

// SiggersGroups returns the contraction groups for the Siggers identity
// f(r,a,r,e) = f(a,r,e,a), excluding the degenerate all-equal triple and
// the case where the first and third index coincide.
func SiggersGroups(n int) [][]digraph.Tuple {
	var groups [][]digraph.Tuple
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if i == j && j == k {
					continue
				}
				switch {
				case j == k:
					groups = append(groups, []digraph.Tuple{
						digraph.NewTuple(i, j, k, i),
						digraph.NewTuple(j, i, j, k),
						digraph.NewTuple(i, k, i, j),
					})
				case i != k:
					groups = append(groups, []digraph.Tuple{
						digraph.NewTuple(i, j, k, i),
						digraph.NewTuple(j, i, j, k),
					})
				}
			}
		}
	}

	return groups
}
