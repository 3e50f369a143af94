package triad

import (
	"errors"
	"sort"
	"strings"

	"github.com/WhatDothLife/triads-sub000/digraph"
)

var (
	// ErrTooManyArms is returned by AddArm once a triad already carries
	// three arms.
	ErrTooManyArms = errors.New("triad: already has 3 arms")
	// ErrInvalidArm is returned when an arm string contains a character
	// other than '0' or '1'.
	ErrInvalidArm = errors.New("triad: arm must contain only '0' and '1'")
	// ErrInvalidLiteral is returned by Parse on a literal that does not
	// split into exactly three comma-separated arms.
	ErrInvalidLiteral = errors.New("triad: literal must have exactly 3 comma-separated arms")
	// ErrNotATriad is returned by FromDigraph when g has no degree-3
	// vertex, or the walk from it does not recover exactly three arms.
	ErrNotATriad = errors.New("triad: digraph has no degree-3 root")
)

// Triad is an ordered triple of at most three arm strings over {0,1}
// leaving a single degree-3 root. A Triad with fewer than three arms is a
// partial triad, used while enumerating rooted-core arms one length at a
// time.
type Triad struct {
	arms []string
}

// New returns an empty Triad.
func New() *Triad {
	return &Triad{}
}

// FromStrs builds a Triad from exactly three arm strings.
func FromStrs(a, b, c string) *Triad {
	return &Triad{arms: []string{a, b, c}}
}

// AddArm appends arm to the triad.
func (t *Triad) AddArm(arm string) error {
	if len(t.arms) == 3 {
		return ErrTooManyArms
	}
	t.arms = append(t.arms, arm)

	return nil
}

// Arms returns the triad's arm strings, in order.
func (t *Triad) Arms() []string {
	out := make([]string, len(t.arms))
	copy(out, t.arms)

	return out
}

// String renders the triad as its comma-separated arm literal.
func (t *Triad) String() string {
	return strings.Join(t.arms, ",")
}

// Parse reads a triad literal: exactly three comma-separated arm strings,
// each containing only '0' and '1'.
func Parse(s string) (*Triad, error) {
	arms := strings.Split(s, ",")
	if len(arms) != 3 {
		return nil, ErrInvalidLiteral
	}
	for _, arm := range arms {
		for _, c := range arm {
			if c != '0' && c != '1' {
				return nil, ErrInvalidArm
			}
		}
	}

	return &Triad{arms: arms}, nil
}

// Digraph builds the triad's adjacency: the root is labelled 0, and each
// arm is walked assigning fresh vertex ids in order, with the i-th
// character of an arm determining the orientation of the edge incident to
// the vertex it introduces — '0' points away from the root, '1' points
// toward it.
func (t *Triad) Digraph() *digraph.Digraph[int] {
	g := digraph.New[int]()
	g.AddVertex(0)

	nodeID := 1
	for _, arm := range t.arms {
		for j, c := range arm {
			g.AddVertex(nodeID)

			switch {
			case j == 0 && c == '1':
				_, _ = g.AddEdge(nodeID, 0)
			case j == 0:
				_, _ = g.AddEdge(0, nodeID)
			case c == '1':
				_, _ = g.AddEdge(nodeID, nodeID-1)
			default:
				_, _ = g.AddEdge(nodeID-1, nodeID)
			}

			nodeID++
		}
	}

	return g
}

type edgeKey struct{ from, to int }

type labelledArm struct {
	lead int
	arm  string
}

// FromDigraph recovers a Triad from a digraph built by Digraph, locating
// the degree-3 root and walking each of its three incident paths. Arms
// are ordered by the numeric id of the vertex adjacent to the root, which
// determines triad identity up to arm permutation — the source labelling
// this rebuilds has no other canonical order to recover.
func FromDigraph(g *digraph.Digraph[int]) (*Triad, error) {
	edges := g.Edges()
	remaining := make(map[edgeKey]struct{}, len(edges))
	for _, e := range edges {
		remaining[edgeKey{e.From, e.To}] = struct{}{}
	}

	root := -1
	for _, v := range g.Vertices() {
		if deg, err := g.Degree(v); err == nil && deg == 3 {
			root = v
			break
		}
	}
	if root == -1 {
		return nil, ErrNotATriad
	}

	var arms []labelledArm
	for _, e := range edges {
		switch root {
		case e.From:
			delete(remaining, edgeKey{e.From, e.To})
			arms = append(arms, labelledArm{e.To, "0" + armString(e.To, remaining)})
		case e.To:
			delete(remaining, edgeKey{e.From, e.To})
			arms = append(arms, labelledArm{e.From, "1" + armString(e.From, remaining)})
		}
	}

	if len(arms) != 3 {
		return nil, ErrNotATriad
	}

	sort.Slice(arms, func(i, j int) bool { return arms[i].lead < arms[j].lead })

	return FromStrs(arms[0].arm, arms[1].arm, arms[2].arm), nil
}

// armString walks the path leaving u, consuming edges out of remaining,
// and encodes each hop as '0' (forward) or '1' (backward).
func armString(u int, remaining map[edgeKey]struct{}) string {
	for k := range remaining {
		switch u {
		case k.from:
			delete(remaining, k)

			return "0" + armString(k.to, remaining)
		case k.to:
			delete(remaining, k)

			return "1" + armString(k.from, remaining)
		}
	}

	return ""
}
