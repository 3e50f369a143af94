package consistency

import (
	"github.com/WhatDothLife/triads-sub000/digraph"
)

// PC2 runs path consistency (Mackworth 1977) over pair domains indexed by
// ordered pairs of g0's vertices, and reports whether every pair domain
// stayed non-empty. It is a stronger filter than the vertex-domain
// engines but only answers a yes/no question — it has no per-vertex
// candidate set to hand back.
func PC2[V0, V1 comparable](g0 *digraph.Digraph[V0], g1 *digraph.Digraph[V1]) bool {
	type vpair struct{ a, b V1 }
	type gpair struct{ x, y V0 }
	type triple struct{ x, y, z V0 }

	vertsH := g1.Vertices()
	full := make(map[vpair]struct{}, len(vertsH)*len(vertsH))
	for _, u := range vertsH {
		for _, v := range vertsH {
			full[vpair{u, v}] = struct{}{}
		}
	}

	diag := make(map[vpair]struct{}, len(vertsH))
	for _, h := range vertsH {
		diag[vpair{h, h}] = struct{}{}
	}

	edgesH := make(map[vpair]struct{})
	for _, e := range g1.Edges() {
		edgesH[vpair{e.From, e.To}] = struct{}{}
	}

	cloneVP := func(src map[vpair]struct{}) map[vpair]struct{} {
		out := make(map[vpair]struct{}, len(src))
		for k := range src {
			out[k] = struct{}{}
		}

		return out
	}

	vertsG := g0.Vertices()
	lists := make(map[gpair]map[vpair]struct{})
	worklist := make(map[triple]struct{})

	for _, u := range vertsG {
		for _, v := range vertsG {
			gp := gpair{u, v}
			switch {
			case u == v:
				lists[gp] = cloneVP(diag)
			case g0.HasEdge(u, v):
				lists[gp] = cloneVP(edgesH)
			default:
				lists[gp] = cloneVP(full)
			}
			for _, w := range vertsG {
				worklist[triple{u, w, v}] = struct{}{}
			}
		}
	}

	isPossible := func(x, y, z V0, a, b V1) bool {
		for uv := range lists[gpair{x, z}] {
			if uv.a != a {
				continue
			}
			for cd := range lists[gpair{y, z}] {
				if cd.a == b && cd.b == uv.b {
					return true
				}
			}
		}

		return false
	}

	pathReduce := func(x, y, z V0) bool {
		xy := lists[gpair{x, y}]
		for ab := range xy {
			if !isPossible(x, y, z, ab.a, ab.b) {
				delete(xy, ab)
				return true
			}
		}

		return false
	}

	for len(worklist) > 0 {
		var t triple
		for k := range worklist {
			t = k
			break
		}
		delete(worklist, t)

		if pathReduce(t.x, t.y, t.z) {
			if len(lists[gpair{t.x, t.y}]) == 0 {
				return false
			}
			for _, u := range vertsG {
				if u != t.x && u != t.y {
					worklist[triple{u, t.x, t.y}] = struct{}{}
					worklist[triple{u, t.y, t.x}] = struct{}{}
				}
			}
		}
	}

	return true
}
