package digraph

import "sort"

// ContractVertices merges v into u: every edge incident to v is rewritten
// as incident to u, then v is removed. u and v must both be present and
// distinct; contracting a vertex with itself is a caller contract
// violation (ErrSelfContraction).
//
// Self-loop rule (see spec §4.A / §9): a self-loop at u is only present
// after contraction if v already carried its own self-loop (v,v) before
// the call. An edge that merely connected u and v (u->v or v->u) does not,
// by itself, spawn a new self-loop at u — it is simply absorbed into the
// merge and dropped. This is the literal "must persist if they existed, be
// suppressed otherwise" rule; it is stricter than always materialising a
// self-loop whenever a connecting edge is rewritten.
func (g *Digraph[V]) ContractVertices(u, v V) error {
	if u == v {
		return ErrSelfContraction
	}

	g.mu.Lock()
	outV, ok := g.out[v]
	if !ok {
		g.mu.Unlock()
		return ErrVertexNotFound
	}
	inV, ok := g.in[v]
	if !ok {
		g.mu.Unlock()
		return ErrVertexNotFound
	}
	if _, ok := g.out[u]; !ok {
		g.mu.Unlock()
		return ErrVertexNotFound
	}

	hadSelfLoop := false
	if _, ok := outV[v]; ok {
		hadSelfLoop = true
	}

	outTargets := keys(outV)
	inSources := keys(inV)
	g.mu.Unlock()

	for _, w := range outTargets {
		if w == u || w == v {
			continue
		}
		if _, err := g.AddEdge(u, w); err != nil {
			return err
		}
	}
	for _, w := range inSources {
		if w == u || w == v {
			continue
		}
		if _, err := g.AddEdge(w, u); err != nil {
			return err
		}
	}
	if hadSelfLoop {
		if _, err := g.AddEdge(u, u); err != nil {
			return err
		}
	}

	if _, _, ok := g.RemoveVertex(v); !ok {
		return ErrVertexNotFound
	}

	return nil
}

// ContractIf performs the quadratic-time pairwise contraction described in
// spec §4.A: a snapshot of the vertex set is taken, ordered by less, and
// for every unordered pair (u,w) with u before w in that order, if neither
// has already been contracted away and p(u,w) holds, w is contracted into
// u. p is expected to be symmetric; the snapshot order determines the
// surviving representatives when p is not transitive, which is a
// deliberate, documented contract rather than a bug. Returns the vertices
// that were contracted away (no longer present afterwards).
func (g *Digraph[V]) ContractIf(less func(a, b V) bool, p func(a, b V) bool) []V {
	snapshot := g.Vertices()
	sort.Slice(snapshot, func(i, j int) bool { return less(snapshot[i], snapshot[j]) })

	removed := make(map[V]struct{})
	var removedList []V

	for i, u := range snapshot {
		if _, gone := removed[u]; gone {
			continue
		}
		for j := i + 1; j < len(snapshot); j++ {
			w := snapshot[j]
			if _, gone := removed[w]; gone {
				continue
			}
			if p(u, w) {
				_ = g.ContractVertices(u, w)
				removed[w] = struct{}{}
				removedList = append(removedList, w)
			}
		}
	}

	return removedList
}
