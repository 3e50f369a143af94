package digraph

// Components returns the weakly-connected-component decomposition of g:
// reachability ignoring edge direction, each component returned as an
// independent subgraph carrying all of its internal edges.
func (g *Digraph[V]) Components() []*Digraph[V] {
	vertices := g.Vertices()
	seen := make(map[V]struct{}, len(vertices))
	var comps []*Digraph[V]

	for _, start := range vertices {
		if _, ok := seen[start]; ok {
			continue
		}
		comp := g.componentFrom(start, seen)
		comps = append(comps, comp)
	}

	return comps
}

// Component returns the weakly-connected component containing v.
// ErrVertexNotFound if v is absent.
func (g *Digraph[V]) Component(v V) (*Digraph[V], error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	seen := make(map[V]struct{})

	return g.componentFrom(v, seen), nil
}

func (g *Digraph[V]) componentFrom(start V, seen map[V]struct{}) *Digraph[V] {
	comp := New[V]()
	stack := []V{start}
	seen[start] = struct{}{}
	members := map[V]struct{}{start: {}}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		outN, _ := g.OutNeighbors(u)
		inN, _ := g.InNeighbors(u)
		for _, w := range append(outN, inN...) {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				members[w] = struct{}{}
				stack = append(stack, w)
			}
		}
	}

	for v := range members {
		comp.AddVertex(v)
	}
	for v := range members {
		outN, _ := g.OutNeighbors(v)
		for _, w := range outN {
			_, _ = comp.AddEdge(v, w)
		}
	}

	return comp
}

// Union returns a new Digraph with vertex set V(a) ∪ V(b) and edge set
// E(a) ∪ E(b).
func Union[V comparable](a, b *Digraph[V]) *Digraph[V] {
	u := New[V]()
	for _, v := range a.Vertices() {
		u.AddVertex(v)
	}
	for _, v := range b.Vertices() {
		u.AddVertex(v)
	}
	for _, e := range a.Edges() {
		_, _ = u.AddEdge(e.From, e.To)
	}
	for _, e := range b.Edges() {
		_, _ = u.AddEdge(e.From, e.To)
	}

	return u
}
