package digraph

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// MaxArity bounds the k-ary power construction this module supports,
// matching the "power must be computable for k up to 4" requirement: the
// four polymorphism identities this repo cares about (commutative,
// majority, WNU-3, Siggers/WNU-4) never need more.
const MaxArity = 4

// Tuple is a fixed-length sequence of ints: the vertex identifier of a
// power graph. It is comparable (usable as a map key) for any arity up to
// MaxArity, and tuples of different lengths never compare equal because
// the length is itself part of the value.
type Tuple struct {
	n int
	v [MaxArity]int
}

// NewTuple builds a Tuple from 1..MaxArity ints.
func NewTuple(xs ...int) Tuple {
	if len(xs) == 0 || len(xs) > MaxArity {
		panic("digraph: tuple arity must be between 1 and MaxArity")
	}
	var t Tuple
	t.n = len(xs)
	copy(t.v[:], xs)

	return t
}

// Len returns the tuple's arity.
func (t Tuple) Len() int { return t.n }

// At returns the i-th component, 0-indexed.
func (t Tuple) At(i int) int { return t.v[i] }

// Values returns the tuple's components as a fresh slice.
func (t Tuple) Values() []int {
	out := make([]int, t.n)
	copy(out, t.v[:t.n])

	return out
}

// Append returns a new Tuple with x appended, used while building up power
// vertices one coordinate at a time.
func (t Tuple) Append(x int) Tuple {
	nt := t
	nt.v[nt.n] = x
	nt.n++

	return nt
}

// Power returns the k-ary power of g: vertex set V(g)^k, edge set
// {(u,v) : (u_i,v_i) in E(g) for every i}. Construction proceeds one
// coordinate at a time; each expansion step extends every existing prefix
// by every vertex of g independently, so each step runs one errgroup
// goroutine per prefix and collects under a mutex, with output order left
// unspecified.
func Power(g *Digraph[int], k int) *Digraph[Tuple] {
	if k < 1 || k > MaxArity {
		panic("digraph: power arity out of range")
	}

	base := g.Vertices()
	prefixes := []Tuple{{}}

	for step := 0; step < k; step++ {
		var mu sync.Mutex
		next := make([]Tuple, 0, len(prefixes)*len(base))

		var eg errgroup.Group
		for _, p := range prefixes {
			p := p
			eg.Go(func() error {
				local := make([]Tuple, 0, len(base))
				for _, x := range base {
					local = append(local, p.Append(x))
				}
				mu.Lock()
				next = append(next, local...)
				mu.Unlock()

				return nil
			})
		}
		_ = eg.Wait()
		prefixes = next
	}

	power := New[Tuple]()
	for _, v := range prefixes {
		power.AddVertex(v)
	}

	baseEdges := g.Edges()
	edgePrefixes := []Edge[Tuple]{{}}

	for step := 0; step < k; step++ {
		var mu sync.Mutex
		next := make([]Edge[Tuple], 0, len(edgePrefixes)*len(baseEdges))

		var eg errgroup.Group
		for _, pe := range edgePrefixes {
			pe := pe
			eg.Go(func() error {
				local := make([]Edge[Tuple], 0, len(baseEdges))
				for _, e := range baseEdges {
					local = append(local, Edge[Tuple]{
						From: pe.From.Append(e.From),
						To:   pe.To.Append(e.To),
					})
				}
				mu.Lock()
				next = append(next, local...)
				mu.Unlock()

				return nil
			})
		}
		_ = eg.Wait()
		edgePrefixes = next
	}

	for _, e := range edgePrefixes {
		_, _ = power.AddEdge(e.From, e.To)
	}

	return power
}
