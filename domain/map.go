package domain

// Map is a candidate-set assignment from vertices of a source digraph to
// subsets of vertices of a target digraph. It is the working state that
// consistency engines filter and that search commits values into.
type Map[V0 comparable, V1 comparable] struct {
	m map[V0]map[V1]struct{}
}

// New returns an empty Map.
func New[V0 comparable, V1 comparable]() *Map[V0, V1] {
	return &Map[V0, V1]{m: make(map[V0]map[V1]struct{})}
}

// NewUniform returns a Map where every vertex in src is assigned the full
// candidate set target. The candidate sets are independent copies; mutating
// one key's set never affects another's.
func NewUniform[V0 comparable, V1 comparable](src []V0, target []V1) *Map[V0, V1] {
	d := New[V0, V1]()
	for _, u := range src {
		set := make(map[V1]struct{}, len(target))
		for _, v := range target {
			set[v] = struct{}{}
		}
		d.m[u] = set
	}

	return d
}

// Keys returns the source vertices with an entry in the map, in unspecified
// order.
func (d *Map[V0, V1]) Keys() []V0 {
	keys := make([]V0, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}

	return keys
}

// Len reports the number of source vertices with an entry in the map.
func (d *Map[V0, V1]) Len() int {
	return len(d.m)
}

// Get returns the candidate set for u, in unspecified order, and whether u
// has an entry at all.
func (d *Map[V0, V1]) Get(u V0) ([]V1, bool) {
	set, ok := d.m[u]
	if !ok {
		return nil, false
	}
	out := make([]V1, 0, len(set))
	for v := range set {
		out = append(out, v)
	}

	return out, true
}

// Contains reports whether v is a candidate for u.
func (d *Map[V0, V1]) Contains(u V0, v V1) bool {
	set, ok := d.m[u]
	if !ok {
		return false
	}
	_, ok = set[v]

	return ok
}

// Set overwrites u's entire candidate set with values.
func (d *Map[V0, V1]) Set(u V0, values []V1) {
	set := make(map[V1]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	d.m[u] = set
}

// SetSingleton overwrites u's candidate set to contain only v.
func (d *Map[V0, V1]) SetSingleton(u V0, v V1) {
	d.m[u] = map[V1]struct{}{v: {}}
}

// Remove deletes v from u's candidate set. It reports whether v was present.
// Removing from a key with no entry is a no-op.
func (d *Map[V0, V1]) Remove(u V0, v V1) bool {
	set, ok := d.m[u]
	if !ok {
		return false
	}
	if _, ok := set[v]; !ok {
		return false
	}
	delete(set, v)

	return true
}

// IsEmpty reports whether u's candidate set has no remaining values. A key
// with no entry at all counts as empty.
func (d *Map[V0, V1]) IsEmpty(u V0) bool {
	set, ok := d.m[u]

	return !ok || len(set) == 0
}

// Size reports the size of u's candidate set.
func (d *Map[V0, V1]) Size(u V0) int {
	return len(d.m[u])
}

// Clone returns a deep copy, independent of the receiver.
func (d *Map[V0, V1]) Clone() *Map[V0, V1] {
	out := New[V0, V1]()
	for u, set := range d.m {
		clone := make(map[V1]struct{}, len(set))
		for v := range set {
			clone[v] = struct{}{}
		}
		out.m[u] = clone
	}

	return out
}

// AnyEmpty reports whether any tracked key's candidate set is empty, the
// failure condition consistency engines and search check for.
func (d *Map[V0, V1]) AnyEmpty() bool {
	for _, set := range d.m {
		if len(set) == 0 {
			return true
		}
	}

	return false
}
