package polymorphism

import (
	"fmt"
	"sort"
	"strings"

	"github.com/WhatDothLife/triads-sub000/digraph"
)

// Polymorphism is a total function on indicator-graph vertices — tuples
// of target-digraph vertices — recovered from a successful search.
type Polymorphism struct {
	values map[digraph.Tuple]int
}

// Apply evaluates the polymorphism on args, reporting whether a value was
// recorded for that tuple.
func (p *Polymorphism) Apply(args ...int) (int, bool) {
	v, ok := p.values[digraph.NewTuple(args...)]

	return v, ok
}

// String renders every recorded tuple->value mapping, one per line.
func (p *Polymorphism) String() string {
	tuples := make([]digraph.Tuple, 0, len(p.values))
	for t := range p.values {
		tuples = append(tuples, t)
	}
	sort.Slice(tuples, func(i, j int) bool {
		return fmt.Sprint(tuples[i].Values()) < fmt.Sprint(tuples[j].Values())
	})

	var b strings.Builder
	for _, t := range tuples {
		fmt.Fprintf(&b, "%v -> %d\n", t.Values(), p.values[t])
	}

	return b.String()
}
