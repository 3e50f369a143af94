// Package digraph provides the in-memory directed-graph primitive that every
// other package in this module builds on: vertex and edge mutation, vertex
// contraction, weakly-connected components, the k-ary power construction,
// and graph union.
//
// A Digraph is a mapping from a vertex identifier to two vertex sets (its
// out-neighbours and its in-neighbours). It is a simple digraph: no
// parallel edges, self-loops permitted. The vertex identifier is any
// comparable Go value; this module instantiates it with small non-negative
// ints for source/target graphs and with Tuple (a fixed-length sequence of
// ints) for power-graph vertices, mirroring how the original research
// prototype represented power-graph vertices as vectors.
//
// All mutating methods acquire a write lock; queries acquire a read lock.
// Digraph values are typically built once single-threaded and then read
// concurrently (e.g. by the parallel regions in package triad), so the
// locking mostly guards against accidental concurrent mutation rather than
// steady-state contention.
package digraph
