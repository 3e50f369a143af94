// Package triad implements the triad model: an ordered triple of at most
// three arm strings over {0,1} leaving a single degree-3 root, its
// conversion to and from a digraph, the core/rooted-core predicates built
// on AC-3, and the cached enumeration of core triads by maximum arm length
// or by total node count.
package triad
