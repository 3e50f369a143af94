// Package polymorphism implements Find, the top-level operation that
// decides whether a target digraph admits a polymorphism satisfying a
// named identity, by building the corresponding indicator graph and
// running search with AC-3.
package polymorphism
