// Package tripolys is a constraint-satisfaction toolkit for finite
// directed graphs: local-consistency engines (AC-1, AC-3, SAC-1, SAC-Opt,
// PC-2), backtracking homomorphism search parameterized by any of them,
// indicator-graph construction and search for polymorphisms (commutative,
// majority, Siggers, WNU-3, WNU-(3,4)), and a generator for triads — the
// minimal tree-shaped digraphs used as structural probes in that search.
//
// Everything lives in subpackages:
//
//	digraph/      — generic directed graph: mutation, contraction, power, union
//	domain/       — vertex-to-candidate-set map, the working state search filters
//	consistency/  — AC-1/AC-3/SAC-1/SAC-Opt/PC-2 local-consistency engines
//	search/       — backtracking homomorphism search over a pluggable engine
//	indicator/    — power+quotient construction for polymorphism identities
//	polymorphism/ — top-level polymorphism search, dispatching over indicator kinds
//	triad/        — triad encoding, core/rooted-core tests, cached enumeration
//	cache/        — flat-file, append-only persistence for triad/arm caches
//	cmd/tripolys/ — command-line entry point
package tripolys
