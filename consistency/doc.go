// Package consistency implements the local-consistency engines used to
// filter candidate-set domains before and during homomorphism search:
// AC-1, AC-3, SAC-1, SAC-Opt, and PC-2.
//
// Every engine except PC-2 shares the Engine signature — (source digraph,
// target digraph, partial domain) -> (refined domain, success) — so that
// search can treat the choice of engine as a plugged-in value rather than
// a hardcoded algorithm. A source vertex absent from the supplied domain
// is treated as having the full vertex set of the target digraph.
//
// Each engine is a sound, monotone filter: every value it removes from a
// domain participates in no homomorphism consistent with the rest of the
// domain. Soundness is what lets search treat an engine's success as
// "worth recursing on" and its failure as "no homomorphism here" without
// re-checking the removed values itself.
package consistency
