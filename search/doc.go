// Package search implements depth-first backtracking search for a
// homomorphism between two digraphs, parameterized by a pluggable
// consistency.Engine. The engine is applied once up front and again
// after every tentative assignment; its soundness is what lets search
// trust a success without re-verifying removed values itself.
//
// Key features:
//   - Search(g0, g1, d0, engine, opts...): low-level search returning the
//     refined singleton domain map on success.
//   - Find / FindPrecolour: convenience wrappers extracting a concrete
//     map[V0]V1 homomorphism from a successful search.
//   - WithOrder: pins the order in which source vertices are branched on;
//     defaults to g0's own vertex order.
//
// Complexity is exponential in the worst case — the engine's filtering
// determines how much of the branching is pruned in practice.
package search
