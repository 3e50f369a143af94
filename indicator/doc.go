// Package indicator builds the indicator graphs used to turn "does H have
// a polymorphism satisfying identity X" into a homomorphism question: for
// a target digraph H and an identity (commutative, majority, Siggers,
// weak near-unanimity), Build constructs a digraph I over k-ary (or
// k-and-l-ary, for the dual WNU case) tuples of H's vertices, quotiented
// by the identity's contraction pattern, together with any partial domain
// the identity pre-colours (majority's diagonal, or the caller-requested
// conservative/idempotent restrictions).
//
// Homomorphisms I -> H then correspond bijectively to polymorphisms of H
// satisfying the identity; package search is the consumer of that
// correspondence.
package indicator
