// Package domain implements the candidate-set map used throughout
// consistency, search, and polymorphism-finding: a mapping from each
// source vertex to the set of target vertices it might still map to.
//
// An empty candidate set for some key is the failure marker the rest of
// the system checks for ("no homomorphism exists consistent with this
// assignment"). A domain where every set has size exactly one is a
// singleton domain, and — once every consistency engine has run to a
// sound fixpoint — encodes a concrete homomorphism.
//
// Iteration order over a Map's keys is unspecified; no algorithm in this
// module depends on it.
package domain
