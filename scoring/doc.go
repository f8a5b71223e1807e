// Package scoring defines the capability a partial-order aligner needs from
// its score type, and the per-symbol scoring configuration built on top of it.
//
// The aligner never adds or compares scores directly. It asks an Algebra:
//
//	Identity()    : neutral element of Combine (score of an empty path)
//	Annihilator() : worst possible score; every real score beats it in Merge
//	Combine(a, b) : extend a path by one step (a "product")
//	Merge(a, b)   : resolve two paths arriving at the same cell (a "sum")
//	Compare(a, b) : ordering used to pick the traceback pointer
//	Equal(a, b)   : value equality, kept separate from Compare
//
// Compare and Equal are two relations: an algebra may order two values as
// equivalent while still distinguishing them (see package colour).
//
// MaxPlus is the plain scalar algebra (max, +) over int32 of a classic
// Needleman–Wunsch aligner.
package scoring
