// Package colour implements the provenance-scoring algebra used to colour a
// partial-order alignment graph, and the classifier that turns an
// accumulated score into a presentation colour.
//
// A ScorePair carries one accumulator per provenance group:
//
//	C1: support from group 1 ("red")
//	C2: support from group 2 ("blue")
//
// Operations:
//
//	Identity()        (0, 0)
//	Annihilator()     (MinInt32, MinInt32)
//	a.Combine(b)      (a.C1+b.C1, a.C2+b.C2), saturating at the int32 bounds
//	a.Merge(b)        m1=max(C1), m2=max(C2); the larger channel wins and the
//	                  other is reset to 0; on a tie both maxima are kept
//	a.Compare(b)      ordering by max(C1, C2) only
//	a.Equal(b)        full tuple equality
//
// Compare and Equal are intentionally different relations: (5,0) and (0,5)
// are equivalent under Compare yet not Equal. Neither is defined in terms of
// the other.
//
// Overflow policy: Combine clamps each channel to [MinInt32, MaxInt32], so
// extreme penalties give the same result on every platform. Merge and
// Compare cannot overflow.
//
// Merge and negative channels: resetting the losing channel to 0 can raise
// the pair's ordering value when every input channel is negative, e.g.
// Merge((MinInt32,MinInt32), (-1,-5)) = (-1, 0), whose maximum is 0. Over
// non-negative channels Merge is associative and commutative, and folding a
// set of pairs in any order yields the same tuple.
//
// Classify maps a pair to one of four Labels on the sign of each channel:
//
//	C1>0  C2>0  Label       Colour
//	yes   no    GroupOnly1  red
//	yes   yes   BothGroups  red:blue
//	no    yes   GroupOnly2  blue
//	no    no    Neither     black
package colour
