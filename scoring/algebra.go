package scoring

import "math"

// Algebra is the ordered scoring algebra an aligner is parameterised with.
// Implementations must be pure: every method returns a new value and keeps
// no state, so one Algebra may be shared by any number of goroutines.
type Algebra[S any] interface {
	// Identity returns the neutral element of Combine.
	Identity() S

	// Annihilator returns the worst score; Merge(Annihilator(), x) never
	// loses to it.
	Annihilator() S

	// Combine accumulates b onto a along a single path.
	Combine(a, b S) S

	// Merge chooses between two competing paths.
	Merge(a, b S) S

	// Compare reports -1, 0 or +1 as a orders below, equivalent to or above b.
	Compare(a, b S) int

	// Equal reports value equality. It may be finer than Compare(a, b) == 0.
	Equal(a, b S) bool
}

// MaxPlus is the scalar (max, +) algebra over int32.
// Combine saturates at the int32 bounds instead of wrapping.
type MaxPlus struct{}

var _ Algebra[int32] = MaxPlus{}

// Identity returns 0.
func (MaxPlus) Identity() int32 { return 0 }

// Annihilator returns math.MinInt32.
func (MaxPlus) Annihilator() int32 { return math.MinInt32 }

// Combine returns a+b clamped to [MinInt32, MaxInt32].
func (MaxPlus) Combine(a, b int32) int32 { return SaturatingAdd(a, b) }

// Merge returns the larger of a and b.
func (MaxPlus) Merge(a, b int32) int32 { return max(a, b) }

// Compare orders a and b numerically.
func (MaxPlus) Compare(a, b int32) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Equal reports a == b.
func (MaxPlus) Equal(a, b int32) bool { return a == b }

// SaturatingAdd adds two int32 values, clamping the result to the int32
// range. The sum is computed in int64 so it cannot itself overflow.
func SaturatingAdd(a, b int32) int32 {
	s := int64(a) + int64(b)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	if s < math.MinInt32 {
		return math.MinInt32
	}

	return int32(s)
}
