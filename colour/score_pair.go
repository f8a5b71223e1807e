package colour

import (
	"math"
	"strconv"

	"github.com/katalvlaran/colourpoa/scoring"
)

// ScorePair is the two-channel score accumulated along alignment paths.
// Values are immutable; every operation returns a new ScorePair.
type ScorePair struct {
	C1 int32 `msgpack:"c1"`
	C2 int32 `msgpack:"c2"`
}

// New returns the pair (c1, c2).
func New(c1, c2 int32) ScorePair {
	return ScorePair{C1: c1, C2: c2}
}

// Uniform returns (v, v). Match rewards and penalties charge both channels alike.
func Uniform(v int32) ScorePair {
	return ScorePair{C1: v, C2: v}
}

// Identity returns (0, 0), the neutral element of Combine.
func Identity() ScorePair {
	return ScorePair{}
}

// Annihilator returns (MinInt32, MinInt32), the value every unreached
// dynamic-programming cell starts from.
func Annihilator() ScorePair {
	return ScorePair{C1: math.MinInt32, C2: math.MinInt32}
}

// Combine adds q onto p channel by channel, saturating at the int32 bounds.
func (p ScorePair) Combine(q ScorePair) ScorePair {
	return ScorePair{
		C1: scoring.SaturatingAdd(p.C1, q.C1),
		C2: scoring.SaturatingAdd(p.C2, q.C2),
	}
}

// Merge resolves two competing paths.
// The channel with the larger maximum keeps it and the other channel is
// reset to 0; when both maxima are equal both are kept.
func (p ScorePair) Merge(q ScorePair) ScorePair {
	m1 := max(p.C1, q.C1)
	m2 := max(p.C2, q.C2)
	switch {
	case m1 > m2:
		return ScorePair{C1: m1}
	case m2 > m1:
		return ScorePair{C2: m2}
	default:
		return ScorePair{C1: m1, C2: m2}
	}
}

// Max returns the larger channel, the only quantity Compare looks at.
func (p ScorePair) Max() int32 {
	return max(p.C1, p.C2)
}

// Compare orders p against q by Max alone and returns -1, 0 or +1.
// Pairs with equal maxima compare 0 even when they are not Equal.
func (p ScorePair) Compare(q ScorePair) int {
	pm, qm := p.Max(), q.Max()
	switch {
	case pm > qm:
		return 1
	case pm < qm:
		return -1
	default:
		return 0
	}
}

// Equal reports whether both channels are identical.
func (p ScorePair) Equal(q ScorePair) bool {
	return p.C1 == q.C1 && p.C2 == q.C2
}

// String renders the raw pair as "(c1,c2)".
func (p ScorePair) String() string {
	buf := make([]byte, 0, 24)
	buf = append(buf, '(')
	buf = strconv.AppendInt(buf, int64(p.C1), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(p.C2), 10)
	buf = append(buf, ')')

	return string(buf)
}

// Label classifies the pair. It is shorthand for Classify(p).
func (p ScorePair) Label() Label {
	return Classify(p)
}

// DOTLabel returns the edge label consumed by DOT tooling:
//
//	"(c1,c2)" color="colourname"
//
// Downstream scripts parse this exact shape.
func (p ScorePair) DOTLabel() string {
	return `"` + p.String() + `" color="` + Classify(p).Colour() + `"`
}
