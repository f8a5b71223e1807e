package colour

import "github.com/katalvlaran/colourpoa/scoring"

// Algebra plugs ScorePair into a generic aligner.
type Algebra struct{}

var _ scoring.Algebra[ScorePair] = Algebra{}

func (Algebra) Identity() ScorePair              { return Identity() }
func (Algebra) Annihilator() ScorePair           { return Annihilator() }
func (Algebra) Combine(a, b ScorePair) ScorePair { return a.Combine(b) }
func (Algebra) Merge(a, b ScorePair) ScorePair   { return a.Merge(b) }
func (Algebra) Compare(a, b ScorePair) int       { return a.Compare(b) }
func (Algebra) Equal(a, b ScorePair) bool        { return a.Equal(b) }

// NewScoring builds the symmetric scoring the command line uses: match,
// mismatch and gap scores charge both channels by the same amount.
// Penalties are given as positive magnitudes and negated here.
func NewScoring(match, mismatchPenalty, gapPenalty int32) scoring.Scoring[ScorePair] {
	return scoring.NewScoring(
		Uniform(-gapPenalty),
		Uniform(match),
		Uniform(-mismatchPenalty),
	)
}
