package scoring

// Scoring holds the per-step scores an aligner combines along a path.
//
// Gap is charged for every inserted query symbol and every skipped graph
// node (the command line calls it the branch penalty). Score(a, b) is the
// contribution of aligning graph symbol a to query symbol b.
type Scoring[S any] struct {
	// Gap is the insertion/deletion score.
	Gap S

	// Match is returned by Score for equal symbols when MatchFn is nil.
	Match S

	// Mismatch is returned by Score for different symbols when MatchFn is nil.
	Mismatch S

	// MatchFn, if non-nil, replaces the Match/Mismatch rule entirely.
	MatchFn func(a, b byte) S
}

// NewScoring returns a Scoring using the equal/not-equal rule.
func NewScoring[S any](gap, match, mismatch S) Scoring[S] {
	return Scoring[S]{Gap: gap, Match: match, Mismatch: mismatch}
}

// Score returns the score of aligning a against b.
// Symbols are compared byte-wise; callers normalise case beforehand.
func (s Scoring[S]) Score(a, b byte) S {
	if s.MatchFn != nil {
		return s.MatchFn(a, b)
	}
	if a == b {
		return s.Match
	}

	return s.Mismatch
}
