package colour

// Group identifies the provenance group a sequence belongs to.
type Group int

const (
	// Ungrouped sequences contribute nothing to either channel.
	Ungrouped Group = iota
	// Group1 sequences feed channel C1.
	Group1
	// Group2 sequences feed channel C2.
	Group2
)

// Seed returns the per-sequence seed of g: (1,0), (0,1) or (0,0).
func Seed(g Group) ScorePair {
	switch g {
	case Group1:
		return ScorePair{C1: 1}
	case Group2:
		return ScorePair{C2: 1}
	default:
		return ScorePair{}
	}
}

// GroupOf maps a FASTA record ID to its group: "1" and "2" name the two
// groups, anything else is Ungrouped.
func GroupOf(id string) Group {
	switch id {
	case "1":
		return Group1
	case "2":
		return Group2
	default:
		return Ungrouped
	}
}
