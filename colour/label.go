package colour

// Label is the presentation category of an accumulated ScorePair.
type Label int

const (
	// Neither means no group supports the element.
	Neither Label = iota
	// GroupOnly1 means only group 1 supports the element.
	GroupOnly1
	// GroupOnly2 means only group 2 supports the element.
	GroupOnly2
	// BothGroups means both groups support the element.
	BothGroups
)

// Classify returns the Label of p from the signs of its channels.
// A channel counts as present only when strictly greater than zero.
func Classify(p ScorePair) Label {
	switch one, two := p.C1 > 0, p.C2 > 0; {
	case one && !two:
		return GroupOnly1
	case one && two:
		return BothGroups
	case two:
		return GroupOnly2
	default:
		return Neither
	}
}

// Colour returns the Graphviz colour name of l.
func (l Label) Colour() string {
	switch l {
	case GroupOnly1:
		return "red"
	case GroupOnly2:
		return "blue"
	case BothGroups:
		return "red:blue"
	default:
		return "black"
	}
}

func (l Label) String() string {
	switch l {
	case GroupOnly1:
		return "GroupOnly1"
	case GroupOnly2:
		return "GroupOnly2"
	case BothGroups:
		return "BothGroups"
	case Neither:
		return "Neither"
	default:
		return "Label(?)"
	}
}

// Labels lists every Label in presentation order.
func Labels() []Label {
	return []Label{GroupOnly1, BothGroups, GroupOnly2, Neither}
}
