// Package export renders a coloured alignment graph.
//
// WriteLegacyDOT emits the line-oriented DOT consumed by existing scripts:
//
//	digraph {
//	    0 [ label = "A" ]
//	    0 -> 1 [ label = "(1,1)" color="red:blue" ]
//	}
//
// WriteDOT emits the same graph through gonum's DOT encoder, with edge
// label and color as separate attributes. Summary tallies edges per Label.
package export
