// Package colourpoa tracks which of two sequence groups supports each part
// of a partial-order alignment graph.
//
// What is it?
//
//	A small toolkit around one idea: score alignments with a two-channel
//	ScorePair instead of a single integer, and keep the per-group support
//	on every graph edge. Each edge ends up in one of four classes:
//		• GroupOnly1 (red)      : only group 1 walks it
//		• BothGroups (red:blue) : both groups walk it
//		• GroupOnly2 (blue)     : only group 2 walks it
//		• Neither    (black)    : only ungrouped sequences walk it
//
// Packages:
//
//	colour/    : ScorePair algebra, classifier, group seeds
//	scoring/   : generic Algebra interface, MaxPlus, Scoring
//	core/      : thread-safe DAG with dense int node IDs and typed edge weights
//	dfs/       : deterministic topological sort
//	poa/       : partial-order aligner generic over the Algebra
//	fasta/     : streaming FASTA reader (plain, gzip, stdin)
//	export/    : legacy and gonum DOT writers, label summary
//	snapshot/  : msgpack persistence of a coloured graph
//	config/    : scoring defaults and TOML loading
//	cmd/colourpoa : command line front end
//
// Quick ASCII example (seed ACGTACGT in group 1, ACGTCGT in group 2):
//
//	A─C─G─T─A─C─G─T
//	        └───┘
//
//	the A bubble is red (group 1 only), the shortcut is blue, the rest
//	is red:blue.
//
//	go install github.com/katalvlaran/colourpoa/cmd/colourpoa@latest
package colourpoa
