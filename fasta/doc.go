// Package fasta streams nucleotide records from FASTA text.
//
// Headers start with '>'; a record's ID is the first whitespace-separated
// token of its header. Sequence lines are concatenated and upper-cased
// with all whitespace dropped, so blank lines contribute nothing. Open
// accepts "-" for stdin and transparently decompresses paths ending in ".gz".
package fasta
