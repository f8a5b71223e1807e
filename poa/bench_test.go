package poa_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/poa"
)

// randomSeq returns a reproducible DNA string of length n.
func randomSeq(r *rand.Rand, n int) []byte {
	const bases = "ACGT"
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[r.Intn(len(bases))]
	}

	return out
}

// mutate copies seq and replaces roughly one base in ten.
func mutate(r *rand.Rand, seq []byte) []byte {
	out := append([]byte(nil), seq...)
	for i := range out {
		if r.Intn(10) == 0 {
			out[i] = "ACGT"[r.Intn(4)]
		}
	}

	return out
}

// BenchmarkGlobal_Colour measures one 200x200 alignment on a ten-sequence graph.
func BenchmarkGlobal_Colour(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	base := randomSeq(r, 200)
	p, err := poa.New(colour.Algebra{}, colour.NewScoring(1, 12, 3), base, colour.Seed(colour.Group1))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	for range 9 {
		seq := mutate(r, base)
		aln, err := p.Global(ctx, seq)
		if err != nil {
			b.Fatal(err)
		}
		if err = p.AddAlignment(aln, seq, colour.Seed(colour.Group2)); err != nil {
			b.Fatal(err)
		}
	}
	query := mutate(r, base)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = p.Global(ctx, query); err != nil {
			b.Fatal(err)
		}
	}
}
