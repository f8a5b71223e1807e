// Package pipeline drives a run: fold every input record into a coloured
// partial-order graph, then align queries against the finished graph.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/config"
	"github.com/katalvlaran/colourpoa/fasta"
	"github.com/katalvlaran/colourpoa/poa"
)

// ErrNoRecords indicates an input without any FASTA record.
var ErrNoRecords = errors.New("pipeline: no input records")

// RecordScore is the alignment score of one folded record.
type RecordScore struct {
	Index int
	ID    string
	Seed  colour.ScorePair
	Score colour.ScorePair
}

// Result is the outcome of Build.
type Result struct {
	POA *poa.POA[colour.ScorePair]

	// Scores holds every record after the first, in input order.
	Scores []RecordScore
}

// QueryResult is the best alignment of one query.
type QueryResult struct {
	Query     string
	Alignment poa.Alignment[colour.ScorePair]
}

// Build seeds the graph with the first record and folds in the rest, one at
// a time and in input order. Pass zerolog.Nop() to discard log output.
func Build(ctx context.Context, cfg config.Config, records []fasta.Record, logger zerolog.Logger) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	logger = logger.With().Str("component", "pipeline").Logger()

	sc, err := cfg.ScoreModel()
	if err != nil {
		return nil, err
	}

	first := records[0]
	seed := cfg.SeedFor(first.ID, 0)
	p, err := poa.New(colour.Algebra{}, sc, first.Seq, seed)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", first.ID, err)
	}
	logger.Debug().
		Str("id", first.ID).
		Int("length", len(first.Seq)).
		Str("seed", seed.String()).
		Msg("seeded graph")

	res := &Result{POA: p, Scores: make([]RecordScore, 0, len(records)-1)}
	for i, rec := range records[1:] {
		index := i + 1
		aln, err := p.Global(ctx, rec.Seq)
		if err != nil {
			return nil, fmt.Errorf("record %d %q: %w", index, rec.ID, err)
		}
		seed = cfg.SeedFor(rec.ID, index)
		if err = p.AddAlignment(aln, rec.Seq, seed); err != nil {
			return nil, fmt.Errorf("record %d %q: %w", index, rec.ID, err)
		}
		res.Scores = append(res.Scores, RecordScore{Index: index, ID: rec.ID, Seed: seed, Score: aln.Score})
		logger.Info().
			Int("index", index).
			Str("id", rec.ID).
			Str("seed", seed.String()).
			Str("score", aln.Score.String()).
			Int("nodes", p.Graph().NodeCount()).
			Msg("folded record")
	}

	return res, nil
}

// Query aligns every query against p concurrently with at most jobs
// alignments in flight (GOMAXPROCS when jobs <= 0). Queries are upper-cased;
// results keep the input order.
func Query(ctx context.Context, p *poa.POA[colour.ScorePair], queries []string, jobs int) ([]QueryResult, error) {
	if len(queries) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// indexes are unique per goroutine, no lock needed
	results := make([]QueryResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(queries)))
	for i, q := range queries {
		g.Go(func() error {
			aln, err := p.Global(gctx, bytes.ToUpper([]byte(q)))
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = QueryResult{Query: q, Alignment: aln}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
