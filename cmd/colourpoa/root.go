package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/colourpoa/config"
	"github.com/katalvlaran/colourpoa/export"
	"github.com/katalvlaran/colourpoa/fasta"
	"github.com/katalvlaran/colourpoa/internal/pipeline"
	"github.com/katalvlaran/colourpoa/snapshot"
)

// Output formats accepted by --format.
const (
	formatLegacy = "legacy"
	formatDOT    = "dot"
)

var errMissingPenalty = errors.New("-b/--branch and -s/--mismatch are required unless --config is given")

// options are the parsed command-line flags.
type options struct {
	branch   int64
	mismatch int64
	match    int64
	out      string
	queries  []string
	format   string
	snapshot string
	config   string
	jobs     int
	color    string
	quiet    bool
	verbose  bool
}

// newRootCmd wires flags to run.
func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "colourpoa [flags] INPUT",
		Short:        "Colour a partial-order alignment graph by sequence group",
		Long:         "colourpoa folds every FASTA record of INPUT into a partial-order alignment\ngraph and labels each edge by the groups (record IDs \"1\" and \"2\") that walk it.",
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg, opts)
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&opts.branch, "branch", "b", 3, "branch (gap) penalty")
	f.Int64VarP(&opts.mismatch, "mismatch", "s", 12, "mismatch penalty")
	f.Int64VarP(&opts.match, "match", "m", 1, "match reward")
	f.StringVarP(&opts.out, "out", "o", "", "write the coloured graph to `FILE`")
	f.StringArrayVarP(&opts.queries, "query", "q", nil, "align `QUERY` against the finished graph (repeatable)")
	f.StringVar(&opts.format, "format", formatLegacy, "graph format (legacy|dot)")
	f.StringVar(&opts.snapshot, "snapshot", "", "write a msgpack snapshot of the graph to `FILE`")
	f.StringVar(&opts.config, "config", "", "read scoring and groups from a TOML `FILE`")
	f.IntVar(&opts.jobs, "jobs", 0, "concurrent query alignments (0 = GOMAXPROCS)")
	f.StringVar(&opts.color, "color", "auto", "colorize the summary (auto|on|off)")
	f.BoolVar(&opts.quiet, "quiet", false, "only log warnings and skip the summary")
	f.BoolVar(&opts.verbose, "verbose", false, "log debug records")

	return cmd
}

// resolveConfig merges the optional config file with explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.config != "" {
		var err error
		if cfg, err = config.Load(opts.config); err != nil {
			return config.Config{}, err
		}
	} else if !cmd.Flags().Changed("branch") || !cmd.Flags().Changed("mismatch") {
		return config.Config{}, errMissingPenalty
	}

	if cmd.Flags().Changed("branch") {
		cfg.Scoring.Branch = opts.branch
	}
	if cmd.Flags().Changed("mismatch") {
		cfg.Scoring.Mismatch = opts.mismatch
	}
	if cmd.Flags().Changed("match") {
		cfg.Scoring.Match = opts.match
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	switch opts.format {
	case formatLegacy, formatDOT:
	default:
		return config.Config{}, fmt.Errorf("unknown --format %q (want legacy or dot)", opts.format)
	}

	return cfg, nil
}

// logLevel maps --verbose and --quiet to a zerolog level; --verbose wins.
func logLevel(opts options) zerolog.Level {
	switch {
	case opts.verbose:
		return zerolog.DebugLevel
	case opts.quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// newLogger returns a console logger on w honouring --quiet, --verbose and
// --color.
func newLogger(w io.Writer, opts options) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !useColor(opts.color, w),
		TimeFormat: "15:04:05",
	}).Level(logLevel(opts)).With().Timestamp().Str("service", "colourpoa").Logger()
}

// run executes one colouring job.
func run(ctx context.Context, stdout, stderr io.Writer, input string, cfg config.Config, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(stderr, opts)

	records, err := fasta.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	logger.Debug().Str("path", input).Int("records", len(records)).Msg("read input")

	res, err := pipeline.Build(ctx, cfg, records, logger)
	if err != nil {
		return err
	}
	for _, s := range res.Scores {
		fmt.Fprintf(stdout, "score %s\n", s.Score)
	}

	results, err := pipeline.Query(ctx, res.POA, opts.queries, opts.jobs)
	if err != nil {
		return err
	}
	for _, q := range results {
		fmt.Fprintf(stdout, "score: %s\n", q.Alignment.Score)
	}

	g := res.POA.Snapshot()
	if opts.out != "" {
		if err = writeGraph(opts.out, opts.format, g); err != nil {
			return err
		}
		logger.Debug().Str("path", opts.out).Str("format", opts.format).Msg("wrote graph")
	}
	if opts.snapshot != "" {
		if err = snapshot.SaveFile(opts.snapshot, g); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		sum, err := snapshot.Digest(g)
		if err != nil {
			return err
		}
		logger.Debug().Str("path", opts.snapshot).Hex("sha256", sum[:]).Msg("wrote snapshot")
	}

	if !opts.quiet {
		printSummary(stderr, export.Summary(g), useColor(opts.color, stderr))
	}

	return nil
}

// writeGraph writes g to path in the requested format.
func writeGraph(path, format string, g *graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if strings.EqualFold(format, formatDOT) {
		return export.WriteDOT(f, g)
	}

	return export.WriteLegacyDOT(f, g)
}
