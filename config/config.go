// Package config holds the scoring penalties and group assignment of a run,
// with defaults matching the classic command line and an optional TOML file.
package config

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/scoring"
)

var (
	// ErrInvalidPenalty indicates a negative or out-of-range score.
	ErrInvalidPenalty = errors.New("config: invalid penalty")

	// ErrUnknownChannel indicates a group assignment other than 0, 1 or 2.
	ErrUnknownChannel = errors.New("config: unknown channel")
)

// firstKey is the [groups] key naming the channel of the first record.
const firstKey = "first"

// Scoring are the alignment scores. Branch and Mismatch are penalty
// magnitudes; Match is the reward.
type Scoring struct {
	Branch   int64 `toml:"branch"`
	Mismatch int64 `toml:"mismatch"`
	Match    int64 `toml:"match"`
}

// Config is the complete run configuration.
type Config struct {
	Scoring Scoring

	// Groups maps a record ID to channel 1 or 2; other IDs are ungrouped.
	Groups map[string]int

	// First is the channel seeded by the first record regardless of its ID;
	// 0 assigns it by ID like every other record.
	First int
}

// fileConfig mirrors the TOML layout.
type fileConfig struct {
	Scoring Scoring          `toml:"scoring"`
	Groups  map[string]int64 `toml:"groups"`
}

// Default returns branch 3, mismatch 12, match 1, IDs "1" and "2" on
// channels 1 and 2, and the first record on channel 1.
func Default() Config {
	return Config{
		Scoring: Scoring{Branch: 3, Mismatch: 12, Match: 1},
		Groups:  map[string]int{"1": 1, "2": 2},
		First:   1,
	}
}

// Load reads a TOML file over Default. Keys missing from the file keep
// their default; a [groups] table replaces the default assignment.
func Load(path string) (Config, error) {
	cfg := Default()

	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("scoring", "branch") {
		cfg.Scoring.Branch = fc.Scoring.Branch
	}
	if meta.IsDefined("scoring", "mismatch") {
		cfg.Scoring.Mismatch = fc.Scoring.Mismatch
	}
	if meta.IsDefined("scoring", "match") {
		cfg.Scoring.Match = fc.Scoring.Match
	}
	if meta.IsDefined("groups") {
		cfg.Groups = make(map[string]int, len(fc.Groups))
		for id, ch := range fc.Groups {
			v, err := safecast.Conv[int](ch)
			if err != nil {
				return Config{}, fmt.Errorf("%s: [groups].%s: %w", path, id, err)
			}
			if id == firstKey {
				cfg.First = v
				continue
			}
			cfg.Groups[id] = v
		}
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects negative or non-int32 scores and channels other than
// 0, 1 and 2.
func (c Config) Validate() error {
	if c.Scoring.Branch < 0 {
		return fmt.Errorf("%w: branch %d is negative", ErrInvalidPenalty, c.Scoring.Branch)
	}
	if c.Scoring.Mismatch < 0 {
		return fmt.Errorf("%w: mismatch %d is negative", ErrInvalidPenalty, c.Scoring.Mismatch)
	}
	if _, _, _, err := c.scores(); err != nil {
		return err
	}
	if !validChannel(c.First) {
		return fmt.Errorf("%w: first = %d", ErrUnknownChannel, c.First)
	}
	for id, ch := range c.Groups {
		if !validChannel(ch) {
			return fmt.Errorf("%w: group %q = %d", ErrUnknownChannel, id, ch)
		}
	}

	return nil
}

// ScoreModel returns the symmetric ScorePair scoring for c.
func (c Config) ScoreModel() (scoring.Scoring[colour.ScorePair], error) {
	match, mismatch, branch, err := c.scores()
	if err != nil {
		return scoring.Scoring[colour.ScorePair]{}, err
	}

	return colour.NewScoring(match, mismatch, branch), nil
}

// SeedFor returns the seed of the record with the given ID at position
// index in the input. A nil Groups map falls back to colour.GroupOf.
func (c Config) SeedFor(id string, index int) colour.ScorePair {
	if index == 0 && c.First != 0 {
		return colour.Seed(colour.Group(c.First))
	}
	if c.Groups == nil {
		return colour.Seed(colour.GroupOf(id))
	}

	return colour.Seed(colour.Group(c.Groups[id]))
}

// scores converts the configured values to int32.
func (c Config) scores() (match, mismatch, branch int32, err error) {
	if match, err = safecast.Conv[int32](c.Scoring.Match); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: match: %w", ErrInvalidPenalty, err)
	}
	if mismatch, err = safecast.Conv[int32](c.Scoring.Mismatch); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: mismatch: %w", ErrInvalidPenalty, err)
	}
	if branch, err = safecast.Conv[int32](c.Scoring.Branch); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: branch: %w", ErrInvalidPenalty, err)
	}

	return match, mismatch, branch, nil
}

// validChannel reports whether ch names Ungrouped, Group1 or Group2.
func validChannel(ch int) bool {
	return ch >= int(colour.Ungrouped) && ch <= int(colour.Group2)
}
