package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/config"
)

// writeTOML writes body to a temp file and returns its path.
func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colourpoa.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.Scoring{Branch: 3, Mismatch: 12, Match: 1}, cfg.Scoring)
	assert.Equal(t, map[string]int{"1": 1, "2": 2}, cfg.Groups)
	assert.Equal(t, 1, cfg.First)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Full(t *testing.T) {
	path := writeTOML(t, `
[scoring]
branch = 4
mismatch = 6
match = 2

[groups]
"ref" = 1
"alt" = 2
first = 0
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Scoring{Branch: 4, Mismatch: 6, Match: 2}, cfg.Scoring)
	assert.Equal(t, map[string]int{"ref": 1, "alt": 2}, cfg.Groups)
	assert.Equal(t, 0, cfg.First)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeTOML(t, "[scoring]\nmismatch = 5\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Scoring{Branch: 3, Mismatch: 5, Match: 1}, cfg.Scoring)
	assert.Equal(t, config.Default().Groups, cfg.Groups)
	assert.Equal(t, 1, cfg.First)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"negative branch", "[scoring]\nbranch = -1\n", config.ErrInvalidPenalty},
		{"negative mismatch", "[scoring]\nmismatch = -2\n", config.ErrInvalidPenalty},
		{"match overflow", "[scoring]\nmatch = 3000000000\n", config.ErrInvalidPenalty},
		{"unknown channel", "[groups]\n\"x\" = 3\n", config.ErrUnknownChannel},
		{"unknown first", "[groups]\nfirst = -1\n", config.ErrUnknownChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeTOML(t, tt.body))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.Load(writeTOML(t, "[scoring\nbranch = 1\n"))
	assert.Error(t, err)

	_, err = config.Load(writeTOML(t, "[scoring]\ngap = 1\n"))
	assert.ErrorContains(t, err, "unknown key")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_Overflow(t *testing.T) {
	cfg := config.Default()
	cfg.Scoring.Branch = math.MaxInt32 + 1

	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidPenalty)
}

func TestScoreModel(t *testing.T) {
	sc, err := config.Default().ScoreModel()
	require.NoError(t, err)

	assert.Equal(t, colour.Uniform(1), sc.Score('A', 'A'))
	assert.Equal(t, colour.Uniform(-12), sc.Score('A', 'C'))
	assert.Equal(t, colour.Uniform(-3), sc.Gap)
}

func TestSeedFor(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, colour.New(1, 0), cfg.SeedFor("anything", 0), "first record is channel 1")
	assert.Equal(t, colour.New(1, 0), cfg.SeedFor("1", 3))
	assert.Equal(t, colour.New(0, 1), cfg.SeedFor("2", 1))
	assert.Equal(t, colour.New(0, 0), cfg.SeedFor("3", 2))

	cfg.First = 0
	assert.Equal(t, colour.New(0, 1), cfg.SeedFor("2", 0), "first record by ID")
	assert.Equal(t, colour.New(0, 0), cfg.SeedFor("x", 0))

	cfg.Groups = nil
	assert.Equal(t, colour.New(0, 1), cfg.SeedFor("2", 4), "nil groups use record IDs")
	assert.Equal(t, colour.New(0, 0), cfg.SeedFor("3", 4))

	cfg.Groups = map[string]int{}
	assert.Equal(t, colour.New(0, 0), cfg.SeedFor("2", 4), "empty groups colour nothing")
}
