package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"noteboard/internal/config"
	"noteboard/internal/notes"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
}

func run(t *testing.T, script string) (*Result, string) {
	t.Helper()
	s, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := Run(s, nil, &out, fixedNow)
	require.NoError(t, err)
	return res, out.String()
}

func TestRun_DuplicateScenario(t *testing.T) {
	res, out := run(t, `
mode: thread
steps:
  - add: "Hello world"
  - add: "  hello world  "
`)

	require.Len(t, res.Outcomes, 2)
	assert.NoError(t, res.Outcomes[0].Err)
	assert.ErrorIs(t, res.Outcomes[1].Err, notes.ErrDuplicateText)
	assert.Equal(t, 1, res.Board.Len())
	assert.Contains(t, out, "duplicate")
	assert.Contains(t, out, "Passive Learner")
}

func TestRun_CapacityScenario(t *testing.T) {
	res, out := run(t, `
max_unique: 3
check_duplicates: true
steps:
  - add: one
  - add: two
  - add: three
  - add: four
`)

	assert.ErrorIs(t, res.Outcomes[3].Err, notes.ErrCapacityExceeded)
	assert.Equal(t, 3, res.Board.Len())
	assert.Equal(t, 6, res.Board.Score())
	assert.Contains(t, out, "capacity exceeded")
	assert.Contains(t, out, notes.FullMessage(3))
}

func TestRun_RemoveAndClear(t *testing.T) {
	res, _ := run(t, `
mode: classify
steps:
  - add: a
  - add: b
  - remove: " A "
  - remove: missing
  - add: ""
  - clear: true
  - clear: true
`)

	require.Len(t, res.Outcomes, 7)
	assert.NoError(t, res.Outcomes[2].Err)
	assert.ErrorIs(t, res.Outcomes[3].Err, notes.ErrNotFound)
	assert.ErrorIs(t, res.Outcomes[4].Err, notes.ErrEmptyText)
	assert.NoError(t, res.Outcomes[5].Err)
	assert.NoError(t, res.Outcomes[6].Err)
	assert.Equal(t, 0, res.Board.Len())
	assert.Equal(t, notes.NeedsEncouragement, res.Board.Classification())
}

func TestRun_RemoveKeepsCreatedAt(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return time.Date(2026, 1, 1, 0, calls, 0, 0, time.UTC)
	}

	s, err := Parse(strings.NewReader("mode: score\nsteps:\n  - add: a\n  - add: b\n  - remove: a\n"))
	require.NoError(t, err)

	res, err := Run(s, nil, &bytes.Buffer{}, clock)
	require.NoError(t, err)

	remaining := res.Board.Notes()
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].Text)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 2, 0, 0, time.UTC), remaining[0].CreatedAt)
}

func TestRun_ScoreModeHidesClass(t *testing.T) {
	_, out := run(t, "mode: score\nsteps:\n  - add: a\n")
	assert.NotContains(t, out, "Passive Learner")
	assert.Contains(t, out, "At least 2 notes are required.")
}

func TestScriptConfig_InheritsBase(t *testing.T) {
	base := config.Defaults(config.ModeClassify)
	base.MaxUnique = 5

	s, err := Parse(strings.NewReader("check_duplicates: true\nsteps: []\n"))
	require.NoError(t, err)

	cfg := s.Config(base)
	assert.Equal(t, config.ModeClassify, cfg.Mode)
	assert.Equal(t, 5, cfg.MaxUnique)
	assert.True(t, cfg.CheckDuplicates)
	assert.False(t, base.CheckDuplicates, "base must not be modified")
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"two actions":    "steps:\n  - add: a\n    clear: true\n",
		"no action":      "steps:\n  - {}\n",
		"unknown field":  "steps:\n  - archive: a\n",
		"unknown mode":   "mode: party\nsteps: []\n",
		"malformed yaml": "steps: [",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - add: hi\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, "add", s.Steps[0].Action())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
