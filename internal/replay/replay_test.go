package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestParseScript(t *testing.T) {
	data := []byte(`
seed: 42
ticks: 10
policy: classic
inputs:
  - {tick: 3, input: up}
  - {tick: 5, input: left}
`)

	s, err := Parse(data)

	require.NoError(t, err)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 10, s.Ticks)
	assert.Equal(t, "classic", s.Policy)
	assert.Equal(t, []Step{{Tick: 3, Input: "up"}, {Tick: 5, Input: "left"}}, s.Inputs)
	assert.NoError(t, s.Validate())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("seed: 1\nticks: 2\nspeed: fast\n"))
	assert.ErrorIs(t, err, ErrInvalidScript)

	_, err = Parse([]byte("seed: [1\n"))
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestValidateRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name   string
		script Script
	}{
		{"negative ticks", Script{Ticks: -1}},
		{"unknown policy", Script{Ticks: 5, Policy: "greedy"}},
		{"input before first tick", Script{Ticks: 5, Inputs: []Step{{Tick: 0, Input: "up"}}}},
		{"input after last tick", Script{Ticks: 5, Inputs: []Step{{Tick: 6, Input: "up"}}}},
		{"unknown input", Script{Ticks: 5, Inputs: []Step{{Tick: 1, Input: "jump"}}}},
		{"negative width", Script{Ticks: 5, Width: -3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.script.Validate(), ErrInvalidScript)

			_, err := Run(tc.script)
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}
}

func TestRunStraightIntoWall(t *testing.T) {
	res, err := Run(Script{Seed: 1, Ticks: 30})

	require.NoError(t, err)
	assert.Equal(t, "ended", res.Status)
	assert.Equal(t, "wall", res.Cause)
	assert.Equal(t, uint64(21), res.Tick, "ticks after the end are no-ops")
	assert.NotEmpty(t, res.Round)
}

func TestRunAppliesInputsBeforeTick(t *testing.T) {
	res, err := Run(Script{
		Seed:   5,
		Ticks:  3,
		Inputs: []Step{{Tick: 1, Input: "down"}},
	})

	require.NoError(t, err)
	assert.Equal(t, snake.Cell{X: 4, Y: 7}, res.Head)
	assert.Equal(t, snake.DirDown, res.Heading)
	assert.Equal(t, "running", res.Status)
}

func TestRunRestart(t *testing.T) {
	res, err := Run(Script{
		Seed:   3,
		Ticks:  25,
		Inputs: []Step{{Tick: 22, Input: "restart"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "running", res.Status)
	assert.Equal(t, uint64(4), res.Tick)
	assert.Equal(t, snake.Cell{X: 8, Y: 4}, res.Head)
}

func TestRunIsDeterministic(t *testing.T) {
	s := Script{
		Seed:  2024,
		Ticks: 40,
		Inputs: []Step{
			{Tick: 4, Input: "down"},
			{Tick: 9, Input: "left"},
			{Tick: 12, Input: "down"},
			{Tick: 15, Input: "right"},
		},
	}

	a, err := Run(s)
	require.NoError(t, err)
	b, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, a.Snapshot, b.Snapshot)
	assert.NotEqual(t, a.Round, b.Round)
}

func TestLoadAndEncodeResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nticks: 2\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	res, err := Run(s)
	require.NoError(t, err)

	out, err := yaml.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), "seed: 7")
	assert.Contains(t, string(out), "tick: 2")
	assert.Contains(t, string(out), "heading: right")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
