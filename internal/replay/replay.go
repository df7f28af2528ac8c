// Package replay runs a seeded snake round from a scripted input list
// without a terminal.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalidScript is returned when a script cannot be run as written.
var ErrInvalidScript = errors.New("invalid replay script")

// maxTicks bounds a single replay.
const maxTicks = 1_000_000

// Script describes a replay. Board fields left at zero use the defaults.
type Script struct {
	Seed   int64  `yaml:"seed"`
	Ticks  int    `yaml:"ticks"`
	Policy string `yaml:"policy,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Reward int    `yaml:"reward,omitempty"`
	Inputs []Step `yaml:"inputs"`
}

// Step is one scripted input. Tick is 1-based: the input is applied just
// before that tick runs.
type Step struct {
	Tick  int    `yaml:"tick"`
	Input string `yaml:"input"`
}

// Result is the outcome of a replay.
type Result struct {
	Round          string `yaml:"round"`
	Seed           int64  `yaml:"seed"`
	snake.Snapshot `yaml:",inline"`
}

type scheduled struct {
	tick  int
	input snake.Input
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML script. Unknown keys are rejected.
func Parse(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("replay: %w: %w", ErrInvalidScript, err)
	}
	return s, nil
}

// Validate checks tick bounds, policy and input names.
func (s Script) Validate() error {
	_, err := s.schedule()
	return err
}

func (s Script) schedule() ([]scheduled, error) {
	if s.Ticks < 0 || s.Ticks > maxTicks {
		return nil, fmt.Errorf("replay: %w: ticks must be in [0, %d], got %d", ErrInvalidScript, maxTicks, s.Ticks)
	}
	if _, err := snake.ParseFoodPolicy(s.Policy); err != nil {
		return nil, fmt.Errorf("replay: %w: %w", ErrInvalidScript, err)
	}
	if s.Width < 0 || s.Height < 0 || s.Reward < 0 {
		return nil, fmt.Errorf("replay: %w: board settings must not be negative", ErrInvalidScript)
	}

	out := make([]scheduled, 0, len(s.Inputs))
	for i, st := range s.Inputs {
		if st.Tick < 1 || st.Tick > s.Ticks {
			return nil, fmt.Errorf("replay: %w: input %d: tick %d outside [1, %d]", ErrInvalidScript, i, st.Tick, s.Ticks)
		}
		in, err := snake.ParseInput(st.Input)
		if err != nil {
			return nil, fmt.Errorf("replay: %w: input %d: %w", ErrInvalidScript, i, err)
		}
		out = append(out, scheduled{tick: st.Tick, input: in})
	}

	// Inputs sharing a tick keep their script order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].tick < out[j].tick })
	return out, nil
}

// Run plays the script and returns the final state.
func Run(s Script) (Result, error) {
	inputs, err := s.schedule()
	if err != nil {
		return Result{}, err
	}
	policy, _ := snake.ParseFoodPolicy(s.Policy)

	st := snake.NewState(snake.Options{
		Width:  s.Width,
		Height: s.Height,
		Reward: s.Reward,
		Policy: policy,
		Seed:   s.Seed,
	})

	next := 0
	for tick := 1; tick <= s.Ticks; tick++ {
		for next < len(inputs) && inputs[next].tick == tick {
			st.Apply(inputs[next].input)
			next++
		}
		st.Tick()
	}

	return Result{
		Round:    uuid.NewString(),
		Seed:     s.Seed,
		Snapshot: st.Snapshot(),
	}, nil
}
