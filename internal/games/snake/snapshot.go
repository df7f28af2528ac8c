package snake

// Snapshot captures the observable state of a board for determinism tests
// and replay output.
type Snapshot struct {
	Tick     uint64    `yaml:"tick"`
	Policy   string    `yaml:"policy"`
	Status   string    `yaml:"status"`
	Cause    string    `yaml:"cause,omitempty"`
	Score    int       `yaml:"score"`
	Length   int       `yaml:"length"`
	Heading  Direction `yaml:"heading"`
	Head     Cell      `yaml:"head"`
	Food     *Cell     `yaml:"food,omitempty"` // nil when the board is full
	Segments []Cell    `yaml:"segments,flow"`
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.ticks,
		Policy:   string(s.policy),
		Status:   s.status.String(),
		Score:    s.score,
		Length:   len(s.body),
		Heading:  s.heading,
		Head:     s.body[0],
		Segments: s.Segments(),
	}
	if s.cause != CauseNone {
		snap.Cause = s.cause.String()
	}
	if s.hasFood {
		food := s.food
		snap.Food = &food
	}
	return snap
}
