package snake

import (
	"math/rand"
)

// Board and scoring defaults of the classic game.
const (
	DefaultWidth  = 25
	DefaultHeight = 25
	DefaultReward = 10

	// MinWidth and MinHeight fit the starting snake, whose head sits at (4, 4).
	MinWidth  = 5
	MinHeight = 5

	startLength = 3
)

var startHead = Cell{X: 4, Y: 4}

// Status is the lifecycle of a round.
type Status int

const (
	StatusRunning Status = iota
	StatusEnded
)

func (s Status) String() string {
	if s == StatusEnded {
		return "ended"
	}
	return "running"
}

// EndCause records which collision finished the round.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseSelf
	CauseWall
)

func (c EndCause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseWall:
		return "wall"
	default:
		return "none"
	}
}

// Options configures a State.
type Options struct {
	Width  int
	Height int
	Reward int
	Policy FoodPolicy
	Seed   int64
}

// State is the in-memory model of one snake board: body, food, heading,
// status and score. It knows nothing about time or rendering; a scheduler
// calls Tick at a fixed rate and an input source calls SetHeading or Apply.
//
// State is not safe for concurrent use. Callers must serialize Tick and
// SetHeading, for example on a single event loop.
type State struct {
	width  int
	height int
	reward int
	policy FoodPolicy
	rng    *rand.Rand

	body    []Cell // Head at index 0
	heading Direction
	moved   Direction // Heading used by the most recent move
	food    Cell
	hasFood bool
	score   int
	status  Status
	cause   EndCause
	ticks   uint64
}

// NewState creates a board and starts the first round.
// Zero or undersized options fall back to the classic defaults and minimums.
func NewState(opts Options) *State {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.Reward <= 0 {
		opts.Reward = DefaultReward
	}
	if opts.Policy == "" {
		opts.Policy = PolicyStrict
	}

	s := &State{
		width:  max(opts.Width, MinWidth),
		height: max(opts.Height, MinHeight),
		reward: opts.Reward,
		policy: opts.Policy,
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
	s.ResetRound()
	return s
}

// ResetRound starts a new round: a three-cell horizontal snake with its head
// at (4, 4) heading right, zero score, and freshly placed food.
// The RNG is not reseeded, so food continues the seeded sequence.
func (s *State) ResetRound() {
	s.body = s.body[:0]
	for i := 0; i < startLength; i++ {
		s.body = append(s.body, Cell{X: startHead.X - i, Y: startHead.Y})
	}
	s.heading = DirRight
	s.moved = DirRight
	s.score = 0
	s.cause = CauseNone
	s.ticks = 0
	s.status = StatusRunning
	s.PlaceFood()
}

// SetHeading steers the snake. Reversing straight into the neck is ignored,
// both against the pending heading and against the heading of the last move,
// so two quick key presses inside one tick cannot fold the snake onto itself.
// Input after the round has ended is ignored too.
func (s *State) SetHeading(d Direction) {
	if s.status == StatusEnded || !d.Valid() {
		return
	}
	if d == s.heading.Opposite() || d == s.moved.Opposite() {
		return
	}
	s.heading = d
}

// Apply delivers a player input. Restart only takes effect once the round
// has ended.
func (s *State) Apply(in Input) {
	if d, ok := in.direction(); ok {
		s.SetHeading(d)
		return
	}
	if in == InputRestart && s.status == StatusEnded {
		s.ResetRound()
	}
}

// Tick advances the round by one step: move, eat, then collide.
// It is a no-op once the round has ended.
func (s *State) Tick() {
	if s.status == StatusEnded {
		return
	}
	s.ticks++

	// Every segment takes its predecessor's place, then the head advances.
	tail := s.body[len(s.body)-1]
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = s.body[0].Step(s.heading)
	s.moved = s.heading

	if s.hasFood && s.body[0] == s.food {
		s.body = append(s.body, tail)
		s.score += s.reward
		s.PlaceFood()
	}

	s.checkCollision()
}

// checkCollision ends the round when the head hits the body or leaves the
// board. The body is checked first; both outcomes end the round the same way.
func (s *State) checkCollision() {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			s.end(CauseSelf)
			return
		}
	}
	if !s.InBounds(head) {
		s.end(CauseWall)
	}
}

func (s *State) end(cause EndCause) {
	s.status = StatusEnded
	s.cause = cause
}

// InBounds reports whether c lies on the board.
func (s *State) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// Occupies reports whether any snake segment covers c.
func (s *State) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, head first.
func (s *State) Segments() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head position.
func (s *State) Head() Cell { return s.body[0] }

// Len returns the snake length.
func (s *State) Len() int { return len(s.body) }

// Food returns the food cell. ok is false only when the board is full.
func (s *State) Food() (c Cell, ok bool) { return s.food, s.hasFood }

func (s *State) Score() int { return s.score }
func (s *State) Status() Status { return s.status }
func (s *State) Heading() Direction { return s.heading }
func (s *State) EndCause() EndCause { return s.cause }
func (s *State) Ticks() uint64 { return s.ticks }
func (s *State) Width() int { return s.width }
func (s *State) Height() int { return s.height }
func (s *State) Policy() FoodPolicy { return s.policy }
func (s *State) Running() bool { return s.status == StatusRunning }
