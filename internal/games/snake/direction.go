package snake

import "fmt"

// Direction represents the snake's movement direction.
// Opposite directions are two steps apart.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("snake: invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// Cell is an integer grid coordinate.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Step returns the neighbouring cell in direction d.
// Y grows downwards.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	case DirRight:
		return Cell{X: c.X + 1, Y: c.Y}
	}
	return c
}

// Input is a player command delivered to the state between ticks.
type Input int

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputRestart
)

// ParseInput converts a name such as "up" or "restart" into an Input.
func ParseInput(s string) (Input, error) {
	switch s {
	case "up":
		return InputUp, nil
	case "down":
		return InputDown, nil
	case "left":
		return InputLeft, nil
	case "right":
		return InputRight, nil
	case "restart":
		return InputRestart, nil
	}
	return 0, fmt.Errorf("snake: unknown input %q", s)
}

func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// direction maps a steering input to its heading.
func (in Input) direction() (Direction, bool) {
	switch in {
	case InputUp:
		return DirUp, true
	case InputDown:
		return DirDown, true
	case InputLeft:
		return DirLeft, true
	case InputRight:
		return DirRight, true
	}
	return 0, false
}
