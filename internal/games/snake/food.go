package snake

import "fmt"

// FoodPolicy selects how food is placed on the board.
type FoodPolicy string

const (
	// PolicyStrict picks uniformly among cells the snake does not occupy.
	PolicyStrict FoodPolicy = "strict"
	// PolicyClassic picks any cell of the board, even one under the snake.
	PolicyClassic FoodPolicy = "classic"
)

// ParseFoodPolicy validates a policy name. Empty means PolicyStrict.
func ParseFoodPolicy(s string) (FoodPolicy, error) {
	switch FoodPolicy(s) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyClassic:
		return PolicyClassic, nil
	}
	return "", fmt.Errorf("snake: unknown food policy %q", s)
}

// PlaceFood moves the food to a random cell drawn from the seeded RNG.
func (s *State) PlaceFood() {
	if s.policy == PolicyClassic {
		// x is drawn before y; no re-roll when the cell is under the snake.
		x := s.rng.Intn(s.width)
		y := s.rng.Intn(s.height)
		s.food = Cell{X: x, Y: y}
		s.hasFood = true
		return
	}

	free := s.freeCells()
	if len(free) == 0 {
		// Board is full; nothing left to eat.
		s.food = Cell{X: -1, Y: -1}
		s.hasFood = false
		return
	}
	s.food = free[s.rng.Intn(len(free))]
	s.hasFood = true
}

// freeCells lists in-bounds cells not covered by the snake, row by row.
func (s *State) freeCells() []Cell {
	occupied := make(map[Cell]struct{}, len(s.body))
	for _, seg := range s.body {
		occupied[seg] = struct{}{}
	}

	free := make([]Cell, 0, max(0, s.width*s.height-len(occupied)))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
