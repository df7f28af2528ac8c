package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use it to size the board, lay out the screen and seed their RNG.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	GridW        int           // Board width in cells
	GridH        int           // Board height in cells
	FoodReward   int           // Points per food eaten
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching the classic 25×25 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      32,
		GridW:        25,
		GridH:        25,
		FoodReward:   10,
		TickInterval: 150 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Length   int    // Current snake length
	Ticks    uint64 // Ticks played this round
	GameOver bool   // Whether the round has ended
	Cause    string // What ended the round, empty while running
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Scored int  // Points gained during this tick
	Ended  bool // True only on the tick where the round ended
}
