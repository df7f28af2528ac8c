package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      40,
		GridW:        25,
		GridH:        25,
		FoodReward:   10,
		TickInterval: 150 * time.Millisecond,
		Seed:         seed,
	}
}

// runToWall steps a fresh game straight into the right wall.
func runToWall(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	var res core.StepResult
	for i := 0; i < 100 && !g.State().GameOver; i++ {
		res = g.Step()
	}
	require.True(t, g.State().GameOver)
	return res
}

func TestVariantsRegistered(t *testing.T) {
	require.True(t, registry.Exists(IDStrict))
	require.True(t, registry.Exists(IDClassic))

	g, err := registry.Create(IDClassic)
	require.NoError(t, err)
	assert.Equal(t, "Snake (Classic)", g.Title())
	assert.Equal(t, IDClassic, g.ID())

	assert.Equal(t, IDStrict, IDForPolicy(PolicyStrict))
	assert.Equal(t, IDClassic, IDForPolicy(PolicyClassic))
}

func TestGameResetUsesConfig(t *testing.T) {
	cfg := testConfig(1)
	cfg.GridW, cfg.GridH, cfg.FoodReward = 30, 20, 5

	g := New(PolicyClassic)
	g.Reset(cfg)

	assert.Equal(t, 30, g.Board().Width())
	assert.Equal(t, 20, g.Board().Height())
	assert.Equal(t, PolicyClassic, g.Board().Policy())
	assert.NotEmpty(t, g.RoundID())
	assert.Equal(t, core.GameState{Score: 0, Length: 3}, g.State())
}

func TestGameStepReportsEnd(t *testing.T) {
	g := New(PolicyStrict)
	g.Reset(testConfig(2))

	last := runToWall(t, g)
	assert.True(t, last.Ended)
	assert.Equal(t, "wall", last.State.Cause)
	assert.Equal(t, uint64(21), last.State.Ticks)

	// Later steps neither tick nor report the end again
	ticks := g.Board().Ticks()
	res := g.Step()
	assert.False(t, res.Ended)
	assert.Equal(t, ticks, g.Board().Ticks())
}

func TestGameStepReportsScore(t *testing.T) {
	g := New(PolicyStrict)
	g.Reset(testConfig(3))
	putFood(g.Board(), g.Board().Head().Step(DirRight))

	res := g.Step()

	assert.Equal(t, 10, res.Scored)
	assert.Equal(t, 4, res.State.Length)
}

func TestGameDirectionalActions(t *testing.T) {
	g := New(PolicyStrict)
	g.Reset(testConfig(4))

	g.HandleAction(core.ActionLeft) // reversal, ignored
	assert.Equal(t, DirRight, g.Board().Heading())

	g.HandleAction(core.ActionDown)
	assert.Equal(t, DirDown, g.Board().Heading())
}

func TestGamePause(t *testing.T) {
	g := New(PolicyStrict)
	g.Reset(testConfig(5))

	g.HandleAction(core.ActionPause)
	require.True(t, g.State().Paused)

	g.Step()
	g.HandleAction(core.ActionUp)
	assert.Equal(t, uint64(0), g.Board().Ticks(), "paused game must not tick")
	assert.Equal(t, DirRight, g.Board().Heading(), "paused game must not steer")

	g.HandleAction(core.ActionPause)
	g.Step()
	assert.Equal(t, uint64(1), g.Board().Ticks())
}

func TestGameRestart(t *testing.T) {
	g := New(PolicyStrict)
	g.Reset(testConfig(6))

	// Restart during a round does nothing
	g.Step()
	g.HandleAction(core.ActionRestart)
	assert.Equal(t, uint64(1), g.Board().Ticks())

	runToWall(t, g)
	firstRound := g.RoundID()

	g.HandleAction(core.ActionRestart)

	assert.False(t, g.State().GameOver)
	assert.Equal(t, startBody, g.Board().Segments())
	assert.NotEqual(t, firstRound, g.RoundID())
}

func TestGameWindowTooSmall(t *testing.T) {
	cfg := testConfig(7)
	cfg.ScreenW, cfg.ScreenH = 20, 10

	g := New(PolicyStrict)
	g.Reset(cfg)

	assert.True(t, g.tooSmall)
	g.Step()
	assert.Equal(t, uint64(0), g.Board().Ticks(), "game must wait for a larger window")

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")

	// Growing the window resumes play
	g.Layout(80, 40)
	assert.False(t, g.tooSmall)
	g.Step()
	assert.Equal(t, uint64(1), g.Board().Ticks())
}

func TestGameRender(t *testing.T) {
	cfg := testConfig(8)
	g := New(PolicyStrict)
	g.Reset(cfg)
	putFood(g.Board(), Cell{X: 10, Y: 10})

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(0), "Length: 3")

	head := screen.GetCell(g.board.X+4, g.board.Y+4)
	assert.Equal(t, 'O', head.Rune)
	assert.Equal(t, core.ColorBrightCyan, head.Color)
	assert.Equal(t, 'o', screen.Get(g.board.X+3, g.board.Y+4))
	assert.Equal(t, '●', screen.Get(g.board.X+10, g.board.Y+10))

	// Frame surrounds the board
	assert.Equal(t, '┌', screen.Get(g.board.X-1, g.board.Y-1))
	assert.Equal(t, '┘', screen.Get(g.board.Right(), g.board.Bottom()))
}

func TestGameRenderGameOver(t *testing.T) {
	cfg := testConfig(9)
	g := New(PolicyStrict)
	g.Reset(cfg)
	runToWall(t, g)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Game Over!")
	assert.Contains(t, out, "Press ENTER to restart")
	assert.True(t, strings.Contains(out, "Score: "))
}
