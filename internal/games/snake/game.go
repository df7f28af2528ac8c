package snake

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant IDs.
const (
	IDStrict  = "snake"
	IDClassic = "snake_classic"
)

const hudHeight = 2 // Score line plus separator

// Game adapts a State to the platform: it maps actions to inputs, handles
// pausing and lays the board out on the screen.
type Game struct {
	policy  FoodPolicy
	state   *State
	roundID string
	paused  bool

	screenW  int
	screenH  int
	board    core.Rect // Board interior on screen, one rune per cell
	tooSmall bool
}

// New creates a game using the given food policy.
func New(policy FoodPolicy) *Game {
	return &Game{policy: policy}
}

// IDForPolicy returns the variant ID that uses policy.
func IDForPolicy(policy FoodPolicy) string {
	if policy == PolicyClassic {
		return IDClassic
	}
	return IDStrict
}

func init() {
	registry.Register(IDStrict, func() registry.Game {
		return New(PolicyStrict)
	})
	registry.Register(IDClassic, func() registry.Game {
		return New(PolicyClassic)
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return IDForPolicy(g.policy)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.policy == PolicyClassic {
		return "Snake (Classic)"
	}
	return "Snake"
}

// Reset builds a new board from cfg and starts the first round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(Options{
		Width:  cfg.GridW,
		Height: cfg.GridH,
		Reward: cfg.FoodReward,
		Policy: g.policy,
		Seed:   cfg.Seed,
	})
	g.roundID = uuid.NewString()
	g.paused = false
	g.Layout(cfg.ScreenW, cfg.ScreenH)
}

// Layout centers the board on a screen of the given size.
func (g *Game) Layout(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if g.state == nil {
		return
	}

	// Board plus its frame below the HUD.
	requiredW := g.state.Width() + 2
	requiredH := g.state.Height() + 2 + hudHeight
	g.tooSmall = screenW < requiredW || screenH < requiredH

	g.board = core.NewRect(
		(screenW-g.state.Width())/2,
		hudHeight+1+core.Clamp((screenH-requiredH)/2, 0, screenH),
		g.state.Width(),
		g.state.Height(),
	)
}

// Board exposes the underlying state for read-only queries.
func (g *Game) Board() *State {
	return g.state
}

// RoundID identifies the current round in logs.
func (g *Game) RoundID() string {
	return g.roundID
}

// HandleAction applies one input event.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionPause:
		if g.state.Running() {
			g.paused = !g.paused
		}
	case core.ActionRestart:
		if !g.state.Running() {
			g.state.Apply(InputRestart)
			g.roundID = uuid.NewString()
			g.paused = false
		}
	default:
		if a.IsDirectional() {
			g.steer(actionInputs[a])
		}
	}
}

var actionInputs = map[core.Action]Input{
	core.ActionUp:    InputUp,
	core.ActionDown:  InputDown,
	core.ActionLeft:  InputLeft,
	core.ActionRight: InputRight,
}

// steer ignores direction keys while paused, so the heading cannot be
// changed behind a frozen board.
func (g *Game) steer(in Input) {
	if g.paused {
		return
	}
	g.state.Apply(in)
}

// Step advances the board by one tick unless paused or unable to draw.
func (g *Game) Step() core.StepResult {
	if g.paused || g.tooSmall || !g.state.Running() {
		return core.StepResult{State: g.State()}
	}

	before := g.state.Score()
	g.state.Tick()

	return core.StepResult{
		State:  g.State(),
		Scored: g.state.Score() - before,
		Ended:  !g.state.Running(),
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		Score:    g.state.Score(),
		Length:   g.state.Len(),
		Ticks:    g.state.Ticks(),
		GameOver: !g.state.Running(),
		Paused:   g.paused,
	}
	if gs.GameOver {
		gs.Cause = g.state.EndCause().String()
	}
	return gs
}

// Render draws the HUD, the framed board, and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.state.Width()+2, g.state.Height()+2+hudHeight))
		return
	}

	dst.DrawBox(g.board.Inset(-1), core.ColorGray)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case !g.state.Running():
		g.renderOverlay(dst, "Game Over!",
			fmt.Sprintf("Score: %d", g.state.Score()),
			"Press ENTER to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Length: %d", g.Title(), g.state.Score(), g.state.Len())
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// plot draws at a board cell, skipping cells off the board such as a head
// that has just left it.
func (g *Game) plot(dst *core.Screen, c Cell, r rune, color core.Color) {
	x, y := g.board.X+c.X, g.board.Y+c.Y
	if !g.board.Contains(x, y) {
		return
	}
	dst.SetColored(x, y, r, color)
}

func (g *Game) renderFood(dst *core.Screen) {
	if food, ok := g.state.Food(); ok {
		g.plot(dst, food, '●', core.ColorBrightRed)
	}
}

func (g *Game) renderSnake(dst *core.Screen) {
	body := g.state.body
	// Tail first so the head wins on shared cells.
	for i := len(body) - 1; i >= 1; i-- {
		g.plot(dst, body[i], 'o', core.ColorGreen)
	}
	g.plot(dst, body[0], 'O', core.ColorBrightCyan)
}

// renderOverlay draws a framed box with centered lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := dst.Bounds().Centered(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorWhite)
	}
}
