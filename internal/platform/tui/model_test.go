package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *snake.Game) {
	t.Helper()
	game := snake.New(snake.PolicyStrict)
	cfg := core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      40,
		GridW:        25,
		GridH:        25,
		FoodReward:   10,
		TickInterval: 150 * time.Millisecond,
		Seed:         17,
	}
	return NewModel(game, cfg, nil), game
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("w"), core.ActionUp},
		{runes("k"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{runes("r"), core.ActionRestart},
		{runes("p"), core.ActionPause},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, keys.MapKey(tc.msg), tc.msg.String())
	}
}

func TestModelStopsTickingWhenRoundEnds(t *testing.T) {
	m, game := newTestModel(t)
	require.NotNil(t, m.Init())
	require.True(t, m.ticking)

	var cmd tea.Cmd
	for i := 0; i < 100 && !game.State().GameOver; i++ {
		_, cmd = m.Update(TickMsg(time.Now()))
		if !game.State().GameOver {
			require.NotNil(t, cmd, "tick %d should schedule the next tick", i)
		}
	}

	require.True(t, game.State().GameOver)
	assert.Nil(t, cmd, "no tick after the round ends")
	assert.False(t, m.ticking)

	// Restart brings the tick loop back
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.ticking)
	assert.False(t, game.State().GameOver)
}

func TestModelKeysSteerBetweenTicks(t *testing.T) {
	m, game := newTestModel(t)
	m.Init()

	m.Update(runes("s"))
	assert.Equal(t, snake.DirDown, game.Board().Heading())

	m.Update(runes("p"))
	assert.True(t, game.State().Paused)
	m.Update(TickMsg(time.Now()))
	assert.Equal(t, uint64(0), game.Board().Ticks())
}

func TestModelResizeKeepsRound(t *testing.T) {
	m, game := newTestModel(t)
	m.Init()
	m.Update(TickMsg(time.Now()))
	m.Update(TickMsg(time.Now()))
	head := game.Board().Head()

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Contains(t, m.View(), "too small")
	m.Update(TickMsg(time.Now()))

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 45})
	assert.Equal(t, head, game.Board().Head(), "resize must not reset or advance the round")
	assert.Equal(t, uint64(2), game.Board().Ticks())
	assert.Equal(t, 44, m.screen.Height())
}

func TestModelViewAndQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 40, "screen rows plus the help footer")
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, lines[len(lines)-1], "quit")

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestVariantMenu(t *testing.T) {
	m := NewVariantMenuModel(80, 24, snake.IDClassic)
	require.Len(t, m.items, 2)
	assert.Equal(t, snake.IDClassic, m.items[m.cursor].ID)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(VariantMenuModel)
	assert.Contains(t, m.View(), "> Snake")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(VariantMenuModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, snake.IDStrict, m.Selected())
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  abcd", centerText("abcd", 8))
	assert.Equal(t, "toolong", centerText("toolong", 4))
}
