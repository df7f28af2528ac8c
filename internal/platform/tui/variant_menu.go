package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// VariantMenuModel lets users choose which snake variant to play.
type VariantMenuModel struct {
	items    []registry.GameInfo
	cursor   int
	width    int
	height   int
	selected string
	quitting bool
}

// NewVariantMenuModel lists the registered variants with preselect
// highlighted when present.
func NewVariantMenuModel(width, height int, preselect string) VariantMenuModel {
	items := registry.List()
	cursor := 0
	for i, it := range items {
		if it.ID == preselect {
			cursor = i
			break
		}
	}

	return VariantMenuModel{
		items:  items,
		cursor: cursor,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m VariantMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m VariantMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m VariantMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the variant list.
func (m VariantMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant:", m.width))
	b.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, it.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m VariantMenuModel) Selected() string {
	return m.selected
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunVariantMenu shows the picker and returns the chosen variant ID.
// An empty ID means the user quit.
func RunVariantMenu(width, height int, preselect string) (string, error) {
	p := tea.NewProgram(
		NewVariantMenuModel(width, height, preselect),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: variant menu: %w", err)
	}

	m, ok := final.(VariantMenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
