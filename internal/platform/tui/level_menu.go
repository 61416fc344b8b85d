package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// LevelMenuModel lets the player pick a level before a game starts.
type LevelMenuModel struct {
	levels    []config.LevelConfig
	table     table.Model
	keyMapper *KeyMapper
	highScore int
	width     int
	height    int
	selected  int
	quitting  bool
}

// NewLevelMenuModel creates the level selector for cfg's levels.
func NewLevelMenuModel(cfg config.SnakeConfig, highScore, width, height int) LevelMenuModel {
	rows := make([]table.Row, len(cfg.Levels))
	for i, l := range cfg.Levels {
		obstacles := "none"
		if n := l.ObstacleCount(cfg.Board.Size); n > 0 {
			obstacles = strconv.Itoa(n)
		}
		rows[i] = table.Row{strconv.Itoa(l.ID), l.Name, obstacles}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Level", Width: 6},
			{Title: "Name", Width: 14},
			{Title: "Obstacles", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return LevelMenuModel{
		levels:    cfg.Levels,
		table:     t,
		keyMapper: NewKeyMapper(),
		highScore: highScore,
		width:     width,
		height:    height,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect:
			if c := m.table.Cursor(); c >= 0 && c < len(m.levels) {
				m.selected = m.levels[c].ID
				return m, tea.Quit
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Snake Game"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a level to begin", m.width))
	b.WriteString("\n\n")

	for _, line := range strings.Split(tableStyle.Render(m.table.View()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Highest Score: %d", m.highScore), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Tip: Use arrow keys to control the snake"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Play  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen level ID, or false while still choosing.
func (m LevelMenuModel) Selected() (int, bool) {
	return m.selected, m.selected != 0
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelSelector shows the level selector and returns the chosen level.
// ok is false when the player quit instead.
func RunLevelSelector(cfg config.SnakeConfig, highScore, width, height int) (level int, ok bool, err error) {
	model := NewLevelMenuModel(cfg, highScore, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isMenu := finalModel.(LevelMenuModel)
	if !isMenu || m.IsQuitting() {
		return 0, false, nil
	}
	level, ok = m.Selected()
	return level, ok, nil
}
