package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt2048/internal/registry"
)

// MenuKeyMap defines the key bindings of the variant picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	games    []registry.GameInfo
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	selected string
	quitting bool
}

// NewMenuModel creates a picker over every registered variant.
func NewMenuModel(width, height int) MenuModel {
	m := MenuModel{
		games:  registry.List(),
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the variant table for the current size.
func (m MenuModel) createTable() table.Model {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{g.ID, g.Title}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 16},
			{Title: "Variant", Width: 20},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-8, 3))),
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

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T I L T  2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the variant picker and returns the chosen ID, or "" when the
// user quit.
func RunMenu(width, height int) (string, error) {
	p := tea.NewProgram(NewMenuModel(width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
