// Package tui implements the interactive history browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aryasadawrate19/AINux-Proto/internal/storage"
)

// model is the Bubble Tea model for the history browser. Records are shown
// newest first.
type model struct {
	records     []storage.Record
	cursor      int
	showingItem bool
	pendingG    bool // tracks if 'g' was pressed for 'gg'
	width       int
	height      int
	renderer    *Renderer
}

// NewModel creates a history browser model over the given records.
func NewModel(records []storage.Record) tea.Model {
	// newest first
	reversed := make([]storage.Record, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	return model{
		records:  reversed,
		renderer: NewRenderer(0, 0),
	}
}

// Init initializes the model.
func (m model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer = NewRenderer(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" || msg.String() == "ctrl+c" || msg.Type == tea.KeyEsc {
		if m.showingItem {
			m.showingItem = false
			return m, nil
		}
		return m, tea.Quit
	}

	if msg.Type == tea.KeyEnter {
		if len(m.records) > 0 {
			m.showingItem = !m.showingItem
		}
		return m, nil
	}

	switch msg.String() {
	case "k", "up":
		m.pendingG = false
		if m.cursor > 0 {
			m.cursor--
		}
	case "j", "down":
		m.pendingG = false
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case "g":
		if m.pendingG {
			m.cursor = 0
			m.pendingG = false
		} else {
			m.pendingG = true
		}
	case "G":
		m.pendingG = false
		if len(m.records) > 0 {
			m.cursor = len(m.records) - 1
		}
	default:
		m.pendingG = false
	}

	return m, nil
}

// View renders the UI.
func (m model) View() string {
	if m.showingItem && m.cursor < len(m.records) {
		return m.renderer.RenderDetail(m.records[m.cursor])
	}
	return m.renderer.RenderList(m.records, m.cursor)
}
