package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aryasadawrate19/AINux-Proto/internal/storage"
)

const maxCommandWidth = 50

// Renderer handles history browser rendering.
type Renderer struct {
	width  int
	height int
	style  *StyleConfig
}

// StyleConfig defines visual styles.
type StyleConfig struct {
	TitleColor   lipgloss.Color
	SubtleColor  lipgloss.Color
	ErrorColor   lipgloss.Color
	SuccessColor lipgloss.Color
	BorderColor  lipgloss.Color
}

// DefaultStyleConfig returns the default style configuration.
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{
		TitleColor:   lipgloss.Color("10"),  // Green
		SubtleColor:  lipgloss.Color("241"), // Grey
		ErrorColor:   lipgloss.Color("9"),   // Red
		SuccessColor: lipgloss.Color("10"),  // Green
		BorderColor:  lipgloss.Color("8"),   // Dark grey
	}
}

// NewRenderer creates a renderer for the given window size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		style:  DefaultStyleConfig(),
	}
}

// RenderList renders the record list with the cursor row marked.
func (r *Renderer) RenderList(records []storage.Record, cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(r.style.TitleColor).
		Bold(true).
		Render(" AiNux command history ")

	var content strings.Builder
	if len(records) == 0 {
		content.WriteString(lipgloss.NewStyle().
			Foreground(r.style.SubtleColor).
			Render("No commands recorded yet") + "\n")
	} else {
		for i, record := range records {
			marker := " "
			if i == cursor {
				marker = ">"
			}

			command := record.Command
			if len(command) > maxCommandWidth {
				command = command[:maxCommandWidth-3] + "..."
			}

			line := fmt.Sprintf("%s [%s] %s  %s",
				marker,
				statusIndicator(record),
				record.Timestamp.Format("2006-01-02 15:04"),
				command)
			content.WriteString(line + "\n")
		}
	}

	return title + "\n\n" + content.String() + r.renderFooter()
}

// RenderDetail renders one record in full.
func (r *Renderer) RenderDetail(record storage.Record) string {
	title := lipgloss.NewStyle().
		Foreground(r.style.TitleColor).
		Bold(true).
		Render(" Record detail ")

	subtle := lipgloss.NewStyle().Foreground(r.style.SubtleColor)

	var content strings.Builder
	content.WriteString(fmt.Sprintf("ID:       %s\n", record.ID))
	content.WriteString(fmt.Sprintf("When:     %s\n", record.Timestamp.Format("2006-01-02 15:04:05")))
	content.WriteString(fmt.Sprintf("Input:    %s\n", record.Input))
	content.WriteString(fmt.Sprintf("Resolver: %s\n", record.Resolver))
	content.WriteString(fmt.Sprintf("Command:  %s\n", record.Command))

	if record.Success {
		content.WriteString(lipgloss.NewStyle().
			Foreground(r.style.SuccessColor).
			Render("Status:   success") + "\n")
	} else {
		content.WriteString(lipgloss.NewStyle().
			Foreground(r.style.ErrorColor).
			Render("Status:   failed") + "\n")
	}
	if record.ExitCode != nil {
		content.WriteString(fmt.Sprintf("Exit:     %d\n", *record.ExitCode))
	}
	if record.Error != "" {
		content.WriteString(fmt.Sprintf("Error:    %s\n", record.Error))
	}
	if record.Output != "" {
		content.WriteString("\nOutput:\n")
		content.WriteString(subtle.Render(record.Output) + "\n")
	}

	footer := subtle.Render("[enter/esc] back  [q] quit")
	return title + "\n\n" + content.String() + "\n" + footer + "\n"
}

func (r *Renderer) renderFooter() string {
	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(r.style.BorderColor).
		MarginTop(1).
		Render("[j/k] move  [enter] detail  [q] quit")

	return "\n" + statusBar + "\n"
}

func statusIndicator(record storage.Record) string {
	if record.Success {
		return "✓"
	}
	return "✗"
}
