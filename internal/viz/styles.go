package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title  lipgloss.Style
	Subtle lipgloss.Style
	Value  lipgloss.Style
	Unit   lipgloss.Style
	Error  lipgloss.Style
	Key    lipgloss.Style
	Border lipgloss.Style
	Cursor lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Subtle: lipgloss.NewStyle().Foreground(t.Muted),
		Value:  lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Unit:   lipgloss.NewStyle().Foreground(t.Secondary),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Key:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Border: lipgloss.NewStyle().Foreground(t.Muted),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
	}
}

// KeyHints renders "key action" pairs.
func (s Styles) KeyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Key.Render(pairs[i]))
		b.WriteString(s.Subtle.Render(" " + pairs[i+1]))
	}
	return b.String()
}

func (s Styles) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return s.Subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
