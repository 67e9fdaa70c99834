package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/siunits/internal/quantity"
	"github.com/san-kum/siunits/internal/unit"
)

const historySize = 8

const (
	fieldInput = iota
	fieldTarget
)

// Converter is an interactive quantity converter. The first field takes a
// quantity such as "12 km/h", the second a target unit; an empty target
// converts to the standard unit of the quantity's family.
type Converter struct {
	reg     *unit.Registry
	styles  Styles
	fields  [2]string
	focus   int
	result  string
	err     error
	history []string
	width   int
}

func NewConverter(reg *unit.Registry, theme Theme) Converter {
	return Converter{reg: reg, styles: NewStyles(theme), width: 80}
}

func (m Converter) Result() string { return m.result }
func (m Converter) Err() error     { return m.err }
func (m Converter) History() []string {
	return append([]string(nil), m.history...)
}

func (m Converter) Init() tea.Cmd { return nil }

func (m Converter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Converter) handleKey(msg tea.KeyMsg) (Converter, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.focus ^= 1
	case tea.KeyEnter:
		m.convert()
	case tea.KeyBackspace:
		f := []rune(m.fields[m.focus])
		if len(f) > 0 {
			m.fields[m.focus] = string(f[:len(f)-1])
		}
	case tea.KeyCtrlU:
		m.fields[m.focus] = ""
	case tea.KeySpace:
		m.fields[m.focus] += " "
	case tea.KeyRunes:
		m.fields[m.focus] += string(msg.Runes)
	}
	return m, nil
}

func (m *Converter) convert() {
	m.result, m.err = "", nil
	q, res, err := quantity.ConvertText[float64](m.reg, m.fields[fieldInput], m.fields[fieldTarget])
	if err != nil {
		m.err = err
		return
	}
	m.result = quantity.Format(res)
	m.history = append([]string{quantity.Format(q) + " = " + m.result}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
}

func (m Converter) View() string {
	st := m.styles
	var b strings.Builder
	b.WriteString("\n  " + st.Title.Render("SIUNITS") + "  " + st.Subtle.Render("quantity converter") + "\n")
	b.WriteString("  " + st.Separator(min(m.width-4, 40)) + "\n\n")

	labels := [2]string{"quantity", "to unit"}
	for i, label := range labels {
		cursor := "  "
		value := m.fields[i]
		if i == m.focus {
			cursor = st.Cursor.Render("▸ ")
			value += "_"
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, st.Subtle.Render(fmt.Sprintf("%-9s", label)), st.Value.Render(value)))
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("  " + st.Error.Render(m.err.Error()) + "\n")
	case m.result != "":
		b.WriteString("  " + st.Subtle.Render("= ") + st.Value.Render(m.result) + "\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		for _, h := range m.history {
			b.WriteString("  " + st.Subtle.Render(h) + "\n")
		}
	}
	b.WriteString("\n  " + st.KeyHints("tab", "switch field", "enter", "convert", "ctrl+u", "clear", "esc", "quit") + "\n")
	return b.String()
}

// RunConverter runs the converter on the alternate screen until the user quits.
func RunConverter(reg *unit.Registry, theme Theme) error {
	_, err := tea.NewProgram(NewConverter(reg, theme), tea.WithAltScreen()).Run()
	return err
}
