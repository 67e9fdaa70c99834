package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/siunits/internal/unit"
)

// UnitTable renders the units of f. Prefixed units generated from another
// unit are listed only when generated is true.
func UnitTable(f *unit.Family, st Styles, generated bool) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		Headers("id", "abbreviations", "name", "system", "scale").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Title.Padding(0, 1)
			}
			if col == 1 {
				return st.Unit.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, u := range f.Units() {
		if u.Generated() && !generated {
			continue
		}
		sc := fmt.Sprint(u.Scale())
		if u.IsStandard() {
			sc = "standard"
		}
		t.Row(u.ID(), strings.Join(u.Abbreviations(), " "), u.Name(), u.System().String(), sc)
	}
	title := st.Title.Render(f.Name()) + st.Subtle.Render(" ["+f.Dimensions().String()+", "+f.Kind().String()+"]")
	return title + "\n" + t.Render()
}

// FamilyTable renders one row per registered family.
func FamilyTable(reg *unit.Registry, st Styles) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		Headers("family", "dimensions", "kind", "standard", "units").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, f := range reg.Families() {
		if f.Synthesized() {
			continue
		}
		t.Row(f.Name(), f.Dimensions().String(), f.Kind().String(), f.Standard().Abbreviation(), strconv.Itoa(len(f.Units())))
	}
	return t.Render()
}
