package viz

import (
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/siunits/internal/quantity"
	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

func TestGetTheme(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("nonexistent").Name != "cyberpunk" {
		t.Error("expected fallback to cyberpunk")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func TestUnitTable(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	st := NewStyles(ThemeMinimal)

	length := reg.MustFamily(unit.Length)
	out := UnitTable(length, st, false)
	for _, want := range []string{"Length", "abbreviations", "km", "ft", "standard"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}

	mass := reg.MustFamily(unit.Mass)
	short := UnitTable(mass, st, false)
	full := UnitTable(mass, st, true)
	if strings.Count(full, "\n") <= strings.Count(short, "\n") {
		t.Error("generated units should add rows")
	}
	if !strings.Contains(full, "mg") {
		t.Error("expected generated mg in full table")
	}
}

func TestFamilyTable(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	out := FamilyTable(reg, NewStyles(ThemeMinimal))
	for _, want := range []string{"Speed", "AbsoluteTemperature", "Abs", "m/s"} {
		if !strings.Contains(out, want) {
			t.Errorf("family table missing %q", want)
		}
	}
}

func TestSweep(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	c := reg.MustUnit("°C")
	f := reg.MustUnit("°F")

	ys, err := Sweep(c, f, 0, 100, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 90, 180}
	for i := range want {
		if math.Abs(ys[i]-want[i]) > 1e-9 {
			t.Errorf("point %d: expected %v, got %v", i, want[i], ys[i])
		}
	}

	if _, err := Sweep(c, f, 10, 10, 5); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := Sweep(c, f, 0, 1, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := Sweep(c, reg.MustUnit("m"), 0, 1, 5); !errors.Is(err, unit.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestPlotConversion(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	out, err := PlotConversion(reg.MustUnit("mi"), reg.MustUnit("km"), 0, 10, DefaultPlotOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "mi in km") {
		t.Errorf("missing caption in plot:\n%s", out)
	}
}

func TestPlotVector(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	v, err := quantity.NewVector([]float64{1, 4, 9, 16}, reg.MustUnit("km"), storage.Dense)
	if err != nil {
		t.Fatal(err)
	}
	out, err := PlotVector(v, DefaultPlotOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "4 values in km") {
		t.Errorf("missing caption in plot:\n%s", out)
	}
}

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func press(m tea.Model, k tea.KeyType) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: k})
	return m
}

func TestConverter(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	var m tea.Model = NewConverter(reg, ThemeMinimal)

	m = typeText(m, "1 km")
	m = press(m, tea.KeyTab)
	m = typeText(m, "m")
	m = press(m, tea.KeyEnter)

	c := m.(Converter)
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
	if c.Result() != "1000 m" {
		t.Errorf("expected 1000 m, got %q", c.Result())
	}
	if len(c.History()) != 1 || c.History()[0] != "1 km = 1000 m" {
		t.Errorf("unexpected history %v", c.History())
	}
	if !strings.Contains(c.View(), "1000 m") {
		t.Error("view should show the result")
	}
}

func TestConverter_StandardTarget(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	var m tea.Model = NewConverter(reg, ThemeMinimal)

	m = typeText(m, "2 min")
	m = press(m, tea.KeyEnter)
	if got := m.(Converter).Result(); got != "120 s" {
		t.Errorf("expected 120 s, got %q", got)
	}
}

func TestConverter_Errors(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	var m tea.Model = NewConverter(reg, ThemeMinimal)

	m = typeText(m, "3 kg")
	m = press(m, tea.KeyTab)
	m = typeText(m, "m")
	m = press(m, tea.KeyEnter)
	if !errors.Is(m.(Converter).Err(), unit.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", m.(Converter).Err())
	}

	m = press(m, tea.KeyCtrlU)
	m = typeText(m, "nounit")
	m = press(m, tea.KeyEnter)
	if !errors.Is(m.(Converter).Err(), si.ErrParse) {
		t.Errorf("expected parse error, got %v", m.(Converter).Err())
	}
	if !strings.Contains(m.(Converter).View(), "nounit") {
		t.Error("view should show the error")
	}
}

func TestConverter_Editing(t *testing.T) {
	reg := unit.NewDefaultRegistry()
	var m tea.Model = NewConverter(reg, ThemeMinimal)

	m = typeText(m, "5 kmx")
	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyEnter)
	if got := m.(Converter).Result(); got != "5000 m" {
		t.Errorf("expected 5000 m, got %q", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit message")
	}
}
