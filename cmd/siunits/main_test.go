package main

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/siunits/internal/quantity"
	"github.com/san-kum/siunits/internal/unit"
)

func TestConvert(t *testing.T) {
	reg := unit.NewDefaultRegistry()

	tests := []struct {
		text, target, want string
	}{
		{"36 km/h", "m/s", "10 m/s"},
		{"2 h", "", "7200 s"},
		{"1 km", "m", "1000 m"},
	}
	for _, tt := range tests {
		got, err := convert[float64](reg, tt.text, tt.target)
		if err != nil {
			t.Errorf("convert(%q, %q): %v", tt.text, tt.target, err)
			continue
		}
		if got != tt.want {
			t.Errorf("convert(%q, %q) = %q, want %q", tt.text, tt.target, got, tt.want)
		}
	}

	got, err := convert[float32](reg, "3 km", "m")
	if err != nil || got != "3000 m" {
		t.Errorf("float32 convert = %q, %v", got, err)
	}

	if _, err := convert[float64](reg, "1 kg", "m"); !errors.Is(err, quantity.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}

	got, err = convert[float64](reg, "20 °C", "°F")
	if err != nil {
		t.Fatal(err)
	}
	f, err := quantity.Parse[float64](reg, got)
	if err != nil || math.Abs(f.Value()-68) > 1e-9 || f.Unit().Abbreviation() != "°F" {
		t.Errorf("20 °C in °F = %q, want 68 °F", got)
	}
}
