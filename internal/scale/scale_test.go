package scale

import (
	"errors"
	"math"
	"testing"
)

func TestNewLinear_InvalidFactor(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
	}{
		{"zero", 0},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLinear(tt.factor); !errors.Is(err, ErrInvalidScale) {
				t.Errorf("NewLinear(%v) error = %v, want ErrInvalidScale", tt.factor, err)
			}
			if _, err := NewOffsetLinear(tt.factor, 1); !errors.Is(err, ErrInvalidScale) {
				t.Errorf("NewOffsetLinear(%v) error = %v, want ErrInvalidScale", tt.factor, err)
			}
			if _, err := NewGrade(tt.factor); !errors.Is(err, ErrInvalidScale) {
				t.Errorf("NewGrade(%v) error = %v, want ErrInvalidScale", tt.factor, err)
			}
		})
	}
}

func TestNewOffsetLinear_InvalidOffset(t *testing.T) {
	if _, err := NewOffsetLinear(1, math.NaN()); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
}

func TestLinear(t *testing.T) {
	km, err := NewLinear(1000)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	if got := km.ToStandard(2.5); got != 2500 {
		t.Errorf("ToStandard(2.5) = %v, want 2500", got)
	}
	if got := km.FromStandard(2500); got != 2.5 {
		t.Errorf("FromStandard(2500) = %v, want 2.5", got)
	}
	if km.IsStandard() {
		t.Error("km scale should not be standard")
	}
}

func TestOffsetLinear_Celsius(t *testing.T) {
	celsius, _ := NewOffsetLinear(1, 273.15)
	fahrenheit, _ := NewOffsetLinear(5.0/9.0, 459.67*5.0/9.0)

	if got := celsius.ToStandard(0); math.Abs(got-273.15) > 1e-12 {
		t.Errorf("0 C = %v K, want 273.15", got)
	}
	if got := Convert(100, celsius, fahrenheit); math.Abs(got-212) > 1e-9 {
		t.Errorf("100 C = %v F, want 212", got)
	}
	// the offset is applied once, even after a chain of conversions
	v := 37.0
	for i := 0; i < 10; i++ {
		v = Convert(v, celsius, fahrenheit)
		v = Convert(v, fahrenheit, celsius)
	}
	if math.Abs(v-37) > 1e-9 {
		t.Errorf("chained conversion drifted to %v", v)
	}
}

func TestDerive_KeepsOffset(t *testing.T) {
	celsius, _ := NewOffsetLinear(1, 273.15)
	milli, err := celsius.Derive(1e-3)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if got := milli.ToStandard(1000); math.Abs(got-274.15) > 1e-9 {
		t.Errorf("1000 mC = %v K, want 274.15", got)
	}
	if _, err := (Linear{factor: 2}).Derive(0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Derive(0) error = %v, want ErrInvalidScale", err)
	}
}

func TestGrade(t *testing.T) {
	percent, _ := NewGrade(0.01)

	if got := percent.ToStandard(100); math.Abs(got-math.Pi/4) > 1e-12 {
		t.Errorf("100%% grade = %v rad, want pi/4", got)
	}
	if got := percent.FromStandard(math.Pi / 4); math.Abs(got-100) > 1e-9 {
		t.Errorf("pi/4 rad = %v %%, want 100", got)
	}
}

func TestRoundTrip(t *testing.T) {
	lin, _ := NewLinear(0.3048)
	off, _ := NewOffsetLinear(5.0/9.0, 255.3722222)
	grade, _ := NewGrade(0.01)
	scales := []Scale{Standard{}, lin, off, grade}
	values := []float64{-1e6, -42.5, -1, 0, 1e-9, 0.5, 3, 1234.5678}

	for _, s := range scales {
		for _, v := range values {
			got := s.FromStandard(s.ToStandard(v))
			tol := 1e-9 * math.Max(1, math.Abs(v))
			if math.Abs(got-v) > tol {
				t.Errorf("%v: round trip of %v gave %v", s, v, got)
			}
		}
	}
}

func BenchmarkOffsetConvert(b *testing.B) {
	c, _ := NewOffsetLinear(1, 273.15)
	f, _ := NewOffsetLinear(5.0/9.0, 459.67*5.0/9.0)
	v := 20.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = Convert(v, c, f)
		v = Convert(v, f, c)
	}
}
