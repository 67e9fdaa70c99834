package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/siunits/internal/scale"
	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

const (
	DefaultPrecision  = "float64"
	DefaultLayout     = "dense"
	DefaultPlotWidth  = 60
	DefaultPlotHeight = 15
	DefaultPlotPoints = 50
)

// ErrUnknownPreset indicates a preset name that is not in Presets.
var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	Precision string         `yaml:"precision"`
	Layout    string         `yaml:"layout"`
	Plot      PlotConfig     `yaml:"plot"`
	Presets   []string       `yaml:"presets,omitempty"`
	Families  []FamilyConfig `yaml:"families,omitempty"`
	Units     []UnitConfig   `yaml:"units,omitempty"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Points int `yaml:"points"`
}

// FamilyConfig declares a unit family. The first unit must be the standard
// unit. Absolute families name their relative family in AbsoluteOf and take
// its dimensions.
type FamilyConfig struct {
	Name       string       `yaml:"name"`
	Dimensions string       `yaml:"dimensions,omitempty"`
	AbsoluteOf string       `yaml:"absolute_of,omitempty"`
	Units      []UnitConfig `yaml:"units"`
}

// UnitConfig declares a unit. Factor and Offset relate the unit to the
// family's standard unit: standard = value*factor + offset. A missing
// factor means 1.
type UnitConfig struct {
	Family        string   `yaml:"family,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Name          string   `yaml:"name,omitempty"`
	Abbreviation  string   `yaml:"abbreviation"`
	Abbreviations []string `yaml:"abbreviations,omitempty"`
	Factor        *float64 `yaml:"factor,omitempty"`
	Offset        float64  `yaml:"offset,omitempty"`
	System        string   `yaml:"system,omitempty"`
	Prefixes      string   `yaml:"prefixes,omitempty"`
	Relative      string   `yaml:"relative,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision: DefaultPrecision,
		Layout:    DefaultLayout,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			Points: DefaultPlotPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the scalar settings; unit definitions are checked by Apply.
func (c *Config) Validate() error {
	switch c.Precision {
	case "float32", "float64":
	default:
		return fmt.Errorf("config: precision must be float32 or float64, got %q", c.Precision)
	}
	if _, err := storage.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 || c.Plot.Points < 2 {
		return fmt.Errorf("config: invalid plot size %dx%d with %d points", c.Plot.Width, c.Plot.Height, c.Plot.Points)
	}
	return nil
}

// StorageLayout returns the configured layout.
func (c *Config) StorageLayout() storage.Layout {
	l, _ := storage.ParseLayout(c.Layout)
	return l
}

// Apply registers the configured presets, families and units with reg, in
// that order. A preset named more than once is applied once. Unknown presets
// and malformed definitions are reported before reg is touched; a clash with
// an existing unit or family stops Apply part way, so callers should discard
// reg on error.
func (c *Config) Apply(reg *unit.Registry) error {
	names := c.presetNames()
	presets, err := resolvePresets(names)
	if err != nil {
		return err
	}
	if err := c.check(); err != nil {
		return err
	}
	for i, p := range presets {
		if err := p.Apply(reg); err != nil {
			return fmt.Errorf("config: preset %s: %w", names[i], err)
		}
	}
	for _, fc := range c.Families {
		if err := fc.register(reg); err != nil {
			return err
		}
	}
	for _, uc := range c.Units {
		def, _ := uc.Def()
		if _, err := reg.AddUnit(uc.Family, def); err != nil {
			return fmt.Errorf("config: unit %s.%s: %w", uc.Family, uc.Abbreviation, err)
		}
	}
	return nil
}

// presetNames returns the requested preset names in order, each once.
func (c *Config) presetNames() []string {
	seen := make(map[string]bool, len(c.Presets))
	var names []string
	for _, name := range c.Presets {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func resolvePresets(names []string) ([]*Config, error) {
	out := make([]*Config, 0, len(names))
	for _, name := range names {
		p, err := GetPreset(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// check reports the errors Apply can detect without touching a registry.
func (c *Config) check() error {
	for _, fc := range c.Families {
		if fc.AbsoluteOf == "" {
			if _, err := si.Parse(fc.Dimensions); err != nil {
				return fmt.Errorf("config: family %s: %w", fc.Name, err)
			}
		}
		for _, uc := range fc.Units {
			if _, err := uc.Def(); err != nil {
				return fmt.Errorf("config: unit %s.%s: %w", fc.Name, uc.Abbreviation, err)
			}
		}
	}
	for _, uc := range c.Units {
		if _, err := uc.Def(); err != nil {
			return fmt.Errorf("config: unit %s.%s: %w", uc.Family, uc.Abbreviation, err)
		}
	}
	return nil
}

func (fc FamilyConfig) register(reg *unit.Registry) error {
	var f *unit.Family
	if fc.AbsoluteOf != "" {
		rel, err := reg.Family(fc.AbsoluteOf)
		if err != nil {
			return fmt.Errorf("config: family %s: %w", fc.Name, err)
		}
		f = unit.NewAbsoluteFamily(fc.Name, rel)
	} else {
		dims, err := si.Parse(fc.Dimensions)
		if err != nil {
			return fmt.Errorf("config: family %s: %w", fc.Name, err)
		}
		f = unit.NewFamily(fc.Name, dims)
	}
	for _, uc := range fc.Units {
		def, err := uc.Def()
		if err != nil {
			return fmt.Errorf("config: unit %s.%s: %w", fc.Name, uc.Abbreviation, err)
		}
		if _, err := f.Add(def); err != nil {
			return fmt.Errorf("config: family %s: %w", fc.Name, err)
		}
	}
	return reg.Register(f)
}

// Def converts the configuration into a unit definition.
func (uc UnitConfig) Def() (unit.UnitDef, error) {
	def := unit.UnitDef{
		ID:            uc.ID,
		Name:          uc.Name,
		Abbreviation:  uc.Abbreviation,
		Abbreviations: uc.Abbreviations,
		Relative:      uc.Relative,
	}

	factor := 1.0
	if uc.Factor != nil {
		factor = *uc.Factor
	}
	switch {
	case uc.Offset != 0:
		sc, err := scale.NewOffsetLinear(factor, uc.Offset)
		if err != nil {
			return def, err
		}
		def.Scale = sc
	case factor != 1:
		sc, err := scale.NewLinear(factor)
		if err != nil {
			return def, err
		}
		def.Scale = sc
	}

	sys, err := unit.ParseSystem(strings.ToLower(uc.System))
	if err != nil {
		return def, err
	}
	def.System = sys

	switch strings.ToLower(uc.Prefixes) {
	case "", "none":
	case "unit", "si":
		def.Prefixes = unit.UnitPrefixes
	case "kilo":
		def.Prefixes = unit.KiloPrefixes
	default:
		return def, fmt.Errorf("unknown prefixes %q", uc.Prefixes)
	}
	return def, nil
}
