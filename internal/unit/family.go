package unit

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/san-kum/siunits/internal/scale"
	"github.com/san-kum/siunits/internal/si"
)

// UnitDef describes a unit to add to a family.
type UnitDef struct {
	ID            string // defaults to Abbreviation
	Name          string // defaults to ID
	Abbreviation  string
	Abbreviations []string
	Scale         scale.Scale // nil means the standard scale
	System        System
	Prefixes      Prefixes
	// Relative names the unit of the relative family that an absolute unit
	// maps onto for differences. Defaults to ID.
	Relative string
}

// Family holds all units of one kind of quantity.
type Family struct {
	name        string
	dims        si.Dimensions
	kind        Kind
	relative    *Family
	synthesized bool
	registry    *Registry

	standard *Unit
	units    []*Unit
	byID     map[string]*Unit
	byAbbrev map[string]*Unit
}

// NewFamily creates an empty relative family.
func NewFamily(name string, dims si.Dimensions) *Family {
	return &Family{
		name:     name,
		dims:     dims,
		kind:     Relative,
		byID:     make(map[string]*Unit),
		byAbbrev: make(map[string]*Unit),
	}
}

// NewAbsoluteFamily creates an empty absolute family whose differences are
// expressed in relative.
func NewAbsoluteFamily(name string, relative *Family) *Family {
	f := NewFamily(name, relative.dims)
	f.kind = Absolute
	f.relative = relative
	return f
}

func (f *Family) Name() string              { return f.name }
func (f *Family) Dimensions() si.Dimensions { return f.dims }
func (f *Family) Kind() Kind                { return f.kind }
func (f *Family) Standard() *Unit           { return f.standard }
func (f *Family) Registry() *Registry       { return f.registry }

// RelativeFamily returns the family differences are expressed in; for a
// relative family that is the family itself.
func (f *Family) RelativeFamily() *Family {
	if f.relative != nil {
		return f.relative
	}
	return f
}

// Synthesized reports whether the registry created the family on demand for
// a dimension vector without a named family.
func (f *Family) Synthesized() bool { return f.synthesized }

// Units returns the family's units in registration order.
func (f *Family) Units() []*Unit {
	defer f.rlock()()
	out := make([]*Unit, len(f.units))
	copy(out, f.units)
	return out
}

// Unit returns the unit with the given abbreviation or id.
func (f *Family) Unit(key string) (*Unit, error) {
	defer f.rlock()()
	if u := f.find(key); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrUnknownUnit, key, f.name)
}

// MustUnit is like Unit but panics when the unit is missing.
func (f *Family) MustUnit(key string) *Unit {
	u, err := f.Unit(key)
	if err != nil {
		panic(err)
	}
	return u
}

func (f *Family) find(key string) *Unit {
	if u, ok := f.byAbbrev[key]; ok {
		return u
	}
	if u, ok := f.byID[key]; ok {
		return u
	}
	return nil
}

// Add adds a unit to the family, together with its SI-prefixed variants when
// requested. The first unit added becomes the standard unit and must have a
// standard scale.
func (f *Family) Add(def UnitDef) (*Unit, error) {
	defer f.lock()()
	return f.add(def)
}

func (f *Family) add(def UnitDef) (*Unit, error) {
	u, err := f.build(def, false)
	if err != nil {
		return nil, err
	}
	if err := f.prefixable(u, def.Prefixes); err != nil {
		return nil, err
	}
	snap := f.snapshot()
	if err := f.insert(u); err != nil {
		return nil, err
	}
	if def.Prefixes != NoPrefixes {
		if err := f.derivePrefixes(u, def.Prefixes); err != nil {
			f.restore(snap)
			return nil, err
		}
	}
	return u, nil
}

// familyState is a copy of the lookup tables of a family, taken before a
// multi-unit add so a failure can be undone.
type familyState struct {
	standard *Unit
	units    []*Unit
	byID     map[string]*Unit
	byAbbrev map[string]*Unit
}

func (f *Family) snapshot() familyState {
	return familyState{
		standard: f.standard,
		units:    slices.Clone(f.units),
		byID:     maps.Clone(f.byID),
		byAbbrev: maps.Clone(f.byAbbrev),
	}
}

func (f *Family) restore(s familyState) {
	f.standard = s.standard
	f.units = s.units
	f.byID = s.byID
	f.byAbbrev = s.byAbbrev
}

func (f *Family) build(def UnitDef, generated bool) (*Unit, error) {
	if def.Abbreviation == "" {
		return nil, fmt.Errorf("%s: unit without abbreviation", f.name)
	}
	id := def.ID
	if id == "" {
		id = def.Abbreviation
	}
	name := def.Name
	if name == "" {
		name = id
	}
	sc := def.Scale
	if sc == nil {
		sc = scale.Standard{}
	}
	if f.standard == nil && !sc.IsStandard() {
		return nil, fmt.Errorf("%w: %s.%s has scale %v", ErrStandardUnit, f.name, id, sc)
	}

	u := &Unit{
		id:           id,
		name:         name,
		abbreviation: def.Abbreviation,
		scale:        sc,
		system:       def.System,
		family:       f,
		generated:    generated,
	}
	u.abbreviations = appendUnique([]string{def.Abbreviation}, def.Abbreviations...)

	if f.kind == Absolute {
		relID := def.Relative
		if relID == "" {
			relID = id
		}
		rel := f.relative.find(relID)
		if rel == nil {
			return nil, fmt.Errorf("%w: relative unit %q for %s.%s", ErrUnknownUnit, relID, f.name, id)
		}
		u.relative = rel
	}
	return u, nil
}

// insert registers u by id and abbreviations. Explicit units replace
// generated ones; a generated unit never replaces an explicit one and is
// skipped instead. A clash between units of the same origin is an error and
// leaves the family unchanged.
func (f *Family) insert(u *Unit) error {
	displaced, skip, err := f.clashes(u)
	if err != nil || skip {
		return err
	}
	for _, prev := range displaced {
		f.remove(prev)
	}

	if f.standard == nil {
		f.standard = u
	}
	f.units = append(f.units, u)
	f.byID[u.id] = u
	for _, a := range u.abbreviations {
		f.byAbbrev[a] = u
	}
	return nil
}

// clashes reports the generated units an explicit u displaces, or whether a
// generated u loses to an explicit unit. It does not modify f.
func (f *Family) clashes(u *Unit) (displaced []*Unit, skip bool, err error) {
	check := func(prev *Unit, what, key string) {
		switch {
		case prev.generated == u.generated:
			if err == nil {
				err = fmt.Errorf("%w: %s %q in %s", ErrDuplicateUnit, what, key, f.name)
			}
		case u.generated:
			skip = true
		case !slices.Contains(displaced, prev):
			displaced = append(displaced, prev)
		}
	}
	if prev, ok := f.byID[u.id]; ok {
		check(prev, "id", u.id)
	}
	for _, a := range u.abbreviations {
		if prev, ok := f.byAbbrev[a]; ok {
			check(prev, "abbreviation", a)
		}
	}
	if skip {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return displaced, false, nil
}

func (f *Family) remove(u *Unit) {
	for i, x := range f.units {
		if x == u {
			f.units = append(f.units[:i], f.units[i+1:]...)
			break
		}
	}
	if f.byID[u.id] == u {
		delete(f.byID, u.id)
	}
	for _, a := range u.abbreviations {
		if f.byAbbrev[a] == u {
			delete(f.byAbbrev, a)
		}
	}
}

func (f *Family) prefixable(u *Unit, mode Prefixes) error {
	if mode == NoPrefixes {
		return nil
	}
	if _, ok := u.scale.(scale.Factored); !ok {
		return fmt.Errorf("%w: %s.%s", ErrNotPrefixable, f.name, u.id)
	}
	if mode == KiloPrefixes && (!strings.HasPrefix(u.id, "k") || !strings.HasPrefix(u.abbreviation, "k")) {
		return fmt.Errorf("%w: %s.%s is not a kilo unit", ErrNotPrefixable, f.name, u.id)
	}
	return nil
}

func (f *Family) derivePrefixes(u *Unit, mode Prefixes) error {
	factored := u.scale.(scale.Factored)

	bare := func(s string) string { return s }
	base := 1.0
	prefixes := SIPrefixes
	if mode == KiloPrefixes {
		bare = func(s string) string { return strings.TrimPrefix(s, "k") }
		base = 1e-3
		prefixes = append([]Prefix{{Name: ""}}, SIPrefixes...)
	}

	for _, p := range prefixes {
		factor := p.Factor
		if p.Name == "" {
			factor = 1
		}
		sc, err := factored.Derive(factor * base)
		if err != nil {
			return err
		}
		abbrevs := make([]string, 0, 2*len(u.abbreviations))
		for _, a := range u.abbreviations {
			abbrevs = append(abbrevs, p.Textual+bare(a))
			if p.Symbol != p.Textual {
				abbrevs = append(abbrevs, p.Symbol+bare(a))
			}
		}
		name := p.Name + bare(u.name)
		if mode == KiloPrefixes {
			name = p.Name + strings.TrimPrefix(u.name, "kilo")
		}
		def := UnitDef{
			ID:            p.Textual + bare(u.id),
			Name:          name,
			Abbreviation:  p.Symbol + bare(u.abbreviation),
			Abbreviations: abbrevs,
			Scale:         sc,
			System:        u.system,
		}
		g, err := f.build(def, true)
		if err != nil {
			return err
		}
		if err := f.insert(g); err != nil {
			return err
		}
	}
	return nil
}

func (f *Family) lock() func() {
	if f.registry == nil {
		return func() {}
	}
	f.registry.mu.Lock()
	return f.registry.mu.Unlock
}

func (f *Family) rlock() func() {
	if f.registry == nil {
		return func() {}
	}
	f.registry.mu.RLock()
	return f.registry.mu.RUnlock
}

func (f *Family) String() string {
	return fmt.Sprintf("%s [%v]", f.name, f.dims)
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		dup := false
		for _, d := range dst {
			if d == v {
				dup = true
				break
			}
		}
		if !dup && v != "" {
			dst = append(dst, v)
		}
	}
	return dst
}
