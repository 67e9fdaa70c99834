package unit

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/san-kum/siunits/internal/scale"
	"github.com/san-kum/siunits/internal/si"
)

// Registry maps dimension vectors and abbreviations to units. Anonymous units
// synthesized by LookupOrCreate are cached for the lifetime of the registry
// and never removed.
type Registry struct {
	mu        sync.RWMutex
	families  []*Family
	byName    map[string]*Family
	primary   map[si.Dimensions]*Family
	anonymous map[si.Dimensions]*Unit
	log       logr.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and synthesis events.
func WithLogger(log logr.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byName:    make(map[string]*Family),
		primary:   make(map[si.Dimensions]*Family),
		anonymous: make(map[si.Dimensions]*Unit),
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a family. The first relative family registered for a
// dimension vector becomes the family LookupOrCreate resolves that vector to.
func (r *Registry) Register(f *Family) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[f.name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFamily, f.name)
	}
	if f.standard == nil {
		return fmt.Errorf("%w: %s has no units", ErrStandardUnit, f.name)
	}
	if f.kind == Absolute {
		if rel, ok := r.byName[f.relative.name]; !ok || rel != f.relative {
			return fmt.Errorf("%w: %s is relative family of %s", ErrUnknownFamily, f.relative.name, f.name)
		}
	}

	f.registry = r
	r.families = append(r.families, f)
	r.byName[f.name] = f
	if f.kind == Relative {
		if _, ok := r.primary[f.dims]; !ok {
			r.primary[f.dims] = f
		}
	}
	r.log.V(2).Info("registered family", "family", f.name, "dimensions", f.dims.String(), "units", len(f.units))
	return nil
}

// AddUnit adds a unit to a registered family.
func (r *Registry) AddUnit(family string, def UnitDef) (*Unit, error) {
	f, err := r.Family(family)
	if err != nil {
		return nil, err
	}
	u, err := f.Add(def)
	if err != nil {
		return nil, err
	}
	r.log.V(1).Info("added unit", "family", family, "unit", u.id, "abbreviation", u.abbreviation)
	return u, nil
}

// Family returns the registered family with the given name.
func (r *Registry) Family(name string) (*Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.byName[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
}

// MustFamily is like Family but panics when the family is missing.
func (r *Registry) MustFamily(name string) *Family {
	f, err := r.Family(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Families returns the named families in registration order.
func (r *Registry) Families() []*Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Family, len(r.families))
	copy(out, r.families)
	return out
}

// FamilyFor returns the primary named family for dims, if any.
func (r *Registry) FamilyFor(dims si.Dimensions) (*Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.primary[dims]
	return f, ok
}

// LookupOrCreate returns the standard unit of the primary family for dims.
// Without a named family it returns the anonymous unit for dims, creating it
// on first use. Repeated calls for the same dims return the same *Unit.
func (r *Registry) LookupOrCreate(dims si.Dimensions) *Unit {
	r.mu.RLock()
	u := r.lookupLocked(dims)
	r.mu.RUnlock()
	if u != nil {
		return u
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if u := r.lookupLocked(dims); u != nil {
		return u
	}
	u = r.synthesizeLocked(dims)
	r.anonymous[dims] = u
	r.log.V(1).Info("synthesized anonymous unit", "dimensions", dims.String())
	return u
}

func (r *Registry) lookupLocked(dims si.Dimensions) *Unit {
	if f, ok := r.primary[dims]; ok {
		return f.standard
	}
	return r.anonymous[dims]
}

func (r *Registry) synthesizeLocked(dims si.Dimensions) *Unit {
	text := dims.String()
	f := NewFamily("SI["+text+"]", dims)
	f.synthesized = true
	u := &Unit{
		id:            text,
		name:          text,
		abbreviation:  text,
		abbreviations: []string{text},
		scale:         scale.Standard{},
		system:        SIDerived,
		family:        f,
	}
	f.standard = u
	f.units = []*Unit{u}
	f.byID[text] = u
	f.byAbbrev[text] = u
	f.registry = r
	return u
}

// Anonymous returns the synthesized units, sorted by abbreviation.
func (r *Registry) Anonymous() []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Unit, 0, len(r.anonymous))
	for _, u := range r.anonymous {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].abbreviation < out[j].abbreviation })
	return out
}

// Unit resolves text to a unit. Abbreviations and ids of relative families
// are tried first, then those of absolute families, and finally text is
// parsed as an SI dimension string ("kg.m/s2") and resolved with
// LookupOrCreate. A string that is neither yields an *si.ParseError.
func (r *Registry) Unit(text string) (*Unit, error) {
	key := strings.TrimSpace(text)

	r.mu.RLock()
	u := r.findLocked(key)
	r.mu.RUnlock()
	if u != nil {
		return u, nil
	}

	dims, err := si.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", key, err)
	}
	return r.LookupOrCreate(dims), nil
}

// UnitOfKind resolves an abbreviation or id among the families of one kind
// only, without falling back to dimension strings.
func (r *Registry) UnitOfKind(text string, kind Kind) (*Unit, error) {
	key := strings.TrimSpace(text)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.families {
		if f.kind != kind {
			continue
		}
		if u := f.find(key); u != nil {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %q among %v families", ErrUnknownUnit, key, kind)
}

// MustUnit is like Unit but panics on error.
func (r *Registry) MustUnit(text string) *Unit {
	u, err := r.Unit(text)
	if err != nil {
		panic(err)
	}
	return u
}

func (r *Registry) findLocked(key string) *Unit {
	for _, kind := range []Kind{Relative, Absolute} {
		for _, f := range r.families {
			if f.kind != kind {
				continue
			}
			if u := f.find(key); u != nil {
				return u
			}
		}
	}
	for _, u := range r.anonymous {
		if u.abbreviation == key {
			return u
		}
	}
	return nil
}

// UnitIn resolves an abbreviation or id within one family.
func (r *Registry) UnitIn(family, key string) (*Unit, error) {
	f, err := r.Family(family)
	if err != nil {
		return nil, err
	}
	return f.Unit(strings.TrimSpace(key))
}

// Entry pairs a unit with its dimension vector.
type Entry struct {
	Unit       *Unit
	Dimensions si.Dimensions
}

// Entries lists every unit of every named family.
func (r *Registry) Entries() []Entry {
	var out []Entry
	for _, f := range r.Families() {
		for _, u := range f.Units() {
			out = append(out, Entry{Unit: u, Dimensions: f.dims})
		}
	}
	return out
}
