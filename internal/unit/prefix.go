package unit

// Prefix is an SI prefix such as kilo or micro.
type Prefix struct {
	Symbol  string // display symbol, e.g. "µ"
	Textual string // ASCII symbol, e.g. "mu"
	Name    string
	Factor  float64
}

// Prefixes selects which SI-prefixed units a unit definition generates.
type Prefixes int

const (
	// NoPrefixes generates nothing.
	NoPrefixes Prefixes = iota
	// UnitPrefixes generates yocto..yotta versions of the unit.
	UnitPrefixes
	// KiloPrefixes treats the unit as kilo-prefixed (kg) and generates the
	// other prefixes from the bare unit (g, mg, Mg, ...).
	KiloPrefixes
)

// SIPrefixes lists the SI prefixes from yocto to yotta.
var SIPrefixes = []Prefix{
	{"y", "y", "yocto", 1e-24},
	{"z", "z", "zepto", 1e-21},
	{"a", "a", "atto", 1e-18},
	{"f", "f", "femto", 1e-15},
	{"p", "p", "pico", 1e-12},
	{"n", "n", "nano", 1e-9},
	{"µ", "mu", "micro", 1e-6},
	{"m", "m", "milli", 1e-3},
	{"c", "c", "centi", 1e-2},
	{"d", "d", "deci", 1e-1},
	{"da", "da", "deca", 1e1},
	{"h", "h", "hecto", 1e2},
	{"k", "k", "kilo", 1e3},
	{"M", "M", "mega", 1e6},
	{"G", "G", "giga", 1e9},
	{"T", "T", "tera", 1e12},
	{"P", "P", "peta", 1e15},
	{"E", "E", "exa", 1e18},
	{"Z", "Z", "zetta", 1e21},
	{"Y", "Y", "yotta", 1e24},
}

// PrefixBySymbol returns the prefix with the given display or textual symbol.
func PrefixBySymbol(symbol string) (Prefix, bool) {
	for _, p := range SIPrefixes {
		if p.Symbol == symbol || p.Textual == symbol {
			return p, true
		}
	}
	return Prefix{}, false
}
