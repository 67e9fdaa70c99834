package si

import (
	"math"
	"strings"
)

// symbols ordered longest first so that "mol" wins over "m".
var scanOrder = []Base{Amount, Mass, LuminousIntensity, Length, Time, Current, Temperature, Money}

// Parse reads a textual dimension specification such as "kg.m/s2", "s/m",
// "m2", "kgm/s2" or "1/s". Terms are base symbols, optionally separated by
// '.', each followed by an optional signed integer exponent ("s-2", "m^3").
// At most one '/' is allowed; everything after it is divided out.
func Parse(text string) (Dimensions, error) {
	s := strings.TrimSpace(text)
	if s == "" || s == "1" {
		return Dimensionless, nil
	}

	num, den, divided := strings.Cut(s, "/")
	if divided && strings.Contains(den, "/") {
		return Dimensions{}, &ParseError{Input: text, Pos: strings.LastIndex(s, "/"), Reason: "more than one '/'"}
	}

	p := parser{input: text}
	n, err := p.product(num, 0)
	if err != nil {
		return Dimensions{}, err
	}
	if !divided {
		return p.narrow(n)
	}
	d, err := p.product(den, len(num)+1)
	if err != nil {
		return Dimensions{}, err
	}
	for i := range n {
		n[i] -= d[i]
	}
	return p.narrow(n)
}

// MustParse is like Parse but panics on error. It is intended for package
// level tables of known-good dimension strings.
func MustParse(text string) Dimensions {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

type parser struct {
	input string
}

func (p *parser) fail(pos int, reason string) error {
	return &ParseError{Input: p.input, Pos: pos, Reason: reason}
}

func (p *parser) narrow(exps [NumBases]int) (Dimensions, error) {
	var d Dimensions
	for i, e := range exps {
		if e < math.MinInt8 || e > math.MaxInt8 {
			return Dimensions{}, p.fail(-1, "exponent out of range for "+symbols[i])
		}
		d[i] = int8(e)
	}
	return d, nil
}

func (p *parser) product(s string, offset int) ([NumBases]int, error) {
	var exps [NumBases]int
	if s == "1" {
		return exps, nil
	}
	if s == "" {
		return exps, p.fail(offset, "empty term list")
	}

	i := 0
	for i < len(s) {
		base, ok := matchSymbol(s[i:])
		if !ok {
			return exps, p.fail(offset+i, "unknown symbol")
		}
		i += len(symbols[base])

		exp, n, err := p.exponent(s[i:], offset+i)
		if err != nil {
			return exps, err
		}
		i += n
		exps[base] += exp

		if i < len(s) && s[i] == '.' {
			i++
			if i == len(s) {
				return exps, p.fail(offset+i-1, "trailing '.'")
			}
		}
	}
	return exps, nil
}

func matchSymbol(s string) (Base, bool) {
	for _, b := range scanOrder {
		if strings.HasPrefix(s, symbols[b]) {
			return b, true
		}
	}
	return 0, false
}

// exponent reads an optional "^", sign and digits. It returns 1 when no
// exponent is present.
func (p *parser) exponent(s string, pos int) (int, int, error) {
	i := 0
	if i < len(s) && s[i] == '^' {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	value := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		if value > math.MaxInt8+1 {
			return 0, 0, p.fail(pos+start, "exponent out of range")
		}
		i++
	}
	if i == start {
		if i > 0 {
			return 0, 0, p.fail(pos+i-1, "missing exponent digits")
		}
		return 1, 0, nil
	}
	return sign * value, i, nil
}
