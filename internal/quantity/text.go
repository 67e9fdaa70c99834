package quantity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

func bitSize[T storage.Float]() int {
	var x T = 1 << 24
	if x+1 == x {
		return 32
	}
	return 64
}

func formatNumber[T storage.Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
}

// Format renders s as "<number> <abbreviation>" in its display unit, using
// the shortest representation that parses back to the same value.
func Format[T storage.Float](s Scalar[T]) string {
	return formatNumber(s.Value()) + " " + s.u.Abbreviation()
}

// FormatVector renders v as "[v1, v2, ...] <abbreviation>".
func FormatVector[T storage.Float](v *Vector[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatNumber(x))
	}
	b.WriteString("] ")
	b.WriteString(v.u.Abbreviation())
	return b.String()
}

// splitLast splits text at its last run of whitespace.
func splitLast(text string) (string, string, bool) {
	text = strings.TrimSpace(text)
	end := strings.LastIndexFunc(text, unicode.IsSpace)
	if end < 0 {
		return "", "", false
	}
	_, size := utf8.DecodeRuneInString(text[end:])
	start := strings.LastIndexFunc(text[:end], func(r rune) bool { return !unicode.IsSpace(r) })
	return text[:start+1], text[end+size:], true
}

func parseNumber[T storage.Float](input, num string, pos int) (T, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(num), bitSize[T]())
	if err != nil {
		return 0, &si.ParseError{Input: input, Pos: pos, Reason: fmt.Sprintf("bad number %q", num)}
	}
	return T(x), nil
}

func resolve(reg *unit.Registry, input, abbrev string) (*unit.Unit, error) {
	u, err := reg.Unit(abbrev)
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", input, err)
	}
	return u, nil
}

// Parse reads "<number> <unit>" as produced by Format. The unit text may be
// any abbreviation or id known to reg, or an SI dimension string.
func Parse[T storage.Float](reg *unit.Registry, text string) (Scalar[T], error) {
	num, abbrev, ok := splitLast(text)
	if !ok {
		return Scalar[T]{}, &si.ParseError{Input: text, Pos: -1, Reason: "expected \"<number> <unit>\""}
	}
	x, err := parseNumber[T](text, num, 0)
	if err != nil {
		return Scalar[T]{}, err
	}
	u, err := resolve(reg, text, abbrev)
	if err != nil {
		return Scalar[T]{}, err
	}
	return New(x, u), nil
}

// ParseReading is like Parse but reads an offset unit such as °C as a point
// on its scale. When the abbreviation names both a relative and an absolute
// unit and the two disagree on where zero lies, the absolute unit wins.
func ParseReading[T storage.Float](reg *unit.Registry, text string) (Scalar[T], error) {
	q, err := Parse[T](reg, text)
	if err != nil {
		return Scalar[T]{}, err
	}
	if abs := offsetReading(reg, q.u); abs != nil {
		return New(q.Value(), abs), nil
	}
	return q, nil
}

func offsetReading(reg *unit.Registry, u *unit.Unit) *unit.Unit {
	if u.Kind() != unit.Relative {
		return nil
	}
	abs, err := reg.UnitOfKind(u.Abbreviation(), unit.Absolute)
	if err != nil || abs.Dimensions() != u.Dimensions() || abs.ToStandard(0) == u.ToStandard(0) {
		return nil
	}
	return abs
}

// ConvertText parses text with ParseReading and expresses it in target,
// which is resolved among units of the parsed kind first. An empty target
// selects the standard unit of the parsed family.
func ConvertText[T storage.Float](reg *unit.Registry, text, target string) (from, to Scalar[T], err error) {
	if from, err = ParseReading[T](reg, text); err != nil {
		return
	}
	u := from.u.Standard()
	if target = strings.TrimSpace(target); target != "" {
		if u, err = reg.UnitOfKind(target, from.Kind()); err != nil {
			if u, err = reg.Unit(target); err != nil {
				return
			}
		}
	}
	to, err = from.InUnit(u)
	return
}

// ParseNamed parses text as Q, resolving the unit within Q's family first.
func ParseNamed[Q Named[Q]](reg *unit.Registry, text string) (Q, error) {
	var q Q
	num, abbrev, ok := splitLast(text)
	if !ok {
		return q, &si.ParseError{Input: text, Pos: -1, Reason: "expected \"<number> <unit>\""}
	}
	x, err := parseNumber[float64](text, num, 0)
	if err != nil {
		return q, err
	}
	u, err := reg.UnitIn(q.FamilyName(), abbrev)
	if err != nil {
		if u, err = resolve(reg, text, abbrev); err != nil {
			return q, err
		}
	}
	return Make[Q](x, u)
}

// ParseVector reads "[v1, v2, ...] <unit>" as produced by FormatVector.
func ParseVector[T storage.Float](reg *unit.Registry, text string, layout storage.Layout) (*Vector[T], error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "[") {
		return nil, &si.ParseError{Input: text, Pos: 0, Reason: "expected '['"}
	}
	end := strings.LastIndexByte(s, ']')
	if end < 0 {
		return nil, &si.ParseError{Input: text, Pos: len(s), Reason: "missing ']'"}
	}
	abbrev := strings.TrimSpace(s[end+1:])
	if abbrev == "" {
		return nil, &si.ParseError{Input: text, Pos: end + 1, Reason: "missing unit"}
	}

	values := []T{}
	if body := strings.TrimSpace(s[1:end]); body != "" {
		pos := 1
		for _, field := range strings.Split(s[1:end], ",") {
			x, err := parseNumber[T](text, field, pos)
			if err != nil {
				return nil, err
			}
			values = append(values, x)
			pos += len(field) + 1
		}
	}
	u, err := resolve(reg, text, abbrev)
	if err != nil {
		return nil, err
	}
	return NewVector(values, u, layout)
}
