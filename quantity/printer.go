package quantity

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultPrecision is the maximum number of decimal places printed for
// numbers which are not terminating decimals or have more places.
const DefaultPrecision = 4

// Style selects the output format of printed values.
type Style int8

// Output styles.
const (
	Plain Style = iota
	LaTeX
)

func (s Style) String() string {
	if s == LaTeX {
		return "latex"
	}
	return "plain"
}

// ParseStyle reads "plain" or "latex", case-insensitive. An empty string
// selects Plain.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "text":
		return Plain, nil
	case "latex", "tex":
		return LaTeX, nil
	}
	return Plain, fmt.Errorf("unknown output style %q", s)
}

// NonBreakingSpace is the marker which keeps a number and its unit on the
// same line.
func (s Style) NonBreakingSpace() string {
	if s == LaTeX {
		return "~"
	}
	return "\u00a0"
}

// --- Units -----------------------------------------------------------------

// Unit is a unit symbol raised to an exponent (1 for plain units).
type Unit struct {
	Symbol   string
	Exponent int
}

// NewUnit creates a unit. Exponents below 1 are treated as 1.
func NewUnit(symbol string, exponent int) Unit {
	if exponent < 1 {
		exponent = 1
	}
	return Unit{Symbol: symbol, Exponent: exponent}
}

// UnitOf converts a unit symbol or a Unit to a Unit.
func UnitOf(v interface{}) (Unit, error) {
	switch u := v.(type) {
	case Unit:
		return NewUnit(u.Symbol, u.Exponent), nil
	case *Unit:
		return NewUnit(u.Symbol, u.Exponent), nil
	case string:
		if u == "" {
			return Unit{}, fmt.Errorf("empty unit symbol")
		}
		return NewUnit(u, 1), nil
	}
	return Unit{}, fmt.Errorf("not a unit: %v (%T)", v, v)
}

func (u Unit) String() string {
	if u.Exponent <= 1 {
		return u.Symbol
	}
	return u.Symbol + superscript(u.Exponent)
}

var superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func superscript(n int) string {
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		b.WriteRune(superscripts[d-'0'])
	}
	return b.String()
}

// Quantity is a number together with its unit.
type Quantity struct {
	Value Number
	Unit  Unit
}

// --- Printer ---------------------------------------------------------------

// Printer renders values for a language and an output style.
type Printer struct {
	Tag       language.Tag
	Style     Style
	Precision int // maximum decimal places
	mp        *message.Printer
}

// NewPrinter creates a printer for a language.
func NewPrinter(tag language.Tag, style Style) *Printer {
	return &Printer{
		Tag:       tag,
		Style:     style,
		Precision: DefaultPrecision,
		mp:        message.NewPrinter(tag),
	}
}

func (pr *Printer) precision() int {
	if pr.Precision < 0 {
		return DefaultPrecision
	}
	return pr.Precision
}

// Number renders a number with the decimal and grouping marks of the
// printer's language. LaTeX output protects a decimal comma with braces.
func (pr *Printer) Number(n Number) string {
	text := n.Text(pr.precision())
	places := 0
	if i := strings.IndexByte(text, '.'); i >= 0 {
		places = len(text) - i - 1
	}
	var s string
	if r := n.Rat(); r.IsInt() && r.Num().IsInt64() {
		s = pr.mp.Sprintf("%v", number.Decimal(r.Num().Int64()))
	} else {
		f, _ := strconv.ParseFloat(text, 64)
		s = pr.mp.Sprintf("%v", number.Decimal(f,
			number.MinFractionDigits(places), number.MaxFractionDigits(places)))
	}
	if pr.Style == LaTeX {
		s = strings.ReplaceAll(s, ",", "{,}")
	}
	return s
}

// Unit renders a unit symbol. Exponents are superscripts in plain text and
// siunitx powers in LaTeX.
func (pr *Printer) Unit(u Unit) string {
	if pr.Style == LaTeX {
		return `\si{` + latexUnit(u) + `}`
	}
	return u.String()
}

func latexUnit(u Unit) string {
	if u.Exponent <= 1 {
		return u.Symbol
	}
	return u.Symbol + "^{" + strconv.Itoa(u.Exponent) + "}"
}

// Quantity renders a number followed by a unit.
func (pr *Printer) Quantity(n Number, u Unit) string {
	if pr.Style == LaTeX {
		return `\SI{` + n.Text(pr.precision()) + `}{` + latexUnit(u) + `}`
	}
	return pr.Number(n) + " " + pr.Unit(u)
}

// Sprint renders an attribute value. Strings are returned unchanged, numbers
// are localized, units and quantities are rendered in the printer's style.
func (pr *Printer) Sprint(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Unit:
		return pr.Unit(x)
	case *Unit:
		return pr.Unit(*x)
	case Quantity:
		return pr.Quantity(x.Value, x.Unit)
	case *Quantity:
		return pr.Quantity(x.Value, x.Unit)
	case Number, *Number, *big.Rat, *big.Int,
		int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64:
		n, err := ToNumber(x)
		if err != nil {
			T().Errorf("cannot print %v: %v", x, err)
			return fmt.Sprint(x)
		}
		return pr.Number(n)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
