package quantity

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrNotANumber is returned for values which cannot be converted to a Number.
var ErrNotANumber = errors.New("not a number")

// ErrDivisionByZero is returned by Quo.
var ErrDivisionByZero = errors.New("division by zero")

// Number is an exact rational number. The zero value is 0.
type Number struct {
	r *big.Rat
}

// NewNumber creates a number from a rational, which is copied.
func NewNumber(r *big.Rat) Number {
	if r == nil {
		return Number{}
	}
	return Number{r: new(big.Rat).Set(r)}
}

// IntNumber creates a number from an integer.
func IntNumber(i int64) Number {
	return Number{r: new(big.Rat).SetInt64(i)}
}

// ParseNumber reads decimals ("2.5", "-3") and fractions ("1/3").
func ParseNumber(s string) (Number, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Number{}, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return Number{r: r}, nil
}

// ToNumber converts Go numeric values, numeric strings and big values to
// a Number.
func ToNumber(v interface{}) (Number, error) {
	switch n := v.(type) {
	case Number:
		return n, nil
	case *Number:
		return *n, nil
	case int:
		return IntNumber(int64(n)), nil
	case int8:
		return IntNumber(int64(n)), nil
	case int16:
		return IntNumber(int64(n)), nil
	case int32:
		return IntNumber(int64(n)), nil
	case int64:
		return IntNumber(n), nil
	case uint:
		return Number{r: new(big.Rat).SetUint64(uint64(n))}, nil
	case uint8:
		return IntNumber(int64(n)), nil
	case uint16:
		return IntNumber(int64(n)), nil
	case uint32:
		return IntNumber(int64(n)), nil
	case uint64:
		return Number{r: new(big.Rat).SetUint64(n)}, nil
	case float32:
		return ParseNumber(strconv.FormatFloat(float64(n), 'f', -1, 32))
	case float64:
		return ParseNumber(strconv.FormatFloat(n, 'f', -1, 64))
	case *big.Rat:
		return NewNumber(n), nil
	case *big.Int:
		return Number{r: new(big.Rat).SetInt(n)}, nil
	case string:
		return ParseNumber(n)
	}
	return Number{}, fmt.Errorf("%w: %v (%T)", ErrNotANumber, v, v)
}

func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// Rat returns a copy of the underlying rational.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.rat())
}

// Float64 returns the nearest float64 value.
func (n Number) Float64() float64 {
	f, _ := n.rat().Float64()
	return f
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	return n.rat().Sign()
}

// Cmp compares n and m.
func (n Number) Cmp(m Number) int {
	return n.rat().Cmp(m.rat())
}

// Add returns n+m.
func (n Number) Add(m Number) Number {
	return Number{r: new(big.Rat).Add(n.rat(), m.rat())}
}

// Sub returns n-m.
func (n Number) Sub(m Number) Number {
	return Number{r: new(big.Rat).Sub(n.rat(), m.rat())}
}

// Mul returns n*m.
func (n Number) Mul(m Number) Number {
	return Number{r: new(big.Rat).Mul(n.rat(), m.rat())}
}

// Quo returns n/m.
func (n Number) Quo(m Number) (Number, error) {
	if m.Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	return Number{r: new(big.Rat).Quo(n.rat(), m.rat())}, nil
}

// Pow returns n raised to an integer power.
func (n Number) Pow(e int) (Number, error) {
	if e < 0 {
		inv, err := IntNumber(1).Quo(n)
		if err != nil {
			return Number{}, err
		}
		return inv.Pow(-e)
	}
	z := big.NewRat(1, 1)
	for i := 0; i < e; i++ {
		z.Mul(z, n.rat())
	}
	return Number{r: z}, nil
}

// Decimals returns the number of decimal places of n and whether n is a
// terminating decimal at all.
func (n Number) Decimals() (int, bool) {
	d := new(big.Int).Set(n.rat().Denom())
	c2 := strip(d, 2)
	c5 := strip(d, 5)
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if c2 > c5 {
		return c2, true
	}
	return c5, true
}

// strip divides d by f as long as possible, and returns the count.
func strip(d *big.Int, f int64) int {
	bf := big.NewInt(f)
	q, m := new(big.Int), new(big.Int)
	cnt := 0
	for {
		q.QuoRem(d, bf, m)
		if m.Sign() != 0 {
			return cnt
		}
		d.Set(q)
		cnt++
	}
}

// Text formats n as a plain decimal with '.' as decimal mark and at most
// maxDecimals decimal places. Trailing zeros are dropped.
func (n Number) Text(maxDecimals int) string {
	places, exact := n.Decimals()
	if !exact || places > maxDecimals {
		places = maxDecimals
	}
	s := n.rat().FloatString(places)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (n Number) String() string {
	return n.Text(DefaultPrecision)
}
