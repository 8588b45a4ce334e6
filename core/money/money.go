// Package money provides integer minor-unit currency amounts.
// NEVER use float64 for money calculations; convert at the edges only.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Cents is an amount in the smallest currency unit.
type Cents int64

// MaxCents is the largest representable amount. The range is symmetric so
// negating an amount never overflows.
const MaxCents Cents = math.MaxInt64

// ErrOutOfRange is returned when an amount does not fit in Cents.
var ErrOutOfRange = errors.New("amount out of range")

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = maxMinor.Neg()
)

// Round rounds a fractional minor-unit amount half away from zero.
func Round(minor decimal.Decimal) (Cents, error) {
	r := minor.Round(0)
	if r.GreaterThan(maxMinor) || r.LessThan(minMinor) {
		return 0, fmt.Errorf("%w: %s cents", ErrOutOfRange, r.String())
	}
	return Cents(r.IntPart()), nil
}

// FromDecimal converts a major-unit amount (dollars) to cents.
func FromDecimal(d decimal.Decimal) (Cents, error) {
	return Round(d.Mul(hundred))
}

// FromDollars converts a float dollar amount, as received from forms and
// tool calls, to cents. Use sparingly.
func FromDollars(f float64) (Cents, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

// Parse parses a decimal dollar string such as "4.50" or "$1,250.00".
func Parse(s string) (Cents, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// Decimal returns the minor-unit amount as a decimal.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c))
}

// Dollars returns the major-unit amount as a decimal.
func (c Cents) Dollars() decimal.Decimal {
	return c.Decimal().Div(hundred)
}

// StringRaw returns a fixed two-place decimal string ("825.00").
func (c Cents) StringRaw() string {
	return c.Dollars().StringFixed(2)
}

// String formats as a dollar amount with thousands separators ("$1,250.00").
func (c Cents) String() string {
	neg := c < 0
	if neg {
		c = -c
	}
	raw := c.StringRaw()
	whole, frac, _ := strings.Cut(raw, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Float64 returns dollars as float64 (only for display, never for calculation)
func (c Cents) Float64() float64 {
	return c.Dollars().InexactFloat64()
}

// Value is the wire form of an amount
type Value struct {
	Cents    int64  `json:"cents"`
	Amount   string `json:"amount"` // Decimal string for precision
	Display  string `json:"display"`
	Currency string `json:"currency"`
}

// Value returns the wire form in currency cur
func (c Cents) Value(cur Currency) Value {
	return Value{
		Cents:    int64(c),
		Amount:   c.StringRaw(),
		Display:  c.String(),
		Currency: cur.String(),
	}
}
