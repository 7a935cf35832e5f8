package ecotrack

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the code of the in-game currency. It has no minor unit and is
// displayed as "$1,234".
const Currency = "GAME"

func init() {
	money.AddCurrency(Currency, "$", "$1", ".", ",", 0)
}

// Money represents an amount of in-game currency.
//
// Amounts are kept exact; only String rounds to the currency's unit.
type Money struct {
	value decimal.Decimal
}

// M returns the Money for value.
func M[T int | int64 | float64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case decimal.Decimal:
		return Money{value: v}
	}
	return Money{}
}

// ParseMoney parses a user provided amount like "5000", "-2000" or "12.5".
// A value that is not a number is rejected with ErrInvalid.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrInvalid)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalid, s)
	}
	return Money{value: v}, nil
}

// parseMoneyOrZero is ParseMoney for lenient form fields: anything that does
// not parse counts as zero.
func parseMoneyOrZero(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		return Money{}
	}
	return m
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// String returns the amount formatted in the game currency, e.g. "-$2,000".
func (m Money) String() string {
	cur := money.GetCurrency(Currency)
	units := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if units.Abs().LessThanOrEqual(maxMinorUnits) {
		return cur.Formatter().Format(units.IntPart())
	}
	return formatLarge(cur.Formatter(), units)
}

// formatLarge applies the layout of f to amounts that do not fit in an int64.
func formatLarge(f *money.Formatter, units decimal.Decimal) string {
	digits := units.Abs().StringFixed(0)
	if len(digits) <= f.Fraction {
		digits = strings.Repeat("0", f.Fraction-len(digits)+1) + digits
	}
	if f.Thousand != "" {
		for i := len(digits) - f.Fraction - 3; i > 0; i -= 3 {
			digits = digits[:i] + f.Thousand + digits[i:]
		}
	}
	if f.Fraction > 0 {
		digits = digits[:len(digits)-f.Fraction] + f.Decimal + digits[len(digits)-f.Fraction:]
	}
	s := strings.Replace(f.Template, "1", digits, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if units.IsNegative() {
		s = "-" + s
	}
	return s
}

// SignedString returns the amount with an explicit sign. Zero is "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Decimal returns the exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value)} }
func (m Money) MulInt(n int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }

// Ratio returns m/n. ok is false when n is zero.
func (m Money) Ratio(n Money) (r decimal.Decimal, ok bool) {
	if n.value.IsZero() {
		return decimal.Zero, false
	}
	return m.value.Div(n.value), true
}

// MarshalJSON writes the exact amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(b []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	m.value = v
	return nil
}
