package bullboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a short currency code like "USD" or "EUR".
//
// The empty string is a valid sentinel meaning "no currency known yet". It is
// used to zero-initialize amounts before a real currency is seen, and it is
// weak: adding an amount with a real currency to an unspecified one adopts the
// real currency.
type Currency string

// IsUnspecified reports whether the currency is the "no currency yet" sentinel.
func (c Currency) IsUnspecified() bool { return c == "" }

func (c Currency) String() string { return string(c) }

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a monetary value: an exact decimal number and a currency.
//
// The decimal stays exact through arithmetic so repeated additions never drift
// at cent level; rounding happens only on display.
type Amount struct {
	value decimal.Decimal
	cur   Currency
}

// A creates an Amount from any common numeric type and a currency code.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency Currency) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

// Zero returns the zero amount in the given currency.
func Zero(currency Currency) Amount { return Amount{cur: currency} }

// ParseAmount parses a string of the form "123.45 EUR": a decimal number and
// a currency code separated by whitespace.
func ParseAmount(s string) (Amount, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Amount{}, &MalformedAmountError{Input: s, Reason: "want exactly two fields: number and currency"}
	}
	value, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Amount{}, &MalformedAmountError{Input: s, Reason: "not a valid decimal number"}
	}
	return Amount{value: value, cur: Currency(parts[1])}, nil
}

// Currency returns the amount's currency code.
func (a Amount) Currency() Currency { return a.cur }

// Equal reports whether two amounts have the same value and currency.
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) && a.cur == b.cur }

// IsZero reports whether the numeric value is zero, whatever the currency.
func (a Amount) IsZero() bool { return a.value.IsZero() }

// LessThan compares numeric values only, ignoring currencies. It exists for
// display ordering, not for accounting.
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }

// Add returns the sum of two amounts. Amounts in different currencies cannot
// be summed and yield a *CurrencyMismatchError. An unspecified currency is
// weak and adopts the other operand's currency.
func (a Amount) Add(b Amount) (Amount, error) {
	cur, ok := mergeCurrencies(a.cur, b.cur)
	if !ok {
		return Amount{}, &CurrencyMismatchError{A: a.cur, B: b.cur}
	}
	return Amount{value: a.value.Add(b.value), cur: cur}, nil
}

// Mul scales the amount by a share count, preserving the currency.
// Counts are fractional because brokers sell fractional shares.
func (a Amount) Mul(count float64) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromFloat(count)), cur: a.cur}
}

// mergeCurrencies resolves the currency of a binary operation, treating the
// unspecified currency as weak.
func mergeCurrencies(a, b Currency) (Currency, bool) {
	switch {
	case a.IsUnspecified():
		return b, true
	case b.IsUnspecified() || a == b:
		return a, true
	default:
		return "", false
	}
}

// String formats the amount with two decimals followed by the currency code,
// or just the number when the currency is unspecified.
func (a Amount) String() string {
	num := a.value.StringFixed(2)
	if a.cur.IsUnspecified() {
		return num
	}
	return fmt.Sprintf("%s %s", num, a.cur)
}

// Amounts is a multi-currency bag: one running total per currency code.
//
// The zero bag holds a single zero slot in the unspecified currency, so
// consumers never see an empty bag. The placeholder is dropped as soon as a
// real currency is upserted.
type Amounts struct {
	amounts map[Currency]Amount
}

// NewAmounts builds a bag from the given amounts, summing duplicates.
func NewAmounts(amounts ...Amount) Amounts {
	var b Amounts
	for _, a := range amounts {
		b.Upsert(a)
	}
	return b
}

// ZeroAmounts returns a bag holding a single zero slot.
func ZeroAmounts() Amounts { return Amounts{} }

// Upsert adds the amount into the bag, summing into the slot for its currency
// or creating it.
func (b *Amounts) Upsert(a Amount) {
	if b.amounts == nil {
		b.amounts = make(map[Currency]Amount)
	}
	existing, ok := b.amounts[a.cur]
	if !ok {
		b.amounts[a.cur] = a
		// A real entry supersedes the unspecified-currency placeholder.
		if !a.cur.IsUnspecified() {
			if z, ok := b.amounts[Currency("")]; ok && z.IsZero() {
				delete(b.amounts, Currency(""))
			}
		}
		return
	}
	// Same currency by construction of the key, Add cannot fail.
	sum, _ := existing.Add(a)
	b.amounts[a.cur] = sum
}

// ForCurrency returns the bag's total for the given currency without mutating
// the bag. Missing slots read as zero.
func (b Amounts) ForCurrency(c Currency) Amount {
	if a, ok := b.amounts[c]; ok {
		return a
	}
	return Zero(c)
}

// Sorted returns the bag entries ordered by currency code ascending, for
// stable display.
func (b Amounts) Sorted() []Amount {
	if len(b.amounts) == 0 {
		return []Amount{Zero("")}
	}
	amounts := make([]Amount, 0, len(b.amounts))
	for _, a := range b.amounts {
		amounts = append(amounts, a)
	}
	sort.Slice(amounts, func(i, j int) bool { return amounts[i].cur < amounts[j].cur })
	return amounts
}

// Equal compares two bags by contents. The zero slot in the unspecified
// currency is treated as present in every bag.
func (b Amounts) Equal(o Amounts) bool {
	if len(b.amounts) != len(o.amounts) {
		return b.onlyPlaceholder() && o.onlyPlaceholder()
	}
	for cur, a := range b.amounts {
		if !o.ForCurrency(cur).Equal(a) {
			return false
		}
	}
	return true
}

func (b Amounts) onlyPlaceholder() bool {
	for cur, a := range b.amounts {
		if !cur.IsUnspecified() || !a.IsZero() {
			return false
		}
	}
	return true
}

func (b Amounts) String() string {
	entries := b.Sorted()
	strs := make([]string, 0, len(entries))
	for _, a := range entries {
		strs = append(strs, a.String())
	}
	return strings.Join(strs, ", ")
}
