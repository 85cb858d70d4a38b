package monies

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Normalize coerces any stored value intended to represent a monetary amount
// into a well-defined Money. Numbers and numeric strings (with optional
// thousands separators) parse as-is; nil, NaN, and anything unparsable
// normalize to zero. It never fails: silent coercion is the repair policy for
// previously persisted malformed values.
func Normalize(v any) Money {
	switch t := v.(type) {
	case nil:
		return Money{}
	case Money:
		return t
	case decimal.Decimal:
		return Money{value: t}
	case float64:
		if t != t { // NaN
			return Money{}
		}
		return M(t, "")
	case float32:
		return Normalize(float64(t))
	case int:
		return M(t, "")
	case int64:
		return M(t, "")
	case json.Number:
		return normalizeString(t.String())
	case string:
		return normalizeString(t)
	default:
		return Money{}
	}
}

func normalizeString(s string) Money {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}
	}
	return Money{value: d}
}

// ParseAmount is the strict boundary counterpart of Normalize: it parses a
// user-supplied amount and rejects anything that is not a positive finite
// number with ErrInvalidAmount. Recording operations themselves do not
// validate; callers are expected to go through ParseAmount first.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return Money{}, fmt.Errorf("amount %q: %w", s, ErrInvalidAmount)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("amount %q must be positive: %w", s, ErrInvalidAmount)
	}
	return Money{value: d}, nil
}

// MarshalJSON persists the amount as a plain JSON number rounded to the
// currency's minor unit.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(int32(m.currency().Fraction)).MarshalJSON()
}

// UnmarshalJSON is the load-time half of the normalizer: it accepts a JSON
// number, a numeric string, or null, and decodes anything else to zero
// instead of failing.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*m = Money{}
			return nil
		}
		*m = normalizeString(s)
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		*m = Money{}
		return nil
	}
	m.value = d
	m.cur = ""
	return nil
}

var _ json.Marshaler = Money{}
var _ json.Unmarshaler = (*Money)(nil)
