package monies

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input any
		want  Money
	}{
		{"raw number", 4500.0, KES(4500)},
		{"integer", 250, KES(250)},
		{"cleaned numeric string", "1234.50", KES(1234.50)},
		{"string with thousands separators", "1,234.50", KES(1234.50)},
		{"string with spaces", " 800 ", KES(800)},
		{"nil", nil, Money{}},
		{"NaN", math.NaN(), Money{}},
		{"garbage string", "abc", Money{}},
		{"empty string", "", Money{}},
		{"unsupported type", []string{"x"}, Money{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if !got.Equal(tc.want) {
				t.Errorf("Normalize(%v) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestMoneyUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want Money
	}{
		{"number", `4500.75`, KES(4500.75)},
		{"numeric string", `"1,234.50"`, KES(1234.50)},
		{"null", `null`, Money{}},
		{"garbage string", `"abc"`, Money{}},
		{"object", `{"amount":5}`, Money{}},
		{"boolean", `true`, Money{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got Money
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tc.raw, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Unmarshal(%s) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("1,200.50")
	if err != nil {
		t.Fatalf("ParseAmount(1,200.50) unexpected error: %v", err)
	}
	if !got.Equal(KES(1200.50)) {
		t.Errorf("ParseAmount(1,200.50) = %s, want %s", got, KES(1200.50))
	}

	for _, invalid := range []string{"abc", "", "0", "-5"} {
		if _, err := ParseAmount(invalid); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", invalid, err)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := KES(4500).String(); !strings.Contains(got, "4,500.00") {
		t.Errorf("KES(4500).String() = %q, want it to contain %q", got, "4,500.00")
	}
	// a money with no currency falls back to the reporting currency
	if got, want := Normalize("250").String(), KES(250).String(); got != want {
		t.Errorf("Normalize(250).String() = %q, want %q", got, want)
	}
}
