package money

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"12374.5", 12375},
		{"12374.49", 12374},
		{"-0.5", -1},
		{"0.5", 1},
		{"7", 7},
	}
	for _, tt := range tests {
		got, err := Round(decimal.RequireFromString(tt.in))
		if err != nil || got != tt.want {
			t.Errorf("Round(%s) = %d, %v, want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestFromDollars(t *testing.T) {
	if got, err := FromDollars(4.50); err != nil || got != 450 {
		t.Errorf("FromDollars(4.50) = %d, %v, want 450", got, err)
	}
	// 0.1 + 0.2 style drift must not leak into cents
	if got, err := FromDollars(0.1 + 0.2); err != nil || got != 30 {
		t.Errorf("FromDollars(0.3) = %d, %v, want 30", got, err)
	}
	if _, err := FromDollars(math.Inf(1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("FromDollars(+Inf) error = %v, want ErrOutOfRange", err)
	}
}

func TestOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"max", "9223372036854775807", true},
		{"max plus one", "9223372036854775808", false},
		{"two to the sixty-four", "18446744073709551616", false},
		{"negative max", "-9223372036854775807", true},
		{"min int64", "-9223372036854775808", false},
		{"rounds over max", "9223372036854775807.5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Round(decimal.RequireFromString(tt.in))
			if tt.ok && err != nil {
				t.Errorf("Round(%s) error = %v", tt.in, err)
			}
			if !tt.ok && (!errors.Is(err, ErrOutOfRange) || got != 0) {
				t.Errorf("Round(%s) = %d, %v, want ErrOutOfRange", tt.in, got, err)
			}
		})
	}

	// $184,467,440,737,095,516.16 is 2^64 cents and must not wrap to zero
	if _, err := FromDecimal(decimal.RequireFromString("184467440737095516.16")); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("FromDecimal(2^64 cents) error = %v, want ErrOutOfRange", err)
	}
	if _, err := Parse("$100,000,000,000,000,000"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Parse(1e17 dollars) error = %v, want ErrOutOfRange", err)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("$1,250.005")
	if err != nil {
		t.Fatal(err)
	}
	if got != 125001 {
		t.Errorf("Parse = %d, want 125001", got)
	}

	if _, err := Parse("twelve"); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Cents
		want string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{82500, "$825.00"},
		{12375, "$123.75"},
		{123456789, "$1,234,567.89"},
		{-70125, "-$701.25"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := Cents(70125).StringRaw(); got != "701.25" {
		t.Errorf("StringRaw = %q", got)
	}
}

func TestValue(t *testing.T) {
	v := Cents(12375).Value(CurrencyUSD)
	if v.Cents != 12375 || v.Amount != "123.75" || v.Display != "$123.75" || v.Currency != "USD" {
		t.Errorf("Value() = %+v", v)
	}
}
