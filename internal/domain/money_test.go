package domain

import (
	"math"
	"testing"
)

func TestMoney_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		m    Money
		want string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{25_000_000, "$250,000.00"},
		{123_456_789, "$1,234,567.89"},
		{-150, "-$1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.m.String(); got != tt.want {
				t.Errorf("Money(%d).String() = %q, want %q", int64(tt.m), got, tt.want)
			}
		})
	}
}

func TestMoneyFromFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want Money
	}{
		{250000, 25_000_000},
		{0.1 + 0.2, 30},
		{0, 0},
		{1e20, MaxMoney},
		{-1e20, -MaxMoney},
		{math.Inf(1), MaxMoney},
		{math.NaN(), MaxMoney},
	}

	for _, tt := range tests {
		if got := MoneyFromFloat(tt.in); got != tt.want {
			t.Errorf("MoneyFromFloat(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if got := Money(12345).Float(); got != 123.45 {
		t.Errorf("Money(12345).Float() = %v, want 123.45", got)
	}
}
