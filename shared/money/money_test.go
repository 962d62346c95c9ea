package money_test

import (
	"testing"

	"ridebook/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		expected int64
	}{
		{
			name:     "usd whole amount",
			amount:   50.00,
			currency: "usd",
			expected: 5000,
		},
		{
			name:     "usd with cents",
			amount:   19.99,
			currency: "usd",
			expected: 1999,
		},
		{
			name:     "rounds float artifacts",
			amount:   0.1 + 0.2,
			currency: "usd",
			expected: 30,
		},
		{
			name:     "zero-decimal currency",
			amount:   5000,
			currency: "jpy",
			expected: 5000,
		},
		{
			name:     "currency case insensitive",
			amount:   1200,
			currency: "JPY",
			expected: 1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.ToMinorUnits(tt.amount, tt.currency))
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		currency string
		expected float64
	}{
		{
			name:     "usd cents to dollars",
			minor:    5000,
			currency: "usd",
			expected: 50.00,
		},
		{
			name:     "odd cents",
			minor:    1999,
			currency: "usd",
			expected: 19.99,
		},
		{
			name:     "zero-decimal currency",
			minor:    5000,
			currency: "jpy",
			expected: 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, money.FromMinorUnits(tt.minor, tt.currency), 0.0001)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	amount := 123.45
	minor := money.ToMinorUnits(amount, "eur")

	assert.Equal(t, int64(12345), minor)
	assert.InDelta(t, amount, money.FromMinorUnits(minor, "eur"), 0.0001)
}
