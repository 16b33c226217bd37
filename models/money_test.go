package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in  string
		out Money
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"42.50", 4250, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"1.005", 101, true}, // half-up rounding
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.out, got, "input %q", tc.in)
		} else {
			assert.Error(t, err, "input %q", tc.in)
		}
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "42.50", Money(4250).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "-1.20", Money(-120).String())
}

func TestMoneyJSON(t *testing.T) {
	// marshals as a plain JSON number with two decimals
	b, err := json.Marshal(Money(4250))
	require.NoError(t, err)
	assert.Equal(t, "42.50", string(b))

	// round trip through a struct
	type payload struct {
		Amount Money `json:"amount"`
	}
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount":42.5}`), &p))
	assert.Equal(t, Money(4250), p.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount":10}`), &p))
	assert.Equal(t, Money(1000), p.Amount)

	// negative amounts are rejected at the boundary
	assert.Error(t, json.Unmarshal([]byte(`{"amount":-3}`), &p))
}

func TestMoneySumExact(t *testing.T) {
	// 0.10 added a thousand times is exactly 100.00 in cents
	var sum Money
	for i := 0; i < 1000; i++ {
		sum += Money(10)
	}
	assert.Equal(t, Money(10000), sum)
	assert.Equal(t, "100.00", sum.String())
}
