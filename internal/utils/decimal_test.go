package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0.845", "0.85"}, // 半进位
		{"0.844", "0.84"},
		{"0.005", "0.01"},
		{"0.004", "0"},
		{"96", "96"},
		{"12.805", "12.81"},
	}
	for _, tc := range cases {
		got := RoundMoney(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got.String(), "in=%s", tc.in)
	}
}

func TestMinMaxDecimal(t *testing.T) {
	a := decimal.RequireFromString("1.5")
	b := decimal.RequireFromString("2.5")
	assert.True(t, MinDecimal(a, b).Equal(a))
	assert.True(t, MaxDecimal(a, b).Equal(b))
	assert.True(t, MinDecimal(a, a).Equal(a))
}
