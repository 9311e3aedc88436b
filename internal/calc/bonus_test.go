package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/performance"
)

func TestCalculateBonus(t *testing.T) {
	r := affiliateRule(t)

	// 1000 * 0.04 * 1.2 = 48.00
	c := CalculateBonus(sampleTx("1000"), r, goodPerf())
	require.NotNil(t, c)
	assert.Equal(t, "48", c.TotalCommission.String())
}

func TestCalculateBonus_Cap(t *testing.T) {
	r := affiliateRule(t)

	// 200000 * 0.04 * 1.2 = 9600，触顶 5000
	c := CalculateBonus(sampleTx("200000"), r, goodPerf())
	require.NotNil(t, c)
	assert.Equal(t, "5000", c.TotalCommission.String())
}

func TestCalculateBonus_ZeroSkipped(t *testing.T) {
	r := affiliateRule(t)
	poor := performance.Result{Tier: performance.TierPoor, Multiplier: decimal.RequireFromString("0.5")}

	// 0.1 * 0.04 * 0.5 = 0.002 → 0.00，不产出流水
	assert.Nil(t, CalculateBonus(sampleTx("0.1"), r, poor))
}
