package calc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	"partner-commission-api/internal/hierarchy"
	"partner-commission-api/internal/performance"
	"partner-commission-api/internal/rule"
)

func affiliateRule(t *testing.T) rule.CommissionRule {
	t.Helper()
	r, err := rule.Resolve(hierarchy.LevelAffiliate)
	require.NoError(t, err)
	return r
}

func goodPerf() performance.Result {
	return performance.Result{
		Score:      decimal.NewFromFloat(1.1),
		Tier:       performance.TierGood,
		Multiplier: decimal.NewFromFloat(1.2),
	}
}

func sampleTx(amount string) dto.Transaction {
	return dto.Transaction{
		TransactionID:      1001,
		Type:               "sale",
		Amount:             decimal.RequireFromString(amount),
		Currency:           "USD",
		PartnerID:          42,
		CommissionEligible: true,
		OccurredAt:         time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestCalculateDirect(t *testing.T) {
	r := affiliateRule(t)

	// 1000 * 0.08 * 1.2 = 96.00
	c, err := CalculateDirect(sampleTx("1000"), r, goodPerf())
	require.NoError(t, err)
	assert.Equal(t, "96", c.TotalCommission.String())
	assert.Equal(t, "80", c.CommissionAmount.String())
	assert.Equal(t, "16", c.PerformanceBonus.String())
	assert.Equal(t, "USD", c.Currency)
}

func TestCalculateDirect_Cap(t *testing.T) {
	r := affiliateRule(t)

	// 200000 * 0.08 * 1.2 = 19200，触顶 10000
	c, err := CalculateDirect(sampleTx("200000"), r, goodPerf())
	require.NoError(t, err)
	assert.Equal(t, "10000", c.TotalCommission.String())
}

func TestCalculateDirect_Override(t *testing.T) {
	r := affiliateRule(t)
	tx := sampleTx("1000")
	override := decimal.RequireFromString("0.1")
	tx.RateOverride = &override

	c, err := CalculateDirect(tx, r, performance.Average())
	require.NoError(t, err)
	assert.Equal(t, "100", c.TotalCommission.String())
	assert.True(t, c.Rate.Equal(override))
}

func TestCalculateDirect_Rounding(t *testing.T) {
	r := affiliateRule(t)

	// 10.57 * 0.08 = 0.8456 → 0.85（半进位）
	c, err := CalculateDirect(sampleTx("10.57"), r, performance.Average())
	require.NoError(t, err)
	assert.Equal(t, "0.85", c.TotalCommission.String())
}

func TestValidateTransaction(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*dto.Transaction)
		wantCode int
	}{
		{"非正金额", func(tx *dto.Transaction) { tx.Amount = decimal.NewFromInt(-5) }, constant.CodeTxAmountInvalid},
		{"零金额", func(tx *dto.Transaction) { tx.Amount = decimal.Zero }, constant.CodeTxAmountInvalid},
		{"不参与分佣", func(tx *dto.Transaction) { tx.CommissionEligible = false }, constant.CodeTxNotEligible},
		{"覆盖费率超限", func(tx *dto.Transaction) {
			v := decimal.RequireFromString("0.6")
			tx.RateOverride = &v
		}, constant.CodeTxRateInvalid},
		{"覆盖费率为负", func(tx *dto.Transaction) {
			v := decimal.RequireFromString("-0.01")
			tx.RateOverride = &v
		}, constant.CodeTxRateInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := sampleTx("1000")
			tc.mutate(&tx)
			err := ValidateTransaction(tx)
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, constant.CodeFrom(err))
		})
	}

	assert.NoError(t, ValidateTransaction(sampleTx("1000")))
}
