package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/constant"
	ledgermodel "partner-commission-api/internal/model/ledger"
)

func calcRow(partnerID uint64, amount, currency string) *ledgermodel.CommissionCalculation {
	return &ledgermodel.CommissionCalculation{
		PartnerID:       partnerID,
		CommissionType:  int8(ledgermodel.TypeDirect),
		TotalCommission: decimal.RequireFromString(amount),
		Currency:        currency,
	}
}

func TestValidate_Conservation(t *testing.T) {
	tx := sampleTx("1000")
	calcs := []*ledgermodel.CommissionCalculation{
		calcRow(42, "96.00", "USD"),
		calcRow(100, "20.00", "USD"),
		calcRow(101, "16.00", "USD"),
	}

	vr, err := Validate(tx, calcs)
	require.NoError(t, err)
	assert.Equal(t, "132", vr.TotalDistributed.String())
	assert.Equal(t, "868", vr.RemainingAmount.String())
}

func TestValidate_OverDistributed(t *testing.T) {
	tx := sampleTx("100")
	calcs := []*ledgermodel.CommissionCalculation{
		calcRow(42, "60.00", "USD"),
		calcRow(100, "50.00", "USD"),
	}

	_, err := Validate(tx, calcs)
	require.Error(t, err)
	assert.Equal(t, constant.CodeOverDistributed, constant.CodeFrom(err))
}

func TestValidate_CurrencyMismatch(t *testing.T) {
	tx := sampleTx("1000")
	calcs := []*ledgermodel.CommissionCalculation{
		calcRow(42, "96.00", "EUR"),
	}

	_, err := Validate(tx, calcs)
	require.Error(t, err)
	assert.Equal(t, constant.CodeCurrencyMismatch, constant.CodeFrom(err))
}

func TestValidate_NonPositiveAmount(t *testing.T) {
	tx := sampleTx("1000")
	calcs := []*ledgermodel.CommissionCalculation{
		calcRow(42, "0", "USD"),
	}

	_, err := Validate(tx, calcs)
	require.Error(t, err)
	assert.Equal(t, constant.CodeAmountNotPositive, constant.CodeFrom(err))
}

func TestValidate_FullPipeline(t *testing.T) {
	// 直接 + 间接 + 奖金合计不超过交易金额
	r := affiliateRule(t)
	for _, amount := range []string{"0.50", "10", "1000", "123456.78", "9999999"} {
		tx := sampleTx(amount)

		direct, err := CalculateDirect(tx, r, goodPerf())
		require.NoError(t, err)
		calcs := append([]*ledgermodel.CommissionCalculation{direct},
			DistributeIndirect(tx, chain(6), r)...)
		if bonus := CalculateBonus(tx, r, goodPerf()); bonus != nil {
			calcs = append(calcs, bonus)
		}

		vr, err := Validate(tx, calcs)
		require.NoError(t, err, "amount=%s", amount)
		assert.True(t, vr.RemainingAmount.Sign() >= 0)
	}
}

func TestValidate_ExactDistribution(t *testing.T) {
	// 分配总额恰好等于交易金额是合法边界
	tx := sampleTx("100")
	calcs := []*ledgermodel.CommissionCalculation{
		calcRow(42, "60.00", "USD"),
		calcRow(100, "40.00", "USD"),
	}

	vr, err := Validate(tx, calcs)
	require.NoError(t, err)
	assert.True(t, vr.RemainingAmount.IsZero())
}
