package calc

import (
	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	ledgermodel "partner-commission-api/internal/model/ledger"
	"partner-commission-api/internal/performance"
	"partner-commission-api/internal/rule"
	"partner-commission-api/internal/utils"
)

// ValidateTransaction 计算前置校验，不通过的交易不进入台账
func ValidateTransaction(tx dto.Transaction) error {
	if tx.Amount.Sign() <= 0 {
		return constant.NewErrorf(constant.CodeTxAmountInvalid, "amount=%s", tx.Amount)
	}
	if !tx.CommissionEligible {
		return constant.NewError(constant.CodeTxNotEligible)
	}
	if tx.RateOverride != nil {
		if tx.RateOverride.Sign() < 0 || tx.RateOverride.Cmp(rule.MaxOverrideRate()) > 0 {
			return constant.NewErrorf(constant.CodeTxRateInvalid, "rate_override=%s", *tx.RateOverride)
		}
	}
	return nil
}

// CalculateDirect 成交合作伙伴的直接佣金：
// base = amount * rate，scaled = base * 绩效乘数，按上限截取后半进位保留两位。
func CalculateDirect(tx dto.Transaction, r rule.CommissionRule, perf performance.Result) (*ledgermodel.CommissionCalculation, error) {
	if err := ValidateTransaction(tx); err != nil {
		return nil, err
	}

	rate := r.Direct
	if tx.RateOverride != nil {
		rate = *tx.RateOverride
	}

	base := tx.Amount.Mul(rate)
	scaled := base.Mul(perf.Multiplier)
	capped := utils.MinDecimal(scaled, r.CommissionCap)
	total := utils.RoundMoney(capped)

	return &ledgermodel.CommissionCalculation{
		TransactionID:    tx.TransactionID,
		PartnerID:        tx.PartnerID,
		CommissionType:   int8(ledgermodel.TypeDirect),
		BaseAmount:       tx.Amount,
		Rate:             rate,
		CommissionAmount: base,
		PerformanceBonus: scaled.Sub(base),
		TotalCommission:  total,
		Currency:         tx.Currency,
		Status:           int8(ledgermodel.CalcCalculated),
	}, nil
}
