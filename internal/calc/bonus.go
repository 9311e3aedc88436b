package calc

import (
	"partner-commission-api/internal/dto"
	ledgermodel "partner-commission-api/internal/model/ledger"
	"partner-commission-api/internal/performance"
	"partner-commission-api/internal/rule"
	"partner-commission-api/internal/utils"
)

// CalculateBonus 成交合作伙伴的绩效奖金：
// min(amount * bonus_rate * 绩效乘数, bonus_cap)，半进位保留两位。
// 奖金为零（档位 poor 且金额极小）时不落账。
func CalculateBonus(tx dto.Transaction, r rule.CommissionRule, perf performance.Result) *ledgermodel.CommissionCalculation {
	base := tx.Amount.Mul(r.Bonus)
	scaled := base.Mul(perf.Multiplier)
	capped := utils.MinDecimal(scaled, r.BonusCap)
	total := utils.RoundMoney(capped)
	if total.Sign() <= 0 {
		return nil
	}

	return &ledgermodel.CommissionCalculation{
		TransactionID:    tx.TransactionID,
		PartnerID:        tx.PartnerID,
		CommissionType:   int8(ledgermodel.TypeBonus),
		BaseAmount:       tx.Amount,
		Rate:             r.Bonus,
		CommissionAmount: base,
		PerformanceBonus: scaled.Sub(base),
		TotalCommission:  total,
		Currency:         tx.Currency,
		Status:           int8(ledgermodel.CalcCalculated),
	}
}
