package calc

import (
	"github.com/shopspring/decimal"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	ledgermodel "partner-commission-api/internal/model/ledger"
)

// Validate 对一笔交易的全部佣金流水做守恒校验：
// sum(total_commission) 不得超过交易金额，金额必须为正，币种必须一致。
// 超额分配只上报不截断。
func Validate(tx dto.Transaction, calcs []*ledgermodel.CommissionCalculation) (dto.ValidationResult, error) {
	total := decimal.Zero
	for _, c := range calcs {
		if c.TotalCommission.Sign() <= 0 {
			return dto.ValidationResult{}, constant.NewErrorf(constant.CodeAmountNotPositive,
				"partner=%d type=%s amount=%s", c.PartnerID, ledgermodel.CommissionType(c.CommissionType), c.TotalCommission)
		}
		if c.Currency != tx.Currency {
			return dto.ValidationResult{}, constant.NewErrorf(constant.CodeCurrencyMismatch,
				"tx=%s calc=%s", tx.Currency, c.Currency)
		}
		total = total.Add(c.TotalCommission)
	}

	if total.Cmp(tx.Amount) > 0 {
		return dto.ValidationResult{}, constant.NewErrorf(constant.CodeOverDistributed,
			"distributed=%s amount=%s", total, tx.Amount)
	}

	return dto.ValidationResult{
		TotalDistributed: total,
		RemainingAmount:  tx.Amount.Sub(total),
	}, nil
}
