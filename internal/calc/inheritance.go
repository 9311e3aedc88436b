package calc

import (
	"partner-commission-api/internal/dto"
	"partner-commission-api/internal/hierarchy"
	ledgermodel "partner-commission-api/internal/model/ledger"
	"partner-commission-api/internal/rule"
	"partner-commission-api/internal/utils"
)

// DistributeIndirect 沿祖先链向上分配间接佣金。
// 第 i 跳（最近的祖先为第 1 跳）费率 = indirect * decay^(i-1)，
// 超过最大跳数或费率低于下限即停止。祖先的暂停/终止状态不阻断计算，
// 状态快照随流水固化，由支付执行方决定是否扣留。
func DistributeIndirect(tx dto.Transaction, ancestors []hierarchy.PartnerSummary, r rule.CommissionRule) []*ledgermodel.CommissionCalculation {
	out := make([]*ledgermodel.CommissionCalculation, 0, len(ancestors))

	rate := r.Indirect
	for i, anc := range ancestors {
		hop := i + 1
		if hop > r.InheritanceLevels {
			break
		}
		if rate.Cmp(r.MinCommissionRate) < 0 {
			break
		}

		amount := utils.RoundMoney(tx.Amount.Mul(rate))
		// 四舍五入后为零的分配不落账
		if amount.Sign() > 0 {
			out = append(out, &ledgermodel.CommissionCalculation{
				TransactionID:    tx.TransactionID,
				PartnerID:        anc.PartnerID,
				PartnerLevel:     int8(anc.Level),
				PartnerStatus:    anc.Status,
				CommissionType:   int8(ledgermodel.TypeIndirect),
				HopDistance:      hop,
				BaseAmount:       tx.Amount,
				Rate:             rate,
				CommissionAmount: tx.Amount.Mul(rate),
				TotalCommission:  amount,
				Currency:         tx.Currency,
				Status:           int8(ledgermodel.CalcCalculated),
			})
		}

		rate = rate.Mul(r.DecayRate)
	}
	return out
}
