package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"partner-commission-api/internal/constant"
)

// TransactionReq 外部提交的交易，金额为字符串避免浮点失真
type TransactionReq struct {
	TransactionID      uint64  `json:"transaction_id" binding:"required"`
	Type               string  `json:"type" binding:"required,max=30"`
	Amount             string  `json:"amount" binding:"required"`
	Currency           string  `json:"currency" binding:"required,len=3"`
	PartnerID          uint64  `json:"partner_id" binding:"required"`
	CommissionEligible bool    `json:"commission_eligible"`
	RateOverride       *string `json:"rate_override,omitempty"` // 可选的交易级费率覆盖
}

// Transaction 内部交易表示，一经接收不可变
type Transaction struct {
	TransactionID      uint64
	BatchID            string // 所属批次，由批处理服务填充
	Type               string
	Amount             decimal.Decimal
	Currency           string
	PartnerID          uint64
	CommissionEligible bool
	RateOverride       *decimal.Decimal
	OccurredAt         time.Time
}

// Parse 校验并转换为内部交易表示
func (r TransactionReq) Parse(now time.Time) (Transaction, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return Transaction{}, constant.NewErrorf(constant.CodeTxAmountInvalid, "amount %q", r.Amount)
	}
	tx := Transaction{
		TransactionID:      r.TransactionID,
		Type:               r.Type,
		Amount:             amount,
		Currency:           r.Currency,
		PartnerID:          r.PartnerID,
		CommissionEligible: r.CommissionEligible,
		OccurredAt:         now,
	}
	if r.RateOverride != nil {
		rate, err := decimal.NewFromString(*r.RateOverride)
		if err != nil {
			return Transaction{}, constant.NewErrorf(constant.CodeTxRateInvalid, "rate_override %q", *r.RateOverride)
		}
		tx.RateOverride = &rate
	}
	return tx, nil
}
