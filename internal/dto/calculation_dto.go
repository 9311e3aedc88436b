package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationVO 单条佣金流水视图
type CalculationVO struct {
	CalculationID    uint64          `json:"calculation_id"`
	TransactionID    uint64          `json:"transaction_id"`
	PartnerID        uint64          `json:"partner_id"`
	CommissionType   string          `json:"commission_type"`
	HopDistance      int             `json:"hop_distance,omitempty"` // 间接佣金的祖先跳数，直接佣金为 0
	BaseAmount       decimal.Decimal `json:"base_amount"`
	Rate             decimal.Decimal `json:"rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	PerformanceBonus decimal.Decimal `json:"performance_bonus"`
	TotalCommission  decimal.Decimal `json:"total_commission"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// DistributionVO 一笔交易的完整分配结果
type DistributionVO struct {
	DistributionID   uint64          `json:"distribution_id"`
	TransactionID    uint64          `json:"transaction_id"`
	BatchID          string          `json:"batch_id,omitempty"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TotalDistributed decimal.Decimal `json:"total_distributed"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"` // 审计用，始终 >= 0，不做二次分配
	Currency         string          `json:"currency"`
	Calculations     []CalculationVO `json:"calculations"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ValidationResult 分配守恒校验结果
type ValidationResult struct {
	TotalDistributed decimal.Decimal `json:"total_distributed"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
}

// EarningsVO 合作伙伴累计收益
type EarningsVO struct {
	PartnerID   uint64          `json:"partner_id"`
	TotalEarned decimal.Decimal `json:"total_earned"`
	TxCount     int64           `json:"tx_count"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
