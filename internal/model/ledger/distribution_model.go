package ledgermodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionDistribution 一笔交易的分配汇总，按月分表 p_distribution_{YYYYMM}_pN
// remaining_amount = total_amount - total_distributed，守恒校验通过后恒 >= 0
type CommissionDistribution struct {
	DistributionID   uint64          `gorm:"column:distribution_id;primaryKey" json:"distributionId"`            // 全局唯一分配ID
	TransactionID    uint64          `gorm:"column:transaction_id;not null;index:idx_tx" json:"transactionId"`   // 关联交易ID
	BatchID          string          `gorm:"column:batch_id;type:varchar(36);index:idx_batch" json:"batchId"`    // 关联批次ID
	PartnerID        uint64          `gorm:"column:partner_id;not null" json:"partnerId"`                        // 成交合作伙伴ID
	TotalAmount      decimal.Decimal `gorm:"column:total_amount;type:decimal(18,4);not null" json:"totalAmount"` // 交易金额
	TotalDistributed decimal.Decimal `gorm:"column:total_distributed;type:decimal(18,2);not null" json:"totalDistributed"` // 分配总额
	RemainingAmount  decimal.Decimal `gorm:"column:remaining_amount;type:decimal(18,2);not null" json:"remainingAmount"`   // 剩余金额，保留审计，不做二次分配
	Currency         string          `gorm:"column:currency;type:char(3);not null" json:"currency"`              // 货币代码
	CalculationCount int             `gorm:"column:calculation_count;not null" json:"calculationCount"`          // 流水条数
	CreateTime       *time.Time      `gorm:"column:create_time;autoCreateTime" json:"createTime"`                // 创建时间
}

// PartnerEarnings 合作伙伴累计收益滚动汇总，批处理中唯一的共享可变状态
// 更新必须走 UPDATE ... SET total_earned = total_earned + ? 原子累加
type PartnerEarnings struct {
	PartnerID   uint64          `gorm:"column:partner_id;primaryKey" json:"partnerId"`
	TotalEarned decimal.Decimal `gorm:"column:total_earned;type:decimal(20,2);not null" json:"totalEarned"` // 累计佣金
	TxCount     int64           `gorm:"column:tx_count;not null" json:"txCount"`                            // 累计交易笔数
	UpdateTime  *time.Time      `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

func (PartnerEarnings) TableName() string {
	return "p_partner_earnings"
}

// BatchJob 批次处理记录
type BatchJob struct {
	BatchID         string          `gorm:"column:batch_id;type:varchar(36);primaryKey" json:"batchId"`
	Total           int             `gorm:"column:total;not null" json:"total"`
	Succeeded       int             `gorm:"column:succeeded;not null" json:"succeeded"`
	Failed          int             `gorm:"column:failed;not null" json:"failed"`
	TotalCommission decimal.Decimal `gorm:"column:total_commission;type:decimal(20,2);not null" json:"totalCommission"`
	Status          int8            `gorm:"column:status;type:tinyint(1);not null" json:"status"` // 0:处理中 1:完成 2:已取消
	CreateTime      *time.Time      `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	FinishTime      *time.Time      `gorm:"column:finish_time" json:"finishTime"`
}

func (BatchJob) TableName() string {
	return "p_batch_job"
}
