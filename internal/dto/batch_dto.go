package dto

import (
	"github.com/shopspring/decimal"
)

// ProcessBatchReq 批量佣金计算请求
type ProcessBatchReq struct {
	BatchID      string           `json:"batch_id" binding:"omitempty,uuid"` // 缺省时服务端生成
	Transactions []TransactionReq `json:"transactions" binding:"required,min=1,dive"`
}

// BatchError 单笔交易失败明细
type BatchError struct {
	TransactionID uint64 `json:"transaction_id"`
	Code          int    `json:"code"`
	Kind          string `json:"kind"` // ValidationError / HierarchyError / ReconciliationError / PersistenceError / SystemError
	Message       string `json:"message"`
}

// BatchResult 批次处理汇总，单笔失败不影响整批
type BatchResult struct {
	BatchID         string          `json:"batch_id"`
	Total           int             `json:"total"`
	Succeeded       int             `json:"succeeded"`
	Failed          int             `json:"failed"`
	TotalCommission decimal.Decimal `json:"total_commission"` // 成功交易的佣金合计
	Errors          []BatchError    `json:"errors,omitempty"`
}

// ReportMetricsReq 周期绩效指标上报，同周期覆盖
type ReportMetricsReq struct {
	Period             string `json:"period" binding:"required,len=6"`
	SalesAchievement   string `json:"sales_achievement" binding:"required"`
	TeamPerformance    string `json:"team_performance" binding:"required"`
	ClientSatisfaction string `json:"client_satisfaction" binding:"required"`
}

// RawMetrics 绩效原始指标，来自主库绩效快照
type RawMetrics struct {
	PartnerID          uint64
	Period             string // YYYYMM
	SalesAchievement   decimal.Decimal
	TeamPerformance    decimal.Decimal
	ClientSatisfaction decimal.Decimal
}
