package dto

// CommissionCalculatedEvent 单笔交易分配完成事件，供下游支付执行方消费
type CommissionCalculatedEvent struct {
	TransactionID    uint64 `json:"transaction_id"`
	DistributionID   uint64 `json:"distribution_id"`
	BatchID          string `json:"batch_id,omitempty"`
	PartnerID        uint64 `json:"partner_id"`
	TotalAmount      string `json:"total_amount"`
	TotalDistributed string `json:"total_distributed"`
	Currency         string `json:"currency"`
	CalculationCount int    `json:"calculation_count"`
	Ts               int64  `json:"ts"`
}

// BatchCompletedEvent 批次完成事件
type BatchCompletedEvent struct {
	BatchID         string `json:"batch_id"`
	Total           int    `json:"total"`
	Succeeded       int    `json:"succeeded"`
	Failed          int    `json:"failed"`
	TotalCommission string `json:"total_commission"`
	Ts              int64  `json:"ts"`
}

// BatchRequestedMsg 经 MQ 提交的批次请求
type BatchRequestedMsg struct {
	BatchID      string           `json:"batch_id"`
	Transactions []TransactionReq `json:"transactions"`
	RetryCount   int              `json:"retry_count"`
}
