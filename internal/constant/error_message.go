package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:       {"操作成功", "Success"},
	CodeSystemError:   {"系统错误", "System error"},
	CodeDatabaseError: {"数据库错误", "Database error"},
	CodeTimeout:       {"处理超时", "Pipeline timed out"},
	CodeCancelled:     {"批次已取消", "Batch cancelled before scheduling"},

	// 校验错误
	CodePartnerFieldMissing: {"合作伙伴必填字段缺失", "Required partner field missing"},
	CodePartnerNotFound:     {"合作伙伴不存在", "Partner not found"},
	CodeTxAmountInvalid:     {"交易金额无效", "Transaction amount must be positive"},
	CodeTxNotEligible:       {"交易不参与佣金计算", "Transaction not commission eligible"},
	CodeTxRateInvalid:       {"佣金费率越界", "Commission rate out of range"},
	CodeCurrencyMismatch:    {"币种不一致", "Currency mismatch"},
	CodeAmountNotPositive:   {"佣金金额必须为正", "Commission amount must be positive"},

	// 层级错误
	CodeParentNotFound:      {"上级合作伙伴不存在", "Parent partner not found"},
	CodeLevelInvalid:        {"层级取值无效", "Invalid partner level"},
	CodeLevelNotBelowParent: {"目标层级必须严格低于上级层级", "Target level must be strictly below parent level"},
	CodeRootLevelInvalid:    {"根节点必须为大洲级", "Root partner must be continental"},

	// 对账错误
	CodeOverDistributed:         {"佣金分配总额超过交易金额", "Distributed total exceeds transaction amount"},
	CodeStatusTransitionInvalid: {"佣金记录状态流转非法", "Invalid calculation status transition"},
	CodeCalculationNotFound:     {"佣金记录不存在", "Commission calculation not found"},
	CodeDistributionNotFound:    {"分配记录不存在", "Commission distribution not found"},

	// 持久化错误
	CodePersistFailed:     {"佣金台账写入失败", "Ledger persist failed"},
	CodeLedgerQueryFailed: {"佣金台账查询失败", "Ledger query failed"},
}
