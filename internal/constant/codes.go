package constant

// 系统级错误码 (1xxx)
const (
	CodeSuccess       = 0
	CodeSystemError   = 1000 // 系统内部错误
	CodeDatabaseError = 1001 // 数据库错误
	CodeTimeout       = 1002 // 处理超时
	CodeCancelled     = 1003 // 批次已取消，交易未被调度
)

// 校验类错误码 (2xxx) —— 交易/字段校验失败，计算前即拒绝
const (
	CodePartnerFieldMissing = 2000 // 合作伙伴必填字段缺失
	CodePartnerNotFound     = 2001 // 合作伙伴不存在
	CodeTxAmountInvalid     = 2100 // 交易金额无效，必须大于 0
	CodeTxNotEligible       = 2101 // 交易不参与佣金计算
	CodeTxRateInvalid       = 2102 // 佣金费率越界
	CodeCurrencyMismatch    = 2103 // 币种不一致
	CodeAmountNotPositive   = 2104 // 佣金金额必须为正
)

// 层级类错误码 (3xxx) —— 层级变更被拒绝，不产生部分状态
const (
	CodeParentNotFound      = 3000 // 上级合作伙伴不存在
	CodeLevelInvalid        = 3001 // 层级取值无效
	CodeLevelNotBelowParent = 3002 // 目标层级必须严格低于上级层级
	CodeRootLevelInvalid    = 3003 // 根节点必须为大洲级
)

// 对账类错误码 (4xxx) —— 分配结果违反守恒约束，不做截断修正
const (
	CodeOverDistributed         = 4000 // 佣金分配总额超过交易金额
	CodeStatusTransitionInvalid = 4100 // 佣金记录状态流转非法
	CodeCalculationNotFound     = 4101 // 佣金记录不存在
	CodeDistributionNotFound    = 4102 // 分配记录不存在
)

// 持久化类错误码 (5xxx) —— 重试耗尽后上报
const (
	CodePersistFailed     = 5000 // 佣金台账写入失败
	CodeLedgerQueryFailed = 5001 // 佣金台账查询失败
)
