package ledgermodel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"partner-commission-api/internal/constant"
)

// CommissionType 佣金类型
type CommissionType int8

const (
	TypeDirect   CommissionType = iota + 1 // 直接佣金
	TypeIndirect                           // 间接佣金（祖先分配）
	TypeOverride                           // 管理加成
	TypeBonus                              // 绩效奖金
	TypeResidual                           // 残余分成
)

var commissionTypeNames = map[CommissionType]string{
	TypeDirect:   "direct",
	TypeIndirect: "indirect",
	TypeOverride: "override",
	TypeBonus:    "bonus",
	TypeResidual: "residual",
}

func (t CommissionType) String() string {
	if s, ok := commissionTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(%d)", int8(t))
}

// CalcStatus 佣金流水状态机
type CalcStatus int8

const (
	CalcPending    CalcStatus = iota // 待计算
	CalcCalculated                   // 已计算
	CalcApproved                     // 已审核
	CalcPaid                         // 已支付（终态）
	CalcDisputed                     // 争议中
	CalcCancelled                    // 已取消（终态）
)

var calcStatusNames = map[CalcStatus]string{
	CalcPending:    "PENDING",
	CalcCalculated: "CALCULATED",
	CalcApproved:   "APPROVED",
	CalcPaid:       "PAID",
	CalcDisputed:   "DISPUTED",
	CalcCancelled:  "CANCELLED",
}

func (s CalcStatus) String() string {
	if v, ok := calcStatusNames[s]; ok {
		return v
	}
	return fmt.Sprintf("status(%d)", int8(s))
}

// Terminal PAID/CANCELLED 为终态，不再允许任何流转
func (s CalcStatus) Terminal() bool {
	return s == CalcPaid || s == CalcCancelled
}

// calcTransitions 正常流转表；任意非终态可被管理员强制取消，见 CanTransition
var calcTransitions = map[CalcStatus][]CalcStatus{
	CalcPending:    {CalcCalculated},
	CalcCalculated: {CalcApproved, CalcDisputed},
	CalcApproved:   {CalcPaid},
	CalcDisputed:   {CalcCalculated, CalcCancelled}, // 争议解决后回到已计算，或取消
}

// CanTransition 判断 from → to 是否合法
func (s CalcStatus) CanTransition(to CalcStatus) bool {
	if s.Terminal() {
		return false
	}
	if to == CalcCancelled {
		// 管理员可从任意非终态强制取消
		return true
	}
	for _, next := range calcTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// CommissionCalculation 佣金流水，仅追加，按月分表 p_commission_{YYYYMM}_pN
type CommissionCalculation struct {
	CalcID           uint64          `gorm:"column:calc_id;primaryKey" json:"calcId"`                                // 全局唯一流水ID
	TransactionID    uint64          `gorm:"column:transaction_id;not null;index:idx_tx" json:"transactionId"`       // 关联交易ID
	BatchID          string          `gorm:"column:batch_id;type:varchar(36)" json:"batchId"`                        // 关联批次ID
	PartnerID        uint64          `gorm:"column:partner_id;not null;index:idx_partner" json:"partnerId"`          // 受益合作伙伴ID
	PartnerLevel     int8            `gorm:"column:partner_level;type:tinyint(1);not null" json:"partnerLevel"`      // 合作伙伴层级快照
	PartnerStatus    int8            `gorm:"column:partner_status;type:tinyint(1);not null" json:"partnerStatus"`    // 合作伙伴状态快照，支付执行方据此决定是否扣留
	CommissionType   int8            `gorm:"column:commission_type;type:tinyint(1);not null" json:"commissionType"`  // 1:直接 2:间接 3:管理加成 4:绩效奖金 5:残余
	HopDistance      int             `gorm:"column:hop_distance;not null;default:0" json:"hopDistance"`              // 间接佣金跳数，直接佣金为 0
	BaseAmount       decimal.Decimal `gorm:"column:base_amount;type:decimal(18,4);not null" json:"baseAmount"`       // 计算基数
	Rate             decimal.Decimal `gorm:"column:rate;type:decimal(8,6);not null" json:"rate"`                     // 生效费率
	CommissionAmount decimal.Decimal `gorm:"column:commission_amount;type:decimal(18,4);not null" json:"commissionAmount"` // 未乘绩效的佣金
	PerformanceBonus decimal.Decimal `gorm:"column:performance_bonus;type:decimal(18,4);not null" json:"performanceBonus"` // 绩效溢出部分
	TotalCommission  decimal.Decimal `gorm:"column:total_commission;type:decimal(18,2);not null" json:"totalCommission"`   // 最终佣金，半进位保留两位
	Currency         string          `gorm:"column:currency;type:char(3);not null" json:"currency"`                  // 货币代码
	Status           int8            `gorm:"column:status;type:tinyint(1);not null" json:"status"`                   // 状态机，见 CalcStatus
	CreateTime       *time.Time      `gorm:"column:create_time;autoCreateTime" json:"createTime"`                    // 创建时间
	UpdateTime       *time.Time      `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`                    // 更新时间
}

// Transition 执行状态流转，非法流转返回对账类错误
func (c *CommissionCalculation) Transition(to CalcStatus) error {
	from := CalcStatus(c.Status)
	if !from.CanTransition(to) {
		return constant.NewErrorf(constant.CodeStatusTransitionInvalid, "%s -> %s", from, to)
	}
	c.Status = int8(to)
	return nil
}
