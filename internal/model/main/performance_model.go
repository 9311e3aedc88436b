package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceMetrics represents w_performance_metrics 按月上报的绩效快照
type PerformanceMetrics struct {
	ID               uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PartnerID        uint64          `gorm:"column:partner_id;not null;index:idx_partner_period,unique" json:"partnerId"` // 合作伙伴ID
	Period           string          `gorm:"column:period;type:char(6);not null;index:idx_partner_period,unique" json:"period"` // 周期 YYYYMM
	SalesAchievement decimal.Decimal `gorm:"column:sales_achievement;type:decimal(8,4);not null" json:"salesAchievement"` // 销售达成率，1.0 为达标
	TeamPerformance  decimal.Decimal `gorm:"column:team_performance;type:decimal(8,4);not null" json:"teamPerformance"`   // 团队绩效率
	ClientSatisfaction decimal.Decimal `gorm:"column:client_satisfaction;type:decimal(8,4);not null" json:"clientSatisfaction"` // 客户满意率
	CreateTime       *time.Time      `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime       *time.Time      `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

func (PerformanceMetrics) TableName() string {
	return "w_performance_metrics"
}
