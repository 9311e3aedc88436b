package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartnerReq 创建合作伙伴请求（根节点或下级节点）
type CreatePartnerReq struct {
	Name        string `json:"name" binding:"required,max=50"`
	OrgName     string `json:"org_name" binding:"required,max=100"`
	ContactName string `json:"contact_name" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,max=30"`
	Address     string `json:"address" binding:"required,max=200"`
	Country     string `json:"country" binding:"required,max=50"`
	Region      string `json:"region" binding:"required,max=50"`
	City        string `json:"city" binding:"omitempty,max=50"`
}

// AddPartnerReq 挂接下级合作伙伴请求
type AddPartnerReq struct {
	CreatePartnerReq
	ParentID    uint64 `json:"parent_id" binding:"required"`
	TargetLevel string `json:"target_level" binding:"required"`
}

// PartnerVO 合作伙伴视图，枚举在边界序列化为字符串
type PartnerVO struct {
	PartnerID      uint64          `json:"partner_id"`
	ParentID       *uint64         `json:"parent_id,omitempty"`
	Level          string          `json:"level"`
	Status         string          `json:"status"`
	Name           string          `json:"name"`
	OrgName        string          `json:"org_name"`
	Territory      string          `json:"territory"`
	TerritoryScope string          `json:"territory_scope"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	TeamCount      int             `json:"team_count"`
	TeamDepth      int             `json:"team_depth"`
	CreatedAt      time.Time       `json:"created_at"`
}
