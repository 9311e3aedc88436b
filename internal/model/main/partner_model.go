package mainmodel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PartnerStatus 合作伙伴状态
type PartnerStatus int8

const (
	PartnerPending    PartnerStatus = iota // 待激活
	PartnerActive                          // 正常
	PartnerSuspended                       // 暂停
	PartnerTerminated                      // 终止（软状态，不删除）
)

var partnerStatusNames = map[PartnerStatus]string{
	PartnerPending:    "pending",
	PartnerActive:     "active",
	PartnerSuspended:  "suspended",
	PartnerTerminated: "terminated",
}

func (s PartnerStatus) String() string {
	if v, ok := partnerStatusNames[s]; ok {
		return v
	}
	return fmt.Sprintf("status(%d)", int8(s))
}

// ParsePartnerStatus 仅在 API/存储边界使用
func ParsePartnerStatus(v string) (PartnerStatus, error) {
	for s, name := range partnerStatusNames {
		if name == v {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown partner status: %q", v)
}

// Partner represents w_partner
type Partner struct {
	PartnerID      uint64          `gorm:"column:partner_id;primaryKey" json:"partnerId"`                     // 全局唯一合作伙伴ID
	ParentID       *uint64         `gorm:"column:parent_id;index:idx_parent" json:"parentId"`                 // 上级合作伙伴ID，根节点为空
	Level          int8            `gorm:"column:level;type:tinyint(1);not null;index:idx_level" json:"level"` // 层级 1:大洲 2:大区 3:国家 4:州省 5:本地 6:个人
	Status         int8            `gorm:"column:status;type:tinyint(1);not null" json:"status"`              // 0:待激活 1:正常 2:暂停 3:终止
	Name           string          `gorm:"column:name;type:varchar(50);not null" json:"name"`                 // 负责人姓名
	OrgName        string          `gorm:"column:org_name;type:varchar(100);not null" json:"orgName"`         // 机构名称
	ContactName    string          `gorm:"column:contact_name;type:varchar(50);not null" json:"contactName"`  // 联系人
	Email          string          `gorm:"column:email;type:varchar(100);not null" json:"email"`              // 邮箱
	Phone          string          `gorm:"column:phone;type:varchar(30);not null" json:"phone"`               // 手机号码
	Address        string          `gorm:"column:address;type:varchar(200);not null" json:"address"`          // 地址
	Country        string          `gorm:"column:country;type:varchar(50);not null" json:"country"`           // 国家
	Region         string          `gorm:"column:region;type:varchar(50);not null" json:"region"`             // 大区
	City           string          `gorm:"column:city;type:varchar(50)" json:"city"`                          // 城市
	Territory      string          `gorm:"column:territory;type:varchar(100);not null" json:"territory"`      // 辖区名称
	TerritoryScope string          `gorm:"column:territory_scope;type:varchar(20);not null" json:"territoryScope"` // 辖区范围 continent/region/country/state/city/individual
	CommissionRate decimal.Decimal `gorm:"column:commission_rate;type:decimal(6,4);not null" json:"commissionRate"` // 直接佣金费率
	TeamCount      int             `gorm:"column:team_count;not null;default:0" json:"teamCount"`             // 团队规模，含全部下级
	TeamDepth      int             `gorm:"column:team_depth;not null;default:0" json:"teamDepth"`             // 以该节点为根的团队最大深度
	CreateTime     *time.Time      `gorm:"column:create_time;autoCreateTime" json:"createTime"`               // 创建时间
	UpdateTime     *time.Time      `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`               // 更新时间
}

func (Partner) TableName() string {
	return "w_partner"
}
