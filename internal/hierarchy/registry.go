package hierarchy

import (
	"github.com/shopspring/decimal"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	mainmodel "partner-commission-api/internal/model/main"
)

// PartnerSummary 祖先链节点摘要，佣金流水会固化其状态快照
type PartnerSummary struct {
	PartnerID uint64 `json:"partner_id"`
	Level     Level  `json:"level"`
	Status    int8   `json:"status"`
}

// Store 合作伙伴存储，由 dao 实现注入
type Store interface {
	Insert(p *mainmodel.Partner) error
	Get(id uint64) (*mainmodel.Partner, error)
	UpdateTeamMeta(partnerID uint64, teamCount, teamDepth int) error
}

// RateFunc 层级 → 默认佣金费率
type RateFunc func(Level) decimal.Decimal

// 祖先链遍历上限，层级固定为 6 级，超过即视为数据异常
const maxChainLen = 8

// Registry 维护合作伙伴层级树：节点创建、挂接与祖先链遍历
type Registry struct {
	store       Store
	defaultRate RateFunc
	newID       func() uint64
}

func NewRegistry(store Store, defaultRate RateFunc, newID func() uint64) *Registry {
	return &Registry{store: store, defaultRate: defaultRate, newID: newID}
}

// CreateRoot 创建大洲级根节点
func (r *Registry) CreateRoot(req dto.CreatePartnerReq) (*mainmodel.Partner, error) {
	if err := validateRequired(req); err != nil {
		return nil, err
	}

	p := r.build(req, LevelContinental, nil)
	if err := r.store.Insert(p); err != nil {
		return nil, constant.NewErrorf(constant.CodePersistFailed, "insert root: %v", err)
	}
	return p, nil
}

// AddPartner 将新伙伴挂接到 parent 之下。
// 目标层级必须严格低于上级层级，违反时拒绝且不产生任何部分状态。
func (r *Registry) AddPartner(req dto.CreatePartnerReq, parentID uint64, target Level) (*mainmodel.Partner, error) {
	if err := validateRequired(req); err != nil {
		return nil, err
	}
	if !target.Valid() {
		return nil, constant.NewErrorf(constant.CodeLevelInvalid, "%d", target)
	}

	parent, err := r.store.Get(parentID)
	if err != nil || parent == nil {
		return nil, constant.NewErrorf(constant.CodeParentNotFound, "parent_id=%d", parentID)
	}
	if !target.Below(Level(parent.Level)) {
		return nil, constant.NewErrorf(constant.CodeLevelNotBelowParent,
			"parent=%s target=%s", Level(parent.Level), target)
	}

	p := r.build(req, target, &parentID)
	if err := r.store.Insert(p); err != nil {
		return nil, constant.NewErrorf(constant.CodePersistFailed, "insert partner: %v", err)
	}

	// 向上刷新团队规模/深度元数据
	r.refreshTeamMeta(parent)

	return p, nil
}

// GetAncestorChain 自下而上返回祖先链（最近的在前），根节点无上级时终止
func (r *Registry) GetAncestorChain(partnerID uint64) ([]PartnerSummary, error) {
	p, err := r.store.Get(partnerID)
	if err != nil || p == nil {
		return nil, constant.NewErrorf(constant.CodePartnerNotFound, "partner_id=%d", partnerID)
	}

	chain := make([]PartnerSummary, 0, maxChainLen)
	cur := p
	for cur.ParentID != nil && len(chain) < maxChainLen {
		parent, err := r.store.Get(*cur.ParentID)
		if err != nil || parent == nil {
			return nil, constant.NewErrorf(constant.CodeParentNotFound, "parent_id=%d", *cur.ParentID)
		}
		chain = append(chain, PartnerSummary{
			PartnerID: parent.PartnerID,
			Level:     Level(parent.Level),
			Status:    parent.Status,
		})
		cur = parent
	}
	return chain, nil
}

// GetPartner 读取单个节点
func (r *Registry) GetPartner(partnerID uint64) (*mainmodel.Partner, error) {
	p, err := r.store.Get(partnerID)
	if err != nil || p == nil {
		return nil, constant.NewErrorf(constant.CodePartnerNotFound, "partner_id=%d", partnerID)
	}
	return p, nil
}

func (r *Registry) build(req dto.CreatePartnerReq, level Level, parentID *uint64) *mainmodel.Partner {
	return &mainmodel.Partner{
		PartnerID:      r.newID(),
		ParentID:       parentID,
		Level:          int8(level),
		Status:         int8(mainmodel.PartnerActive),
		Name:           req.Name,
		OrgName:        req.OrgName,
		ContactName:    req.ContactName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Country:        req.Country,
		Region:         req.Region,
		City:           req.City,
		Territory:      TerritoryFor(level, req),
		TerritoryScope: level.TerritoryScope(),
		CommissionRate: r.defaultRate(level),
	}
}

// refreshTeamMeta 新节点挂接后，沿链向上累计团队数量并拉高深度
func (r *Registry) refreshTeamMeta(parent *mainmodel.Partner) {
	depth := 1
	cur := parent
	for cur != nil && depth <= maxChainLen {
		count := cur.TeamCount + 1
		newDepth := cur.TeamDepth
		if depth > newDepth {
			newDepth = depth
		}
		_ = r.store.UpdateTeamMeta(cur.PartnerID, count, newDepth)

		if cur.ParentID == nil {
			break
		}
		next, err := r.store.Get(*cur.ParentID)
		if err != nil {
			break
		}
		cur = next
		depth++
	}
}

func validateRequired(req dto.CreatePartnerReq) error {
	fields := map[string]string{
		"name":         req.Name,
		"org_name":     req.OrgName,
		"contact_name": req.ContactName,
		"email":        req.Email,
		"phone":        req.Phone,
		"address":      req.Address,
		"country":      req.Country,
		"region":       req.Region,
	}
	for name, v := range fields {
		if v == "" {
			return constant.NewErrorf(constant.CodePartnerFieldMissing, "%s", name)
		}
	}
	return nil
}
