package service

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/dao"
	"partner-commission-api/internal/dto"
	"partner-commission-api/internal/hierarchy"
	"partner-commission-api/internal/idgen"
	mainmodel "partner-commission-api/internal/model/main"
	"partner-commission-api/internal/rule"
	rediskey "partner-commission-api/internal/types/redis-key"
)

// PartnerService 合作伙伴层级管理
type PartnerService struct {
	registry *hierarchy.Registry
	dao      *dao.PartnerDao
	metrics  *dao.MetricsDao
}

func NewPartnerService() *PartnerService {
	d := dao.NewPartnerDao()
	return &PartnerService{
		registry: hierarchy.NewRegistry(d, rule.MinDirectRate, idgen.New),
		dao:      d,
		metrics:  dao.NewMetricsDao(),
	}
}

// CreateRoot 创建大洲级根节点
func (s *PartnerService) CreateRoot(req dto.CreatePartnerReq) (*dto.PartnerVO, error) {
	p, err := s.registry.CreateRoot(req)
	if err != nil {
		return nil, err
	}
	return partnerVO(p), nil
}

// AddPartner 挂接下级节点，层级在边界解析
func (s *PartnerService) AddPartner(req dto.AddPartnerReq) (*dto.PartnerVO, error) {
	target, err := hierarchy.ParseLevel(req.TargetLevel)
	if err != nil {
		return nil, constant.NewErrorf(constant.CodeLevelInvalid, "%q", req.TargetLevel)
	}

	p, err := s.registry.AddPartner(req.CreatePartnerReq, req.ParentID, target)
	if err != nil {
		return nil, err
	}

	// 链路变化，清掉旧的祖先链缓存
	s.evictChain(p.PartnerID)
	return partnerVO(p), nil
}

func (s *PartnerService) GetPartner(partnerID uint64) (*dto.PartnerVO, error) {
	p, err := s.registry.GetPartner(partnerID)
	if err != nil {
		return nil, err
	}
	return partnerVO(p), nil
}

// GetAncestorChain 祖先链查询，redis 缓存 10 分钟。
// 层级树只增不改父，缓存只在节点挂接时失效。
func (s *PartnerService) GetAncestorChain(partnerID uint64) ([]hierarchy.PartnerSummary, error) {
	key := rediskey.AncestorChain(partnerID)
	if dal.RedisClient != nil {
		if raw, err := dal.RedisClient.Get(dal.RedisCtx, key).Result(); err == nil {
			var chain []hierarchy.PartnerSummary
			if json.Unmarshal([]byte(raw), &chain) == nil {
				return chain, nil
			}
		}
	}

	chain, err := s.registry.GetAncestorChain(partnerID)
	if err != nil {
		return nil, err
	}

	if dal.RedisClient != nil {
		b, _ := json.Marshal(chain)
		_ = dal.RedisClient.Set(dal.RedisCtx, key, string(b), 10*time.Minute).Err()
	}
	return chain, nil
}

// UpdateStatus 状态流转。终止是终态，不允许恢复。
func (s *PartnerService) UpdateStatus(partnerID uint64, status string) error {
	target, err := mainmodel.ParsePartnerStatus(status)
	if err != nil {
		return constant.NewErrorf(constant.CodeStatusTransitionInvalid, "%q", status)
	}

	p, err := s.registry.GetPartner(partnerID)
	if err != nil {
		return err
	}
	if mainmodel.PartnerStatus(p.Status) == mainmodel.PartnerTerminated {
		return constant.NewErrorf(constant.CodeStatusTransitionInvalid,
			"terminated -> %s", target)
	}

	return s.dao.UpdateStatus(partnerID, int8(target))
}

// List 按层级/状态分页
func (s *PartnerService) List(level, status string, pageSize, pageNum int) ([]dto.PartnerVO, int64, error) {
	var levelPtr, statusPtr *int8
	if level != "" {
		l, err := hierarchy.ParseLevel(level)
		if err != nil {
			return nil, 0, constant.NewErrorf(constant.CodeLevelInvalid, "%q", level)
		}
		v := int8(l)
		levelPtr = &v
	}
	if status != "" {
		st, err := mainmodel.ParsePartnerStatus(status)
		if err != nil {
			return nil, 0, constant.NewErrorf(constant.CodeStatusTransitionInvalid, "%q", status)
		}
		v := int8(st)
		statusPtr = &v
	}

	if pageSize <= 0 {
		pageSize = 20
	}
	if pageNum <= 0 {
		pageNum = 1
	}

	list, total, err := s.dao.List(levelPtr, statusPtr, pageSize, (pageNum-1)*pageSize)
	if err != nil {
		return nil, 0, constant.NewErrorf(constant.CodeDatabaseError, "list partners: %v", err)
	}

	vos := make([]dto.PartnerVO, 0, len(list))
	for i := range list {
		vos = append(vos, *partnerVO(&list[i]))
	}
	return vos, total, nil
}

// ReportMetrics 上报周期绩效指标，下一次评分即生效
func (s *PartnerService) ReportMetrics(partnerID uint64, req dto.ReportMetricsReq) error {
	if _, err := s.registry.GetPartner(partnerID); err != nil {
		return err
	}

	sales, err := decimal.NewFromString(req.SalesAchievement)
	if err != nil {
		return constant.NewErrorf(constant.CodeTxAmountInvalid, "sales_achievement %q", req.SalesAchievement)
	}
	team, err := decimal.NewFromString(req.TeamPerformance)
	if err != nil {
		return constant.NewErrorf(constant.CodeTxAmountInvalid, "team_performance %q", req.TeamPerformance)
	}
	satisfaction, err := decimal.NewFromString(req.ClientSatisfaction)
	if err != nil {
		return constant.NewErrorf(constant.CodeTxAmountInvalid, "client_satisfaction %q", req.ClientSatisfaction)
	}

	if err := s.metrics.UpsertMetrics(&mainmodel.PerformanceMetrics{
		PartnerID:          partnerID,
		Period:             req.Period,
		SalesAchievement:   sales,
		TeamPerformance:    team,
		ClientSatisfaction: satisfaction,
	}); err != nil {
		return constant.NewErrorf(constant.CodePersistFailed, "metrics partner=%d: %v", partnerID, err)
	}
	return nil
}

func (s *PartnerService) evictChain(partnerID uint64) {
	if dal.RedisClient == nil {
		return
	}
	_ = dal.RedisClient.Del(dal.RedisCtx, rediskey.AncestorChain(partnerID)).Err()
}

func partnerVO(p *mainmodel.Partner) *dto.PartnerVO {
	vo := &dto.PartnerVO{
		PartnerID:      p.PartnerID,
		ParentID:       p.ParentID,
		Level:          hierarchy.Level(p.Level).String(),
		Status:         mainmodel.PartnerStatus(p.Status).String(),
		Name:           p.Name,
		OrgName:        p.OrgName,
		Territory:      p.Territory,
		TerritoryScope: p.TerritoryScope,
		CommissionRate: p.CommissionRate,
		TeamCount:      p.TeamCount,
		TeamDepth:      p.TeamDepth,
	}
	if p.CreateTime != nil {
		vo.CreatedAt = *p.CreateTime
	}
	return vo
}
