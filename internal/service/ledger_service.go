package service

import (
	"encoding/json"
	"time"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/dao"
	"partner-commission-api/internal/dto"
	ledgermodel "partner-commission-api/internal/model/ledger"
	rediskey "partner-commission-api/internal/types/redis-key"
)

// LedgerService 台账查询与佣金状态流转
type LedgerService struct {
	ledger *dao.LedgerDao
}

func NewLedgerService() *LedgerService {
	return &LedgerService{ledger: dao.NewLedgerDao()}
}

// parsePeriod 佣金台账按月分表，查询必须落到具体月份；缺省当月
func parsePeriod(period string) (time.Time, error) {
	if period == "" {
		return time.Now(), nil
	}
	return time.Parse("200601", period)
}

// GetDistribution 一笔交易的完整分配结果，redis 读穿透
func (s *LedgerService) GetDistribution(txID uint64, period string) (*dto.DistributionVO, error) {
	ts, err := parsePeriod(period)
	if err != nil {
		return nil, constant.NewErrorf(constant.CodeLedgerQueryFailed, "period %q", period)
	}

	var dist *ledgermodel.CommissionDistribution
	if dal.RedisClient != nil {
		if raw, e := dal.RedisClient.Get(dal.RedisCtx, rediskey.Distribution(txID)).Result(); e == nil {
			var cached ledgermodel.CommissionDistribution
			if json.Unmarshal([]byte(raw), &cached) == nil {
				dist = &cached
			}
		}
	}
	if dist == nil {
		dist, err = s.ledger.GetDistributionByTx(txID, ts)
		if err != nil {
			return nil, constant.NewErrorf(constant.CodeLedgerQueryFailed, "tx=%d: %v", txID, err)
		}
	}
	if dist == nil {
		return nil, constant.NewErrorf(constant.CodeDistributionNotFound, "tx=%d", txID)
	}

	calcs, err := s.ledger.ListCalculationsByTx(txID, ts)
	if err != nil {
		return nil, constant.NewErrorf(constant.CodeLedgerQueryFailed, "tx=%d: %v", txID, err)
	}

	vo := &dto.DistributionVO{
		DistributionID:   dist.DistributionID,
		TransactionID:    dist.TransactionID,
		BatchID:          dist.BatchID,
		TotalAmount:      dist.TotalAmount,
		TotalDistributed: dist.TotalDistributed,
		RemainingAmount:  dist.RemainingAmount,
		Currency:         dist.Currency,
		Calculations:     make([]dto.CalculationVO, 0, len(calcs)),
	}
	if dist.CreateTime != nil {
		vo.CreatedAt = *dist.CreateTime
	}
	for i := range calcs {
		vo.Calculations = append(vo.Calculations, calculationVO(&calcs[i]))
	}
	return vo, nil
}

// ListCalculations 合作伙伴月度流水分页
func (s *LedgerService) ListCalculations(partnerID uint64, period string, pageSize, pageNum int) ([]dto.CalculationVO, int64, error) {
	ts, err := parsePeriod(period)
	if err != nil {
		return nil, 0, constant.NewErrorf(constant.CodeLedgerQueryFailed, "period %q", period)
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageNum <= 0 {
		pageNum = 1
	}

	list, total, err := s.ledger.ListCalculationsByPartner(partnerID, ts, pageSize, (pageNum-1)*pageSize)
	if err != nil {
		return nil, 0, constant.NewErrorf(constant.CodeLedgerQueryFailed, "partner=%d: %v", partnerID, err)
	}

	vos := make([]dto.CalculationVO, 0, len(list))
	for i := range list {
		vos = append(vos, calculationVO(&list[i]))
	}
	return vos, total, nil
}

// GetEarnings 合作伙伴累计收益
func (s *LedgerService) GetEarnings(partnerID uint64) (*dto.EarningsVO, error) {
	e, err := s.ledger.GetEarnings(partnerID)
	if err != nil {
		return nil, constant.NewErrorf(constant.CodeLedgerQueryFailed, "partner=%d: %v", partnerID, err)
	}
	if e == nil {
		// 尚无收益记录视为零值，不报错
		return &dto.EarningsVO{PartnerID: partnerID}, nil
	}
	vo := &dto.EarningsVO{
		PartnerID:   e.PartnerID,
		TotalEarned: e.TotalEarned,
		TxCount:     e.TxCount,
	}
	if e.UpdateTime != nil {
		vo.UpdatedAt = *e.UpdateTime
	}
	return vo, nil
}

// UpdateCalcStatus 佣金流水状态流转：审核、支付、争议、解决、取消。
// 流转规则由状态机约束，终态不可再变。
func (s *LedgerService) UpdateCalcStatus(calcID uint64, period, target string) (*dto.CalculationVO, error) {
	ts, err := parsePeriod(period)
	if err != nil {
		return nil, constant.NewErrorf(constant.CodeLedgerQueryFailed, "period %q", period)
	}
	to, ok := parseCalcStatus(target)
	if !ok {
		return nil, constant.NewErrorf(constant.CodeStatusTransitionInvalid, "%q", target)
	}

	c, table, err := s.ledger.GetCalculation(calcID, ts)
	if err != nil {
		return nil, constant.NewErrorf(constant.CodeLedgerQueryFailed, "calc=%d: %v", calcID, err)
	}
	if c == nil {
		return nil, constant.NewErrorf(constant.CodeCalculationNotFound, "calc=%d", calcID)
	}

	if err := c.Transition(to); err != nil {
		return nil, err
	}
	if err := s.ledger.UpdateCalcStatus(table, calcID, c.Status); err != nil {
		return nil, constant.NewErrorf(constant.CodePersistFailed, "calc=%d: %v", calcID, err)
	}

	vo := calculationVO(c)
	return &vo, nil
}

func parseCalcStatus(v string) (ledgermodel.CalcStatus, bool) {
	for s := ledgermodel.CalcPending; s <= ledgermodel.CalcCancelled; s++ {
		if s.String() == v {
			return s, true
		}
	}
	return 0, false
}

func calculationVO(c *ledgermodel.CommissionCalculation) dto.CalculationVO {
	vo := dto.CalculationVO{
		CalculationID:    c.CalcID,
		TransactionID:    c.TransactionID,
		PartnerID:        c.PartnerID,
		CommissionType:   ledgermodel.CommissionType(c.CommissionType).String(),
		HopDistance:      c.HopDistance,
		BaseAmount:       c.BaseAmount,
		Rate:             c.Rate,
		CommissionAmount: c.CommissionAmount,
		PerformanceBonus: c.PerformanceBonus,
		TotalCommission:  c.TotalCommission,
		Currency:         c.Currency,
		Status:           ledgermodel.CalcStatus(c.Status).String(),
	}
	if c.CreateTime != nil {
		vo.CreatedAt = *c.CreateTime
	}
	return vo
}
