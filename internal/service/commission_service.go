package service

import (
	"context"
	"encoding/json"
	"time"

	"partner-commission-api/internal/batch"
	"partner-commission-api/internal/calc"
	"partner-commission-api/internal/config"
	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/dao"
	"partner-commission-api/internal/dto"
	"partner-commission-api/internal/hierarchy"
	"partner-commission-api/internal/idgen"
	ledgermodel "partner-commission-api/internal/model/ledger"
	"partner-commission-api/internal/mq"
	"partner-commission-api/internal/performance"
	rediskey "partner-commission-api/internal/types/redis-key"
	"partner-commission-api/internal/rule"
	"partner-commission-api/internal/utils"
)

// CommissionService 单笔交易佣金管道，实现 batch.Processor
type CommissionService struct {
	registry *hierarchy.Registry
	scorer   *performance.Scorer
	ledger   *dao.LedgerDao
}

func NewCommissionService() *CommissionService {
	return &CommissionService{
		registry: hierarchy.NewRegistry(dao.NewPartnerDao(), rule.MinDirectRate, idgen.New),
		scorer:   performance.NewScorer(dao.NewMetricsDao()),
		ledger:   dao.NewLedgerDao(),
	}
}

// Process 规则解析 → 绩效评分 → 直接/间接/奖金 → 守恒校验 → 落账（带重试）。
// 计算阶段为纯 CPU 操作，只有落账会阻塞在 I/O 上。
func (s *CommissionService) Process(ctx context.Context, tx dto.Transaction) (*batch.Outcome, error) {
	// 1) 前置校验，不合格交易不进入台账
	if err := calc.ValidateTransaction(tx); err != nil {
		return nil, err
	}

	// 2) 成交伙伴与祖先链（层级/规则数据只读，可并发）
	partner, err := s.registry.GetPartner(tx.PartnerID)
	if err != nil {
		return nil, err
	}
	ancestors, err := s.registry.GetAncestorChain(tx.PartnerID)
	if err != nil {
		return nil, err
	}

	// 3) 费率与绩效
	r, err := rule.Resolve(hierarchy.Level(partner.Level))
	if err != nil {
		return nil, err
	}
	period := tx.OccurredAt.Format("200601")
	perf := s.scorer.Score(ctx, tx.PartnerID, period)

	// 4) 三类计算
	direct, err := calc.CalculateDirect(tx, r, perf)
	if err != nil {
		return nil, err
	}
	direct.PartnerLevel = partner.Level
	direct.PartnerStatus = partner.Status

	calcs := []*ledgermodel.CommissionCalculation{direct}
	calcs = append(calcs, calc.DistributeIndirect(tx, ancestors, r)...)
	if bonus := calc.CalculateBonus(tx, r, perf); bonus != nil {
		bonus.PartnerLevel = partner.Level
		bonus.PartnerStatus = partner.Status
		calcs = append(calcs, bonus)
	}

	// 5) 守恒校验，超额只上报不截断
	vr, err := calc.Validate(tx, calcs)
	if err != nil {
		return nil, err
	}

	// 6) 编号并落账，全部流水与汇总在同一事务
	for _, c := range calcs {
		c.CalcID = idgen.New()
		c.BatchID = tx.BatchID
	}
	dist := &ledgermodel.CommissionDistribution{
		DistributionID:   idgen.New(),
		TransactionID:    tx.TransactionID,
		BatchID:          tx.BatchID,
		PartnerID:        tx.PartnerID,
		TotalAmount:      tx.Amount,
		TotalDistributed: vr.TotalDistributed,
		RemainingAmount:  vr.RemainingAmount,
		Currency:         tx.Currency,
		CalculationCount: len(calcs),
	}

	backoff := time.Duration(config.C.Batch.PersistBackoffMs) * time.Millisecond
	err = utils.DoWithRetry(ctx, config.C.Batch.PersistRetries, backoff, func() error {
		return s.ledger.PersistDistribution(ctx, dist, calcs, tx.OccurredAt)
	})
	if err != nil {
		return nil, constant.NewErrorf(constant.CodePersistFailed, "tx=%d: %v", tx.TransactionID, err)
	}

	// 7) 缓存分配结果（短期），发布事件
	s.cacheDistribution(dist)
	_ = mq.PublishCommissionCalculated(dto.CommissionCalculatedEvent{
		TransactionID:    tx.TransactionID,
		DistributionID:   dist.DistributionID,
		BatchID:          tx.BatchID,
		PartnerID:        tx.PartnerID,
		TotalAmount:      tx.Amount.String(),
		TotalDistributed: vr.TotalDistributed.String(),
		Currency:         tx.Currency,
		CalculationCount: len(calcs),
		Ts:               time.Now().Unix(),
	})

	score, _ := perf.Score.Float64()
	return &batch.Outcome{
		TransactionID: tx.TransactionID,
		Distribution:  dist,
		Calculations:  calcs,
		PerfScore:     score,
	}, nil
}

func (s *CommissionService) cacheDistribution(dist *ledgermodel.CommissionDistribution) {
	if dal.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(dist)
	_ = dal.RedisClient.Set(dal.RedisCtx, rediskey.Distribution(dist.TransactionID), string(b), 10*time.Minute).Err()
}
