package performance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"partner-commission-api/internal/dto"
)

// Tier 绩效档位
type Tier int8

const (
	TierExcellent Tier = iota + 1
	TierGood
	TierAverage
	TierBelowAverage
	TierPoor
)

var tierNames = map[Tier]string{
	TierExcellent:    "excellent",
	TierGood:         "good",
	TierAverage:      "average",
	TierBelowAverage: "below_average",
	TierPoor:         "poor",
}

func (t Tier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return fmt.Sprintf("tier(%d)", int8(t))
}

// 档位固定乘数 1.5/1.2/1.0/0.8/0.5
var tierMultipliers = map[Tier]decimal.Decimal{
	TierExcellent:    decimal.NewFromFloat(1.5),
	TierGood:         decimal.NewFromFloat(1.2),
	TierAverage:      decimal.NewFromFloat(1.0),
	TierBelowAverage: decimal.NewFromFloat(0.8),
	TierPoor:         decimal.NewFromFloat(0.5),
}

// 综合得分权重：销售达成 0.5 + 团队绩效 0.3 + 客户满意 0.2
var (
	weightSales        = decimal.NewFromFloat(0.5)
	weightTeam         = decimal.NewFromFloat(0.3)
	weightSatisfaction = decimal.NewFromFloat(0.2)
)

// 档位阈值，得分 1.0 表示全部指标刚好达标
var (
	thresholdExcellent = decimal.NewFromFloat(1.2)
	thresholdGood      = decimal.NewFromFloat(1.0)
	thresholdAverage   = decimal.NewFromFloat(0.8)
	thresholdBelow     = decimal.NewFromFloat(0.6)
)

// Result 绩效评分结果
type Result struct {
	Score      decimal.Decimal `json:"score"`
	Tier       Tier            `json:"tier"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Average 缺省结果：指标缺失时按 average 档（乘数 1.0）处理，不报错
func Average() Result {
	return Result{
		Score:      decimal.NewFromFloat(1.0),
		Tier:       TierAverage,
		Multiplier: tierMultipliers[TierAverage],
	}
}

// MetricsSource 绩效指标来源，主库快照或外部绩效服务
type MetricsSource interface {
	GetMetrics(ctx context.Context, partnerID uint64, period string) (*dto.RawMetrics, error)
}

type Scorer struct {
	src MetricsSource
}

func NewScorer(src MetricsSource) *Scorer {
	return &Scorer{src: src}
}

// Score 给定同一份指标快照结果确定；指标缺失回落 average 档
func (s *Scorer) Score(ctx context.Context, partnerID uint64, period string) Result {
	m, err := s.src.GetMetrics(ctx, partnerID, period)
	if err != nil || m == nil {
		return Average()
	}
	return ScoreMetrics(*m)
}

// ScoreMetrics 纯函数：指标快照 → 得分/档位/乘数
func ScoreMetrics(m dto.RawMetrics) Result {
	score := m.SalesAchievement.Mul(weightSales).
		Add(m.TeamPerformance.Mul(weightTeam)).
		Add(m.ClientSatisfaction.Mul(weightSatisfaction))

	tier := tierFor(score)
	return Result{
		Score:      score,
		Tier:       tier,
		Multiplier: tierMultipliers[tier],
	}
}

func tierFor(score decimal.Decimal) Tier {
	switch {
	case score.Cmp(thresholdExcellent) >= 0:
		return TierExcellent
	case score.Cmp(thresholdGood) >= 0:
		return TierGood
	case score.Cmp(thresholdAverage) >= 0:
		return TierAverage
	case score.Cmp(thresholdBelow) >= 0:
		return TierBelowAverage
	default:
		return TierPoor
	}
}
