package rule

import (
	"github.com/shopspring/decimal"

	"partner-commission-api/internal/hierarchy"
)

// Bounds 单项费率允许区间
type Bounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// RateBounds 每个层级五类费率的允许区间
type RateBounds struct {
	Direct   Bounds
	Indirect Bounds
	Override Bounds
	Bonus    Bounds
	Residual Bounds
}

// baseRates 六个层级的基准费率表 {direct, indirect, override, bonus, residual}
// 层级越低（越靠近成交端）直接费率越高
var baseRates = map[hierarchy.Level][5]decimal.Decimal{
	hierarchy.LevelContinental: rates(0.03, 0.010, 0.005, 0.020, 0.005),
	hierarchy.LevelRegional:    rates(0.04, 0.012, 0.005, 0.020, 0.005),
	hierarchy.LevelNational:    rates(0.05, 0.015, 0.006, 0.025, 0.005),
	hierarchy.LevelState:       rates(0.06, 0.018, 0.008, 0.030, 0.010),
	hierarchy.LevelLocal:       rates(0.07, 0.020, 0.010, 0.035, 0.010),
	hierarchy.LevelAffiliate:   rates(0.08, 0.020, 0.010, 0.040, 0.010),
}

// rateBounds 每个层级的费率钳制区间，Resolve 返回前统一钳制
var rateBounds = map[hierarchy.Level]RateBounds{
	hierarchy.LevelContinental: bounds(0.01, 0.05, 0.005, 0.02, 0.002, 0.01, 0.01, 0.03, 0.002, 0.01),
	hierarchy.LevelRegional:    bounds(0.02, 0.06, 0.005, 0.02, 0.002, 0.01, 0.01, 0.03, 0.002, 0.01),
	hierarchy.LevelNational:    bounds(0.03, 0.07, 0.008, 0.025, 0.003, 0.012, 0.015, 0.04, 0.003, 0.012),
	hierarchy.LevelState:       bounds(0.04, 0.08, 0.010, 0.025, 0.004, 0.015, 0.020, 0.05, 0.004, 0.015),
	hierarchy.LevelLocal:       bounds(0.05, 0.09, 0.010, 0.030, 0.005, 0.020, 0.025, 0.06, 0.005, 0.020),
	hierarchy.LevelAffiliate:   bounds(0.06, 0.10, 0.010, 0.030, 0.005, 0.020, 0.030, 0.06, 0.005, 0.020),
}

// 继承分配全局参数
var (
	defaultInheritanceLevels = 6
	defaultDecayRate         = decimal.NewFromFloat(0.8)  // 每跳乘法衰减
	defaultMinRate           = decimal.NewFromFloat(0.01) // 低于该费率停止向上分配
	defaultCommissionCap     = decimal.NewFromFloat(10000) // 单笔直接佣金上限
	defaultBonusCap          = decimal.NewFromFloat(5000)  // 单笔绩效奖金上限
	maxOverrideRate          = decimal.NewFromFloat(0.5)   // 交易级费率覆盖允许上限
)

func rates(direct, indirect, override, bonus, residual float64) [5]decimal.Decimal {
	return [5]decimal.Decimal{
		decimal.NewFromFloat(direct),
		decimal.NewFromFloat(indirect),
		decimal.NewFromFloat(override),
		decimal.NewFromFloat(bonus),
		decimal.NewFromFloat(residual),
	}
}

func bounds(dMin, dMax, iMin, iMax, oMin, oMax, bMin, bMax, rMin, rMax float64) RateBounds {
	return RateBounds{
		Direct:   Bounds{decimal.NewFromFloat(dMin), decimal.NewFromFloat(dMax)},
		Indirect: Bounds{decimal.NewFromFloat(iMin), decimal.NewFromFloat(iMax)},
		Override: Bounds{decimal.NewFromFloat(oMin), decimal.NewFromFloat(oMax)},
		Bonus:    Bounds{decimal.NewFromFloat(bMin), decimal.NewFromFloat(bMax)},
		Residual: Bounds{decimal.NewFromFloat(rMin), decimal.NewFromFloat(rMax)},
	}
}

func clamp(v decimal.Decimal, b Bounds) decimal.Decimal {
	if v.Cmp(b.Min) < 0 {
		return b.Min
	}
	if v.Cmp(b.Max) > 0 {
		return b.Max
	}
	return v
}
