package rule

import (
	"github.com/shopspring/decimal"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/hierarchy"
)

// CommissionRule 某一层级生效的费率配置，Resolve 返回前已钳制
type CommissionRule struct {
	Level             hierarchy.Level
	Direct            decimal.Decimal // 直接佣金费率
	Indirect          decimal.Decimal // 间接佣金基准费率（第一跳）
	Override          decimal.Decimal // 管理加成费率
	Bonus             decimal.Decimal // 绩效奖金费率
	Residual          decimal.Decimal // 残余分成费率
	InheritanceLevels int             // 向上分配的最大跳数
	DecayRate         decimal.Decimal // 每跳乘法衰减因子 (0,1)
	MinCommissionRate decimal.Decimal // 继承费率下限，低于即停止
	CommissionCap     decimal.Decimal // 单笔直接佣金上限
	BonusCap          decimal.Decimal // 单笔绩效奖金上限
}

// Resolve 纯函数：层级 → 费率配置。无副作用，可并发读。
func Resolve(level hierarchy.Level) (CommissionRule, error) {
	base, ok := baseRates[level]
	if !ok {
		return CommissionRule{}, constant.NewErrorf(constant.CodeLevelInvalid, "%v", level)
	}
	b := rateBounds[level]
	return CommissionRule{
		Level:             level,
		Direct:            clamp(base[0], b.Direct),
		Indirect:          clamp(base[1], b.Indirect),
		Override:          clamp(base[2], b.Override),
		Bonus:             clamp(base[3], b.Bonus),
		Residual:          clamp(base[4], b.Residual),
		InheritanceLevels: defaultInheritanceLevels,
		DecayRate:         defaultDecayRate,
		MinCommissionRate: defaultMinRate,
		CommissionCap:     defaultCommissionCap,
		BonusCap:          defaultBonusCap,
	}, nil
}

// MinDirectRate 该层级直接费率下限，新伙伴入网时的默认费率
func MinDirectRate(level hierarchy.Level) decimal.Decimal {
	return rateBounds[level].Direct.Min
}

// MaxOverrideRate 交易级费率覆盖的允许上限
func MaxOverrideRate() decimal.Decimal {
	return maxOverrideRate
}
