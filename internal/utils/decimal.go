package utils

import "github.com/shopspring/decimal"

// 佣金金额统一保留的小数位
const MoneyScale = 2

// RoundHalfUp 半进位保留 places 位。金额均为非负数，
// decimal.Round 的 half-away-from-zero 即为 half-up。
func RoundHalfUp(v decimal.Decimal, places int32) decimal.Decimal {
	return v.Round(places)
}

// RoundMoney 金额半进位保留两位
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(v, MoneyScale)
}

// MaxDecimal 比较两个数值，返回最大值
func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// MinDecimal 比较两个数值，返回最小值
func MinDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
