package performance

// SmoothingStrategy 滚动绩效分的平滑策略
type SmoothingStrategy interface {
	Update(current, sample float64) float64
}

// EWMAStrategy 趋势平滑，适合高频场景
type EWMAStrategy struct {
	Alpha float64 // e.g. 0.2
}

func (e *EWMAStrategy) Update(current, sample float64) float64 {
	return e.Alpha*sample + (1-e.Alpha)*current
}

// DecayStrategy 衰减策略：样本低于当前值时按比例衰减，高于时直接采纳
type DecayStrategy struct {
	Factor float64 // e.g. 0.95
}

func (d *DecayStrategy) Update(current, sample float64) float64 {
	if sample >= current {
		return sample
	}
	updated := current * d.Factor
	if updated < sample {
		return sample
	}
	return updated
}
