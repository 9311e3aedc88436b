package performance

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/dto"
)

func metrics(sales, team, satisfaction string) dto.RawMetrics {
	return dto.RawMetrics{
		PartnerID:          42,
		Period:             "202608",
		SalesAchievement:   decimal.RequireFromString(sales),
		TeamPerformance:    decimal.RequireFromString(team),
		ClientSatisfaction: decimal.RequireFromString(satisfaction),
	}
}

func TestScoreMetrics_Weights(t *testing.T) {
	// 1.0*0.5 + 1.0*0.3 + 1.0*0.2 = 1.0 → good
	r := ScoreMetrics(metrics("1.0", "1.0", "1.0"))
	assert.Equal(t, "1", r.Score.String())
	assert.Equal(t, TierGood, r.Tier)
	assert.Equal(t, "1.2", r.Multiplier.String())
}

func TestScoreMetrics_Tiers(t *testing.T) {
	cases := []struct {
		name       string
		sales      string
		wantTier   Tier
		multiplier string
	}{
		// 其余两项固定 1.0，只动销售达成
		{"excellent", "1.8", TierExcellent, "1.5"},   // 0.9+0.5=1.4
		{"good", "1.0", TierGood, "1.2"},             // 1.0
		{"average", "0.7", TierAverage, "1"},         // 0.85
		{"below_average", "0.3", TierBelowAverage, "0.8"}, // 0.65
		{"poor", "0.1", TierPoor, "0.5"},             // 0.55
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ScoreMetrics(metrics(tc.sales, "1.0", "1.0"))
			assert.Equal(t, tc.wantTier, r.Tier, "score=%s", r.Score)
			assert.Equal(t, tc.multiplier, r.Multiplier.String())
		})
	}
}

func TestScoreMetrics_Deterministic(t *testing.T) {
	m := metrics("1.1", "0.9", "1.05")
	first := ScoreMetrics(m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreMetrics(m))
	}
}

type stubSource struct {
	m   *dto.RawMetrics
	err error
}

func (s *stubSource) GetMetrics(_ context.Context, _ uint64, _ string) (*dto.RawMetrics, error) {
	return s.m, s.err
}

func TestScorer_MissingMetrics(t *testing.T) {
	// 指标缺失按 average 档处理，不报错
	s := NewScorer(&stubSource{})
	r := s.Score(context.Background(), 42, "202608")
	assert.Equal(t, TierAverage, r.Tier)
	assert.Equal(t, "1", r.Multiplier.String())
}

func TestScorer_SourceError(t *testing.T) {
	s := NewScorer(&stubSource{err: errors.New("db down")})
	r := s.Score(context.Background(), 42, "202608")
	assert.Equal(t, TierAverage, r.Tier)
}

func TestScorer_WithMetrics(t *testing.T) {
	m := metrics("1.5", "1.2", "1.3")
	s := NewScorer(&stubSource{m: &m})
	r := s.Score(context.Background(), 42, "202608")
	require.Equal(t, TierExcellent, r.Tier) // 0.75+0.36+0.26=1.37
}

func TestSmoothingStrategies(t *testing.T) {
	ewma := &EWMAStrategy{Alpha: 0.2}
	assert.InDelta(t, 1.04, ewma.Update(1.0, 1.2), 1e-9)

	decay := &DecayStrategy{Factor: 0.95}
	got := decay.Update(1.0, 1.2)
	assert.Greater(t, got, 1.0)
}
