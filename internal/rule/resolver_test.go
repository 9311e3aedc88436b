package rule

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/hierarchy"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestResolve_AllLevels(t *testing.T) {
	for l := hierarchy.LevelContinental; l <= hierarchy.LevelAffiliate; l++ {
		r, err := Resolve(l)
		require.NoError(t, err, "level %s", l)

		b := rateBounds[l]
		assert.True(t, r.Direct.Cmp(b.Direct.Min) >= 0 && r.Direct.Cmp(b.Direct.Max) <= 0,
			"%s direct=%s 超出区间", l, r.Direct)
		assert.True(t, r.Indirect.Cmp(b.Indirect.Min) >= 0 && r.Indirect.Cmp(b.Indirect.Max) <= 0,
			"%s indirect=%s 超出区间", l, r.Indirect)
		assert.Equal(t, 6, r.InheritanceLevels)
		assert.Equal(t, "0.8", r.DecayRate.String())
	}
}

func TestResolve_InvalidLevel(t *testing.T) {
	_, err := Resolve(hierarchy.Level(0))
	require.Error(t, err)
	assert.Equal(t, constant.CodeLevelInvalid, constant.CodeFrom(err))

	_, err = Resolve(hierarchy.Level(9))
	require.Error(t, err)
}

func TestResolve_AffiliateRates(t *testing.T) {
	r, err := Resolve(hierarchy.LevelAffiliate)
	require.NoError(t, err)
	assert.Equal(t, "0.08", r.Direct.String())
	assert.Equal(t, "0.02", r.Indirect.String())
	assert.Equal(t, "0.04", r.Bonus.String())
}

func TestResolve_DirectRateIncreasesDownward(t *testing.T) {
	// 越靠近成交端直接费率越高
	prev, err := Resolve(hierarchy.LevelContinental)
	require.NoError(t, err)
	for l := hierarchy.LevelRegional; l <= hierarchy.LevelAffiliate; l++ {
		cur, err := Resolve(l)
		require.NoError(t, err)
		assert.True(t, cur.Direct.Cmp(prev.Direct) > 0, "%s 直接费率未高于上级", l)
		prev = cur
	}
}

func TestClamp(t *testing.T) {
	b := Bounds{Min: dec(t, "0.01"), Max: dec(t, "0.05")}
	assert.Equal(t, "0.01", clamp(dec(t, "0.001"), b).String())
	assert.Equal(t, "0.05", clamp(dec(t, "0.2"), b).String())
	assert.Equal(t, "0.03", clamp(dec(t, "0.03"), b).String())
}

func TestMinDirectRate(t *testing.T) {
	assert.Equal(t, "0.06", MinDirectRate(hierarchy.LevelAffiliate).String())
	assert.Equal(t, "0.01", MinDirectRate(hierarchy.LevelContinental).String())
}
