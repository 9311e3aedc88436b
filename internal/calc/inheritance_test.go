package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/hierarchy"
	ledgermodel "partner-commission-api/internal/model/ledger"
	mainmodel "partner-commission-api/internal/model/main"
)

func chain(n int) []hierarchy.PartnerSummary {
	out := make([]hierarchy.PartnerSummary, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, hierarchy.PartnerSummary{
			PartnerID: uint64(100 + i),
			Level:     hierarchy.LevelLocal - hierarchy.Level(i),
			Status:    int8(mainmodel.PartnerActive),
		})
	}
	return out
}

func TestDistributeIndirect_Decay(t *testing.T) {
	r := affiliateRule(t)

	// 1000 * 0.02 = 20，逐跳乘 0.8：20 / 16 / 12.80
	out := DistributeIndirect(sampleTx("1000"), chain(3), r)
	require.Len(t, out, 3)

	assert.Equal(t, "20", out[0].TotalCommission.String())
	assert.Equal(t, "16", out[1].TotalCommission.String())
	assert.Equal(t, "12.8", out[2].TotalCommission.String())

	for i, c := range out {
		assert.Equal(t, i+1, c.HopDistance)
		assert.Equal(t, uint64(100+i), c.PartnerID)
		assert.Equal(t, int8(ledgermodel.TypeIndirect), c.CommissionType)
	}
}

func TestDistributeIndirect_MinRateStop(t *testing.T) {
	r := affiliateRule(t)

	// 第 5 跳费率 0.02*0.8^4 = 0.008192 < 0.01，长链只产出 4 条
	out := DistributeIndirect(sampleTx("1000"), chain(6), r)
	assert.Len(t, out, 4)
	assert.Equal(t, "10.24", out[3].TotalCommission.String())
}

func TestDistributeIndirect_LevelCap(t *testing.T) {
	r := affiliateRule(t)
	r.InheritanceLevels = 2
	r.MinCommissionRate = r.MinCommissionRate.Shift(-3) // 下限放开，只验证跳数截断

	out := DistributeIndirect(sampleTx("1000"), chain(6), r)
	assert.Len(t, out, 2)
}

func TestDistributeIndirect_StatusSnapshot(t *testing.T) {
	r := affiliateRule(t)
	ancestors := chain(2)
	ancestors[1].Status = int8(mainmodel.PartnerSuspended)

	// 暂停的祖先照常计算，状态快照随流水固化
	out := DistributeIndirect(sampleTx("1000"), ancestors, r)
	require.Len(t, out, 2)
	assert.Equal(t, int8(mainmodel.PartnerSuspended), out[1].PartnerStatus)
}

func TestDistributeIndirect_SkipZeroAmount(t *testing.T) {
	r := affiliateRule(t)

	// 0.10 * 0.02 = 0.002 → 0.00，不落账
	out := DistributeIndirect(sampleTx("0.10"), chain(3), r)
	assert.Empty(t, out)
}

func TestDistributeIndirect_NoAncestors(t *testing.T) {
	r := affiliateRule(t)
	out := DistributeIndirect(sampleTx("1000"), nil, r)
	assert.Empty(t, out)
}
