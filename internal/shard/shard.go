package shard

import (
	"fmt"
	"time"
)

func engineFor(base string) *ShardEngine {
	switch base {
	case CommissionBase:
		if CommissionShard != nil {
			return CommissionShard
		}
	case DistributionBase:
		if DistributionShard != nil {
			return DistributionShard
		}
	}
	return NewShardEngine(base, defaultShardCount)
}

// Table 路由到具体分表，如 p_commission_202608_p0
func Table(base string, ts time.Time, id uint64) string {
	return engineFor(base).GetTable(id, ts)
}

// AllTables 给定月份的全部分表，跨分表扫描用
func AllTables(base string, ts time.Time) []string {
	e := engineFor(base)
	if ts.IsZero() || ts.Year() < 2000 {
		ts = time.Now()
	}
	month := ts.Format("200601")
	out := make([]string, 0, e.ShardCount)
	for i := uint32(0); i < e.ShardCount; i++ {
		out = append(out, fmt.Sprintf("%s_%s_p%d", base, month, i))
	}
	return out
}
