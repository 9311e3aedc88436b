package shard

import "partner-commission-api/internal/config"

// 台账分表基名
const (
	CommissionBase   = "p_commission"
	DistributionBase = "p_distribution"
)

const defaultShardCount uint32 = 4

var (
	CommissionShard   *ShardEngine
	DistributionShard *ShardEngine
)

// InitShardEngines 初始化台账分片引擎，分片数读配置
func InitShardEngines() {
	count := uint32(config.C.Ledger.ShardsPerMonth)
	if count == 0 {
		count = defaultShardCount
	}
	CommissionShard = NewShardEngine(CommissionBase, count)
	DistributionShard = NewShardEngine(DistributionBase, count)
}
