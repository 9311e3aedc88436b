package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RollingTracker 在 redis 中维护每个合作伙伴的滚动绩效分，
// 供运营侧查询近期表现趋势；不参与佣金计算本身。
type RollingTracker struct {
	Redis    *redis.Client
	Strategy SmoothingStrategy
	TTL      time.Duration
}

const rollingBaseline = 1.0 // 无历史数据时从达标线起算

func (t *RollingTracker) Record(ctx context.Context, partnerID uint64, sample float64) error {
	key := t.key(partnerID)

	current, err := t.Redis.Get(ctx, key).Float64()
	if err != nil {
		current = rollingBaseline
	}

	updated := t.Strategy.Update(current, sample)
	return t.Redis.Set(ctx, key, updated, t.TTL).Err()
}

// Get 返回滚动绩效分，无记录时返回达标线
func (t *RollingTracker) Get(ctx context.Context, partnerID uint64) float64 {
	v, err := t.Redis.Get(ctx, t.key(partnerID)).Float64()
	if err != nil {
		return rollingBaseline
	}
	return v
}

func (t *RollingTracker) key(partnerID uint64) string {
	return fmt.Sprintf("partner:rolling_score:%d", partnerID)
}
