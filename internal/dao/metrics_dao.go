package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/dto"
	mainmodel "partner-commission-api/internal/model/main"
)

// MetricsDao 主库绩效快照读取，实现 performance.MetricsSource。
// 指标缺失返回 nil，由评分器回落 average 档。
type MetricsDao struct{}

func NewMetricsDao() *MetricsDao { return &MetricsDao{} }

func (d *MetricsDao) GetMetrics(ctx context.Context, partnerID uint64, period string) (*dto.RawMetrics, error) {
	var m mainmodel.PerformanceMetrics
	err := dal.MainDB.WithContext(ctx).
		Where("partner_id=?", partnerID).
		Where("period=?", period).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.RawMetrics{
		PartnerID:          m.PartnerID,
		Period:             m.Period,
		SalesAchievement:   m.SalesAchievement,
		TeamPerformance:    m.TeamPerformance,
		ClientSatisfaction: m.ClientSatisfaction,
	}, nil
}

// UpsertMetrics 周期指标上报（同周期覆盖）
func (d *MetricsDao) UpsertMetrics(m *mainmodel.PerformanceMetrics) error {
	var exist mainmodel.PerformanceMetrics
	err := dal.MainDB.
		Where("partner_id=?", m.PartnerID).
		Where("period=?", m.Period).
		First(&exist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dal.MainDB.Create(m).Error
		}
		return err
	}
	return dal.MainDB.Model(&exist).Updates(map[string]interface{}{
		"sales_achievement":   m.SalesAchievement,
		"team_performance":    m.TeamPerformance,
		"client_satisfaction": m.ClientSatisfaction,
	}).Error
}
