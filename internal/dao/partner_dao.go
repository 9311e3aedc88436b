package dao

import (
	"errors"

	"gorm.io/gorm"

	"partner-commission-api/internal/dal"
	mainmodel "partner-commission-api/internal/model/main"
)

// PartnerDao 主库合作伙伴存储，实现 hierarchy.Store
type PartnerDao struct{}

func NewPartnerDao() *PartnerDao { return &PartnerDao{} }

func (d *PartnerDao) Insert(p *mainmodel.Partner) error {
	return dal.MainDB.Create(p).Error
}

func (d *PartnerDao) Get(id uint64) (*mainmodel.Partner, error) {
	var p mainmodel.Partner
	if err := dal.MainDB.Where("partner_id=?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (d *PartnerDao) UpdateTeamMeta(partnerID uint64, teamCount, teamDepth int) error {
	return dal.MainDB.Model(&mainmodel.Partner{}).
		Where("partner_id=?", partnerID).
		Updates(map[string]interface{}{"team_count": teamCount, "team_depth": teamDepth}).Error
}

// UpdateStatus 状态流转：暂停/恢复/终止，均为软状态
func (d *PartnerDao) UpdateStatus(partnerID uint64, status int8) error {
	return dal.MainDB.Model(&mainmodel.Partner{}).
		Where("partner_id=?", partnerID).
		Update("status", status).Error
}

// List 按层级/状态分页查询
func (d *PartnerDao) List(level, status *int8, pageSize, offset int) ([]mainmodel.Partner, int64, error) {
	query := dal.MainDB.Model(&mainmodel.Partner{})
	if level != nil {
		query = query.Where("level=?", *level)
	}
	if status != nil {
		query = query.Where("status=?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []mainmodel.Partner
	if err := query.Order("create_time desc").Limit(pageSize).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
