package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"partner-commission-api/internal/dal"
	ledgermodel "partner-commission-api/internal/model/ledger"
	"partner-commission-api/internal/shard"
)

// LedgerDao 台账库访问：流水、分配汇总、收益滚动、批次记录
type LedgerDao struct{}

func NewLedgerDao() *LedgerDao { return &LedgerDao{} }

// PersistDistribution 同一事务写入一笔交易的全部流水与分配汇总。
// 管道要么全部落账要么一条不落，超时/取消随事务整体回滚。
func (d *LedgerDao) PersistDistribution(ctx context.Context, dist *ledgermodel.CommissionDistribution, calcs []*ledgermodel.CommissionCalculation, ts time.Time) error {
	calcTable := shard.Table(shard.CommissionBase, ts, dist.TransactionID)
	distTable := shard.Table(shard.DistributionBase, ts, dist.TransactionID)

	return dal.LedgerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(calcs) > 0 {
			if err := tx.Table(calcTable).Create(calcs).Error; err != nil {
				return err
			}
		}
		return tx.Table(distTable).Create(dist).Error
	})
}

// AddEarnings 累计收益原子累加（UPDATE ... SET total_earned = total_earned + ?）
func (d *LedgerDao) AddEarnings(ctx context.Context, partnerID uint64, amount decimal.Decimal) error {
	row := &ledgermodel.PartnerEarnings{
		PartnerID:   partnerID,
		TotalEarned: amount,
		TxCount:     1,
	}
	return dal.LedgerDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "partner_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_earned": gorm.Expr("total_earned + ?", amount),
			"tx_count":     gorm.Expr("tx_count + 1"),
		}),
	}).Create(row).Error
}

func (d *LedgerDao) GetEarnings(partnerID uint64) (*ledgermodel.PartnerEarnings, error) {
	var e ledgermodel.PartnerEarnings
	if err := dal.LedgerDB.Where("partner_id=?", partnerID).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// GetDistributionByTx 在当月分表中查找交易的分配汇总
func (d *LedgerDao) GetDistributionByTx(txID uint64, ts time.Time) (*ledgermodel.CommissionDistribution, error) {
	table := shard.Table(shard.DistributionBase, ts, txID)
	var dist ledgermodel.CommissionDistribution
	err := dal.LedgerDB.Table(table).Where("transaction_id=?", txID).First(&dist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dist, nil
}

// ListCalculationsByTx 一笔交易的全部流水
func (d *LedgerDao) ListCalculationsByTx(txID uint64, ts time.Time) ([]ledgermodel.CommissionCalculation, error) {
	table := shard.Table(shard.CommissionBase, ts, txID)
	var list []ledgermodel.CommissionCalculation
	if err := dal.LedgerDB.Table(table).Where("transaction_id=?", txID).Order("calc_id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListCalculationsByPartner 合作伙伴当月流水，跨全部分表合并
func (d *LedgerDao) ListCalculationsByPartner(partnerID uint64, ts time.Time, pageSize, offset int) ([]ledgermodel.CommissionCalculation, int64, error) {
	tables := shard.AllTables(shard.CommissionBase, ts)

	var all []ledgermodel.CommissionCalculation
	var total int64
	for _, table := range tables {
		var cnt int64
		if err := dal.LedgerDB.Table(table).Where("partner_id=?", partnerID).Count(&cnt).Error; err != nil {
			// 分表可能尚未建立，跳过
			continue
		}
		total += cnt

		var part []ledgermodel.CommissionCalculation
		if err := dal.LedgerDB.Table(table).Where("partner_id=?", partnerID).Find(&part).Error; err != nil {
			continue
		}
		all = append(all, part...)
	}

	// 内存分页，单伙伴月度流水量有限
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// GetCalculation 在当月分表中按流水ID查找
func (d *LedgerDao) GetCalculation(calcID uint64, ts time.Time) (*ledgermodel.CommissionCalculation, string, error) {
	for _, table := range shard.AllTables(shard.CommissionBase, ts) {
		var c ledgermodel.CommissionCalculation
		err := dal.LedgerDB.Table(table).Where("calc_id=?", calcID).First(&c).Error
		if err == nil {
			return &c, table, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
	}
	return nil, "", nil
}

// UpdateCalcStatus 状态流转落库
func (d *LedgerDao) UpdateCalcStatus(table string, calcID uint64, status int8) error {
	return dal.LedgerDB.Table(table).Where("calc_id=?", calcID).Update("status", status).Error
}

// InsertBatchJob 批次开始
func (d *LedgerDao) InsertBatchJob(job *ledgermodel.BatchJob) error {
	return dal.LedgerDB.Create(job).Error
}

// FinishBatchJob 批次完成回写汇总
func (d *LedgerDao) FinishBatchJob(batchID string, succeeded, failed int, totalCommission decimal.Decimal, status int8) error {
	now := time.Now()
	return dal.LedgerDB.Model(&ledgermodel.BatchJob{}).
		Where("batch_id=?", batchID).
		Updates(map[string]interface{}{
			"succeeded":        succeeded,
			"failed":           failed,
			"total_commission": totalCommission,
			"status":           status,
			"finish_time":      &now,
		}).Error
}
