package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"partner-commission-api/internal/batch"
	"partner-commission-api/internal/config"
	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/dao"
	"partner-commission-api/internal/dto"
	ledgermodel "partner-commission-api/internal/model/ledger"
	"partner-commission-api/internal/mq"
	"partner-commission-api/internal/notify"
	"partner-commission-api/internal/performance"
)

// 批次记录状态
const (
	batchRunning  int8 = 0
	batchFinished int8 = 1
)

// BatchService 批量佣金计算入口，HTTP 与 MQ 消费共用
type BatchService struct {
	ledger *dao.LedgerDao
	coord  *batch.Coordinator
}

func NewBatchService() *BatchService {
	ledger := dao.NewLedgerDao()
	coord := batch.NewCoordinator(
		NewCommissionService(),
		ledger,
		config.C.Batch.WorkerCount,
		time.Duration(config.C.Batch.TxTimeoutSec)*time.Second,
	)
	if dal.RedisClient != nil {
		coord.WithRecorder(&performance.RollingTracker{
			Redis:    dal.RedisClient,
			Strategy: &performance.EWMAStrategy{Alpha: 0.2},
			TTL:      90 * 24 * time.Hour,
		})
	}
	return &BatchService{ledger: ledger, coord: coord}
}

// ProcessBatch 解析、登记并并发处理一批交易。
// 解析失败的交易在调度前计入失败明细，不占用工作池。
func (s *BatchService) ProcessBatch(ctx context.Context, req dto.ProcessBatchReq) dto.BatchResult {
	batchID := req.BatchID
	if batchID == "" {
		batchID = uuid.NewString()
	}

	now := time.Now()
	txs := make([]dto.Transaction, 0, len(req.Transactions))
	var parseErrors []dto.BatchError
	for _, r := range req.Transactions {
		tx, err := r.Parse(now)
		if err != nil {
			code := constant.CodeFrom(err)
			msg := err.Error()
			if ce, ok := err.(constant.Error); ok {
				msg = ce.Message()
			}
			parseErrors = append(parseErrors, dto.BatchError{
				TransactionID: r.TransactionID,
				Code:          code,
				Kind:          string(constant.KindOf(code)),
				Message:       msg,
			})
			continue
		}
		tx.BatchID = batchID
		txs = append(txs, tx)
	}

	// 批次登记失败不阻塞计算，batch_id 冲突视为重复提交直接拒绝
	if err := s.ledger.InsertBatchJob(&ledgermodel.BatchJob{
		BatchID: batchID,
		Total:   len(req.Transactions),
		Status:  batchRunning,
	}); err != nil && req.BatchID != "" {
		return dto.BatchResult{
			BatchID: batchID,
			Total:   len(req.Transactions),
			Failed:  len(req.Transactions),
			Errors: []dto.BatchError{{
				Code:    constant.CodeDatabaseError,
				Kind:    string(constant.KindOf(constant.CodeDatabaseError)),
				Message: "batch already submitted",
			}},
		}
	}

	result := s.coord.ProcessBatch(ctx, batchID, txs)
	result.Total += len(parseErrors)
	result.Failed += len(parseErrors)
	result.Errors = append(parseErrors, result.Errors...)

	_ = s.ledger.FinishBatchJob(batchID, result.Succeeded, result.Failed, result.TotalCommission, batchFinished)
	_ = mq.PublishBatchCompleted(dto.BatchCompletedEvent{
		BatchID:         batchID,
		Total:           result.Total,
		Succeeded:       result.Succeeded,
		Failed:          result.Failed,
		TotalCommission: result.TotalCommission.String(),
		Ts:              time.Now().Unix(),
	})
	notify.NotifyBatchFailures(batchID, result.Failed, result.Total)

	return result
}
