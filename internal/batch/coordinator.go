package batch

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	ledgermodel "partner-commission-api/internal/model/ledger"
)

// Outcome 单笔交易管道的完整产出
type Outcome struct {
	TransactionID uint64
	Distribution  *ledgermodel.CommissionDistribution
	Calculations  []*ledgermodel.CommissionCalculation
	PerfScore     float64 // 成交伙伴本期绩效得分，供滚动跟踪
}

// Processor 单笔交易管道：规则解析 → 绩效评分 → 直接/间接/奖金 → 守恒校验 → 落账。
// 除落账外均为纯计算，可无锁并发。
type Processor interface {
	Process(ctx context.Context, tx dto.Transaction) (*Outcome, error)
}

// EarningsSink 每伙伴收益滚动汇总，批处理中唯一的共享可变状态
type EarningsSink interface {
	AddEarnings(ctx context.Context, partnerID uint64, amount decimal.Decimal) error
}

// RollingRecorder 滚动绩效记录，可选
type RollingRecorder interface {
	Record(ctx context.Context, partnerID uint64, sample float64) error
}

// Coordinator 有界工作池批处理协调器。
// 单笔失败只记入明细不影响整批；批级取消仅停止调度，不打断在途管道。
type Coordinator struct {
	processor Processor
	sink      EarningsSink
	recorder  RollingRecorder
	workers   int
	txTimeout time.Duration

	locks sync.Map // map[uint64]*sync.Mutex，每伙伴收益更新串行化
}

func NewCoordinator(p Processor, sink EarningsSink, workers int, txTimeout time.Duration) *Coordinator {
	if workers <= 0 {
		workers = 1
	}
	return &Coordinator{
		processor: p,
		sink:      sink,
		workers:   workers,
		txTimeout: txTimeout,
	}
}

// WithRecorder 挂接滚动绩效记录器
func (c *Coordinator) WithRecorder(r RollingRecorder) *Coordinator {
	c.recorder = r
	return c
}

// ProcessBatch 并发处理一批交易，返回结构化汇总。
// ctx 取消后未调度的交易记为 FAILED(CodeCancelled)，在途管道照常完成。
func (c *Coordinator) ProcessBatch(ctx context.Context, batchID string, txs []dto.Transaction) dto.BatchResult {
	result := dto.BatchResult{
		BatchID:         batchID,
		Total:           len(txs),
		TotalCommission: decimal.Zero,
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan dto.Transaction)

	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tx := range jobs {
				c.runOne(tx, &mu, &result)
			}
		}()
	}

	for _, tx := range txs {
		select {
		case jobs <- tx:
		case <-ctx.Done():
			mu.Lock()
			result.Failed++
			result.Errors = append(result.Errors, batchError(tx.TransactionID, constant.NewError(constant.CodeCancelled)))
			mu.Unlock()
		}
	}
	close(jobs)
	wg.Wait()

	return result
}

// runOne 执行单笔管道。管道是全有或全无的：一旦开始调度就不被批级取消打断，
// 只受单笔时限约束，超时记为 FAILED(CodeTimeout)。
func (c *Coordinator) runOne(tx dto.Transaction, mu *sync.Mutex, result *dto.BatchResult) {
	txCtx, cancel := context.WithTimeout(context.Background(), c.txTimeout)
	defer cancel()

	out, err := c.processor.Process(txCtx, tx)
	if err != nil {
		if txCtx.Err() != nil {
			err = constant.NewErrorf(constant.CodeTimeout, "tx=%d", tx.TransactionID)
		}
		mu.Lock()
		result.Failed++
		result.Errors = append(result.Errors, batchError(tx.TransactionID, err))
		mu.Unlock()
		return
	}

	c.rollup(txCtx, out)

	mu.Lock()
	result.Succeeded++
	result.TotalCommission = result.TotalCommission.Add(out.Distribution.TotalDistributed)
	mu.Unlock()
}

// rollup 按受益伙伴聚合后逐个累加，同一伙伴的更新串行执行
func (c *Coordinator) rollup(ctx context.Context, out *Outcome) {
	perPartner := make(map[uint64]decimal.Decimal, len(out.Calculations))
	for _, calc := range out.Calculations {
		perPartner[calc.PartnerID] = perPartner[calc.PartnerID].Add(calc.TotalCommission)
	}

	for partnerID, amount := range perPartner {
		l := c.lockFor(partnerID)
		l.Lock()
		// 累加失败不回滚已落账的流水，留待对账任务修复
		_ = c.sink.AddEarnings(ctx, partnerID, amount)
		l.Unlock()
	}

	if c.recorder != nil && out.Distribution != nil {
		_ = c.recorder.Record(ctx, out.Distribution.PartnerID, out.PerfScore)
	}
}

func (c *Coordinator) lockFor(partnerID uint64) *sync.Mutex {
	v, _ := c.locks.LoadOrStore(partnerID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func batchError(txID uint64, err error) dto.BatchError {
	code := constant.CodeFrom(err)
	msg := err.Error()
	if ce, ok := err.(constant.Error); ok {
		msg = ce.Message()
	}
	return dto.BatchError{
		TransactionID: txID,
		Code:          code,
		Kind:          string(constant.KindOf(code)),
		Message:       msg,
	}
}
