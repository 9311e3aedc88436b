package batch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/constant"
	"partner-commission-api/internal/dto"
	ledgermodel "partner-commission-api/internal/model/ledger"
)

// fakeProcessor 按金额符号决定成败：负数金额返回校验错误
type fakeProcessor struct {
	delay time.Duration
}

func (p *fakeProcessor) Process(ctx context.Context, tx dto.Transaction) (*Outcome, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if tx.Amount.Sign() <= 0 {
		return nil, constant.NewErrorf(constant.CodeTxAmountInvalid, "amount=%s", tx.Amount)
	}

	commission := tx.Amount.Mul(decimal.RequireFromString("0.1")).Round(2)
	return &Outcome{
		TransactionID: tx.TransactionID,
		Distribution: &ledgermodel.CommissionDistribution{
			TransactionID:    tx.TransactionID,
			PartnerID:        tx.PartnerID,
			TotalAmount:      tx.Amount,
			TotalDistributed: commission,
		},
		Calculations: []*ledgermodel.CommissionCalculation{{
			TransactionID:   tx.TransactionID,
			PartnerID:       tx.PartnerID,
			TotalCommission: commission,
		}},
	}, nil
}

// fakeSink 记录每伙伴累计收益
type fakeSink struct {
	mu     sync.Mutex
	totals map[uint64]decimal.Decimal
	calls  int
}

func newFakeSink() *fakeSink {
	return &fakeSink{totals: make(map[uint64]decimal.Decimal)}
}

func (s *fakeSink) AddEarnings(_ context.Context, partnerID uint64, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals[partnerID] = s.totals[partnerID].Add(amount)
	s.calls++
	return nil
}

func tx(id, partnerID uint64, amount string) dto.Transaction {
	return dto.Transaction{
		TransactionID:      id,
		Amount:             decimal.RequireFromString(amount),
		Currency:           "USD",
		PartnerID:          partnerID,
		CommissionEligible: true,
	}
}

func TestProcessBatch_PartialFailure(t *testing.T) {
	sink := newFakeSink()
	c := NewCoordinator(&fakeProcessor{}, sink, 4, time.Second)

	txs := []dto.Transaction{
		tx(1, 10, "100"),
		tx(2, 11, "200"),
		tx(3, 12, "-50"), // 校验失败
		tx(4, 13, "300"),
		tx(5, 14, "400"),
	}

	result := c.ProcessBatch(context.Background(), "batch-1", txs)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 4, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, uint64(3), result.Errors[0].TransactionID)
	assert.Equal(t, constant.CodeTxAmountInvalid, result.Errors[0].Code)
	assert.Equal(t, "ValidationError", result.Errors[0].Kind)

	// 10+20+30+40
	assert.Equal(t, "100", result.TotalCommission.String())
}

func TestProcessBatch_PerPartnerRollup(t *testing.T) {
	sink := newFakeSink()
	c := NewCoordinator(&fakeProcessor{}, sink, 8, time.Second)

	// 同一伙伴多笔交易并发累加
	var txs []dto.Transaction
	for i := uint64(1); i <= 20; i++ {
		txs = append(txs, tx(i, 42, "100"))
	}

	result := c.ProcessBatch(context.Background(), "batch-2", txs)
	require.Equal(t, 20, result.Succeeded)

	assert.Equal(t, 20, sink.calls)
	assert.Equal(t, "200", sink.totals[42].String())
}

func TestProcessBatch_Empty(t *testing.T) {
	c := NewCoordinator(&fakeProcessor{}, newFakeSink(), 4, time.Second)
	result := c.ProcessBatch(context.Background(), "batch-3", nil)
	assert.Equal(t, 0, result.Total)
	assert.True(t, result.TotalCommission.IsZero())
}

func TestProcessBatch_Cancelled(t *testing.T) {
	sink := newFakeSink()
	// 单工作者 + 慢处理，取消后未调度的交易记为失败
	c := NewCoordinator(&fakeProcessor{delay: 50 * time.Millisecond}, sink, 1, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	var txs []dto.Transaction
	for i := uint64(1); i <= 10; i++ {
		txs = append(txs, tx(i, 42, "100"))
	}

	result := c.ProcessBatch(ctx, "batch-4", txs)

	assert.Equal(t, 10, result.Succeeded+result.Failed)
	assert.Greater(t, result.Failed, 0)
	for _, e := range result.Errors {
		assert.Equal(t, constant.CodeCancelled, e.Code)
	}
}

func TestProcessBatch_Timeout(t *testing.T) {
	sink := newFakeSink()
	// 单笔时限 10ms，处理耗时 50ms，全部超时
	c := NewCoordinator(&fakeProcessor{delay: 50 * time.Millisecond}, sink, 2, 10*time.Millisecond)

	result := c.ProcessBatch(context.Background(), "batch-5", []dto.Transaction{
		tx(1, 42, "100"),
		tx(2, 43, "200"),
	})

	assert.Equal(t, 2, result.Failed)
	for _, e := range result.Errors {
		assert.Equal(t, constant.CodeTimeout, e.Code)
	}
}
