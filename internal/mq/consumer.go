package mq

import (
	"context"
	"encoding/json"
	"log"

	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/dto"
	"partner-commission-api/internal/logger"
)

const batchMaxRetry = 3

// BatchHandler 批次处理回调，由 service 层注入，避免反向依赖
type BatchHandler func(ctx context.Context, req dto.ProcessBatchReq) dto.BatchResult

// StartBatchConsumer 消费 batch_requested 队列，异步执行批量佣金计算。
// 反序列化失败或重试超限的消息直接丢弃并告警日志。
func StartBatchConsumer(handle BatchHandler) {
	if dal.RabbitCh == nil {
		return
	}
	mqLog := logger.NewLogger("mq")

	msgs, err := dal.RabbitCh.Consume("batch_requested", "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume batch_requested failed: %v", err)
	}

	go func() {
		for d := range msgs {
			var msg dto.BatchRequestedMsg
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				mqLog.Errorf("batch_requested 消息解析失败: %v body=%s", err, d.Body)
				_ = d.Nack(false, false)
				continue
			}

			result := handle(context.Background(), dto.ProcessBatchReq{
				BatchID:      msg.BatchID,
				Transactions: msg.Transactions,
			})

			// 全部失败视为批次级故障，带重试计数重新入队
			if result.Succeeded == 0 && result.Total > 0 {
				if msg.RetryCount < batchMaxRetry {
					msg.RetryCount++
					mqLog.Warnf("批次 %s 全部失败，第 %d 次重投", result.BatchID, msg.RetryCount)
					_ = publish("batch.requested", msg)
				} else {
					mqLog.Errorf("批次 %s 重试超限，放弃: failed=%d", result.BatchID, result.Failed)
				}
			}

			_ = d.Ack(false)
		}
	}()
}
