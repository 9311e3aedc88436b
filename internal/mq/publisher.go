package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"partner-commission-api/internal/dal"
	"partner-commission-api/internal/dto"
)

func publish(routingKey string, v any) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	err := dal.RabbitCh.Publish(
		"commission_events",
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
	return err
}

// PublishCommissionCalculated 单笔分配完成，供支付执行方与审计消费
func PublishCommissionCalculated(evt dto.CommissionCalculatedEvent) error {
	return publish("commission.calculated", evt)
}

// PublishBatchCompleted 批次完成事件
func PublishBatchCompleted(evt dto.BatchCompletedEvent) error {
	return publish("batch.completed", evt)
}
