package dal

import (
	"log"

	"partner-commission-api/internal/config"

	"github.com/streadway/amqp"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare("commission_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("commission_calculated", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare commission_calculated failed: %v", err)
	}
	if _, err := ch.QueueDeclare("batch_completed", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare batch_completed failed: %v", err)
	}
	if _, err := ch.QueueDeclare("batch_requested", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare batch_requested failed: %v", err)
	}
	if err := ch.QueueBind("commission_calculated", "commission.calculated", "commission_events", false, nil); err != nil {
		log.Fatalf("queue bind commission_calculated failed: %v", err)
	}
	if err := ch.QueueBind("batch_completed", "batch.completed", "commission_events", false, nil); err != nil {
		log.Fatalf("queue bind batch_completed failed: %v", err)
	}
	if err := ch.QueueBind("batch_requested", "batch.requested", "commission_events", false, nil); err != nil {
		log.Fatalf("queue bind batch_requested failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
