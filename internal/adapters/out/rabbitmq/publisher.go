// Package rabbitmq publishes order transitions to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind   = "topic"
	routingPrefix  = "progress."
	publishTimeout = 5 * time.Second
)

// TransitionMessage is the JSON body of a published transition.
type TransitionMessage struct {
	Type             string    `json:"type"`
	OrderID          string    `json:"order_id"`
	OrderNo          string    `json:"order_no"`
	ProcessID        string    `json:"process_id"`
	Status           string    `json:"status"`
	CurrentProcessID *string   `json:"current_process_id"`
	WorkerID         *string   `json:"worker_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// TransitionPublisher sends every transition as a persistent message with
// routing key progress.process.started or progress.process.completed.
type TransitionPublisher struct {
	channel  channel
	exchange string
}

// NewTransitionPublisher opens a channel on conn and declares the durable
// topic exchange.
func NewTransitionPublisher(conn *amqp.Connection, exchange string) (*TransitionPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange,
		exchangeKind,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	return newTransitionPublisher(ch, exchange), nil
}

func newTransitionPublisher(ch channel, exchange string) *TransitionPublisher {
	return &TransitionPublisher{channel: ch, exchange: exchange}
}

func (p *TransitionPublisher) Publish(ctx context.Context, t order.Transition) error {
	body, err := json.Marshal(NewTransitionMessage(t))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		p.exchange,
		RoutingKey(t.Kind),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    t.OccurredAt,
			Type:         string(t.Kind),
			Body:         body,
		})
}

func (p *TransitionPublisher) Close() error {
	return p.channel.Close()
}

func RoutingKey(kind order.TransitionKind) string {
	return routingPrefix + string(kind)
}

func NewTransitionMessage(t order.Transition) TransitionMessage {
	return TransitionMessage{
		Type:             string(t.Kind),
		OrderID:          t.OrderID.String(),
		OrderNo:          t.OrderNo,
		ProcessID:        t.ProcessID.String(),
		Status:           t.Status.String(),
		CurrentProcessID: optionalID(t.CurrentProcess),
		WorkerID:         optionalID(t.WorkerID),
		OccurredAt:       t.OccurredAt.UTC(),
	}
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
