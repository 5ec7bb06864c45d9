// Package alert publishes high-severity search results to a message bus so
// downstream consumers (dashboards, pagers) can react without polling the
// search API. Alerting is an optional side-channel: the search response is
// never affected by publish failures.
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"reputation-desk/internal/scandal"
)

type ScandalDetectedMessage struct {
	Event         string        `json:"event"`
	Timestamp     time.Time     `json:"timestamp"`
	Query         string        `json:"query"`
	Scandal       scandal.Event `json:"scandal"`
	AdjustedScore float64       `json:"adjustedScore"`
}

type PublishingChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
	Close() error
}

type RabbitPublisher struct {
	conn       *amqp.Connection
	ch         PublishingChannel
	exchange   string
	routingKey string
	logger     *log.Logger
}

func NewRabbitPublisher(uri, exchange, routingKey string, logger *log.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connection failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel creation failed: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("exchange declare failed: %w", err)
	}

	return &RabbitPublisher{
		conn:       conn,
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

func (p *RabbitPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func (p *RabbitPublisher) PublishScandalDetected(ctx context.Context, query string, res scandal.ScoredResult) error {
	body, err := json.Marshal(ScandalDetectedMessage{
		Event:         "scandal.detected",
		Timestamp:     time.Now().UTC(),
		Query:         query,
		Scandal:       res.Event,
		AdjustedScore: res.AdjustedScore,
	})
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		p.exchange,
		p.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		},
	)
}
