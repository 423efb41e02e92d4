// Package rabbitmq publishes invariant alerts to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	amqp "github.com/streadway/amqp"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AlertMessage is the JSON body of a published alert.
type AlertMessage struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Source     string    `json:"source"`
	Collection string    `json:"collection"`
	Key        string    `json:"key"`
	Message    string    `json:"message"`
	DetectedAt time.Time `json:"detected_at"`
}

// AlertPublisher sends every alert to a durable topic exchange with routing
// key "alerts.<kind>". Messages are persistent.
type AlertPublisher struct {
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger

	mu sync.Mutex
	ch channel
}

// NewAlertPublisher connects to url and declares exchange.
func NewAlertPublisher(url, exchange string, logger *slog.Logger) (*AlertPublisher, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	p := newAlertPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

func newAlertPublisher(ch channel, exchange string, logger *slog.Logger) *AlertPublisher {
	return &AlertPublisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "alert_publisher"),
	}
}

// RoutingKey returns the routing key alerts of kind are published with.
func RoutingKey(kind ports.AlertKind) string {
	return "alerts." + string(kind)
}

func (p *AlertPublisher) Publish(ctx context.Context, alert ports.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(AlertMessage{
		ID:         alert.ID.String(),
		Kind:       string(alert.Kind),
		Source:     alert.Source,
		Collection: alert.Collection,
		Key:        alert.Key,
		Message:    alert.Message(),
		DetectedAt: alert.DetectedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return errors.New("RabbitMQ channel is closed")
	}

	err = p.ch.Publish(
		p.exchange,
		RoutingKey(alert.Kind),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    alert.ID.String(),
			DeliveryMode: amqp.Persistent,
			Timestamp:    alert.DetectedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish alert %s: %w", alert.ID, err)
	}

	p.logger.DebugContext(ctx, "Alert published", "alert_id", alert.ID, "kind", alert.Kind)
	return nil
}

// Close closes the channel and the connection. Publish fails afterwards.
func (p *AlertPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var closeErrs []error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("failed to close channel: %w", err))
		}
		p.ch = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("failed to close connection: %w", err))
		}
		p.conn = nil
	}
	return errors.Join(closeErrs...)
}
