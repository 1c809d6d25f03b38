package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/iresident/pkg/slogx"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends events to a durable topic exchange. The subject is
// used as the routing key so consumers can bind on "resident.invitation.*".
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	appID    string
}

func NewAMQPPublisher(url, exchange, name string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}

	return &AMQPPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		appID:    name,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	slogx.FromContext(ctx).Debug("publishing event",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", subject),
		slog.Int("bytes", len(payload)),
	)

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx, p.exchange, subject, false, false, amqp.Publishing{
		ContentType:  "application/json",
		AppId:        p.appID,
		Body:         payload,
		Timestamp:    time.Now(),
		DeliveryMode: amqp.Persistent,
	})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.channel.Close()
	return p.conn.Close()
}
