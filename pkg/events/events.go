// Package events publishes domain events to a message bus.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/iresident/pkg/slogx"
	"github.com/nats-io/nats.go"
)

// Subjects
const (
	InvitationIssued   = "resident.invitation.issued"
	InvitationRedeemed = "resident.invitation.redeemed"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data any) error
	Close() error
}

// InvitationEvent is the payload of both invitation subjects.
type InvitationEvent struct {
	Code      string    `json:"code"`
	UserID    *int64    `json:"usuario_id"`
	VisitorID *int64    `json:"visitante_id"`
	At        time.Time `json:"at"`
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string, name string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	slogx.FromContext(ctx).Debug("publishing event",
		slog.String("subject", subject),
		slog.Int("bytes", len(payload)),
	)

	return n.conn.Publish(subject, payload)
}

// Close flushes pending messages before closing the connection.
func (n *NATSPublisher) Close() error {
	return n.conn.Drain()
}

// Nop discards every event. Used when no bus is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
