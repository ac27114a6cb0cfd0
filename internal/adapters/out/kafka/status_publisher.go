// Package kafka publishes order lifecycle events for downstream consumers
// such as analytics and the seller dashboard feed.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
)

// statusChangedEvent is the wire form of one committed status transition.
type statusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	BuyerID     string    `json:"buyer_id"`
	SellerID    string    `json:"seller_id"`
	RiderID     *string   `json:"rider_id,omitempty"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	Amount      int64     `json:"amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// StatusPublisher emits order status change events to a Kafka topic.
// Events are keyed by order id so every transition of one order lands on the
// same partition in commit order.
type StatusPublisher struct {
	client *kgo.Client
	topic  string
}

// NewStatusPublisher creates a Kafka client and returns the publisher.
func NewStatusPublisher(brokers []string, topic string) (*StatusPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	return &StatusPublisher{client: client, topic: topic}, nil
}

// PublishStatusChanged produces one event for the order's current status.
// Blocks until the broker acknowledges the write; callers treat a failure as
// a logged side effect, never as a reason to fail the transition.
func (p *StatusPublisher) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	event := statusChangedEvent{
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.OrderNumber(),
		BuyerID:     aggregate.BuyerID().String(),
		SellerID:    aggregate.SellerID().String(),
		Status:      aggregate.Status().String(),
		Progress:    aggregate.Progress(),
		Amount:      aggregate.TotalAmount().Int64(),
		OccurredAt:  aggregate.UpdatedAt(),
	}
	if riderID := aggregate.Rider(); riderID != nil {
		id := riderID.String()
		event.RiderID = &id
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte("order_status_changed")},
		},
	}

	return p.client.ProduceSync(ctx, record).FirstErr()
}

// Close flushes pending records and releases the client.
func (p *StatusPublisher) Close() {
	p.client.Close()
}
