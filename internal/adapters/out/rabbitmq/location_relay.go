package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
)

const (
	locationExchange  = "rider.locations"
	locationEventName = "location_update"
)

// locationPayload is the wire form of one relayed GPS sample.
type locationPayload struct {
	Event     string    `json:"event"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationRelay implements the order-keyed location pub/sub on a topic
// exchange. Each order id is a routing key; subscribers get an exclusive
// auto-deleted queue bound to it, so samples fan out to every open tracking
// view and vanish when nobody is watching. Nothing is stored.
type LocationRelay struct {
	client *Client
	logger *slog.Logger
}

// NewLocationRelay declares the exchange and returns the adapter.
func NewLocationRelay(client *Client, logger *slog.Logger) (*LocationRelay, error) {
	ch, err := client.channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(locationExchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &LocationRelay{client: client, logger: logger}, nil
}

// Publish relays one sample to the order's routing key.
// Samples are transient: a sample nobody consumes is gone, which is the
// point of a live map.
func (r *LocationRelay) Publish(ctx context.Context, orderID kernel.UUID, sample rider.LocationSample) error {
	body, err := json.Marshal(locationPayload{
		Event:     locationEventName,
		Latitude:  sample.Point.Latitude(),
		Longitude: sample.Point.Longitude(),
		Timestamp: sample.ReportedAt,
	})
	if err != nil {
		return err
	}

	return r.client.publish(ctx, locationExchange, routingKey(orderID), body, false)
}

// Subscribe binds a fresh exclusive queue to the order's routing key and
// streams decoded samples until ctx is cancelled. The returned channel is
// closed when the subscription ends.
func (r *LocationRelay) Subscribe(ctx context.Context, orderID kernel.UUID) (<-chan rider.LocationSample, error) {
	ch, err := r.client.channel()
	if err != nil {
		return nil, err
	}

	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	if err = ch.QueueBind(queue.Name, routingKey(orderID), locationExchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}

	deliveries, err := ch.Consume(queue.Name, "", true, true, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	samples := make(chan rider.LocationSample)
	go func() {
		defer close(samples)
		defer ch.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}

				var payload locationPayload
				if err := json.Unmarshal(delivery.Body, &payload); err != nil {
					r.logger.WarnContext(ctx, "dropping undecodable location sample",
						"order_id", orderID.String(), "error", err)
					continue
				}

				point, err := kernel.NewGeoPoint(payload.Latitude, payload.Longitude)
				if err != nil {
					r.logger.WarnContext(ctx, "dropping out-of-range location sample",
						"order_id", orderID.String(), "error", err)
					continue
				}

				sample := rider.LocationSample{Point: point, ReportedAt: payload.Timestamp}
				select {
				case samples <- sample:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return samples, nil
}

func routingKey(orderID kernel.UUID) string {
	return "order." + orderID.String()
}
