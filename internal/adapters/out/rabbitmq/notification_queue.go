package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/notification"
)

const notificationQueueName = "order_notifications"

// NotificationQueue moves notification jobs between command handlers and the
// SMS worker through a durable broker queue. Implements both the enqueuer
// and consumer ports.
type NotificationQueue struct {
	client *Client
	logger *slog.Logger
}

// NewNotificationQueue declares the queue and returns the adapter.
func NewNotificationQueue(client *Client, logger *slog.Logger) (*NotificationQueue, error) {
	ch, err := client.channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(notificationQueueName, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &NotificationQueue{client: client, logger: logger}, nil
}

// Enqueue publishes one notification job as a persistent JSON message.
func (q *NotificationQueue) Enqueue(ctx context.Context, message notification.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return q.client.publish(ctx, "", notificationQueueName, body, true)
}

// Consume feeds queued jobs to handle until ctx is cancelled.
// Every delivery is acknowledged after handle returns: notifications are
// best-effort, so a failed send is logged by the worker rather than
// redelivered forever. Undecodable payloads are logged and dropped.
func (q *NotificationQueue) Consume(ctx context.Context, handle func(ctx context.Context, message notification.Message)) error {
	ch, err := q.client.channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err = ch.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := ch.Consume(notificationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}

			var message notification.Message
			if err := json.Unmarshal(delivery.Body, &message); err != nil {
				q.logger.WarnContext(ctx, "dropping undecodable notification job", "error", err)
				_ = delivery.Ack(false)
				continue
			}

			handle(ctx, message)
			_ = delivery.Ack(false)
		}
	}
}
