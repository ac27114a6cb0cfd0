package notifications

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/out/sms"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/notification"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// Sender delivers one rendered text to an E.164 phone number.
type Sender interface {
	Send(ctx context.Context, to, message string) error
}

// Worker drains the notification queue: render, normalize the phone, send.
// Strictly best-effort; a job that cannot be delivered is logged and
// dropped, never retried and never surfaced to the flow that enqueued it.
type Worker struct {
	consumer ports.NotificationConsumer
	sender   Sender
	logger   *slog.Logger
}

// NewWorker creates a notification worker.
func NewWorker(consumer ports.NotificationConsumer, sender Sender, logger *slog.Logger) *Worker {
	return &Worker{
		consumer: consumer,
		sender:   sender,
		logger:   logger,
	}
}

// Run consumes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	return w.consumer.Consume(ctx, w.handle)
}

func (w *Worker) handle(ctx context.Context, message notification.Message) {
	text, err := Render(message)
	if err != nil {
		w.logger.WarnContext(ctx, "dropping unrenderable notification",
			"event", string(message.Event),
			"order_id", message.OrderID,
			"error", err)
		return
	}

	to, err := sms.NormalizePhone(message.To)
	if err != nil {
		w.logger.WarnContext(ctx, "dropping notification with malformed phone",
			"event", string(message.Event),
			"order_id", message.OrderID,
			"error", err)
		return
	}

	if err := w.sender.Send(ctx, to, text); err != nil {
		w.logger.WarnContext(ctx, "sms delivery failed",
			"event", string(message.Event),
			"order_id", message.OrderID,
			"error", err)
		return
	}

	w.logger.InfoContext(ctx, "notification sent",
		"event", string(message.Event),
		"role", string(message.Role),
		"order_id", message.OrderID)
}
