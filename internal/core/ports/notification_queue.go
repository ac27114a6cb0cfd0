package ports

import (
	"context"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/notification"
)

// NotificationEnqueuer hands notification jobs to the delivery worker.
//
// Enqueueing is fire-and-forget relative to the state transition that
// produced the message: callers log enqueue failures and move on; they never
// roll back or fail the transition because of one.
type NotificationEnqueuer interface {
	Enqueue(ctx context.Context, message notification.Message) error
}

// NotificationConsumer feeds queued notification jobs to a worker. Consume
// blocks until ctx is cancelled, invoking handle for each message. Handler
// errors are the worker's own concern; the consumer never redelivers.
type NotificationConsumer interface {
	Consume(ctx context.Context, handle func(ctx context.Context, message notification.Message)) error
}
