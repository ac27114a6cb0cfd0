package ports

import (
	"context"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
)

// LocationBroadcast is the pure relay between a rider's device and any
// number of tracking views, keyed by order id.
//
// The relay offers no persistence, no ordering guarantee beyond last-message-
// wins for display, and no replay on reconnect beyond what the underlying
// transport provides. Coordinates are relayed as reported, unvalidated
// beyond basic range checks and unsmoothed.
type LocationBroadcast interface {
	// Publish relays one location sample to all current subscribers of the
	// order's channel.
	Publish(ctx context.Context, orderID kernel.UUID, sample rider.LocationSample) error

	// Subscribe returns a channel of samples for the order. The subscription
	// ends when ctx is cancelled (view unmount, rider stop-sharing), after
	// which the channel is closed.
	Subscribe(ctx context.Context, orderID kernel.UUID) (<-chan rider.LocationSample, error)
}
