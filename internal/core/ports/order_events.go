package ports

import (
	"context"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed status changes to downstream
// consumers (dashboards, analytics). Publishing happens after the
// transaction commits and is best-effort: failures are logged by the caller
// and never affect the order.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
