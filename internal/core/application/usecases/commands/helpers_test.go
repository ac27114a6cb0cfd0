package commands_test

import (
	"log/slog"
	"testing"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testLines(t *testing.T) []order.Line {
	t.Helper()
	price, err := kernel.NewMoney(350000)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), 2, price)
	require.NoError(t, err)
	return []order.Line{line}
}

func pendingOrder(t *testing.T, sellerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-2001", kernel.NewUUID(), sellerID,
		testLines(t), "Sinza, Dar es Salaam", nil)
	require.NoError(t, err)
	return o
}

func awaitingRiderOrder(t *testing.T, sellerID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t, sellerID)
	require.NoError(t, o.Accept(sellerID))
	require.NoError(t, o.MarkReady(sellerID))
	return o
}

func outForDeliveryOrder(t *testing.T, sellerID, riderID kernel.UUID) *order.Order {
	t.Helper()
	o := awaitingRiderOrder(t, sellerID)
	require.NoError(t, o.AssignRider(riderID))
	require.NoError(t, o.ConfirmPickup(riderID))
	return o
}

func onlineRider(t *testing.T, id kernel.UUID) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(id, "Juma", "0754123456")
	require.NoError(t, err)
	r.GoOnline()
	return r
}
