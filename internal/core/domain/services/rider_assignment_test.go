package services_test

import (
	"testing"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAwaitingRider(t *testing.T) *order.Order {
	t.Helper()
	sellerID := kernel.NewUUID()
	price, err := kernel.NewMoney(1000000)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), 2, price)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1002", kernel.NewUUID(), sellerID,
		[]order.Line{line}, "Kariakoo", nil)
	require.NoError(t, err)
	require.NoError(t, o.Accept(sellerID))
	require.NoError(t, o.MarkReady(sellerID))
	return o
}

func availableRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "Juma", "0754123456")
	require.NoError(t, err)
	r.GoOnline()
	return r
}

func TestRiderAssignmentService_Assign(t *testing.T) {
	svc := services.NewRiderAssignmentService()

	t.Run("should assign an available rider", func(t *testing.T) {
		o := orderAwaitingRider(t)
		r := availableRider(t)

		require.NoError(t, svc.Assign(o, r))

		assert.Equal(t, order.RiderAssigned, o.Status())
		require.NotNil(t, o.Rider())
		assert.True(t, o.Rider().IsEqual(r.ID()))
		assert.False(t, r.IsAvailable())
	})

	t.Run("should reject an unavailable rider without mutating the order", func(t *testing.T) {
		o := orderAwaitingRider(t)
		r, err := rider.NewRider(kernel.NewUUID(), "Asha", "0754987654")
		require.NoError(t, err)

		err = svc.Assign(o, r)

		require.ErrorIs(t, err, services.ErrRiderNotAvailable)
		assert.Equal(t, order.AwaitingRider, o.Status())
		assert.Nil(t, o.Rider())
	})

	t.Run("should reject assignment on an order not awaiting a rider", func(t *testing.T) {
		sellerID := kernel.NewUUID()
		price, err := kernel.NewMoney(500)
		require.NoError(t, err)
		line, err := order.NewLine(kernel.NewUUID(), 1, price)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1003", kernel.NewUUID(), sellerID,
			[]order.Line{line}, "Mwanza", nil)
		require.NoError(t, err)

		err = svc.Assign(o, availableRider(t))

		require.Error(t, err)
		assert.Equal(t, order.PendingPharmacyConfirmation, o.Status())
		assert.Nil(t, o.Rider())
	})

	t.Run("should keep the existing rider when reassignment is attempted", func(t *testing.T) {
		o := orderAwaitingRider(t)
		first := availableRider(t)
		require.NoError(t, svc.Assign(o, first))

		err := svc.Assign(o, availableRider(t))

		require.Error(t, err)
		assert.True(t, o.Rider().IsEqual(first.ID()))
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		var o order.Order
		require.Error(t, svc.Assign(&o, availableRider(t)))

		var r rider.Rider
		require.Error(t, svc.Assign(orderAwaitingRider(t), &r))
	})
}
