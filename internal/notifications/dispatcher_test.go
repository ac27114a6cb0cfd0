package notifications_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/notification"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnqueuer struct{ mock.Mock }

func (m *MockEnqueuer) Enqueue(ctx context.Context, message notification.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockContactDirectory struct{ mock.Mock }

func (m *MockContactDirectory) Get(ctx context.Context, userID kernel.UUID) (ports.Contact, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.Contact), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func acceptedOrder(t *testing.T) *order.Order {
	t.Helper()
	sellerID := kernel.NewUUID()
	price, err := kernel.NewMoney(800000)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-3001", kernel.NewUUID(), sellerID,
		[]order.Line{line}, "Masaki, Dar es Salaam", nil)
	require.NoError(t, err)
	require.NoError(t, o.Accept(sellerID))
	return o
}

func TestDispatcher_OrderAccepted(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)

	contacts := new(MockContactDirectory)
	contacts.On("Get", mock.Anything, o.BuyerID()).
		Return(ports.Contact{Name: "Amina", Phone: "0754123456"}, nil).Once()

	enqueuer := new(MockEnqueuer)
	enqueuer.On("Enqueue", mock.Anything, mock.MatchedBy(func(m notification.Message) bool {
		return m.Event == notification.EventOrderAccepted &&
			m.Role == notification.RoleBuyer &&
			m.To == "0754123456" &&
			m.OrderNumber == "ORD-3001" &&
			m.Amount == 800000
	})).Return(nil).Once()

	d := notifications.NewDispatcher(enqueuer, contacts, testLogger())
	d.OrderAccepted(ctx, o)

	enqueuer.AssertExpectations(t)
	contacts.AssertExpectations(t)
}

func TestDispatcher_OrderAccepted_MissingContactIsSwallowed(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)

	contacts := new(MockContactDirectory)
	contacts.On("Get", mock.Anything, o.BuyerID()).
		Return(ports.Contact{}, errors.New("contact not found")).Once()

	enqueuer := new(MockEnqueuer)
	d := notifications.NewDispatcher(enqueuer, contacts, testLogger())

	d.OrderAccepted(ctx, o)

	enqueuer.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestDispatcher_OrderRejected_CarriesReason(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	price, err := kernel.NewMoney(120000)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), 2, price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-3002", kernel.NewUUID(), sellerID,
		[]order.Line{line}, "Tegeta", nil)
	require.NoError(t, err)
	require.NoError(t, o.Reject(sellerID, "prescription required"))

	contacts := new(MockContactDirectory)
	contacts.On("Get", mock.Anything, o.BuyerID()).
		Return(ports.Contact{Name: "Baraka", Phone: "0713222333"}, nil).Once()

	enqueuer := new(MockEnqueuer)
	enqueuer.On("Enqueue", mock.Anything, mock.MatchedBy(func(m notification.Message) bool {
		return m.Event == notification.EventOrderRejected && m.Reason == "prescription required"
	})).Return(nil).Once()

	d := notifications.NewDispatcher(enqueuer, contacts, testLogger())
	d.OrderRejected(ctx, o)

	enqueuer.AssertExpectations(t)
}

func TestDispatcher_RiderAssigned_NotifiesBuyerAndRider(t *testing.T) {
	ctx := t.Context()
	sellerID, riderID := kernel.NewUUID(), kernel.NewUUID()
	price, err := kernel.NewMoney(90000)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-3003", kernel.NewUUID(), sellerID,
		[]order.Line{line}, "Mbezi Beach", nil)
	require.NoError(t, err)
	require.NoError(t, o.Accept(sellerID))
	require.NoError(t, o.MarkReady(sellerID))
	require.NoError(t, o.AssignRider(riderID))

	assigned, err := rider.NewRider(riderID, "Juma", "0754123456")
	require.NoError(t, err)

	contacts := new(MockContactDirectory)
	contacts.On("Get", mock.Anything, o.BuyerID()).
		Return(ports.Contact{Name: "Amina", Phone: "0754999888"}, nil).Once()
	contacts.On("Get", mock.Anything, o.SellerID()).
		Return(ports.Contact{Name: "Upendo Pharmacy", Phone: "0754111222", Address: "Kariakoo Market St"}, nil).Once()

	enqueuer := new(MockEnqueuer)
	enqueuer.On("Enqueue", mock.Anything, mock.MatchedBy(func(m notification.Message) bool {
		return m.Event == notification.EventRiderAssigned && m.Role == notification.RoleBuyer
	})).Return(nil).Once()
	enqueuer.On("Enqueue", mock.Anything, mock.MatchedBy(func(m notification.Message) bool {
		return m.Event == notification.EventRiderAssigned &&
			m.Role == notification.RoleRider &&
			m.To == "0754123456" &&
			m.PickupAddress == "Kariakoo Market St" &&
			m.DeliveryAddress == "Mbezi Beach"
	})).Return(nil).Once()

	d := notifications.NewDispatcher(enqueuer, contacts, testLogger())
	d.RiderAssigned(ctx, o, assigned)

	enqueuer.AssertExpectations(t)
}

func TestDispatcher_OrderDelivered_NotifiesBuyerAndSeller(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)

	contacts := new(MockContactDirectory)
	contacts.On("Get", mock.Anything, o.BuyerID()).
		Return(ports.Contact{Name: "Amina", Phone: "0754999888"}, nil).Once()
	contacts.On("Get", mock.Anything, o.SellerID()).
		Return(ports.Contact{Name: "Upendo Pharmacy", Phone: "0754111222"}, nil).Once()

	enqueuer := new(MockEnqueuer)
	roles := make(map[notification.RecipientRole]bool)
	enqueuer.On("Enqueue", mock.Anything, mock.AnythingOfType("notification.Message")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(notification.Message)
			roles[m.Role] = true
		}).Return(nil).Twice()

	d := notifications.NewDispatcher(enqueuer, contacts, testLogger())
	d.OrderDelivered(ctx, o)

	assert.True(t, roles[notification.RoleBuyer])
	assert.True(t, roles[notification.RoleSeller])
	enqueuer.AssertExpectations(t)
}
