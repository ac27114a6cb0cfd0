package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	httpadapter "github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/in/http"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/out/kafka"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/out/postgres"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/out/postgres/contactrepo"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/out/rabbitmq"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/out/sms"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/queries"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/jobs"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	rabbitClient      *rabbitmq.Client
	notificationQueue *rabbitmq.NotificationQueue
	locationRelay     *rabbitmq.LocationRelay
	statusPublisher   *kafka.StatusPublisher
	smsGateway        *sms.Gateway

	notifier commands.Notifier

	riderStaleAfter    time.Duration
	riderSweepSchedule string

	logger *slog.Logger
}

// NewCompositionRoot connects the outbound adapters and prepares the wiring
// for handlers, jobs and the notification worker.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	rabbitPort, err := strconv.Atoi(cfg.RabbitMQPort)
	if err != nil {
		return nil, fmt.Errorf("invalid RABBITMQ_PORT %q: %w", cfg.RabbitMQPort, err)
	}

	rabbitClient, err := rabbitmq.Dial(rabbitmq.Config{
		Host:     cfg.RabbitMQHost,
		Port:     rabbitPort,
		User:     cfg.RabbitMQUser,
		Password: cfg.RabbitMQPassword,
		VHost:    cfg.RabbitMQVHost,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	notificationQueue, err := rabbitmq.NewNotificationQueue(rabbitClient, logger)
	if err != nil {
		rabbitClient.Close()
		return nil, fmt.Errorf("declare notification queue: %w", err)
	}

	locationRelay, err := rabbitmq.NewLocationRelay(rabbitClient, logger)
	if err != nil {
		rabbitClient.Close()
		return nil, fmt.Errorf("declare location relay: %w", err)
	}

	statusPublisher, err := kafka.NewStatusPublisher(
		strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaOrderChangedTopic)
	if err != nil {
		rabbitClient.Close()
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	smsGateway, err := sms.NewGateway(sms.Config{
		URL:      cfg.SmsGatewayURL,
		APIKey:   cfg.SmsGatewayAPIKey,
		SenderID: cfg.SmsSenderID,
	})
	if err != nil {
		statusPublisher.Close()
		rabbitClient.Close()
		return nil, fmt.Errorf("create sms gateway: %w", err)
	}

	staleAfter, err := time.ParseDuration(cfg.RiderStaleAfter)
	if err != nil || staleAfter <= 0 {
		statusPublisher.Close()
		rabbitClient.Close()
		return nil, fmt.Errorf("invalid RIDER_STALE_AFTER %q", cfg.RiderStaleAfter)
	}

	contacts := contactrepo.NewGormContactDirectory(gormDB)

	return &CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         postgres.NewGormUnitOfWorkFactory(gormDB),
		rabbitClient:       rabbitClient,
		notificationQueue:  notificationQueue,
		locationRelay:      locationRelay,
		statusPublisher:    statusPublisher,
		smsGateway:         smsGateway,
		notifier:           notifications.NewDispatcher(notificationQueue, contacts, logger),
		riderStaleAfter:    staleAfter,
		riderSweepSchedule: cfg.RiderSweepSchedule,
		logger:             logger,
	}, nil
}

// Close releases broker and producer connections.
func (c *CompositionRoot) Close() {
	c.statusPublisher.Close()
	c.rabbitClient.Close()
}

// LocationBroadcast exposes the relay for the HTTP tracking stream.
func (c *CompositionRoot) LocationBroadcast() ports.LocationBroadcast {
	return c.locationRelay
}

// CreateHTTPHandlers builds the full handler set for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		AcceptOrder:           c.CreateAcceptOrderCommandHandler(),
		RejectOrder:           c.CreateRejectOrderCommandHandler(),
		MarkOrderReady:        c.CreateMarkOrderReadyCommandHandler(),
		AssignRider:           c.CreateAssignRiderCommandHandler(),
		ConfirmPickup:         c.CreateConfirmPickupCommandHandler(),
		CompleteDelivery:      c.CreateCompleteDeliveryCommandHandler(),
		ReportDeliveryFailure: c.CreateReportDeliveryFailureCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		ReportRiderLocation:   c.CreateReportRiderLocationCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetSellerOrders:       c.CreateGetSellerOrdersQueryHandler(),
		GetAvailableRiders:    c.CreateGetAvailableRidersQueryHandler(),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.notifier, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.notifier, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.OrderRiderUoWFactory = FuncOrderRiderUoWFactory(func() commands.OrderRiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.notifier, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPickupCommandHandler(f, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.notifier, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateReportDeliveryFailureCommandHandler() commands.ReportDeliveryFailureCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportDeliveryFailureCommandHandler(f, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateReportRiderLocationCommandHandler() commands.ReportRiderLocationCommandHandler {
	var f commands.OrderRiderUoWFactory = FuncOrderRiderUoWFactory(func() commands.OrderRiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportRiderLocationCommandHandler(f, c.locationRelay, c.logger)
}

func (c *CompositionRoot) CreateSweepStaleRidersCommandHandler() commands.SweepStaleRidersCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepStaleRidersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.gormDB)
}

// CreateJobManager builds the scheduled job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSweepStaleRidersCommandHandler(),
		c.riderSweepSchedule,
		c.riderStaleAfter,
		c.logger,
	)
}

// CreateNotificationWorker builds the queue-draining SMS worker.
func (c *CompositionRoot) CreateNotificationWorker() *notifications.Worker {
	return notifications.NewWorker(c.notificationQueue, c.smsGateway, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncOrderRiderUoWFactory func() commands.OrderRiderUoW

func (f FuncOrderRiderUoWFactory) Create() commands.OrderRiderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}
