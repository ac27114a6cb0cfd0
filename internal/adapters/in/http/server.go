// Package http exposes the order lifecycle over a JSON REST API.
// It binds requests, builds commands and queries, and translates domain
// errors to status codes; all business rules live behind the handlers.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/queries"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/services"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the HTTP layer dispatches to.
type Handlers struct {
	PlaceOrder            commands.PlaceOrderCommandHandler
	AcceptOrder           commands.AcceptOrderCommandHandler
	RejectOrder           commands.RejectOrderCommandHandler
	MarkOrderReady        commands.MarkOrderReadyCommandHandler
	AssignRider           commands.AssignRiderCommandHandler
	ConfirmPickup         commands.ConfirmPickupCommandHandler
	CompleteDelivery      commands.CompleteDeliveryCommandHandler
	ReportDeliveryFailure commands.ReportDeliveryFailureCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	ReportRiderLocation   commands.ReportRiderLocationCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetSellerOrders    queries.GetSellerOrdersQueryHandler
	GetAvailableRiders queries.GetAvailableRidersQueryHandler
}

// Server coordinates between HTTP endpoints and application use cases.
type Server struct {
	handlers  Handlers
	locations ports.LocationBroadcast
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with the required use case handlers.
func NewServer(handlers Handlers, locations ports.LocationBroadcast, logger *slog.Logger) *Server {
	return &Server{
		handlers:  handlers,
		locations: locations,
		logger:    logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders/:orderID", s.GetOrder)
	v1.POST("/orders/:orderID/accept", s.AcceptOrder)
	v1.POST("/orders/:orderID/reject", s.RejectOrder)
	v1.POST("/orders/:orderID/ready", s.MarkOrderReady)
	v1.POST("/orders/:orderID/assign-rider", s.AssignRider)
	v1.POST("/orders/:orderID/pickup", s.ConfirmPickup)
	v1.POST("/orders/:orderID/deliver", s.CompleteDelivery)
	v1.POST("/orders/:orderID/fail", s.ReportDeliveryFailure)
	v1.POST("/orders/:orderID/cancel", s.CancelOrder)

	v1.POST("/orders/:orderID/location", s.ReportRiderLocation)
	v1.GET("/orders/:orderID/location/stream", s.StreamRiderLocation)

	v1.GET("/sellers/:sellerID/orders", s.GetSellerOrders)
	v1.GET("/riders/available", s.GetAvailableRiders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail maps a use case error to an HTTP response. Unrecognized errors are
// logged and reported as 500 without leaking internals.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrStatusConflict),
		errors.Is(err, ports.ErrInsufficientStock),
		errors.Is(err, services.ErrRiderNotAvailable),
		errors.Is(err, order.ErrOrderNotInTransit):
		code = http.StatusConflict
	case errors.Is(err, order.ErrSellerMismatch),
		errors.Is(err, order.ErrRiderMismatch):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	}

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(code, ErrorResponse{Code: code, Message: "internal error"})
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
