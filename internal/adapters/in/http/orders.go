package http

import (
	"net/http"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GeoPointRequest is an optional coordinate in request payloads.
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderLineRequest is one line item at checkout. UnitPrice is in minor
// currency units.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	OrderNumber     string             `json:"order_number"`
	BuyerID         string             `json:"buyer_id"`
	SellerID        string             `json:"seller_id"`
	Lines           []OrderLineRequest `json:"lines"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryPoint   *GeoPointRequest   `json:"delivery_point,omitempty"`
}

// PlaceOrderResponse returns the server-generated order identifier.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]order.Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		productID, err := kernel.UUIDFromString(l.ProductID)
		if err != nil {
			return s.fail(ctx, err)
		}
		unitPrice, err := kernel.NewMoney(l.UnitPrice)
		if err != nil {
			return s.fail(ctx, err)
		}
		line, err := order.NewLine(productID, l.Quantity, unitPrice)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines = append(lines, line)
	}

	var deliveryPoint *kernel.GeoPoint
	if req.DeliveryPoint != nil {
		point, err := kernel.NewGeoPoint(req.DeliveryPoint.Latitude, req.DeliveryPoint.Longitude)
		if err != nil {
			return s.fail(ctx, err)
		}
		deliveryPoint = &point
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, req.OrderNumber, buyerID, sellerID,
		lines, req.DeliveryAddress, deliveryPoint)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// SellerActionRequest identifies the seller performing a transition.
type SellerActionRequest struct {
	SellerID string `json:"seller_id"`
}

// AcceptOrder handles POST /api/v1/orders/:orderID/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req SellerActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, sellerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrderRequest carries the mandatory rejection reason.
type RejectOrderRequest struct {
	SellerID string `json:"seller_id"`
	Reason   string `json:"reason"`
}

// RejectOrder handles POST /api/v1/orders/:orderID/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req RejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, sellerID, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/:orderID/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req SellerActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID, sellerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.MarkOrderReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignRiderRequest names the rider the seller picked from the available
// pool. Availability is re-validated inside the transaction, so a stale
// pick comes back as a conflict rather than a double booking.
type AssignRiderRequest struct {
	SellerID string `json:"seller_id"`
	RiderID  string `json:"rider_id"`
}

// AssignRider handles POST /api/v1/orders/:orderID/assign-rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AssignRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, sellerID, riderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AssignRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RiderActionRequest identifies the rider performing a transition.
type RiderActionRequest struct {
	RiderID string `json:"rider_id"`
}

func (s *Server) riderTransition(
	ctx echo.Context,
	handle func(orderID, riderID kernel.UUID) error,
) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req RiderActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := handle(orderID, riderID); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/v1/orders/:orderID/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	return s.riderTransition(ctx, func(orderID, riderID kernel.UUID) error {
		cmd, err := commands.NewConfirmPickupCommand(orderID, riderID)
		if err != nil {
			return err
		}
		return s.handlers.ConfirmPickup.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteDelivery handles POST /api/v1/orders/:orderID/deliver.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return s.riderTransition(ctx, func(orderID, riderID kernel.UUID) error {
		cmd, err := commands.NewCompleteDeliveryCommand(orderID, riderID)
		if err != nil {
			return err
		}
		return s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// ReportDeliveryFailure handles POST /api/v1/orders/:orderID/fail.
func (s *Server) ReportDeliveryFailure(ctx echo.Context) error {
	return s.riderTransition(ctx, func(orderID, riderID kernel.UUID) error {
		cmd, err := commands.NewReportDeliveryFailureCommand(orderID, riderID)
		if err != nil {
			return err
		}
		return s.handlers.ReportDeliveryFailure.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReportLocationRequest is one location sample from the rider's device.
// ReportedAt defaults to the server clock when omitted.
type ReportLocationRequest struct {
	RiderID    string     `json:"rider_id"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	ReportedAt *time.Time `json:"reported_at,omitempty"`
}

// ReportRiderLocation handles POST /api/v1/orders/:orderID/location.
func (s *Server) ReportRiderLocation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req ReportLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	reportedAt := time.Now().UTC()
	if req.ReportedAt != nil {
		reportedAt = req.ReportedAt.UTC()
	}

	cmd, err := commands.NewReportRiderLocationCommand(orderID, riderID, point, reportedAt)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.ReportRiderLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusAccepted)
}
