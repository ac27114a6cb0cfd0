package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// OrderLineResponse is one line item in an order projection.
type OrderLineResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// OrderResponse is the full order projection for buyer and seller views.
type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	BuyerID         string              `json:"buyer_id"`
	SellerID        string              `json:"seller_id"`
	RiderID         *string             `json:"rider_id,omitempty"`
	Status          string              `json:"status"`
	Progress        int                 `json:"progress"`
	TotalAmount     int64               `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	DeliveryAddress string              `json:"delivery_address"`
	RejectionReason *string             `json:"rejection_reason,omitempty"`
	Lines           []OrderLineResponse `json:"lines"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]OrderLineResponse, len(result.Lines))
	for i, l := range result.Lines {
		lines[i] = OrderLineResponse{
			ProductID: l.ProductID.String(),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		}
	}

	response := OrderResponse{
		ID:              result.ID.String(),
		OrderNumber:     result.OrderNumber,
		BuyerID:         result.BuyerID.String(),
		SellerID:        result.SellerID.String(),
		Status:          result.Status,
		Progress:        result.Progress,
		TotalAmount:     result.TotalAmount,
		PaymentMethod:   result.PaymentMethod,
		PaymentStatus:   result.PaymentStatus,
		DeliveryAddress: result.DeliveryAddress,
		RejectionReason: result.RejectionReason,
		Lines:           lines,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}
	if result.RiderID != nil {
		riderID := result.RiderID.String()
		response.RiderID = &riderID
	}

	return ctx.JSON(http.StatusOK, response)
}

// SellerOrderResponse is one row in the seller's dashboard listing.
type SellerOrderResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	BuyerID     string    `json:"buyer_id"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetSellerOrders handles GET /api/v1/sellers/:sellerID/orders.
// An optional ?status= filter narrows the listing to one lifecycle state.
func (s *Server) GetSellerOrders(ctx echo.Context) error {
	sellerID, err := pathUUID(ctx, "sellerID")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetSellerOrdersQuery(sellerID, ctx.QueryParam("status"))
	if err != nil {
		return s.fail(ctx, err)
	}

	results, err := s.handlers.GetSellerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]SellerOrderResponse, len(results))
	for i, r := range results {
		response[i] = SellerOrderResponse{
			ID:          r.ID.String(),
			OrderNumber: r.OrderNumber,
			BuyerID:     r.BuyerID.String(),
			Status:      r.Status,
			Progress:    r.Progress,
			TotalAmount: r.TotalAmount,
			CreatedAt:   r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AvailableRiderResponse is one rider the seller can pick for assignment.
type AvailableRiderResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	LastReportedAt *time.Time `json:"last_reported_at,omitempty"`
}

// GetAvailableRiders handles GET /api/v1/riders/available.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	query := queries.NewGetAvailableRidersQuery()

	results, err := s.handlers.GetAvailableRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]AvailableRiderResponse, len(results))
	for i, r := range results {
		response[i] = AvailableRiderResponse{
			ID:             r.ID.String(),
			Name:           r.Name,
			Phone:          r.Phone,
			LastReportedAt: r.LastReportedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// LocationEvent is one SSE payload on the tracking stream.
type LocationEvent struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ReportedAt time.Time `json:"reported_at"`
}

// StreamRiderLocation handles GET /api/v1/orders/:orderID/location/stream.
// It relays the rider's location samples as server-sent events until the
// client disconnects. The stream carries whatever the relay delivers;
// there is no replay of samples published before the subscription.
func (s *Server) StreamRiderLocation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return s.fail(ctx, err)
	}

	requestCtx := ctx.Request().Context()
	samples, err := s.locations.Subscribe(requestCtx, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	for {
		select {
		case <-requestCtx.Done():
			return nil
		case sample, ok := <-samples:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(LocationEvent{
				Latitude:   sample.Point.Latitude(),
				Longitude:  sample.Point.Longitude(),
				ReportedAt: sample.ReportedAt,
			})
			if err != nil {
				continue
			}

			if _, err := fmt.Fprintf(response, "data: %s\n\n", payload); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}
