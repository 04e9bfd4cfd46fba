// Package http exposes the order use cases over a JSON API.
// The acting user is taken from the X-User header and the X-Admin header
// grants administrative rights; authentication itself happens upstream.
package http

import (
	"errors"
	"net/http"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Recipient RecipientPayload `json:"recipient"`
	Delivery  string           `json:"delivery"`
	Items     []OrderItem      `json:"items"`
}

// RecipientPayload carries the recipient details of a placement request.
type RecipientPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// OrderItem is one requested line of a placement request.
type OrderItem struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderResponse returns the identifier of the newly placed order.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// UpdateStatusRequest is the body of POST /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse reports the applied status change.
type UpdateStatusResponse struct {
	Status string `json:"status"`
}

// Order is the JSON rendering of a priced order.
type Order struct {
	ID            string           `json:"id"`
	Status        string           `json:"status"`
	Delivery      string           `json:"delivery"`
	CreatedAt     time.Time        `json:"createdAt"`
	Recipient     RecipientPayload `json:"recipient"`
	Items         []PricedItem     `json:"items"`
	ItemsPrice    string           `json:"itemsPrice"`
	DeliveryPrice string           `json:"deliveryPrice"`
	Discounts     []Discount       `json:"discounts"`
	FinalPrice    string           `json:"finalPrice"`
}

// PricedItem is one order line with its current prices.
type PricedItem struct {
	BookID    string `json:"bookId"`
	Title     string `json:"title"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LinePrice string `json:"linePrice"`
}

// Discount is one applied discount in an order rendering.
type Discount struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Server implements the HTTP endpoints for the order use cases.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	updateStatus       commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStatus commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:   placeOrderHandler,
		updateStatus:        updateStatus,
		deleteOrderHandler:  deleteOrderHandler,
		getOrderHandler:     getOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
	}
}

// RegisterRoutes wires every endpoint into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.DELETE("/api/v1/orders/:id", s.DeleteOrder)
	e.POST("/api/v1/orders/:id/status", s.UpdateOrderStatus)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	delivery, err := order.DeliveryFromString(request.Delivery)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery method: " + request.Delivery,
		})
	}

	items := make([]commands.PlaceOrderItem, 0, len(request.Items))
	for _, line := range request.Items {
		bookID, idErr := kernel.UUIDFromString(line.BookID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid book ID: " + line.BookID,
			})
		}

		item, itemErr := commands.NewPlaceOrderItem(bookID, line.Quantity)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order line: " + itemErr.Error(),
			})
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		commands.RecipientData{
			Email:   request.Recipient.Email,
			Name:    request.Recipient.Name,
			Phone:   request.Recipient.Phone,
			Street:  request.Recipient.Street,
			City:    request.Recipient.City,
			ZipCode: request.Recipient.ZipCode,
		},
		delivery,
		items,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Unknown book in order",
		})
	case errors.Is(err, errs.ErrInsufficientStock):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders with prices.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderJSON(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with prices.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order.
// Restricted to administrators.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing X-User header",
		})
	}
	if !actor.IsAdmin() {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Only administrators may delete orders",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// through its lifecycle on behalf of the acting user.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing X-User header",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + request.Status,
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, actor)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	response, err := s.updateStatus.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order status",
		})
	}

	if !response.Success() {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: response.Reason(),
		})
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{Status: response.NewStatus().String()})
}

func actorFromHeaders(ctx echo.Context) (commands.Actor, error) {
	identity := ctx.Request().Header.Get("X-User")
	isAdmin := ctx.Request().Header.Get("X-Admin") == "true"
	return commands.NewActor(identity, isAdmin)
}

func toOrderJSON(o queries.OrderResponse) Order {
	items := make([]PricedItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = PricedItem{
			BookID:    item.BookID.String(),
			Title:     item.Title,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			LinePrice: item.LinePrice.String(),
		}
	}

	discounts := make([]Discount, len(o.Discounts))
	for i, discount := range o.Discounts {
		discounts[i] = Discount{
			Name:   discount.Name,
			Amount: discount.Amount.String(),
		}
	}

	return Order{
		ID:        o.ID.String(),
		Status:    o.Status.String(),
		Delivery:  o.Delivery.String(),
		CreatedAt: o.CreatedAt,
		Recipient: RecipientPayload{
			Email:   o.Recipient.Email,
			Name:    o.Recipient.Name,
			Phone:   o.Recipient.Phone,
			Street:  o.Recipient.Street,
			City:    o.Recipient.City,
			ZipCode: o.Recipient.ZipCode,
		},
		Items:         items,
		ItemsPrice:    o.ItemsPrice.String(),
		DeliveryPrice: o.DeliveryPrice.String(),
		Discounts:     discounts,
		FinalPrice:    o.FinalPrice.String(),
	}
}
