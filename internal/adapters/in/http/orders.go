package http

import (
	"net/http"

	"wiggy/internal/core/application/usecases/commands"
	"wiggy/internal/core/application/usecases/queries"
	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/services"
	"wiggy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type newOrderRequest struct {
	RestaurantID string `json:"restaurantId"`
	Items        []struct {
		MenuItemID string `json:"menuItemId"`
		Quantity   int    `json:"quantity"`
	} `json:"items"`
	DeliveryAddress addressPayload `json:"deliveryAddress"`
	OrderNotes      string         `json:"orderNotes"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req newOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return notFound(c, "Restaurant not found")
	}

	items := make([]services.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, parseErr := kernel.UUIDFromString(item.MenuItemID)
		if parseErr != nil {
			return s.fail(c, errs.NewReferenceIsInvalidError("menu item", item.MenuItemID), "Failed to create order")
		}
		items = append(items, services.ItemRequest{MenuItemID: menuItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		currentUserID(c),
		restaurantID,
		items,
		req.DeliveryAddress.toDomain(),
		req.OrderNotes,
	)
	if err != nil {
		return s.fail(c, err, "Failed to create order")
	}

	placed, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to create order")
	}

	return c.JSON(http.StatusCreated, orderEnvelope{
		Message: "Order placed successfully",
		Order:   orderFromDomain(placed),
	})
}

// GetMyOrders handles GET /api/orders/my-orders.
func (s *Server) GetMyOrders(c echo.Context) error {
	query, err := queries.NewGetUserOrdersQuery(currentUserID(c))
	if err != nil {
		return s.fail(c, err, "Failed to get orders")
	}

	orders, err := s.handlers.GetUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to get orders")
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromDomain(o))
	}
	return c.JSON(http.StatusOK, orderListResponse{
		Message: "Orders retrieved successfully",
		Count:   len(response),
		Orders:  response,
	})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, ok := pathID(c)
	if !ok {
		return notFound(c, "Order not found")
	}

	query, err := queries.NewGetUserOrderQuery(currentUserID(c), orderID)
	if err != nil {
		return s.fail(c, err, "Failed to get order")
	}

	o, err := s.handlers.GetUserOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to get order")
	}

	return c.JSON(http.StatusOK, orderEnvelope{
		Message: "Order details retrieved",
		Order:   orderFromDomain(o),
	})
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}

	// An unknown status is rejected even for an unknown order.
	if _, err := order.ParseStatus(req.Status); err != nil {
		return s.fail(c, err, "Failed to update order status")
	}

	orderID, ok := pathID(c)
	if !ok {
		return notFound(c, "Order not found")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(currentUserID(c), orderID, req.Status)
	if err != nil {
		return s.fail(c, err, "Failed to update order status")
	}

	updated, err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to update order status")
	}

	return c.JSON(http.StatusOK, orderEnvelope{
		Message: "Order status updated",
		Order:   orderFromDomain(updated),
	})
}

// CancelOrder handles DELETE /api/orders/:id.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, ok := pathID(c)
	if !ok {
		return notFound(c, "Order not found")
	}

	cmd, err := commands.NewCancelOrderCommand(currentUserID(c), orderID)
	if err != nil {
		return s.fail(c, err, "Failed to cancel order")
	}

	cancelled, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to cancel order")
	}

	return c.JSON(http.StatusOK, orderEnvelope{
		Message: "Order cancelled successfully",
		Order:   orderFromDomain(cancelled),
	})
}
