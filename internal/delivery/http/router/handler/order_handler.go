package handler

import (
	"log/slog"
	"net/http"

	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type checkoutRequest struct {
	DeliveryType string `json:"delivery_type" validate:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone" validate:"required"`
	PromoCode    string `json:"promo_code"`
}

// Checkout freezes the caller's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		UserID:       userID,
		DeliveryType: entity.DeliveryType(req.DeliveryType),
		Address:      req.Address,
		Phone:        req.Phone,
		PromoCode:    req.PromoCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// List returns the caller's orders, most recent first.
func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	orders, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Get returns one of the caller's orders with its frozen items.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "order id must be a positive integer")
	}

	order, err := h.uc.GetDetails(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}
	if order.UserID != userID {
		// Customers only see their own orders.
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// PickupCode streams the order's pickup QR code as a PNG.
func (h *OrderHandler) PickupCode(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "order id must be a positive integer")
	}

	order, err := h.uc.GetDetails(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}
	if order.UserID != userID {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	png, err := h.uc.PickupCode(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
