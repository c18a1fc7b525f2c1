package handler

import (
	"log/slog"
	"net/http"

	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for basket handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToCartRequest struct {
	DishID   int64 `json:"dish_id" validate:"required"`
	Quantity int   `json:"quantity"`
}

// changeQuantityRequest steps a line by exactly one unit; bulk changes go
// through repeated calls or a fresh add.
type changeQuantityRequest struct {
	DishID int64 `json:"dish_id" validate:"required"`
	Delta  int   `json:"delta" validate:"oneof=-1 1"`
}

// Add puts a dish into the caller's cart.
func (h *CartHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.uc.Add(c.Request().Context(), userID, req.DishID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Added to cart")
}

// View returns the caller's cart with live prices.
func (h *CartHandler) View(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	view, err := h.uc.View(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// ChangeQuantity adjusts a line's quantity by a signed delta.
func (h *CartHandler) ChangeQuantity(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	var req changeQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangeQuantity(c.Request().Context(), userID, req.DishID, req.Delta); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart updated")
}

// RemoveLine deletes one cart line.
func (h *CartHandler) RemoveLine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	lineID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "line id must be a positive integer")
	}

	if err := h.uc.RemoveLine(c.Request().Context(), userID, lineID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Line removed")
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	if err := h.uc.Clear(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
