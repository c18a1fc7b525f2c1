package handler

import (
	"log/slog"
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the operator-facing handlers.
type AdminHandler struct {
	catalogUC  usecase.CatalogUsecase
	orderUC    usecase.OrderUsecase
	feedbackUC usecase.FeedbackUsecase
	statsUC    usecase.StatsUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	catalogUC usecase.CatalogUsecase,
	orderUC usecase.OrderUsecase,
	feedbackUC usecase.FeedbackUsecase,
	statsUC usecase.StatsUsecase,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalogUC:  catalogUC,
		orderUC:    orderUC,
		feedbackUC: feedbackUC,
		statsUC:    statsUC,
		logger:     logger,
	}
}

type addCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateDishRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"category_id"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddCategory creates a menu category.
func (h *AdminHandler) AddCategory(c echo.Context) error {
	var req addCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.catalogUC.AddCategory(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// DeleteCategory removes an empty category.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "category id must be a positive integer")
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

// AddDish creates a dish.
func (h *AdminHandler) AddDish(c echo.Context) error {
	var input usecase.AddDishInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	dish, err := h.catalogUC.AddDish(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dish, "Dish created successfully")
}

// UpdateDish applies a partial update to a dish.
func (h *AdminHandler) UpdateDish(c echo.Context) error {
	dishID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "dish id must be a positive integer")
	}

	var req updateDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}

	update := &entity.DishUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
	if err := h.catalogUC.UpdateDish(c.Request().Context(), dishID, update); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish updated")
}

// DeleteDish removes a dish from the menu.
func (h *AdminHandler) DeleteDish(c echo.Context) error {
	dishID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "dish id must be a positive integer")
	}

	if err := h.catalogUC.DeleteDish(c.Request().Context(), dishID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish deleted")
}

// UpdateOrderStatus advances an order along the status machine.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "order id must be a positive integer")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.orderUC.AdvanceStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

// GetOrder returns any order with its frozen items.
func (h *AdminHandler) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "order id must be a positive integer")
	}

	order, err := h.orderUC.GetDetails(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// Stats returns the admin dashboard aggregate.
func (h *AdminHandler) Stats(c echo.Context) error {
	summary, err := h.statsUC.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Stats retrieved successfully")
}

// ListFeedback returns every feedback entry for review.
func (h *AdminHandler) ListFeedback(c echo.Context) error {
	entries, err := h.feedbackUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Feedback retrieved successfully")
}
