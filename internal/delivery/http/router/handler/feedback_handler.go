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

// FeedbackHandler holds dependencies for feedback handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger,
	}
}

type addFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
	OrderID *int64 `json:"order_id"`
}

// Add stores a feedback entry and reports the monthly loyalty state.
func (h *FeedbackHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	var req addFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Add(c.Request().Context(), &usecase.AddFeedbackInput{
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
		OrderID: req.OrderID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Feedback recorded")
}

// ListMine returns the caller's feedback, most recent first.
func (h *FeedbackHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "identity is required")
	}

	entries, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Feedback retrieved successfully")
}
