package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/validator"
	mockUsecase "bistro/internal/mocks/usecase"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func performChangeQuantity(t *testing.T, uc usecase.CartUsecase, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, int64(42))

	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return rec, h.ChangeQuantity(c)
}

func TestCartHandler_ChangeQuantity_AcceptsUnitDeltas(t *testing.T) {
	for _, delta := range []int{1, -1} {
		uc := mockUsecase.NewMockCartUsecase(t)
		uc.EXPECT().ChangeQuantity(mock.Anything, int64(42), int64(7), delta).Return(nil)

		rec, err := performChangeQuantity(t, uc, fmt.Sprintf(`{"dish_id": 7, "delta": %d}`, delta))

		require.NoError(t, err, "delta %d", delta)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCartHandler_ChangeQuantity_RejectsNonUnitDeltas(t *testing.T) {
	for _, delta := range []int{0, 5, -10} {
		// No expectations: the request must be rejected before the use case runs.
		uc := mockUsecase.NewMockCartUsecase(t)

		_, err := performChangeQuantity(t, uc, fmt.Sprintf(`{"dish_id": 7, "delta": %d}`, delta))

		var httpErr *echo.HTTPError
		require.True(t, errors.As(err, &httpErr), "delta %d", delta)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code, "delta %d", delta)
	}
}
