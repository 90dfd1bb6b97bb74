package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// statsDateLayout is the expected form of the from/to path segments.
const statsDateLayout = "2006-01-02"

// StatsHandler holds dependencies for reporting handlers.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// TopProducts handles the top-ordered-products report. Admin only. Both dates
// are inclusive: orders placed anytime on the to date still count.
func (h *StatsHandler) TopProducts(c echo.Context) error {
	from, err := time.Parse(statsDateLayout, c.Param("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid from date, expected YYYY-MM-DD")
	}

	to, err := time.Parse(statsDateLayout, c.Param("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid to date, expected YYYY-MM-DD")
	}

	limit, err := strconv.Atoi(c.Param("limit"))
	if err != nil || limit <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid limit, expected a positive integer")
	}

	// The storage layer filters on a half-open range, so push the exclusive
	// upper bound past the end of the to date.
	counts, err := h.uc.TopOrderedProducts(c.Request().Context(), &usecase.TopProductsInput{
		From:  from,
		To:    to.AddDate(0, 0, 1),
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "Top ordered products retrieved successfully")
}
