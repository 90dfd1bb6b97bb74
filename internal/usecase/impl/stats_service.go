package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTopProductsLimit = 10
	maxTopProductsLimit     = 100
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TopOrderedProducts returns the most ordered products within [From, To).
func (srv *statsService) TopOrderedProducts(ctx context.Context, input *usecase.TopProductsInput) ([]*entity.ProductOrderCount, error) {
	if input.From.IsZero() || input.To.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("both start and end dates are required")
	}
	if !input.From.Before(input.To) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("start date must be before end date")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}
	if limit > maxTopProductsLimit {
		limit = maxTopProductsLimit
	}

	counts, err := srv.orderRepo.TopOrderedProducts(ctx, input.From, input.To, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to query top ordered products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query top ordered products")
	}

	return counts, nil
}
