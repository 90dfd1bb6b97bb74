package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// TopProductsInput bounds the statistics query. The range is half-open:
// orders placed at From count, orders placed at To do not.
type TopProductsInput struct {
	From  time.Time
	To    time.Time
	Limit int
}

// StatsUsecase exposes aggregate reporting over orders.
type StatsUsecase interface {
	// TopOrderedProducts returns the products with the most order line items
	// in the date range, sorted by count descending with name breaking ties.
	TopOrderedProducts(ctx context.Context, input *TopProductsInput) ([]*entity.ProductOrderCount, error)
}
