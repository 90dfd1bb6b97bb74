package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service   usecase.StatsUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewStatsService(StatsServiceParams{
		OrderRepo: orderRepo,
		Logger:    logger,
	})

	return statsServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
	}
}

func TestStatsService_TopOrderedProducts_Success(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	expected := []*entity.ProductOrderCount{
		{ProductName: "Coffee Beans", TotalOrdered: 42},
		{ProductName: "Tea Leaves", TotalOrdered: 17},
	}

	fx.orderRepo.EXPECT().TopOrderedProducts(ctx, from, to, 5).Return(expected, nil)

	counts, err := fx.service.TopOrderedProducts(ctx, &usecase.TopProductsInput{
		From:  from,
		To:    to,
		Limit: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, counts)
}

func TestStatsService_TopOrderedProducts_DefaultLimit(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		TopOrderedProducts(ctx, from, to, defaultTopProductsLimit).
		Return([]*entity.ProductOrderCount{}, nil)

	counts, err := fx.service.TopOrderedProducts(ctx, &usecase.TopProductsInput{
		From: from,
		To:   to,
	})

	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestStatsService_TopOrderedProducts_LimitCapped(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		TopOrderedProducts(ctx, from, to, maxTopProductsLimit).
		Return([]*entity.ProductOrderCount{}, nil)

	_, err := fx.service.TopOrderedProducts(ctx, &usecase.TopProductsInput{
		From:  from,
		To:    to,
		Limit: 5000,
	})

	require.NoError(t, err)
}

func TestStatsService_TopOrderedProducts_MissingDates(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	counts, err := fx.service.TopOrderedProducts(ctx, &usecase.TopProductsInput{
		To: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.Nil(t, counts)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStatsService_TopOrderedProducts_InvertedRange(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	counts, err := fx.service.TopOrderedProducts(ctx, &usecase.TopProductsInput{
		From: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.Nil(t, counts)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStatsService_TopOrderedProducts_RepositoryFailure(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		TopOrderedProducts(ctx, from, to, defaultTopProductsLimit).
		Return(nil, errors.New("db unavailable"))

	counts, err := fx.service.TopOrderedProducts(ctx, &usecase.TopProductsInput{
		From: from,
		To:   to,
	})

	require.Error(t, err)
	assert.Nil(t, counts)
}
