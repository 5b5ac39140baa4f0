package l1_service

import (
	"context"
	"errors"
	"perftracker/internal/domain"
	mock_repository "perftracker/internal/repository/mocks"
	"perftracker/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceCache_List(t *testing.T) {
	ctx := context.Background()
	start := util.NewDate(2020, 1, 1)
	end := util.NewDate(2020, 1, 31)

	t.Run("identical requests hit the provider once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)

		series := domain.PriceSeries{
			{Symbol: "AAPL", Date: start, Price: 100},
		}
		provider.EXPECT().
			List(gomock.Any(), "AAPL", start, end).
			Return(series, nil).
			Times(1)

		cache := NewPriceCache(provider)
		for i := 0; i < 3; i++ {
			got, err := cache.List(ctx, "AAPL", start, end)
			require.NoError(t, err)
			require.Equal(t, series, got)
		}

		hits, misses := cache.Stats()
		require.Equal(t, 2, hits)
		require.Equal(t, 1, misses)
	})

	t.Run("failures are memoized too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)

		provider.EXPECT().
			List(gomock.Any(), "NOPE", start, end).
			Return(nil, domain.ErrNoData).
			Times(1)

		cache := NewPriceCache(provider)
		for i := 0; i < 2; i++ {
			_, err := cache.List(ctx, "NOPE", start, end)
			require.True(t, errors.Is(err, domain.ErrNoData))
		}
	})

	t.Run("different windows are separate entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)

		provider.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(domain.PriceSeries{}, nil)
		provider.EXPECT().List(gomock.Any(), "AAPL", start, end.AddDate(0, 0, 1)).Return(domain.PriceSeries{}, nil)

		cache := NewPriceCache(provider)
		_, _ = cache.List(ctx, "AAPL", start, end)
		_, _ = cache.List(ctx, "AAPL", start, end.AddDate(0, 0, 1))
	})

	t.Run("a new cache does not share entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)

		provider.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(domain.PriceSeries{}, nil).Times(2)

		_, _ = NewPriceCache(provider).List(ctx, "AAPL", start, end)
		_, _ = NewPriceCache(provider).List(ctx, "AAPL", start, end)
	})
}
