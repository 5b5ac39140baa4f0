package l2_service

import (
	"context"
	"errors"
	"perftracker/internal/domain"
	mock_repository "perftracker/internal/repository/mocks"
	"perftracker/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTrade(t *testing.T, symbol string, purchase time.Time, sell *time.Time, score string) domain.TradeRecord {
	record, err := domain.NewTradeRecord(symbol, &purchase, sell, score)
	require.NoError(t, err)
	return *record
}

func Test_positionServiceHandler_Evaluate(t *testing.T) {
	ctx := context.Background()
	purchase := util.NewDate(2020, 1, 2)
	today := util.NewDate(2020, 1, 10)

	t.Run("open position runs through today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)
		handler := NewPositionService(provider)

		provider.EXPECT().
			List(gomock.Any(), "AAPL", purchase, today).
			Return(domain.PriceSeries{
				{Symbol: "AAPL", Date: purchase, Price: 100},
				{Symbol: "AAPL", Date: util.NewDate(2020, 1, 3), Price: 110},
			}, nil)

		out, err := handler.Evaluate(ctx, newTrade(t, "AAPL", purchase, nil, "3"), today)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, 0.0, out[0].Return)
		require.InDelta(t, 0.1, out[1].Return, 1e-12)
	})

	t.Run("closed position stops at sell date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)
		handler := NewPositionService(provider)

		sell := util.NewDate(2020, 1, 5)
		provider.EXPECT().
			List(gomock.Any(), "AAPL", purchase, sell).
			Return(domain.PriceSeries{{Symbol: "AAPL", Date: purchase, Price: 100}}, nil)

		_, err := handler.Evaluate(ctx, newTrade(t, "AAPL", purchase, &sell, "3"), today)
		require.NoError(t, err)
	})

	t.Run("single day window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)
		handler := NewPositionService(provider)

		provider.EXPECT().
			List(gomock.Any(), "AAPL", purchase, purchase).
			Return(domain.PriceSeries{{Symbol: "AAPL", Date: purchase, Price: 100}}, nil)

		out, err := handler.Evaluate(ctx, newTrade(t, "AAPL", purchase, &purchase, "3"), today)
		require.NoError(t, err)
		require.Equal(t, domain.ReturnSeries{{Date: purchase, Return: 0}}, out)
	})

	t.Run("provider errors become missing data", func(t *testing.T) {
		for _, providerErr := range []error{domain.ErrNoData, context.DeadlineExceeded} {
			ctrl := gomock.NewController(t)
			provider := mock_repository.NewMockPriceSeriesRepository(ctrl)
			handler := NewPositionService(provider)

			provider.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, providerErr)

			_, err := handler.Evaluate(ctx, newTrade(t, "NOPE", purchase, nil, "3"), today)
			require.True(t, errors.Is(err, domain.ErrMissingData))
			require.True(t, errors.Is(err, providerErr))
		}
	})

	t.Run("empty series is missing data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)
		handler := NewPositionService(provider)

		provider.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.PriceSeries{}, nil)

		_, err := handler.Evaluate(ctx, newTrade(t, "AAPL", purchase, nil, "3"), today)
		require.True(t, errors.Is(err, domain.ErrMissingData))
	})

	t.Run("zero first price is missing data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockPriceSeriesRepository(ctrl)
		handler := NewPositionService(provider)

		provider.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.PriceSeries{
			{Symbol: "AAPL", Date: purchase, Price: 0},
		}, nil)

		_, err := handler.Evaluate(ctx, newTrade(t, "AAPL", purchase, nil, "3"), today)
		require.True(t, errors.Is(err, domain.ErrMissingData))
		require.True(t, errors.Is(err, domain.ErrInvalidSeries))
	})
}
