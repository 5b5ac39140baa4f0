package repository

import (
	"context"
	"errors"
	"perftracker/internal/domain"
	"perftracker/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePrices = `date,symbol,price
2020-01-03,AAPL,102
2020-01-02,AAPL,100
2020-01-06,AAPL,105
2020-01-02,SPY,300
`

func TestCsvPriceRepository_List(t *testing.T) {
	repo, err := NewCsvPriceRepository(strings.NewReader(samplePrices))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("sorted and clipped to range", func(t *testing.T) {
		series, err := repo.List(ctx, "AAPL", util.NewDate(2020, 1, 1), util.NewDate(2020, 1, 3))
		require.NoError(t, err)
		require.Equal(t, domain.PriceSeries{
			{Symbol: "AAPL", Date: util.NewDate(2020, 1, 2), Price: 100},
			{Symbol: "AAPL", Date: util.NewDate(2020, 1, 3), Price: 102},
		}, series)
	})

	t.Run("single day window", func(t *testing.T) {
		series, err := repo.List(ctx, "AAPL", util.NewDate(2020, 1, 6), util.NewDate(2020, 1, 6))
		require.NoError(t, err)
		require.Len(t, series, 1)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := repo.List(ctx, "MSFT", util.NewDate(2020, 1, 1), util.NewDate(2020, 1, 6))
		require.True(t, errors.Is(err, domain.ErrNoData))
	})

	t.Run("no trading in range", func(t *testing.T) {
		_, err := repo.List(ctx, "AAPL", util.NewDate(2020, 1, 4), util.NewDate(2020, 1, 5))
		require.True(t, errors.Is(err, domain.ErrNoData))
	})
}

func TestNewCsvPriceRepository_badDate(t *testing.T) {
	_, err := NewCsvPriceRepository(strings.NewReader("date,symbol,price\nyesterday,AAPL,1\n"))
	require.Error(t, err)
}
