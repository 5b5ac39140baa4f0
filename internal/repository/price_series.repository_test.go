package repository

import (
	"context"
	"errors"
	"perftracker/internal/domain"
	"perftracker/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_inRange(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	prices := []domain.AssetPrice{
		{Symbol: "SPY", Date: time.Date(2020, 1, 2, 16, 0, 0, 0, time.UTC), Price: 300},
		{Symbol: "SPY", Date: time.Date(2020, 1, 3, 9, 30, 0, 0, est), Price: 301},
		{Symbol: "SPY", Date: util.NewDate(2020, 1, 7), Price: 305},
	}

	t.Run("normalizes to days", func(t *testing.T) {
		out, err := inRange("SPY", prices, util.NewDate(2020, 1, 2), util.NewDate(2020, 1, 3))
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, util.NewDate(2020, 1, 2), out[0].Date)
		require.Equal(t, util.NewDate(2020, 1, 3), out[1].Date)
	})

	t.Run("nothing in range", func(t *testing.T) {
		_, err := inRange("SPY", prices, util.NewDate(2021, 1, 1), util.NewDate(2021, 2, 1))
		require.True(t, errors.Is(err, domain.ErrNoData))
		require.Contains(t, err.Error(), "SPY")
	})
}

func Test_withTimeout(t *testing.T) {
	t.Run("returns the call's result", func(t *testing.T) {
		out, err := withTimeout(context.Background(), time.Second, func() ([]domain.AssetPrice, error) {
			return []domain.AssetPrice{{Symbol: "SPY", Price: 1}}, nil
		})
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("gives up on slow calls", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		_, err := withTimeout(context.Background(), 10*time.Millisecond, func() ([]domain.AssetPrice, error) {
			<-release
			return nil, nil
		})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
