package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReturnSeries_ValueAsOf(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2020, 1, day, 0, 0, 0, 0, time.UTC)
	}
	series := ReturnSeries{
		{Date: d(2), Return: 0},
		{Date: d(3), Return: 0.1},
		{Date: d(6), Return: 0.2},
	}

	t.Run("before start", func(t *testing.T) {
		_, ok := series.ValueAsOf(d(1))
		require.False(t, ok)
	})
	t.Run("exact date", func(t *testing.T) {
		v, ok := series.ValueAsOf(d(3))
		require.True(t, ok)
		require.Equal(t, 0.1, v)
	})
	t.Run("gap is forward filled", func(t *testing.T) {
		v, ok := series.ValueAsOf(d(5))
		require.True(t, ok)
		require.Equal(t, 0.1, v)
	})
	t.Run("after end keeps terminal", func(t *testing.T) {
		v, ok := series.ValueAsOf(d(20))
		require.True(t, ok)
		require.Equal(t, 0.2, v)
	})
	t.Run("empty", func(t *testing.T) {
		_, ok := ReturnSeries{}.ValueAsOf(d(1))
		require.False(t, ok)
		_, ok = ReturnSeries{}.Terminal()
		require.False(t, ok)
	})
}

func TestNewPriceSeries(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2020, 1, day, 0, 0, 0, 0, time.UTC)
	}
	series := NewPriceSeries([]AssetPrice{
		{Symbol: "AAPL", Date: d(3), Price: 3},
		{Symbol: "AAPL", Date: d(1), Price: 1},
		{Symbol: "AAPL", Date: d(3), Price: 4},
	})
	require.Equal(t, PriceSeries{
		{Symbol: "AAPL", Date: d(1), Price: 1},
		{Symbol: "AAPL", Date: d(3), Price: 4},
	}, series)
}
