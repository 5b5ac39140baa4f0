package calculator

import (
	"errors"
	"math"
	"perftracker/internal/domain"
	"perftracker/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func prices(symbol string, values ...float64) domain.PriceSeries {
	out := domain.PriceSeries{}
	for i, v := range values {
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Price:  v,
			Date:   util.NewDate(2020, 1, 1).AddDate(0, 0, i),
		})
	}
	return out
}

func TestNormalizeReturns(t *testing.T) {
	t.Run("cumulative change from first price", func(t *testing.T) {
		out, err := NormalizeReturns(prices("AAPL", 100, 110, 99))
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.ReturnSeries{
					{Date: util.NewDate(2020, 1, 1), Return: 0},
					{Date: util.NewDate(2020, 1, 2), Return: 0.10},
					{Date: util.NewDate(2020, 1, 3), Return: -0.01},
				},
				out,
				cmpopts.EquateApprox(0, 1e-12),
			),
		)
	})

	t.Run("first value is exactly zero", func(t *testing.T) {
		for _, first := range []float64{0.1, 1, 3.3333, 1e9} {
			out, err := NormalizeReturns(prices("X", first, first*2))
			require.NoError(t, err)
			require.Equal(t, 0.0, out[0].Return)
		}
	})

	t.Run("scale invariant", func(t *testing.T) {
		base := []float64{12.5, 13, 11.75, 20, 19.2}
		want, err := NormalizeReturns(prices("X", base...))
		require.NoError(t, err)

		for _, k := range []float64{0.5, 3, 1000} {
			scaled := make([]float64, len(base))
			for i, v := range base {
				scaled[i] = v * k
			}
			got, err := NormalizeReturns(prices("X", scaled...))
			require.NoError(t, err)
			require.Equal(t, "", cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)))
		}
	})

	t.Run("single point", func(t *testing.T) {
		out, err := NormalizeReturns(prices("X", 42))
		require.NoError(t, err)
		require.Equal(t, domain.ReturnSeries{{Date: util.NewDate(2020, 1, 1), Return: 0}}, out)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := NormalizeReturns(domain.PriceSeries{})
		require.True(t, errors.Is(err, domain.ErrInvalidSeries))
	})

	t.Run("non-positive first price", func(t *testing.T) {
		_, err := NormalizeReturns(prices("X", 0, 10))
		require.True(t, errors.Is(err, domain.ErrInvalidSeries))

		_, err = NormalizeReturns(prices("X", -1, 10))
		require.True(t, errors.Is(err, domain.ErrInvalidSeries))
	})

	t.Run("non-finite prices", func(t *testing.T) {
		_, err := NormalizeReturns(prices("X", math.Inf(1), 10))
		require.True(t, errors.Is(err, domain.ErrInvalidSeries))

		_, err = NormalizeReturns(prices("X", 10, math.NaN()))
		require.True(t, errors.Is(err, domain.ErrInvalidSeries))

		_, err = NormalizeReturns(prices("X", 10, math.Inf(-1)))
		require.True(t, errors.Is(err, domain.ErrInvalidSeries))
	})
}
