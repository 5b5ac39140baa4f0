package calculator

import (
	"perftracker/internal/domain"
	"perftracker/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func point(day int, ret float64) domain.ReturnPoint {
	return domain.ReturnPoint{Date: util.NewDate(2020, 1, day), Return: ret}
}

func TestAverageReturns(t *testing.T) {
	t.Run("single member is unchanged", func(t *testing.T) {
		member := domain.ReturnSeries{point(1, 0), point(2, 0.3), point(5, -0.1)}
		require.Equal(t, member, AverageReturns([]domain.ReturnSeries{member}))
	})

	t.Run("members spanning the same dates", func(t *testing.T) {
		out := AverageReturns([]domain.ReturnSeries{
			{point(1, 0), point(2, 0.1), point(3, 0.2)},
			{point(1, 0), point(2, 0.05), point(3, 0.1)},
		})
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.ReturnSeries{point(1, 0), point(2, 0.075), point(3, 0.15)},
				out,
				cmpopts.EquateApprox(0, 1e-12),
			),
		)
	})

	t.Run("late starter is excluded until it starts", func(t *testing.T) {
		out := AverageReturns([]domain.ReturnSeries{
			{point(1, 0), point(2, 0.2), point(3, 0.4)},
			{point(3, 0)},
		})
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.ReturnSeries{point(1, 0), point(2, 0.2), point(3, 0.2)},
				out,
				cmpopts.EquateApprox(0, 1e-12),
			),
		)
	})

	t.Run("gaps and early exits are forward filled", func(t *testing.T) {
		out := AverageReturns([]domain.ReturnSeries{
			{point(1, 0), point(3, 0.3)},
			{point(1, 0), point(2, 0.1)},
		})
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.ReturnSeries{point(1, 0), point(2, 0.05), point(3, 0.2)},
				out,
				cmpopts.EquateApprox(0, 1e-12),
			),
		)
	})

	t.Run("no members", func(t *testing.T) {
		require.Empty(t, AverageReturns(nil))
	})
}

func TestOutperformanceDelta(t *testing.T) {
	t.Run("group beats benchmark", func(t *testing.T) {
		avg := AverageReturns([]domain.ReturnSeries{
			{point(1, 0), point(2, 0.20)},
			{point(1, 0), point(2, 0.10)},
		})
		terminal, ok := avg.Terminal()
		require.True(t, ok)
		require.InDelta(t, 0.15, terminal, 1e-12)
		require.InDelta(t, 10.0, OutperformanceDelta(terminal, 0.05), 1e-9)
	})

	t.Run("swapping negates", func(t *testing.T) {
		pairs := [][2]float64{{0.15, 0.05}, {-0.3, 0.12}, {0.123456, 0.654321}, {0, 0}}
		for _, p := range pairs {
			require.Equal(t, -OutperformanceDelta(p[0], p[1]), OutperformanceDelta(p[1], p[0]))
		}
	})
}
