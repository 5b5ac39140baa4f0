package calculator

import (
	"fmt"
	"math"
	"perftracker/internal/domain"

	"github.com/montanaflynn/stats"
)

type GroupMetrics struct {
	TotalReturn      float64 `json:"totalReturn"`
	AnnualizedReturn float64 `json:"annualizedReturn"`
	AnnualizedStdev  float64 `json:"annualizedStdev"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
}

// CalculateMetrics describes a cumulative-return curve. it needs at
// least three observations spread over more than a day
func CalculateMetrics(series domain.ReturnSeries) (*GroupMetrics, error) {
	if len(series) < 3 {
		return nil, fmt.Errorf("%w: need 3 observations, got %d", domain.ErrInsufficientData, len(series))
	}
	numDays := series[len(series)-1].Date.Sub(series[0].Date).Hours() / 24
	if numDays <= 0 {
		return nil, fmt.Errorf("%w: series covers no time", domain.ErrInsufficientData)
	}

	changes := make([]float64, 0, len(series)-1)
	peak := 1 + series[0].Return
	maxDrawdown := 0.0
	for i := 1; i < len(series); i++ {
		prev := 1 + series[i-1].Return
		cur := 1 + series[i].Return
		if prev != 0 {
			changes = append(changes, cur/prev-1)
		}
		peak = math.Max(peak, cur)
		if peak > 0 {
			maxDrawdown = math.Max(maxDrawdown, (peak-cur)/peak)
		}
	}

	stdev, err := stats.StandardDeviationSample(changes)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}

	total := series[len(series)-1].Return
	annualizedReturn := math.Pow(1+total, 365/numDays) - 1

	return &GroupMetrics{
		TotalReturn:      total,
		AnnualizedReturn: annualizedReturn,
		AnnualizedStdev:  stdev * math.Sqrt(252),
		MaxDrawdown:      maxDrawdown,
	}, nil
}
