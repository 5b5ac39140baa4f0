package calculator

import (
	"fmt"
	"math"
	"perftracker/internal/domain"
	"time"
)

// NormalizeReturns converts a price series into cumulative returns
// relative to its first price
func NormalizeReturns(prices domain.PriceSeries) (domain.ReturnSeries, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: empty price series", domain.ErrInvalidSeries)
	}
	for _, p := range prices {
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, fmt.Errorf(
				"%w: price of %s on %s is not finite",
				domain.ErrInvalidSeries,
				p.Symbol,
				p.Date.Format(time.DateOnly),
			)
		}
	}
	first := prices[0].Price
	if !(first > 0) {
		return nil, fmt.Errorf(
			"%w: first price of %s on %s is %f",
			domain.ErrInvalidSeries,
			prices[0].Symbol,
			prices[0].Date.Format(time.DateOnly),
			first,
		)
	}

	out := make(domain.ReturnSeries, len(prices))
	for i, p := range prices {
		out[i] = domain.ReturnPoint{
			Date:   p.Date,
			Return: p.Price/first - 1,
		}
	}
	// exact, regardless of float division
	out[0].Return = 0

	return out, nil
}
