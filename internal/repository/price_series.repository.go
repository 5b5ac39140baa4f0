package repository

import (
	"context"
	"perftracker/internal/domain"
	"time"
)

// PriceSeriesRepository supplies daily closes for a symbol over the
// inclusive range [start, end]. implementations return domain.ErrNoData
// when nothing is available and must bound their own latency
type PriceSeriesRepository interface {
	List(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error)
}

func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// inRange keeps prices whose day falls within [start, end] and returns
// the cleaned series, or ErrNoData
func inRange(symbol string, prices []domain.AssetPrice, start, end time.Time) (domain.PriceSeries, error) {
	start, end = toDay(start), toDay(end)
	kept := []domain.AssetPrice{}
	for _, p := range prices {
		day := toDay(p.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		p.Date = day
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, &noDataError{symbol: symbol, start: start, end: end}
	}
	return domain.NewPriceSeries(kept), nil
}

type noDataError struct {
	symbol     string
	start, end time.Time
}

func (e *noDataError) Error() string {
	return "no prices found for symbol " + e.symbol + " between " + e.start.Format(time.DateOnly) + " and " + e.end.Format(time.DateOnly)
}

func (e *noDataError) Unwrap() error {
	return domain.ErrNoData
}
