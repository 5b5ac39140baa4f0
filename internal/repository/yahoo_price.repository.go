package repository

import (
	"context"
	"fmt"
	"perftracker/internal/domain"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type yahooPriceRepositoryHandler struct {
	Timeout time.Duration
}

// NewYahooPriceRepository reads daily adjusted closes from the Yahoo
// Finance chart API
func NewYahooPriceRepository(timeout time.Duration) PriceSeriesRepository {
	return yahooPriceRepositoryHandler{
		Timeout: timeout,
	}
}

func (h yahooPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	prices, err := withTimeout(ctx, h.Timeout, func() ([]domain.AssetPrice, error) {
		return fetchYahooPrices(symbol, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get yahoo prices for %s: %w", symbol, err)
	}

	return inRange(symbol, prices, start, end)
}

func fetchYahooPrices(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	s := toDay(start)
	// the chart api treats end as exclusive
	e := toDay(end).AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&s),
		End:      datetime.New(&e),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	for iter.Next() {
		bar := iter.Bar()
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Unix(int64(bar.Timestamp), 0),
			Price:  bar.AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// withTimeout runs a blocking client call that has no context support
// of its own. the call keeps running in the background if it is
// abandoned
func withTimeout(ctx context.Context, timeout time.Duration, fn func() ([]domain.AssetPrice, error)) ([]domain.AssetPrice, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		prices []domain.AssetPrice
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		prices, err := fn()
		ch <- result{prices, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch abandoned: %w", ctx.Err())
	case r := <-ch:
		return r.prices, r.err
	}
}
