package l1_service

import (
	"context"
	"perftracker/internal/domain"
	"perftracker/internal/repository"
	"time"
)

/**

one PriceCache lives for exactly one tracking run. trades in the same
group often share a window with each other or with a benchmark, so the
same (symbol, start, end) gets asked for more than once. we only go to
the provider the first time and replay the result (including a failure)
after that

no locking: a run is single threaded

*/

type cacheKey struct {
	symbol string
	start  string
	end    string
}

type cacheEntry struct {
	prices domain.PriceSeries
	err    error
}

type PriceCache struct {
	provider repository.PriceSeriesRepository
	entries  map[cacheKey]cacheEntry

	hits   int
	misses int
}

func NewPriceCache(provider repository.PriceSeriesRepository) *PriceCache {
	return &PriceCache{
		provider: provider,
		entries:  map[cacheKey]cacheEntry{},
	}
}

// List satisfies repository.PriceSeriesRepository so the cache can sit
// in front of any provider
func (pc *PriceCache) List(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	key := cacheKey{
		symbol: symbol,
		start:  start.Format(time.DateOnly),
		end:    end.Format(time.DateOnly),
	}
	if entry, ok := pc.entries[key]; ok {
		pc.hits++
		return entry.prices, entry.err
	}

	pc.misses++
	prices, err := pc.provider.List(ctx, symbol, start, end)
	pc.entries[key] = cacheEntry{
		prices: prices,
		err:    err,
	}

	return prices, err
}

// Stats returns cache hits and misses for logging
func (pc *PriceCache) Stats() (hits, misses int) {
	return pc.hits, pc.misses
}
