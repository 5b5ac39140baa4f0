package l2_service

import (
	"context"
	"fmt"
	"perftracker/internal/calculator"
	"perftracker/internal/domain"
	"perftracker/internal/logger"
	"perftracker/internal/repository"
	"time"
)

type BenchmarkService interface {
	Compare(ctx context.Context, group domain.ScoreGroup, benchmarks []domain.Benchmark) ([]domain.BenchmarkDelta, []domain.DroppedItem)
	GetIntraPeriodChange(ctx context.Context, symbol string, start, end time.Time) (domain.ReturnSeries, error)
}

type benchmarkServiceHandler struct {
	PriceRepository repository.PriceSeriesRepository
}

func NewBenchmarkService(priceRepository repository.PriceSeriesRepository) BenchmarkService {
	return benchmarkServiceHandler{
		PriceRepository: priceRepository,
	}
}

// GetIntraPeriodChange gets historic prices for an asset
// and converts them to cumulative change from start
func (h benchmarkServiceHandler) GetIntraPeriodChange(ctx context.Context, symbol string, start, end time.Time) (domain.ReturnSeries, error) {
	prices, err := h.PriceRepository.List(ctx, symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get prices for %s: %w", domain.ErrMissingData, symbol, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: no prices found for symbol %s between %v and %v", domain.ErrMissingData, symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	returns, err := calculator.NormalizeReturns(prices)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMissingData, err)
	}
	return returns, nil
}

// Compare measures the group's terminal return against each benchmark
// over the group's span. benchmarks without data are left out and
// reported as dropped
func (h benchmarkServiceHandler) Compare(ctx context.Context, group domain.ScoreGroup, benchmarks []domain.Benchmark) ([]domain.BenchmarkDelta, []domain.DroppedItem) {
	log := logger.FromContext(ctx)

	out := []domain.BenchmarkDelta{}
	dropped := []domain.DroppedItem{}

	groupTerminal, ok := group.Average.Terminal()
	start, end, hasSpan := group.Span()
	if !ok || !hasSpan {
		return out, dropped
	}

	for _, b := range benchmarks {
		returns, err := h.GetIntraPeriodChange(ctx, b.Symbol, start, end)
		if err != nil {
			log.Warnf("omitting %s from score %s comparison: %s", b.Name, group.Score, err.Error())
			dropped = append(dropped, domain.DroppedItem{
				Kind:   domain.DroppedKind_Benchmark,
				Symbol: b.Symbol,
				Score:  group.Score,
				Reason: err.Error(),
			})
			continue
		}

		benchmarkTerminal, _ := returns.Terminal()
		out = append(out, domain.BenchmarkDelta{
			Benchmark:             b,
			Returns:               returns,
			DeltaPercentagePoints: calculator.OutperformanceDelta(groupTerminal, benchmarkTerminal),
		})
	}

	return out, dropped
}
