package l2_service

import (
	"context"
	"fmt"
	"perftracker/internal/calculator"
	"perftracker/internal/domain"
	"perftracker/internal/repository"
	"time"
)

type PositionService interface {
	Evaluate(ctx context.Context, trade domain.TradeRecord, today time.Time) (domain.ReturnSeries, error)
}

type positionServiceHandler struct {
	PriceRepository repository.PriceSeriesRepository
}

func NewPositionService(priceRepository repository.PriceSeriesRepository) PositionService {
	return positionServiceHandler{
		PriceRepository: priceRepository,
	}
}

// Evaluate returns the trade's cumulative return over its holding
// window. any problem getting usable prices is reported as
// domain.ErrMissingData
func (h positionServiceHandler) Evaluate(ctx context.Context, trade domain.TradeRecord, today time.Time) (domain.ReturnSeries, error) {
	end := trade.EffectiveEnd(today)
	window := fmt.Sprintf("%s between %s and %s", trade.Symbol, trade.PurchaseDate.Format(time.DateOnly), end.Format(time.DateOnly))

	prices, err := h.PriceRepository.List(ctx, trade.Symbol, trade.PurchaseDate, end)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get prices for %s: %w", domain.ErrMissingData, window, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: no prices for %s", domain.ErrMissingData, window)
	}

	returns, err := calculator.NormalizeReturns(prices)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMissingData, err)
	}

	return returns, nil
}
