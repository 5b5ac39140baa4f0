package repository

import (
	"context"
	"fmt"
	"perftracker/internal/domain"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type alpacaPriceRepositoryHandler struct {
	MdClient *marketdata.Client
	Timeout  time.Duration
}

// NewAlpacaPriceRepository reads daily bars from the Alpaca market data
// api. index symbols like ^GSPC are not served by alpaca, so benchmarks
// need to be configured as ETFs (SPY, DIA, QQQ)
func NewAlpacaPriceRepository(apiKey, apiSecret, endpoint string, timeout time.Duration) PriceSeriesRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaPriceRepositoryHandler{
		MdClient: mdClient,
		Timeout:  timeout,
	}
}

func (h alpacaPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	prices, err := withTimeout(ctx, h.Timeout, func() ([]domain.AssetPrice, error) {
		bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
			TimeFrame:  marketdata.OneDay,
			Adjustment: marketdata.All,
			Start:      toDay(start),
			End:        toDay(end).AddDate(0, 0, 1),
		})
		if err != nil {
			return nil, err
		}
		out := make([]domain.AssetPrice, 0, len(bars))
		for _, bar := range bars {
			out = append(out, domain.AssetPrice{
				Symbol: symbol,
				Date:   bar.Timestamp,
				Price:  bar.Close,
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get alpaca bars for %s: %w", symbol, err)
	}

	return inRange(symbol, prices, start, end)
}
