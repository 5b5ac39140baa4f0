package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"perftracker/internal/domain"
	"perftracker/internal/util"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

type priceRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

type csvPriceRepositoryHandler struct {
	prices map[string][]domain.AssetPrice
}

// NewCsvPriceRepository loads a date,symbol,price file into memory
func NewCsvPriceRepository(in io.Reader) (PriceSeriesRepository, error) {
	rows := []priceRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("failed to read price csv: %w", err)
	}

	prices := map[string][]domain.AssetPrice{}
	for i, row := range rows {
		date, err := util.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to read price csv row %d: %w", i+2, err)
		}
		symbol := strings.TrimSpace(row.Symbol)
		prices[symbol] = append(prices[symbol], domain.AssetPrice{
			Symbol: symbol,
			Date:   date,
			Price:  row.Price,
		})
	}

	return csvPriceRepositoryHandler{
		prices: prices,
	}, nil
}

func NewCsvPriceRepositoryFromFile(path string) (PriceSeriesRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file: %w", err)
	}
	defer f.Close()

	return NewCsvPriceRepository(f)
}

func (h csvPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	return inRange(symbol, h.prices[symbol], start, end)
}
