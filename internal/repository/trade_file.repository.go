package repository

import (
	"context"
	"fmt"
	"io"
	"perftracker/internal/domain"
	"perftracker/internal/logger"
	"perftracker/internal/util"

	"github.com/gocarina/gocsv"
)

// column names follow the spreadsheet people already keep
type tradeRow struct {
	Symbol       string `csv:"Symbol"`
	PurchaseDate string `csv:"Purchase Date"`
	SellDate     string `csv:"Sell Date"`
	Score        string `csv:"Score"`
}

type TradeFileRepository interface {
	Parse(ctx context.Context, in io.Reader) ([]domain.TradeRow, error)
}

type tradeFileRepositoryHandler struct{}

func NewTradeFileRepository() TradeFileRepository {
	return tradeFileRepositoryHandler{}
}

// Parse reads a trade sheet. a bad date cell is recorded on its row so
// the record gets rejected downstream instead of failing the whole file
func (h tradeFileRepositoryHandler) Parse(ctx context.Context, in io.Reader) ([]domain.TradeRow, error) {
	log := logger.FromContext(ctx)

	rows := []tradeRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("failed to read trade csv: %w", err)
	}

	out := make([]domain.TradeRow, 0, len(rows))
	for i, row := range rows {
		// header is line 1
		lineNumber := i + 2

		parseError := ""
		purchaseDate, err := util.ParseOptionalDate(row.PurchaseDate)
		if err != nil {
			parseError = "unreadable purchase date: " + err.Error()
		}
		sellDate, err := util.ParseOptionalDate(row.SellDate)
		if err != nil && parseError == "" {
			parseError = "unreadable sell date: " + err.Error()
		}
		if parseError != "" {
			log.Warnf("row %d: %s", lineNumber, parseError)
		}

		out = append(out, domain.TradeRow{
			Row:          lineNumber,
			Symbol:       row.Symbol,
			PurchaseDate: purchaseDate,
			SellDate:     sellDate,
			Score:        row.Score,
			ParseError:   parseError,
		})
	}

	return out, nil
}
