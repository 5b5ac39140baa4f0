package repository

import (
	"context"
	"database/sql"
	"fmt"
	"perftracker/internal/db/models/postgres/public/model"
	. "perftracker/internal/db/models/postgres/public/table"
	"perftracker/internal/domain"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type AdjustedPriceRepository interface {
	PriceSeriesRepository
	Add(ctx context.Context, tx qrm.Executable, adjPrices []model.AdjustedPrice) error
	LatestDate(ctx context.Context, symbol string) (*time.Time, error)
}

type adjustedPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return adjustedPriceRepositoryHandler{
		Db: db,
	}
}

// Add upserts prices, replacing the stored price for an existing
// symbol and date
func (h adjustedPriceRepositoryHandler) Add(ctx context.Context, tx qrm.Executable, adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}
	query := addQuery(adjPrices)

	_, err := query.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

func addQuery(adjPrices []model.AdjustedPrice) InsertStatement {
	return AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
		),
	)
}

func listQuery(symbol string, start, end time.Time) SelectStatement {
	return AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())
}

func (h adjustedPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	query := listQuery(symbol, start, end)

	result := []model.AdjustedPrice{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil && err != qrm.ErrNoRows {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return inRange(symbol, out, start, end)
}

func (h adjustedPriceRepositoryHandler) LatestDate(ctx context.Context, symbol string) (*time.Time, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(AdjustedPrice.Symbol.EQ(String(symbol))).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err == qrm.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}

	return &result.Date, nil
}
