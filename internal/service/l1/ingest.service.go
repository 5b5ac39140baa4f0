package l1_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"perftracker/internal/db/models/postgres/public/model"
	"perftracker/internal/domain"
	"perftracker/internal/logger"
	"perftracker/internal/repository"
	"perftracker/internal/util"
	"time"
)

type IngestService interface {
	// IngestPrices copies prices for each symbol from the source into the
	// adjusted_price table. onDone is called once per symbol
	IngestPrices(ctx context.Context, symbols []string, start time.Time, onDone func(symbol string, err error)) error
}

type ingestServiceHandler struct {
	Db                 *sql.DB
	Source             repository.PriceSeriesRepository
	AdjPriceRepository repository.AdjustedPriceRepository
}

func NewIngestService(db *sql.DB, source repository.PriceSeriesRepository, adjPriceRepository repository.AdjustedPriceRepository) IngestService {
	return ingestServiceHandler{
		Db:                 db,
		Source:             source,
		AdjPriceRepository: adjPriceRepository,
	}
}

func (h ingestServiceHandler) IngestPrices(ctx context.Context, symbols []string, start time.Time, onDone func(symbol string, err error)) error {
	log := logger.FromContext(ctx)

	numFailed := 0
	for _, symbol := range symbols {
		err := h.ingestSymbol(ctx, symbol, start)
		if err != nil {
			numFailed++
			log.Warnf("failed to ingest prices for %s: %s", symbol, err.Error())
		}
		if onDone != nil {
			onDone(symbol, err)
		}
	}

	if numFailed == len(symbols) && numFailed > 0 {
		return fmt.Errorf("failed to ingest prices for all %d symbols", numFailed)
	}
	return nil
}

func (h ingestServiceHandler) ingestSymbol(ctx context.Context, symbol string, start time.Time) error {
	// resume from the last stored day instead of refetching history
	latest, err := h.AdjPriceRepository.LatestDate(ctx, symbol)
	if err != nil {
		return err
	}
	if latest != nil && latest.After(start) {
		start = *latest
	}

	prices, err := h.Source.List(ctx, symbol, start, util.Today())
	if errors.Is(err, domain.ErrNoData) {
		return nil
	}
	if err != nil {
		return err
	}

	models := make([]model.AdjustedPrice, 0, len(prices))
	now := time.Now().UTC()
	for _, p := range prices {
		models = append(models, model.AdjustedPrice{
			Symbol:    symbol,
			Date:      p.Date,
			Price:     p.Price,
			CreatedAt: now,
		})
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := h.AdjPriceRepository.Add(ctx, tx, models); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit prices for %s: %w", symbol, err)
	}
	return nil
}
