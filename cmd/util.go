package cmd

import (
	"database/sql"
	"fmt"
	"perftracker/api"
	"perftracker/internal/repository"
	l1_service "perftracker/internal/service/l1"
	l2_service "perftracker/internal/service/l2"
	l3_service "perftracker/internal/service/l3"
	"perftracker/internal/util"
	"time"

	_ "github.com/lib/pq"
)

type Dependencies struct {
	Config          *util.Config
	Db              *sql.DB
	PriceRepository repository.PriceSeriesRepository
	TrackerService  l3_service.TrackerService
	ApiHandler      *api.ApiHandler
}

func CloseDependencies(deps *Dependencies) error {
	if deps == nil || deps.Db == nil {
		return nil
	}
	if err := deps.Db.Close(); err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

func openDb(cfg *util.Config) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", cfg.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return dbConn, nil
}

func newPriceRepository(cfg *util.Config, dbConn *sql.DB) (repository.PriceSeriesRepository, error) {
	timeout := time.Duration(cfg.FetchTimeoutSeconds) * time.Second

	switch cfg.Provider {
	case util.ProviderYahoo:
		return repository.NewYahooPriceRepository(timeout), nil
	case util.ProviderAlpaca:
		return repository.NewAlpacaPriceRepository(cfg.Alpaca.ApiKey, cfg.Alpaca.ApiSecret, cfg.Alpaca.Endpoint, timeout), nil
	case util.ProviderPostgres:
		return repository.NewAdjustedPriceRepository(dbConn), nil
	case util.ProviderCsv:
		return repository.NewCsvPriceRepositoryFromFile(cfg.PricesFile)
	}
	return nil, fmt.Errorf("unknown price provider %q", cfg.Provider)
}

func InitializeDependencies(cfg *util.Config) (*Dependencies, error) {
	var dbConn *sql.DB
	if cfg.Provider == util.ProviderPostgres {
		var err error
		dbConn, err = openDb(cfg)
		if err != nil {
			return nil, err
		}
	}

	priceRepository, err := newPriceRepository(cfg, dbConn)
	if err != nil {
		if dbConn != nil {
			dbConn.Close()
		}
		return nil, fmt.Errorf("failed to initialize price provider: %w", err)
	}

	trackerService := l3_service.NewTrackerService(priceRepository, cfg.Benchmarks)
	apiHandler := &api.ApiHandler{
		TrackerService:   trackerService,
		BenchmarkService: l2_service.NewBenchmarkService(priceRepository),
		Benchmarks:       cfg.Benchmarks,
	}

	return &Dependencies{
		Config:          cfg,
		Db:              dbConn,
		PriceRepository: priceRepository,
		TrackerService:  trackerService,
		ApiHandler:      apiHandler,
	}, nil
}

// InitializeIngest wires yahoo prices into the adjusted_price table. the
// caller closes the returned db
func InitializeIngest(cfg *util.Config) (l1_service.IngestService, *sql.DB, error) {
	dbConn, err := openDb(cfg)
	if err != nil {
		return nil, nil, err
	}
	timeout := time.Duration(cfg.FetchTimeoutSeconds) * time.Second

	ingestService := l1_service.NewIngestService(
		dbConn,
		repository.NewYahooPriceRepository(timeout),
		repository.NewAdjustedPriceRepository(dbConn),
	)
	return ingestService, dbConn, nil
}
