package l3_service

import (
	"context"
	"errors"
	"fmt"
	"perftracker/internal/calculator"
	"perftracker/internal/domain"
	"perftracker/internal/logger"
	"perftracker/internal/repository"
	l1_service "perftracker/internal/service/l1"
	l2_service "perftracker/internal/service/l2"
	"perftracker/internal/util"
	"time"

	"github.com/google/uuid"
)

type TrackerService interface {
	Track(ctx context.Context, in TrackInput) (*TrackResult, error)
}

type TrackInput struct {
	Rows []domain.TradeRow
	// zero means today
	Today time.Time
	// empty means the configured defaults
	Benchmarks []domain.Benchmark
}

type MemberCurve struct {
	Symbol  string              `json:"symbol"`
	Returns domain.ReturnSeries `json:"returns"`
}

type GroupResult struct {
	Score      string                   `json:"score"`
	Members    []MemberCurve            `json:"members"`
	Average    domain.ReturnSeries      `json:"average"`
	Benchmarks []domain.BenchmarkDelta  `json:"benchmarks"`
	Metrics    *calculator.GroupMetrics `json:"metrics,omitempty"`
}

type TrackResult struct {
	RunID   uuid.UUID            `json:"runID"`
	Today   time.Time            `json:"today"`
	Groups  []GroupResult        `json:"groups"`
	Dropped []domain.DroppedItem `json:"dropped"`
	Profile *domain.Profile      `json:"profile,omitempty"`
}

type trackerServiceHandler struct {
	PriceRepository   repository.PriceSeriesRepository
	DefaultBenchmarks []domain.Benchmark
}

func NewTrackerService(priceRepository repository.PriceSeriesRepository, defaultBenchmarks []domain.Benchmark) TrackerService {
	if len(defaultBenchmarks) == 0 {
		defaultBenchmarks = domain.DefaultBenchmarks()
	}
	return trackerServiceHandler{
		PriceRepository:   priceRepository,
		DefaultBenchmarks: defaultBenchmarks,
	}
}

// Track runs one evaluation: validate rows, evaluate each trade, group
// by score and compare every group against the benchmarks. bad rows and
// symbols without data are dropped and listed, they never fail the run
func (h trackerServiceHandler) Track(ctx context.Context, in TrackInput) (*TrackResult, error) {
	if h.PriceRepository == nil {
		return nil, fmt.Errorf("failed to track: no price provider configured")
	}

	runID := uuid.New()
	log := logger.FromContext(ctx).With("runID", runID.String())
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	today := in.Today
	if today.IsZero() {
		today = util.Today()
	}
	benchmarks := in.Benchmarks
	if len(benchmarks) == 0 {
		benchmarks = h.DefaultBenchmarks
	}

	// scoped to this run only
	priceCache := l1_service.NewPriceCache(h.PriceRepository)
	positionService := l2_service.NewPositionService(priceCache)
	benchmarkService := l2_service.NewBenchmarkService(priceCache)

	dropped := []domain.DroppedItem{}

	profile.StartNewSpan("validating records")
	records := []domain.TradeRecord{}
	rowNumbers := []int{}
	for _, row := range in.Rows {
		record, err := row.ToRecord()
		if err != nil {
			log.Warnf("dropping row %d: %s", row.Row, err.Error())
			dropped = append(dropped, domain.DroppedItem{
				Kind:   domain.DroppedKind_Record,
				Row:    row.Row,
				Symbol: row.Symbol,
				Score:  row.Score,
				Reason: err.Error(),
			})
			continue
		}
		records = append(records, *record)
		rowNumbers = append(rowNumbers, row.Row)
	}

	profile.StartNewSpan("evaluating positions")
	evaluated := []domain.EvaluatedTrade{}
	for i, record := range records {
		returns, err := positionService.Evaluate(ctx, record, today)
		if err != nil {
			if !errors.Is(err, domain.ErrMissingData) {
				return nil, err
			}
			log.Warnf("dropping %s (score %s): %s", record.Symbol, record.Score, err.Error())
			dropped = append(dropped, domain.DroppedItem{
				Kind:   domain.DroppedKind_Trade,
				Row:    rowNumbers[i],
				Symbol: record.Symbol,
				Score:  record.Score,
				Reason: err.Error(),
			})
			continue
		}
		evaluated = append(evaluated, domain.EvaluatedTrade{
			Trade:   record,
			Returns: returns,
		})
	}

	profile.StartNewSpan("grouping")
	groups := l2_service.GroupByScore(evaluated)

	profile.StartNewSpan("comparing benchmarks")
	results := make([]GroupResult, 0, len(groups))
	for _, group := range groups {
		deltas, droppedBenchmarks := benchmarkService.Compare(ctx, group, benchmarks)
		dropped = append(dropped, droppedBenchmarks...)

		metrics, err := calculator.CalculateMetrics(group.Average)
		if err != nil {
			log.Debugf("no metrics for score %s: %s", group.Score, err.Error())
			metrics = nil
		}

		members := make([]MemberCurve, 0, len(group.Members))
		for _, m := range group.Members {
			members = append(members, MemberCurve{
				Symbol:  m.Trade.Symbol,
				Returns: m.Returns,
			})
		}

		results = append(results, GroupResult{
			Score:      group.Score,
			Members:    members,
			Average:    group.Average,
			Benchmarks: deltas,
			Metrics:    metrics,
		})
	}
	endProfile()

	hits, misses := priceCache.Stats()
	log.Infow("tracking run complete",
		"groups", len(results),
		"trades", len(evaluated),
		"dropped", len(dropped),
		"cacheHits", hits,
		"cacheMisses", misses,
	)

	return &TrackResult{
		RunID:   runID,
		Today:   today,
		Groups:  results,
		Dropped: dropped,
		Profile: profile,
	}, nil
}
