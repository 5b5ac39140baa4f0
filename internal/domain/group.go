package domain

import "time"

type EvaluatedTrade struct {
	Trade   TradeRecord
	Returns ReturnSeries
}

type ScoreGroup struct {
	Score   string
	Members []EvaluatedTrade
	Average ReturnSeries
}

// Span is the window benchmarks are compared over: earliest purchase
// in the group through the last date the group has an observation
func (g ScoreGroup) Span() (start, end time.Time, ok bool) {
	if len(g.Members) == 0 || len(g.Average) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start = g.Members[0].Trade.PurchaseDate
	for _, m := range g.Members[1:] {
		if m.Trade.PurchaseDate.Before(start) {
			start = m.Trade.PurchaseDate
		}
	}
	end, _ = g.Average.End()
	return start, end, true
}

type Benchmark struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// DefaultBenchmarks are the major US indices
func DefaultBenchmarks() []Benchmark {
	return []Benchmark{
		{Name: "S&P 500", Symbol: "^GSPC"},
		{Name: "Dow Jones", Symbol: "^DJI"},
		{Name: "NASDAQ", Symbol: "^IXIC"},
	}
}

type BenchmarkDelta struct {
	Benchmark             Benchmark    `json:"benchmark"`
	Returns               ReturnSeries `json:"returns"`
	DeltaPercentagePoints float64      `json:"deltaPercentagePoints"`
}

type DroppedKind string

const (
	DroppedKind_Record    DroppedKind = "record"
	DroppedKind_Trade     DroppedKind = "trade"
	DroppedKind_Benchmark DroppedKind = "benchmark"
)

type DroppedItem struct {
	Kind   DroppedKind `json:"kind"`
	Row    int         `json:"row,omitempty"`
	Symbol string      `json:"symbol,omitempty"`
	Score  string      `json:"score,omitempty"`
	Reason string      `json:"reason"`
}
