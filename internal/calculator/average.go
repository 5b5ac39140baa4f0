package calculator

import (
	"perftracker/internal/domain"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// unionDates is the sorted, de-duplicated set of every date observed
// across the series
func unionDates(series []domain.ReturnSeries) []time.Time {
	seen := map[string]bool{}
	out := []time.Time{}
	for _, s := range series {
		for _, p := range s {
			key := p.Date.Format(time.DateOnly)
			if !seen[key] {
				seen[key] = true
				out = append(out, p.Date)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}

// AverageReturns aligns member curves on the union of their dates. on
// each date it averages the last known value of every member that has
// started by then. members that have not started yet are left out of
// the denominator rather than counted as zero
func AverageReturns(series []domain.ReturnSeries) domain.ReturnSeries {
	dates := unionDates(series)
	out := make(domain.ReturnSeries, 0, len(dates))

	values := make([]float64, 0, len(series))
	for _, date := range dates {
		values = values[:0]
		for _, s := range series {
			if v, ok := s.ValueAsOf(date); ok {
				values = append(values, v)
			}
		}
		// every union date belongs to at least one member
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		out = append(out, domain.ReturnPoint{
			Date:   date,
			Return: mean,
		})
	}

	return out
}
