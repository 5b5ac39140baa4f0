package l2_service

import (
	"perftracker/internal/calculator"
	"perftracker/internal/domain"
	"sort"
	"strconv"
	"strings"
)

// scoreKeys maps each score to its group key. when every score is a
// number, equal numbers share a key ("3" and "3.0" both become "3");
// otherwise scores are grouped as written
func scoreKeys(trades []domain.EvaluatedTrade) map[string]string {
	keys := map[string]string{}
	numeric := map[string]float64{}
	for _, t := range trades {
		f, err := strconv.ParseFloat(t.Trade.Score, 64)
		if err != nil {
			for _, t := range trades {
				keys[t.Trade.Score] = t.Trade.Score
			}
			return keys
		}
		numeric[t.Trade.Score] = f
	}
	for score, f := range numeric {
		keys[score] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return keys
}

// GroupByScore partitions evaluated trades by score and builds each
// group's average curve. groups come back in score order, members in
// the order they were given
func GroupByScore(trades []domain.EvaluatedTrade) []domain.ScoreGroup {
	keys := scoreKeys(trades)
	byScore := map[string][]domain.EvaluatedTrade{}
	for _, t := range trades {
		key := keys[t.Trade.Score]
		byScore[key] = append(byScore[key], t)
	}

	scores := make([]string, 0, len(byScore))
	for score := range byScore {
		scores = append(scores, score)
	}
	sort.Slice(scores, func(i, j int) bool {
		return CompareScores(scores[i], scores[j]) < 0
	})

	out := make([]domain.ScoreGroup, 0, len(scores))
	for _, score := range scores {
		members := byScore[score]
		series := make([]domain.ReturnSeries, 0, len(members))
		for _, m := range members {
			series = append(series, m.Returns)
		}
		out = append(out, domain.ScoreGroup{
			Score:   score,
			Members: members,
			Average: calculator.AverageReturns(series),
		})
	}

	return out
}

// CompareScores orders numeric scores by value and anything else
// lexicographically. numbers sort before labels
func CompareScores(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if fa < fb {
			return -1
		} else if fa > fb {
			return 1
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
