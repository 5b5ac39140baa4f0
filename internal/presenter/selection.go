package presenter

import (
	"fmt"
	"math"
	"perftracker/internal/domain"
	l3_service "perftracker/internal/service/l3"
	"strconv"
	"strings"

	"github.com/maja42/goval"
)

// Selection picks what gets shown. it never changes what was computed:
// every group and benchmark is in the TrackResult regardless
type Selection struct {
	// empty means every score
	Scores []string `json:"scores"`
	// benchmark names or symbols, empty means all of them
	Benchmarks []string `json:"benchmarks"`
	// optional boolean expression over score, scoreNum, members, terminal
	// e.g. `scoreNum >= 3 && terminal > 0`
	Where string `json:"where"`
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(strings.TrimSpace(x), v) {
			return true
		}
	}
	return false
}

func groupVariables(group l3_service.GroupResult) map[string]interface{} {
	scoreNum := math.NaN()
	if f, err := strconv.ParseFloat(group.Score, 64); err == nil {
		scoreNum = f
	}
	terminal, _ := group.Average.Terminal()

	return map[string]interface{}{
		"score":    group.Score,
		"scoreNum": scoreNum,
		"members":  len(group.Members),
		"terminal": terminal,
	}
}

// ShowGroup reports whether the group passes both the score list and
// the where expression
func (s Selection) ShowGroup(group l3_service.GroupResult) (bool, error) {
	if len(s.Scores) > 0 && !contains(s.Scores, group.Score) {
		return false, nil
	}
	if strings.TrimSpace(s.Where) == "" {
		return true, nil
	}

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(s.Where, groupVariables(group), nil)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate selection %q: %w", s.Where, err)
	}
	show, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("selection %q returned %T, expected bool", s.Where, result)
	}

	return show, nil
}

func (s Selection) ShowBenchmark(b domain.Benchmark) bool {
	if len(s.Benchmarks) == 0 {
		return true
	}
	return contains(s.Benchmarks, b.Name) || contains(s.Benchmarks, b.Symbol)
}

// Groups returns the groups to show, in result order
func (s Selection) Groups(result *l3_service.TrackResult) ([]l3_service.GroupResult, error) {
	out := []l3_service.GroupResult{}
	for _, g := range result.Groups {
		show, err := s.ShowGroup(g)
		if err != nil {
			return nil, err
		}
		if show {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s Selection) benchmarks(group l3_service.GroupResult) []domain.BenchmarkDelta {
	out := []domain.BenchmarkDelta{}
	for _, b := range group.Benchmarks {
		if s.ShowBenchmark(b.Benchmark) {
			out = append(out, b)
		}
	}
	return out
}
