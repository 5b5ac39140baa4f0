package calculator

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// OutperformanceDelta is how far the group ended above the benchmark,
// in percentage points
func OutperformanceDelta(groupTerminal, benchmarkTerminal float64) float64 {
	return decimal.NewFromFloat(groupTerminal).
		Sub(decimal.NewFromFloat(benchmarkTerminal)).
		Mul(hundred).
		InexactFloat64()
}
