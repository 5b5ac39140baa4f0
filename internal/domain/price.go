package domain

import (
	"sort"
	"time"
)

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// PriceSeries is a symbol's daily closes in strictly increasing
// date order. non-trading days are simply absent
type PriceSeries []AssetPrice

// NewPriceSeries sorts provider output by date and drops duplicated
// days, keeping the last price seen for a day
func NewPriceSeries(prices []AssetPrice) PriceSeries {
	byDay := map[string]AssetPrice{}
	for _, p := range prices {
		byDay[p.Date.Format(time.DateOnly)] = p
	}

	out := make(PriceSeries, 0, len(byDay))
	for _, p := range byDay {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}
