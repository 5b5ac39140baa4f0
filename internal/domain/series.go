package domain

import (
	"sort"
	"time"
)

type ReturnPoint struct {
	Date   time.Time `json:"date"`
	Return float64   `json:"return"`
}

// ReturnSeries is a cumulative-return curve. the first point is
// always 0 and dates are strictly increasing
type ReturnSeries []ReturnPoint

func (r ReturnSeries) Start() (time.Time, bool) {
	if len(r) == 0 {
		return time.Time{}, false
	}
	return r[0].Date, true
}

func (r ReturnSeries) End() (time.Time, bool) {
	if len(r) == 0 {
		return time.Time{}, false
	}
	return r[len(r)-1].Date, true
}

// Terminal is the value on the last date of the series
func (r ReturnSeries) Terminal() (float64, bool) {
	if len(r) == 0 {
		return 0, false
	}
	return r[len(r)-1].Return, true
}

// ValueAsOf returns the last known value on or before date. ok is
// false if the series has not started yet
func (r ReturnSeries) ValueAsOf(date time.Time) (value float64, ok bool) {
	// first index strictly after date
	i := sort.Search(len(r), func(i int) bool {
		return r[i].Date.After(date)
	})
	if i == 0 {
		return 0, false
	}
	return r[i-1].Return, true
}
