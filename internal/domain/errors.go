package domain

import "errors"

var (
	// ErrMalformedRecord marks an ingested row that cannot become a trade
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMissingData marks a trade or benchmark with no usable prices
	ErrMissingData = errors.New("missing data")
	// ErrInvalidSeries marks a price series that cannot be normalized
	ErrInvalidSeries = errors.New("invalid series")
	// ErrNoData is returned by price providers when nothing is available
	// for the requested symbol and range
	ErrNoData = errors.New("no data")
	// ErrInsufficientData is returned when a series is too short for metrics
	ErrInsufficientData = errors.New("insufficient data")
)
