package domain

import (
	"fmt"
	"strings"
	"time"
)

// TradeRow is a row as it comes out of ingestion. any field may be
// missing or inconsistent
type TradeRow struct {
	Row          int        `json:"row"`
	Symbol       string     `json:"symbol"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	SellDate     *time.Time `json:"sellDate"`
	Score        string     `json:"score"`
	// set by ingestion when a cell could not be read
	ParseError string `json:"-"`
}

// TradeRecord is a validated trade. SellDate is nil while the
// position is still held
type TradeRecord struct {
	Symbol       string
	PurchaseDate time.Time
	SellDate     *time.Time
	Score        string
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewTradeRecord(symbol string, purchaseDate, sellDate *time.Time, score string) (*TradeRecord, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: missing symbol", ErrMalformedRecord)
	}
	if purchaseDate == nil || purchaseDate.IsZero() {
		return nil, fmt.Errorf("%w: %s has no purchase date", ErrMalformedRecord, symbol)
	}

	score = strings.TrimSpace(score)
	if score == "" {
		return nil, fmt.Errorf("%w: %s has a missing score", ErrMalformedRecord, symbol)
	}

	purchase := truncateToDay(*purchaseDate)
	var sell *time.Time
	if sellDate != nil && !sellDate.IsZero() {
		s := truncateToDay(*sellDate)
		if s.Before(purchase) {
			return nil, fmt.Errorf(
				"%w: %s sold on %s before purchase on %s",
				ErrMalformedRecord,
				symbol,
				s.Format(time.DateOnly),
				purchase.Format(time.DateOnly),
			)
		}
		sell = &s
	}

	return &TradeRecord{
		Symbol:       symbol,
		PurchaseDate: purchase,
		SellDate:     sell,
		Score:        score,
	}, nil
}

func (r TradeRow) ToRecord() (*TradeRecord, error) {
	if r.ParseError != "" {
		return nil, fmt.Errorf("%w: %s", ErrMalformedRecord, r.ParseError)
	}
	return NewTradeRecord(r.Symbol, r.PurchaseDate, r.SellDate, r.Score)
}

// EffectiveEnd is the sell date, or today for open positions
func (t TradeRecord) EffectiveEnd(today time.Time) time.Time {
	if t.SellDate != nil {
		return *t.SellDate
	}
	return truncateToDay(today)
}
