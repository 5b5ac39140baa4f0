package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"perftracker/internal/domain"
	"perftracker/internal/presenter"
	l3_service "perftracker/internal/service/l3"
	"perftracker/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// looseString accepts "3" or 3
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = looseString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*s = looseString(n.String())
	return nil
}

type trackTrade struct {
	Symbol       string      `json:"symbol"`
	PurchaseDate string      `json:"purchaseDate"`
	SellDate     string      `json:"sellDate"`
	Score        looseString `json:"score"`
}

type trackRequest struct {
	Trades     []trackTrade         `json:"trades"`
	Today      string               `json:"today"`
	Benchmarks []domain.Benchmark   `json:"benchmarks"`
	Selection  *presenter.Selection `json:"selection"`
}

type trackResponse struct {
	*l3_service.TrackResult
	Summaries []string `json:"summaries"`
}

func (t trackTrade) toRow(row int) domain.TradeRow {
	out := domain.TradeRow{
		Row:    row,
		Symbol: strings.TrimSpace(t.Symbol),
		Score:  strings.TrimSpace(string(t.Score)),
	}
	problems := []string{}
	purchase, err := util.ParseOptionalDate(t.PurchaseDate)
	if err != nil {
		problems = append(problems, "purchase date: "+err.Error())
	}
	sell, err := util.ParseOptionalDate(t.SellDate)
	if err != nil {
		problems = append(problems, "sell date: "+err.Error())
	}
	out.PurchaseDate = purchase
	out.SellDate = sell
	out.ParseError = strings.Join(problems, "; ")
	return out
}

func (m ApiHandler) track(c *gin.Context) {
	var requestBody trackRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	in := l3_service.TrackInput{
		Rows:       make([]domain.TradeRow, 0, len(requestBody.Trades)),
		Benchmarks: requestBody.Benchmarks,
	}
	if len(in.Benchmarks) == 0 {
		in.Benchmarks = m.Benchmarks
	}
	for i, t := range requestBody.Trades {
		in.Rows = append(in.Rows, t.toRow(i+1))
	}
	if requestBody.Today != "" {
		today, err := util.ParseDate(requestBody.Today)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to parse today: %w", err), c, 400)
			return
		}
		in.Today = today
	}

	sel := presenter.Selection{}
	if requestBody.Selection != nil {
		sel = *requestBody.Selection
	}

	profile, endProfile := domain.NewProfile()
	ctx := domain.ContextWithProfile(c.Request.Context(), profile)
	result, err := m.TrackerService.Track(ctx, in)
	endProfile()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	groups, err := sel.Groups(result)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	summaries := make([]string, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, presenter.Summary(g, sel))
	}

	c.JSON(200, trackResponse{
		TrackResult: result,
		Summaries:   summaries,
	})
}
