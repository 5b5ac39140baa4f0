package api

import (
	"errors"
	"fmt"
	"perftracker/internal/domain"
	"perftracker/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type benchmarkResponse map[string]float64

type benchmarkRequest struct {
	Symbol      string `json:"symbol"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Granularity string `json:"granularity"`
}

func (h ApiHandler) benchmark(c *gin.Context) {
	var requestBody benchmarkRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJsonCode(fmt.Errorf("missing symbol"), c, 400)
		return
	}

	start, err := util.ParseDate(requestBody.Start)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := util.ParseDate(requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	granularity := time.Hour * 24
	if requestBody.Granularity == "weekly" {
		granularity *= 7
	} else if requestBody.Granularity == "monthly" {
		granularity *= 30
	}

	results, err := h.BenchmarkService.GetIntraPeriodChange(
		c.Request.Context(),
		requestBody.Symbol,
		start,
		end,
	)
	if errors.Is(err, domain.ErrMissingData) {
		returnErrorJsonCode(err, c, 404)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := benchmarkResponse{}
	for date, change := range sampleChange(results, granularity) {
		out[date.Format(time.DateOnly)] = change
	}

	c.JSON(200, out)
}

// sampleChange keeps the first point and then one point per
// granularity step, as percent change from the start
func sampleChange(returns domain.ReturnSeries, granularity time.Duration) map[time.Time]float64 {
	out := map[time.Time]float64{}
	if len(returns) == 0 {
		return out
	}

	hundred := decimal.NewFromInt(100)
	out[returns[0].Date] = 0
	nextTarget := returns[0].Date.Add(granularity)
	for _, p := range returns[1:] {
		for nextTarget.Before(p.Date) {
			nextTarget = nextTarget.Add(24 * time.Hour)
		}
		if p.Date.Equal(nextTarget) {
			out[p.Date] = hundred.Mul(decimal.NewFromFloat(p.Return)).InexactFloat64()
			nextTarget = nextTarget.Add(granularity)
		}
	}

	return out
}
