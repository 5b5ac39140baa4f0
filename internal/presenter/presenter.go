package presenter

import (
	"fmt"
	"io"
	"perftracker/internal/domain"
	l3_service "perftracker/internal/service/l3"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/gocarina/gocsv"
)

const wordWrap = 100

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// Summary is the one-line comparison for a group, e.g.
// "Score 3 stocks gained 10.00% more than the S&P 500."
func Summary(group l3_service.GroupResult, sel Selection) string {
	differences := []string{}
	for _, b := range sel.benchmarks(group) {
		differences = append(differences, fmt.Sprintf("%.2f%% more than the %s", b.DeltaPercentagePoints, b.Benchmark.Name))
	}
	if len(differences) == 0 {
		return fmt.Sprintf("Score %s stocks have no benchmark to compare against.", group.Score)
	}
	return fmt.Sprintf("Score %s stocks gained %s.", group.Score, strings.Join(differences, ", "))
}

func renderGroup(b *strings.Builder, group l3_service.GroupResult, sel Selection) {
	fmt.Fprintf(b, "## Score %s\n\n", group.Score)
	fmt.Fprintf(b, "%s\n\n", Summary(group, sel))

	fmt.Fprintln(b, "| Series | Start | End | Return |")
	fmt.Fprintln(b, "|:---|:---|:---|---:|")
	row := func(name string, series domain.ReturnSeries) {
		start, _ := series.Start()
		end, _ := series.End()
		terminal, _ := series.Terminal()
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			name,
			start.Format(time.DateOnly),
			end.Format(time.DateOnly),
			percent(terminal),
		)
	}
	for _, m := range group.Members {
		row(m.Symbol, m.Returns)
	}
	row("**Average**", group.Average)
	for _, bd := range sel.benchmarks(group) {
		row(bd.Benchmark.Name, bd.Returns)
	}
	fmt.Fprintln(b)

	if group.Metrics != nil {
		fmt.Fprintf(b, "Annualized return %s, annualized stdev %s, max drawdown %s\n\n",
			percent(group.Metrics.AnnualizedReturn),
			percent(group.Metrics.AnnualizedStdev),
			percent(group.Metrics.MaxDrawdown),
		)
	}
}

// Markdown renders the selected part of a run as a report
func Markdown(result *l3_service.TrackResult, sel Selection) (string, error) {
	groups, err := sel.Groups(result)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Performance as of %s\n\n", result.Today.Format(time.DateOnly))
	if len(groups) == 0 {
		fmt.Fprint(&b, "No score groups to show.\n\n")
	}
	for _, g := range groups {
		renderGroup(&b, g, sel)
	}

	if len(result.Dropped) > 0 {
		fmt.Fprint(&b, "## Dropped\n\n")
		fmt.Fprintln(&b, "| Kind | Row | Symbol | Score | Reason |")
		fmt.Fprintln(&b, "|:---|---:|:---|:---|:---|")
		for _, d := range result.Dropped {
			row := ""
			if d.Row > 0 {
				row = fmt.Sprintf("%d", d.Row)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", d.Kind, row, d.Symbol, d.Score, strings.ReplaceAll(d.Reason, "|", "/"))
		}
		fmt.Fprintln(&b)
	}

	return b.String(), nil
}

// Render writes the report to w, styled for a terminal when asked
func Render(w io.Writer, result *l3_service.TrackResult, sel Selection, styled bool) error {
	md, err := Markdown(result, sel)
	if err != nil {
		return err
	}
	if !styled {
		_, err = io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

type curveRow struct {
	Score  string  `csv:"score"`
	Series string  `csv:"series"`
	Date   string  `csv:"date"`
	Return float64 `csv:"return"`
}

func curveRows(score, name string, series domain.ReturnSeries) []curveRow {
	out := make([]curveRow, 0, len(series))
	for _, p := range series {
		out = append(out, curveRow{
			Score:  score,
			Series: name,
			Date:   p.Date.Format(time.DateOnly),
			Return: p.Return,
		})
	}
	return out
}

// WriteCurvesCSV writes every plotted curve in long format, one row per
// (score, series, date)
func WriteCurvesCSV(w io.Writer, result *l3_service.TrackResult, sel Selection) error {
	groups, err := sel.Groups(result)
	if err != nil {
		return err
	}

	rows := []curveRow{}
	for _, g := range groups {
		for _, m := range g.Members {
			rows = append(rows, curveRows(g.Score, m.Symbol, m.Returns)...)
		}
		rows = append(rows, curveRows(g.Score, "Average", g.Average)...)
		for _, b := range sel.benchmarks(g) {
			rows = append(rows, curveRows(g.Score, b.Benchmark.Name, b.Returns)...)
		}
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write curves: %w", err)
	}
	return nil
}
