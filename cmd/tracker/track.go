package main

import (
	"fmt"
	"os"
	"perftracker/cmd"
	"perftracker/internal/domain"
	"perftracker/internal/presenter"
	"perftracker/internal/repository"
	l3_service "perftracker/internal/service/l3"
	"perftracker/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var trackFlags struct {
	trades     string
	today      string
	scores     []string
	benchmarks []string
	where      string
	csvOut     string
	plain      bool
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Evaluate a trades file and compare each score group with the benchmarks",
	RunE:  runTrack,
}

func init() {
	f := trackCmd.Flags()
	f.StringVar(&trackFlags.trades, "trades", "", "trades csv with Symbol, Purchase Date, Sell Date, Score columns")
	f.StringVar(&trackFlags.today, "today", "", "end date for open positions (default today)")
	f.StringArrayVar(&trackFlags.scores, "score", nil, "only show this score, repeatable")
	f.StringArrayVar(&trackFlags.benchmarks, "benchmark", nil, "only show this benchmark name or symbol, repeatable")
	f.StringVar(&trackFlags.where, "where", "", "only show groups matching this expression, e.g. 'scoreNum >= 3'")
	f.StringVar(&trackFlags.csvOut, "csv", "", "also write every curve to this csv file")
	f.BoolVar(&trackFlags.plain, "plain", false, "print raw markdown instead of styled output")
	trackCmd.MarkFlagRequired("trades")
}

func runTrack(c *cobra.Command, args []string) error {
	ctx := c.Context()
	log := zap.S()

	cfg, err := util.LoadConfig(configPath)
	if err != nil {
		return err
	}
	deps, err := cmd.InitializeDependencies(cfg)
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)

	in := l3_service.TrackInput{}
	if trackFlags.today != "" {
		in.Today, err = util.ParseDate(trackFlags.today)
		if err != nil {
			return fmt.Errorf("failed to parse --today: %w", err)
		}
	}

	f, err := os.Open(trackFlags.trades)
	if err != nil {
		return fmt.Errorf("failed to open trades file: %w", err)
	}
	defer f.Close()
	in.Rows, err = repository.NewTradeFileRepository().Parse(ctx, f)
	if err != nil {
		return err
	}

	profile, endProfile := domain.NewProfile()
	result, err := deps.TrackerService.Track(domain.ContextWithProfile(ctx, profile), in)
	endProfile()
	if err != nil {
		return err
	}
	for _, s := range profile.Spans {
		log.Debugw("span", "name", s.Name, "elapsedMs", s.Elapsed)
	}

	sel := presenter.Selection{
		Scores:     trackFlags.scores,
		Benchmarks: trackFlags.benchmarks,
		Where:      trackFlags.where,
	}
	if err := presenter.Render(c.OutOrStdout(), result, sel, !trackFlags.plain); err != nil {
		return err
	}

	if trackFlags.csvOut != "" {
		out, err := os.Create(trackFlags.csvOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", trackFlags.csvOut, err)
		}
		defer out.Close()
		if err := presenter.WriteCurvesCSV(out, result, sel); err != nil {
			return err
		}
	}

	return nil
}
