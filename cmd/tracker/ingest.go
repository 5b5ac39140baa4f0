package main

import (
	"fmt"
	"perftracker/cmd"
	"perftracker/internal/util"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var ingestStart string

var ingestCmd = &cobra.Command{
	Use:   "ingest SYMBOL...",
	Short: "Copy daily adjusted closes from yahoo into postgres",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestStart, "start", "2000-01-01", "first day to fetch for symbols with no stored prices")
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Ingesting prices..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func runIngest(c *cobra.Command, args []string) error {
	start, err := util.ParseDate(ingestStart)
	if err != nil {
		return fmt.Errorf("failed to parse --start: %w", err)
	}
	cfg, err := util.LoadConfig(configPath)
	if err != nil {
		return err
	}
	ingestService, dbConn, err := cmd.InitializeIngest(cfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	symbols := make([]string, 0, len(args))
	for _, a := range args {
		symbols = append(symbols, strings.ToUpper(strings.TrimSpace(a)))
	}

	bar := initProgressBar(len(symbols))
	failed := []string{}
	err = ingestService.IngestPrices(c.Context(), symbols, start, func(symbol string, err error) {
		if err != nil {
			failed = append(failed, symbol)
		}
		bar.Describe(fmt.Sprintf("Ingesting prices... %s", symbol))
		bar.Add(1)
	})
	bar.Finish()
	fmt.Fprintln(c.OutOrStdout())

	if len(failed) > 0 {
		fmt.Fprintf(c.OutOrStdout(), "failed: %s\n", strings.Join(failed, ", "))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.OutOrStdout(), "ingested %d symbols as of %s\n", len(symbols)-len(failed), time.Now().Format(time.DateOnly))
	return nil
}
