// Package main provides the salarystats command line tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/salarystats/internal/collector"
	"github.com/avolkov/salarystats/internal/config"
	"github.com/avolkov/salarystats/internal/fetchers"
	"github.com/avolkov/salarystats/internal/presenter"
)

var (
	flagLanguages []string
	flagArea      int
	flagTown      int
	flagLocation  string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "salarystats",
	Short: "Programming-language salary statistics from job boards",
	Long: "salarystats queries the HeadHunter and SuperJob search APIs for a list of\n" +
		"programming languages, estimates a ruble salary per vacancy and prints a\n" +
		"per-language statistics table for each platform.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringSliceVar(&flagLanguages, "languages", nil, "languages to query (default: LANGUAGES env or built-in list)")
	rootCmd.Flags().IntVar(&flagArea, "hh-area", 0, "HeadHunter area code (default: HH_AREA env or 1, Moscow)")
	rootCmd.Flags().IntVar(&flagTown, "sj-town", 0, "SuperJob town code (default: SJ_TOWN env or 4, Moscow)")
	rootCmd.Flags().StringVar(&flagLocation, "location", "Moscow", "location label used in table titles")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if len(flagLanguages) > 0 {
		cfg.Languages = flagLanguages
	}
	if cmd.Flags().Changed("hh-area") {
		cfg.HeadHunter.Area = flagArea
	}
	if cmd.Flags().Changed("sj-town") {
		cfg.SuperJob.Town = flagTown
	}

	headHunter := fetchers.NewHeadHunter(
		cfg.HeadHunter.BaseURL,
		cfg.HeadHunter.Area,
		cfg.PageSize,
		cfg.Timeout,
	)
	superJob, err := fetchers.NewSuperJob(
		cfg.SuperJob.BaseURL,
		cfg.SuperJob.Secret,
		cfg.SuperJob.Town,
		cfg.PageSize,
		cfg.Timeout,
	)
	if err != nil {
		return err
	}

	col := collector.New(cfg.Languages)

	// One platform at a time: every language is fetched fully before the
	// next platform starts.
	for _, fetcher := range []fetchers.Fetcher{headHunter, superJob} {
		report, err := col.Run(cmd.Context(), fetcher)
		if err != nil {
			return err
		}
		presenter.Render(os.Stdout, fmt.Sprintf("%s %s", fetcher.Name(), flagLocation), report)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
