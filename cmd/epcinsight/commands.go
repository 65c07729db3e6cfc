package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"epc-insight/db/postgres"
	"epc-insight/internal/features"
	"epc-insight/internal/ingest"
	"epc-insight/internal/pareto"
	"epc-insight/internal/recommend"
	"epc-insight/internal/report"
	"epc-insight/pkg/epc"
)

func metricFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "metric",
		Aliases: []string{"m"},
		Value:   string(epc.MetricCostSaved),
		Usage:   "Ranking metric (potential_cost_saved, co2_emissions_potential_difference, potential_energy_efficiency_difference)",
	}
}

func thresholdFlag() *cli.Float64Flag {
	return &cli.Float64Flag{
		Name:    "threshold",
		Aliases: []string{"t"},
		Value:   pareto.DefaultThresholdFraction,
		Usage:   "Cumulative share of the portfolio total used as the focus cutoff, in (0, 1]",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format (text, json)",
	}
}

// loadRecords reads the portfolio from the configured source.
func loadRecords(c *cli.Context) ([]epc.Record, error) {
	switch c.String("source") {
	case "csv":
		path := c.String("csv")
		if path == "" {
			return nil, fmt.Errorf("--csv is required with the csv source")
		}
		log.Info().Str("file", path).Msg("loading portfolio from CSV")
		return ingest.ReadCSVFile(path)
	case "postgres":
		cfg := postgres.ConfigFromEnv()
		log.Info().Str("host", cfg.Host).Str("table", cfg.Table).Msg("loading portfolio from Postgres")
		store, err := postgres.Open(cfg)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Records(context.Background())
	default:
		return nil, fmt.Errorf("unknown source %q", c.String("source"))
	}
}

// analyse runs the shared front half of every command: load, clean,
// derive, select.
func analyse(c *cli.Context) (*pareto.Selection, error) {
	metric, err := epc.ParseMetric(c.String("metric"))
	if err != nil {
		return nil, cli.Exit(err, ExitAnalysisError)
	}

	raw, err := loadRecords(c)
	if err != nil {
		return nil, cli.Exit(err, ExitIngestError)
	}

	records := features.Derive(epc.Clean(raw))
	sel, err := pareto.Select(records, metric, pareto.Options{
		ThresholdFraction: c.Float64("threshold"),
	})
	if err != nil {
		return nil, cli.Exit(err, ExitAnalysisError)
	}
	return sel, nil
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Run the full analysis and assemble the PDF report",
		Flags: []cli.Flag{metricFlag(), thresholdFlag(), formatFlag()},
		Action: func(c *cli.Context) error {
			metric, err := epc.ParseMetric(c.String("metric"))
			if err != nil {
				return cli.Exit(err, ExitAnalysisError)
			}

			raw, err := loadRecords(c)
			if err != nil {
				return cli.Exit(err, ExitIngestError)
			}

			gen := report.New(report.Options{
				OutDir:            c.String("out"),
				Metric:            metric,
				ThresholdFraction: c.Float64("threshold"),
			}, log)

			artifacts, err := gen.Run(raw)
			if err != nil {
				return cli.Exit(err, ExitRenderError)
			}

			if c.String("format") == "json" {
				return printJSON(artifacts)
			}
			printArtifacts(artifacts)
			return nil
		},
	}
}

func focusCommand() *cli.Command {
	return &cli.Command{
		Name:  "focus",
		Usage: "Rank the portfolio and print the focus subset",
		Flags: []cli.Flag{metricFlag(), thresholdFlag(), formatFlag()},
		Action: func(c *cli.Context) error {
			sel, err := analyse(c)
			if err != nil {
				return err
			}
			if c.String("format") == "json" {
				return printJSON(sel)
			}
			printSelection(sel)
			return nil
		},
	}
}

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Print retrofit recommendations for the focus subset",
		Flags: []cli.Flag{metricFlag(), thresholdFlag(), formatFlag()},
		Action: func(c *cli.Context) error {
			sel, err := analyse(c)
			if err != nil {
				return err
			}
			recs := recommend.Evaluate(sel.FocusRecords())
			if c.String("format") == "json" {
				return printJSON(recs)
			}
			fmt.Print(recommend.Render(recs))
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the portfolio, focus subset, and recommendations to an Excel workbook",
		Flags: []cli.Flag{metricFlag(), thresholdFlag()},
		Action: func(c *cli.Context) error {
			metric, err := epc.ParseMetric(c.String("metric"))
			if err != nil {
				return cli.Exit(err, ExitAnalysisError)
			}

			raw, err := loadRecords(c)
			if err != nil {
				return cli.Exit(err, ExitIngestError)
			}

			records := features.Derive(epc.Clean(raw))
			sel, err := pareto.Select(records, metric, pareto.Options{
				ThresholdFraction: c.Float64("threshold"),
			})
			if err != nil {
				return cli.Exit(err, ExitAnalysisError)
			}

			recs := recommend.Evaluate(sel.FocusRecords())
			path, err := report.ExportWorkbook(records, sel, recs, c.String("out"))
			if err != nil {
				return cli.Exit(err, ExitRenderError)
			}
			log.Info().Str("workbook", path).Msg("workbook written")
			fmt.Println(path)
			return nil
		},
	}
}
