// epcinsight - portfolio energy-performance analysis for landlords.
//
// Usage:
//   epcinsight report --csv portfolio.csv [options]
//   epcinsight focus --csv portfolio.csv --metric potential_cost_saved
//   epcinsight recommend --csv portfolio.csv
//   epcinsight export --csv portfolio.csv --out results
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"epc-insight/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes for CI and scripting.
const (
	ExitSuccess       = 0
	ExitIngestError   = 10
	ExitAnalysisError = 11
	ExitRenderError   = 12
)

var log zerolog.Logger

func main() {
	app := &cli.App{
		Name:    "epcinsight",
		Usage:   "EPC portfolio analysis - cost savings, emissions, and retrofit focus for landlords",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"EPCINSIGHT_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "source",
				Value:   "csv",
				Usage:   "Record source (csv, postgres)",
				EnvVars: []string{"EPCINSIGHT_SOURCE"},
			},
			&cli.StringFlag{
				Name:    "csv",
				Usage:   "Path to an EPC open-data CSV download",
				EnvVars: []string{"EPCINSIGHT_CSV"},
			},
			&cli.StringFlag{
				Name:    "out",
				Value:   "results",
				Usage:   "Output directory for generated artifacts",
				EnvVars: []string{"EPCINSIGHT_OUT"},
			},
		},

		Before: func(c *cli.Context) error {
			log = platform.InitLogger(c.String("log-level"))
			return nil
		},

		Commands: []*cli.Command{
			reportCommand(),
			focusCommand(),
			recommendCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
