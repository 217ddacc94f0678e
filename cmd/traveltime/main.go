package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"travel-time-estimator/internal/adapters/googlemaps"
	"travel-time-estimator/internal/config"
	"travel-time-estimator/internal/runner"
	"travel-time-estimator/internal/services"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// main is the application composition root.
// It wires the Google Maps adapter behind the estimator and streams stdin through it.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newCommand(config.Default(), os.Stdin, os.Stdout)
	if err := cmd.Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func newCommand(defaults config.Config, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "traveltime",
		Usage:     "Estimate current driving time to each destination read from stdin",
		UsageText: "traveltime [options] < destinations.txt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key-file",
				Aliases: []string{"k"},
				Usage:   "file whose first non-blank line is the Google Maps API key",
				Value:   defaults.KeyFile,
			},
			&cli.BoolFlag{
				Name:  "traffic",
				Usage: "report traffic-adjusted travel time",
				Value: defaults.IncludeTraffic,
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "HTTP client timeout per Maps API call (e.g. 10s)",
				Value:   defaults.HTTPTimeout,
			},
			&cli.StringFlag{
				Name:  "language",
				Usage: "language for Maps API results (e.g. en, de)",
				Value: defaults.Language,
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "region bias for place search (ccTLD, e.g. us)",
				Value: defaults.Region,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Config{
				KeyFile:        cmd.String("key-file"),
				IncludeTraffic: cmd.Bool("traffic"),
				HTTPTimeout:    cmd.Duration("timeout"),
				Language:       cmd.String("language"),
				Region:         cmd.String("region"),
			}
			return run(ctx, cfg, in, out)
		},
	}
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey, err := config.LoadAPIKey(cfg.KeyFile)
	if err != nil {
		return fmt.Errorf("unable to load google maps api key: %w", err)
	}

	provider, err := googlemaps.NewGoogleMapsProvider(apiKey, googlemaps.Options{
		HTTPTimeout: cfg.HTTPTimeout,
		Language:    cfg.Language,
		Region:      cfg.Region,
	})
	if err != nil {
		return err
	}

	estimator, err := services.NewEstimator(provider)
	if err != nil {
		return err
	}

	r := &runner.Runner{Estimator: estimator, IncludeTraffic: cfg.IncludeTraffic}
	return r.Run(ctx, in, out)
}
