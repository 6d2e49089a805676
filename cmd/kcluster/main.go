// Package main is the kcluster command line tool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/kcluster"
)

const (
	// Store flags.
	flagStore     = "store"
	flagRoot      = "root"
	flagBucket    = "bucket"
	flagPrefix    = "prefix"
	flagEndpoint  = "endpoint"
	flagAccessKey = "access-key"
	flagSecretKey = "secret-key"
	flagSecure    = "secure"
	flagRegion    = "region"

	// Clustering flags.
	flagWorkers       = "workers"
	flagMaxIterations = "max-iterations"
	flagEmptyCluster  = "empty-cluster"
	flagSeeding       = "seeding"
	flagSeed          = "seed"

	// Output flags.
	flagFormat = "format"
	flagOutput = "output"

	// Batch flags.
	flagConcurrency = "concurrency"
	flagIOLimit     = "io-limit"
	flagMemoryLimit = "memory-limit"

	// Logging flags.
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	storeLocal = "local"
	storeMinio = "minio"
	storeS3    = "s3"

	formatText = "text"
	formatJSON = "json"
)

func envVars(name string) []string {
	return []string{"KCLUSTER_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "kcluster:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	var logger *kcluster.Logger

	return &cli.App{
		Name:      "kcluster",
		Usage:     "cluster points with Lloyd's k-means",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   "warn",
				Usage:   "minimum log level (debug, info, warn, error)",
				EnvVars: envVars(flagLogLevel),
			},
			&cli.StringFlag{
				Name:    flagLogFormat,
				Value:   formatText,
				Usage:   "log output format (text, json)",
				EnvVars: envVars(flagLogFormat),
			},
		},
		Before: func(c *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.String(flagLogLevel))); err != nil {
				return fmt.Errorf("invalid --%s: %w", flagLogLevel, err)
			}
			opts := &slog.HandlerOptions{Level: level}
			switch c.String(flagLogFormat) {
			case formatText:
				logger = kcluster.NewLogger(slog.NewTextHandler(stderr, opts))
			case formatJSON:
				logger = kcluster.NewLogger(slog.NewJSONHandler(stderr, opts))
			default:
				return fmt.Errorf("invalid --%s %q", flagLogFormat, c.String(flagLogFormat))
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "cluster one or more datasets and print the final centers",
				ArgsUsage: "<name>...",
				Flags:     runFlags(),
				Action: func(c *cli.Context) error {
					return runAction(c, logger)
				},
			},
		},
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagStore,
			Value:   storeLocal,
			Usage:   "blob store backend (local, minio, s3)",
			EnvVars: envVars(flagStore),
		},
		&cli.StringFlag{
			Name:    flagRoot,
			Value:   ".",
			Usage:   "root `DIR` of the local store",
			EnvVars: envVars(flagRoot),
		},
		&cli.StringFlag{
			Name:    flagBucket,
			Usage:   "bucket for the minio and s3 stores",
			EnvVars: envVars(flagBucket),
		},
		&cli.StringFlag{
			Name:    flagPrefix,
			Usage:   "key prefix for the minio and s3 stores",
			EnvVars: envVars(flagPrefix),
		},
		&cli.StringFlag{
			Name:    flagEndpoint,
			Value:   "localhost:9000",
			Usage:   "minio endpoint",
			EnvVars: envVars(flagEndpoint),
		},
		&cli.StringFlag{
			Name:    flagAccessKey,
			Usage:   "minio access key",
			EnvVars: envVars(flagAccessKey),
		},
		&cli.StringFlag{
			Name:    flagSecretKey,
			Usage:   "minio secret key",
			EnvVars: envVars(flagSecretKey),
		},
		&cli.BoolFlag{
			Name:    flagSecure,
			Usage:   "use https for minio",
			EnvVars: envVars(flagSecure),
		},
		&cli.StringFlag{
			Name:    flagRegion,
			Usage:   "minio region",
			EnvVars: envVars(flagRegion),
		},
		&cli.IntFlag{
			Name:    flagWorkers,
			Value:   1,
			Usage:   "goroutines per assignment step",
			EnvVars: envVars(flagWorkers),
		},
		&cli.IntFlag{
			Name:    flagMaxIterations,
			Usage:   "stop after N iterations (0 runs until convergence)",
			EnvVars: envVars(flagMaxIterations),
		},
		&cli.StringFlag{
			Name:    flagEmptyCluster,
			Value:   kcluster.KeepCenter.String(),
			Usage:   "what to do with a center that attracts no points (keep, fail, reseed)",
			EnvVars: envVars(flagEmptyCluster),
		},
		&cli.StringFlag{
			Name:    flagSeeding,
			Value:   kcluster.SeedingFirstK.String(),
			Usage:   "initial center selection (first-k, random)",
			EnvVars: envVars(flagSeeding),
		},
		&cli.Int64Flag{
			Name:    flagSeed,
			Usage:   "random seed for --seeding random",
			EnvVars: envVars(flagSeed),
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Value:   formatText,
			Usage:   "output format (text, json, json-indent)",
			EnvVars: envVars(flagFormat),
		},
		&cli.StringFlag{
			Name:    flagOutput,
			Usage:   "also save JSON reports to this blob `NAME` (a prefix when clustering several datasets)",
			EnvVars: envVars(flagOutput),
		},
		&cli.IntFlag{
			Name:    flagConcurrency,
			Value:   1,
			Usage:   "datasets clustered at once",
			EnvVars: envVars(flagConcurrency),
		},
		&cli.Int64Flag{
			Name:    flagIOLimit,
			Usage:   "dataset read limit in bytes per second (0 is unlimited)",
			EnvVars: envVars(flagIOLimit),
		},
		&cli.Int64Flag{
			Name:    flagMemoryLimit,
			Usage:   "coordinate memory limit in bytes across concurrent datasets (0 is unlimited)",
			EnvVars: envVars(flagMemoryLimit),
		},
	}
}
