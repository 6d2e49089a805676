package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/batch"
	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/blobstore/minio"
	"github.com/hupe1980/kcluster/blobstore/s3"
	"github.com/hupe1980/kcluster/codec"
	"github.com/hupe1980/kcluster/report"
)

func runAction(c *cli.Context, logger *kcluster.Logger) error {
	names := c.Args().Slice()
	if len(names) == 0 {
		return errors.New("run: at least one dataset name is required")
	}

	// A nil codec means the text report.
	var enc codec.Codec
	if format := c.String(flagFormat); format != formatText {
		var err error
		if enc, err = codec.Lookup(format); err != nil {
			return fmt.Errorf("invalid --%s: %w", flagFormat, err)
		}
	}

	opts, err := clusterOptions(c)
	if err != nil {
		return err
	}

	store, err := openStore(c.Context, c)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(store, batch.Options{
		Concurrency:        c.Int(flagConcurrency),
		IOLimitBytesPerSec: c.Int64(flagIOLimit),
		MemoryLimitBytes:   c.Int64(flagMemoryLimit),
		ClusterOptions:     opts,
		Logger:             logger,
	})

	outcomes, runErr := runner.Run(c.Context, names)

	w := c.App.Writer
	for _, o := range outcomes {
		if o.Report == nil {
			continue
		}
		if err := printReport(w, o.Report, enc, len(names) > 1); err != nil {
			return err
		}
		if out := c.String(flagOutput); out != "" {
			name := out
			if len(names) > 1 {
				name = path.Join(out, o.Name+".json")
			}
			if err := report.Save(c.Context, store, name, o.Report, report.SaveOptions{}); err != nil {
				return err
			}
		}
	}
	return runErr
}

func printReport(w io.Writer, r *report.Report, enc codec.Codec, named bool) error {
	if enc != nil {
		return report.WriteJSON(w, r, enc)
	}
	if named {
		if _, err := fmt.Fprintf(w, "%s:\n", r.Name); err != nil {
			return err
		}
	}
	return report.WriteText(w, r)
}

func clusterOptions(c *cli.Context) ([]kcluster.Option, error) {
	policy, err := kcluster.ParseEmptyClusterPolicy(c.String(flagEmptyCluster))
	if err != nil {
		return nil, err
	}
	seeding, err := kcluster.ParseSeeding(c.String(flagSeeding))
	if err != nil {
		return nil, err
	}
	return []kcluster.Option{
		kcluster.WithSeeder(seeding.Seeder(c.Int64(flagSeed))),
		kcluster.WithEmptyClusterPolicy(policy),
		kcluster.WithMaxIterations(c.Int(flagMaxIterations)),
		kcluster.WithWorkers(c.Int(flagWorkers)),
	}, nil
}

func openStore(ctx context.Context, c *cli.Context) (blobstore.BlobStore, error) {
	switch kind := c.String(flagStore); kind {
	case storeLocal:
		return blobstore.NewLocalStore(c.String(flagRoot)), nil
	case storeMinio:
		if c.String(flagBucket) == "" {
			return nil, fmt.Errorf("--%s is required for the minio store", flagBucket)
		}
		return minio.New(minio.Config{
			Endpoint:  c.String(flagEndpoint),
			AccessKey: c.String(flagAccessKey),
			SecretKey: c.String(flagSecretKey),
			Secure:    c.Bool(flagSecure),
			Region:    c.String(flagRegion),
			Bucket:    c.String(flagBucket),
			Prefix:    c.String(flagPrefix),
		})
	case storeS3:
		if c.String(flagBucket) == "" {
			return nil, fmt.Errorf("--%s is required for the s3 store", flagBucket)
		}
		return s3.NewFromConfig(ctx, c.String(flagBucket), c.String(flagPrefix))
	default:
		return nil, fmt.Errorf("invalid --%s %q", flagStore, kind)
	}
}
