package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/mizushino/lit-builder/internal/config"
	"github.com/mizushino/lit-builder/internal/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket  string
		prefix  string
		region  string
		noBuild bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build and upload the output to S3",
		Long: `Build the descriptor and upload the output directory to S3.

Credentials come from the default AWS credential chain (environment,
shared config, instance role).

Examples:
  lit-builder publish --bucket=my-site
  lit-builder publish --bucket=my-site --prefix=preview/ --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), bucket, prefix, region, noBuild)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (default from litbuilder.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from litbuilder.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from litbuilder.json)")
	cmd.Flags().BoolVar(&noBuild, "no-build", false, "Upload the existing output without rebuilding")

	return cmd
}

func runPublish(ctx context.Context, bucket, prefix, region string, noBuild bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if cfg.Publish.Bucket == "" {
		return fmt.Errorf("no bucket configured: set publish.bucket or pass --bucket")
	}

	if !noBuild {
		if err := cfg.Validate(); err != nil {
			return err
		}
		path, _, _, err := buildToDisk(cfg)
		if err != nil {
			return err
		}
		info("Built %s", path)
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Publish.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Publish.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	pub := publish.New(s3.NewFromConfig(awsCfg), cfg.Publish.Bucket, cfg.Publish.Prefix)
	count, err := pub.Dir(ctx, cfg.Output)
	if err != nil {
		return err
	}

	success("Published %d objects to s3://%s/%s", count, cfg.Publish.Bucket, cfg.Publish.Prefix)
	return nil
}
