package storage

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"photobooking/internal/gateway"
)

// NewFromEnv builds a Gateway on the default AWS credential chain. Missing
// credentials are a configuration error.
func NewFromEnv(ctx context.Context, bucket, region string, ttl time.Duration, observer gateway.Observer, log *zap.Logger) (*Gateway, error) {
	const op = "storage.NewFromEnv"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, gateway.Configuration(op, "load aws config", err)
	}
	if _, err := awsCfg.Credentials.Retrieve(ctx); err != nil {
		return nil, gateway.Configuration(op, "aws credentials not available", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return New(client, s3.NewPresignClient(client), Options{
		Bucket:     bucket,
		Region:     region,
		DefaultTTL: ttl,
		Observer:   observer,
	}, log)
}
