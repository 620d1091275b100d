package notify

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"photobooking/internal/gateway"
)

// NewFromEnv builds a Notifier on the default AWS credential chain.
func NewFromEnv(ctx context.Context, region string, opts Options, log *zap.Logger) (*Notifier, error) {
	const op = "notify.NewFromEnv"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, gateway.Configuration(op, "load aws config", err)
	}
	if _, err := awsCfg.Credentials.Retrieve(ctx); err != nil {
		return nil, gateway.Configuration(op, "aws credentials not available", err)
	}

	return New(sesv2.NewFromConfig(awsCfg), sns.NewFromConfig(awsCfg), opts, log)
}
