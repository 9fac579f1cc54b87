package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/codex-trading/ingress-authorizer/pkg/aws/services"
)

// Cloud provides the AWS service clients for a single region.
type Cloud interface {
	EC2() services.EC2
	ECS() services.ECS
	Region() string
}

// NewCloud constructs new Cloud implementation pinned to the given region.
func NewCloud(ctx context.Context, region string, logger logr.Logger) (Cloud, error) {
	if len(region) == 0 {
		return nil, errors.New("region must be resolved before constructing cloud clients")
	}
	awsConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS config")
	}
	logger.V(1).Info("constructed AWS clients", "region", region)
	return &defaultCloud{
		region: region,
		ec2:    services.NewEC2(awsConfig),
		ecs:    services.NewECS(awsConfig),
	}, nil
}

// NewEC2ForRegion returns an EC2 client configured for the given region.
// Used by the cross-region network interface scan before a Cloud exists.
func NewEC2ForRegion(ctx context.Context, region string) (services.EC2, error) {
	awsConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load AWS config for region %s", region)
	}
	return services.NewEC2(awsConfig), nil
}

// SharedConfigRegion returns the region from the ambient AWS configuration
// (shared config files, instance profiles), or empty when none is set.
func SharedConfigRegion(ctx context.Context) (string, error) {
	awsConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", errors.Wrap(err, "unable to load AWS config")
	}
	return awsConfig.Region, nil
}

var _ Cloud = &defaultCloud{}

type defaultCloud struct {
	region string
	ec2    services.EC2
	ecs    services.ECS
}

func (c *defaultCloud) EC2() services.EC2 {
	return c.ec2
}

func (c *defaultCloud) ECS() services.ECS {
	return c.ecs
}

func (c *defaultCloud) Region() string {
	return c.region
}
