package services

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

type ECS interface {
	// wrapper to ListClusters API, which aggregates paged results into list.
	ListClustersAsList(ctx context.Context, input *ecs.ListClustersInput) ([]string, error)

	// wrapper to ListServices API, which aggregates paged results into list.
	ListServicesAsList(ctx context.Context, input *ecs.ListServicesInput) ([]string, error)

	DescribeServicesWithContext(ctx context.Context, input *ecs.DescribeServicesInput) (*ecs.DescribeServicesOutput, error)
}

// NewECS constructs new ECS implementation.
func NewECS(cfg awssdk.Config) ECS {
	return &defaultECS{
		client: ecs.NewFromConfig(cfg),
	}
}

type defaultECS struct {
	client *ecs.Client
}

func (c *defaultECS) ListClustersAsList(ctx context.Context, input *ecs.ListClustersInput) ([]string, error) {
	var result []string
	paginator := ecs.NewListClustersPaginator(c.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, output.ClusterArns...)
	}
	return result, nil
}

func (c *defaultECS) ListServicesAsList(ctx context.Context, input *ecs.ListServicesInput) ([]string, error) {
	var result []string
	paginator := ecs.NewListServicesPaginator(c.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, output.ServiceArns...)
	}
	return result, nil
}

func (c *defaultECS) DescribeServicesWithContext(ctx context.Context, input *ecs.DescribeServicesInput) (*ecs.DescribeServicesOutput, error) {
	return c.client.DescribeServices(ctx, input)
}
