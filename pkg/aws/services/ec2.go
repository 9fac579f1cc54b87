package services

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type EC2 interface {
	DescribeRegionsWithContext(ctx context.Context, input *ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error)

	// wrapper to DescribeNetworkInterfaces API, which aggregates paged results into list.
	DescribeNetworkInterfacesAsList(ctx context.Context, input *ec2.DescribeNetworkInterfacesInput) ([]ec2types.NetworkInterface, error)

	// wrapper to DescribeSecurityGroups API, which aggregates paged results into list.
	DescribeSecurityGroupsAsList(ctx context.Context, input *ec2.DescribeSecurityGroupsInput) ([]ec2types.SecurityGroup, error)

	AuthorizeSecurityGroupIngressWithContext(ctx context.Context, input *ec2.AuthorizeSecurityGroupIngressInput) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	RevokeSecurityGroupIngressWithContext(ctx context.Context, input *ec2.RevokeSecurityGroupIngressInput) (*ec2.RevokeSecurityGroupIngressOutput, error)
}

// NewEC2 constructs new EC2 implementation.
func NewEC2(cfg awssdk.Config) EC2 {
	return &defaultEC2{
		client: ec2.NewFromConfig(cfg),
	}
}

type defaultEC2 struct {
	client *ec2.Client
}

func (c *defaultEC2) DescribeRegionsWithContext(ctx context.Context, input *ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error) {
	return c.client.DescribeRegions(ctx, input)
}

func (c *defaultEC2) DescribeNetworkInterfacesAsList(ctx context.Context, input *ec2.DescribeNetworkInterfacesInput) ([]ec2types.NetworkInterface, error) {
	var result []ec2types.NetworkInterface
	paginator := ec2.NewDescribeNetworkInterfacesPaginator(c.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, output.NetworkInterfaces...)
	}
	return result, nil
}

func (c *defaultEC2) DescribeSecurityGroupsAsList(ctx context.Context, input *ec2.DescribeSecurityGroupsInput) ([]ec2types.SecurityGroup, error) {
	var result []ec2types.SecurityGroup
	paginator := ec2.NewDescribeSecurityGroupsPaginator(c.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, output.SecurityGroups...)
	}
	return result, nil
}

func (c *defaultEC2) AuthorizeSecurityGroupIngressWithContext(ctx context.Context, input *ec2.AuthorizeSecurityGroupIngressInput) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	return c.client.AuthorizeSecurityGroupIngress(ctx, input)
}

func (c *defaultEC2) RevokeSecurityGroupIngressWithContext(ctx context.Context, input *ec2.RevokeSecurityGroupIngressInput) (*ec2.RevokeSecurityGroupIngressOutput, error) {
	return c.client.RevokeSecurityGroupIngress(ctx, input)
}
