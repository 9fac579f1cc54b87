package networking

import (
	"context"
	"os"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2sdk "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"

	"github.com/codex-trading/ingress-authorizer/pkg/aws/services"
)

// bootstrapRegion anchors the DescribeRegions call issued before any region is
// known, the same trick the aws CLI uses for global region enumeration.
const bootstrapRegion = "us-east-1"

// RegionResolver produces exactly one region for the run.
type RegionResolver interface {
	// Resolve returns the region to operate in. targetIP may be empty when no
	// service location is known.
	Resolve(ctx context.Context, explicitRegion string, targetIP string) (string, error)
}

// NewDefaultRegionResolver constructs new defaultRegionResolver.
func NewDefaultRegionResolver(newEC2ForRegion func(ctx context.Context, region string) (services.EC2, error), sharedConfigRegion func(ctx context.Context) (string, error), logger logr.Logger) *defaultRegionResolver {
	return &defaultRegionResolver{
		newEC2ForRegion:    newEC2ForRegion,
		sharedConfigRegion: sharedConfigRegion,
		envLookup:          os.Getenv,
		logger:             logger,
	}
}

var _ RegionResolver = &defaultRegionResolver{}

// default implementation for RegionResolver
type defaultRegionResolver struct {
	newEC2ForRegion    func(ctx context.Context, region string) (services.EC2, error)
	sharedConfigRegion func(ctx context.Context) (string, error)
	envLookup          func(key string) string
	logger             logr.Logger
}

func (r *defaultRegionResolver) Resolve(ctx context.Context, explicitRegion string, targetIP string) (string, error) {
	if len(explicitRegion) > 0 {
		return explicitRegion, nil
	}

	if len(targetIP) > 0 {
		matchedRegions, err := r.scanRegionsForPublicIP(ctx, targetIP)
		if err != nil {
			return "", err
		}
		if len(matchedRegions) == 1 {
			r.logger.Info("inferred region from target IP", "region", matchedRegions[0], "targetIP", targetIP)
			return matchedRegions[0], nil
		}
		if len(matchedRegions) > 1 {
			return "", NewResolutionErrorf("target IP %s matched network interfaces in multiple regions %v, specify --region or --sg", targetIP, matchedRegions)
		}
	}

	for _, key := range []string{"AWS_REGION", "AWS_DEFAULT_REGION"} {
		if region := r.envLookup(key); len(region) > 0 {
			return region, nil
		}
	}

	region, err := r.sharedConfigRegion(ctx)
	if err != nil {
		return "", err
	}
	if len(region) > 0 {
		return region, nil
	}

	return "", NewResolutionErrorf("region not set, specify --region or set AWS_REGION")
}

// scanRegionsForPublicIP returns the regions containing a network interface
// whose public-IP association matches targetIP.
func (r *defaultRegionResolver) scanRegionsForPublicIP(ctx context.Context, targetIP string) ([]string, error) {
	bootstrapClient, err := r.newEC2ForRegion(ctx, bootstrapRegion)
	if err != nil {
		return nil, err
	}
	regionsResp, err := bootstrapClient.DescribeRegionsWithContext(ctx, &ec2sdk.DescribeRegionsInput{})
	if err != nil {
		return nil, err
	}

	var matchedRegions []string
	for _, region := range regionsResp.Regions {
		regionName := awssdk.ToString(region.RegionName)
		regionalClient, err := r.newEC2ForRegion(ctx, regionName)
		if err != nil {
			return nil, err
		}
		enis, err := regionalClient.DescribeNetworkInterfacesAsList(ctx, &ec2sdk.DescribeNetworkInterfacesInput{
			Filters: []ec2types.Filter{
				{
					Name:   awssdk.String("association.public-ip"),
					Values: []string{targetIP},
				},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(enis) > 0 {
			matchedRegions = append(matchedRegions, regionName)
		}
	}
	return matchedRegions, nil
}
