package networking

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2sdk "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	ecssdk "github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/go-logr/logr"

	"github.com/codex-trading/ingress-authorizer/pkg/aws/services"
)

// SecurityGroupResolveOptions carries the locator inputs. Empty fields are
// filled in by discovery.
type SecurityGroupResolveOptions struct {
	// explicit securityGroup ID, used verbatim when set.
	SecurityGroupID string

	// public IP of the target service, used for ENI-based discovery.
	TargetIP string

	// ECS cluster and service names for service-based discovery.
	Cluster string
	Service string
}

// SecurityGroupResolver produces exactly one securityGroup ID or fails with an
// error naming the flag to supply next.
type SecurityGroupResolver interface {
	Resolve(ctx context.Context, opts SecurityGroupResolveOptions) (string, error)
}

// NewDefaultSecurityGroupResolver constructs new defaultSecurityGroupResolver.
func NewDefaultSecurityGroupResolver(ec2Client services.EC2, ecsClient services.ECS, logger logr.Logger) *defaultSecurityGroupResolver {
	return &defaultSecurityGroupResolver{
		ec2Client: ec2Client,
		ecsClient: ecsClient,
		logger:    logger,
	}
}

var _ SecurityGroupResolver = &defaultSecurityGroupResolver{}

// default implementation for SecurityGroupResolver
type defaultSecurityGroupResolver struct {
	ec2Client services.EC2
	ecsClient services.ECS
	logger    logr.Logger
}

func (r *defaultSecurityGroupResolver) Resolve(ctx context.Context, opts SecurityGroupResolveOptions) (string, error) {
	if len(opts.SecurityGroupID) > 0 {
		return opts.SecurityGroupID, nil
	}
	if len(opts.TargetIP) > 0 {
		return r.resolveViaPublicIP(ctx, opts.TargetIP)
	}
	return r.resolveViaECSService(ctx, opts.Cluster, opts.Service)
}

// resolveViaPublicIP finds the ENI holding the target public IP and returns its
// single attached securityGroup. Services with multiple task ENIs need --sg.
func (r *defaultSecurityGroupResolver) resolveViaPublicIP(ctx context.Context, targetIP string) (string, error) {
	enis, err := r.ec2Client.DescribeNetworkInterfacesAsList(ctx, &ec2sdk.DescribeNetworkInterfacesInput{
		Filters: []ec2types.Filter{
			{
				Name:   awssdk.String("association.public-ip"),
				Values: []string{targetIP},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(enis) == 0 {
		return "", NewResolutionErrorf("no network interface found for IP %s, specify --sg", targetIP)
	}
	eniInfo := buildENIInfoViaENI(enis[0])
	if len(eniInfo.SecurityGroups) == 0 {
		return "", NewResolutionErrorf("no security group found for IP %s, specify --sg", targetIP)
	}
	if len(eniInfo.SecurityGroups) > 1 {
		return "", NewResolutionErrorf("multiple security groups %v found for IP %s, specify --sg", eniInfo.SecurityGroups, targetIP)
	}
	r.logger.Info("resolved securityGroup via network interface",
		"securityGroupID", eniInfo.SecurityGroups[0],
		"networkInterfaceID", eniInfo.NetworkInterfaceID,
		"publicIP", eniInfo.PublicIP)
	return eniInfo.SecurityGroups[0], nil
}

func (r *defaultSecurityGroupResolver) resolveViaECSService(ctx context.Context, cluster string, service string) (string, error) {
	if len(cluster) == 0 {
		clusters, err := r.ecsClient.ListClustersAsList(ctx, &ecssdk.ListClustersInput{})
		if err != nil {
			return "", err
		}
		if len(clusters) == 0 {
			return "", NewResolutionErrorf("no clusters found, specify --cluster or --sg")
		}
		if len(clusters) > 1 {
			return "", NewResolutionErrorf("multiple clusters found %v, specify --cluster", clusters)
		}
		cluster = clusters[0]
	}

	if len(service) == 0 {
		ecsServices, err := r.ecsClient.ListServicesAsList(ctx, &ecssdk.ListServicesInput{
			Cluster: awssdk.String(cluster),
		})
		if err != nil {
			return "", err
		}
		if len(ecsServices) == 0 {
			return "", NewResolutionErrorf("no services found on cluster %s, specify --service or --sg", cluster)
		}
		if len(ecsServices) > 1 {
			return "", NewResolutionErrorf("multiple services found on cluster %s %v, specify --service", cluster, ecsServices)
		}
		service = ecsServices[0]
	}

	resp, err := r.ecsClient.DescribeServicesWithContext(ctx, &ecssdk.DescribeServicesInput{
		Cluster:  awssdk.String(cluster),
		Services: []string{service},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Services) == 0 {
		return "", NewResolutionErrorf("service %s not found on cluster %s, check --service or specify --sg", service, cluster)
	}
	svc := resp.Services[0]
	if svc.NetworkConfiguration == nil || svc.NetworkConfiguration.AwsvpcConfiguration == nil {
		return "", NewResolutionErrorf("service %s has no awsvpc network configuration, specify --sg", service)
	}
	sgIDs := svc.NetworkConfiguration.AwsvpcConfiguration.SecurityGroups
	if len(sgIDs) == 0 {
		return "", NewResolutionErrorf("no security group attached to service %s, specify --sg", service)
	}
	if len(sgIDs) > 1 {
		return "", NewResolutionErrorf("multiple security groups %v attached to service %s, specify --sg", sgIDs, service)
	}
	r.logger.Info("resolved securityGroup via ECS service",
		"securityGroupID", sgIDs[0],
		"cluster", cluster,
		"service", service)
	return sgIDs[0], nil
}
