package networking

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2sdk "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/codex-trading/ingress-authorizer/pkg/aws/services"
)

// IngressRule is a single ingress permission: one protocol, one port, one IPv4
// CIDR, plus the description recorded on the rule.
type IngressRule struct {
	Protocol    string
	Port        int32
	CIDR        string
	Description string
}

// SecurityGroupManager is an abstraction around EC2's SecurityGroup API.
type SecurityGroupManager interface {
	// FetchSGInfo will fetch SecurityGroupInfo for a single SecurityGroup ID.
	FetchSGInfo(ctx context.Context, sgID string) (SecurityGroupInfo, error)

	// AuthorizeSGIngress will authorize the ingress rule on the SecurityGroup.
	AuthorizeSGIngress(ctx context.Context, sgID string, rule IngressRule) error

	// RevokeSGIngress will revoke the ingress rule from the SecurityGroup.
	RevokeSGIngress(ctx context.Context, sgID string, rule IngressRule) error
}

// NewDefaultSecurityGroupManager constructs new defaultSecurityGroupManager.
func NewDefaultSecurityGroupManager(ec2Client services.EC2, logger logr.Logger) *defaultSecurityGroupManager {
	return &defaultSecurityGroupManager{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

var _ SecurityGroupManager = &defaultSecurityGroupManager{}

// default implementation for SecurityGroupManager
type defaultSecurityGroupManager struct {
	ec2Client services.EC2
	logger    logr.Logger
}

func (m *defaultSecurityGroupManager) FetchSGInfo(ctx context.Context, sgID string) (SecurityGroupInfo, error) {
	sgs, err := m.ec2Client.DescribeSecurityGroupsAsList(ctx, &ec2sdk.DescribeSecurityGroupsInput{
		GroupIds: []string{sgID},
	})
	if err != nil {
		return SecurityGroupInfo{}, err
	}
	if len(sgs) != 1 {
		return SecurityGroupInfo{}, errors.Errorf("expected one securityGroup for %s, got %d", sgID, len(sgs))
	}
	return NewSecurityGroupInfo(sgs[0]), nil
}

func (m *defaultSecurityGroupManager) AuthorizeSGIngress(ctx context.Context, sgID string, rule IngressRule) error {
	req := &ec2sdk.AuthorizeSecurityGroupIngressInput{
		GroupId:       awssdk.String(sgID),
		IpPermissions: buildSDKIPPermissions(rule),
	}
	m.logger.Info("authorizing securityGroup ingress",
		"securityGroupID", sgID,
		"protocol", rule.Protocol,
		"port", rule.Port,
		"cidr", rule.CIDR)
	if _, err := m.ec2Client.AuthorizeSecurityGroupIngressWithContext(ctx, req); err != nil {
		return err
	}
	m.logger.Info("authorized securityGroup ingress",
		"securityGroupID", sgID)
	return nil
}

func (m *defaultSecurityGroupManager) RevokeSGIngress(ctx context.Context, sgID string, rule IngressRule) error {
	req := &ec2sdk.RevokeSecurityGroupIngressInput{
		GroupId:       awssdk.String(sgID),
		IpPermissions: buildSDKIPPermissions(rule),
	}
	m.logger.Info("revoking securityGroup ingress",
		"securityGroupID", sgID,
		"protocol", rule.Protocol,
		"port", rule.Port,
		"cidr", rule.CIDR)
	if _, err := m.ec2Client.RevokeSecurityGroupIngressWithContext(ctx, req); err != nil {
		return err
	}
	m.logger.Info("revoked securityGroup ingress",
		"securityGroupID", sgID)
	return nil
}

// buildSDKIPPermissions converts an IngressRule into the SDK permission shape.
func buildSDKIPPermissions(rule IngressRule) []ec2types.IpPermission {
	ipRange := ec2types.IpRange{
		CidrIp: awssdk.String(rule.CIDR),
	}
	if len(rule.Description) > 0 {
		ipRange.Description = awssdk.String(rule.Description)
	}
	return []ec2types.IpPermission{
		{
			IpProtocol: awssdk.String(rule.Protocol),
			FromPort:   awssdk.Int32(rule.Port),
			ToPort:     awssdk.Int32(rule.Port),
			IpRanges:   []ec2types.IpRange{ipRange},
		},
	}
}
