package networking

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2sdk "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/codex-trading/ingress-authorizer/pkg/aws/services"
)

func Test_defaultSecurityGroupAuthorizer_EnsureIngress(t *testing.T) {
	rule := IngressRule{
		Protocol:    "tcp",
		Port:        8080,
		CIDR:        "198.51.100.7/32",
		Description: "codex-whitelist",
	}
	describeSGReq := &ec2sdk.DescribeSecurityGroupsInput{
		GroupIds: []string{"sg-0912f63b"},
	}
	sgWithRule := []ec2types.SecurityGroup{
		{
			GroupId: awssdk.String("sg-0912f63b"),
			IpPermissions: []ec2types.IpPermission{
				{
					IpProtocol: awssdk.String("tcp"),
					FromPort:   awssdk.Int32(8080),
					ToPort:     awssdk.Int32(8080),
					IpRanges: []ec2types.IpRange{
						{
							CidrIp:      awssdk.String("198.51.100.7/32"),
							Description: awssdk.String("codex-whitelist"),
						},
					},
				},
			},
		},
	}
	sgWithoutRule := []ec2types.SecurityGroup{
		{GroupId: awssdk.String("sg-0912f63b")},
	}
	authorizeReq := &ec2sdk.AuthorizeSecurityGroupIngressInput{
		GroupId: awssdk.String("sg-0912f63b"),
		IpPermissions: []ec2types.IpPermission{
			{
				IpProtocol: awssdk.String("tcp"),
				FromPort:   awssdk.Int32(8080),
				ToPort:     awssdk.Int32(8080),
				IpRanges: []ec2types.IpRange{
					{
						CidrIp:      awssdk.String("198.51.100.7/32"),
						Description: awssdk.String("codex-whitelist"),
					},
				},
			},
		},
	}

	t.Run("rule absent gets inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ec2Client := services.NewMockEC2(ctrl)
		ec2Client.EXPECT().DescribeSecurityGroupsAsList(gomock.Any(), describeSGReq).Return(sgWithoutRule, nil)
		ec2Client.EXPECT().AuthorizeSecurityGroupIngressWithContext(gomock.Any(), authorizeReq).
			Return(&ec2sdk.AuthorizeSecurityGroupIngressOutput{}, nil)

		a := NewDefaultSecurityGroupAuthorizer(NewDefaultSecurityGroupManager(ec2Client, logr.Discard()), logr.Discard())
		inserted, err := a.EnsureIngress(context.Background(), "sg-0912f63b", rule)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("equivalent rule present is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ec2Client := services.NewMockEC2(ctrl)
		ec2Client.EXPECT().DescribeSecurityGroupsAsList(gomock.Any(), describeSGReq).Return(sgWithRule, nil)

		a := NewDefaultSecurityGroupAuthorizer(NewDefaultSecurityGroupManager(ec2Client, logr.Discard()), logr.Discard())
		inserted, err := a.EnsureIngress(context.Background(), "sg-0912f63b", rule)
		assert.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("second invocation after insert is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ec2Client := services.NewMockEC2(ctrl)
		gomock.InOrder(
			ec2Client.EXPECT().DescribeSecurityGroupsAsList(gomock.Any(), describeSGReq).Return(sgWithoutRule, nil),
			ec2Client.EXPECT().AuthorizeSecurityGroupIngressWithContext(gomock.Any(), authorizeReq).
				Return(&ec2sdk.AuthorizeSecurityGroupIngressOutput{}, nil),
			ec2Client.EXPECT().DescribeSecurityGroupsAsList(gomock.Any(), describeSGReq).Return(sgWithRule, nil),
		)

		a := NewDefaultSecurityGroupAuthorizer(NewDefaultSecurityGroupManager(ec2Client, logr.Discard()), logr.Discard())
		inserted, err := a.EnsureIngress(context.Background(), "sg-0912f63b", rule)
		assert.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = a.EnsureIngress(context.Background(), "sg-0912f63b", rule)
		assert.NoError(t, err)
		assert.False(t, inserted)
	})
}

func Test_defaultSecurityGroupAuthorizer_RemoveIngress(t *testing.T) {
	rule := IngressRule{
		Protocol: "tcp",
		Port:     8080,
		CIDR:     "198.51.100.7/32",
	}
	describeSGReq := &ec2sdk.DescribeSecurityGroupsInput{
		GroupIds: []string{"sg-0912f63b"},
	}
	sgWithRule := []ec2types.SecurityGroup{
		{
			GroupId: awssdk.String("sg-0912f63b"),
			IpPermissions: []ec2types.IpPermission{
				{
					IpProtocol: awssdk.String("tcp"),
					FromPort:   awssdk.Int32(8080),
					ToPort:     awssdk.Int32(8080),
					IpRanges: []ec2types.IpRange{
						{CidrIp: awssdk.String("198.51.100.7/32")},
					},
				},
			},
		},
	}

	t.Run("matching rule gets revoked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ec2Client := services.NewMockEC2(ctrl)
		ec2Client.EXPECT().DescribeSecurityGroupsAsList(gomock.Any(), describeSGReq).Return(sgWithRule, nil)
		ec2Client.EXPECT().RevokeSecurityGroupIngressWithContext(gomock.Any(), &ec2sdk.RevokeSecurityGroupIngressInput{
			GroupId: awssdk.String("sg-0912f63b"),
			IpPermissions: []ec2types.IpPermission{
				{
					IpProtocol: awssdk.String("tcp"),
					FromPort:   awssdk.Int32(8080),
					ToPort:     awssdk.Int32(8080),
					IpRanges: []ec2types.IpRange{
						{CidrIp: awssdk.String("198.51.100.7/32")},
					},
				},
			},
		}).Return(&ec2sdk.RevokeSecurityGroupIngressOutput{}, nil)

		a := NewDefaultSecurityGroupAuthorizer(NewDefaultSecurityGroupManager(ec2Client, logr.Discard()), logr.Discard())
		revoked, err := a.RemoveIngress(context.Background(), "sg-0912f63b", rule)
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("absent rule is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ec2Client := services.NewMockEC2(ctrl)
		ec2Client.EXPECT().DescribeSecurityGroupsAsList(gomock.Any(), describeSGReq).Return([]ec2types.SecurityGroup{
			{GroupId: awssdk.String("sg-0912f63b")},
		}, nil)

		a := NewDefaultSecurityGroupAuthorizer(NewDefaultSecurityGroupManager(ec2Client, logr.Discard()), logr.Discard())
		revoked, err := a.RemoveIngress(context.Background(), "sg-0912f63b", rule)
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
