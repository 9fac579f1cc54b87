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

func Test_defaultPortResolver_Resolve(t *testing.T) {
	describeSGReq := &ec2sdk.DescribeSecurityGroupsInput{
		GroupIds: []string{"sg-0912f63b"},
	}
	type describeSecurityGroupsAsListCall struct {
		req  *ec2sdk.DescribeSecurityGroupsInput
		resp []ec2types.SecurityGroup
		err  error
	}
	tests := []struct {
		name            string
		explicitPort    int32
		describeSGCalls []describeSecurityGroupsAsListCall
		want            int32
		wantErr         string
	}{
		{
			name:         "explicit port wins",
			explicitPort: 8080,
			want:         8080,
		},
		{
			name: "single single-port tcp rule with CIDR range",
			describeSGCalls: []describeSecurityGroupsAsListCall{
				{
					req: describeSGReq,
					resp: []ec2types.SecurityGroup{
						{
							GroupId: awssdk.String("sg-0912f63b"),
							IpPermissions: []ec2types.IpPermission{
								{
									IpProtocol: awssdk.String("tcp"),
									FromPort:   awssdk.Int32(8080),
									ToPort:     awssdk.Int32(8080),
									IpRanges: []ec2types.IpRange{
										{CidrIp: awssdk.String("203.0.113.9/32")},
									},
								},
								{
									// port range rule, skipped
									IpProtocol: awssdk.String("tcp"),
									FromPort:   awssdk.Int32(9000),
									ToPort:     awssdk.Int32(9100),
									IpRanges: []ec2types.IpRange{
										{CidrIp: awssdk.String("0.0.0.0/0")},
									},
								},
								{
									// securityGroup-sourced rule, skipped
									IpProtocol: awssdk.String("tcp"),
									FromPort:   awssdk.Int32(5432),
									ToPort:     awssdk.Int32(5432),
									UserIdGroupPairs: []ec2types.UserIdGroupPair{
										{GroupId: awssdk.String("sg-08982de7")},
									},
								},
							},
						},
					},
				},
			},
			want: 8080,
		},
		{
			name: "no qualifying rules",
			describeSGCalls: []describeSecurityGroupsAsListCall{
				{
					req: describeSGReq,
					resp: []ec2types.SecurityGroup{
						{GroupId: awssdk.String("sg-0912f63b")},
					},
				},
			},
			wantErr: "no single-port tcp rules with CIDR ranges on sg-0912f63b, specify --port",
		},
		{
			name: "multiple qualifying ports",
			describeSGCalls: []describeSecurityGroupsAsListCall{
				{
					req: describeSGReq,
					resp: []ec2types.SecurityGroup{
						{
							GroupId: awssdk.String("sg-0912f63b"),
							IpPermissions: []ec2types.IpPermission{
								{
									IpProtocol: awssdk.String("tcp"),
									FromPort:   awssdk.Int32(8080),
									ToPort:     awssdk.Int32(8080),
									IpRanges: []ec2types.IpRange{
										{CidrIp: awssdk.String("203.0.113.9/32")},
									},
								},
								{
									IpProtocol: awssdk.String("tcp"),
									FromPort:   awssdk.Int32(443),
									ToPort:     awssdk.Int32(443),
									IpRanges: []ec2types.IpRange{
										{CidrIp: awssdk.String("0.0.0.0/0")},
									},
								},
							},
						},
					},
				},
			},
			wantErr: "multiple candidate ports [443 8080] on sg-0912f63b, specify --port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ec2Client := services.NewMockEC2(ctrl)
			for _, call := range tt.describeSGCalls {
				ec2Client.EXPECT().DescribeSecurityGroupsAsList(gomock.Any(), call.req).Return(call.resp, call.err)
			}
			r := &defaultPortResolver{
				sgManager: NewDefaultSecurityGroupManager(ec2Client, logr.Discard()),
				logger:    logr.Discard(),
			}
			got, err := r.Resolve(context.Background(), "sg-0912f63b", "tcp", tt.explicitPort)
			if len(tt.wantErr) > 0 {
				assert.EqualError(t, err, tt.wantErr)
				var resolutionErr *ResolutionError
				assert.ErrorAs(t, err, &resolutionErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
