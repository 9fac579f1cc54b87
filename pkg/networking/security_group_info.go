package networking

import (
	"sort"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// SecurityGroupInfo wraps necessary information about a SecurityGroup.
type SecurityGroupInfo struct {
	// SecurityGroup's ID.
	SecurityGroupID string

	// Ingress permissions for securityGroup.
	Ingress []ec2types.IpPermission
}

// NewSecurityGroupInfo constructs SecurityGroupInfo from the raw SDK SecurityGroup.
func NewSecurityGroupInfo(sg ec2types.SecurityGroup) SecurityGroupInfo {
	return SecurityGroupInfo{
		SecurityGroupID: awssdk.ToString(sg.GroupId),
		Ingress:         sg.IpPermissions,
	}
}

// HasIngressRule returns whether the securityGroup already contains an ingress
// permission matching protocol, port and IPv4 CIDR exactly.
func (i SecurityGroupInfo) HasIngressRule(protocol string, port int32, cidr string) bool {
	for _, perm := range i.Ingress {
		if !strings.EqualFold(awssdk.ToString(perm.IpProtocol), protocol) {
			continue
		}
		if awssdk.ToInt32(perm.FromPort) != port || awssdk.ToInt32(perm.ToPort) != port {
			continue
		}
		for _, ipRange := range perm.IpRanges {
			if awssdk.ToString(ipRange.CidrIp) == cidr {
				return true
			}
		}
	}
	return false
}

// SinglePortCIDRPorts returns the distinct ports of ingress permissions for the
// given protocol that cover exactly one port and have at least one IPv4 CIDR
// range attached, in ascending order.
func (i SecurityGroupInfo) SinglePortCIDRPorts(protocol string) []int32 {
	seen := make(map[int32]struct{})
	for _, perm := range i.Ingress {
		if !strings.EqualFold(awssdk.ToString(perm.IpProtocol), protocol) {
			continue
		}
		if perm.FromPort == nil || perm.ToPort == nil {
			continue
		}
		if awssdk.ToInt32(perm.FromPort) != awssdk.ToInt32(perm.ToPort) {
			continue
		}
		if len(perm.IpRanges) == 0 {
			continue
		}
		seen[awssdk.ToInt32(perm.FromPort)] = struct{}{}
	}
	ports := make([]int32, 0, len(seen))
	for port := range seen {
		ports = append(ports, port)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i] < ports[j] })
	return ports
}
