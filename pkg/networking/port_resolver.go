package networking

import (
	"context"

	"github.com/go-logr/logr"
)

// PortResolver produces exactly one port for the ingress rule.
type PortResolver interface {
	// Resolve returns explicitPort when positive, otherwise infers the port
	// from the securityGroup's existing single-port CIDR ingress rules for the
	// protocol.
	Resolve(ctx context.Context, sgID string, protocol string, explicitPort int32) (int32, error)
}

// NewDefaultPortResolver constructs new defaultPortResolver.
func NewDefaultPortResolver(sgManager SecurityGroupManager, logger logr.Logger) *defaultPortResolver {
	return &defaultPortResolver{
		sgManager: sgManager,
		logger:    logger,
	}
}

var _ PortResolver = &defaultPortResolver{}

// default implementation for PortResolver
type defaultPortResolver struct {
	sgManager SecurityGroupManager
	logger    logr.Logger
}

func (r *defaultPortResolver) Resolve(ctx context.Context, sgID string, protocol string, explicitPort int32) (int32, error) {
	if explicitPort > 0 {
		return explicitPort, nil
	}
	sgInfo, err := r.sgManager.FetchSGInfo(ctx, sgID)
	if err != nil {
		return 0, err
	}
	ports := sgInfo.SinglePortCIDRPorts(protocol)
	if len(ports) == 0 {
		return 0, NewResolutionErrorf("no single-port %s rules with CIDR ranges on %s, specify --port", protocol, sgID)
	}
	if len(ports) > 1 {
		return 0, NewResolutionErrorf("multiple candidate ports %v on %s, specify --port", ports, sgID)
	}
	r.logger.Info("inferred port from existing ingress rules", "securityGroupID", sgID, "port", ports[0])
	return ports[0], nil
}
