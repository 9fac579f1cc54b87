package networking

import (
	"context"

	"github.com/go-logr/logr"
)

// SecurityGroupAuthorizer idempotently applies and removes ingress rules.
// Repeated invocations with identical inputs are safe no-ops.
type SecurityGroupAuthorizer interface {
	// EnsureIngress makes sure the rule exists on the securityGroup. It returns
	// true when a rule was inserted, false when an equivalent rule already
	// existed.
	EnsureIngress(ctx context.Context, sgID string, rule IngressRule) (bool, error)

	// RemoveIngress makes sure the rule is absent from the securityGroup. It
	// returns true when a rule was revoked, false when no matching rule existed.
	RemoveIngress(ctx context.Context, sgID string, rule IngressRule) (bool, error)
}

// NewDefaultSecurityGroupAuthorizer constructs new defaultSecurityGroupAuthorizer.
func NewDefaultSecurityGroupAuthorizer(sgManager SecurityGroupManager, logger logr.Logger) *defaultSecurityGroupAuthorizer {
	return &defaultSecurityGroupAuthorizer{
		sgManager: sgManager,
		logger:    logger,
	}
}

var _ SecurityGroupAuthorizer = &defaultSecurityGroupAuthorizer{}

// default implementation for SecurityGroupAuthorizer
type defaultSecurityGroupAuthorizer struct {
	sgManager SecurityGroupManager
	logger    logr.Logger
}

func (a *defaultSecurityGroupAuthorizer) EnsureIngress(ctx context.Context, sgID string, rule IngressRule) (bool, error) {
	sgInfo, err := a.sgManager.FetchSGInfo(ctx, sgID)
	if err != nil {
		return false, err
	}
	if sgInfo.HasIngressRule(rule.Protocol, rule.Port, rule.CIDR) {
		a.logger.Info("ingress already allowed",
			"securityGroupID", sgID,
			"protocol", rule.Protocol,
			"port", rule.Port,
			"cidr", rule.CIDR)
		return false, nil
	}
	if err := a.sgManager.AuthorizeSGIngress(ctx, sgID, rule); err != nil {
		return false, err
	}
	return true, nil
}

func (a *defaultSecurityGroupAuthorizer) RemoveIngress(ctx context.Context, sgID string, rule IngressRule) (bool, error) {
	sgInfo, err := a.sgManager.FetchSGInfo(ctx, sgID)
	if err != nil {
		return false, err
	}
	if !sgInfo.HasIngressRule(rule.Protocol, rule.Port, rule.CIDR) {
		a.logger.Info("no matching ingress rule",
			"securityGroupID", sgID,
			"protocol", rule.Protocol,
			"port", rule.Port,
			"cidr", rule.CIDR)
		return false, nil
	}
	if err := a.sgManager.RevokeSGIngress(ctx, sgID, rule); err != nil {
		return false, err
	}
	return true, nil
}
