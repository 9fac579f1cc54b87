package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	awscloud "github.com/codex-trading/ingress-authorizer/pkg/aws"
	"github.com/codex-trading/ingress-authorizer/pkg/config"
	"github.com/codex-trading/ingress-authorizer/pkg/networking"
)

const (
	exitCodeUpstreamError = 1
	exitCodeUsageError    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := config.NewOptions()
	fs := pflag.NewFlagSet("whitelist-ip", pflag.ContinueOnError)
	opts.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return exitCodeUsageError
	}

	logger := newLogger()
	if err := opts.Validate(); err != nil {
		logger.Error(err, "invalid flags")
		fmt.Fprint(os.Stderr, fs.FlagUsages())
		return exitCodeUsageError
	}

	if err := authorizeIngress(context.Background(), opts, logger); err != nil {
		var resolutionErr *networking.ResolutionError
		if errors.As(err, &resolutionErr) {
			logger.Error(err, "resolution failed")
			return exitCodeUsageError
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			logger.Error(err, "AWS API call failed", "code", apiErr.ErrorCode())
			return exitCodeUpstreamError
		}
		logger.Error(err, "run failed")
		return exitCodeUpstreamError
	}
	return 0
}

// authorizeIngress runs the resolution pipeline in its fixed dependency order:
// target, region, securityGroup, port, then the idempotent rule application.
func authorizeIngress(ctx context.Context, opts config.Options, logger logr.Logger) error {
	targetResolver := networking.NewDefaultTargetResolver(networking.NewDefaultPublicIPDetector(""), logger)

	targetIP := opts.TargetIP
	port := opts.Port
	if len(opts.URL) > 0 {
		endpoint, err := targetResolver.ResolveEndpoint(ctx, opts.URL)
		if err != nil {
			return err
		}
		if len(targetIP) == 0 {
			targetIP = endpoint.IP
		}
		if port == 0 {
			port = endpoint.Port
		}
	}

	cidr, err := targetResolver.ResolveCIDR(ctx, opts.CIDR, opts.IP)
	if err != nil {
		return err
	}

	regionResolver := networking.NewDefaultRegionResolver(awscloud.NewEC2ForRegion, awscloud.SharedConfigRegion, logger)
	region, err := regionResolver.Resolve(ctx, opts.Region, targetIP)
	if err != nil {
		return err
	}

	cloud, err := awscloud.NewCloud(ctx, region, logger)
	if err != nil {
		return err
	}

	sgResolver := networking.NewDefaultSecurityGroupResolver(cloud.EC2(), cloud.ECS(), logger)
	sgID, err := sgResolver.Resolve(ctx, networking.SecurityGroupResolveOptions{
		SecurityGroupID: opts.SecurityGroupID,
		TargetIP:        targetIP,
		Cluster:         opts.Cluster,
		Service:         opts.Service,
	})
	if err != nil {
		return err
	}

	sgManager := networking.NewDefaultSecurityGroupManager(cloud.EC2(), logger)
	portResolver := networking.NewDefaultPortResolver(sgManager, logger)
	resolvedPort, err := portResolver.Resolve(ctx, sgID, opts.Protocol, port)
	if err != nil {
		return err
	}

	rule := networking.IngressRule{
		Protocol:    opts.Protocol,
		Port:        resolvedPort,
		CIDR:        cidr,
		Description: opts.Description,
	}
	authorizer := networking.NewDefaultSecurityGroupAuthorizer(sgManager, logger)
	if opts.Revoke {
		_, err := authorizer.RemoveIngress(ctx, sgID, rule)
		return err
	}
	_, err = authorizer.EnsureIngress(ctx, sgID, rule)
	return err
}

func newLogger() logr.Logger {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.DisableStacktrace = true
	return zapr.NewLogger(zap.Must(zapConfig.Build()))
}
