package networking

import (
	"context"
	"net"
	"net/url"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Endpoint is the location of a running service, parsed from a URL.
type Endpoint struct {
	// public IPv4 address of the service.
	IP string

	// port from the URL, 0 when the URL carries none.
	Port int32
}

// hostLookup is the subset of net.Resolver used for service hostname resolution.
type hostLookup interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// TargetResolver resolves the address to authorize and, when a service URL is
// given, the service's location used for region/securityGroup discovery.
type TargetResolver interface {
	// ResolveCIDR returns exactly one CIDR describing the address to authorize.
	// An explicit CIDR wins, an explicit IP becomes a /32, otherwise the
	// caller's public IP is detected and becomes a /32.
	ResolveCIDR(ctx context.Context, explicitCIDR string, explicitIP string) (string, error)

	// ResolveEndpoint parses rawURL into the service's IP and port, resolving
	// the hostname via DNS when it isn't already a dotted quad.
	ResolveEndpoint(ctx context.Context, rawURL string) (Endpoint, error)
}

// NewDefaultTargetResolver constructs new defaultTargetResolver.
func NewDefaultTargetResolver(detector PublicIPDetector, logger logr.Logger) *defaultTargetResolver {
	return &defaultTargetResolver{
		detector: detector,
		resolver: net.DefaultResolver,
		logger:   logger,
	}
}

var _ TargetResolver = &defaultTargetResolver{}

// default implementation for TargetResolver
type defaultTargetResolver struct {
	detector PublicIPDetector
	resolver hostLookup
	logger   logr.Logger
}

func (r *defaultTargetResolver) ResolveCIDR(ctx context.Context, explicitCIDR string, explicitIP string) (string, error) {
	if len(explicitCIDR) > 0 {
		return explicitCIDR, nil
	}
	if len(explicitIP) > 0 {
		return explicitIP + "/32", nil
	}
	detectedIP, err := r.detector.DetectPublicIP(ctx)
	if err != nil {
		return "", err
	}
	r.logger.Info("detected caller public IP", "ip", detectedIP)
	return detectedIP + "/32", nil
}

func (r *defaultTargetResolver) ResolveEndpoint(ctx context.Context, rawURL string) (Endpoint, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return Endpoint{}, errors.Wrapf(err, "unable to parse URL %q", rawURL)
	}
	host := parsedURL.Hostname()
	if len(host) == 0 {
		return Endpoint{}, errors.Errorf("URL %q has no host", rawURL)
	}

	var port int32
	if portStr := parsedURL.Port(); len(portStr) > 0 {
		parsedPort, err := strconv.ParseInt(portStr, 10, 32)
		if err != nil {
			return Endpoint{}, errors.Wrapf(err, "unable to parse port in URL %q", rawURL)
		}
		if parsedPort < 1 || parsedPort > 65535 {
			return Endpoint{}, NewResolutionErrorf("invalid port %d in URL %q, must be 1-65535", parsedPort, rawURL)
		}
		port = int32(parsedPort)
	}

	if net.ParseIP(host) != nil {
		return Endpoint{IP: host, Port: port}, nil
	}

	addrs, err := r.resolver.LookupHost(ctx, host)
	if err != nil {
		return Endpoint{}, errors.Wrapf(err, "unable to resolve host %q", host)
	}
	if len(addrs) == 0 {
		return Endpoint{}, errors.Errorf("host %q resolved to no addresses", host)
	}
	r.logger.V(1).Info("resolved service host", "host", host, "ip", addrs[0])
	return Endpoint{IP: addrs[0], Port: port}, nil
}
