package config

import (
	"net"
	"net/url"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	defaultProtocol    = "tcp"
	defaultDescription = "codex-whitelist"
)

// Options holds the CLI configuration for a single run.
type Options struct {
	// IP is the explicit address to authorize, turned into a /32.
	IP string

	// CIDR is the explicit range to authorize, used verbatim.
	CIDR string

	// TargetIP is the public IP of the running service, used to locate its
	// region and securityGroup.
	TargetIP string

	// URL of the running service; its host seeds TargetIP and its port seeds
	// Port.
	URL string

	// Port of the ingress rule; 0 means infer from URL or existing rules.
	Port int32

	// Protocol of the ingress rule.
	Protocol string

	// Cluster and Service select the ECS service for securityGroup discovery.
	Cluster string
	Service string

	// SecurityGroupID skips securityGroup discovery entirely.
	SecurityGroupID string

	// Region overrides region resolution.
	Region string

	// Description recorded on the created rule.
	Description string

	// Revoke removes the rule instead of adding it.
	Revoke bool
}

// NewOptions constructs Options with defaults applied.
func NewOptions() Options {
	return Options{
		Protocol:    defaultProtocol,
		Description: defaultDescription,
	}
}

// BindFlags binds the command line flags to the fields in Options.
func (opts *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&opts.IP, "ip", opts.IP, "IP address to authorize (becomes a /32); auto-detected when neither --ip nor --cidr is given")
	fs.StringVar(&opts.CIDR, "cidr", opts.CIDR, "CIDR range to authorize, used verbatim")
	fs.StringVar(&opts.TargetIP, "target-ip", opts.TargetIP, "Public IP of the service, used to locate its region and security group")
	fs.StringVar(&opts.URL, "url", opts.URL, "URL of the service; host locates the security group, port seeds --port")
	fs.Int32Var(&opts.Port, "port", opts.Port, "Port of the ingress rule; inferred from --url or existing rules when omitted")
	fs.StringVar(&opts.Protocol, "protocol", opts.Protocol, "Protocol of the ingress rule")
	fs.StringVar(&opts.Cluster, "cluster", opts.Cluster, "ECS cluster for security group discovery")
	fs.StringVar(&opts.Service, "service", opts.Service, "ECS service for security group discovery")
	fs.StringVar(&opts.SecurityGroupID, "sg", opts.SecurityGroupID, "Security group ID, skips discovery")
	fs.StringVar(&opts.Region, "region", opts.Region, "AWS region; inferred from --target-ip or environment when omitted")
	fs.StringVar(&opts.Description, "description", opts.Description, "Description recorded on the created rule")
	fs.BoolVar(&opts.Revoke, "revoke", opts.Revoke, "Revoke the matching ingress rule instead of adding it")
}

// Validate rejects malformed or contradictory flag combinations.
func (opts *Options) Validate() error {
	if len(opts.IP) > 0 && len(opts.CIDR) > 0 {
		return errors.New("--ip and --cidr are mutually exclusive")
	}
	if len(opts.IP) > 0 && net.ParseIP(opts.IP) == nil {
		return errors.Errorf("invalid --ip %q", opts.IP)
	}
	if len(opts.CIDR) > 0 {
		if _, _, err := net.ParseCIDR(opts.CIDR); err != nil {
			return errors.Errorf("invalid --cidr %q", opts.CIDR)
		}
	}
	if len(opts.TargetIP) > 0 && net.ParseIP(opts.TargetIP) == nil {
		return errors.Errorf("invalid --target-ip %q", opts.TargetIP)
	}
	if len(opts.URL) > 0 {
		if _, err := url.Parse(opts.URL); err != nil {
			return errors.Errorf("invalid --url %q", opts.URL)
		}
	}
	if opts.Port < 0 || opts.Port > 65535 {
		return errors.Errorf("invalid --port %d, must be within 1-65535 (0 leaves the port unset for inference)", opts.Port)
	}
	if len(opts.Protocol) == 0 {
		return errors.New("--protocol must not be empty")
	}
	return nil
}
