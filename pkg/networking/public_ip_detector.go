package networking

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"
)

const (
	// defaultIPEchoEndpoint returns the caller's public IPv4 address as plain text.
	defaultIPEchoEndpoint = "https://checkip.amazonaws.com"

	// echo responses are a single address; anything larger is garbage.
	maxIPEchoResponseSize = 64
)

// PublicIPDetector detects the caller's public IP address.
type PublicIPDetector interface {
	// DetectPublicIP returns the caller's public IPv4 address.
	DetectPublicIP(ctx context.Context) (string, error)
}

// NewDefaultPublicIPDetector constructs new defaultPublicIPDetector.
// An empty endpoint selects the default echo service.
func NewDefaultPublicIPDetector(endpoint string) *defaultPublicIPDetector {
	if len(endpoint) == 0 {
		endpoint = defaultIPEchoEndpoint
	}
	return &defaultPublicIPDetector{
		httpClient: cleanhttp.DefaultClient(),
		endpoint:   endpoint,
	}
}

var _ PublicIPDetector = &defaultPublicIPDetector{}

// default implementation for PublicIPDetector
type defaultPublicIPDetector struct {
	httpClient *http.Client
	endpoint   string
}

func (d *defaultPublicIPDetector) DetectPublicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "unable to build public IP detection request")
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "unable to detect public IP via %s", d.endpoint)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("public IP detection via %s returned status %d", d.endpoint, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIPEchoResponseSize))
	if err != nil {
		return "", errors.Wrapf(err, "unable to read public IP detection response from %s", d.endpoint)
	}
	detectedIP := strings.TrimSpace(string(body))
	if len(detectedIP) == 0 {
		return "", errors.Errorf("public IP detection via %s returned an empty response", d.endpoint)
	}
	if net.ParseIP(detectedIP) == nil {
		return "", errors.Errorf("public IP detection via %s returned %q, which is not an IP address", d.endpoint, detectedIP)
	}
	return detectedIP, nil
}
