package onprem

import (
	"fmt"
	"os"

	pkgconfig "github.com/superb-ai/onprem-go/pkg/config"
)

// Environment variable names for configuration.
const (
	// EnvServerURL is the full GraphQL URL of the server.
	EnvServerURL = pkgconfig.EnvServerURL
	// EnvSDKHost is the server host; "/graphql" is appended to it.
	EnvSDKHost = pkgconfig.EnvSDKHost
	// EnvDebug enables debug mode when "true" or "1".
	EnvDebug = pkgconfig.EnvDebug
	// EnvTimeout is the request timeout as a Go duration, e.g. "45s".
	EnvTimeout = pkgconfig.EnvTimeout
	// EnvMaxRetries is the maximum number of retries.
	EnvMaxRetries = pkgconfig.EnvMaxRetries
)

// NewFromEnv creates a new client using environment variables for
// configuration. The endpoint comes from SUNRISE_SERVER_URL or, failing
// that, SUPERB_SYSTEM_SDK_HOST. ONPREM_DEBUG, ONPREM_TIMEOUT and
// ONPREM_MAX_RETRIES are optional. Explicit options override the
// environment.
//
// Example:
//
//	client, err := onprem.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFromEnv(opts ...ConfigOption) (*Client, error) {
	endpoint := pkgconfig.GetEnvEndpoint()

	// Prepend env var options so explicit options can override them
	envOpts := make([]ConfigOption, 0, 4)
	if endpoint != "" {
		envOpts = append(envOpts, WithEndpoint(endpoint))
	}
	if pkgconfig.GetEnvBool(EnvDebug) {
		envOpts = append(envOpts, WithDebug(true))
	}
	if d := pkgconfig.GetEnvDuration(EnvTimeout, 0); d > 0 {
		envOpts = append(envOpts, WithTimeout(d))
	}
	if os.Getenv(EnvMaxRetries) != "" {
		n := pkgconfig.GetEnvInt(EnvMaxRetries, -1)
		switch {
		case n < 0:
			return nil, fmt.Errorf("onprem: %s must be a non-negative integer", EnvMaxRetries)
		case n == 0:
			envOpts = append(envOpts, WithoutRetries())
		default:
			envOpts = append(envOpts, WithMaxRetries(n))
		}
	}

	cfg := &Config{}
	for _, opt := range append(envOpts, opts...) {
		opt(cfg)
	}
	if cfg.Endpoint == "" && cfg.Transport == nil {
		return nil, fmt.Errorf("onprem: %s or %s environment variable is required: %w",
			EnvServerURL, EnvSDKHost, ErrMissingEndpoint)
	}
	return NewWithConfig(cfg)
}
