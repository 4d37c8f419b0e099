package onprem

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	pkgconfig "github.com/superb-ai/onprem-go/pkg/config"
	"github.com/superb-ai/onprem-go/pkg/transport"
)

// Default configuration values (re-exported from pkg/config).
const (
	// DefaultTimeout is the default request timeout.
	DefaultTimeout = pkgconfig.DefaultTimeout

	// DefaultMaxRetries is the default maximum number of retry attempts.
	DefaultMaxRetries = pkgconfig.DefaultMaxRetries

	// DefaultRetryDelay is the default initial delay between retry attempts.
	DefaultRetryDelay = pkgconfig.DefaultRetryDelay

	// DefaultPageLength is the page length used when a list call leaves it zero.
	DefaultPageLength = pkgconfig.DefaultPageLength

	// MaxPageLength is the largest page a list call may request.
	MaxPageLength = pkgconfig.MaxPageLength

	// DefaultThumbnailSize is the edge length of thumbnails made by UploadImage.
	DefaultThumbnailSize = pkgconfig.DefaultThumbnailSize

	// MaxMaxRetries is the maximum allowed retry count.
	MaxMaxRetries = pkgconfig.MaxMaxRetries

	// MaxTimeout is the maximum allowed request timeout.
	MaxTimeout = pkgconfig.MaxTimeout
)

// Config holds the configuration for the client.
type Config struct {
	// Endpoint is the full URL of the GraphQL endpoint (required unless
	// Transport is set).
	Endpoint string

	// HTTPClient is used for GraphQL requests and blob transfers.
	// If not set, a client with Timeout and pooled connections is built.
	HTTPClient *http.Client

	// Timeout is the request timeout.
	// Defaults to 30 seconds if not set.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for transient
	// failures. Defaults to 3 if not set. Use DisableRetries to turn
	// retrying off.
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts.
	// Defaults to 1 second if not set.
	RetryDelay time.Duration

	// DisableRetries sends every request exactly once.
	DisableRetries bool

	// RetryStrategy overrides MaxRetries and RetryDelay.
	RetryStrategy transport.RetryStrategy

	// Headers are added to every GraphQL request.
	Headers http.Header

	// UserAgent is sent on every GraphQL request.
	UserAgent string

	// Debug enables debug logging to stderr when no logger is set.
	Debug bool

	// Logger is used for SDK logging (printf-style).
	// For structured logging, use StructuredLogger instead.
	Logger Logger

	// StructuredLogger is used for structured SDK logging.
	// If set, this takes precedence over Logger.
	StructuredLogger StructuredLogger

	// Metrics is used for SDK telemetry.
	// If nil, no metrics are collected.
	Metrics Metrics

	// Hooks run around every GraphQL HTTP attempt, after the built-in
	// header, logging and metrics hooks.
	Hooks []transport.ClassifiedHook

	// Transport replaces the HTTP GraphQL transport. Tests use it to
	// substitute a recording fake.
	Transport transport.Executor

	// BlobStore replaces the HTTP blob store.
	BlobStore transport.BlobStore

	// ThumbnailSize is the edge length of thumbnails made by UploadImage.
	// Defaults to 128 if not set.
	ThumbnailSize int
}

// String returns a string representation of the config that is safe to log.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Endpoint: %q, Timeout: %v, MaxRetries: %d, Headers: %d, Debug: %t}",
		redactEndpoint(c.Endpoint),
		c.Timeout,
		c.MaxRetries,
		len(c.Headers),
		c.Debug,
	)
}

// redactEndpoint drops any userinfo from an endpoint URL.
func redactEndpoint(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.User == nil {
		return endpoint
	}
	u.User = nil
	return u.String()
}

// applyDefaults sets default values for unset configuration options.
func (c *Config) applyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}

	if c.RetryDelay == 0 {
		c.RetryDelay = DefaultRetryDelay
	}

	if c.UserAgent == "" {
		c.UserAgent = pkgconfig.DefaultUserAgent
	}

	if c.ThumbnailSize == 0 {
		c.ThumbnailSize = DefaultThumbnailSize
	}

	// Set default logger if debug is enabled and no logger is set
	if c.Debug && c.Logger == nil && c.StructuredLogger == nil {
		c.Logger = &defaultLogger{
			logger: log.New(os.Stderr, "onprem: ", log.LstdFlags),
		}
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout: c.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        pkgconfig.DefaultMaxIdleConns,
				MaxIdleConnsPerHost: pkgconfig.DefaultMaxIdleConnsPerHost,
				IdleConnTimeout:     pkgconfig.DefaultIdleConnTimeout,
			},
		}
	}
}

// validate checks that the configuration is valid.
func (c *Config) validate() error {
	if c.Transport == nil {
		if c.Endpoint == "" {
			return ErrMissingEndpoint
		}
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("onprem: invalid endpoint: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("onprem: endpoint must be an http or https URL, got %q", c.Endpoint)
		}
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("onprem: max retries cannot be negative, got %d", c.MaxRetries)
	}
	if c.MaxRetries > MaxMaxRetries {
		return fmt.Errorf("onprem: max retries cannot exceed %d, got %d", MaxMaxRetries, c.MaxRetries)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("onprem: timeout cannot be negative")
	}
	if c.Timeout > MaxTimeout {
		return fmt.Errorf("onprem: timeout cannot exceed %v", MaxTimeout)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("onprem: retry delay cannot be negative")
	}
	if c.ThumbnailSize < 1 {
		return fmt.Errorf("onprem: thumbnail size must be at least 1, got %d", c.ThumbnailSize)
	}
	return nil
}

// retryStrategy returns the strategy the transport should use.
func (c *Config) retryStrategy() transport.RetryStrategy {
	switch {
	case c.RetryStrategy != nil:
		return c.RetryStrategy
	case c.DisableRetries:
		return transport.NoRetry{}
	}
	b := transport.NewExponentialBackoff()
	b.InitialDelay = c.RetryDelay
	b.MaxRetries = c.MaxRetries
	return b
}

// logger returns the structured logger in effect, or nil.
func (c *Config) logger() StructuredLogger {
	if c.StructuredLogger != nil {
		return c.StructuredLogger
	}
	if c.Logger != nil {
		return WrapPrintfLogger(c.Logger)
	}
	return nil
}

// DefaultConfig returns a configuration for endpoint with defaults applied
// at client construction.
//
// Example:
//
//	cfg := onprem.DefaultConfig("https://onprem.example.com/graphql")
//	client, err := onprem.NewWithConfig(cfg)
func DefaultConfig(endpoint string) *Config {
	return &Config{Endpoint: endpoint}
}

// DevelopmentConfig returns a configuration with debug logging enabled and
// retries disabled so failures surface immediately.
func DevelopmentConfig(endpoint string) *Config {
	return &Config{
		Endpoint:       endpoint,
		Debug:          true,
		DisableRetries: true,
	}
}
