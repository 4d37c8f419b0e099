package onprem

import (
	"net/http"
	"time"

	"github.com/superb-ai/onprem-go/pkg/transport"
)

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithEndpoint sets the GraphQL endpoint URL.
func WithEndpoint(endpoint string) ConfigOption {
	return func(c *Config) {
		c.Endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(maxRetries int) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = maxRetries
	}
}

// WithRetryDelay sets the initial delay between retry attempts.
func WithRetryDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryDelay = delay
	}
}

// WithoutRetries sends every request exactly once.
func WithoutRetries() ConfigOption {
	return func(c *Config) {
		c.DisableRetries = true
	}
}

// WithRetryStrategy sets a custom retry strategy. It overrides
// WithMaxRetries and WithRetryDelay.
func WithRetryStrategy(strategy transport.RetryStrategy) ConfigOption {
	return func(c *Config) {
		c.RetryStrategy = strategy
	}
}

// WithHeader adds a header sent on every GraphQL request. It may be given
// more than once.
func WithHeader(key, value string) ConfigOption {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = http.Header{}
		}
		c.Headers.Add(key, value)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ConfigOption {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithLogger sets a printf-style logger.
//
// Prefer WithStructuredLogger:
//
//	client, _ := onprem.New(
//	    onprem.WithEndpoint(endpoint),
//	    onprem.WithStructuredLogger(onprem.WrapStdLogger(log.Default())),
//	)
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStructuredLogger sets a structured logger.
// This takes precedence over Logger set via WithLogger.
//
// Example with slog:
//
//	client, _ := onprem.New(
//	    onprem.WithEndpoint(endpoint),
//	    onprem.WithStructuredLogger(onprem.NewSlogAdapter(slog.Default())),
//	)
func WithStructuredLogger(logger StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.StructuredLogger = logger
	}
}

// WithMetrics sets a metrics collector.
func WithMetrics(metrics Metrics) ConfigOption {
	return func(c *Config) {
		c.Metrics = metrics
	}
}

// WithHook adds an HTTP hook to the GraphQL transport.
func WithHook(name string, hook transport.Hook, priority transport.HookPriority) ConfigOption {
	return func(c *Config) {
		c.Hooks = append(c.Hooks, transport.ClassifiedHook{Name: name, Hook: hook, Priority: priority})
	}
}

// WithTransport replaces the HTTP GraphQL transport.
func WithTransport(executor transport.Executor) ConfigOption {
	return func(c *Config) {
		c.Transport = executor
	}
}

// WithBlobStore replaces the HTTP blob store.
func WithBlobStore(store transport.BlobStore) ConfigOption {
	return func(c *Config) {
		c.BlobStore = store
	}
}

// WithThumbnailSize sets the edge length of thumbnails made by UploadImage.
func WithThumbnailSize(size int) ConfigOption {
	return func(c *Config) {
		c.ThumbnailSize = size
	}
}
