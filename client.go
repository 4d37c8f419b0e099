package onprem

import (
	"github.com/superb-ai/onprem-go/pkg/transport"
)

// Client is the entry point to the on-prem API. It is safe for concurrent
// use; the resource clients it returns hold no state of their own.
type Client struct {
	config *Config
	exec   transport.Executor
	blobs  transport.BlobStore
	logger StructuredLogger

	// Sub-clients
	datasets        *DatasetsClient
	data            *DataClient
	slices          *SlicesClient
	models          *ModelsClient
	trainingReports *TrainingReportsClient
	predictions     *PredictionsClient
	diagnoses       *DiagnosesClient
	reports         *ReportsClient
	contents        *ContentsClient
}

// New creates a new client.
//
// Example:
//
//	client, err := onprem.New(
//	    onprem.WithEndpoint("https://onprem.example.com/graphql"),
//	    onprem.WithHeader("Authorization", "Bearer "+token),
//	)
func New(opts ...ConfigOption) (*Client, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new client from a Config struct.
//
// Example:
//
//	client, err := onprem.NewWithConfig(&onprem.Config{
//	    Endpoint:   "https://onprem.example.com/graphql",
//	    MaxRetries: 5,
//	})
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilRequest
	}

	// Make a copy to avoid modifying the original
	cfgCopy := *cfg
	cfgCopy.applyDefaults()

	if err := cfgCopy.validate(); err != nil {
		return nil, err
	}

	logger := cfgCopy.logger()
	var tlogger transport.Logger
	if logger != nil {
		tlogger = logger
	}

	exec := cfgCopy.Transport
	if exec == nil {
		hooks := transport.NewHookChain(tlogger, cfgCopy.Metrics)
		if len(cfgCopy.Headers) > 0 {
			hooks.Add("headers", transport.HeaderHook(cfgCopy.Headers.Clone()), transport.HookPriorityCritical)
		}
		if tlogger != nil {
			hooks.Add("logging", transport.LoggingHook(tlogger), transport.HookPriorityObservational)
		}
		if cfgCopy.Metrics != nil {
			hooks.Add("metrics", transport.MetricsHook(cfgCopy.Metrics), transport.HookPriorityObservational)
		}
		for _, h := range cfgCopy.Hooks {
			hooks.Add(h.Name, h.Hook, h.Priority)
		}

		gql, err := transport.New(transport.Config{
			Endpoint:   cfgCopy.Endpoint,
			HTTPClient: cfgCopy.HTTPClient,
			UserAgent:  cfgCopy.UserAgent,
			Retry:      cfgCopy.retryStrategy(),
			Hooks:      hooks,
			Logger:     tlogger,
			Metrics:    cfgCopy.Metrics,
		})
		if err != nil {
			return nil, err
		}
		exec = gql
	}

	blobs := cfgCopy.BlobStore
	if blobs == nil {
		blobs = transport.NewHTTPBlobStore(transport.BlobConfig{
			HTTPClient: cfgCopy.HTTPClient,
			Retry:      cfgCopy.retryStrategy(),
			Logger:     tlogger,
			Metrics:    cfgCopy.Metrics,
		})
	}

	c := &Client{
		config: &cfgCopy,
		exec:   exec,
		blobs:  blobs,
		logger: logger,
	}

	// Initialize sub-clients
	c.datasets = &DatasetsClient{client: c}
	c.data = &DataClient{client: c}
	c.slices = &SlicesClient{client: c}
	c.models = &ModelsClient{client: c}
	c.trainingReports = &TrainingReportsClient{client: c}
	c.predictions = &PredictionsClient{client: c}
	c.diagnoses = &DiagnosesClient{client: c}
	c.reports = &ReportsClient{client: c}
	c.contents = &ContentsClient{client: c}

	if logger != nil {
		logger.Debug("onprem: client created", "config", cfgCopy.String())
	}
	return c, nil
}

// Endpoint returns the configured GraphQL endpoint. It is empty when a
// custom transport is used without one.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// Close releases idle HTTP connections. The client remains usable; new
// requests open new connections.
func (c *Client) Close() {
	if c.config.HTTPClient != nil {
		c.config.HTTPClient.CloseIdleConnections()
	}
}

// logDebug logs a debug-level message if logging is enabled.
func (c *Client) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

// Datasets returns the datasets sub-client.
func (c *Client) Datasets() *DatasetsClient {
	return c.datasets
}

// Data returns the data items sub-client.
func (c *Client) Data() *DataClient {
	return c.data
}

// Slices returns the slices sub-client.
func (c *Client) Slices() *SlicesClient {
	return c.slices
}

// Models returns the models sub-client.
func (c *Client) Models() *ModelsClient {
	return c.models
}

// TrainingReports returns the training reports sub-client.
func (c *Client) TrainingReports() *TrainingReportsClient {
	return c.trainingReports
}

// Predictions returns the prediction sets sub-client.
func (c *Client) Predictions() *PredictionsClient {
	return c.predictions
}

// Diagnoses returns the diagnoses sub-client.
func (c *Client) Diagnoses() *DiagnosesClient {
	return c.diagnoses
}

// Reports returns the analytics reports sub-client.
func (c *Client) Reports() *ReportsClient {
	return c.reports
}

// Contents returns the contents sub-client.
func (c *Client) Contents() *ContentsClient {
	return c.contents
}
