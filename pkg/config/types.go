package config

import (
	"time"
)

// GraphQLPath is the path of the GraphQL endpoint on an on-prem host.
const GraphQLPath = "/graphql"

// SDKVersion is reported in the default User-Agent.
const SDKVersion = "0.4.0"

// DefaultUserAgent identifies the SDK to the server.
const DefaultUserAgent = "onprem-go/" + SDKVersion

// Default configuration values.
const (
	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the default maximum number of retry attempts.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the default initial delay between retry attempts.
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxRetryDelay caps the exponential backoff.
	DefaultMaxRetryDelay = 30 * time.Second

	// DefaultPageLength is the page length used when a list call leaves it zero.
	DefaultPageLength = 10

	// MaxPageLength is the largest page a list call may request.
	MaxPageLength = 50

	// MinPageLength is the smallest page a list call may request.
	MinPageLength = 1

	// DefaultThumbnailSize is the edge length of generated thumbnails.
	DefaultThumbnailSize = 128

	// DefaultMaxIdleConns is the default maximum number of idle connections.
	DefaultMaxIdleConns = 100

	// DefaultMaxIdleConnsPerHost is the default maximum idle connections per host.
	DefaultMaxIdleConnsPerHost = 10

	// DefaultIdleConnTimeout is the default timeout for idle connections.
	DefaultIdleConnTimeout = 90 * time.Second

	// MaxMaxRetries is the maximum allowed retry count.
	MaxMaxRetries = 100

	// MaxTimeout is the maximum allowed request timeout.
	MaxTimeout = 10 * time.Minute
)
