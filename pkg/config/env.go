package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names for configuration.
const (
	EnvServerURL  = "SUNRISE_SERVER_URL"
	EnvSDKHost    = "SUPERB_SYSTEM_SDK_HOST"
	EnvDebug      = "ONPREM_DEBUG"
	EnvTimeout    = "ONPREM_TIMEOUT"
	EnvMaxRetries = "ONPREM_MAX_RETRIES"
)

// GetEnvString returns the value of an environment variable or a default.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns true if the env var is "true" or "1".
func GetEnvBool(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1"
}

// GetEnvInt returns the integer value of an env var, or defaultValue when
// it is unset or not a number.
func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetEnvDuration parses a duration such as "30s" from an env var, or returns
// defaultValue when it is unset or invalid.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetEnvEndpoint resolves the GraphQL endpoint from the environment.
// SUNRISE_SERVER_URL is used as is; otherwise SUPERB_SYSTEM_SDK_HOST is
// joined with GraphQLPath. Returns "" when neither is set.
func GetEnvEndpoint() string {
	if v := os.Getenv(EnvServerURL); v != "" {
		return v
	}
	if host := os.Getenv(EnvSDKHost); host != "" {
		return EndpointFromHost(host)
	}
	return ""
}

// EndpointFromHost appends GraphQLPath to host unless it is already there.
func EndpointFromHost(host string) string {
	host = strings.TrimRight(host, "/")
	if strings.HasSuffix(host, GraphQLPath) {
		return host
	}
	return host + GraphQLPath
}
