package onprem

import (
	"errors"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvServerURL, EnvSDKHost, EnvDebug, EnvTimeout, EnvMaxRetries} {
		t.Setenv(k, "")
	}
}

func TestNewFromEnv_ServerURL(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvServerURL, "https://onprem.example.com/graphql")
	t.Setenv(EnvTimeout, "45s")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.Endpoint() != "https://onprem.example.com/graphql" {
		t.Errorf("Endpoint() = %q", c.Endpoint())
	}
	if c.config.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", c.config.Timeout)
	}
}

func TestNewFromEnv_SDKHost(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSDKHost, "http://localhost:8080/")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.Endpoint() != "http://localhost:8080/graphql" {
		t.Errorf("Endpoint() = %q", c.Endpoint())
	}
}

func TestNewFromEnv_ServerURLWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvServerURL, "https://a.example.com/graphql")
	t.Setenv(EnvSDKHost, "https://b.example.com")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.Endpoint() != "https://a.example.com/graphql" {
		t.Errorf("Endpoint() = %q", c.Endpoint())
	}
}

func TestNewFromEnv_MissingEndpoint(t *testing.T) {
	clearEnv(t)

	_, err := NewFromEnv()
	if !errors.Is(err, ErrMissingEndpoint) {
		t.Errorf("err = %v, want ErrMissingEndpoint", err)
	}
}

func TestNewFromEnv_ExplicitOptionsOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvServerURL, "https://env.example.com/graphql")

	c, err := NewFromEnv(WithEndpoint("https://explicit.example.com/graphql"))
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.Endpoint() != "https://explicit.example.com/graphql" {
		t.Errorf("Endpoint() = %q", c.Endpoint())
	}
}

func TestNewFromEnv_MaxRetries(t *testing.T) {
	tests := []struct {
		value       string
		wantErr     bool
		wantRetries int
		wantDisable bool
	}{
		{value: "5", wantRetries: 5},
		{value: "0", wantRetries: DefaultMaxRetries, wantDisable: true},
		{value: "-2", wantErr: true},
		{value: "many", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvServerURL, "https://onprem.example.com/graphql")
			t.Setenv(EnvMaxRetries, tt.value)

			c, err := NewFromEnv()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFromEnv: %v", err)
			}
			if c.config.MaxRetries != tt.wantRetries || c.config.DisableRetries != tt.wantDisable {
				t.Errorf("MaxRetries = %d, DisableRetries = %v", c.config.MaxRetries, c.config.DisableRetries)
			}
		})
	}
}

func TestNewFromEnv_Debug(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvServerURL, "https://onprem.example.com/graphql")
	t.Setenv(EnvDebug, "1")

	c, err := NewFromEnv(WithStructuredLogger(NopLogger{}))
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if !c.config.Debug {
		t.Error("Debug should be enabled")
	}
}
