package transport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Logger is the leveled logger the transport writes to. The root package's
// StructuredLogger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Metrics receives transport telemetry.
type Metrics interface {
	IncrementCounter(name string, value int64)
	RecordDuration(name string, duration time.Duration)
}

// Metric names.
const (
	MetricRequests  = "onprem.graphql.requests"
	MetricErrors    = "onprem.graphql.errors"
	MetricDuration  = "onprem.graphql.duration"
	MetricRetries   = "onprem.graphql.retries"
	MetricBlobBytes = "onprem.blob.bytes"
	MetricHookFails = "onprem.hooks.failures"
)

type operationKey struct{}

// WithOperation returns a context carrying the logical operation name, so
// hooks can label requests.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

// OperationFromContext returns the operation name set by WithOperation.
func OperationFromContext(ctx context.Context) string {
	name, _ := ctx.Value(operationKey{}).(string)
	return name
}

// HookPriority determines how hook failures are handled.
type HookPriority int

const (
	// HookPriorityObservational hooks are logged on failure and the request
	// continues.
	HookPriorityObservational HookPriority = iota
	// HookPriorityCritical hooks abort the request on failure.
	HookPriorityCritical
)

// String returns the priority name.
func (p HookPriority) String() string {
	switch p {
	case HookPriorityObservational:
		return "observational"
	case HookPriorityCritical:
		return "critical"
	}
	return "unknown"
}

// Hook observes or modifies every GraphQL HTTP request.
type Hook interface {
	// BeforeRequest may modify req. A non-nil error aborts critical hooks.
	BeforeRequest(ctx context.Context, req *http.Request) error
	// AfterResponse is called once per attempt with the response or the
	// error that prevented one.
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// HookFunc adapts plain functions to Hook. Nil fields are skipped.
type HookFunc struct {
	Before func(ctx context.Context, req *http.Request) error
	After  func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// BeforeRequest implements Hook.
func (f HookFunc) BeforeRequest(ctx context.Context, req *http.Request) error {
	if f.Before != nil {
		return f.Before(ctx, req)
	}
	return nil
}

// AfterResponse implements Hook.
func (f HookFunc) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if f.After != nil {
		f.After(ctx, req, resp, duration, err)
	}
}

// ClassifiedHook is a named hook with a priority.
type ClassifiedHook struct {
	Name     string
	Hook     Hook
	Priority HookPriority
}

// HookChain runs classified hooks in order before a request and in reverse
// order after it. Panics in hooks are recovered and logged.
type HookChain struct {
	hooks   []ClassifiedHook
	logger  Logger
	metrics Metrics
}

// NewHookChain creates an empty chain. logger and metrics may be nil.
func NewHookChain(logger Logger, metrics Metrics) *HookChain {
	return &HookChain{logger: logger, metrics: metrics}
}

// Add appends a hook.
func (c *HookChain) Add(name string, hook Hook, priority HookPriority) {
	c.hooks = append(c.hooks, ClassifiedHook{Name: name, Hook: hook, Priority: priority})
}

// Len returns the number of hooks.
func (c *HookChain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.hooks)
}

// BeforeRequest implements Hook.
func (c *HookChain) BeforeRequest(ctx context.Context, req *http.Request) error {
	if c == nil {
		return nil
	}
	for _, ch := range c.hooks {
		if err := c.before(ctx, req, ch); err != nil {
			return err
		}
	}
	return nil
}

func (c *HookChain) before(ctx context.Context, req *http.Request, ch ClassifiedHook) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logf("hook panicked", ch.Name, r)
			err = nil
		}
	}()
	err = ch.Hook.BeforeRequest(ctx, req)
	if err == nil {
		return nil
	}
	if c.metrics != nil {
		c.metrics.IncrementCounter(MetricHookFails, 1)
	}
	if ch.Priority == HookPriorityObservational {
		c.logf("observational hook failed", ch.Name, err)
		return nil
	}
	return fmt.Errorf("onprem: hook %q failed: %w", ch.Name, err)
}

// AfterResponse implements Hook.
func (c *HookChain) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if c == nil {
		return
	}
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.after(ctx, req, resp, duration, err, c.hooks[i])
	}
}

func (c *HookChain) after(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, reqErr error, ch ClassifiedHook) {
	defer func() {
		if r := recover(); r != nil {
			c.logf("hook panicked", ch.Name, r)
		}
	}()
	ch.Hook.AfterResponse(ctx, req, resp, duration, reqErr)
}

func (c *HookChain) logf(msg, name string, detail any) {
	if c.logger != nil {
		c.logger.Warn("onprem: "+msg, "hook", name, "detail", detail)
	}
}

// HeaderHook sets fixed headers on every request.
func HeaderHook(headers http.Header) Hook {
	return HookFunc{
		Before: func(_ context.Context, req *http.Request) error {
			for k, vs := range headers {
				req.Header.Del(k)
				for _, v := range vs {
					req.Header.Add(k, v)
				}
			}
			return nil
		},
	}
}

// LoggingHook logs each attempt at debug level and failures at warn level.
func LoggingHook(logger Logger) Hook {
	return HookFunc{
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			op := OperationFromContext(ctx)
			switch {
			case err != nil:
				logger.Warn("onprem: request failed", "operation", op, "duration", duration, "error", err)
			case resp != nil:
				logger.Debug("onprem: request completed", "operation", op, "status", resp.StatusCode, "duration", duration)
			}
		},
	}
}

// MetricsHook records request counts, errors and durations.
func MetricsHook(m Metrics) Hook {
	if m == nil {
		return HookFunc{}
	}
	return HookFunc{
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			m.IncrementCounter(MetricRequests, 1)
			m.RecordDuration(MetricDuration, duration)
			if err != nil || (resp != nil && resp.StatusCode >= 400) {
				m.IncrementCounter(MetricErrors, 1)
			}
			if resp != nil {
				m.IncrementCounter(MetricRequests+".status."+strconv.Itoa(resp.StatusCode), 1)
			}
		},
	}
}
