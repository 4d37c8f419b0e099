package transport

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net"
	"net/url"
	"strings"
	"syscall"
	"time"
)

// RetryableError is implemented by errors that know whether they are
// transient. Every error in pkg/errors implements it.
type RetryableError interface {
	error
	IsRetryable() bool
}

// retryAfterHinter is implemented by errors carrying a server Retry-After.
type retryAfterHinter interface {
	SuggestedRetryAfter() time.Duration
}

// IsRetryableNetworkError reports whether a network error is transient.
// DNS failures, refused connections and TLS errors are permanent.
func IsRetryableNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET, syscall.ETIMEDOUT, syscall.EPIPE:
			return true
		case syscall.ECONNREFUSED, syscall.ENETUNREACH, syscall.EHOSTUNREACH:
			return false
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return IsRetryableNetworkError(urlErr.Err)
	}

	msg := strings.ToLower(err.Error())
	for _, p := range []string{"certificate", "x509:", "tls:", "no such host", "connection refused"} {
		if strings.Contains(msg, p) {
			return false
		}
	}
	for _, p := range []string{"timeout", "reset by peer", "broken pipe", "unexpected eof"} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// RetryStrategy decides whether and when a failed request is retried.
// attempt counts from zero for the first retry.
type RetryStrategy interface {
	ShouldRetry(attempt int, err error) bool
	RetryDelay(attempt int, err error) time.Duration
}

// shouldRetry is the error test shared by the strategies below.
func shouldRetry(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var re RetryableError
	if errors.As(err, &re) && re.IsRetryable() {
		return true
	}
	return IsRetryableNetworkError(err)
}

// ExponentialBackoff retries transient failures with exponentially growing
// delays. Zero fields take the defaults of NewExponentialBackoff.
type ExponentialBackoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// Jitter multiplies each delay by a random factor in [0.5, 1.5).
	Jitter     bool
	MaxRetries int
}

// NewExponentialBackoff returns a backoff with a 1s initial delay doubling
// up to 30s, with jitter and 3 retries.
func NewExponentialBackoff() *ExponentialBackoff {
	return &ExponentialBackoff{
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2,
		Jitter:       true,
		MaxRetries:   3,
	}
}

// ShouldRetry implements RetryStrategy.
func (e *ExponentialBackoff) ShouldRetry(attempt int, err error) bool {
	if attempt >= e.MaxRetries {
		return false
	}
	return shouldRetry(err)
}

// RetryDelay implements RetryStrategy. A server Retry-After hint wins over
// the computed delay, capped at MaxDelay.
func (e *ExponentialBackoff) RetryDelay(attempt int, err error) time.Duration {
	maxDelay := e.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}
	var hint retryAfterHinter
	if errors.As(err, &hint) {
		if d := hint.SuggestedRetryAfter(); d > 0 {
			return min(d, maxDelay)
		}
	}

	initial := e.InitialDelay
	if initial <= 0 {
		initial = time.Second
	}
	mult := e.Multiplier
	if mult <= 0 {
		mult = 2
	}
	delay := math.Min(float64(initial)*math.Pow(mult, float64(attempt)), float64(maxDelay))
	if e.Jitter {
		delay *= 0.5 + rand.Float64()
	}
	return time.Duration(delay)
}

// NoRetry never retries.
type NoRetry struct{}

// ShouldRetry implements RetryStrategy.
func (NoRetry) ShouldRetry(int, error) bool { return false }

// RetryDelay implements RetryStrategy.
func (NoRetry) RetryDelay(int, error) time.Duration { return 0 }

// FixedDelay retries transient failures after a constant delay.
type FixedDelay struct {
	Delay      time.Duration
	MaxRetries int
}

// ShouldRetry implements RetryStrategy.
func (f FixedDelay) ShouldRetry(attempt int, err error) bool {
	return attempt < f.MaxRetries && shouldRetry(err)
}

// RetryDelay implements RetryStrategy.
func (f FixedDelay) RetryDelay(int, error) time.Duration { return f.Delay }

// retrier runs an attempt function until it succeeds or the strategy gives
// up. It is shared by the GraphQL client and the blob store.
type retrier struct {
	strategy RetryStrategy
	logger   Logger
	metrics  Metrics
}

func (r retrier) do(ctx context.Context, op string, attempt func() error) error {
	for n := 0; ; n++ {
		err := attempt()
		if err == nil {
			return nil
		}
		if !r.strategy.ShouldRetry(n, err) {
			return err
		}

		delay := r.strategy.RetryDelay(n, err)
		if r.logger != nil {
			r.logger.Warn("onprem: retrying request", "operation", op, "attempt", n+1, "delay", delay, "error", err)
		}
		if r.metrics != nil {
			r.metrics.IncrementCounter(MetricRetries, 1)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
