package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/superb-ai/onprem-go/pkg/config"
	sdkerrors "github.com/superb-ai/onprem-go/pkg/errors"
)

// HTTPBlobStore is the BlobStore for presigned HTTP URLs.
type HTTPBlobStore struct {
	http    *http.Client
	retrier retrier
	metrics Metrics
}

var _ BlobStore = (*HTTPBlobStore)(nil)

// BlobConfig configures an HTTPBlobStore. All fields are optional.
type BlobConfig struct {
	HTTPClient *http.Client
	Retry      RetryStrategy
	Logger     Logger
	Metrics    Metrics
}

// NewHTTPBlobStore creates an HTTPBlobStore.
func NewHTTPBlobStore(cfg BlobConfig) *HTTPBlobStore {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: config.DefaultTimeout}
	}
	if cfg.Retry == nil {
		cfg.Retry = NewExponentialBackoff()
	}
	return &HTTPBlobStore{
		http:    cfg.HTTPClient,
		retrier: retrier{strategy: cfg.Retry, logger: cfg.Logger, metrics: cfg.Metrics},
		metrics: cfg.Metrics,
	}
}

// Put uploads body with a single PUT.
func (s *HTTPBlobStore) Put(ctx context.Context, rawURL string, body []byte, contentType string) error {
	return s.retrier.do(ctx, "blob.put", func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, rawURL, bytes.NewReader(body))
		if err != nil {
			return &sdkerrors.TransportError{Op: "blob.put", Err: err}
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.ContentLength = int64(len(body))
		_, err = s.do("blob.put", req)
		if err == nil && s.metrics != nil {
			s.metrics.IncrementCounter(MetricBlobBytes, int64(len(body)))
		}
		return err
	})
}

// Get downloads the bytes behind a presigned URL.
func (s *HTTPBlobStore) Get(ctx context.Context, rawURL string) ([]byte, error) {
	var out []byte
	err := s.retrier.do(ctx, "blob.get", func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return &sdkerrors.TransportError{Op: "blob.get", Err: err}
		}
		out, err = s.do("blob.get", req)
		return err
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricBlobBytes, int64(len(out)))
	}
	return out, nil
}

func (s *HTTPBlobStore) do(op string, req *http.Request) ([]byte, error) {
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &sdkerrors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &sdkerrors.TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &sdkerrors.UploadError{
			Method:     req.Method,
			URL:        redact(req.URL),
			StatusCode: resp.StatusCode,
			Body:       truncate(raw),
		}
	}
	return raw, nil
}

// redact drops the query string, which carries presigned credentials.
func redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	c := *u
	c.RawQuery = ""
	c.User = nil
	return c.String()
}
