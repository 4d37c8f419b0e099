package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/superb-ai/onprem-go/pkg/config"
	sdkerrors "github.com/superb-ai/onprem-go/pkg/errors"
)

// maxErrorBody bounds how much of a non-JSON error body is kept.
const maxErrorBody = 512

// Config configures a GraphQL Client.
type Config struct {
	// Endpoint is the full GraphQL URL. Required.
	Endpoint string
	// HTTPClient defaults to a client with config.DefaultTimeout.
	HTTPClient *http.Client
	// UserAgent is sent on every request.
	UserAgent string
	// Retry defaults to NewExponentialBackoff.
	Retry RetryStrategy
	// Hooks run around every HTTP attempt.
	Hooks *HookChain
	// Logger receives retry notices. May be nil.
	Logger Logger
	// Metrics receives retry counts. May be nil.
	Metrics Metrics
}

// Client is the HTTP implementation of Executor. It is safe for concurrent
// use.
type Client struct {
	endpoint  string
	http      *http.Client
	userAgent string
	retrier   retrier
	hooks     *HookChain
}

var _ Executor = (*Client)(nil)

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, sdkerrors.ErrMissingEndpoint
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: config.DefaultTimeout}
	}
	if cfg.Retry == nil {
		cfg.Retry = NewExponentialBackoff()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = config.DefaultUserAgent
	}
	return &Client{
		endpoint:  cfg.Endpoint,
		http:      cfg.HTTPClient,
		userAgent: cfg.UserAgent,
		retrier:   retrier{strategy: cfg.Retry, logger: cfg.Logger, metrics: cfg.Metrics},
		hooks:     cfg.Hooks,
	}, nil
}

// Endpoint returns the GraphQL URL.
func (c *Client) Endpoint() string { return c.endpoint }

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors gqlerror.List   `json:"errors"`
}

// Execute implements Executor. Transient failures are retried according to
// the configured RetryStrategy.
func (c *Client) Execute(ctx context.Context, req *Request) (json.RawMessage, error) {
	if req == nil {
		return nil, sdkerrors.ErrNilRequest
	}
	body, err := json.Marshal(graphQLRequest{Query: req.Document, Variables: req.Variables})
	if err != nil {
		return nil, &sdkerrors.TransportError{Op: req.Name, Err: fmt.Errorf("encode request: %w", err)}
	}
	ctx = WithOperation(ctx, req.Name)

	var data json.RawMessage
	err = c.retrier.do(ctx, req.Name, func() error {
		var err error
		data, err = c.executeOnce(ctx, req, body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) executeOnce(ctx context.Context, req *Request, body []byte) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &sdkerrors.TransportError{Op: req.Name, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if err := c.hooks.BeforeRequest(ctx, httpReq); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.hooks.AfterResponse(ctx, httpReq, nil, time.Since(start), err)
		return nil, &sdkerrors.TransportError{Op: req.Name, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.hooks.AfterResponse(ctx, httpReq, resp, time.Since(start), err)
	if err != nil {
		return nil, &sdkerrors.TransportError{Op: req.Name, StatusCode: resp.StatusCode, Err: err}
	}
	return Decode(req, resp.StatusCode, resp.Header, raw)
}

// Decode unwraps a GraphQL response body down to req.Field.
//
// Errors carrying the NOT_FOUND extension code become
// *errors.NotFoundError; other GraphQL errors and non-2xx statuses become
// *errors.APIError; bodies that are not a GraphQL envelope become
// *errors.TransportError.
func Decode(req *Request, status int, header http.Header, raw []byte) (json.RawMessage, error) {
	var env graphQLResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		if status >= 400 {
			return nil, &sdkerrors.APIError{
				StatusCode: status,
				Errors:     gqlerror.List{{Message: truncate(raw)}},
				RetryAfter: retryAfter(header),
			}
		}
		return nil, &sdkerrors.TransportError{Op: req.Name, StatusCode: status, Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(env.Errors) > 0 {
		return nil, classify(req, status, header, env.Errors)
	}
	if status == http.StatusNotFound {
		return nil, sdkerrors.NewNotFoundError(req.Resource, "")
	}
	if status >= 400 {
		return nil, &sdkerrors.APIError{
			StatusCode: status,
			Errors:     gqlerror.List{{Message: http.StatusText(status)}},
			RetryAfter: retryAfter(header),
		}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, &sdkerrors.TransportError{Op: req.Name, StatusCode: status, Err: sdkerrors.ErrEmptyResponse}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		return nil, &sdkerrors.TransportError{Op: req.Name, StatusCode: status, Err: fmt.Errorf("decode data: %w", err)}
	}
	value, ok := fields[req.Field]
	if !ok {
		return nil, &sdkerrors.TransportError{Op: req.Name, StatusCode: status, Err: fmt.Errorf("response has no field %q", req.Field)}
	}
	return value, nil
}

func classify(req *Request, status int, header http.Header, errs gqlerror.List) error {
	for _, ge := range errs {
		if sdkerrors.ExtensionCodeOf(ge) == sdkerrors.ExtensionNotFound {
			nf := sdkerrors.NewNotFoundError(req.Resource, ge.Message)
			nf.Path = ge.Path.String()
			return nf
		}
	}
	return &sdkerrors.APIError{StatusCode: status, Errors: errs, RetryAfter: retryAfter(header)}
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(header http.Header) time.Duration {
	if header == nil {
		return 0
	}
	secs, err := strconv.Atoi(header.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func truncate(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody]) + "..."
	}
	return string(b)
}
