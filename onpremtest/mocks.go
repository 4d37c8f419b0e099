package onpremtest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	onprem "github.com/superb-ai/onprem-go"
	"github.com/superb-ai/onprem-go/pkg/transport"
)

// Compile-time interface assertions to catch drift between mock implementations
// and the actual interfaces they're supposed to implement.
var (
	_ onprem.Metrics          = (*MockMetrics)(nil)
	_ onprem.StructuredLogger = (*MockLogger)(nil)
	_ onprem.Logger           = (*MockLogger)(nil)
	_ transport.Executor      = (*MockTransport)(nil)
	_ transport.BlobStore     = (*MockBlobStore)(nil)
)

// Response is a scripted reply of a MockTransport.
type Response struct {
	// Body is returned as the raw field value. A nil Body with a nil Err is
	// the literal null.
	Body json.RawMessage
	Err  error
}

// JSONResponse marshals v into a Response. It panics if v cannot be encoded.
func JSONResponse(v any) Response {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("onpremtest: encode response: %v", err))
	}
	return Response{Body: b}
}

// ErrorResponse returns a Response that fails with err.
func ErrorResponse(err error) Response {
	return Response{Err: err}
}

// MockTransport is a transport.Executor that records requests and replays
// scripted responses per operation name.
type MockTransport struct {
	mu        sync.Mutex
	requests  []*transport.Request
	responses map[string][]Response

	// Fallback answers operations with no scripted response. If nil, such
	// operations return null.
	Fallback func(req *transport.Request) Response
}

// NewMockTransport creates an empty MockTransport.
func NewMockTransport() *MockTransport {
	return &MockTransport{responses: make(map[string][]Response)}
}

// On queues responses for the named operation. They are consumed in order;
// the last one repeats once the queue is exhausted.
func (m *MockTransport) On(op string, responses ...Response) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[op] = append(m.responses[op], responses...)
	return m
}

// Execute implements transport.Executor.
func (m *MockTransport) Execute(ctx context.Context, req *transport.Request) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.requests = append(m.requests, req)
	queue := m.responses[req.Name]
	var resp Response
	var ok bool
	switch {
	case len(queue) > 1:
		resp, ok = queue[0], true
		m.responses[req.Name] = queue[1:]
	case len(queue) == 1:
		resp, ok = queue[0], true
	}
	fallback := m.Fallback
	m.mu.Unlock()

	if !ok && fallback != nil {
		resp = fallback(req)
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	if resp.Body == nil {
		return json.RawMessage("null"), nil
	}
	return resp.Body, nil
}

// Requests returns all recorded requests.
func (m *MockTransport) Requests() []*transport.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*transport.Request{}, m.requests...)
}

// RequestCount returns the number of recorded requests.
func (m *MockTransport) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the most recent request, or nil if none.
func (m *MockTransport) LastRequest() *transport.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Reset clears recorded requests and scripted responses.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
	m.responses = make(map[string][]Response)
}

// MockBlobStore is an in-memory transport.BlobStore keyed by URL.
type MockBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	types map[string]string

	// PutErr, when set, fails every Put.
	PutErr error
}

// NewMockBlobStore creates an empty MockBlobStore.
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{
		blobs: make(map[string][]byte),
		types: make(map[string]string),
	}
}

// Put implements transport.BlobStore.
func (s *MockBlobStore) Put(ctx context.Context, url string, body []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	s.blobs[url] = append([]byte(nil), body...)
	s.types[url] = contentType
	return nil
}

// Get implements transport.BlobStore.
func (s *MockBlobStore) Get(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[url]
	if !ok {
		return nil, fmt.Errorf("onpremtest: no blob at %s", url)
	}
	return append([]byte(nil), b...), nil
}

// Blob returns the bytes and content type stored at url.
func (s *MockBlobStore) Blob(url string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[url]
	return b, s.types[url], ok
}

// Len returns the number of stored blobs.
func (s *MockBlobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

// MockMetrics is a mock implementation of the Metrics interface for testing.
// It records all metrics operations for later verification.
type MockMetrics struct {
	mu       sync.Mutex
	Counters map[string]int64
	Timings  map[string][]int64 // Duration in nanoseconds
}

// NewMockMetrics creates a new mock metrics collector.
func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Counters: make(map[string]int64),
		Timings:  make(map[string][]int64),
	}
}

// IncrementCounter implements Metrics.IncrementCounter.
func (m *MockMetrics) IncrementCounter(name string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Counters[name] += value
}

// RecordDuration implements Metrics.RecordDuration.
func (m *MockMetrics) RecordDuration(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timings[name] = append(m.Timings[name], duration.Nanoseconds())
}

// GetCounter returns the value of a counter.
func (m *MockMetrics) GetCounter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Counters[name]
}

// GetTimings returns all recorded timings for a metric.
func (m *MockMetrics) GetTimings(name string) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64{}, m.Timings[name]...)
}

// Reset clears all recorded metrics.
func (m *MockMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Counters = make(map[string]int64)
	m.Timings = make(map[string][]int64)
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Args    []any
}

// MockLogger captures log messages for later verification. It satisfies
// both the printf-style and the structured logger interfaces.
type MockLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// NewMockLogger creates a new mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		Entries: make([]LogEntry, 0),
	}
}

func (l *MockLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Message: msg, Args: args})
}

// Printf implements Logger.Printf.
func (l *MockLogger) Printf(format string, v ...any) {
	l.record("PRINTF", fmt.Sprintf(format, v...), nil)
}

// Debug implements StructuredLogger.Debug.
func (l *MockLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }

// Info implements StructuredLogger.Info.
func (l *MockLogger) Info(msg string, args ...any) { l.record("INFO", msg, args) }

// Warn implements StructuredLogger.Warn.
func (l *MockLogger) Warn(msg string, args ...any) { l.record("WARN", msg, args) }

// Error implements StructuredLogger.Error.
func (l *MockLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// GetMessages returns all logged messages.
func (l *MockLogger) GetMessages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Message
	}
	return out
}

// MessageCount returns the number of logged messages.
func (l *MockLogger) MessageCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Entries)
}

// HasMessage reports whether msg was logged at any level.
func (l *MockLogger) HasMessage(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

// Reset clears all logged messages.
func (l *MockLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = make([]LogEntry, 0)
}
