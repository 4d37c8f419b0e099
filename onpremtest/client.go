package onpremtest

import (
	onprem "github.com/superb-ai/onprem-go"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
	Helper()
}

// NewTestClient creates a client wired to a fresh Backend. Retries are
// disabled so failures surface at once. The client and backend are
// cleaned up when the test ends.
func NewTestClient(t TestingT, opts ...onprem.ConfigOption) (*onprem.Client, *Backend) {
	t.Helper()

	backend := NewBackend()

	// Prepend base options, then apply custom options
	baseOpts := []onprem.ConfigOption{
		onprem.WithEndpoint(backend.Endpoint()),
		onprem.WithoutRetries(),
	}
	client, err := onprem.New(append(baseOpts, opts...)...)
	if err != nil {
		backend.Close()
		t.Fatalf("Failed to create test client: %v", err)
	}

	t.Cleanup(func() {
		client.Close()
		backend.Close()
	})
	return client, backend
}

// NewMockClient creates a client backed by a MockTransport and a
// MockBlobStore. No network is involved.
func NewMockClient(t TestingT, opts ...onprem.ConfigOption) (*onprem.Client, *MockTransport, *MockBlobStore) {
	t.Helper()

	tr := NewMockTransport()
	blobs := NewMockBlobStore()
	baseOpts := []onprem.ConfigOption{
		onprem.WithTransport(tr),
		onprem.WithBlobStore(blobs),
	}
	client, err := onprem.New(append(baseOpts, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create mock client: %v", err)
	}
	t.Cleanup(client.Close)
	return client, tr, blobs
}
