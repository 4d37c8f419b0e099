package onprem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/transport"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// fakeExecutor answers every request with body and records what it saw.
type fakeExecutor struct {
	mu    sync.Mutex
	body  string
	err   error
	calls []*transport.Request
}

func (f *fakeExecutor) Execute(_ context.Context, req *transport.Request) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.body), nil
}

func newFakeClient(t *testing.T, body string) (*Client, *fakeExecutor) {
	t.Helper()
	exec := &fakeExecutor{body: body}
	c, err := New(WithTransport(exec), WithBlobStore(nopBlobs{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, exec
}

type nopBlobs struct{}

func (nopBlobs) Put(context.Context, string, []byte, string) error { return nil }
func (nopBlobs) Get(context.Context, string) ([]byte, error)     { return nil, nil }

func TestCall_ValidatesBeforeTransport(t *testing.T) {
	c, exec := newFakeClient(t, `{}`)

	_, err := one[Slice](context.Background(), c, queries.GetSlice, resourceSlice, params.GetSlice{DatasetID: "ds"})
	if !IsBadParameter(err) {
		t.Fatalf("err = %v, want BadParameterError", err)
	}
	if len(exec.calls) != 0 {
		t.Errorf("transport called %d times, want 0", len(exec.calls))
	}
}

func TestCall_BuildsRequest(t *testing.T) {
	c, exec := newFakeClient(t, `{"id":"s1","name":"train"}`)

	s, err := one[Slice](context.Background(), c, queries.GetSlice, resourceSlice, params.GetSlice{DatasetID: "ds", Name: "train"})
	if err != nil {
		t.Fatalf("one: %v", err)
	}
	if s.ID != "s1" {
		t.Errorf("ID = %q, want s1", s.ID)
	}

	req := exec.calls[0]
	if req.Name != "slices.get" || req.Field != "slice" || req.Resource != resourceSlice {
		t.Errorf("request = %+v", req)
	}
	if req.Variables["name"] != "train" || req.Variables["datasetId"] != "ds" {
		t.Errorf("Variables = %v", req.Variables)
	}
	if _, ok := req.Variables["sliceId"]; ok {
		t.Error("sliceId should be omitted when only name is given")
	}
}

func TestOne_NullIsNotFound(t *testing.T) {
	c, _ := newFakeClient(t, `null`)

	_, err := one[Dataset](context.Background(), c, queries.GetDataset, resourceDataset, params.GetDataset{DatasetID: "x"})
	nf, ok := AsNotFoundError(err)
	if !ok {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Resource != resourceDataset {
		t.Errorf("Resource = %q, want %q", nf.Resource, resourceDataset)
	}
}

func TestOne_DecodeError(t *testing.T) {
	c, _ := newFakeClient(t, `{"id":"d1","type":"NOT_A_TYPE"}`)

	_, err := one[Data](context.Background(), c, queries.GetData, resourceData, params.GetData{DatasetID: "ds", DataID: "d1"})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("err = %v, want ValidationError in chain", err)
	}
}

func TestPage_Decodes(t *testing.T) {
	c, _ := newFakeClient(t, `{"slices":[{"id":"a"},{"id":"b"}],"next":"c2","totalCount":3}`)

	p, err := page[Slice](context.Background(), c, queries.ListSlices, resourceSlice, params.ListSlices{DatasetID: "ds", Length: 2})
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if p.Len() != 2 || p.Next != "c2" || p.TotalCount != 3 || !p.HasMore() {
		t.Errorf("page = %+v", p)
	}
}

func TestPage_NullNextAndItems(t *testing.T) {
	c, _ := newFakeClient(t, `{"slices":null,"next":null,"totalCount":0}`)

	p, err := page[Slice](context.Background(), c, queries.ListSlices, resourceSlice, params.ListSlices{DatasetID: "ds"})
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if p.Items == nil || p.Len() != 0 {
		t.Errorf("Items = %#v, want empty non-nil", p.Items)
	}
	if p.HasMore() {
		t.Error("HasMore() = true for null next")
	}
}

func TestPage_NullPayload(t *testing.T) {
	c, _ := newFakeClient(t, `null`)

	_, err := page[Slice](context.Background(), c, queries.ListSlices, resourceSlice, params.ListSlices{DatasetID: "ds"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestPage_LengthOverMax(t *testing.T) {
	c, exec := newFakeClient(t, `{}`)

	for _, length := range []int{MaxPageLength + 1, -1} {
		_, err := page[Slice](context.Background(), c, queries.ListSlices, resourceSlice, params.ListSlices{DatasetID: "ds", Length: length})
		bp, ok := AsBadParameterError(err)
		if !ok || bp.Param != "length" {
			t.Errorf("length %d: err = %v, want BadParameterError(length)", length, err)
		}
	}
	if len(exec.calls) != 0 {
		t.Errorf("transport called %d times, want 0", len(exec.calls))
	}
}

func TestDeleted(t *testing.T) {
	c, _ := newFakeClient(t, `true`)
	ok, err := deleted(context.Background(), c, queries.DeleteSlice, resourceSlice, params.DeleteSlice{DatasetID: "ds", SliceID: "s"})
	if err != nil || !ok {
		t.Errorf("deleted = %v, %v", ok, err)
	}

	c, _ = newFakeClient(t, `null`)
	_, err = deleted(context.Background(), c, queries.DeleteSlice, resourceSlice, params.DeleteSlice{DatasetID: "ds", SliceID: "s"})
	if !IsNotFound(err) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestScalar(t *testing.T) {
	c, _ := newFakeClient(t, `"https://blob/x"`)
	u, err := scalar[string](context.Background(), c, queries.DownloadURL, resourceContent, params.DownloadURL{ContentID: "c"})
	if err != nil || u != "https://blob/x" {
		t.Errorf("scalar = %q, %v", u, err)
	}

	c, _ = newFakeClient(t, `null`)
	_, err = scalar[string](context.Background(), c, queries.DownloadURL, resourceContent, params.DownloadURL{ContentID: "c"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestTransportErrorPassesThrough(t *testing.T) {
	boom := &APIError{StatusCode: 500}
	exec := &fakeExecutor{err: boom}
	c, err := New(WithTransport(exec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Datasets().Get(context.Background(), params.GetDataset{Name: "ds"})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the transport error unchanged", err)
	}
	if len(exec.calls) != 1 {
		t.Errorf("calls = %d, want 1; façades must not retry", len(exec.calls))
	}
}

func TestAll(t *testing.T) {
	pages := map[string]*types.Page[int]{
		"":   {Items: []int{1, 2}, Next: "p2"},
		"p2": {Items: []int{3, 4}, Next: "p3"},
		"p3": {Items: []int{5}},
	}
	var cursors []string
	got, err := All(context.Background(), func(_ context.Context, cursor string) (*types.Page[int], error) {
		cursors = append(cursors, cursor)
		return pages[cursor], nil
	})
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if fmt.Sprint(got) != "[1 2 3 4 5]" {
		t.Errorf("All = %v", got)
	}
	if fmt.Sprint(cursors) != "[ p2 p3]" {
		t.Errorf("cursors = %q", cursors)
	}
}

func TestAll_RepeatedCursor(t *testing.T) {
	_, err := All(context.Background(), func(_ context.Context, cursor string) (*types.Page[int], error) {
		return &types.Page[int]{Items: []int{1}, Next: "same"}, nil
	})
	if err == nil {
		t.Fatal("expected error for a repeated cursor")
	}
}

func TestAll_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	got, err := All(context.Background(), func(_ context.Context, cursor string) (*types.Page[int], error) {
		if cursor == "" {
			return &types.Page[int]{Items: []int{1}, Next: "p2"}, nil
		}
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if len(got) != 1 {
		t.Errorf("partial = %v, want [1]", got)
	}
}

func TestAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := All(ctx, func(context.Context, string) (*types.Page[int], error) {
		calls++
		return &types.Page[int]{}, nil
	})
	if !errors.Is(err, context.Canceled) || calls != 0 {
		t.Errorf("err = %v, calls = %d", err, calls)
	}
}
