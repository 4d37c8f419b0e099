package onpremtest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	sdkerrors "github.com/superb-ai/onprem-go/pkg/errors"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// Paths served by Backend.
const (
	GraphQLPath = "/graphql"
	BlobPath    = "/blobs/"
)

// maxLength is the largest page the backend serves.
const maxLength = 50

// RecordedRequest represents a recorded GraphQL request.
type RecordedRequest struct {
	Field     string
	Query     string
	Variables map[string]any
}

type content struct {
	id          string
	key         string
	contentType string
	folder      bool
	body        []byte
	uploaded    bool
	files       map[string][]byte
}

// Backend is an in-memory GraphQL server covering datasets, slices, data
// items, diagnoses and contents. Presigned blob URLs point back at the
// same server.
//
// Gets of missing entities answer null; mutations on missing entities
// answer a NOT_FOUND error.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*RecordedRequest

	datasets  *table[types.Dataset]
	slices    *table[types.Slice]
	data      *table[types.Data]
	diagnoses *table[types.Diagnosis]
	contents  map[string]*content

	handlers map[string]handler
}

type handler func(vars map[string]any) (any, error)

// table keeps entities in insertion order.
type table[T any] struct {
	order []string
	rows  map[string]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) put(id string, v *T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (*T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) find(match func(*T) bool) (*T, bool) {
	for _, id := range t.order {
		if v := t.rows[id]; match(v) {
			return v, true
		}
	}
	return nil, false
}

func (t *table[T]) filter(match func(*T) bool) []*T {
	var out []*T
	for _, id := range t.order {
		if v := t.rows[id]; match(v) {
			out = append(out, v)
		}
	}
	return out
}

// NewBackend starts a Backend. Close it when done.
func NewBackend() *Backend {
	b := &Backend{
		datasets:  newTable[types.Dataset](),
		slices:    newTable[types.Slice](),
		data:      newTable[types.Data](),
		diagnoses: newTable[types.Diagnosis](),
		contents:  make(map[string]*content),
	}
	b.handlers = map[string]handler{
		"dataset":       b.getDataset,
		"datasets":      b.listDatasets,
		"createDataset": b.createDataset,
		"updateDataset": b.updateDataset,
		"deleteDataset": b.deleteDataset,

		"slice":       b.getSlice,
		"slices":      b.listSlices,
		"createSlice": b.createSlice,
		"updateSlice": b.updateSlice,
		"deleteSlice": b.deleteSlice,

		"data":                b.getData,
		"dataList":            b.listData,
		"createData":          b.createData,
		"deleteData":          b.deleteData,
		"addDataToSlice":      b.addDataToSlice,
		"removeDataFromSlice": b.removeDataFromSlice,

		"diagnosis":       b.getDiagnosis,
		"diagnoses":       b.listDiagnoses,
		"createDiagnosis": b.createDiagnosis,
		"deleteDiagnosis": b.deleteDiagnosis,

		"createContent":        b.createContent,
		"createFolderContent":  b.createFolderContent,
		"contentFileUploadURL": b.fileUploadURL,
		"contentDownloadURL":   b.downloadURL,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(GraphQLPath, b.serveGraphQL)
	mux.HandleFunc(BlobPath, b.serveBlob)
	b.Server = httptest.NewServer(mux)
	return b
}

// Endpoint returns the GraphQL URL of the backend.
func (b *Backend) Endpoint() string {
	return b.URL + GraphQLPath
}

// Requests returns all recorded GraphQL requests.
func (b *Backend) Requests() []*RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*RecordedRequest{}, b.requests...)
}

// RequestCount returns the number of recorded GraphQL requests.
func (b *Backend) RequestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// RequestsFor returns the recorded requests for a top-level field.
func (b *Backend) RequestsFor(field string) []*RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []*RecordedRequest
	for _, r := range b.requests {
		if r.Field == field {
			out = append(out, r)
		}
	}
	return out
}

// ContentBody returns the uploaded bytes of a single-object content.
func (b *Backend) ContentBody(id string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.contents[id]
	if !ok || !c.uploaded {
		return nil, false
	}
	return append([]byte(nil), c.body...), true
}

// ContentFile returns an uploaded file of a folder content.
func (b *Backend) ContentFile(id, fileName string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.contents[id]
	if !ok {
		return nil, false
	}
	f, ok := c.files[fileName]
	return f, ok
}

// ContentKey returns the key a content was registered with.
func (b *Backend) ContentKey(id string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.contents[id]; ok {
		return c.key
	}
	return ""
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func (b *Backend) serveGraphQL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, "", gqlerror.List{gqlErr("", sdkerrors.ExtensionBadRequest, "invalid request body")})
		return
	}
	doc, err := queries.Parse("request", req.Query)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, "", gqlerror.List{gqlErr("", "GRAPHQL_PARSE_FAILED", err.Error())})
		return
	}
	field := queries.TopLevelField(doc)
	if req.Variables == nil {
		req.Variables = map[string]any{}
	}

	b.mu.Lock()
	b.requests = append(b.requests, &RecordedRequest{Field: field, Query: req.Query, Variables: req.Variables})
	h, ok := b.handlers[field]
	var result json.RawMessage
	if ok {
		// Encode under the lock; handlers return live rows.
		var v any
		if v, err = h(req.Variables); err == nil {
			result, err = json.Marshal(v)
		}
	} else {
		err = gqlErr(field, sdkerrors.ExtensionBadRequest, fmt.Sprintf("unsupported field %q", field))
	}
	b.mu.Unlock()

	if err != nil {
		ge, ok := err.(*gqlerror.Error)
		if !ok {
			ge = gqlErr(field, "INTERNAL_SERVER_ERROR", err.Error())
		}
		writeErrors(w, http.StatusOK, field, gqlerror.List{ge})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{field: result}})
}

func (b *Backend) serveBlob(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, BlobPath)
	id, fileName, _ := strings.Cut(rest, "/")

	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.contents[id]
	if !ok {
		http.Error(w, "no such content", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if fileName != "" {
			c.files[fileName] = body
		} else {
			c.body = body
			c.uploaded = true
		}
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		var body []byte
		if fileName != "" {
			body, ok = c.files[fileName]
		} else {
			body, ok = c.body, c.uploaded
		}
		if !ok {
			http.Error(w, "not uploaded", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", c.contentType)
		w.Write(body)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrors(w http.ResponseWriter, status int, field string, errs gqlerror.List) {
	body := map[string]any{"errors": errs}
	if field != "" {
		body["data"] = map[string]any{field: nil}
	}
	writeJSON(w, status, body)
}

func gqlErr(field, code, msg string) *gqlerror.Error {
	e := &gqlerror.Error{
		Message:    msg,
		Extensions: map[string]any{"code": code},
	}
	if field != "" {
		e.Path = ast.Path{ast.PathName(field)}
	}
	return e
}

func notFound(field, what, id string) *gqlerror.Error {
	return gqlErr(field, sdkerrors.ExtensionNotFound, fmt.Sprintf("%s %q not found", what, id))
}

func badInput(field, msg string) *gqlerror.Error {
	return gqlErr(field, sdkerrors.ExtensionBadInput, msg)
}

func str(vars map[string]any, key string) string {
	s, _ := vars[key].(string)
	return s
}

func has(vars map[string]any, key string) bool {
	_, ok := vars[key]
	return ok
}

func newID() string {
	return uuid.NewString()
}

func now() *types.Time {
	return types.TimePtr(time.Now().UTC())
}

// decodeVars re-decodes the variables into a typed input.
func decodeVars(vars map[string]any, dst any) error {
	b, err := json.Marshal(vars)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// paginate returns one page of rows. Cursors are opaque offsets, so
// replaying a cursor returns the same page while the table is unchanged.
func paginate[T any](field, itemsKey string, vars map[string]any, rows []*T) (any, error) {
	length := maxLengthDefault
	if v, ok := vars["length"].(float64); ok {
		length = int(v)
	}
	if length < 1 || length > maxLength {
		return nil, badInput(field, fmt.Sprintf("length must be between 1 and %d", maxLength))
	}
	offset := 0
	if c := str(vars, "cursor"); c != "" {
		raw, err := base64.RawURLEncoding.DecodeString(c)
		if err != nil {
			return nil, badInput(field, "invalid cursor")
		}
		offset, err = strconv.Atoi(strings.TrimPrefix(string(raw), "offset:"))
		if err != nil || offset < 0 {
			return nil, badInput(field, "invalid cursor")
		}
	}
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + length
	if end > len(rows) {
		end = len(rows)
	}

	var next any
	if end < len(rows) {
		next = base64.RawURLEncoding.EncodeToString([]byte("offset:" + strconv.Itoa(end)))
	}
	items := rows[offset:end]
	if items == nil {
		items = []*T{}
	}
	return map[string]any{
		itemsKey:     items,
		"next":       next,
		"totalCount": len(rows),
	}, nil
}

const maxLengthDefault = 10

// Datasets

func (b *Backend) getDataset(vars map[string]any) (any, error) {
	if id := str(vars, "datasetId"); id != "" {
		if d, ok := b.datasets.get(id); ok {
			return d, nil
		}
		return nil, nil
	}
	name := str(vars, "name")
	if d, ok := b.datasets.find(func(d *types.Dataset) bool { return d.Name == name }); ok {
		return d, nil
	}
	return nil, nil
}

func (b *Backend) listDatasets(vars map[string]any) (any, error) {
	return paginate("datasets", "datasets", vars, b.datasets.filter(func(*types.Dataset) bool { return true }))
}

func (b *Backend) createDataset(vars map[string]any) (any, error) {
	return b.addDataset(str(vars, "name"), str(vars, "description"))
}

func (b *Backend) addDataset(name, description string) (*types.Dataset, error) {
	if name == "" {
		return nil, badInput("createDataset", "name is required")
	}
	if _, dup := b.datasets.find(func(d *types.Dataset) bool { return d.Name == name }); dup {
		return nil, gqlErr("createDataset", sdkerrors.ExtensionConflict, fmt.Sprintf("dataset %q already exists", name))
	}
	d := &types.Dataset{ID: newID(), Name: name, Description: description}
	d.CreatedAt = now()
	b.datasets.put(d.ID, d)
	return d, nil
}

func (b *Backend) updateDataset(vars map[string]any) (any, error) {
	id := str(vars, "datasetId")
	d, ok := b.datasets.get(id)
	if !ok {
		return nil, notFound("updateDataset", "dataset", id)
	}
	if has(vars, "name") {
		d.Name = str(vars, "name")
	}
	if has(vars, "description") {
		d.Description = str(vars, "description")
	}
	d.UpdatedAt = now()
	return d, nil
}

func (b *Backend) deleteDataset(vars map[string]any) (any, error) {
	id := str(vars, "datasetId")
	if !b.datasets.remove(id) {
		return nil, notFound("deleteDataset", "dataset", id)
	}
	return true, nil
}

// Slices

func (b *Backend) getSlice(vars map[string]any) (any, error) {
	datasetID := str(vars, "datasetId")
	id, name := str(vars, "sliceId"), str(vars, "name")
	s, ok := b.slices.find(func(s *types.Slice) bool {
		if s.DatasetID != datasetID {
			return false
		}
		if id != "" {
			return s.ID == id
		}
		return s.Name == name
	})
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (b *Backend) listSlices(vars map[string]any) (any, error) {
	datasetID := str(vars, "datasetId")
	if _, ok := b.datasets.get(datasetID); !ok {
		return nil, notFound("slices", "dataset", datasetID)
	}
	rows := b.slices.filter(func(s *types.Slice) bool { return s.DatasetID == datasetID })
	return paginate("slices", "slices", vars, rows)
}

func (b *Backend) createSlice(vars map[string]any) (any, error) {
	return b.addSlice(str(vars, "datasetId"), str(vars, "name"), str(vars, "description"))
}

func (b *Backend) addSlice(datasetID, name, description string) (*types.Slice, error) {
	if _, ok := b.datasets.get(datasetID); !ok {
		return nil, notFound("createSlice", "dataset", datasetID)
	}
	if _, dup := b.slices.find(func(s *types.Slice) bool { return s.DatasetID == datasetID && s.Name == name }); dup {
		return nil, gqlErr("createSlice", sdkerrors.ExtensionConflict, fmt.Sprintf("slice %q already exists", name))
	}
	s := &types.Slice{ID: newID(), DatasetID: datasetID, Name: name, Description: description}
	s.CreatedAt = now()
	b.slices.put(s.ID, s)
	return s, nil
}

func (b *Backend) sliceOf(field string, vars map[string]any) (*types.Slice, error) {
	id := str(vars, "sliceId")
	s, ok := b.slices.get(id)
	if !ok || s.DatasetID != str(vars, "datasetId") {
		return nil, notFound(field, "slice", id)
	}
	return s, nil
}

func (b *Backend) updateSlice(vars map[string]any) (any, error) {
	s, err := b.sliceOf("updateSlice", vars)
	if err != nil {
		return nil, err
	}
	if has(vars, "name") {
		s.Name = str(vars, "name")
	}
	if has(vars, "description") {
		s.Description = str(vars, "description")
	}
	if has(vars, "isPinned") {
		if v, ok := vars["isPinned"].(bool); ok {
			s.IsPinned = &v
		} else {
			s.IsPinned = nil
		}
	}
	s.UpdatedAt = now()
	return s, nil
}

func (b *Backend) deleteSlice(vars map[string]any) (any, error) {
	s, err := b.sliceOf("deleteSlice", vars)
	if err != nil {
		return nil, err
	}
	b.slices.remove(s.ID)
	for _, d := range b.data.filter(func(*types.Data) bool { return true }) {
		d.SliceIDs = without(d.SliceIDs, s.ID)
	}
	return true, nil
}

// Data

func (b *Backend) getData(vars map[string]any) (any, error) {
	datasetID := str(vars, "datasetId")
	id, key := str(vars, "dataId"), str(vars, "dataKey")
	d, ok := b.data.find(func(d *types.Data) bool {
		if d.DatasetID != datasetID {
			return false
		}
		if id != "" {
			return d.ID == id
		}
		return d.Key == key
	})
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (b *Backend) listData(vars map[string]any) (any, error) {
	datasetID := str(vars, "datasetId")
	if _, ok := b.datasets.get(datasetID); !ok {
		return nil, notFound("dataList", "dataset", datasetID)
	}
	rows := b.data.filter(func(d *types.Data) bool { return d.DatasetID == datasetID })
	return paginate("dataList", "data", vars, rows)
}

func (b *Backend) createData(vars map[string]any) (any, error) {
	var in struct {
		types.Data
		Slices []string `json:"slices"`
	}
	if err := decodeVars(vars, &in); err != nil {
		return nil, badInput("createData", err.Error())
	}
	d := in.Data
	d.SliceIDs = in.Slices
	return b.addData(&d)
}

func (b *Backend) addData(d *types.Data) (*types.Data, error) {
	if _, ok := b.datasets.get(d.DatasetID); !ok {
		return nil, notFound("createData", "dataset", d.DatasetID)
	}
	if _, dup := b.data.find(func(o *types.Data) bool { return o.DatasetID == d.DatasetID && o.Key == d.Key }); dup {
		return nil, gqlErr("createData", sdkerrors.ExtensionConflict, fmt.Sprintf("data %q already exists", d.Key))
	}
	for _, sid := range d.SliceIDs {
		if s, ok := b.slices.get(sid); !ok || s.DatasetID != d.DatasetID {
			return nil, notFound("createData", "slice", sid)
		}
	}
	for _, c := range referencedContents(d) {
		if _, ok := b.contents[c]; !ok {
			return nil, notFound("createData", "content", c)
		}
	}
	d.ID = newID()
	for i := range d.Scene {
		d.Scene[i].ID = newID()
	}
	if d.Annotation != nil {
		for i := range d.Annotation.Versions {
			d.Annotation.Versions[i].ID = newID()
		}
	}
	d.CreatedAt = now()
	b.data.put(d.ID, d)
	return d, nil
}

func referencedContents(d *types.Data) []string {
	var ids []string
	add := func(c *types.Content) {
		if c != nil && c.ID != "" {
			ids = append(ids, c.ID)
		}
	}
	for _, s := range d.Scene {
		add(s.Content)
	}
	add(d.Thumbnail)
	if d.Annotation != nil {
		for _, v := range d.Annotation.Versions {
			add(v.Content)
		}
	}
	for _, p := range d.Predictions {
		add(p.Content)
	}
	return ids
}

func (b *Backend) dataOf(field string, vars map[string]any) (*types.Data, error) {
	id := str(vars, "dataId")
	d, ok := b.data.get(id)
	if !ok || d.DatasetID != str(vars, "datasetId") {
		return nil, notFound(field, "data", id)
	}
	return d, nil
}

func (b *Backend) deleteData(vars map[string]any) (any, error) {
	d, err := b.dataOf("deleteData", vars)
	if err != nil {
		return nil, err
	}
	b.data.remove(d.ID)
	return true, nil
}

func (b *Backend) addDataToSlice(vars map[string]any) (any, error) {
	d, err := b.dataOf("addDataToSlice", vars)
	if err != nil {
		return nil, err
	}
	s, err := b.sliceOf("addDataToSlice", vars)
	if err != nil {
		return nil, err
	}
	d.SliceIDs = append(without(d.SliceIDs, s.ID), s.ID)
	d.UpdatedAt = now()
	return d, nil
}

func (b *Backend) removeDataFromSlice(vars map[string]any) (any, error) {
	d, err := b.dataOf("removeDataFromSlice", vars)
	if err != nil {
		return nil, err
	}
	s, err := b.sliceOf("removeDataFromSlice", vars)
	if err != nil {
		return nil, err
	}
	d.SliceIDs = without(d.SliceIDs, s.ID)
	d.UpdatedAt = now()
	return d, nil
}

func without(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Diagnoses

func (b *Backend) getDiagnosis(vars map[string]any) (any, error) {
	datasetID := str(vars, "datasetId")
	id, name := str(vars, "diagnosisId"), str(vars, "name")
	d, ok := b.diagnoses.find(func(d *types.Diagnosis) bool {
		if d.DatasetID != datasetID {
			return false
		}
		if id != "" {
			return d.ID == id
		}
		return d.Name == name
	})
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (b *Backend) listDiagnoses(vars map[string]any) (any, error) {
	datasetID := str(vars, "datasetId")
	rows := b.diagnoses.filter(func(d *types.Diagnosis) bool { return d.DatasetID == datasetID })
	return paginate("diagnoses", "diagnoses", vars, rows)
}

func (b *Backend) createDiagnosis(vars map[string]any) (any, error) {
	var d types.Diagnosis
	if err := decodeVars(vars, &d); err != nil {
		return nil, badInput("createDiagnosis", err.Error())
	}
	if _, ok := b.datasets.get(d.DatasetID); !ok {
		return nil, notFound("createDiagnosis", "dataset", d.DatasetID)
	}
	d.ID = newID()
	d.Status = types.DiagnosisStatusPending
	d.CreatedAt = now()
	b.diagnoses.put(d.ID, &d)
	return &d, nil
}

func (b *Backend) deleteDiagnosis(vars map[string]any) (any, error) {
	id := str(vars, "diagnosisId")
	d, ok := b.diagnoses.get(id)
	if !ok || d.DatasetID != str(vars, "datasetId") {
		return nil, notFound("deleteDiagnosis", "diagnosis", id)
	}
	b.diagnoses.remove(id)
	return true, nil
}

// Contents

func (b *Backend) blobURL(id, fileName string) string {
	u := b.URL + BlobPath + id
	if fileName != "" {
		u += "/" + fileName
	}
	return u + "?signature=" + uuid.NewString()
}

func (b *Backend) createContent(vars map[string]any) (any, error) {
	contentType := str(vars, "contentType")
	if contentType == "" {
		return nil, badInput("createContent", "contentType is required")
	}
	c := &content{id: newID(), key: str(vars, "key"), contentType: contentType}
	b.contents[c.id] = c
	return map[string]any{
		"content":   map[string]any{"id": c.id},
		"uploadURL": b.blobURL(c.id, ""),
	}, nil
}

func (b *Backend) createFolderContent(vars map[string]any) (any, error) {
	c := &content{id: newID(), key: str(vars, "key"), folder: true, files: make(map[string][]byte)}
	b.contents[c.id] = c
	return map[string]any{"id": c.id}, nil
}

func (b *Backend) fileUploadURL(vars map[string]any) (any, error) {
	id := str(vars, "contentId")
	c, ok := b.contents[id]
	if !ok {
		return nil, notFound("contentFileUploadURL", "content", id)
	}
	if !c.folder {
		return nil, badInput("contentFileUploadURL", "content is not a folder")
	}
	return b.blobURL(id, str(vars, "fileName")), nil
}

func (b *Backend) downloadURL(vars map[string]any) (any, error) {
	id := str(vars, "contentId")
	if _, ok := b.contents[id]; !ok {
		return nil, notFound("contentDownloadURL", "content", id)
	}
	return b.blobURL(id, str(vars, "fileName")), nil
}
