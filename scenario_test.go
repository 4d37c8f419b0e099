package onprem_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"reflect"
	"testing"

	onprem "github.com/superb-ai/onprem-go"
	"github.com/superb-ai/onprem-go/onpremtest"
	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/types"
)

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestScenario_UploadImageThenGet(t *testing.T) {
	client, backend := onpremtest.NewTestClient(t)
	ctx := context.Background()

	ds, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "ds1"})
	if err != nil {
		t.Fatalf("Create dataset: %v", err)
	}
	sl, err := client.Slices().Create(ctx, params.CreateSlice{DatasetID: ds.ID, Name: "train"})
	if err != nil {
		t.Fatalf("Create slice: %v", err)
	}

	created, err := client.Data().UploadImage(ctx, onprem.UploadImageParams{
		DatasetID:  ds.ID,
		Key:        "img1",
		SliceIDs:   []string{sl.ID},
		Image:      testJPEG(t, 400, 200),
		Annotation: map[string]any{"objects": []any{}, "categories": map[string]any{"b": 2, "a": 1}},
		Meta:       map[string]any{"score": 0.5, "reviewed": true, "source": "camera"},
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	got, err := client.Data().Get(ctx, params.GetData{DatasetID: ds.ID, DataID: created.ID})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Key != "img1" || got.Type != types.DataTypeSuperbImage {
		t.Errorf("data = %+v", got)
	}
	if len(got.Scene) != 1 || got.Scene[0].Type != types.SceneTypeImage {
		t.Fatalf("Scene = %+v, want one IMAGE scene", got.Scene)
	}
	if got.Thumbnail == nil || got.Thumbnail.ID == "" {
		t.Fatal("Thumbnail id is empty")
	}
	if !reflect.DeepEqual(got.SliceIDs, []string{sl.ID}) {
		t.Errorf("SliceIDs = %v", got.SliceIDs)
	}

	var keys []string
	for _, m := range got.Meta {
		keys = append(keys, m.Key)
	}
	if !reflect.DeepEqual(keys, []string{"reviewed", "score", "source"}) {
		t.Errorf("meta keys = %v, want sorted", keys)
	}
	if m, _ := got.MetaValue("reviewed"); m.Type != types.DataMetaTypeBoolean {
		t.Errorf("reviewed type = %s, want BOOLEAN", m.Type)
	}

	if key := backend.ContentKey(got.Thumbnail.ID); key != "img1_thumbnail" {
		t.Errorf("thumbnail key = %q", key)
	}
	if key := backend.ContentKey(got.Scene[0].Content.ID); key != "img1_image" {
		t.Errorf("image key = %q", key)
	}

	thumb, ok := backend.ContentBody(got.Thumbnail.ID)
	if !ok {
		t.Fatal("thumbnail was not uploaded")
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("thumbnail is not a jpeg: %v", err)
	}
	if cfg.Width != onprem.DefaultThumbnailSize || cfg.Height > onprem.DefaultThumbnailSize {
		t.Errorf("thumbnail = %dx%d, want to fit %d", cfg.Width, cfg.Height, onprem.DefaultThumbnailSize)
	}

	if got.Annotation == nil || len(got.Annotation.Versions) != 1 {
		t.Fatalf("Annotation = %+v, want one version", got.Annotation)
	}
	annID := got.Annotation.Versions[0].Content.ID
	ann, ok := backend.ContentBody(annID)
	if !ok {
		t.Fatal("annotation was not uploaded")
	}
	if string(ann) != `{"categories":{"a":1,"b":2},"objects":[]}` {
		t.Errorf("annotation = %s", ann)
	}

	downloaded, err := client.Contents().Download(ctx, annID, "")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(downloaded, ann) {
		t.Errorf("Download = %s, want %s", downloaded, ann)
	}
}

func TestScenario_UploadImageRejectsBadImageBeforeUpload(t *testing.T) {
	client, backend := onpremtest.NewTestClient(t)
	ctx := context.Background()

	ds, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "ds1"})
	if err != nil {
		t.Fatalf("Create dataset: %v", err)
	}
	before := backend.RequestCount()

	_, err = client.Data().UploadImage(ctx, onprem.UploadImageParams{
		DatasetID: ds.ID,
		Key:       "broken",
		Image:     []byte("not an image"),
	})
	if !onprem.IsBadParameter(err) {
		t.Fatalf("err = %v, want BadParameterError", err)
	}
	if backend.RequestCount() != before {
		t.Errorf("requests = %d, want %d", backend.RequestCount(), before)
	}
}

func TestScenario_SlicePagination(t *testing.T) {
	client, _ := onpremtest.NewTestClient(t)
	ctx := context.Background()

	ds, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "paged"})
	if err != nil {
		t.Fatalf("Create dataset: %v", err)
	}
	for _, name := range []string{"s1", "s2", "s3"} {
		if _, err := client.Slices().Create(ctx, params.CreateSlice{DatasetID: ds.ID, Name: name}); err != nil {
			t.Fatalf("Create slice %s: %v", name, err)
		}
	}

	first, err := client.Slices().List(ctx, params.ListSlices{DatasetID: ds.ID, Length: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if first.Len() != 2 || first.Next == "" {
		t.Fatalf("first page: %d items, next %q", first.Len(), first.Next)
	}

	second, err := client.Slices().List(ctx, params.ListSlices{DatasetID: ds.ID, Length: 2, Cursor: first.Next})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if second.Len() != 1 || second.Next != "" {
		t.Errorf("second page: %d items, next %q", second.Len(), second.Next)
	}

	replay, err := client.Slices().List(ctx, params.ListSlices{DatasetID: ds.ID, Length: 2, Cursor: first.Next})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(replay.Items, second.Items) || replay.Next != second.Next {
		t.Errorf("replayed cursor returned %+v, want %+v", replay, second)
	}

	all, err := onprem.All(ctx, func(ctx context.Context, cursor string) (*types.Page[onprem.Slice], error) {
		return client.Slices().List(ctx, params.ListSlices{DatasetID: ds.ID, Length: 1, Cursor: cursor})
	})
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 || all[0].Name != "s1" || all[2].Name != "s3" {
		t.Errorf("All = %+v", all)
	}
}

func TestScenario_DeleteMissingDiagnosis(t *testing.T) {
	client, _ := onpremtest.NewTestClient(t)
	ctx := context.Background()

	ds, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "ds1"})
	if err != nil {
		t.Fatalf("Create dataset: %v", err)
	}
	_, err = client.Diagnoses().Delete(ctx, params.DiagnosisRef{DatasetID: ds.ID, DiagnosisID: "nonexistent"})
	if !onprem.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	nf, _ := onprem.AsNotFoundError(err)
	if nf.Resource != "diagnosis" || nf.Path != "deleteDiagnosis" {
		t.Errorf("NotFoundError = %+v", nf)
	}
}

func TestScenario_DiagnosisLifecycle(t *testing.T) {
	client, _ := onpremtest.NewTestClient(t)
	ctx := context.Background()

	ds, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "ds1"})
	if err != nil {
		t.Fatalf("Create dataset: %v", err)
	}
	d, err := client.Diagnoses().Create(ctx, params.CreateDiagnosis{
		DatasetID:  ds.ID,
		Name:       "run-1",
		ScoreKey:   "mAP",
		ScoreValue: types.Ptr(0.72),
	})
	if err != nil {
		t.Fatalf("Create diagnosis: %v", err)
	}
	if d.Status != types.DiagnosisStatusPending || d.ScoreValue == nil || *d.ScoreValue != 0.72 {
		t.Errorf("diagnosis = %+v", d)
	}

	byName, err := client.Diagnoses().Get(ctx, params.GetDiagnosis{DatasetID: ds.ID, Name: "run-1"})
	if err != nil || byName.ID != d.ID {
		t.Fatalf("Get by name = %+v, %v", byName, err)
	}

	ok, err := client.Diagnoses().Delete(ctx, params.DiagnosisRef{DatasetID: ds.ID, DiagnosisID: d.ID})
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	if _, err := client.Diagnoses().Get(ctx, params.GetDiagnosis{DatasetID: ds.ID, DiagnosisID: d.ID}); !onprem.IsNotFound(err) {
		t.Errorf("Get after delete: err = %v, want NotFoundError", err)
	}
}

func TestScenario_GetMissingIsNotFound(t *testing.T) {
	client, _ := onpremtest.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Datasets().Get(ctx, params.GetDataset{Name: "nope"})
	if !onprem.IsNotFound(err) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestScenario_DatasetUpdatePartial(t *testing.T) {
	client, backend := onpremtest.NewTestClient(t)
	ctx := context.Background()

	ds, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "ds1", Description: "first"})
	if err != nil {
		t.Fatalf("Create dataset: %v", err)
	}
	updated, err := client.Datasets().Update(ctx, params.UpdateDataset{
		DatasetID: ds.ID,
		Name:      types.Set("renamed"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "renamed" || updated.Description != "first" {
		t.Errorf("dataset = %+v", updated)
	}

	req := backend.RequestsFor("updateDataset")[0]
	if _, ok := req.Variables["description"]; ok {
		t.Error("unset description should not be sent")
	}
}

func TestScenario_DataSliceMembership(t *testing.T) {
	client, backend := onpremtest.NewTestClient(t)
	ctx := context.Background()

	seeded, err := backend.LoadFixtures("onpremtest/testdata/fixtures.yaml")
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	dsID := seeded.Datasets["ds1"]
	dataID := seeded.Data["ds1/img3"]
	sliceID := seeded.Slices["ds1/val"]

	d, err := client.Data().AddToSlice(ctx, params.DataSlice{DatasetID: dsID, DataID: dataID, SliceID: sliceID})
	if err != nil {
		t.Fatalf("AddToSlice: %v", err)
	}
	if !reflect.DeepEqual(d.SliceIDs, []string{sliceID}) {
		t.Errorf("SliceIDs = %v", d.SliceIDs)
	}

	d, err = client.Data().RemoveFromSlice(ctx, params.DataSlice{DatasetID: dsID, DataID: dataID, SliceID: sliceID})
	if err != nil {
		t.Fatalf("RemoveFromSlice: %v", err)
	}
	if len(d.SliceIDs) != 0 {
		t.Errorf("SliceIDs = %v, want none", d.SliceIDs)
	}

	ids, err := client.Data().ListIDs(ctx, params.ListData{DatasetID: dsID, Length: 50})
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if ids.Len() != 3 || ids.TotalCount != 3 {
		t.Errorf("ListIDs = %+v", ids)
	}

	ok, err := client.Data().Delete(ctx, params.DeleteData{DatasetID: dsID, DataID: dataID})
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	if _, err := client.Data().Get(ctx, params.GetData{DatasetID: dsID, Key: "img3"}); !onprem.IsNotFound(err) {
		t.Errorf("Get after delete: err = %v, want NotFoundError", err)
	}
}

func TestScenario_ReportFolderUploads(t *testing.T) {
	client, backend := onpremtest.NewTestClient(t)
	ctx := context.Background()

	folder, err := client.Contents().CreateFolder(ctx, "report-item")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	chart := struct {
		Series []int  `json:"series"`
		Axis   string `json:"axis"`
	}{Series: []int{3, 1}, Axis: "x"}
	if err := client.Reports().UploadReportsJSON(ctx, folder.ID, chart); err != nil {
		t.Fatalf("UploadReportsJSON: %v", err)
	}
	if err := client.Reports().UploadDataIDsJSON(ctx, folder.ID, map[string][]string{"cat": {"d1", "d2"}}); err != nil {
		t.Fatalf("UploadDataIDsJSON: %v", err)
	}

	reports, ok := backend.ContentFile(folder.ID, onprem.ReportsFileName)
	if !ok {
		t.Fatal("reports.json was not uploaded")
	}
	if string(reports) != `{"axis":"x","series":[3,1]}` {
		t.Errorf("reports.json = %s", reports)
	}

	ids, err := client.Contents().Download(ctx, folder.ID, onprem.DataIDsFileName)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	var decoded map[string][]string
	if err := json.Unmarshal(ids, &decoded); err != nil || len(decoded["cat"]) != 2 {
		t.Errorf("data_ids.json = %s, %v", ids, err)
	}
}

func TestScenario_MetricsAndLogging(t *testing.T) {
	metrics := onpremtest.NewMockMetrics()
	logger := onpremtest.NewMockLogger()
	client, _ := onpremtest.NewTestClient(t,
		onprem.WithMetrics(metrics),
		onprem.WithStructuredLogger(logger),
	)
	ctx := context.Background()

	if _, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "ds1"}); err != nil {
		t.Fatalf("Create dataset: %v", err)
	}
	if _, err := client.Datasets().List(ctx, params.ListDatasets{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	if got := metrics.GetCounter("onprem.graphql.requests"); got != 2 {
		t.Errorf("requests counter = %d, want 2", got)
	}
	if len(metrics.GetTimings("onprem.graphql.duration")) != 2 {
		t.Error("expected two recorded durations")
	}
	if !logger.HasMessage("onprem: client created") || !logger.HasMessage("onprem: page fetched") {
		t.Errorf("messages = %v", logger.GetMessages())
	}
}
