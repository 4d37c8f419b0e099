package onprem_test

import (
	"context"
	"errors"
	"testing"

	onprem "github.com/superb-ai/onprem-go"
	"github.com/superb-ai/onprem-go/onpremtest"
	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/types"
)

func TestFacades_LengthOverMaxSendsNothing(t *testing.T) {
	client, tr, _ := onpremtest.NewMockClient(t)
	ctx := context.Background()
	const tooLong = onprem.MaxPageLength + 1

	calls := map[string]func() error{
		"datasets": func() error {
			_, err := client.Datasets().List(ctx, params.ListDatasets{Length: tooLong})
			return err
		},
		"slices": func() error {
			_, err := client.Slices().List(ctx, params.ListSlices{DatasetID: "ds", Length: tooLong})
			return err
		},
		"data": func() error {
			_, err := client.Data().List(ctx, params.ListData{DatasetID: "ds", Length: tooLong})
			return err
		},
		"data ids": func() error {
			_, err := client.Data().ListIDs(ctx, params.ListData{DatasetID: "ds", Length: tooLong})
			return err
		},
		"models": func() error {
			_, err := client.Models().List(ctx, params.ListModels{DatasetID: "ds", Length: tooLong})
			return err
		},
		"prediction sets": func() error {
			_, err := client.Predictions().ListSets(ctx, params.ListPredictionSets{DatasetID: "ds", Length: tooLong})
			return err
		},
		"diagnoses": func() error {
			_, err := client.Diagnoses().List(ctx, params.ListDiagnoses{DatasetID: "ds", Length: tooLong})
			return err
		},
		"reports": func() error {
			_, err := client.Reports().List(ctx, params.ListReports{DatasetID: "ds", Length: tooLong})
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			bp, ok := onprem.AsBadParameterError(err)
			if !ok || bp.Param != "length" {
				t.Errorf("err = %v, want BadParameterError(length)", err)
			}
		})
	}
	if tr.RequestCount() != 0 {
		t.Errorf("RequestCount() = %d, want 0", tr.RequestCount())
	}
}

func TestFacades_MissingIdentifiers(t *testing.T) {
	client, tr, _ := onpremtest.NewMockClient(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		param string
		call  func() error
	}{
		{"dataset get without id or name", "datasetId", func() error {
			_, err := client.Datasets().Get(ctx, params.GetDataset{})
			return err
		}},
		{"slice get without dataset", "datasetId", func() error {
			_, err := client.Slices().Get(ctx, params.GetSlice{SliceID: "s"})
			return err
		}},
		{"data delete without data id", "dataId", func() error {
			_, err := client.Data().Delete(ctx, params.DeleteData{DatasetID: "ds"})
			return err
		}},
		{"model pin without model id", "modelId", func() error {
			_, err := client.Models().Pin(ctx, params.ModelRef{DatasetID: "ds"})
			return err
		}},
		{"diagnosis delete without id", "diagnosisId", func() error {
			_, err := client.Diagnoses().Delete(ctx, params.DiagnosisRef{DatasetID: "ds"})
			return err
		}},
		{"report item delete without item", "itemId", func() error {
			_, err := client.Reports().DeleteItem(ctx, params.DeleteReportItem{DatasetID: "ds", ReportID: "r"})
			return err
		}},
		{"download without content", "contentId", func() error {
			_, err := client.Contents().DownloadURL(ctx, params.DownloadURL{})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, onprem.ErrBadParameter) {
				t.Fatalf("err = %v, want BadParameterError", err)
			}
			bp, _ := onprem.AsBadParameterError(err)
			if tt.param != "" && bp.Param != tt.param {
				t.Errorf("Param = %q, want %q", bp.Param, tt.param)
			}
		})
	}
	if tr.RequestCount() != 0 {
		t.Errorf("RequestCount() = %d, want 0", tr.RequestCount())
	}
}

func TestModels_PinAndTrainingReports(t *testing.T) {
	client, tr, _ := onpremtest.NewMockClient(t)
	ctx := context.Background()

	tr.On("models.pin", onpremtest.JSONResponse(onprem.Model{ID: "m1", IsPinned: types.Ptr(true)}))
	tr.On("trainingReports.create", onpremtest.JSONResponse(onprem.Model{
		ID:             "m1",
		TrainingReport: &types.TrainingReport{ID: "tr1", ContentID: "c1"},
	}))
	tr.On("models.delete", onpremtest.JSONResponse(true))

	m, err := client.Models().Pin(ctx, params.ModelRef{DatasetID: "ds", ModelID: "m1"})
	if err != nil {
		t.Fatalf("Pin: %v", err)
	}
	if m.IsPinned == nil || !*m.IsPinned {
		t.Errorf("IsPinned = %v", m.IsPinned)
	}

	m, err = client.TrainingReports().Create(ctx, params.CreateTrainingReport{
		DatasetID: "ds",
		ModelID:   "m1",
		Name:      "epoch-10",
		ContentID: "c1",
	})
	if err != nil {
		t.Fatalf("Create training report: %v", err)
	}
	if m.TrainingReport == nil || m.TrainingReport.ContentID != "c1" {
		t.Errorf("TrainingReport = %+v", m.TrainingReport)
	}
	if v := tr.LastRequest().Variables; v["modelId"] != "m1" || v["name"] != "epoch-10" {
		t.Errorf("Variables = %v", v)
	}

	ok, err := client.Models().Delete(ctx, params.ModelRef{DatasetID: "ds", ModelID: "m1"})
	if err != nil || !ok {
		t.Errorf("Delete = %v, %v", ok, err)
	}
}

func TestModels_CreateRejectsUnknownTaskType(t *testing.T) {
	client, tr, _ := onpremtest.NewMockClient(t)

	_, err := client.Models().Create(context.Background(), params.CreateModel{
		DatasetID: "ds",
		Name:      "m",
		TaskType:  types.ModelTaskType("REGRESSION"),
	})
	bp, ok := onprem.AsBadParameterError(err)
	if !ok || bp.Param != "taskType" {
		t.Errorf("err = %v, want BadParameterError(taskType)", err)
	}
	if tr.RequestCount() != 0 {
		t.Errorf("RequestCount() = %d, want 0", tr.RequestCount())
	}
}

func TestPredictions_DeleteFromData(t *testing.T) {
	client, tr, _ := onpremtest.NewMockClient(t)
	ctx := context.Background()

	tr.On("predictions.deleteFromData", onpremtest.JSONResponse(true), onpremtest.Response{})

	ok, err := client.Predictions().DeleteFromData(ctx, params.DeletePredictionFromData{
		DatasetID:       "ds",
		DataID:          "d1",
		PredictionSetID: "ps1",
	})
	if err != nil || !ok {
		t.Fatalf("DeleteFromData = %v, %v", ok, err)
	}

	_, err = client.Predictions().DeleteFromData(ctx, params.DeletePredictionFromData{
		DatasetID:       "ds",
		DataID:          "d1",
		PredictionSetID: "ps1",
	})
	nf, ok := onprem.AsNotFoundError(err)
	if !ok || nf.Resource != "data" {
		t.Errorf("err = %v, want NotFoundError for data", err)
	}
}

func TestDiagnoses_ReportItems(t *testing.T) {
	client, tr, _ := onpremtest.NewMockClient(t)
	ctx := context.Background()

	tr.On("diagnoses.createReportItem", onpremtest.JSONResponse(onprem.Diagnosis{
		ID: "dg1",
		DiagnosisReportItems: []types.DiagnosisReportItem{
			{ID: "i1", Name: "confusion", Type: types.AnalyticsReportItemTypeHeatmap},
		},
	}))

	d, err := client.Diagnoses().CreateReportItem(ctx, params.CreateDiagnosisReportItem{
		DatasetID:   "ds",
		DiagnosisID: "dg1",
		Name:        "confusion",
		Type:        types.AnalyticsReportItemTypeHeatmap,
		ContentID:   "c1",
	})
	if err != nil {
		t.Fatalf("CreateReportItem: %v", err)
	}
	if len(d.DiagnosisReportItems) != 1 || d.DiagnosisReportItems[0].Type != types.AnalyticsReportItemTypeHeatmap {
		t.Errorf("items = %+v", d.DiagnosisReportItems)
	}
	if v := tr.LastRequest().Variables; v["type"] != "HEATMAP" || v["contentId"] != "c1" {
		t.Errorf("Variables = %v", v)
	}

	tr.On("diagnoses.deleteReportItem", onpremtest.JSONResponse(onprem.Diagnosis{ID: "dg1"}))
	if _, err := client.Diagnoses().DeleteReportItem(ctx, params.DeleteDiagnosisReportItem{
		DatasetID:   "ds",
		DiagnosisID: "dg1",
		ItemID:      "i1",
	}); err != nil {
		t.Fatalf("DeleteReportItem: %v", err)
	}
	if v := tr.LastRequest().Variables; v["diagnosisReportItemId"] != "i1" {
		t.Errorf("Variables = %v", v)
	}
}

func TestReports_UpdateSendsOnlySuppliedFields(t *testing.T) {
	client, tr, _ := onpremtest.NewMockClient(t)
	tr.On("reports.update", onpremtest.JSONResponse(onprem.AnalyticsReport{ID: "r1", Title: "t"}))

	_, err := client.Reports().Update(context.Background(), params.UpdateReport{
		DatasetID:   "ds",
		ReportID:    "r1",
		Title:       types.Set("t"),
		Description: types.Null[string](),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	v := tr.LastRequest().Variables
	if v["title"] != "t" {
		t.Errorf("title = %v", v["title"])
	}
	desc, ok := v["description"]
	if !ok || desc != nil {
		t.Errorf("description = %v (present %v), want explicit null", desc, ok)
	}
	if _, ok := v["meta"]; ok {
		t.Error("unset meta should be omitted")
	}
}

func TestContents_UploadUsesPresignedURL(t *testing.T) {
	client, tr, blobs := onpremtest.NewMockClient(t)
	tr.On("contents.create", onpremtest.JSONResponse(onprem.ContentUpload{
		Content:   onprem.Content{ID: "c1"},
		UploadURL: "https://blobs.example.com/c1?sig=abc",
	}))

	c, err := client.Contents().UploadJSON(context.Background(), map[string]int{"z": 1, "a": 2}, "k")
	if err != nil {
		t.Fatalf("UploadJSON: %v", err)
	}
	if c.ID != "c1" {
		t.Errorf("ID = %q", c.ID)
	}
	body, contentType, ok := blobs.Blob("https://blobs.example.com/c1?sig=abc")
	if !ok {
		t.Fatal("nothing was uploaded")
	}
	if string(body) != `{"a":2,"z":1}` || contentType != onprem.ContentTypeJSON {
		t.Errorf("blob = %s (%s)", body, contentType)
	}
	if v := tr.LastRequest().Variables; v["key"] != "k" || v["contentType"] != onprem.ContentTypeJSON {
		t.Errorf("Variables = %v", v)
	}
}

func TestContents_UploadMalformedCreateResponse(t *testing.T) {
	tests := []struct {
		name string
		resp onprem.ContentUpload
	}{
		{"missing upload URL", onprem.ContentUpload{Content: onprem.Content{ID: "c1"}}},
		{"missing content id", onprem.ContentUpload{UploadURL: "https://blobs.example.com/x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, tr, blobs := onpremtest.NewMockClient(t)
			tr.On("contents.create", onpremtest.JSONResponse(tt.resp))

			_, err := client.Contents().Upload(context.Background(), []byte("x"), "text/plain", "k")
			var te *onprem.TransportError
			if !errors.As(err, &te) || te.Op != "contents.create" {
				t.Fatalf("err = %v, want TransportError for contents.create", err)
			}
			if !errors.Is(err, onprem.ErrEmptyResponse) {
				t.Errorf("err = %v, want ErrEmptyResponse in chain", err)
			}
			if blobs.Len() != 0 {
				t.Errorf("blobs = %d, want 0", blobs.Len())
			}
		})
	}
}

func TestContents_UnencodableJSON(t *testing.T) {
	client, tr, blobs := onpremtest.NewMockClient(t)
	ctx := context.Background()
	bad := map[string]any{"ch": make(chan int)}

	_, err := client.Contents().UploadJSON(ctx, bad, "k")
	if bp, ok := onprem.AsBadParameterError(err); !ok || bp.Param != "value" {
		t.Errorf("UploadJSON err = %v, want BadParameterError(value)", err)
	}
	err = client.Contents().UploadFileJSON(ctx, "c1", "reports.json", bad)
	if !onprem.IsBadParameter(err) {
		t.Errorf("UploadFileJSON err = %v, want BadParameterError", err)
	}
	if err := client.Reports().UploadReportsJSON(ctx, "c1", bad); !onprem.IsBadParameter(err) {
		t.Errorf("UploadReportsJSON err = %v, want BadParameterError", err)
	}
	if tr.RequestCount() != 0 || blobs.Len() != 0 {
		t.Errorf("requests = %d, blobs = %d, want 0 and 0", tr.RequestCount(), blobs.Len())
	}
}

func TestData_UploadImageUnencodableAnnotation(t *testing.T) {
	client, tr, blobs := onpremtest.NewMockClient(t)
	tr.On("contents.create", onpremtest.JSONResponse(onprem.ContentUpload{
		Content:   onprem.Content{ID: "c1"},
		UploadURL: "https://blobs.example.com/c1",
	}))

	_, err := client.Data().UploadImage(context.Background(), onprem.UploadImageParams{
		DatasetID:  "ds",
		Key:        "img1",
		Image:      testJPEG(t, 16, 16),
		Annotation: map[string]any{"bad": make(chan int)},
	})
	bp, ok := onprem.AsBadParameterError(err)
	if !ok || bp.Param != "annotation" {
		t.Fatalf("err = %v, want BadParameterError(annotation)", err)
	}
	if tr.RequestCount() != 0 {
		t.Errorf("RequestCount() = %d, want 0", tr.RequestCount())
	}
	if blobs.Len() != 0 {
		t.Errorf("blobs = %d, want 0", blobs.Len())
	}
}

func TestData_UploadImageAnnotationUploadedAsJSON(t *testing.T) {
	client, tr, blobs := onpremtest.NewMockClient(t)
	tr.On("contents.create", onpremtest.JSONResponse(onprem.ContentUpload{
		Content:   onprem.Content{ID: "ann"},
		UploadURL: "https://blobs.example.com/ann",
	}))
	tr.On("data.create", onpremtest.JSONResponse(onprem.Data{ID: "d1"}))

	_, err := client.Data().UploadImage(context.Background(), onprem.UploadImageParams{
		DatasetID:  "ds",
		Key:        "img1",
		Annotation: map[string]any{"objects": []any{}, "categories": map[string]int{"b": 2, "a": 1}},
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	body, contentType, ok := blobs.Blob("https://blobs.example.com/ann")
	if !ok {
		t.Fatal("annotation was not uploaded")
	}
	if string(body) != `{"categories":{"a":1,"b":2},"objects":[]}` || contentType != onprem.ContentTypeJSON {
		t.Errorf("annotation = %s (%s)", body, contentType)
	}
	for _, r := range tr.Requests() {
		if r.Name == "contents.create" && r.Variables["key"] != "img1_annotation" {
			t.Errorf("content key = %v, want img1_annotation", r.Variables["key"])
		}
	}
}

func TestData_UploadImageBlobFailure(t *testing.T) {
	client, tr, blobs := onpremtest.NewMockClient(t)
	tr.On("contents.create", onpremtest.JSONResponse(onprem.ContentUpload{
		Content:   onprem.Content{ID: "c1"},
		UploadURL: "https://blobs.example.com/c1",
	}))
	blobs.PutErr = &onprem.UploadError{Method: "PUT", StatusCode: 403}

	_, err := client.Data().UploadImage(context.Background(), onprem.UploadImageParams{
		DatasetID: "ds",
		Key:       "img1",
		Image:     testJPEG(t, 16, 16),
	})
	if _, ok := onprem.AsUploadError(err); !ok {
		t.Fatalf("err = %v, want UploadError", err)
	}
	for _, r := range tr.Requests() {
		if r.Name == "data.create" {
			t.Error("data must not be created after a failed upload")
		}
	}
}

func TestData_UploadImageWithoutImage(t *testing.T) {
	client, tr, blobs := onpremtest.NewMockClient(t)
	tr.On("data.create", onpremtest.JSONResponse(onprem.Data{ID: "d1", Key: "meta-only"}))

	d, err := client.Data().UploadImage(context.Background(), onprem.UploadImageParams{
		DatasetID: "ds",
		Key:       "meta-only",
		Meta:      map[string]any{"n": 3},
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if d.ID != "d1" || blobs.Len() != 0 {
		t.Errorf("data = %+v, blobs = %d", d, blobs.Len())
	}
	v := tr.LastRequest().Variables
	if _, ok := v["scene"]; ok {
		t.Error("scene should be omitted without an image")
	}
	if v["type"] != string(types.DataTypeSuperbImage) {
		t.Errorf("type = %v", v["type"])
	}
}

func TestClient_Construction(t *testing.T) {
	if _, err := onprem.New(); !errors.Is(err, onprem.ErrMissingEndpoint) {
		t.Errorf("New() err = %v, want ErrMissingEndpoint", err)
	}
	if _, err := onprem.NewWithConfig(nil); err == nil {
		t.Error("NewWithConfig(nil) should fail")
	}

	client, _, _ := onpremtest.NewMockClient(t)
	if client.Datasets() == nil || client.Data() == nil || client.Slices() == nil ||
		client.Models() == nil || client.TrainingReports() == nil || client.Predictions() == nil ||
		client.Diagnoses() == nil || client.Reports() == nil || client.Contents() == nil {
		t.Error("every sub-client should be initialized")
	}
}
