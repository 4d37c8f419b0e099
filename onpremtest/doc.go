// Package onpremtest provides testing utilities for applications using the
// onprem SDK.
//
// # Backend
//
// Backend is an in-memory GraphQL server for datasets, slices, data items,
// diagnoses and contents, with presigned blob URLs served by the same
// httptest server:
//
//	func TestMyFeature(t *testing.T) {
//	    client, backend := onpremtest.NewTestClient(t)
//	    seeded, err := backend.LoadFixtures("testdata/fixtures.yaml")
//	    // ...
//	    page, err := client.Slices().List(ctx, params.ListSlices{
//	        DatasetID: seeded.Datasets["ds1"],
//	    })
//	}
//
// # Mock Transport
//
// Use NewMockClient to script responses per operation without a server:
//
//	client, tr, _ := onpremtest.NewMockClient(t)
//	tr.On("datasets.get", onpremtest.JSONResponse(onprem.Dataset{ID: "ds1"}))
//
//	if tr.RequestCount() != 1 {
//	    t.Error("expected 1 request")
//	}
//
// # Mock Metrics and Logger
//
//	metrics := onpremtest.NewMockMetrics()
//	logger := onpremtest.NewMockLogger()
//	client, _ := onpremtest.NewTestClient(t,
//	    onprem.WithMetrics(metrics),
//	    onprem.WithStructuredLogger(logger),
//	)
package onpremtest
