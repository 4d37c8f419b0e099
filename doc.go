// Package onprem provides a Go SDK for the on-prem data management and MLOps
// platform: datasets, data items with their annotations and predictions,
// slices, models, diagnoses and analytics reports.
//
// Every operation is one GraphQL request. Typed parameters from pkg/params
// are validated on the client, so a missing id or an oversized page fails
// with a *BadParameterError before anything is sent.
//
// # Quick Start
//
//	client, err := onprem.New(
//	    onprem.WithEndpoint("https://onprem.example.com/graphql"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := client.Datasets().Create(ctx, params.CreateDataset{Name: "ds1"})
//
//	item, err := client.Data().UploadImage(ctx, onprem.UploadImageParams{
//	    DatasetID: ds.ID,
//	    Key:       "img1",
//	    Image:     jpegBytes,
//	    Meta:      map[string]any{"reviewed": true, "score": 0.9},
//	})
//
// # Partial Updates
//
// Update parameters use types.Field, which tells apart a field that was
// not supplied (the zero value, omitted from the request) from one set to
// null and from one set to a value:
//
//	client.Slices().Update(ctx, params.UpdateSlice{
//	    DatasetID:   ds.ID,
//	    SliceID:     sl.ID,
//	    Name:        types.Set("train"),
//	    Description: types.Null[string](),
//	})
//
// # Pagination
//
// List calls return a *types.Page. An empty Next cursor is the only end of
// results signal. Length defaults to 10 and may not exceed 50. All walks
// every page:
//
//	all, err := onprem.All(ctx, func(ctx context.Context, cursor string) (*types.Page[onprem.Slice], error) {
//	    return client.Slices().List(ctx, params.ListSlices{DatasetID: ds.ID, Cursor: cursor, Length: 50})
//	})
//
// # Errors
//
// Errors are classified so callers can branch on them:
//
//	_, err := client.Diagnoses().Delete(ctx, params.DiagnosisRef{DatasetID: id, DiagnosisID: "gone"})
//	switch {
//	case onprem.IsNotFound(err):
//	    // the server has no such diagnosis
//	case onprem.IsBadParameter(err):
//	    // rejected before any request was made
//	}
//
// A get whose server payload is null returns a *NotFoundError rather than a
// zero entity. Façade methods neither retry nor suppress server errors;
// transient transport failures are retried by the transport according to
// the configured RetryStrategy.
//
// # Thread Safety
//
// The Client and every sub-client are safe for concurrent use.
package onprem
