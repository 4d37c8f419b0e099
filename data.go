package onprem

import (
	"context"
	"fmt"

	pkgerrors "github.com/superb-ai/onprem-go/pkg/errors"
	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/thumbnail"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// DataClient handles data item operations.
type DataClient struct {
	client *Client
}

// Get retrieves a data item by id or, when DataID is empty, by key.
func (c *DataClient) Get(ctx context.Context, p params.GetData) (*Data, error) {
	return one[Data](ctx, c.client, queries.GetData, resourceData, p)
}

// List retrieves one page of the data items of a dataset.
func (c *DataClient) List(ctx context.Context, p params.ListData) (*types.Page[Data], error) {
	return page[Data](ctx, c.client, queries.ListData, resourceData, p)
}

// ListIDs retrieves one page of data item ids. Only ids are selected, so
// it is much cheaper than List.
func (c *DataClient) ListIDs(ctx context.Context, p params.ListData) (*types.Page[string], error) {
	res, err := page[Data](ctx, c.client, queries.ListDataIDs, resourceData, p)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(res.Items))
	for _, d := range res.Items {
		ids = append(ids, d.ID)
	}
	return &types.Page[string]{Items: ids, Next: res.Next, TotalCount: res.TotalCount}, nil
}

// Create creates a data item. Contents referenced by the item must already
// be uploaded.
func (c *DataClient) Create(ctx context.Context, p params.CreateData) (*Data, error) {
	return one[Data](ctx, c.client, queries.CreateData, resourceData, p)
}

// Update changes the supplied fields of a data item.
func (c *DataClient) Update(ctx context.Context, p params.UpdateData) (*Data, error) {
	return one[Data](ctx, c.client, queries.UpdateData, resourceData, p)
}

// Delete deletes a data item.
func (c *DataClient) Delete(ctx context.Context, p params.DeleteData) (bool, error) {
	return deleted(ctx, c.client, queries.DeleteData, resourceData, p)
}

// AddToSlice adds a data item to a slice.
func (c *DataClient) AddToSlice(ctx context.Context, p params.DataSlice) (*Data, error) {
	return one[Data](ctx, c.client, queries.AddDataToSlice, resourceData, p)
}

// RemoveFromSlice removes a data item from a slice.
func (c *DataClient) RemoveFromSlice(ctx context.Context, p params.DataSlice) (*Data, error) {
	return one[Data](ctx, c.client, queries.RemoveDataFromSlice, resourceData, p)
}

// InsertPrediction attaches a prediction to a data item.
func (c *DataClient) InsertPrediction(ctx context.Context, p params.InsertPrediction) (*Data, error) {
	return one[Data](ctx, c.client, queries.InsertPrediction, resourceData, p)
}

// DeletePrediction removes the prediction of one set from a data item.
func (c *DataClient) DeletePrediction(ctx context.Context, p params.DeletePrediction) (*Data, error) {
	return one[Data](ctx, c.client, queries.DeletePrediction, resourceData, p)
}

// UpdateAnnotation replaces the annotation meta of a data item.
func (c *DataClient) UpdateAnnotation(ctx context.Context, p params.UpdateAnnotation) (*Data, error) {
	return one[Data](ctx, c.client, queries.UpdateAnnotation, resourceData, p)
}

// InsertAnnotationVersion appends an annotation version.
func (c *DataClient) InsertAnnotationVersion(ctx context.Context, p params.InsertAnnotationVersion) (*Data, error) {
	return one[Data](ctx, c.client, queries.InsertAnnotationVersion, resourceData, p)
}

// DeleteAnnotationVersion removes an annotation version.
func (c *DataClient) DeleteAnnotationVersion(ctx context.Context, p params.DeleteAnnotationVersion) (*Data, error) {
	return one[Data](ctx, c.client, queries.DeleteAnnotationVersion, resourceData, p)
}

// UpdateScene changes the supplied fields of one scene.
func (c *DataClient) UpdateScene(ctx context.Context, p params.UpdateScene) (*Data, error) {
	return one[Data](ctx, c.client, queries.UpdateScene, resourceData, p)
}

// UploadImageParams describes an image data item to upload.
type UploadImageParams struct {
	DatasetID string
	Key       string
	SliceIDs  []string
	// Image is the encoded image. When nil, the item has no scene and no
	// thumbnail.
	Image []byte
	// ContentType of Image. Defaults to image/jpeg.
	ContentType string
	// Annotation is encoded as JSON and stored as the first annotation
	// version. Optional.
	Annotation any
	// Meta is converted with types.DataMetaFromMap. Optional.
	Meta map[string]any
}

// UploadImage uploads an image, its thumbnail and an optional annotation
// as contents keyed "<key>_image", "<key>_thumbnail" and
// "<key>_annotation", then creates an image data item referencing them.
// Arguments, the annotation encoding and the image are checked before
// anything is uploaded.
func (c *DataClient) UploadImage(ctx context.Context, p UploadImageParams) (*Data, error) {
	meta, err := types.DataMetaFromMap(p.Meta)
	if err != nil {
		return nil, pkgerrors.NewBadParameterError("meta", err.Error())
	}
	d := &types.Data{
		DatasetID: p.DatasetID,
		Key:       p.Key,
		Type:      types.DataTypeSuperbImage,
		SliceIDs:  p.SliceIDs,
		Meta:      meta,
	}
	if _, err := (params.CreateData{Data: d}).Variables(); err != nil {
		return nil, err
	}

	var annotation []byte
	if p.Annotation != nil {
		if annotation, err = stableJSON("annotation", p.Annotation); err != nil {
			return nil, err
		}
	}

	var thumb []byte
	if p.Image != nil {
		thumb, err = thumbnail.Make(p.Image, c.client.config.ThumbnailSize)
		if err != nil {
			return nil, pkgerrors.NewBadParameterError("image", err.Error())
		}
	}

	contents := c.client.contents
	if p.Image != nil {
		contentType := p.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		img, err := contents.Upload(ctx, p.Image, contentType, p.Key+"_image")
		if err != nil {
			return nil, fmt.Errorf("onprem: upload image: %w", err)
		}
		th, err := contents.Upload(ctx, thumb, "image/jpeg", p.Key+"_thumbnail")
		if err != nil {
			return nil, fmt.Errorf("onprem: upload thumbnail: %w", err)
		}
		d.Scene = []types.Scene{{Type: types.SceneTypeImage, Content: img}}
		d.Thumbnail = th
	}
	if annotation != nil {
		ann, err := contents.Upload(ctx, annotation, ContentTypeJSON, p.Key+"_annotation")
		if err != nil {
			return nil, fmt.Errorf("onprem: upload annotation: %w", err)
		}
		d.Annotation = &types.Annotation{Versions: []types.AnnotationVersion{{Content: ann}}}
	}

	return c.Create(ctx, params.CreateData{Data: d})
}
