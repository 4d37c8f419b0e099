package onprem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	pkgerrors "github.com/superb-ai/onprem-go/pkg/errors"
	"github.com/superb-ai/onprem-go/pkg/params"
	"github.com/superb-ai/onprem-go/pkg/queries"
	"github.com/superb-ai/onprem-go/pkg/transport"
)

// ContentTypeJSON is the content type of JSON uploads.
const ContentTypeJSON = "application/json"

// ContentsClient registers contents and moves their bytes through the blob
// store. A content is either a single object or a folder of named files.
type ContentsClient struct {
	client *Client
}

// Create registers a content and returns it with a presigned upload URL.
// Most callers want Upload instead.
func (c *ContentsClient) Create(ctx context.Context, p params.CreateContent) (*ContentUpload, error) {
	return one[ContentUpload](ctx, c.client, queries.CreateContent, resourceContent, p)
}

// Upload registers a content under key and PUTs data to its upload URL.
func (c *ContentsClient) Upload(ctx context.Context, data []byte, contentType, key string) (*Content, error) {
	up, err := c.Create(ctx, params.CreateContent{Key: key, ContentType: contentType})
	if err != nil {
		return nil, err
	}
	if up.Content.ID == "" || up.UploadURL == "" {
		return nil, &pkgerrors.TransportError{
			Op:  queries.CreateContent.Name,
			Err: fmt.Errorf("content without id or upload URL: %w", pkgerrors.ErrEmptyResponse),
		}
	}
	if err := c.client.blobs.Put(transport.WithOperation(ctx, queries.CreateContent.Name), up.UploadURL, data, contentType); err != nil {
		return nil, err
	}
	c.client.logDebug("onprem: content uploaded", "content", up.Content.ID, "key", key, "bytes", len(data))
	return &Content{ID: up.Content.ID}, nil
}

// UploadJSON encodes v with sorted object keys and uploads it.
func (c *ContentsClient) UploadJSON(ctx context.Context, v any, key string) (*Content, error) {
	body, err := stableJSON("value", v)
	if err != nil {
		return nil, err
	}
	return c.Upload(ctx, body, ContentTypeJSON, key)
}

// CreateFolder registers a folder content whose files are uploaded with
// UploadFile.
func (c *ContentsClient) CreateFolder(ctx context.Context, key string) (*Content, error) {
	return one[Content](ctx, c.client, queries.CreateFolderContent, resourceContent, params.CreateFolderContent{Key: key})
}

// UploadFile PUTs data as fileName inside a folder content.
func (c *ContentsClient) UploadFile(ctx context.Context, contentID, fileName string, data []byte, contentType string) error {
	url, err := scalar[string](ctx, c.client, queries.FileUploadURL, resourceContent, params.FileUploadURL{
		ContentID:   contentID,
		FileName:    fileName,
		ContentType: contentType,
	})
	if err != nil {
		return err
	}
	return c.client.blobs.Put(transport.WithOperation(ctx, queries.FileUploadURL.Name), url, data, contentType)
}

// UploadFileJSON encodes v with sorted object keys and uploads it as
// fileName inside a folder content.
func (c *ContentsClient) UploadFileJSON(ctx context.Context, contentID, fileName string, v any) error {
	body, err := stableJSON("value", v)
	if err != nil {
		return err
	}
	return c.UploadFile(ctx, contentID, fileName, body, ContentTypeJSON)
}

// DownloadURL returns a presigned download URL. FileName selects a file of
// a folder content and is empty for single-object contents.
func (c *ContentsClient) DownloadURL(ctx context.Context, p params.DownloadURL) (string, error) {
	return scalar[string](ctx, c.client, queries.DownloadURL, resourceContent, p)
}

// Download fetches the bytes of a content, or of one file of a folder
// content.
func (c *ContentsClient) Download(ctx context.Context, contentID, fileName string) ([]byte, error) {
	url, err := c.DownloadURL(ctx, params.DownloadURL{ContentID: contentID, FileName: fileName})
	if err != nil {
		return nil, err
	}
	return c.client.blobs.Get(transport.WithOperation(ctx, queries.DownloadURL.Name), url)
}

// stableJSON encodes v so that equal values always produce equal bytes.
// Round-tripping through any turns structs into maps, whose keys
// encoding/json writes in sorted order. A value that cannot be encoded is
// a *BadParameterError for param.
func stableJSON(param string, v any) ([]byte, error) {
	first, err := json.Marshal(v)
	if err != nil {
		return nil, pkgerrors.NewBadParameterError(param, "cannot encode as JSON: "+err.Error())
	}
	dec := json.NewDecoder(bytes.NewReader(first))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("onprem: encode json: %w", err)
	}
	return json.Marshal(generic)
}
