package types

// Content is a reference to a stored blob. Entities reference content by id
// only; the blob itself lives in the blob store.
type Content struct {
	ID string `json:"id,omitempty"`
}

// ContentUpload is the result of registering a new content: its id and a
// presigned URL that accepts a single PUT of the raw bytes.
type ContentUpload struct {
	Content   Content `json:"content"`
	UploadURL string  `json:"uploadURL"`
}

// ContentRef returns a pointer to a Content with the given id, or nil when
// id is empty.
func ContentRef(id string) *Content {
	if id == "" {
		return nil
	}
	return &Content{ID: id}
}
