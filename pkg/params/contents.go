package params

// CreateContent registers a new content and asks for a presigned upload URL.
type CreateContent struct {
	Key         string
	ContentType string
}

// Variables implements Builder.
func (p CreateContent) Variables() (Variables, error) {
	v := Variables{}
	optional(v, "key", p.Key)
	if err := required(v, "contentType", p.ContentType); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateFolderContent registers a content that holds several named files.
type CreateFolderContent struct {
	Key string
}

// Variables implements Builder.
func (p CreateFolderContent) Variables() (Variables, error) {
	v := Variables{}
	optional(v, "key", p.Key)
	return v, nil
}

// FileUploadURL asks for a presigned PUT URL for one file of a folder content.
type FileUploadURL struct {
	ContentID   string
	FileName    string
	ContentType string
}

// Variables implements Builder.
func (p FileUploadURL) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "contentId", p.ContentID, "fileName", p.FileName); err != nil {
		return nil, err
	}
	optional(v, "contentType", p.ContentType)
	return v, nil
}

// DownloadURL asks for a presigned GET URL for a content. FileName selects
// one file of a folder content and may be empty for single-file contents.
type DownloadURL struct {
	ContentID string
	FileName  string
}

// Variables implements Builder.
func (p DownloadURL) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "contentId", p.ContentID); err != nil {
		return nil, err
	}
	optional(v, "fileName", p.FileName)
	return v, nil
}
