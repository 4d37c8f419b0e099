package types

// Dataset is a named collection of data items.
type Dataset struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Audit
}

// Slice is a named subset of a dataset's data items.
type Slice struct {
	ID          string `json:"id,omitempty"`
	DatasetID   string `json:"datasetId,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsPinned    *bool  `json:"isPinned,omitempty"`
	Audit
}
