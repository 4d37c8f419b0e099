package params

import (
	"github.com/superb-ai/onprem-go/pkg/config"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// GetSlice looks up a slice by id or, when SliceID is empty, by name.
type GetSlice struct {
	DatasetID string
	SliceID   string
	Name      string
}

// Variables implements Builder.
func (p GetSlice) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if err := idOrName(v, "sliceId", p.SliceID, "name", p.Name); err != nil {
		return nil, err
	}
	return v, nil
}

// ListSlices lists the slices of a dataset.
type ListSlices struct {
	DatasetID string
	Filter    *types.SliceFilter
	Cursor    string
	Length    int
}

// Variables implements Builder.
func (p ListSlices) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if p.Filter != nil {
		if err := wire(v, "filter", p.Filter); err != nil {
			return nil, err
		}
	}
	if err := page(v, p.Cursor, p.Length, config.MaxPageLength); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateSlice creates a slice.
type CreateSlice struct {
	DatasetID   string
	Name        string
	Description string
}

// Variables implements Builder.
func (p CreateSlice) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "name", p.Name); err != nil {
		return nil, err
	}
	optional(v, "description", p.Description)
	return v, nil
}

// UpdateSlice changes only the supplied fields of a slice.
type UpdateSlice struct {
	DatasetID   string
	SliceID     string
	Name        types.Field[string]
	Description types.Field[string]
	IsPinned    types.Field[bool]
}

// Variables implements Builder.
func (p UpdateSlice) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "sliceId", p.SliceID); err != nil {
		return nil, err
	}
	field(v, "name", p.Name)
	field(v, "description", p.Description)
	field(v, "isPinned", p.IsPinned)
	return v, nil
}

// DeleteSlice deletes a slice.
type DeleteSlice struct {
	DatasetID string
	SliceID   string
}

// Variables implements Builder.
func (p DeleteSlice) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "sliceId", p.SliceID); err != nil {
		return nil, err
	}
	return v, nil
}
