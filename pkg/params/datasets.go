package params

import (
	"github.com/superb-ai/onprem-go/pkg/config"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// GetDataset looks up a dataset by id or, when DatasetID is empty, by name.
type GetDataset struct {
	DatasetID string
	Name      string
}

// Variables implements Builder.
func (p GetDataset) Variables() (Variables, error) {
	v := Variables{}
	if err := idOrName(v, "datasetId", p.DatasetID, "name", p.Name); err != nil {
		return nil, err
	}
	return v, nil
}

// ListDatasets lists datasets.
type ListDatasets struct {
	Filter *types.DatasetFilter
	Cursor string
	Length int
}

// Variables implements Builder.
func (p ListDatasets) Variables() (Variables, error) {
	v := Variables{}
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

// CreateDataset creates a dataset.
type CreateDataset struct {
	Name        string
	Description string
}

// Variables implements Builder.
func (p CreateDataset) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "name", p.Name); err != nil {
		return nil, err
	}
	optional(v, "description", p.Description)
	return v, nil
}

// UpdateDataset changes only the supplied fields of a dataset.
type UpdateDataset struct {
	DatasetID   string
	Name        types.Field[string]
	Description types.Field[string]
}

// Variables implements Builder.
func (p UpdateDataset) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	field(v, "name", p.Name)
	field(v, "description", p.Description)
	return v, nil
}

// DeleteDataset deletes a dataset.
type DeleteDataset struct {
	DatasetID string
}

// Variables implements Builder.
func (p DeleteDataset) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	return v, nil
}
