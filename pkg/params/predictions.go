package params

import (
	"github.com/superb-ai/onprem-go/pkg/config"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// ListPredictionSets lists the prediction sets of a dataset.
type ListPredictionSets struct {
	DatasetID string
	Filter    *types.PredictionSetFilter
	Cursor    string
	Length    int
}

// Variables implements Builder.
func (p ListPredictionSets) Variables() (Variables, error) {
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

// PredictionSetRef identifies a prediction set for get and delete.
type PredictionSetRef struct {
	DatasetID       string
	PredictionSetID string
}

// Variables implements Builder.
func (p PredictionSetRef) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "predictionSetId", p.PredictionSetID); err != nil {
		return nil, err
	}
	return v, nil
}

// DeletePredictionFromData removes a prediction set's prediction from one
// data item.
type DeletePredictionFromData struct {
	DatasetID       string
	DataID          string
	PredictionSetID string
}

// Variables implements Builder.
func (p DeletePredictionFromData) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v,
		"datasetId", p.DatasetID,
		"dataId", p.DataID,
		"predictionSetId", p.PredictionSetID,
	); err != nil {
		return nil, err
	}
	return v, nil
}
