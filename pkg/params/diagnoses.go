package params

import (
	"github.com/superb-ai/onprem-go/pkg/config"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// GetDiagnosis looks up a diagnosis by id or, when DiagnosisID is empty,
// by name.
type GetDiagnosis struct {
	DatasetID   string
	DiagnosisID string
	Name        string
}

// Variables implements Builder.
func (p GetDiagnosis) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if err := idOrName(v, "diagnosisId", p.DiagnosisID, "name", p.Name); err != nil {
		return nil, err
	}
	return v, nil
}

// ListDiagnoses lists the diagnoses of a dataset.
type ListDiagnoses struct {
	DatasetID string
	Filter    *types.DiagnosisFilter
	OrderBy   *types.DiagnosisOrderBy
	Cursor    string
	Length    int
}

// Variables implements Builder.
func (p ListDiagnoses) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if p.Filter != nil {
		if err := wire(v, "filter", p.Filter); err != nil {
			return nil, err
		}
	}
	if err := orderBy(v, p.OrderBy); err != nil {
		return nil, err
	}
	if err := page(v, p.Cursor, p.Length, config.MaxPageLength); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateDiagnosis creates a diagnosis.
type CreateDiagnosis struct {
	DatasetID           string
	Name                string
	Description         string
	ScoreKey            string
	ScoreValue          *float64
	ScoreUnit           string
	DiagnosisParameters types.JSON
	Contents            types.JSON
	SourceSliceID       string
	TargetSliceID       string
	SourceDataCount     *int
	TargetDataCount     *int
	DiagnosisDataCount  *int
}

// Variables implements Builder.
func (p CreateDiagnosis) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "name", p.Name); err != nil {
		return nil, err
	}
	optional(v, "description", p.Description)
	optional(v, "scoreKey", p.ScoreKey)
	optionalPtr(v, "scoreValue", p.ScoreValue)
	optional(v, "scoreUnit", p.ScoreUnit)
	optionalJSON(v, "diagnosisParameters", p.DiagnosisParameters)
	optionalJSON(v, "contents", p.Contents)
	optional(v, "sourceSliceId", p.SourceSliceID)
	optional(v, "targetSliceId", p.TargetSliceID)
	optionalPtr(v, "sourceDataCount", p.SourceDataCount)
	optionalPtr(v, "targetDataCount", p.TargetDataCount)
	optionalPtr(v, "diagnosisDataCount", p.DiagnosisDataCount)
	return v, nil
}

// UpdateDiagnosis changes only the supplied fields of a diagnosis.
type UpdateDiagnosis struct {
	DatasetID           string
	DiagnosisID         string
	Name                types.Field[string]
	Description         types.Field[string]
	Status              types.Field[types.DiagnosisStatus]
	ScoreKey            types.Field[string]
	ScoreValue          types.Field[float64]
	ScoreUnit           types.Field[string]
	DiagnosisParameters types.Field[types.JSON]
	Contents            types.Field[types.JSON]
	SourceSliceID       types.Field[string]
	TargetSliceID       types.Field[string]
	SourceDataCount     types.Field[int]
	TargetDataCount     types.Field[int]
	DiagnosisDataCount  types.Field[int]
}

// Variables implements Builder.
func (p UpdateDiagnosis) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "diagnosisId", p.DiagnosisID); err != nil {
		return nil, err
	}
	field(v, "name", p.Name)
	field(v, "description", p.Description)
	if err := enumField(v, "status", p.Status); err != nil {
		return nil, err
	}
	field(v, "scoreKey", p.ScoreKey)
	field(v, "scoreValue", p.ScoreValue)
	field(v, "scoreUnit", p.ScoreUnit)
	field(v, "diagnosisParameters", p.DiagnosisParameters)
	field(v, "contents", p.Contents)
	field(v, "sourceSliceId", p.SourceSliceID)
	field(v, "targetSliceId", p.TargetSliceID)
	field(v, "sourceDataCount", p.SourceDataCount)
	field(v, "targetDataCount", p.TargetDataCount)
	field(v, "diagnosisDataCount", p.DiagnosisDataCount)
	return v, nil
}

// DiagnosisRef identifies a diagnosis for delete.
type DiagnosisRef struct {
	DatasetID   string
	DiagnosisID string
}

// Variables implements Builder.
func (p DiagnosisRef) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "diagnosisId", p.DiagnosisID); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateDiagnosisReportItem adds a chart to a diagnosis.
type CreateDiagnosisReportItem struct {
	DatasetID          string
	DiagnosisID        string
	Name               string
	Type               types.AnalyticsReportItemType
	ContentID          string
	Description        string
	DiscriminatorValue string
}

// Variables implements Builder.
func (p CreateDiagnosisReportItem) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "diagnosisId", p.DiagnosisID, "name", p.Name); err != nil {
		return nil, err
	}
	if err := requiredEnum(v, "type", p.Type); err != nil {
		return nil, err
	}
	optional(v, "contentId", p.ContentID)
	optional(v, "description", p.Description)
	optional(v, "discriminatorValue", p.DiscriminatorValue)
	return v, nil
}

// UpdateDiagnosisReportItem changes only the supplied fields of a report item.
type UpdateDiagnosisReportItem struct {
	DatasetID          string
	DiagnosisID        string
	ItemID             string
	Name               types.Field[string]
	Type               types.Field[types.AnalyticsReportItemType]
	ContentID          types.Field[string]
	Description        types.Field[string]
	DiscriminatorValue types.Field[string]
}

// Variables implements Builder.
func (p UpdateDiagnosisReportItem) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v,
		"datasetId", p.DatasetID,
		"diagnosisId", p.DiagnosisID,
		"diagnosisReportItemId", p.ItemID,
	); err != nil {
		return nil, err
	}
	field(v, "name", p.Name)
	if err := enumField(v, "type", p.Type); err != nil {
		return nil, err
	}
	field(v, "contentId", p.ContentID)
	field(v, "description", p.Description)
	field(v, "discriminatorValue", p.DiscriminatorValue)
	return v, nil
}

// DeleteDiagnosisReportItem removes a chart from a diagnosis.
type DeleteDiagnosisReportItem struct {
	DatasetID   string
	DiagnosisID string
	ItemID      string
}

// Variables implements Builder.
func (p DeleteDiagnosisReportItem) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v,
		"datasetId", p.DatasetID,
		"diagnosisId", p.DiagnosisID,
		"diagnosisReportItemId", p.ItemID,
	); err != nil {
		return nil, err
	}
	return v, nil
}
