package params

import (
	"fmt"

	"github.com/superb-ai/onprem-go/pkg/config"
	sdkerrors "github.com/superb-ai/onprem-go/pkg/errors"
	"github.com/superb-ai/onprem-go/pkg/types"
)

// GetData looks up a data item by id or, when DataID is empty, by key.
type GetData struct {
	DatasetID string
	DataID    string
	Key       string
}

// Variables implements Builder.
func (p GetData) Variables() (Variables, error) {
	v := Variables{}
	if err := required(v, "datasetId", p.DatasetID); err != nil {
		return nil, err
	}
	if err := idOrName(v, "dataId", p.DataID, "dataKey", p.Key); err != nil {
		return nil, err
	}
	return v, nil
}

// ListData lists the data items of a dataset. ListDataIDs uses the same
// parameters with an id-only selection.
type ListData struct {
	DatasetID string
	Filter    *types.DataFilter
	Cursor    string
	Length    int
}

// Variables implements Builder.
func (p ListData) Variables() (Variables, error) {
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

// CreateData creates a data item. Scene, thumbnail, annotation version and
// prediction contents are sent by id; metadata is embedded.
type CreateData struct {
	Data *types.Data
}

// Variables implements Builder.
func (p CreateData) Variables() (Variables, error) {
	if p.Data == nil {
		return nil, sdkerrors.Required("data")
	}
	d := p.Data
	v := Variables{}
	if err := requiredAll(v, "datasetId", d.DatasetID, "key", d.Key); err != nil {
		return nil, err
	}
	if err := requiredEnum(v, "type", d.Type); err != nil {
		return nil, err
	}

	slices := d.SliceIDs
	if slices == nil {
		slices = []string{}
	}
	v["slices"] = slices

	if d.Scene != nil {
		scenes := make([]any, 0, len(d.Scene))
		for i, s := range d.Scene {
			if err := requiredContent(fmt.Sprintf("scene[%d].content", i), s.Content); err != nil {
				return nil, err
			}
			if !s.Type.Valid() {
				return nil, sdkerrors.NewBadParameterError(fmt.Sprintf("scene[%d].type", i), fmt.Sprintf("unknown value %q", string(s.Type)))
			}
			scenes = append(scenes, map[string]any{
				"type":    string(s.Type),
				"content": contentRef(s.Content),
				"meta":    s.Meta,
			})
		}
		v["scene"] = scenes
	}

	if d.Thumbnail != nil {
		v["thumbnail"] = contentRef(d.Thumbnail)
	}

	if d.Annotation != nil {
		versions := make([]any, 0, len(d.Annotation.Versions))
		for i, ver := range d.Annotation.Versions {
			av, err := annotationVersion(fmt.Sprintf("annotation.versions[%d]", i), ver)
			if err != nil {
				return nil, err
			}
			versions = append(versions, av)
		}
		v["annotation"] = map[string]any{
			"versions": versions,
			"meta":     d.Annotation.Meta,
		}
	}

	predictions := make([]any, 0, len(d.Predictions))
	for i, pr := range d.Predictions {
		wp, err := prediction(fmt.Sprintf("predictions[%d]", i), pr)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, wp)
	}
	v["predictions"] = predictions

	meta, err := metaList(d.Meta)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		v["meta"] = meta
	}
	systemMeta, err := metaList(d.SystemMeta)
	if err != nil {
		return nil, err
	}
	if systemMeta != nil {
		v["systemMeta"] = systemMeta
	}
	return v, nil
}

func requiredContent(key string, c *types.Content) error {
	if c == nil || c.ID == "" {
		return sdkerrors.Required(key)
	}
	return nil
}

func annotationVersion(key string, ver types.AnnotationVersion) (map[string]any, error) {
	if err := requiredContent(key+".content", ver.Content); err != nil {
		return nil, err
	}
	return map[string]any{
		"content": contentRef(ver.Content),
		"meta":    ver.Meta,
	}, nil
}

func prediction(key string, pr types.Prediction) (map[string]any, error) {
	if pr.SetID == "" {
		return nil, sdkerrors.Required(key + ".setId")
	}
	if err := requiredContent(key+".content", pr.Content); err != nil {
		return nil, err
	}
	return map[string]any{
		"setId":   pr.SetID,
		"content": contentRef(pr.Content),
		"meta":    pr.Meta,
	}, nil
}

// UpdateData changes only the supplied fields of a data item.
type UpdateData struct {
	DatasetID  string
	DataID     string
	Key        types.Field[string]
	Meta       types.Field[[]types.DataMeta]
	SystemMeta types.Field[[]types.DataMeta]
}

// Variables implements Builder.
func (p UpdateData) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID); err != nil {
		return nil, err
	}
	field(v, "key", p.Key)
	if err := metaField(v, "meta", p.Meta); err != nil {
		return nil, err
	}
	if err := metaField(v, "systemMeta", p.SystemMeta); err != nil {
		return nil, err
	}
	return v, nil
}

func metaField(v Variables, key string, f types.Field[[]types.DataMeta]) error {
	if !f.IsSet() {
		return nil
	}
	meta, ok := f.Get()
	if !ok {
		v[key] = nil
		return nil
	}
	list, err := metaList(meta)
	if err != nil {
		return err
	}
	if list == nil {
		list = []any{}
	}
	v[key] = list
	return nil
}

// DeleteData deletes a data item.
type DeleteData struct {
	DatasetID string
	DataID    string
}

// Variables implements Builder.
func (p DeleteData) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID); err != nil {
		return nil, err
	}
	return v, nil
}

// DataSlice adds a data item to or removes it from a slice.
type DataSlice struct {
	DatasetID string
	DataID    string
	SliceID   string
}

// Variables implements Builder.
func (p DataSlice) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID, "sliceId", p.SliceID); err != nil {
		return nil, err
	}
	return v, nil
}

// InsertPrediction attaches a prediction to a data item.
type InsertPrediction struct {
	DatasetID  string
	DataID     string
	Prediction types.Prediction
}

// Variables implements Builder.
func (p InsertPrediction) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID); err != nil {
		return nil, err
	}
	wp, err := prediction("prediction", p.Prediction)
	if err != nil {
		return nil, err
	}
	v["prediction"] = wp
	return v, nil
}

// DeletePrediction removes the prediction of one set from a data item.
type DeletePrediction struct {
	DatasetID string
	DataID    string
	SetID     string
}

// Variables implements Builder.
func (p DeletePrediction) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID, "setId", p.SetID); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateAnnotation replaces the annotation meta of a data item.
type UpdateAnnotation struct {
	DatasetID string
	DataID    string
	Meta      types.Field[types.JSON]
}

// Variables implements Builder.
func (p UpdateAnnotation) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID); err != nil {
		return nil, err
	}
	field(v, "meta", p.Meta)
	return v, nil
}

// InsertAnnotationVersion appends an annotation version to a data item.
type InsertAnnotationVersion struct {
	DatasetID string
	DataID    string
	Version   types.AnnotationVersion
}

// Variables implements Builder.
func (p InsertAnnotationVersion) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID); err != nil {
		return nil, err
	}
	av, err := annotationVersion("version", p.Version)
	if err != nil {
		return nil, err
	}
	v["version"] = av
	return v, nil
}

// DeleteAnnotationVersion removes one annotation version from a data item.
type DeleteAnnotationVersion struct {
	DatasetID string
	DataID    string
	VersionID string
}

// Variables implements Builder.
func (p DeleteAnnotationVersion) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID, "versionId", p.VersionID); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateScene changes only the supplied fields of one scene.
type UpdateScene struct {
	DatasetID string
	DataID    string
	SceneID   string
	Content   types.Field[types.Content]
	Meta      types.Field[types.JSON]
}

// Variables implements Builder.
func (p UpdateScene) Variables() (Variables, error) {
	v := Variables{}
	if err := requiredAll(v, "datasetId", p.DatasetID, "dataId", p.DataID, "sceneId", p.SceneID); err != nil {
		return nil, err
	}
	if p.Content.IsSet() {
		c, ok := p.Content.Get()
		switch {
		case !ok:
			v["content"] = nil
		case c.ID == "":
			return nil, sdkerrors.Required("content.id")
		default:
			v["content"] = contentRef(&c)
		}
	}
	field(v, "meta", p.Meta)
	return v, nil
}
