package types

// Data is a single item in a dataset, such as an image with its scenes,
// annotation, predictions and metadata.
type Data struct {
	ID          string       `json:"id,omitempty"`
	DatasetID   string       `json:"datasetId,omitempty"`
	SliceIDs    []string     `json:"sliceIds,omitempty"`
	Key         string       `json:"key,omitempty"`
	Type        DataType     `json:"type,omitempty"`
	Scene       []Scene      `json:"scene,omitempty"`
	Thumbnail   *Content     `json:"thumbnail,omitempty"`
	Annotation  *Annotation  `json:"annotation,omitempty"`
	Predictions []Prediction `json:"predictions,omitempty"`
	Meta        []DataMeta   `json:"meta,omitempty"`
	SystemMeta  []DataMeta   `json:"systemMeta,omitempty"`
	Audit
}

// Scene is one view of a data item, backed by a content.
type Scene struct {
	ID      string    `json:"id,omitempty"`
	Type    SceneType `json:"type,omitempty"`
	Content *Content  `json:"content,omitempty"`
	Meta    JSON      `json:"meta,omitempty"`
}

// Annotation owns the ordered annotation versions of a data item.
type Annotation struct {
	Versions []AnnotationVersion `json:"versions,omitempty"`
	Meta     JSON                `json:"meta,omitempty"`
}

// AnnotationVersion is a single version of an annotation.
type AnnotationVersion struct {
	ID      string   `json:"id,omitempty"`
	Content *Content `json:"content,omitempty"`
	Meta    JSON     `json:"meta,omitempty"`
}

// Prediction is a model prediction attached to a data item, grouped by
// prediction set.
type Prediction struct {
	SetID   string   `json:"setId,omitempty"`
	Content *Content `json:"content,omitempty"`
	Meta    JSON     `json:"meta,omitempty"`
}

// DataMeta is a typed metadata entry.
type DataMeta struct {
	Key   string       `json:"key"`
	Type  DataMetaType `json:"type"`
	Value JSON         `json:"value,omitempty"`
}

// SceneByType returns the first scene of the given type.
func (d *Data) SceneByType(t SceneType) (Scene, bool) {
	for _, s := range d.Scene {
		if s.Type == t {
			return s, true
		}
	}
	return Scene{}, false
}

// MetaValue returns the metadata entry for key.
func (d *Data) MetaValue(key string) (DataMeta, bool) {
	for _, m := range d.Meta {
		if m.Key == key {
			return m, true
		}
	}
	return DataMeta{}, false
}
