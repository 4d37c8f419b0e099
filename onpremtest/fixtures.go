package onpremtest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/superb-ai/onprem-go/pkg/types"
)

// Fixtures seeds a Backend.
//
//	datasets:
//	  - name: ds1
//	    slices: [train, val]
//	    data:
//	      - key: img1
//	        slices: [train]
//	        meta:
//	          reviewed: true
type Fixtures struct {
	Datasets []DatasetFixture `yaml:"datasets"`
}

// DatasetFixture is a dataset with its slices and data items.
type DatasetFixture struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Slices      []string      `yaml:"slices"`
	Data        []DataFixture `yaml:"data"`
}

// DataFixture is a data item. Slices are referenced by name.
type DataFixture struct {
	Key    string         `yaml:"key"`
	Slices []string       `yaml:"slices"`
	Meta   map[string]any `yaml:"meta"`
}

// Seeded maps fixture names to the ids the backend assigned.
type Seeded struct {
	// Datasets maps dataset name to id.
	Datasets map[string]string
	// Slices maps "dataset/slice" to id.
	Slices map[string]string
	// Data maps "dataset/key" to id.
	Data map[string]string
}

// ParseFixtures decodes YAML fixtures.
func ParseFixtures(r io.Reader) (*Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		if err == io.EOF {
			return &fx, nil
		}
		return nil, fmt.Errorf("onpremtest: decode fixtures: %w", err)
	}
	return &fx, nil
}

// LoadFixtures reads YAML fixtures from a file and seeds the backend.
func (b *Backend) LoadFixtures(path string) (*Seeded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fx, err := ParseFixtures(f)
	if err != nil {
		return nil, err
	}
	return b.Seed(fx)
}

// Seed inserts fixtures directly, bypassing GraphQL.
func (b *Backend) Seed(fx *Fixtures) (*Seeded, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := &Seeded{
		Datasets: make(map[string]string),
		Slices:   make(map[string]string),
		Data:     make(map[string]string),
	}
	for _, dsf := range fx.Datasets {
		ds, err := b.addDataset(dsf.Name, dsf.Description)
		if err != nil {
			return nil, fmt.Errorf("onpremtest: seed dataset %q: %w", dsf.Name, err)
		}
		out.Datasets[ds.Name] = ds.ID

		for _, name := range dsf.Slices {
			s, err := b.addSlice(ds.ID, name, "")
			if err != nil {
				return nil, fmt.Errorf("onpremtest: seed slice %q: %w", name, err)
			}
			out.Slices[ds.Name+"/"+name] = s.ID
		}

		for _, df := range dsf.Data {
			meta, err := types.DataMetaFromMap(df.Meta)
			if err != nil {
				return nil, fmt.Errorf("onpremtest: seed data %q: %w", df.Key, err)
			}
			d := &types.Data{
				DatasetID: ds.ID,
				Key:       df.Key,
				Type:      types.DataTypeSuperbImage,
				Meta:      meta,
			}
			for _, name := range df.Slices {
				id, ok := out.Slices[ds.Name+"/"+name]
				if !ok {
					return nil, fmt.Errorf("onpremtest: seed data %q: unknown slice %q", df.Key, name)
				}
				d.SliceIDs = append(d.SliceIDs, id)
			}
			if _, err := b.addData(d); err != nil {
				return nil, fmt.Errorf("onpremtest: seed data %q: %w", df.Key, err)
			}
			out.Data[ds.Name+"/"+df.Key] = d.ID
		}
	}
	return out, nil
}
