package dmidecode

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

type typeDoc struct {
	ID      int      `json:"id" yaml:"id"`
	Records []Record `json:"records" yaml:"records"`
}

// dm - data model of the exported store
type dm struct {
	Preamble []string  `json:"preamble,omitempty" yaml:"preamble,omitempty"`
	Types    []typeDoc `json:"types" yaml:"types"`
}

func (s *Store) model() dm {
	m := dm{Preamble: s.preamble, Types: make([]typeDoc, 0, s.groups.Len())}
	s.ascend(func(g *group) bool {
		td := typeDoc{ID: g.typeID, Records: make([]Record, len(g.records))}
		for i, rec := range g.records {
			td.Records[i] = *rec
		}
		m.Types = append(m.Types, td)
		return true
	})

	return m
}

// JSON exports the store as {"types":[{"id":0,"records":[...]}]}
func (s *Store) JSON() ([]byte, error) {
	b, err := json.Marshal(s.model())
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal store to json")
	}

	return b, nil
}

// YAML exports the same model as JSON
func (s *Store) YAML() ([]byte, error) {
	b, err := yaml.Marshal(s.model())
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal store to yaml")
	}

	return b, nil
}

// Document wraps the JSON export for path queries, e.g.
//
//	types.#(id==0).records.0.properties.#(key=="Vendor").value
func (s *Store) Document() (*Document, error) {
	b, err := s.JSON()
	if err != nil {
		return nil, err
	}

	return &Document{b: b}, nil
}

type Document struct {
	b []byte
}

func (d *Document) Raw() []byte {
	return d.b
}

func (d *Document) String(path string) (string, error) {
	raw := gjson.GetBytes(d.b, path)
	if !raw.Exists() {
		return "", errors.Wrapf(ErrJsonPathInvalid, "path %s", path)
	}
	return raw.String(), nil
}

func (d *Document) StringOrDefault(path, def string) string {
	if v, err := d.String(path); err != nil {
		return def
	} else {
		return v
	}
}

func (d *Document) Int(path string) (int, error) {
	get := gjson.GetBytes(d.b, path)
	if !get.Exists() {
		return 0, errors.Wrapf(ErrJsonPathInvalid, "path %s", path)
	}

	return int(get.Int()), nil
}

func (d *Document) IntOrDefault(path string, def int) int {
	if v, err := d.Int(path); err != nil {
		return def
	} else {
		return v
	}
}

// Strings returns every string matched by path, e.g. a list property
func (d *Document) Strings(path string) ([]string, error) {
	get := gjson.GetBytes(d.b, path)
	if !get.Exists() {
		return nil, errors.Wrapf(ErrJsonPathInvalid, "path %s", path)
	}

	var result []string
	for _, v := range get.Array() {
		result = append(result, v.String())
	}

	return result, nil
}
