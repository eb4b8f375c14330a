package dmidecode

import (
	"strings"

	"github.com/denismitr/dmidecode/internal/scan"
	"github.com/pkg/errors"
)

// Property - a key with either a scalar value or an ordered list of bullet items.
// Keys are not unique within a record.
type Property struct {
	Key   string   `json:"key" yaml:"key"`
	Value string   `json:"value" yaml:"value"`
	List  []string `json:"list,omitempty" yaml:"list,omitempty"`
}

// Record - one parsed Handle section
type Record struct {
	Handle     string     `json:"handle" yaml:"handle"`
	TypeID     int        `json:"type_id" yaml:"type_id"`
	TypeName   string     `json:"type_name" yaml:"type_name"`
	Size       int        `json:"size,omitempty" yaml:"size,omitempty"`
	Properties []Property `json:"properties" yaml:"properties"`
}

// Get returns the value of the first property named key
func (r *Record) Get(key string) (string, bool) {
	for i := range r.Properties {
		if r.Properties[i].Key == key {
			return r.Properties[i].Value, true
		}
	}

	return "", false
}

// ParseRecord parses the lines of a single section, header line first.
func ParseRecord(lines []string, opts ...Option) (*Record, error) {
	cfg := newConfig(opts...)
	cfg.setDefaults()

	return parseRecord(scan.Block{Line: 1, Lines: lines}, cfg)
}

func parseRecord(b scan.Block, cfg *Config) (*Record, error) {
	if len(b.Lines) == 0 {
		return nil, errors.Wrapf(ErrMalformedHeader, "section at line #%d is empty", b.Line)
	}

	h, err := parseHeader(b.Lines[0])
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Handle:   h.handle,
		TypeID:   h.typeID,
		TypeName: cfg.UnknownTypeName,
		Size:     h.size,
	}

	if len(b.Lines) > 1 {
		if name := strings.TrimSpace(b.Lines[1]); name != "" {
			rec.TypeName = name
		}
	}

	if len(b.Lines) < 3 {
		return rec, nil
	}

	body := b.Lines[2:]
	base := baseIndent(body)

	var current Property
	for _, raw := range body {
		line := scan.Dedent(raw, base)
		text := strings.TrimSpace(line)

		switch scan.ClassifyBody(line) {
		case scan.Blank:
			continue
		case scan.KeyValue:
			if current.Key != "" {
				rec.Properties = append(rec.Properties, current)
			}
			current = splitKeyValue(text, cfg.TruncateMultiColon)
		case scan.ListItem:
			current.List = append(current.List, text)
		default:
			current.Value += " " + text
		}
	}

	if current.Key != "" {
		rec.Properties = append(rec.Properties, current)
	}

	return rec, nil
}

// baseIndent - indentation of the first non-blank line, the column properties start at
func baseIndent(lines []string) int {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return scan.IndentWidth(l)
		}
	}

	return 0
}

// splitKeyValue expects a line classified as key/value
func splitKeyValue(line string, truncate bool) Property {
	idx := strings.IndexByte(line, ':')
	rest := line[idx+1:]
	if truncate {
		if j := strings.IndexByte(rest, ':'); j >= 0 {
			rest = rest[:j]
		}
	}

	return Property{
		Key:   strings.TrimSpace(line[:idx]),
		Value: strings.TrimSpace(rest),
	}
}
