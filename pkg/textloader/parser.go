package textloader

import (
	"strconv"
	"strings"

	"github.com/ajitpratap0/featstream/pkg/errors"
	"github.com/ajitpratap0/featstream/pkg/schema"
	"github.com/ajitpratap0/featstream/pkg/vector"
)

// featureParser extracts the feature vector from a split data row.
// Exactly two implementations exist, dense and sparse, chosen once at
// load time from the first data row.
type featureParser interface {
	ParseFeatures(columns []string) (vector.Vector, error)
}

// ExampleParser turns one raw data line into an Example. It holds only
// immutable state (layout, separator, label map) and is safe to call
// any number of times; every call allocates a fresh Example.
type ExampleParser struct {
	layout    *schema.ColumnLayout
	separator string
	labelMap  LabelMap
	features  featureParser
}

// Parse splits line on the separator and resolves label, weight, name
// and the feature vector. Any malformed field rejects the whole line
// with a format error; there are no partial results.
func (p *ExampleParser) Parse(line string) (*Example, error) {
	columns := strings.Split(line, p.separator)

	label, err := p.parseLabel(columns)
	if err != nil {
		return nil, err
	}

	weight := float32(1)
	if col := p.layout.WeightColumn(); col != schema.Unset {
		text, err := p.column(columns, col, "weight")
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "can't parse weight").WithDetail("value", text)
		}
		weight = float32(w)
	}

	var name string
	if col := p.layout.NameColumn(); col != schema.Unset {
		if name, err = p.column(columns, col, "name"); err != nil {
			return nil, err
		}
	}

	features, err := p.features.ParseFeatures(columns)
	if err != nil {
		return nil, err
	}

	return &Example{
		Features: features,
		Label:    label,
		Weight:   weight,
		Name:     name,
	}, nil
}

func (p *ExampleParser) parseLabel(columns []string) (float32, error) {
	text, err := p.column(columns, p.layout.LabelColumn(), "label")
	if err != nil {
		return 0, err
	}
	if len(p.labelMap) > 0 {
		return p.labelMap.Resolve(text)
	}
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeFormat, "can't parse label").WithDetail("value", text)
	}
	return float32(v), nil
}

func (p *ExampleParser) column(columns []string, col int, role string) (string, error) {
	if col >= len(columns) {
		return "", errors.Newf(errors.ErrorTypeFormat, "row has %d columns, %s column is %d", len(columns), role, col)
	}
	return columns[col], nil
}
