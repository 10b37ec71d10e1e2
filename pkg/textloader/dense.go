package textloader

import (
	"strconv"

	"github.com/ajitpratap0/featstream/pkg/errors"
	"github.com/ajitpratap0/featstream/pkg/schema"
	"github.com/ajitpratap0/featstream/pkg/vector"
)

// denseParser reads one feature value per schema column, at positions
// precomputed from the layout once at construction.
type denseParser struct {
	parseIndices []int // header indices of feature columns, ascending
	dimension    int
}

func newDenseParser(layout *schema.ColumnLayout) *denseParser {
	return &denseParser{
		parseIndices: layout.FeatureColumns(),
		dimension:    layout.Dimension(),
	}
}

func (d *denseParser) ParseFeatures(columns []string) (vector.Vector, error) {
	if d.dimension > 0 && len(columns) <= d.parseIndices[d.dimension-1] {
		return nil, errors.Newf(errors.ErrorTypeFormat, "wrong number of columns: got %d, need at least %d",
			len(columns), d.parseIndices[d.dimension-1]+1)
	}

	features := make([]float32, d.dimension)
	for i := 0; i < d.dimension; i++ {
		text := columns[d.parseIndices[i]]
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "can't parse feature value").WithDetail("value", text)
		}
		features[i] = float32(v)
	}
	return vector.NewDense(features), nil
}
