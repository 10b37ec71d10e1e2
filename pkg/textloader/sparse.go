package textloader

import (
	"strconv"
	"strings"

	"github.com/ajitpratap0/featstream/pkg/errors"
	"github.com/ajitpratap0/featstream/pkg/schema"
	"github.com/ajitpratap0/featstream/pkg/vector"
)

// sparseParser reads trailing index:value tokens after a fixed leading
// block of non-feature columns.
type sparseParser struct {
	dimension           int
	featureColumnOffset int // feature tokens start here
}

// newSparseParser fails if any non-feature column sits past the leading
// block; sparse rows have no positional slots for roles in the middle of
// the feature tokens.
func newSparseParser(layout *schema.ColumnLayout) (*sparseParser, error) {
	offset := layout.NonFeatureCount()
	if layout.LabelColumn() >= offset ||
		layout.WeightColumn() >= offset ||
		layout.NameColumn() >= offset {
		return nil, errors.New(errors.ErrorTypeRange, "sparse instances require that all non-feature columns are in the front")
	}
	return &sparseParser{
		dimension:           layout.Dimension(),
		featureColumnOffset: offset,
	}, nil
}

func (s *sparseParser) ParseFeatures(columns []string) (vector.Vector, error) {
	count := len(columns) - s.featureColumnOffset
	if count <= 0 || count > s.dimension {
		return nil, errors.Newf(errors.ErrorTypeFormat, "number of columns out of range: %d feature tokens for dimension %d",
			count, s.dimension)
	}

	indices := make([]int, count)
	values := make([]float32, count)
	lastIndex := -1
	for i := 0; i < count; i++ {
		token := columns[s.featureColumnOffset+i]

		idxText, valText, found := strings.Cut(token, ":")
		if !found {
			return nil, errors.Newf(errors.ErrorTypeFormat, "can't parse %q", token)
		}
		index, err := strconv.Atoi(idxText)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "can't parse "+strconv.Quote(token))
		}
		if index <= lastIndex || index >= s.dimension {
			return nil, errors.Newf(errors.ErrorTypeFormat, "indices are not ordered at %q", token)
		}
		value, err := strconv.ParseFloat(valText, 32)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFormat, "can't parse "+strconv.Quote(token))
		}

		indices[i] = index
		values[i] = float32(value)
		lastIndex = index
	}

	return vector.NewSparse(s.dimension, indices, values), nil
}
