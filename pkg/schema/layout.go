// Package schema describes the column layout of a delimited dataset:
// which header columns carry the label, weight and name roles, and the
// ordered feature names that make up the vector dimension.
package schema

import (
	"github.com/ajitpratap0/featstream/pkg/errors"
)

// Unset marks a column role as absent.
const Unset = -1

// ColumnLayout is the result of header analysis. It is immutable once
// built: parsers and cursors share one layout for the life of a load.
type ColumnLayout struct {
	featureNames []string
	featureCols  []int // header indices of feature columns, ascending
	featureIdx   map[string]int
	numCols      int
	labelCol     int
	weightCol    int
	nameCol      int
}

// Infer builds a ColumnLayout from header column names and explicit role
// indices (Unset to leave a role out). Each explicit index must lie in
// [0, len(cols)); if no label column is given, the first column that is
// not claimed by another role becomes the label. Every remaining column
// is a feature, in header order.
func Infer(cols []string, labelCol, weightCol, nameCol int) (*ColumnLayout, error) {
	numCols := len(cols)
	if numCols == 0 {
		return nil, errors.New(errors.ErrorTypeFormat, "header has no columns")
	}

	nonFeature := make([]bool, numCols)

	if labelCol != Unset {
		if labelCol < 0 || labelCol >= numCols {
			return nil, errors.Newf(errors.ErrorTypeRange, "label column %d out of range [0, %d)", labelCol, numCols)
		}
		nonFeature[labelCol] = true
	}
	if weightCol != Unset {
		if weightCol < 0 || weightCol >= numCols {
			return nil, errors.Newf(errors.ErrorTypeRange, "weight column %d out of range [0, %d)", weightCol, numCols)
		}
		if nonFeature[weightCol] {
			return nil, errors.Newf(errors.ErrorTypeRange, "weight column %d already assigned to another role", weightCol)
		}
		nonFeature[weightCol] = true
	}
	if nameCol != Unset {
		if nameCol < 0 || nameCol >= numCols {
			return nil, errors.Newf(errors.ErrorTypeRange, "name column %d out of range [0, %d)", nameCol, numCols)
		}
		if nonFeature[nameCol] {
			return nil, errors.Newf(errors.ErrorTypeRange, "name column %d already assigned to another role", nameCol)
		}
		nonFeature[nameCol] = true
	}

	layout := &ColumnLayout{
		numCols:   numCols,
		labelCol:  labelCol,
		weightCol: weightCol,
		nameCol:   nameCol,
	}

	for i := 0; i < numCols; i++ {
		if nonFeature[i] {
			continue
		}
		if layout.labelCol == Unset {
			layout.labelCol = i
			nonFeature[i] = true
			continue
		}
		layout.featureNames = append(layout.featureNames, cols[i])
		layout.featureCols = append(layout.featureCols, i)
	}

	if layout.labelCol == Unset {
		return nil, errors.New(errors.ErrorTypeFormat, "no column available for the label")
	}

	layout.featureIdx = make(map[string]int, len(layout.featureNames))
	for i, name := range layout.featureNames {
		layout.featureIdx[name] = i
	}

	return layout, nil
}

// Dimension returns the number of feature columns
func (l *ColumnLayout) Dimension() int { return len(l.featureNames) }

// NumColumns returns the total header column count
func (l *ColumnLayout) NumColumns() int { return l.numCols }

// FeatureNames returns the ordered feature names.
// The returned slice is shared; callers must not modify it.
func (l *ColumnLayout) FeatureNames() []string { return l.featureNames }

// FeatureColumns returns the ascending header indices of feature columns.
// The returned slice is shared; callers must not modify it.
func (l *ColumnLayout) FeatureColumns() []int { return l.featureCols }

// FeatureIndex returns the vector index for a feature name.
func (l *ColumnLayout) FeatureIndex(name string) (int, bool) {
	i, ok := l.featureIdx[name]
	return i, ok
}

// LabelColumn returns the header index of the label column
func (l *ColumnLayout) LabelColumn() int { return l.labelCol }

// WeightColumn returns the header index of the weight column, or Unset
func (l *ColumnLayout) WeightColumn() int { return l.weightCol }

// NameColumn returns the header index of the name column, or Unset
func (l *ColumnLayout) NameColumn() int { return l.nameCol }

// HasWeight returns true if a weight column is assigned
func (l *ColumnLayout) HasWeight() bool { return l.weightCol != Unset }

// HasName returns true if a name column is assigned
func (l *ColumnLayout) HasName() bool { return l.nameCol != Unset }

// NonFeatureCount returns how many columns carry a role instead of a
// feature value.
func (l *ColumnLayout) NonFeatureCount() int {
	n := 1 // label is always assigned
	if l.HasWeight() {
		n++
	}
	if l.HasName() {
		n++
	}
	return n
}
