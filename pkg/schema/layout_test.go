package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/featstream/pkg/errors"
)

func TestInferDefaultLabel(t *testing.T) {
	layout, err := Infer([]string{"label", "f1", "f2"}, Unset, Unset, Unset)
	require.NoError(t, err)

	assert.Equal(t, 0, layout.LabelColumn())
	assert.Equal(t, 2, layout.Dimension())
	assert.Equal(t, 3, layout.NumColumns())
	assert.Equal(t, []string{"f1", "f2"}, layout.FeatureNames())
	assert.Equal(t, []int{1, 2}, layout.FeatureColumns())
	assert.False(t, layout.HasWeight())
	assert.False(t, layout.HasName())
	assert.Equal(t, 1, layout.NonFeatureCount())
}

func TestInferFirstUnclaimedBecomesLabel(t *testing.T) {
	// name takes column 0, so the label falls through to column 1
	layout, err := Infer([]string{"id", "target", "f0", "f1"}, Unset, Unset, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, layout.LabelColumn())
	assert.Equal(t, []string{"f0", "f1"}, layout.FeatureNames())
	assert.Equal(t, 2, layout.NonFeatureCount())
}

func TestInferExplicitRoles(t *testing.T) {
	layout, err := Infer([]string{"f0", "w", "y", "id", "f1"}, 2, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, layout.LabelColumn())
	assert.Equal(t, 1, layout.WeightColumn())
	assert.Equal(t, 3, layout.NameColumn())
	assert.Equal(t, []string{"f0", "f1"}, layout.FeatureNames())
	assert.Equal(t, []int{0, 4}, layout.FeatureColumns())
	assert.Equal(t, 3, layout.NonFeatureCount())
}

func TestInferRangeErrors(t *testing.T) {
	cols := []string{"label", "f1", "f2"}

	tests := []struct {
		name                   string
		label, weight, nameIdx int
	}{
		{"label out of range", 3, Unset, Unset},
		{"negative label", -2, Unset, Unset},
		{"weight out of range", Unset, 5, Unset},
		{"name out of range", Unset, Unset, 7},
		{"weight collides with label", 1, 1, Unset},
		{"name collides with weight", Unset, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Infer(cols, tt.label, tt.weight, tt.nameIdx)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeRange), "got %v", err)
		})
	}
}

func TestInferEmptyHeader(t *testing.T) {
	_, err := Infer(nil, Unset, Unset, Unset)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFormat))
}

func TestInferAllColumnsClaimed(t *testing.T) {
	// every column carries a role, nothing left for the label
	_, err := Infer([]string{"w", "id"}, Unset, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFormat))
}

func TestFeatureIndex(t *testing.T) {
	layout, err := Infer([]string{"label", "alpha", "beta"}, Unset, Unset, Unset)
	require.NoError(t, err)

	i, ok := layout.FeatureIndex("beta")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = layout.FeatureIndex("label")
	assert.False(t, ok)
}
