package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDense(t *testing.T) {
	d := NewDense([]float32{0.5, 0.25, -1})

	assert.Equal(t, 3, d.Dim())
	assert.Equal(t, float32(0.25), d.At(1))
	assert.Equal(t, []float32{0.5, 0.25, -1}, d.ToDense())

	// ToDense copies; mutating the copy leaves the vector intact
	cp := d.ToDense()
	cp[0] = 99
	assert.Equal(t, float32(0.5), d.At(0))
}

func TestSparse(t *testing.T) {
	s := NewSparse(5, []int{0, 2, 4}, []float32{1, 3, 5})

	assert.Equal(t, 5, s.Dim())
	assert.Equal(t, 3, s.Nnz())
	assert.Equal(t, float32(1), s.At(0))
	assert.Equal(t, float32(0), s.At(1))
	assert.Equal(t, float32(3), s.At(2))
	assert.Equal(t, float32(0), s.At(3))
	assert.Equal(t, float32(5), s.At(4))
	assert.Equal(t, []float32{1, 0, 3, 0, 5}, s.ToDense())
}

func TestSparseEmpty(t *testing.T) {
	s := NewSparse(4, nil, nil)

	assert.Equal(t, 0, s.Nnz())
	assert.Equal(t, float32(0), s.At(2))
	assert.Equal(t, []float32{0, 0, 0, 0}, s.ToDense())
}
