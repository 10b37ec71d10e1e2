// Package vector provides the feature vector representations produced by
// the text loader. A vector is a closed variant over dense and sparse
// layouts: every data file yields exactly one of the two, decided once at
// load time.
package vector

// Vector is a fixed-dimension float32 vector, dense or sparse.
type Vector interface {
	// Dim returns the vector dimension
	Dim() int
	// At returns the value at index i, zero for absent sparse entries
	At(i int) float32
	// ToDense converts to a dense float32 slice of length Dim
	ToDense() []float32
}

// Dense holds one value per dimension, in schema column order.
type Dense struct {
	values []float32
}

// NewDense creates a dense vector that takes ownership of values.
func NewDense(values []float32) *Dense {
	return &Dense{values: values}
}

// Dim returns the vector dimension
func (d *Dense) Dim() int { return len(d.values) }

// At returns the value at index i
func (d *Dense) At(i int) float32 { return d.values[i] }

// ToDense returns a copy of the underlying values
func (d *Dense) ToDense() []float32 {
	out := make([]float32, len(d.values))
	copy(out, d.values)
	return out
}

// Values returns the underlying slice without copying.
func (d *Dense) Values() []float32 { return d.values }

// Sparse holds (index, value) pairs with strictly ascending indices,
// all below the tagged dimension.
type Sparse struct {
	dim     int
	indices []int
	values  []float32
}

// NewSparse creates a sparse vector that takes ownership of both slices.
// Indices must be strictly ascending and less than dim; the parser
// enforces this before construction.
func NewSparse(dim int, indices []int, values []float32) *Sparse {
	return &Sparse{dim: dim, indices: indices, values: values}
}

// Dim returns the vector dimension
func (s *Sparse) Dim() int { return s.dim }

// Nnz returns the number of stored entries
func (s *Sparse) Nnz() int { return len(s.indices) }

// At returns the value at index i, or zero if i is not stored.
func (s *Sparse) At(i int) float32 {
	// indices are ascending, binary search
	lo, hi := 0, len(s.indices)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s.indices[mid] == i:
			return s.values[mid]
		case s.indices[mid] < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// ToDense expands to a dense float32 slice of length Dim
func (s *Sparse) ToDense() []float32 {
	out := make([]float32, s.dim)
	for i, idx := range s.indices {
		out[idx] = s.values[i]
	}
	return out
}

// Indices returns the stored indices without copying.
func (s *Sparse) Indices() []int { return s.indices }

// Values returns the stored values without copying.
func (s *Sparse) Values() []float32 { return s.values }
