// SPDX-License-Identifier: MIT

package elementwise

import "gonum.org/v1/gonum/mat"

// GonumDense adapts *mat.Dense. gonum rejects zero-sized matrices, so Make
// with a zero extent returns an empty matrix whose Size is (0, 0).
type GonumDense struct{}

// Size returns the matrix dimensions; nil or empty matrices report (0, 0).
func (GonumDense) Size(d *mat.Dense) (rows, cols int) {
	if d == nil || d.IsEmpty() {
		return 0, 0
	}
	return d.Dims()
}

// Get returns the element at flat row-major index i.
func (GonumDense) Get(d *mat.Dense, i int) float64 {
	_, c := d.Dims()
	return d.At(i/c, i%c)
}

// Set stores v at flat row-major index i.
func (GonumDense) Set(d *mat.Dense, i int, v float64) {
	_, c := d.Dims()
	d.Set(i/c, i%c, v)
}

// Make returns a zero rows×cols matrix.
func (GonumDense) Make(rows, cols int) *mat.Dense {
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(rows, cols, nil)
}

// Values returns the backing slice when rows are packed (stride == cols),
// nil otherwise (for example a strided view from Slice).
func (GonumDense) Values(d *mat.Dense) []float64 {
	if d == nil || d.IsEmpty() {
		return nil
	}
	raw := d.RawMatrix()
	if raw.Stride != raw.Cols {
		return nil
	}
	return raw.Data[:raw.Rows*raw.Cols]
}

// GonumVec adapts *mat.VecDense as an n×1 container. Make(rows, cols)
// returns a vector of rows*cols elements.
type GonumVec struct{}

// Size returns (Len, 1), or (0, 0) for nil or empty vectors.
func (GonumVec) Size(v *mat.VecDense) (rows, cols int) {
	if v == nil || v.IsEmpty() {
		return 0, 0
	}
	return v.Len(), 1
}

// Get returns element i.
func (GonumVec) Get(v *mat.VecDense, i int) float64 { return v.AtVec(i) }

// Set stores element i.
func (GonumVec) Set(v *mat.VecDense, i int, x float64) { v.SetVec(i, x) }

// Make returns a zero vector of rows*cols elements.
func (GonumVec) Make(rows, cols int) *mat.VecDense {
	if rows*cols == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(rows*cols, nil)
}

// Values returns the backing slice for unit-increment vectors, nil otherwise.
func (GonumVec) Values(v *mat.VecDense) []float64 {
	if v == nil || v.IsEmpty() {
		return nil
	}
	raw := v.RawVector()
	if raw.Inc != 1 {
		return nil
	}
	return raw.Data[:raw.N]
}
