package mathutil

import (
	"errors"
	"fmt"
)

// ErrDimension is returned when matrix/vector shapes do not agree.
var ErrDimension = errors.New("mathutil: dimension mismatch")

// Matrix is a dense N×M matrix stored row-major.
// Shape is fixed at construction; the stacking mode is explicit in the
// constructor so square inputs are never ambiguous.
type Matrix[T Number] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a zero rows×cols matrix.
func NewMatrix[T Number](rows, cols int) Matrix[T] {
	return Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// NewMatrixFromRows stacks the given vectors as rows. All rows must have the
// same length.
func NewMatrixFromRows[T Number](rows ...[]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, fmt.Errorf("%w: no rows", ErrDimension)
	}
	m := NewMatrix[T](len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.cols {
			return Matrix[T]{}, fmt.Errorf("%w: row %d has %d elements, want %d", ErrDimension, r, len(row), m.cols)
		}
		copy(m.data[r*m.cols:], row)
	}
	return m, nil
}

// NewMatrixFromCols stacks the given vectors as columns.
func NewMatrixFromCols[T Number](cols ...[]T) (Matrix[T], error) {
	if len(cols) == 0 {
		return Matrix[T]{}, fmt.Errorf("%w: no columns", ErrDimension)
	}
	m := NewMatrix[T](len(cols[0]), len(cols))
	for c, col := range cols {
		if len(col) != m.rows {
			return Matrix[T]{}, fmt.Errorf("%w: column %d has %d elements, want %d", ErrDimension, c, len(col), m.rows)
		}
		for r, v := range col {
			m.data[r*m.cols+c] = v
		}
	}
	return m, nil
}

func (m Matrix[T]) Rows() int { return m.rows }
func (m Matrix[T]) Cols() int { return m.cols }

func (m Matrix[T]) At(r, c int) T {
	return m.data[r*m.cols+c]
}

func (m Matrix[T]) Set(r, c int, v T) {
	m.data[r*m.cols+c] = v
}

// MulVec returns m × v for a column vector v of length Cols().
func (m Matrix[T]) MulVec(v []T) ([]T, error) {
	if len(v) != m.cols {
		return nil, fmt.Errorf("%w: %dx%d matrix times %d-vector", ErrDimension, m.rows, m.cols, len(v))
	}
	out := make([]T, m.rows)
	for r := 0; r < m.rows; r++ {
		var s T
		for c := 0; c < m.cols; c++ {
			s += m.data[r*m.cols+c] * v[c]
		}
		out[r] = s
	}
	return out, nil
}

// Mul returns m × b.
func (m Matrix[T]) Mul(b Matrix[T]) (Matrix[T], error) {
	if m.cols != b.rows {
		return Matrix[T]{}, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimension, m.rows, m.cols, b.rows, b.cols)
	}
	out := NewMatrix[T](m.rows, b.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < b.cols; c++ {
			var s T
			for k := 0; k < m.cols; k++ {
				s += m.data[r*m.cols+k] * b.data[k*b.cols+c]
			}
			out.data[r*out.cols+c] = s
		}
	}
	return out, nil
}

func (m Matrix[T]) Transpose() Matrix[T] {
	out := NewMatrix[T](m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*out.cols+r] = m.data[r*m.cols+c]
		}
	}
	return out
}
