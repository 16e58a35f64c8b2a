package matrix

import "fmt"

// Add returns m + other, elementwise. Panics on shape mismatch.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.checkSameShape("Add", other)
	out := zeros(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v + other.data[i]
	}
	return out
}

// Sub returns m - other, elementwise. Panics on shape mismatch.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	m.checkSameShape("Sub", other)
	out := zeros(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v - other.data[i]
	}
	return out
}

// Hadamard returns the elementwise (Hadamard) product of m and other.
// Panics on shape mismatch.
func (m *Matrix) Hadamard(other *Matrix) *Matrix {
	m.checkSameShape("Hadamard", other)
	out := zeros(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v * other.data[i]
	}
	return out
}

// Scale returns c * m.
func (m *Matrix) Scale(c float64) *Matrix {
	out := zeros(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = c * v
	}
	return out
}

// Apply returns a matrix with f applied to every entry.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := zeros(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// MatMul returns the standard row-by-column matrix product m × other.
//
// m must be (r×k) and other (k×c); the result is (r×c). Panics if the
// inner dimensions disagree.
func (m *Matrix) MatMul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("matrix.MatMul: inner dimensions disagree: %dx%d × %dx%d",
			m.rows, m.cols, other.rows, other.cols))
	}
	out := zeros(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			row := other.data[k*other.cols : (k+1)*other.cols]
			outRow := out.data[i*other.cols : (i+1)*other.cols]
			for j, b := range row {
				outRow[j] += a * b
			}
		}
	}
	return out
}

// Transpose returns a fresh transposed copy of m.
func (m *Matrix) Transpose() *Matrix {
	out := zeros(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

func (m *Matrix) checkSameShape(op string, other *Matrix) {
	if !m.SameShape(other) {
		panic(fmt.Sprintf("matrix.%s: shape mismatch: %dx%d vs %dx%d",
			op, m.rows, m.cols, other.rows, other.cols))
	}
}
