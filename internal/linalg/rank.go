// Package linalg holds the small amount of linear algebra the model needs:
// the rank of a 0/1 structure matrix.
package linalg

import "math"

// pivotTolerance treats entries smaller than this as zero during elimination.
const pivotTolerance = 1e-9

// Rank returns the rank of a rectangular 0/1 matrix, computed by Gaussian
// elimination with partial pivoting. The input is not modified.
func Rank(rows [][]uint8) int {
	if len(rows) == 0 {
		return 0
	}
	cols := len(rows[0])
	m := make([][]float64, len(rows))
	for i, row := range rows {
		m[i] = make([]float64, cols)
		for j, v := range row {
			m[i][j] = float64(v)
		}
	}

	rank := 0
	for col := 0; col < cols && rank < len(m); col++ {
		pivot := rank
		for r := rank + 1; r < len(m); r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < pivotTolerance {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]

		for r := rank + 1; r < len(m); r++ {
			f := m[r][col] / m[rank][col]
			if f == 0 {
				continue
			}
			for c := col; c < cols; c++ {
				m[r][c] -= f * m[rank][c]
			}
		}
		rank++
	}
	return rank
}
