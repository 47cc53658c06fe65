package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// JacobianKey identifies one sensitivity block by output and input signal name.
type JacobianKey struct {
	Output string
	Input  string
}

/*
Jacobian of one component: a complete mapping from every declared
(output, input) pair to its sensitivity block, explicit zero blocks included.
Shapes are [len(output) x len(input)] so blocks compose by chain rule.
*/
type Jacobian map[JacobianKey]*mat.Dense

func (J Jacobian) set(output string, input string, block *mat.Dense) {
	J[JacobianKey{output, input}] = block
}

func (J Jacobian) at(output string, input string) *mat.Dense {
	block, ok := J[JacobianKey{output, input}]
	if !ok {
		panic(fmt.Sprintf("Jacobian block (%s, %s) is not defined.", output, input))
	}
	return block
}

// 対角行列 s*I, [n x n]
func eye_scaled(n int, s float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, s)
	}
	return m
}

// 対角行列, [n x n]
func diag(values []float64) *mat.Dense {
	m := mat.NewDense(len(values), len(values), nil)
	for i, v := range values {
		m.Set(i, i, v)
	}
	return m
}

// 零行列, [r x c]
func zeros(r, c int) *mat.Dense {
	return mat.NewDense(r, c, nil)
}

// 行ベクトル, [1 x n]
func row_vector(values []float64) *mat.Dense {
	data := make([]float64, len(values))
	copy(data, values)
	return mat.NewDense(1, len(values), data)
}
