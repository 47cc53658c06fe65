package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Every component must emit exactly one block per declared (output, input)
pair, explicit zero blocks included, so that chain-rule composition by the
driver is always well-defined.
*/
func assert_complete_jacobian(t *testing.T, J Jacobian, outputs []string, inputs []string) {
	t.Helper()

	require.Len(t, J, len(outputs)*len(inputs))
	for _, out := range outputs {
		for _, in := range inputs {
			block, ok := J[JacobianKey{out, in}]
			assert.True(t, ok, "missing Jacobian block (%s, %s)", out, in)
			assert.NotNil(t, block)
		}
	}
}

func TestJacobianAtPanicsOnMissingBlock(t *testing.T) {
	J := Jacobian{}
	J.set("a", "b", zeros(1, 1))

	assert.NotNil(t, J.at("a", "b"))
	assert.Panics(t, func() { J.at("a", "c") })
}

func TestRowVectorCopiesItsInput(t *testing.T) {
	values := []float64{1.0, 2.0, 3.0}
	r := row_vector(values)

	values[0] = -5.0

	rows, cols := r.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 1.0, r.At(0, 0))
}

func TestDiagAndEyeScaled(t *testing.T) {
	d := diag([]float64{2.0, 3.0})
	assert.Equal(t, 2.0, d.At(0, 0))
	assert.Equal(t, 3.0, d.At(1, 1))
	assert.Equal(t, 0.0, d.At(0, 1))

	e := eye_scaled(3, 0.5)
	assert.Equal(t, 0.5, e.At(2, 2))
	assert.Equal(t, 0.0, e.At(0, 2))
}
