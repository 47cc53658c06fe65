package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustCtCpYawZeroYawPassesThrough(t *testing.T) {
	for _, corrected := range []bool{false, true} {
		gen := NewGenParams(0)
		gen.CTcorrected = corrected
		gen.CPcorrected = corrected

		a := NewAdjustCtCpYaw(2, gen, nil)
		params := &AdjustCtCpYawParams{
			Ct_in: []float64{0.8, 0.7},
			Cp_in: []float64{0.45, 0.42},
			yaw:   []float64{0.0, 0.0},
		}
		unknowns := a.solve_nonlinear(params)

		// cos(0) = 1 exactly, so the outputs equal the inputs bit-for-bit
		assert.Equal(t, params.Ct_in, unknowns.Ct_out)
		assert.Equal(t, params.Cp_in, unknowns.Cp_out)
	}
}

func TestAdjustCtCpYawCorrection(t *testing.T) {
	gen := NewGenParams(0)

	a := NewAdjustCtCpYaw(1, gen, nil)
	unknowns := a.solve_nonlinear(&AdjustCtCpYawParams{
		Ct_in: []float64{0.8},
		Cp_in: []float64{0.45},
		yaw:   []float64{20.0},
	})

	yawRad := 20.0 * math.Pi / 180.0
	assert.InDelta(t, 0.8*math.Cos(yawRad)*math.Cos(yawRad), unknowns.Ct_out[0], 1e-12)
	assert.InDelta(t, 0.45*math.Pow(math.Cos(yawRad), gen.pP), unknowns.Cp_out[0], 1e-12)
}

func TestAdjustCtCpYawPassThroughWhenCorrected(t *testing.T) {
	gen := NewGenParams(0)
	gen.CTcorrected = true
	gen.CPcorrected = true

	a := NewAdjustCtCpYaw(1, gen, nil)
	params := &AdjustCtCpYawParams{
		Ct_in: []float64{0.8},
		Cp_in: []float64{0.45},
		yaw:   []float64{25.0},
	}
	unknowns := a.solve_nonlinear(params)

	assert.Equal(t, params.Ct_in[0], unknowns.Ct_out[0])
	assert.Equal(t, params.Cp_in[0], unknowns.Cp_out[0])

	J := a.linearize(params)
	assert_complete_jacobian(t, J, a.output_names(), a.param_names())
	assert.Equal(t, 1.0, J.at("Ct_out", "Ct_in").At(0, 0))
	assert.Equal(t, 0.0, J.at("Ct_out", "yaw").At(0, 0))
	assert.Equal(t, 1.0, J.at("Cp_out", "Cp_in").At(0, 0))
	assert.Equal(t, 0.0, J.at("Cp_out", "yaw").At(0, 0))
}

func TestAdjustCtCpYawJacobianMatchesFiniteDifference(t *testing.T) {
	gen := NewGenParams(0)
	a := NewAdjustCtCpYaw(1, gen, nil)

	params := &AdjustCtCpYawParams{
		Ct_in: []float64{0.8},
		Cp_in: []float64{0.45},
		yaw:   []float64{15.0},
	}
	J := a.linearize(params)
	assert_complete_jacobian(t, J, a.output_names(), a.param_names())

	const h = 1e-6
	perturb := func(yaw float64) (float64, float64) {
		u := a.solve_nonlinear(&AdjustCtCpYawParams{
			Ct_in: params.Ct_in,
			Cp_in: params.Cp_in,
			yaw:   []float64{yaw},
		})
		return u.Ct_out[0], u.Cp_out[0]
	}
	ctHigh, cpHigh := perturb(15.0 + h)
	ctLow, cpLow := perturb(15.0 - h)

	assert.InDelta(t, (ctHigh-ctLow)/(2*h), J.at("Ct_out", "yaw").At(0, 0), 1e-7)
	assert.InDelta(t, (cpHigh-cpLow)/(2*h), J.at("Cp_out", "yaw").At(0, 0), 1e-7)

	// cross-coefficient blocks are exactly zero
	assert.Equal(t, 0.0, J.at("Ct_out", "Cp_in").At(0, 0))
	assert.Equal(t, 0.0, J.at("Cp_out", "Ct_in").At(0, 0))
}
