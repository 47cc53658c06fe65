package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cpct_gen_params() *GenParams {
	gen := NewGenParams(6)
	copy(gen.windSpeedToCPCT_wind_speed, []float64{3.0, 5.0, 7.0, 9.0, 11.0, 13.0})
	copy(gen.windSpeedToCPCT_CP, []float64{0.20, 0.38, 0.45, 0.44, 0.40, 0.33})
	copy(gen.windSpeedToCPCT_CT, []float64{0.90, 0.85, 0.80, 0.72, 0.60, 0.45})
	return gen
}

func TestCPCTInterpolateAtCurveNodes(t *testing.T) {
	gen := cpct_gen_params()
	c := NewCPCTInterpolate(1, gen.datasize(), gen, nil)

	// zero yaw at a curve node returns the node values exactly
	unknowns := c.solve_nonlinear(&CPCTParams{
		yaw:        []float64{0.0},
		wtVelocity: []float64{7.0},
	})

	assert.InDelta(t, 0.45, unknowns.Cp_out[0], 1e-12)
	assert.InDelta(t, 0.80, unknowns.Ct_out[0], 1e-12)
}

func TestCPCTInterpolateClampsToCurveDomain(t *testing.T) {
	gen := cpct_gen_params()
	c := NewCPCTInterpolate(2, gen.datasize(), gen, nil)

	unknowns := c.solve_nonlinear(&CPCTParams{
		yaw:        []float64{0.0, 0.0},
		wtVelocity: []float64{1.0, 30.0},
	})

	// speeds outside the curve saturate at the endpoints, no extrapolation
	assert.InDelta(t, 0.20, unknowns.Cp_out[0], 1e-12)
	assert.InDelta(t, 0.90, unknowns.Ct_out[0], 1e-12)
	assert.InDelta(t, 0.33, unknowns.Cp_out[1], 1e-12)
	assert.InDelta(t, 0.45, unknowns.Ct_out[1], 1e-12)
}

func TestCPCTInterpolateYawRescaling(t *testing.T) {
	gen := cpct_gen_params()
	c := NewCPCTInterpolate(1, gen.datasize(), gen, nil)

	yaw := 20.0
	v := 8.0
	unknowns := c.solve_nonlinear(&CPCTParams{
		yaw:        []float64{yaw},
		wtVelocity: []float64{v},
	})

	cosYaw := math.Cos(yaw * math.Pi / 180.0)
	v_ax := v * math.Pow(cosYaw, gen.pP/3.0)
	ws := gen.windSpeedToCPCT_wind_speed
	wantCp := interp_linear(v_ax, ws, gen.windSpeedToCPCT_CP) * math.Pow(cosYaw, gen.pP)
	wantCt := interp_linear(v_ax, ws, gen.windSpeedToCPCT_CT) * cosYaw * cosYaw

	assert.InDelta(t, wantCp, unknowns.Cp_out[0], 1e-12)
	assert.InDelta(t, wantCt, unknowns.Ct_out[0], 1e-12)
}

func TestCPCTInterpolateJacobian(t *testing.T) {
	gen := cpct_gen_params()
	c := NewCPCTInterpolate(1, gen.datasize(), gen, nil)

	params := &CPCTParams{yaw: []float64{10.0}, wtVelocity: []float64{7.3}}
	J := c.linearize(params)
	assert_complete_jacobian(t, J, c.output_names(), c.param_names())

	// cross-check the differenced entries against a coarser independent step
	const h = 1e-4
	cpHigh, ctHigh := c.evaluate_at(10.0, 7.3+h)
	cpLow, ctLow := c.evaluate_at(10.0, 7.3-h)
	assert.InDelta(t, (cpHigh-cpLow)/(2*h), J.at("Cp_out", "wtVelocity").At(0, 0), 1e-6)
	assert.InDelta(t, (ctHigh-ctLow)/(2*h), J.at("Ct_out", "wtVelocity").At(0, 0), 1e-6)

	cpHighY, ctHighY := c.evaluate_at(10.0+h, 7.3)
	cpLowY, ctLowY := c.evaluate_at(10.0-h, 7.3)
	assert.InDelta(t, (cpHighY-cpLowY)/(2*h), J.at("Cp_out", "yaw").At(0, 0), 1e-6)
	assert.InDelta(t, (ctHighY-ctLowY)/(2*h), J.at("Ct_out", "yaw").At(0, 0), 1e-6)
}

func TestCPCTInterpolateSmoothMatchesFiniteDifference(t *testing.T) {
	gen := cpct_gen_params()
	c := NewCPCTInterpolateSmooth(1, gen.datasize(), gen, nil)

	params := &CPCTParams{yaw: []float64{10.0}, wtVelocity: []float64{7.3}}
	c.solve_nonlinear(params)
	J := c.linearize()
	assert_complete_jacobian(t, J, c.output_names(), c.param_names())

	const h = 1e-5
	forward := func(yaw, v float64) (float64, float64) {
		probe := NewCPCTInterpolateSmooth(1, gen.datasize(), gen, nil)
		u := probe.solve_nonlinear(&CPCTParams{yaw: []float64{yaw}, wtVelocity: []float64{v}})
		return u.Cp_out[0], u.Ct_out[0]
	}

	cpHigh, ctHigh := forward(10.0, 7.3+h)
	cpLow, ctLow := forward(10.0, 7.3-h)
	assert.InDelta(t, (cpHigh-cpLow)/(2*h), J.at("Cp_out", "wtVelocity").At(0, 0), 1e-6)
	assert.InDelta(t, (ctHigh-ctLow)/(2*h), J.at("Ct_out", "wtVelocity").At(0, 0), 1e-6)

	cpHighY, ctHighY := forward(10.0+h, 7.3)
	cpLowY, ctLowY := forward(10.0-h, 7.3)
	assert.InDelta(t, (cpHighY-cpLowY)/(2*h), J.at("Cp_out", "yaw").At(0, 0), 1e-6)
	assert.InDelta(t, (ctHighY-ctLowY)/(2*h), J.at("Ct_out", "yaw").At(0, 0), 1e-6)
}

func TestCPCTInterpolateSmoothZeroYawKeepsCurveValue(t *testing.T) {
	gen := cpct_gen_params()
	c := NewCPCTInterpolateSmooth(1, gen.datasize(), gen, nil)

	// the Akima spline interpolates the nodes exactly
	unknowns := c.solve_nonlinear(&CPCTParams{
		yaw:        []float64{0.0},
		wtVelocity: []float64{9.0},
	})

	assert.InDelta(t, 0.44, unknowns.Cp_out[0], 1e-12)
	assert.InDelta(t, 0.72, unknowns.Ct_out[0], 1e-12)
}
