package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindFarmAEPNone(t *testing.T) {
	c := NewWindFarmAEP(2, AEPMethodNone, nil)

	AEP := c.solve_nonlinear(&WindFarmAEPParams{
		dirPowers:       []float64{100.0, 200.0},
		windFrequencies: []float64{0.5, 0.5},
	})

	// 8760 * (100*0.5 + 200*0.5)
	assert.InDelta(t, 1314000.0, AEP, 1e-9)
}

func TestWindFarmAEPLog(t *testing.T) {
	c := NewWindFarmAEP(2, AEPMethodLog, nil)

	AEP := c.solve_nonlinear(&WindFarmAEPParams{
		dirPowers:       []float64{100.0, 200.0},
		windFrequencies: []float64{0.5, 0.5},
	})

	assert.InDelta(t, math.Log(1314000.0), AEP, 1e-12)
}

func TestWindFarmAEPInverse(t *testing.T) {
	c := NewWindFarmAEP(2, AEPMethodInverse, nil)

	AEP := c.solve_nonlinear(&WindFarmAEPParams{
		dirPowers:       []float64{100.0, 200.0},
		windFrequencies: []float64{0.5, 0.5},
	})

	assert.InDelta(t, 1.0/1314000.0, AEP, 1e-18)
}

func TestWindFarmAEPInvalidMethod(t *testing.T) {
	assert.Panics(t, func() { aep_method_from_string("geometric") })
	assert.Panics(t, func() { NewWindFarmAEP(2, AEPMethod("geometric"), nil) })
}

func TestWindFarmAEPJacobian(t *testing.T) {
	params := &WindFarmAEPParams{
		dirPowers:       []float64{100.0, 200.0},
		windFrequencies: []float64{0.3, 0.7},
	}

	none := NewWindFarmAEP(2, AEPMethodNone, nil)
	J := none.linearize(params)
	assert_complete_jacobian(t, J, none.output_names(), none.param_names())
	assert.InDelta(t, 8760.0*0.3, J.at("AEP", "dirPowers").At(0, 0), 1e-9)
	assert.InDelta(t, 8760.0*0.7, J.at("AEP", "dirPowers").At(0, 1), 1e-9)

	// the log branch carries the literal dirPowers^-1 term, not the full chain rule
	logc := NewWindFarmAEP(2, AEPMethodLog, nil)
	Jlog := logc.linearize(params)
	assert.InDelta(t, 1.0/100.0, Jlog.at("AEP", "dirPowers").At(0, 0), 1e-12)
	assert.InDelta(t, 1.0/200.0, Jlog.at("AEP", "dirPowers").At(0, 1), 1e-12)

	inv := NewWindFarmAEP(2, AEPMethodInverse, nil)
	Jinv := inv.linearize(params)
	assert.InDelta(t, -1.0/(8760.0*0.3*100.0*100.0), Jinv.at("AEP", "dirPowers").At(0, 0), 1e-15)
	assert.InDelta(t, -1.0/(8760.0*0.7*200.0*200.0), Jinv.at("AEP", "dirPowers").At(0, 1), 1e-15)
}

func TestWindFarmAEPCountsCalls(t *testing.T) {
	counter := &CallCounter{}
	c := NewWindFarmAEP(1, AEPMethodNone, counter)

	params := &WindFarmAEPParams{dirPowers: []float64{10.0}, windFrequencies: []float64{1.0}}
	c.solve_nonlinear(params)
	c.solve_nonlinear(params)
	c.linearize(params)

	assert.Equal(t, 2, counter.obj_calls())
	assert.Equal(t, 1, counter.sens_calls())
}
