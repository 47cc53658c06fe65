package main

import (
	"math"
)

/*
WindFrame calculates the locations of each turbine in the wind direction
reference frame.

The meteorological wind direction (degrees clockwise from north, "direction
from") is first converted to a standard bearing (counterclockwise from east),
then all positions are rotated by the negative of that bearing so that x
points downwind and y crosswind.
*/
type WindFrame struct {
	nTurbines int
	nSamples  int
	counter   *CallCounter
}

func NewWindFrame(nTurbines int, nSamples int, counter *CallCounter) *WindFrame {
	return &WindFrame{
		nTurbines: nTurbines,
		nSamples:  nSamples,
		counter:   counter,
	}
}

type WindFrameParams struct {
	wind_direction float64   // 気象風向, deg (cw from north, direction from)
	turbineX       []float64 // x positions of turbines in the original reference frame, m
	turbineY       []float64 // y positions of turbines in the original reference frame, m
	wsPositionX    []float64 // x positions of flow sample points, m (only read when nSamples > 0)
	wsPositionY    []float64 // y positions of flow sample points, m (only read when nSamples > 0)
}

type WindFrameUnknowns struct {
	turbineXw    []float64 // downwind coordinates of turbines, m
	turbineYw    []float64 // crosswind coordinates of turbines, m
	wsPositionXw []float64 // downwind coordinates of sample points, m
	wsPositionYw []float64 // crosswind coordinates of sample points, m
}

/*
Convert a meteorological wind direction to the inflow bearing in radians.

Args:

	wind_direction: wind direction, deg, cw from north, "direction from"

Returns:

	inflow wind direction in the standard polar system (ccw from east), rad
*/
func wind_direction_to_radians(wind_direction float64) float64 {
	windDirectionDeg := 270.0 - wind_direction
	if windDirectionDeg < 0.0 {
		windDirectionDeg += 360.0
	}
	return math.Pi * windDirectionDeg / 180.0
}

func (wf *WindFrame) solve_nonlinear(params *WindFrameParams) *WindFrameUnknowns {
	wf.counter.record_obj_call()

	windDirectionRad := wind_direction_to_radians(params.wind_direction)

	cosR := math.Cos(-windDirectionRad)
	sinR := math.Sin(-windDirectionRad)

	// convert to downwind(x)-crosswind(y) coordinates
	unknowns := &WindFrameUnknowns{
		turbineXw: make([]float64, wf.nTurbines),
		turbineYw: make([]float64, wf.nTurbines),
	}
	for i := 0; i < wf.nTurbines; i++ {
		unknowns.turbineXw[i] = params.turbineX[i]*cosR - params.turbineY[i]*sinR
		unknowns.turbineYw[i] = params.turbineX[i]*sinR + params.turbineY[i]*cosR
	}

	if wf.nSamples > 0 {
		unknowns.wsPositionXw = make([]float64, wf.nSamples)
		unknowns.wsPositionYw = make([]float64, wf.nSamples)
		for i := 0; i < wf.nSamples; i++ {
			unknowns.wsPositionXw[i] = params.wsPositionX[i]*cosR - params.wsPositionY[i]*sinR
			unknowns.wsPositionYw[i] = params.wsPositionX[i]*sinR + params.wsPositionY[i]*cosR
		}
	}

	return unknowns
}

/*
Gradients of the rotation to the wind direction reference frame.

The wind direction is a fixed parameter of each call, not a differentiated
input, so the Jacobian holds only the four constant rotation blocks.
*/
func (wf *WindFrame) linearize(params *WindFrameParams) Jacobian {
	wf.counter.record_sens_call()

	windDirectionRad := wind_direction_to_radians(params.wind_direction)

	cosR := math.Cos(-windDirectionRad)
	sinR := math.Sin(-windDirectionRad)

	J := Jacobian{}
	J.set("turbineXw", "turbineX", eye_scaled(wf.nTurbines, cosR))
	J.set("turbineXw", "turbineY", eye_scaled(wf.nTurbines, -sinR))
	J.set("turbineYw", "turbineX", eye_scaled(wf.nTurbines, sinR))
	J.set("turbineYw", "turbineY", eye_scaled(wf.nTurbines, cosR))

	return J
}

func (wf *WindFrame) param_names() []string {
	return []string{"turbineX", "turbineY"}
}

func (wf *WindFrame) output_names() []string {
	return []string{"turbineXw", "turbineYw"}
}
