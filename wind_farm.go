package main

import (
	"gonum.org/v1/gonum/mat"
)

/*
WakeModel provides the effective hub-height velocity of every turbine for one
wind direction, given the layout in the wind reference frame. The deficit
model itself is an external collaborator; FreeStreamWake is the trivial
implementation used when no wake model is attached.
*/
type WakeModel interface {
	wt_velocity(turbineXw []float64, turbineYw []float64, rotorDiameter []float64, wind_speed float64) []float64
}

// 後流影響なし：全タービンが自由流風速を受ける
type FreeStreamWake struct{}

func (FreeStreamWake) wt_velocity(turbineXw []float64, turbineYw []float64, rotorDiameter []float64, wind_speed float64) []float64 {
	v := make([]float64, len(turbineXw))
	for i := range v {
		v[i] = wind_speed
	}
	return v
}

// WindCondition is one (direction, speed) pair with its frequency weight.
type WindCondition struct {
	direction float64 // deg, cw from north, "direction from"
	speed     float64 // m/s
	frequency float64
}

/*
DirectionState is the per-direction signal set of one evaluation. Directions
are ordered structurally by the index into the state list; each direction owns
its state, so no mutable data is shared between directions.
*/
type DirectionState struct {
	condition  WindCondition
	yaw        []float64 // yaw of each turbine for this direction, deg
	turbineXw  []float64 // downwind coordinates, m
	turbineYw  []float64 // crosswind coordinates, m
	wtVelocity []float64 // effective hub speeds, m/s
	Ct         []float64 // yaw-corrected thrust coefficients
	Cp         []float64 // yaw-corrected power coefficients
	wtPower    []float64 // per-turbine power, kW
	dir_power  float64   // farm power for this direction, kW
}

/*
WindFarm wires the component graph for a full evaluation:

	WindFrame -> wake model -> AdjustCtCpYaw (or CPCT interpolation)
	          -> WindDirectionPower -> MUX -> WindFarmAEP

plus the layout constraints (SpacingComp, BoundaryComp), which are
independent of wind. The turbine set and wind conditions are fixed for the
lifetime of the farm; positions and yaw are the optimization variables,
mutated only between evaluations.
*/
type WindFarm struct {
	turbineX []float64
	turbineY []float64

	rotorDiameter       []float64
	generatorEfficiency []float64
	rated_power         []float64
	cut_in_speed        []float64
	rated_wind_speed    []float64
	cut_out_speed       []float64
	Ct                  []float64
	Cp                  []float64

	air_density                float64
	use_power_curve_definition bool
	use_smooth_cpct            bool

	gen        *GenParams
	conditions []WindCondition
	yaw        [][]float64 // per direction, per turbine, deg
	wake       WakeModel
	counter    *CallCounter
}

func NewWindFarm(
	turbineX []float64,
	turbineY []float64,
	turbine TurbineConfig,
	gen *GenParams,
	resource *WindResource,
	air_density float64,
	use_power_curve_definition bool,
	use_smooth_cpct bool,
	wake WakeModel,
	counter *CallCounter,
) *WindFarm {
	n := len(turbineX)

	fill := func(v float64) []float64 {
		s := make([]float64, n)
		for i := range s {
			s[i] = v
		}
		return s
	}

	conditions := make([]WindCondition, resource.number_of_directions())
	yaw := make([][]float64, len(conditions))
	for d := range conditions {
		conditions[d] = WindCondition{
			direction: resource.directions[d],
			speed:     resource.speeds[d],
			frequency: resource.frequencies[d],
		}
		yaw[d] = make([]float64, n)
	}

	if wake == nil {
		wake = FreeStreamWake{}
	}

	return &WindFarm{
		turbineX:                   turbineX,
		turbineY:                   turbineY,
		rotorDiameter:              fill(turbine.RotorDiameter),
		generatorEfficiency:        fill(turbine.GeneratorEfficiency),
		rated_power:                fill(turbine.RatedPower),
		cut_in_speed:               fill(turbine.CutInSpeed),
		rated_wind_speed:           fill(turbine.RatedWindSpeed),
		cut_out_speed:              fill(turbine.CutOutSpeed),
		Ct:                         fill(turbine.Ct),
		Cp:                         fill(turbine.Cp),
		air_density:                air_density,
		use_power_curve_definition: use_power_curve_definition,
		use_smooth_cpct:            use_smooth_cpct,
		gen:                        gen,
		conditions:                 conditions,
		yaw:                        yaw,
		wake:                       wake,
		counter:                    counter,
	}
}

func (f *WindFarm) number_of_turbines() int {
	return len(f.turbineX)
}

// ヨー角の設定（方向別）
func (f *WindFarm) set_yaw(direction_index int, yaw []float64) {
	copy(f.yaw[direction_index], yaw)
}

/*
Evaluate one direction of the farm: rotate the layout, obtain hub speeds
from the wake model, correct the rotor coefficients for yaw, and compute the
per-turbine and total power.
*/
func (f *WindFarm) evaluate_direction(d int) *DirectionState {
	n := f.number_of_turbines()
	cond := f.conditions[d]

	state := &DirectionState{
		condition: cond,
		yaw:       f.yaw[d],
	}

	// layout in the wind reference frame
	frame := NewWindFrame(n, 0, f.counter)
	frameOut := frame.solve_nonlinear(&WindFrameParams{
		wind_direction: cond.direction,
		turbineX:       f.turbineX,
		turbineY:       f.turbineY,
	})
	state.turbineXw = frameOut.turbineXw
	state.turbineYw = frameOut.turbineYw

	// effective hub speeds from the (external) wake model
	state.wtVelocity = f.wake.wt_velocity(state.turbineXw, state.turbineYw, f.rotorDiameter, cond.speed)

	// rotor coefficients corrected for yaw
	datasize := f.gen.datasize()
	if f.use_smooth_cpct && datasize > 1 {
		cpct := NewCPCTInterpolateSmooth(n, datasize, f.gen, f.counter)
		out := cpct.solve_nonlinear(&CPCTParams{yaw: state.yaw, wtVelocity: state.wtVelocity})
		state.Cp = out.Cp_out
		state.Ct = out.Ct_out
	} else {
		adjust := NewAdjustCtCpYaw(n, f.gen, f.counter)
		out := adjust.solve_nonlinear(&AdjustCtCpYawParams{
			Ct_in: f.Ct,
			Cp_in: f.Cp,
			yaw:   state.yaw,
		})
		state.Cp = out.Cp_out
		state.Ct = out.Ct_out
	}

	// per-turbine power; the CPCT path already resolves Cp(v), so the power
	// component runs with the resolved coefficients (rotor-components pairing)
	power := NewWindDirectionPower(n, f.use_smooth_cpct, 1, nil, f.use_power_curve_definition, f.counter)
	powerOut := power.solve_nonlinear(&WindDirectionPowerParams{
		air_density:         f.air_density,
		rotorDiameter:       f.rotorDiameter,
		Cp:                  state.Cp,
		generatorEfficiency: f.generatorEfficiency,
		wtVelocity:          state.wtVelocity,
		rated_power:         f.rated_power,
		cut_in_speed:        f.cut_in_speed,
		rated_wind_speed:    f.rated_wind_speed,
		cut_out_speed:       f.cut_out_speed,
	})
	state.wtPower = powerOut.wtPower
	state.dir_power = powerOut.dir_power

	return state
}

/*
Evaluate the AEP of the farm over all wind conditions.

Returns:

	(1) AEP, kWh (after the configured objective transform)
	(2) the per-direction states, in wind-rose order
*/
func (f *WindFarm) evaluate() (float64, []*DirectionState) {
	nDirs := len(f.conditions)

	states := make([]*DirectionState, nDirs)
	dirPowerInputs := make([]float64, nDirs)
	frequencies := make([]float64, nDirs)
	for d := 0; d < nDirs; d++ {
		states[d] = f.evaluate_direction(d)
		dirPowerInputs[d] = states[d].dir_power
		frequencies[d] = f.conditions[d].frequency
	}

	// per-direction scalars -> array -> AEP
	mux := NewMUX(nDirs, f.counter)
	dirPowers := mux.solve_nonlinear(dirPowerInputs)

	aep := NewWindFarmAEP(nDirs, f.gen.AEP_method, f.counter)
	AEP := aep.solve_nonlinear(&WindFarmAEPParams{
		dirPowers:       dirPowers,
		windFrequencies: frequencies,
	})

	return AEP, states
}

// 全タービン対の離隔距離の2乗
func (f *WindFarm) evaluate_spacing() []float64 {
	spacing := NewSpacingComp(f.number_of_turbines(), f.counter)
	return spacing.solve_nonlinear(&SpacingParams{
		turbineX: f.turbineX,
		turbineY: f.turbineY,
	})
}

/*
Evaluate the boundary constraint against the convex hull of the given
boundary points (polygon) or the given circle.

Returns:

	(1) signed distances, [nTurbines x nFaces]; + is inside
	(2) per-turbine inside flags
*/
func (f *WindFarm) evaluate_boundary(boundary_type BoundaryType, boundary_points [][2]float64, center [2]float64, radius float64) (*mat.Dense, []bool) {
	n := f.number_of_turbines()

	params := &BoundaryParams{
		turbineX: f.turbineX,
		turbineY: f.turbineY,
	}

	nVertices := 1
	if boundary_type == BoundaryTypePolygon {
		vertices, normals := calculate_boundary(boundary_points)
		params.boundaryVertices = vertices
		params.boundaryNormals = normals
		nVertices = len(vertices)
	} else {
		params.boundary_center = center
		params.boundary_radius = radius
	}

	comp := NewBoundaryComp(n, nVertices, boundary_type, f.counter)
	distances := comp.solve_nonlinear(params)

	rows, cols := distances.Dims()
	inside := make([]bool, rows)
	for i := 0; i < rows; i++ {
		inside[i] = true
		for j := 0; j < cols; j++ {
			if distances.At(i, j) < 0 {
				inside[i] = false
				break
			}
		}
	}

	return distances, inside
}
