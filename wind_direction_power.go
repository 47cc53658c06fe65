package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

/*
WindDirectionPower computes the power of each turbine and the farm total for
one wind direction.

Two mutually exclusive evaluation modes are resolved at construction:

  - power-curve mode: the power follows a fixed cubic ramp from cut-in to
    rated wind speed, holds rated power to cut-out, and is zero elsewhere.
  - coefficient mode: power = eta * 0.5 * rho * A * Cp * v^3 / 1000 (kW),
    with Cp either taken from the input array, interpolated linearly from a
    configured curve, or evaluated from a prebuilt smooth spline. Power is
    clamped at rated from above (unless the rotor-performance sub-model
    enforces this externally) and zeroed below cut-in.

Each mode carries its own exact Jacobian, including exactly-zero rows for
turbines saturated at rated power or below cut-in.
*/
type WindDirectionPower struct {
	nTurbines int
	model     power_model
	counter   *CallCounter
}

func NewWindDirectionPower(
	nTurbines int,
	use_rotor_components bool,
	cp_points int,
	cp_curve_spline *interp.AkimaSpline,
	use_power_curve_definition bool,
	counter *CallCounter,
) *WindDirectionPower {
	var model power_model
	if use_power_curve_definition {
		model = &power_curve_model{nTurbines: nTurbines}
	} else {
		var src cp_source
		if cp_curve_spline != nil {
			src = &spline_cp_source{spline: cp_curve_spline}
		} else if cp_points > 1 {
			src = &table_cp_source{}
		} else {
			src = &fixed_cp_source{}
		}
		model = &coefficient_model{
			nTurbines:            nTurbines,
			use_rotor_components: use_rotor_components,
			cp:                   src,
		}
	}

	return &WindDirectionPower{
		nTurbines: nTurbines,
		model:     model,
		counter:   counter,
	}
}

type WindDirectionPowerParams struct {
	air_density         float64   // 空気密度, kg/m3
	rotorDiameter       []float64 // rotor diameter of each turbine, m
	Cp                  []float64 // power coefficient of each turbine
	generatorEfficiency []float64 // generator efficiency of each turbine
	wtVelocity          []float64 // effective hub velocity of each turbine, m/s
	rated_power         []float64 // rated power of each turbine, kW
	cut_in_speed        []float64 // cut-in speed of each turbine, m/s
	rated_wind_speed    []float64 // rated wind speed of each turbine, m/s
	cut_out_speed       []float64 // cut-out speed of each turbine, m/s
	cp_curve_cp         []float64 // cp as a function of wind speed
	cp_curve_wind_speed []float64 // wind speeds corresponding to cp_curve_cp, m/s
}

type WindDirectionPowerUnknowns struct {
	wtPower   []float64 // power output of each turbine, kW
	dir_power float64   // total power output of the wind farm for this direction, kW
}

func (c *WindDirectionPower) solve_nonlinear(params *WindDirectionPowerParams) *WindDirectionPowerUnknowns {
	c.counter.record_obj_call()

	wtPower := c.model.wt_power(params)

	return &WindDirectionPowerUnknowns{
		wtPower:   wtPower,
		dir_power: floats.Sum(wtPower),
	}
}

func (c *WindDirectionPower) linearize(params *WindDirectionPowerParams, unknowns *WindDirectionPowerUnknowns) Jacobian {
	c.counter.record_sens_call()

	n := c.nTurbines
	dV, dCp, dD := c.model.partials(params, unknowns.wtPower)

	// total power derivatives: column sums of the per-turbine blocks
	ddir_dV := make([]float64, n)
	ddir_dCp := make([]float64, n)
	ddir_dD := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			ddir_dV[j] += dV.At(i, j)
			ddir_dCp[j] += dCp.At(i, j)
			ddir_dD[j] += dD.At(i, j)
		}
	}

	J := Jacobian{}
	J.set("wtPower", "wtVelocity", dV)
	J.set("wtPower", "Cp", dCp)
	J.set("wtPower", "rotorDiameter", dD)
	J.set("dir_power", "wtVelocity", row_vector(ddir_dV))
	J.set("dir_power", "Cp", row_vector(ddir_dCp))
	J.set("dir_power", "rotorDiameter", row_vector(ddir_dD))

	return J
}

func (c *WindDirectionPower) param_names() []string {
	return []string{"wtVelocity", "Cp", "rotorDiameter"}
}

func (c *WindDirectionPower) output_names() []string {
	return []string{"wtPower", "dir_power"}
}

// power_model is the per-variant forward and partial evaluation of wtPower.
type power_model interface {
	wt_power(params *WindDirectionPowerParams) []float64
	partials(params *WindDirectionPowerParams, wtPower []float64) (dV, dCp, dD *mat.Dense)
}

// 定格出力までの3次曲線で定義されたパワーカーブ
type power_curve_model struct {
	nTurbines int
}

func (m *power_curve_model) wt_power(params *WindDirectionPowerParams) []float64 {
	wtPower := make([]float64, m.nTurbines)

	for n := 0; n < m.nTurbines; n++ {
		v := params.wtVelocity[n]
		switch {
		case params.cut_in_speed[n] <= v && v < params.rated_wind_speed[n]:
			ratio := (v - params.cut_in_speed[n]) / (params.rated_wind_speed[n] - params.cut_in_speed[n])
			wtPower[n] = params.rated_power[n] * ratio * ratio * ratio
		case params.rated_wind_speed[n] <= v && v < params.cut_out_speed[n]:
			wtPower[n] = params.rated_power[n]
		}
		// outside [cut_in, cut_out) the power stays zero
	}

	return wtPower
}

func (m *power_curve_model) partials(params *WindDirectionPowerParams, wtPower []float64) (*mat.Dense, *mat.Dense, *mat.Dense) {
	n := m.nTurbines
	dV := zeros(n, n)

	for i := 0; i < n; i++ {
		v := params.wtVelocity[i]
		if params.cut_in_speed[i] <= v && v < params.rated_wind_speed[i] {
			span := params.rated_wind_speed[i] - params.cut_in_speed[i]
			ratio := (v - params.cut_in_speed[i]) / span
			dV.Set(i, i, 3.0*params.rated_power[i]*ratio*ratio/span)
		}
		// on the rated plateau and outside the envelope the derivative is exactly zero
	}

	return dV, zeros(n, n), zeros(n, n)
}

// Cp係数から出力を計算するモデル
type coefficient_model struct {
	nTurbines            int
	use_rotor_components bool
	cp                   cp_source
}

func (m *coefficient_model) wt_power(params *WindDirectionPowerParams) []float64 {
	wtPower := make([]float64, m.nTurbines)

	for i := 0; i < m.nTurbines; i++ {
		v := params.wtVelocity[i]
		rotorArea := 0.25 * math.Pi * params.rotorDiameter[i] * params.rotorDiameter[i]
		cp, _ := m.cp.cp_and_gradient(i, v, params)

		// W -> kW
		wtPower[i] = params.generatorEfficiency[i] * 0.5 * params.air_density * rotorArea * cp * v * v * v / 1000.0

		// adjust power based on rated power unless the rotor model handles it
		if !m.use_rotor_components && wtPower[i] >= params.rated_power[i] {
			wtPower[i] = params.rated_power[i]
		}

		if v < params.cut_in_speed[i] {
			wtPower[i] = 0.0
		}
	}

	return wtPower
}

func (m *coefficient_model) partials(params *WindDirectionPowerParams, wtPower []float64) (*mat.Dense, *mat.Dense, *mat.Dense) {
	n := m.nTurbines
	dV := zeros(n, n)
	dCp := zeros(n, n)
	dD := zeros(n, n)

	for i := 0; i < n; i++ {
		v := params.wtVelocity[i]
		d := params.rotorDiameter[i]
		rotorArea := 0.25 * math.Pi * d * d
		ge := params.generatorEfficiency[i]
		rho := params.air_density
		cp, dCpdV := m.cp.cp_and_gradient(i, v, params)

		dV.Set(i, i, 0.5*ge*rho*rotorArea*(3.0*cp*v*v+v*v*v*dCpdV)/1000.0)
		dCp.Set(i, i, ge*0.5*rho*rotorArea*v*v*v/1000.0)
		dD.Set(i, i, ge*0.5*rho*(0.5*math.Pi*d)*cp*v*v*v/1000.0)

		// rated saturation and the region below cut-in are flat: the gradient
		// there is exactly zero, not the one-sided limit of the active branch
		if wtPower[i] >= params.rated_power[i] || v < params.cut_in_speed[i] {
			dV.Set(i, i, 0.0)
			dCp.Set(i, i, 0.0)
			dD.Set(i, i, 0.0)
		}
	}

	return dV, dCp, dD
}

/*
cp_source resolves the power coefficient of turbine i at hub speed v, together
with its derivative w.r.t. v, for the coefficient model.
*/
type cp_source interface {
	cp_and_gradient(i int, v float64, params *WindDirectionPowerParams) (cp float64, dCpdV float64)
}

// Cp is taken directly from the input array; no speed dependence.
type fixed_cp_source struct{}

func (s *fixed_cp_source) cp_and_gradient(i int, v float64, params *WindDirectionPowerParams) (float64, float64) {
	return params.Cp[i], 0.0
}

/*
Cp is interpolated linearly from the configured curve. The derivative uses a
central finite difference with a fixed 1e-6 step; the rest of the system is
analytic, but this hybrid is part of the model contract.
*/
type table_cp_source struct{}

func (s *table_cp_source) cp_and_gradient(i int, v float64, params *WindDirectionPowerParams) (float64, float64) {
	const dv = 1e-6
	cp := interp_linear(v, params.cp_curve_wind_speed, params.cp_curve_cp)
	dCpdV := (interp_linear(v+dv, params.cp_curve_wind_speed, params.cp_curve_cp) -
		interp_linear(v-dv, params.cp_curve_wind_speed, params.cp_curve_cp)) / (2.0 * dv)
	return cp, dCpdV
}

// Cp comes from a prebuilt smooth spline with an analytic derivative.
type spline_cp_source struct {
	spline *interp.AkimaSpline
}

func (s *spline_cp_source) cp_and_gradient(i int, v float64, params *WindDirectionPowerParams) (float64, float64) {
	return s.spline.Predict(v), s.spline.PredictDerivative(v)
}
