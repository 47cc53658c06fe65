package main

import (
	"math"
)

/*
AdjustCtCpYaw adjusts Cp and Ct for yaw misalignment if they are not already
adjusted by the upstream rotor model.

	Ct_out = Ct_in * cos(yaw)^2
	Cp_out = Cp_in * cos(yaw)^pP

The two corrected flags of gen_params are independent: either coefficient may
pass through unchanged while the other is corrected.
*/
type AdjustCtCpYaw struct {
	nTurbines int
	gen       *GenParams
	counter   *CallCounter
}

func NewAdjustCtCpYaw(nTurbines int, gen *GenParams, counter *CallCounter) *AdjustCtCpYaw {
	return &AdjustCtCpYaw{
		nTurbines: nTurbines,
		gen:       gen,
		counter:   counter,
	}
}

type AdjustCtCpYawParams struct {
	Ct_in []float64 // thrust coefficient for all turbines
	Cp_in []float64 // power coefficient for all turbines
	yaw   []float64 // yaw of each turbine, deg
}

type AdjustCtCpYawUnknowns struct {
	Ct_out []float64
	Cp_out []float64
}

func (a *AdjustCtCpYaw) solve_nonlinear(params *AdjustCtCpYawParams) *AdjustCtCpYawUnknowns {
	a.counter.record_obj_call()

	pP := a.gen.pP

	unknowns := &AdjustCtCpYawUnknowns{
		Ct_out: make([]float64, a.nTurbines),
		Cp_out: make([]float64, a.nTurbines),
	}

	for i := 0; i < a.nTurbines; i++ {
		yaw := params.yaw[i] * math.Pi / 180.0

		if !a.gen.CTcorrected {
			unknowns.Ct_out[i] = math.Cos(yaw) * math.Cos(yaw) * params.Ct_in[i]
		} else {
			unknowns.Ct_out[i] = params.Ct_in[i]
		}

		if !a.gen.CPcorrected {
			unknowns.Cp_out[i] = params.Cp_in[i] * math.Pow(math.Cos(yaw), pP)
		} else {
			unknowns.Cp_out[i] = params.Cp_in[i]
		}
	}

	return unknowns
}

func (a *AdjustCtCpYaw) linearize(params *AdjustCtCpYawParams) Jacobian {
	a.counter.record_sens_call()

	n := a.nTurbines
	pP := a.gen.pP

	J := Jacobian{}

	if !a.gen.CTcorrected {
		dCt_dCt := make([]float64, n)
		dCt_dyaw := make([]float64, n)
		for i := 0; i < n; i++ {
			yaw := params.yaw[i] * math.Pi / 180.0
			dCt_dCt[i] = math.Cos(yaw) * math.Cos(yaw)
			dCt_dyaw[i] = params.Ct_in[i] * (-2.0 * math.Sin(yaw) * math.Cos(yaw)) * math.Pi / 180.0
		}
		J.set("Ct_out", "Ct_in", diag(dCt_dCt))
		J.set("Ct_out", "Cp_in", zeros(n, n))
		J.set("Ct_out", "yaw", diag(dCt_dyaw))
	} else {
		J.set("Ct_out", "Ct_in", eye_scaled(n, 1.0))
		J.set("Ct_out", "Cp_in", zeros(n, n))
		J.set("Ct_out", "yaw", zeros(n, n))
	}

	if !a.gen.CPcorrected {
		dCp_dCp := make([]float64, n)
		dCp_dyaw := make([]float64, n)
		for i := 0; i < n; i++ {
			yaw := params.yaw[i] * math.Pi / 180.0
			dCp_dCp[i] = math.Pow(math.Cos(yaw), pP)
			dCp_dyaw[i] = -params.Cp_in[i] * pP * math.Sin(yaw) * math.Pow(math.Cos(yaw), pP-1.0) * math.Pi / 180.0
		}
		J.set("Cp_out", "Cp_in", diag(dCp_dCp))
		J.set("Cp_out", "Ct_in", zeros(n, n))
		J.set("Cp_out", "yaw", diag(dCp_dyaw))
	} else {
		J.set("Cp_out", "Cp_in", eye_scaled(n, 1.0))
		J.set("Cp_out", "Ct_in", zeros(n, n))
		J.set("Cp_out", "yaw", zeros(n, n))
	}

	return J
}

func (a *AdjustCtCpYaw) param_names() []string {
	return []string{"Ct_in", "Cp_in", "yaw"}
}

func (a *AdjustCtCpYaw) output_names() []string {
	return []string{"Ct_out", "Cp_out"}
}
