package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AEPの目的関数変換
type AEPMethod string

const (
	AEPMethodNone    AEPMethod = "none"
	AEPMethodLog     AEPMethod = "log"
	AEPMethodInverse AEPMethod = "inverse"
)

func aep_method_from_string(str string) AEPMethod {
	switch str {
	case "none":
		return AEPMethodNone
	case "log":
		return AEPMethodLog
	case "inverse":
		return AEPMethodInverse
	default:
		panic(`AEP_method must be one of ["none","log","inverse"]`)
	}
}

/*
WindFarmAEP estimates the AEP from the power production in each wind
direction, weighted by the frequency of that direction.

	AEP = 8760 * sum(dirPowers * windFrequencies)

The configured method then reshapes the objective landscape: "none" returns
AEP as-is, "log" returns ln(AEP), "inverse" returns AEP^-1.
*/
type WindFarmAEP struct {
	nDirections int
	method      AEPMethod
	counter     *CallCounter
}

func NewWindFarmAEP(nDirections int, method AEPMethod, counter *CallCounter) *WindFarmAEP {
	switch method {
	case AEPMethodNone, AEPMethodLog, AEPMethodInverse:
	default:
		panic(`AEP_method must be one of ["none","log","inverse"]`)
	}
	return &WindFarmAEP{
		nDirections: nDirections,
		method:      method,
		counter:     counter,
	}
}

type WindFarmAEPParams struct {
	dirPowers       []float64 // power production at each wind direction, kW
	windFrequencies []float64 // weighted frequency of wind at each direction
}

/*
Args:

	params: direction powers and frequencies

Returns:

	total annual energy output of the wind farm, kWh (after the method transform)
*/
func (c *WindFarmAEP) solve_nonlinear(params *WindFarmAEPParams) float64 {
	c.counter.record_obj_call()

	hours := get_hours_in_year()

	AEP := floats.Dot(params.dirPowers, params.windFrequencies) * hours

	switch c.method {
	case AEPMethodNone:
		return AEP
	case AEPMethodLog:
		return math.Log(AEP)
	case AEPMethodInverse:
		return 1.0 / AEP
	default:
		panic(`AEP_method must be one of ["none","log","inverse"]`)
	}
}

/*
Derivative of the objective w.r.t. the power in each wind direction.

The "log" branch uses the literal dirPowers^-1 term rather than the full chain
rule; the downstream optimizer tolerates the missing frequency factor.
*/
func (c *WindFarmAEP) linearize(params *WindFarmAEPParams) Jacobian {
	c.counter.record_sens_call()

	hours := get_hours_in_year()
	nDirs := len(params.windFrequencies)

	dAEP_dpower := make([]float64, nDirs)
	switch c.method {
	case AEPMethodNone:
		for i := 0; i < nDirs; i++ {
			dAEP_dpower[i] = params.windFrequencies[i] * hours
		}
	case AEPMethodLog:
		for i := 0; i < nDirs; i++ {
			dAEP_dpower[i] = 1.0 / params.dirPowers[i]
		}
	case AEPMethodInverse:
		for i := 0; i < nDirs; i++ {
			p := params.dirPowers[i]
			dAEP_dpower[i] = -1.0 / (hours * params.windFrequencies[i] * p * p)
		}
	default:
		panic(`AEP_method must be one of ["none","log","inverse"]`)
	}

	J := Jacobian{}
	J.set("AEP", "dirPowers", row_vector(dAEP_dpower))

	return J
}

func (c *WindFarmAEP) param_names() []string {
	return []string{"dirPowers"}
}

func (c *WindFarmAEP) output_names() []string {
	return []string{"AEP"}
}
