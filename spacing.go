package main

/*
SpacingComp calculates the squared inter-turbine spacing for all turbine
pairs.

The output is a flat sequence of length n*(n-1)/2 in row-major pair order:
(0,1), (0,2), ..., (0,n-1), (1,2), ... This pairwise enumeration and its
dense Jacobian are the O(n^2) hot spot for large farms.
*/
type SpacingComp struct {
	nTurbines int
	counter   *CallCounter
}

func NewSpacingComp(nTurbines int, counter *CallCounter) *SpacingComp {
	return &SpacingComp{
		nTurbines: nTurbines,
		counter:   counter,
	}
}

type SpacingParams struct {
	turbineX []float64 // x coordinates of turbines, m
	turbineY []float64 // y coordinates of turbines, m
}

func (c *SpacingComp) solve_nonlinear(params *SpacingParams) []float64 {
	c.counter.record_obj_call()

	n := c.nTurbines
	separation_squared := make([]float64, n*(n-1)/2)

	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := params.turbineX[j] - params.turbineX[i]
			dy := params.turbineY[j] - params.turbineY[i]
			separation_squared[k] = dx*dx + dy*dy
			k++
		}
	}

	return separation_squared
}

/*
Gradient of the squared separation of each pair w.r.t. turbineX and turbineY.
Each pair row has exactly two nonzero entries per coordinate: +-2*delta.
*/
func (c *SpacingComp) linearize(params *SpacingParams) Jacobian {
	c.counter.record_sens_call()

	n := c.nTurbines
	nPairs := n * (n - 1) / 2

	dSx := zeros(nPairs, n)
	dSy := zeros(nPairs, n)

	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := params.turbineX[j] - params.turbineX[i]
			dy := params.turbineY[j] - params.turbineY[i]
			dSx.Set(k, j, 2.0*dx)
			dSx.Set(k, i, -2.0*dx)
			dSy.Set(k, j, 2.0*dy)
			dSy.Set(k, i, -2.0*dy)
			k++
		}
	}

	J := Jacobian{}
	J.set("wtSeparationSquared", "turbineX", dSx)
	J.set("wtSeparationSquared", "turbineY", dSy)

	return J
}

func (c *SpacingComp) param_names() []string {
	return []string{"turbineX", "turbineY"}
}

func (c *SpacingComp) output_names() []string {
	return []string{"wtSeparationSquared"}
}
