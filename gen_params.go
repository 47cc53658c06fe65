package main

// 年間の時間数, h
func get_hours_in_year() float64 {
	return 8760.0
}

// 空気密度の既定値, kg/m3
func get_rho_air() float64 {
	return 1.1716
}

// ヨー補正指数の既定値
func get_pP_default() float64 {
	return 1.88
}

/*
General parameters shared by every component of one optimization run.

	pP: yaw correction exponent for the power coefficient
	windSpeedToCPCT_wind_speed: wind speeds of the precalculated CP-CT curve, m/s, [datasize]
	windSpeedToCPCT_CP: power coefficients of the precalculated CP-CT curve, [datasize]
	windSpeedToCPCT_CT: thrust coefficients of the precalculated CP-CT curve, [datasize]
	CPcorrected: CP already corrected for yaw by the upstream rotor model
	CTcorrected: CT already corrected for yaw by the upstream rotor model
	AEP_method: objective transform applied to the summed AEP
*/
type GenParams struct {
	pP                         float64
	windSpeedToCPCT_wind_speed []float64
	windSpeedToCPCT_CP         []float64
	windSpeedToCPCT_CT         []float64
	CPcorrected                bool
	CTcorrected                bool
	AEP_method                 AEPMethod
}

func NewGenParams(datasize int) *GenParams {
	return &GenParams{
		pP:                         get_pP_default(),
		windSpeedToCPCT_wind_speed: make([]float64, datasize),
		windSpeedToCPCT_CP:         make([]float64, datasize),
		windSpeedToCPCT_CT:         make([]float64, datasize),
		CPcorrected:                false,
		CTcorrected:                false,
		AEP_method:                 AEPMethodNone,
	}
}

// 性能曲線のデータ点数
func (g *GenParams) datasize() int {
	return len(g.windSpeedToCPCT_wind_speed)
}

/*
Evaluation counter injected into each component at construction.

Counts forward (objective) and Jacobian (sensitivity) evaluations for
benchmarking. Single-threaded by contract, so a plain pair of ints.
A nil counter disables recording.
*/
type CallCounter struct {
	obj_func_calls  int
	sens_func_calls int
}

func (c *CallCounter) record_obj_call() {
	if c != nil {
		c.obj_func_calls++
	}
}

func (c *CallCounter) record_sens_call() {
	if c != nil {
		c.sens_func_calls++
	}
}

// 目的関数の評価回数
func (c *CallCounter) obj_calls() int {
	if c == nil {
		return 0
	}
	return c.obj_func_calls
}

// 勾配の評価回数
func (c *CallCounter) sens_calls() int {
	if c == nil {
		return 0
	}
	return c.sens_func_calls
}
