package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

/*
Run one full evaluation of the wind farm model.

	Args:
	    config_path: path of the YAML run configuration
	    output_data_dir: output directory
	    is_result_saved: whether to save the evaluation results as CSV
*/
func run(
	config_path string,
	output_data_dir string,
	is_result_saved bool,
) {
	// ---- 事前準備 ----

	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	log.Printf("Load run configuration from `%s`", config_path)
	cfg, err := load_run_config(config_path)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Load turbine layout from `%s`", cfg.LayoutPath)
	turbineX, turbineY := load_turbine_layout(cfg.LayoutPath)

	log.Printf("Load wind rose from `%s`", cfg.WindRosePath)
	resource := load_wind_resource(cfg.WindRosePath)

	// general parameters for this run
	var gen *GenParams
	if cfg.PerformanceCurvePath != "" {
		log.Printf("Load performance curve from `%s`", cfg.PerformanceCurvePath)
		ws, cp, ct := load_performance_curve(cfg.PerformanceCurvePath)
		gen = NewGenParams(len(ws))
		copy(gen.windSpeedToCPCT_wind_speed, ws)
		copy(gen.windSpeedToCPCT_CP, cp)
		copy(gen.windSpeedToCPCT_CT, ct)
	} else {
		gen = NewGenParams(0)
	}
	gen.pP = cfg.PP
	gen.CPcorrected = cfg.CPCorrected
	gen.CTcorrected = cfg.CTCorrected
	gen.AEP_method = aep_method_from_string(cfg.AEPMethod)

	counter := &CallCounter{}

	farm := NewWindFarm(
		turbineX,
		turbineY,
		cfg.Turbine,
		gen,
		resource,
		cfg.AirDensity,
		cfg.UsePowerCurve,
		cfg.UseSmoothCPCT,
		FreeStreamWake{},
		counter,
	)

	// ---- 計算 ----

	log.Printf("Evaluate %d turbines over %d wind directions", farm.number_of_turbines(), resource.number_of_directions())
	AEP, states := farm.evaluate()

	for _, s := range states {
		log.Printf("direction %6.1f deg, speed %5.2f m/s, frequency %.4f: dir_power %12.2f kW",
			s.condition.direction, s.condition.speed, s.condition.frequency, s.dir_power)
	}
	log.Printf("AEP (method=%s): %g kWh", gen.AEP_method, AEP)

	// ---- 制約の評価 ----

	separations := farm.evaluate_spacing()
	minSep := separations[0]
	for _, s := range separations {
		if s < minSep {
			minSep = s
		}
	}
	log.Printf("minimum squared turbine separation: %.2f m2 over %d pairs", minSep, len(separations))

	boundary_type := boundary_type_from_string(cfg.BoundaryType)
	var boundary_points [][2]float64
	if boundary_type == BoundaryTypePolygon {
		// the hull of the layout itself bounds the farm when no explicit
		// boundary is configured
		boundary_points = make([][2]float64, len(turbineX))
		for i := range boundary_points {
			boundary_points[i] = [2]float64{turbineX[i], turbineY[i]}
		}
	}
	_, inside := farm.evaluate_boundary(boundary_type, boundary_points, cfg.BoundaryCenter, cfg.BoundaryRadius)
	nInside := 0
	for _, in := range inside {
		if in {
			nInside++
		}
	}
	log.Printf("turbines inside the %s boundary: %d / %d", boundary_type, nInside, len(inside))

	// ---- 計算結果ファイルの保存 ----

	if is_result_saved {
		recorder := NewRunRecorder(resource.number_of_directions())
		recorder.record(AEP, states, counter)
		log.Printf("Save evaluation results to `%s/result_evaluation.csv`", output_data_dir)
		recorder.save_csv(output_data_dir, "result_evaluation.csv")
	}

	log.Printf("objective calls: %d, sensitivity calls: %d", counter.obj_calls(), counter.sens_calls())
}

func main() {
	var config_path string
	flag.StringVar(&config_path, "config", "example/run_config.yaml", "YAML run configuration")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output directory")

	var result_saved bool
	flag.BoolVar(&result_saved, "result_saved", false, "save the evaluation results as CSV")

	flag.Parse()

	// Print flag values
	fmt.Printf("config_path: %s\n", config_path)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("result_saved: %t\n", result_saved)

	start := time.Now()

	run(
		config_path,
		output_data_dir,
		result_saved,
	)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
