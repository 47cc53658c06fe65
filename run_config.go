package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TurbineConfig holds the catalog values shared by every turbine of a run.
type TurbineConfig struct {
	RotorDiameter       float64 `yaml:"rotor_diameter"`       // m
	GeneratorEfficiency float64 `yaml:"generator_efficiency"` //
	RatedPower          float64 `yaml:"rated_power"`          // kW
	CutInSpeed          float64 `yaml:"cut_in_speed"`         // m/s
	RatedWindSpeed      float64 `yaml:"rated_wind_speed"`     // m/s
	CutOutSpeed         float64 `yaml:"cut_out_speed"`        // m/s
	Cp                  float64 `yaml:"cp"`
	Ct                  float64 `yaml:"ct"`
}

// RunConfig is the YAML run configuration, resolved once per run.
type RunConfig struct {
	LayoutPath           string        `yaml:"layout_path"`
	WindRosePath         string        `yaml:"wind_rose_path"`
	PerformanceCurvePath string        `yaml:"performance_curve_path,omitempty"`
	AEPMethod            string        `yaml:"aep_method"`
	BoundaryType         string        `yaml:"boundary_type"`
	BoundaryRadius       float64       `yaml:"boundary_radius,omitempty"`
	BoundaryCenter       [2]float64    `yaml:"boundary_center,omitempty"`
	PP                   float64       `yaml:"p_p"`
	AirDensity           float64       `yaml:"air_density"`
	CPCorrected          bool          `yaml:"cp_corrected"`
	CTCorrected          bool          `yaml:"ct_corrected"`
	UsePowerCurve        bool          `yaml:"use_power_curve_definition"`
	UseSmoothCPCT        bool          `yaml:"use_smooth_cpct"`
	Turbine              TurbineConfig `yaml:"turbine"`
}

func parse_run_config(data []byte) (*RunConfig, error) {
	cfg := &RunConfig{
		AEPMethod:    "none",
		BoundaryType: "polygon",
		PP:           get_pP_default(),
		AirDensity:   get_rho_air(),
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse run config yaml: %w", err)
	}
	if cfg.LayoutPath == "" {
		return nil, fmt.Errorf("run config: layout_path is required")
	}
	if cfg.WindRosePath == "" {
		return nil, fmt.Errorf("run config: wind_rose_path is required")
	}
	return cfg, nil
}

func load_run_config(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run config: %w", err)
	}
	return parse_run_config(data)
}
