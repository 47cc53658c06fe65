package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

/*
WindResource holds the wind rose of one run: an ordered list of
(direction, speed, frequency) conditions. Fixed for the lifetime of a run.
*/
type WindResource struct {
	directions  []float64 // deg, cw from north, "direction from"
	speeds      []float64 // m/s
	frequencies []float64
}

func (w *WindResource) number_of_directions() int {
	return len(w.directions)
}

type WindRoseRow struct {
	Direction float64 `csv:"direction"`
	Speed     float64 `csv:"speed"`
	Frequency float64 `csv:"frequency"`
}

/*
Load the wind rose from a CSV file with columns direction, speed, frequency.

Args:

	file_path: path of the wind rose CSV

Returns:

	WindResource
*/
func load_wind_resource(file_path string) *WindResource {
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*WindRoseRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	if len(rows) == 0 {
		panic("Error Wind rose file has no rows.")
	}

	w := &WindResource{
		directions:  make([]float64, len(rows)),
		speeds:      make([]float64, len(rows)),
		frequencies: make([]float64, len(rows)),
	}
	for i, r := range rows {
		w.directions[i] = r.Direction
		w.speeds[i] = r.Speed
		w.frequencies[i] = r.Frequency
	}

	return w
}

type TurbineLayoutRow struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

/*
Load the turbine layout from a CSV file with columns x, y (meters, farm
frame).

Returns:

	(1) x positions, m
	(2) y positions, m
*/
func load_turbine_layout(file_path string) ([]float64, []float64) {
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*TurbineLayoutRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	if len(rows) == 0 {
		panic("Error Turbine layout file has no rows.")
	}

	turbineX := make([]float64, len(rows))
	turbineY := make([]float64, len(rows))
	for i, r := range rows {
		turbineX[i] = r.X
		turbineY[i] = r.Y
	}

	return turbineX, turbineY
}

type PerformanceCurveRow struct {
	WindSpeed float64 `csv:"wind_speed"`
	CP        float64 `csv:"cp"`
	CT        float64 `csv:"ct"`
}

/*
Load the precalculated CP-CT performance curve from a CSV file with columns
wind_speed, cp, ct. Wind speeds must be ascending (the interpolators clamp
against the endpoints).

Returns:

	(1) wind speeds, m/s
	(2) power coefficients
	(3) thrust coefficients
*/
func load_performance_curve(file_path string) ([]float64, []float64, []float64) {
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*PerformanceCurveRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	if len(rows) < 2 {
		panic("Error Performance curve file needs at least 2 rows.")
	}

	ws := make([]float64, len(rows))
	cp := make([]float64, len(rows))
	ct := make([]float64, len(rows))
	for i, r := range rows {
		if i > 0 && r.WindSpeed <= ws[i-1] {
			panic("Error Performance curve wind speeds must be ascending.")
		}
		ws[i] = r.WindSpeed
		cp[i] = r.CP
		ct[i] = r.CT
	}

	return ws, cp, ct
}
