package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write_temp_csv(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWindResource(t *testing.T) {
	path := write_temp_csv(t, "wind_rose.csv",
		"direction,speed,frequency\n0.0,8.0,0.25\n90.0,10.0,0.5\n270.0,6.5,0.25\n")

	resource := load_wind_resource(path)

	require.Equal(t, 3, resource.number_of_directions())
	assert.Equal(t, []float64{0.0, 90.0, 270.0}, resource.directions)
	assert.Equal(t, []float64{8.0, 10.0, 6.5}, resource.speeds)
	assert.Equal(t, []float64{0.25, 0.5, 0.25}, resource.frequencies)
}

func TestLoadWindResourcePanics(t *testing.T) {
	assert.Panics(t, func() { load_wind_resource("no_such_file.csv") })

	empty := write_temp_csv(t, "empty.csv", "direction,speed,frequency\n")
	assert.Panics(t, func() { load_wind_resource(empty) })
}

func TestLoadTurbineLayout(t *testing.T) {
	path := write_temp_csv(t, "layout.csv", "x,y\n0.0,0.0\n500.0,0.0\n250.0,400.0\n")

	turbineX, turbineY := load_turbine_layout(path)

	assert.Equal(t, []float64{0.0, 500.0, 250.0}, turbineX)
	assert.Equal(t, []float64{0.0, 0.0, 400.0}, turbineY)
}

func TestLoadPerformanceCurve(t *testing.T) {
	path := write_temp_csv(t, "curve.csv",
		"wind_speed,cp,ct\n3.0,0.2,0.9\n7.0,0.45,0.8\n11.0,0.4,0.6\n")

	ws, cp, ct := load_performance_curve(path)

	assert.Equal(t, []float64{3.0, 7.0, 11.0}, ws)
	assert.Equal(t, []float64{0.2, 0.45, 0.4}, cp)
	assert.Equal(t, []float64{0.9, 0.8, 0.6}, ct)
}

func TestLoadPerformanceCurvePanics(t *testing.T) {
	single := write_temp_csv(t, "single.csv", "wind_speed,cp,ct\n7.0,0.45,0.8\n")
	assert.Panics(t, func() { load_performance_curve(single) })

	descending := write_temp_csv(t, "descending.csv",
		"wind_speed,cp,ct\n7.0,0.45,0.8\n3.0,0.2,0.9\n")
	assert.Panics(t, func() { load_performance_curve(descending) })
}
