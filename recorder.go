package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

/*
RunRecorder accumulates the results of successive farm evaluations
(one row per outer-loop iteration) for post-run inspection: the AEP, the
power of every direction and the cumulative call counts. Diagnostic
bookkeeping only; nothing reads the recorder during a run.
*/
type RunRecorder struct {
	nDirections int
	aep         []float64
	dir_powers  [][]float64
	obj_calls   []int
	sens_calls  []int
}

func NewRunRecorder(nDirections int) *RunRecorder {
	return &RunRecorder{nDirections: nDirections}
}

func (r *RunRecorder) record(AEP float64, states []*DirectionState, counter *CallCounter) {
	powers := make([]float64, len(states))
	for d, s := range states {
		powers[d] = s.dir_power
	}

	r.aep = append(r.aep, AEP)
	r.dir_powers = append(r.dir_powers, powers)
	r.obj_calls = append(r.obj_calls, counter.obj_calls())
	r.sens_calls = append(r.sens_calls, counter.sens_calls())
}

func (r *RunRecorder) number_of_iterations() int {
	return len(r.aep)
}

// 計算結果の保存
func (r *RunRecorder) save_csv(output_data_dir string, filename string) {
	path := filepath.Join(output_data_dir, filename)

	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"iteration", "aep"}
	for d := 0; d < r.nDirections; d++ {
		header = append(header, fmt.Sprintf("dir_power%d", d))
	}
	header = append(header, "obj_func_calls", "sens_func_calls")
	if err := writer.Write(header); err != nil {
		panic(err)
	}

	for i := 0; i < len(r.aep); i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(r.aep[i], 'g', -1, 64),
		}
		for d := 0; d < r.nDirections; d++ {
			row = append(row, strconv.FormatFloat(r.dir_powers[i][d], 'g', -1, 64))
		}
		row = append(row, strconv.Itoa(r.obj_calls[i]), strconv.Itoa(r.sens_calls[i]))
		if err := writer.Write(row); err != nil {
			panic(err)
		}
	}
}
