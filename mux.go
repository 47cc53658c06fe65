package main

import (
	"fmt"
)

/*
MUX connects independently produced scalar signals into a single array,
preserving index order. The aggregator consumes the per-direction powers
through this adapter, so its Jacobian must be exactly one-hot per input.
*/
type MUX struct {
	nElements int
	counter   *CallCounter
}

func NewMUX(nElements int, counter *CallCounter) *MUX {
	return &MUX{nElements: nElements, counter: counter}
}

func (c *MUX) solve_nonlinear(inputs []float64) []float64 {
	c.counter.record_obj_call()

	array := make([]float64, c.nElements)
	copy(array, inputs)
	return array
}

func (c *MUX) linearize() Jacobian {
	c.counter.record_sens_call()

	J := Jacobian{}
	for i := 0; i < c.nElements; i++ {
		dArray_dInput := make([]float64, c.nElements)
		dArray_dInput[i] = 1.0
		J.set("Array", fmt.Sprintf("input%d", i), row_vector(dArray_dInput))
	}

	return J
}

func (c *MUX) param_names() []string {
	names := make([]string, c.nElements)
	for i := range names {
		names[i] = fmt.Sprintf("input%d", i)
	}
	return names
}

func (c *MUX) output_names() []string {
	return []string{"Array"}
}

// DeMUX splits a given array into separate scalar outputs; the exact inverse
// of MUX.
type DeMUX struct {
	nElements int
	counter   *CallCounter
}

func NewDeMUX(nElements int, counter *CallCounter) *DeMUX {
	return &DeMUX{nElements: nElements, counter: counter}
}

func (c *DeMUX) solve_nonlinear(array []float64) []float64 {
	c.counter.record_obj_call()

	outputs := make([]float64, c.nElements)
	copy(outputs, array)
	return outputs
}

func (c *DeMUX) linearize() Jacobian {
	c.counter.record_sens_call()

	J := Jacobian{}
	for i := 0; i < c.nElements; i++ {
		doutput_dArray := make([]float64, c.nElements)
		doutput_dArray[i] = 1.0
		J.set(fmt.Sprintf("output%d", i), "Array", row_vector(doutput_dArray))
	}

	return J
}

func (c *DeMUX) param_names() []string {
	return []string{"Array"}
}

func (c *DeMUX) output_names() []string {
	names := make([]string, c.nElements)
	for i := range names {
		names[i] = fmt.Sprintf("output%d", i)
	}
	return names
}
