// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"log"

	"gonum.org/v1/gonum/mat"
)

// String is a tensor of string values.
type String struct {
	Base[string]
}

// NewString returns a new n-dimensional tensor of string values
// with the given sizes per dimension (shape).
func NewString(sizes ...int) *String {
	tsr := &String{}
	tsr.SetShape(sizes)
	return tsr
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *String) String() string { return sprint(tsr, 40) }

func (tsr *String) IsString() bool { return true }

///////  Strings

func (tsr *String) StringValue(i ...int) string {
	return tsr.Values[tsr.Shp.Offset(i...)]
}

func (tsr *String) SetString(val string, i ...int) {
	tsr.Values[tsr.Shp.Offset(i...)] = val
}

func (tsr *String) String1D(i int) string { return tsr.Values[i] }

func (tsr *String) SetString1D(val string, i int) { tsr.Values[i] = val }

func (tsr *String) StringRowCell(row, cell int) string {
	_, sz := tsr.Shp.RowCellSize()
	return tsr.Values[row*sz+cell]
}

func (tsr *String) SetStringRowCell(val string, row, cell int) {
	_, sz := tsr.Shp.RowCellSize()
	tsr.Values[row*sz+cell] = val
}

///////  Floats

func (tsr *String) Float(i ...int) float64 {
	return StringToFloat64(tsr.Values[tsr.Shp.Offset(i...)])
}

func (tsr *String) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.Shp.Offset(i...)] = Float64ToString(val)
}

func (tsr *String) Float1D(i int) float64 {
	return StringToFloat64(tsr.Values[i])
}

func (tsr *String) SetFloat1D(val float64, i int) {
	tsr.Values[i] = Float64ToString(val)
}

func (tsr *String) FloatRowCell(row, cell int) float64 {
	_, sz := tsr.Shp.RowCellSize()
	return StringToFloat64(tsr.Values[row*sz+cell])
}

func (tsr *String) SetFloatRowCell(val float64, row, cell int) {
	_, sz := tsr.Shp.RowCellSize()
	tsr.Values[row*sz+cell] = Float64ToString(val)
}

///////  gonum mat.Matrix

// At is the gonum/mat.Matrix interface method for returning the
// float64 value at given row, column index.
func (tsr *String) At(i, j int) float64 {
	nd := tsr.NumDims()
	if nd < 2 {
		log.Println("tensor At gonum Matrix call made on Tensor with dims < 2")
		return 0
	}
	return tsr.Float(i, j)
}

// T is the gonum/mat.Matrix transpose method.
func (tsr *String) T() mat.Matrix {
	return mat.Transpose{Matrix: tsr}
}

// Clone returns a copy of this tensor, with its own separate memory.
func (tsr *String) Clone() Tensor {
	csr := &String{}
	csr.Shp.CopyShape(&tsr.Shp)
	csr.Values = cloneValues(tsr.Values)
	return csr
}
