// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"log"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Bool is a tensor of bool values, using a plain bool slice.
// Float access uses the standard 0 / 1 representation.
type Bool struct {
	Base[bool]
}

// NewBool returns a new n-dimensional tensor of bool values
// with the given sizes per dimension (shape).
func NewBool(sizes ...int) *Bool {
	tsr := &Bool{}
	tsr.SetShape(sizes)
	return tsr
}

// BoolToFloat64 converts a bool to a 0 or 1 float64 value.
func BoolToFloat64(bv bool) float64 {
	if bv {
		return 1
	}
	return 0
}

// Float64ToBool converts a float64 to a bool, with 0 = false.
func Float64ToBool(val float64) bool {
	return val != 0
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Bool) String() string { return sprint(tsr, 40) }

func (tsr *Bool) IsString() bool { return false }

///////  Floats

func (tsr *Bool) Float(i ...int) float64 {
	return BoolToFloat64(tsr.Values[tsr.Shp.Offset(i...)])
}

func (tsr *Bool) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.Shp.Offset(i...)] = Float64ToBool(val)
}

func (tsr *Bool) Float1D(i int) float64 {
	return BoolToFloat64(tsr.Values[i])
}

func (tsr *Bool) SetFloat1D(val float64, i int) {
	tsr.Values[i] = Float64ToBool(val)
}

func (tsr *Bool) FloatRowCell(row, cell int) float64 {
	_, sz := tsr.Shp.RowCellSize()
	return BoolToFloat64(tsr.Values[row*sz+cell])
}

func (tsr *Bool) SetFloatRowCell(val float64, row, cell int) {
	_, sz := tsr.Shp.RowCellSize()
	tsr.Values[row*sz+cell] = Float64ToBool(val)
}

///////  Strings

func (tsr *Bool) StringValue(i ...int) string {
	return strconv.FormatBool(tsr.Values[tsr.Shp.Offset(i...)])
}

func (tsr *Bool) SetString(val string, i ...int) {
	if bv, err := strconv.ParseBool(val); err == nil {
		tsr.Values[tsr.Shp.Offset(i...)] = bv
	}
}

func (tsr *Bool) String1D(i int) string {
	return strconv.FormatBool(tsr.Values[i])
}

func (tsr *Bool) SetString1D(val string, i int) {
	if bv, err := strconv.ParseBool(val); err == nil {
		tsr.Values[i] = bv
	}
}

func (tsr *Bool) StringRowCell(row, cell int) string {
	_, sz := tsr.Shp.RowCellSize()
	return strconv.FormatBool(tsr.Values[row*sz+cell])
}

func (tsr *Bool) SetStringRowCell(val string, row, cell int) {
	if bv, err := strconv.ParseBool(val); err == nil {
		_, sz := tsr.Shp.RowCellSize()
		tsr.Values[row*sz+cell] = bv
	}
}

///////  gonum mat.Matrix

// At is the gonum/mat.Matrix interface method for returning the
// float64 value at given row, column index.
func (tsr *Bool) At(i, j int) float64 {
	nd := tsr.NumDims()
	if nd < 2 {
		log.Println("tensor At gonum Matrix call made on Tensor with dims < 2")
		return 0
	}
	return tsr.Float(i, j)
}

// T is the gonum/mat.Matrix transpose method.
func (tsr *Bool) T() mat.Matrix {
	return mat.Transpose{Matrix: tsr}
}

// Clone returns a copy of this tensor, with its own separate memory.
func (tsr *Bool) Clone() Tensor {
	csr := &Bool{}
	csr.Shp.CopyShape(&tsr.Shp)
	csr.Values = cloneValues(tsr.Values)
	return csr
}
