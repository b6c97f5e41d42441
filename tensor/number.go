// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"log"
	"strconv"

	"github.com/sweeplab/sweepcube/base/num"
	"gonum.org/v1/gonum/mat"
)

// Number is a tensor of numerical values.
type Number[T num.Number] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewFloat32 returns a new [Float32] tensor
// with the given sizes per dimension (shape).
func NewFloat32(sizes ...int) *Float32 {
	return NewNumber[float32](sizes...)
}

// NewInt returns a new [Int] tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int {
	return NewNumber[int](sizes...)
}

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T num.Number](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShape(sizes)
	return tsr
}

// Float64ToString converts float64 to string value using strconv, g format.
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// StringToFloat64 converts string value to float64 using strconv,
// returning 0 if any error.
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return 0
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Number[T]) String() string { return sprint(tsr, 40) }

func (tsr *Number[T]) IsString() bool { return false }

///////  Floats

func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Values[tsr.Shp.Offset(i...)])
}

func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.Shp.Offset(i...)] = T(val)
}

func (tsr *Number[T]) Float1D(i int) float64 {
	return float64(tsr.Values[i])
}

func (tsr *Number[T]) SetFloat1D(val float64, i int) {
	tsr.Values[i] = T(val)
}

func (tsr *Number[T]) FloatRowCell(row, cell int) float64 {
	_, sz := tsr.Shp.RowCellSize()
	return float64(tsr.Values[row*sz+cell])
}

func (tsr *Number[T]) SetFloatRowCell(val float64, row, cell int) {
	_, sz := tsr.Shp.RowCellSize()
	tsr.Values[row*sz+cell] = T(val)
}

///////  Strings

func (tsr *Number[T]) StringValue(i ...int) string {
	return Float64ToString(float64(tsr.Values[tsr.Shp.Offset(i...)]))
}

func (tsr *Number[T]) SetString(val string, i ...int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		tsr.Values[tsr.Shp.Offset(i...)] = T(fv)
	}
}

func (tsr *Number[T]) String1D(i int) string {
	return Float64ToString(float64(tsr.Values[i]))
}

func (tsr *Number[T]) SetString1D(val string, i int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		tsr.Values[i] = T(fv)
	}
}

func (tsr *Number[T]) StringRowCell(row, cell int) string {
	_, sz := tsr.Shp.RowCellSize()
	return Float64ToString(float64(tsr.Values[row*sz+cell]))
}

func (tsr *Number[T]) SetStringRowCell(val string, row, cell int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		_, sz := tsr.Shp.RowCellSize()
		tsr.Values[row*sz+cell] = T(fv)
	}
}

///////  gonum mat.Matrix

// At is the gonum/mat.Matrix interface method for returning the
// float64 value at given row, column index.
func (tsr *Number[T]) At(i, j int) float64 {
	nd := tsr.NumDims()
	if nd < 2 {
		log.Println("tensor At gonum Matrix call made on Tensor with dims < 2")
		return 0
	}
	return tsr.Float(i, j)
}

// T is the gonum/mat.Matrix transpose method.
// It performs an implicit transpose by returning the receiver inside a
// [mat.Transpose].
func (tsr *Number[T]) T() mat.Matrix {
	return mat.Transpose{Matrix: tsr}
}

// Clone returns a copy of this tensor, with its own separate memory.
func (tsr *Number[T]) Clone() Tensor {
	csr := &Number[T]{}
	csr.Shp.CopyShape(&tsr.Shp)
	csr.Values = cloneValues(tsr.Values)
	return csr
}
