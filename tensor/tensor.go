// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides n-dimensional tensors of string, numeric,
// and bool values, with named dimensions, serving as the building
// blocks for data tables and labeled data cubes.
package tensor

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// DataTypes are the primary tensor data types with specific support.
type DataTypes interface {
	string | bool | float32 | float64 | int
}

// Tensor is the interface for n-dimensional tensors.
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
// It is implemented by the [Base] and [Number] generic types
// specialized by different concrete types: float64, float32, int,
// string, and bool. For float values, NaN indicates missing values.
type Tensor interface {
	fmt.Stringer
	mat.Matrix

	// Label satisfies the Labeler interface for a summary
	// description of the tensor.
	Label() string

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// SetShape sets the sizes parameters of the tensor, and resizes
	// backing storage appropriately, retaining all existing data that fits.
	SetShape(sizes []int, names ...string)

	// SetNames sets the dimension names of the tensor shape.
	SetNames(names ...string)

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// RowCellSize returns the size of the outermost Row shape dimension,
	// and the size of all the remaining inner dimensions (the "cell" size).
	RowCellSize() (rows, cells int)

	// SetNumRows sets the number of rows (outermost dimension).
	SetNumRows(rows int)

	// DataType returns the type of the data elements in the tensor.
	DataType() reflect.Kind

	// IsString returns true if the data type is a String;
	// otherwise it is numeric.
	IsString() bool

	// Float returns the value of given n-dimensional index
	// (matching Shape) as a float64.
	Float(i ...int) float64

	// SetFloat sets the value of given n-dimensional index
	// (matching Shape) as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value of given 1-dimensional index
	// (0-Len()-1) as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional index
	// (0-Len()-1) as a float64.
	SetFloat1D(val float64, i int)

	// FloatRowCell returns the value at given row and cell, where row
	// is the outermost dimension, and cell is a 1D index into remaining
	// inner dimensions. Used extensively by the table package.
	FloatRowCell(row, cell int) float64

	// SetFloatRowCell sets the value at given row and cell.
	SetFloatRowCell(val float64, row, cell int)

	// StringValue returns the value of given n-dimensional index
	// (matching Shape) as a string. 'String' conflicts with
	// [fmt.Stringer], so we have to use StringValue here.
	StringValue(i ...int) string

	// SetString sets the value of given n-dimensional index
	// (matching Shape) as a string.
	SetString(val string, i ...int)

	// String1D returns the value of given 1-dimensional index as a string.
	String1D(i int) string

	// SetString1D sets the value of given 1-dimensional index as a string.
	SetString1D(val string, i int)

	// StringRowCell returns the value at given row and cell as a string.
	StringRowCell(row, cell int) string

	// SetStringRowCell sets the value at given row and cell as a string.
	SetStringRowCell(val string, row, cell int)

	// Clone returns a copy of this tensor, with its own separate memory.
	Clone() Tensor
}

// sprint returns a string representation of the given tensor,
// with a maximum number of values shown.
func sprint(tsr Tensor, maxLen int) string {
	str := tsr.Label()
	n := min(tsr.Len(), maxLen)
	for i := 0; i < n; i++ {
		str += " " + tsr.String1D(i)
	}
	if n < tsr.Len() {
		str += " ..."
	}
	return str
}
