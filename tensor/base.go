// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"log"
	"reflect"
	"slices"
)

// Base is the generic base for all tensors, providing the shape
// and the flat backing slice of values.
type Base[T any] struct {
	Shp    Shape
	Values []T
}

// Shape returns a pointer to the shape that fully parametrizes
// the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.Shp }

// Len returns the number of elements in the tensor
// (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.Shp.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.Shp.NumDims() }

// DimSize returns size of given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.Shp.DimSize(dim) }

// RowCellSize returns the size of the outer-most Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
// Used for tensors that are columns in a data table.
func (tsr *Base[T]) RowCellSize() (rows, cells int) {
	return tsr.Shp.RowCellSize()
}

// DataType returns the type of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

func (tsr *Base[T]) Value(i []int) T    { j := tsr.Shp.Offset(i...); return tsr.Values[j] }
func (tsr *Base[T]) Value1D(i int) T    { return tsr.Values[i] }
func (tsr *Base[T]) Set(i []int, val T) { j := tsr.Shp.Offset(i...); tsr.Values[j] = val }
func (tsr *Base[T]) Set1D(i int, val T) { tsr.Values[i] = val }

// SetShape sets the shape params, resizing backing storage appropriately.
func (tsr *Base[T]) SetShape(sizes []int, names ...string) {
	tsr.Shp.SetShape(sizes, names...)
	nln := tsr.Len()
	tsr.Values = setLength(tsr.Values, nln)
}

// SetNames sets the dimension names of the tensor shape.
func (tsr *Base[T]) SetNames(names ...string) {
	tsr.Shp.SetNames(names...)
}

// SetNumRows sets the number of rows (outer-most dimension) in a
// RowMajor organized tensor.
func (tsr *Base[T]) SetNumRows(rows int) {
	rows = max(1, rows) // must be > 0
	_, cells := tsr.Shp.RowCellSize()
	nln := rows * cells
	tsr.Shp.Sizes[0] = rows
	tsr.Shp.Strides = RowMajorStrides(tsr.Shp.Sizes)
	tsr.Values = setLength(tsr.Values, nln)
}

// Label satisfies the Labeler interface for a summary
// description of the tensor.
func (tsr *Base[T]) Label() string {
	return fmt.Sprintf("Tensor: %s", tsr.Shp.String())
}

// Dims is the gonum/mat.Matrix interface method for returning the
// dimensionality of the 2D Matrix. Assumes Row-major ordering and logs
// an error if NumDims < 2.
func (tsr *Base[T]) Dims() (r, c int) {
	nd := tsr.NumDims()
	if nd < 2 {
		log.Println("tensor Dims gonum Matrix call made on Tensor with dims < 2")
		return 0, 0
	}
	return tsr.Shp.DimSize(nd - 2), tsr.Shp.DimSize(nd - 1)
}

// setLength resizes the given slice to the target length,
// preserving existing values that fit.
func setLength[T any](s []T, n int) []T {
	if n == len(s) {
		return s
	}
	if n < len(s) {
		return s[:n]
	}
	return append(s, make([]T, n-len(s))...)
}

// cloneValues returns a copy of the values slice.
func cloneValues[T any](s []T) []T {
	return slices.Clone(s)
}
