// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"github.com/sweeplab/sweepcube/base/keylist"
	"github.com/sweeplab/sweepcube/base/metadata"
	"github.com/sweeplab/sweepcube/tensor"
)

// Axis is one coordinate dimension of a [Cube]. Values is a
// 1D tensor of the distinct coordinate values in ascending order
// (numeric order for numeric and bool columns, lexical for strings),
// with length equal to the column's cardinality.
type Axis struct {
	// Name is the source column name.
	Name string

	// Values are the distinct coordinate values, ascending.
	Values tensor.Tensor
}

// Cube is a labeled multidimensional container built from a
// cartesian-product shaped table: one axis per coordinate column and
// one same-shaped data layer per variable column, with constant
// columns recorded in Meta.
type Cube struct {
	// Axes are the coordinate dimensions, in ascending-cardinality
	// order of the source columns.
	Axes []Axis

	// Vars are the variable data layers by name. Each layer has
	// shape equal to the axis cardinalities, with dimension names
	// equal to the axis names.
	Vars *keylist.List[string, tensor.Tensor]

	// Meta holds the constant-column values (key = column name,
	// value = the column's row 0 value), plus any dialect metadata.
	Meta metadata.Data
}

// Shape returns the axis sizes of the cube.
func (cb *Cube) Shape() []int {
	sz := make([]int, len(cb.Axes))
	for i, ax := range cb.Axes {
		sz[i] = ax.Values.Len()
	}
	return sz
}

// NumDims returns the number of coordinate dimensions.
func (cb *Cube) NumDims() int { return len(cb.Axes) }

// AxisNames returns the names of the coordinate dimensions, in order.
func (cb *Cube) AxisNames() []string {
	nms := make([]string, len(cb.Axes))
	for i, ax := range cb.Axes {
		nms[i] = ax.Name
	}
	return nms
}

// AxisByName returns the axis with given name and its dimension
// index, or nil, -1 if not found.
func (cb *Cube) AxisByName(name string) (*Axis, int) {
	for i := range cb.Axes {
		if cb.Axes[i].Name == name {
			return &cb.Axes[i], i
		}
	}
	return nil, -1
}

// NumVars returns the number of variable data layers.
func (cb *Cube) NumVars() int { return cb.Vars.Len() }

// VarNames returns the names of the variable data layers, in order.
func (cb *Cube) VarNames() []string { return cb.Vars.Keys }

// Var returns the data layer with given variable name,
// or nil if not found.
func (cb *Cube) Var(name string) tensor.Tensor {
	return cb.Vars.ValueByKey(name)
}
