// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Shape manages a tensor's shape information, including sizes,
// strides, and dimension names. Indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
type Shape struct {
	// Sizes is the size of each dimension.
	Sizes []int

	// Strides is the offset per dimension in the flat 1D values,
	// computed from Sizes in row-major order.
	Strides []int

	// Names are optional names of each dimension.
	Names []string
}

// NewShape returns a new shape with given sizes and optional
// dimension names.
func NewShape(sizes []int, names ...string) *Shape {
	sh := &Shape{}
	sh.SetShape(sizes, names...)
	return sh
}

// SetShape sets the shape sizes and optional names.
// RowMajor ordering is used by default.
func (sh *Shape) SetShape(sizes []int, names ...string) {
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sizes)
	sh.Names = make([]string, len(sizes))
	if len(names) == len(sizes) {
		copy(sh.Names, names)
	}
}

// SetNames sets the dimension names, which must match the
// number of dimensions (ignored otherwise).
func (sh *Shape) SetNames(names ...string) {
	if len(names) != len(sh.Sizes) {
		return
	}
	copy(sh.Names, names)
}

// CopyShape copies the shape parameters from another Shape struct,
// copying the data so it is not accidentally shared.
func (sh *Shape) CopyShape(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Strides = slices.Clone(cp.Strides)
	sh.Names = slices.Clone(cp.Names)
}

// Len returns the total length of elements in the tensor
// (product of dimension sizes).
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int { return sh.Sizes[i] }

// DimName returns the name of given dimension.
func (sh *Shape) DimName(i int) string { return sh.Names[i] }

// DimByName returns the index of the dimension with given name,
// and -1 if not found.
func (sh *Shape) DimByName(name string) int {
	for i, nm := range sh.Names {
		if nm == name {
			return i
		}
	}
	return -1
}

// RowCellSize returns the size of the outer-most Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
// Commonly used for tensors that are columns in a data table.
func (sh *Shape) RowCellSize() (rows, cells int) {
	rows = sh.Sizes[0]
	if len(sh.Sizes) == 1 {
		cells = 1
	} else {
		cells = sh.Len() / rows
	}
	return
}

// Offset returns the flat 1D index from given n-dimensional indexes.
// No checking is done on the length or size of the index values
// relative to the shape of the tensor.
func (sh *Shape) Offset(index ...int) int {
	off := 0
	for i, v := range index {
		off += v * sh.Strides[i]
	}
	return off
}

// Index returns the n-dimensional index from a flat 1D offset.
func (sh *Shape) Index(off int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := off
	for i := nd - 1; i >= 0; i-- {
		sz := sh.Sizes[i]
		index[i] = rem % sz
		rem /= sz
	}
	return index
}

// IndexIsValid returns true if given index is valid (within ranges
// for all dimensions).
func (sh *Shape) IndexIsValid(index ...int) bool {
	if len(index) != sh.NumDims() {
		return false
	}
	for i, v := range sh.Sizes {
		if index[i] < 0 || index[i] >= v {
			return false
		}
	}
	return true
}

// String satisfies the fmt.Stringer interface.
func (sh *Shape) String() string {
	str := "["
	for i := range sh.Sizes {
		nm := sh.Names[i]
		if nm != "" {
			str += nm + ": "
		}
		str += fmt.Sprintf("%d", sh.Sizes[i])
		if i < len(sh.Sizes)-1 {
			str += ", "
		}
	}
	str += "]"
	return str
}

// RowMajorStrides returns strides for sizes where the first dimension
// is outer-most and subsequent dimensions are progressively inner.
func RowMajorStrides(sizes []int) []int {
	rem := 1
	for _, v := range sizes {
		rem *= v
	}
	nd := len(sizes)
	strides := make([]int, nd)
	if rem == 0 {
		for i := range strides {
			strides[i] = rem
		}
		return strides
	}
	for i := range strides {
		rem /= sizes[i]
		strides[i] = rem
	}
	return strides
}
