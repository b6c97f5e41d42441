// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"log"
	"reflect"
)

// New returns a new n-dimensional tensor of given value type
// with the given sizes per dimension (shape).
func New[T DataTypes](sizes ...int) Tensor {
	var v T
	switch any(v).(type) {
	case string:
		return NewString(sizes...)
	case bool:
		return NewBool(sizes...)
	case float64:
		return NewNumber[float64](sizes...)
	case float32:
		return NewNumber[float32](sizes...)
	case int:
		return NewNumber[int](sizes...)
	default:
		panic("tensor.New: unexpected error: type not supported")
	}
}

// NewOfType returns a new n-dimensional tensor of given reflect.Kind
// type with the given sizes per dimension (shape).
// Supported types are string, bool, float64, float32, and int;
// any other type defaults to float64, with an error logged.
func NewOfType(typ reflect.Kind, sizes ...int) Tensor {
	switch typ {
	case reflect.String:
		return NewString(sizes...)
	case reflect.Bool:
		return NewBool(sizes...)
	case reflect.Float64:
		return NewNumber[float64](sizes...)
	case reflect.Float32:
		return NewNumber[float32](sizes...)
	case reflect.Int:
		return NewNumber[int](sizes...)
	default:
		log.Printf("tensor.NewOfType: type not supported: %v, using float64 instead\n", typ)
		return NewNumber[float64](sizes...)
	}
}

// CopyCell copies the cell value at the given 1D index from one tensor
// to another, using the string representation for string tensors and
// the float64 representation otherwise, preserving values across
// same-typed tensors.
func CopyCell(to Tensor, ti int, fm Tensor, fi int) {
	if fm.IsString() {
		to.SetString1D(fm.String1D(fi), ti)
	} else {
		to.SetFloat1D(fm.Float1D(fi), ti)
	}
}
