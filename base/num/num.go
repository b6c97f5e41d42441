// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num defines generic type constraints for numeric types.
package num

// Number is a type constraint for the numeric types supported
// by the tensor types.
type Number interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64 | ~byte
}
