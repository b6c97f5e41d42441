// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadata(t *testing.T) {
	var md Data
	md.Set("count", 5)
	md.SetName("test")

	v, err := Get[int](md, "count")
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, "test", md.GetName())

	_, err = Get[string](md, "count")
	assert.Error(t, err)
	_, err = Get[int](md, "missing")
	assert.Error(t, err)

	var cp Data
	cp.Copy(md)
	assert.Equal(t, md, cp)
}
