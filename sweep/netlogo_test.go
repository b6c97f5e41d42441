// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweeplab/sweepcube/base/metadata"
)

const netLogoCSV = `"BehaviorSpace results (NetLogo 6.2.0)"
"sweep-experiment"
"ants.nlogo"
"01/02/2023 10:15:32 -0500"
"min-pxcor","max-pxcor"
"-16","16"
"[run number]","alpha","beta","[step]","count"
"1","0.1","1","20","10.5"
"2","0.1","2","20","11.5"
"3","0.2","1","20","12.5"
"4","0.2","2","20","13.5"
`

func TestReadNetLogoTable(t *testing.T) {
	cb, err := ReadNetLogoTable(strings.NewReader(netLogoCSV))
	require.NoError(t, err)

	// run number column is excluded; alpha and beta form the grid
	assert.Equal(t, []string{"alpha", "beta"}, cb.AxisNames())
	assert.Equal(t, []int{2, 2}, cb.Shape())
	assert.Equal(t, []string{"count"}, cb.VarNames())

	v := cb.Var("count")
	assert.Equal(t, 10.5, v.Float(0, 0))
	assert.Equal(t, 11.5, v.Float(0, 1))
	assert.Equal(t, 12.5, v.Float(1, 0))
	assert.Equal(t, 13.5, v.Float(1, 1))

	// per-column constants are unaffected by the preamble parse
	assert.Equal(t, 20, cb.Meta["[step]"])

	info, err := metadata.Get[[]any](cb.Meta, MetadataKey)
	require.NoError(t, err)
	require.Equal(t, 5, len(info))
	assert.Equal(t, "BehaviorSpace results (NetLogo 6.2.0)", info[0])
	assert.Equal(t, "sweep-experiment", info[1])
	assert.Equal(t, "ants.nlogo", info[2])
	assert.Equal(t, "01/02/2023 10:15:32 -0500", info[3])
	assert.Equal(t, map[string]string{"min-pxcor": "-16", "max-pxcor": "16"}, info[4])
}

func TestOpenNetLogoTable(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "experiment-table.csv")
	require.NoError(t, os.WriteFile(fn, []byte(netLogoCSV), 0666))
	cb, err := OpenNetLogoTable(fn)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, cb.Shape())

	_, err = OpenNetLogoTable(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
