// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweeplab/sweepcube/table"
	"github.com/sweeplab/sweepcube/tensor"
)

// sweepCSV returns a 3 x 4 cross product over columns a and b with
// v = a + b, a constant model column, and optionally a distinct-valued
// extra column, in a scrambled row order.
func sweepCSV(extra bool) string {
	var sb strings.Builder
	if extra {
		sb.WriteString("model,extra,a,b,v\n")
	} else {
		sb.WriteString("model,a,b,v\n")
	}
	ei := 0
	for _, a := range []int{3, 1, 2} {
		for _, b := range []float64{0.2, 0.1, 0.4, 0.3} {
			ei++
			if extra {
				fmt.Fprintf(&sb, "m1,%d,%d,%g,%g\n", ei, a, b, float64(a)+b)
			} else {
				fmt.Fprintf(&sb, "m1,%d,%g,%g\n", a, b, float64(a)+b)
			}
		}
	}
	return sb.String()
}

func TestCrossProduct(t *testing.T) {
	cb, err := ReadCSV(strings.NewReader(sweepCSV(false)), table.ReadOptions{})
	require.NoError(t, err)

	// a (3 distinct) sorts before b (4 distinct)
	assert.Equal(t, []string{"a", "b"}, cb.AxisNames())
	assert.Equal(t, []int{3, 4}, cb.Shape())
	assert.Equal(t, []string{"v"}, cb.VarNames())

	// axis values are ascending
	av := cb.Axes[0].Values
	bv := cb.Axes[1].Values
	assert.Equal(t, []int{1, 2, 3}, av.(*tensor.Int).Values)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, bv.(*tensor.Float64).Values)

	// each grid cell holds the v value of the matching (a, b) row
	v := cb.Var("v")
	assert.Equal(t, []string{"a", "b"}, v.Shape().Names)
	for ai := 0; ai < 3; ai++ {
		for bi := 0; bi < 4; bi++ {
			want := av.Float1D(ai) + bv.Float1D(bi)
			assert.Equal(t, want, v.Float(ai, bi))
		}
	}

	// constant column is metadata, not a coordinate or variable
	assert.Equal(t, "m1", cb.Meta["model"])
}

func TestConstantExtraction(t *testing.T) {
	// constant column position does not matter
	csvData := "a,c,v\n1,42,5\n2,42,6\n"
	cb, err := ReadCSV(strings.NewReader(csvData), table.ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cb.AxisNames())
	assert.Equal(t, []string{"v"}, cb.VarNames())
	assert.Equal(t, 42, cb.Meta["c"])
}

func TestInvalidShape(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("x,y\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, "%d,%d\n", i%2, i%3)
	}
	cb, err := ReadCSV(strings.NewReader(sb.String()), table.ReadOptions{})
	assert.Nil(t, cb)
	var ise *InvalidShapeError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 10, ise.Rows)
	assert.Equal(t, []string{"x", "y"}, ise.Columns)
	assert.Equal(t, []int{2, 3}, ise.Cardinalities)
	assert.Contains(t, err.Error(), "SkipColumns")
}

func TestTieBreakStability(t *testing.T) {
	// equal cardinalities keep the original column order: b before a
	csvData := "b,a,v\n0,x,1\n0,y,2\n1,x,3\n1,y,4\n"
	cb, err := ReadCSV(strings.NewReader(csvData), table.ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, cb.AxisNames())
	v := cb.Var("v")
	assert.Equal(t, 1.0, v.Float(0, 0))
	assert.Equal(t, 2.0, v.Float(0, 1))
	assert.Equal(t, 3.0, v.Float(1, 0))
	assert.Equal(t, 4.0, v.Float(1, 1))
}

func TestSkipColumns(t *testing.T) {
	withExtra, err := ReadCSV(strings.NewReader(sweepCSV(true)), table.ReadOptions{
		SkipColumns: []string{"extra"},
	})
	require.NoError(t, err)
	without, err := ReadCSV(strings.NewReader(sweepCSV(false)), table.ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, without.AxisNames(), withExtra.AxisNames())
	assert.Equal(t, without.VarNames(), withExtra.VarNames())
	assert.Equal(t, map[string]any(without.Meta), map[string]any(withExtra.Meta))
	wv := without.Var("v").(*tensor.Float64)
	ev := withExtra.Var("v").(*tensor.Float64)
	assert.Equal(t, wv.Values, ev.Values)
}

func TestDuplicateTuple(t *testing.T) {
	csvData := "a,b,v\n1,1,5\n1,2,6\n2,1,7\n2,1,8\n"
	cb, err := ReadCSV(strings.NewReader(csvData), table.ReadOptions{})
	assert.Nil(t, cb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate coordinate tuple")
}

func TestFromTable(t *testing.T) {
	dt := table.NewTable()
	a := dt.AddIntColumn("a")
	v := dt.AddFloat64Column("v")
	dt.SetNumRows(3)
	for i := 0; i < 3; i++ {
		a.SetFloat1D(float64(i), i)
		v.SetFloat1D(float64(i)*10, i)
	}
	cb, err := FromTable(dt)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cb.AxisNames())
	assert.Equal(t, 20.0, cb.Var("v").Float1D(2))
}

func TestOpenCSV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, os.WriteFile(fn, []byte(sweepCSV(false)), 0666))
	cb, err := OpenCSV(fn, table.ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, cb.Shape())

	_, err = OpenCSV(filepath.Join(t.TempDir(), "missing.csv"), table.ReadOptions{})
	assert.Error(t, err)
}
