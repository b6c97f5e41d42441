// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleCSV = `name,count,score,flag
a,1,0.5,true
b,2,1.5,false
c,3,2.5,true
`

func TestReadCSV(t *testing.T) {
	dt := NewTable()
	err := dt.ReadCSV(strings.NewReader(simpleCSV), Comma)
	require.NoError(t, err)

	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, 4, dt.NumColumns())
	assert.Equal(t, []string{"name", "count", "score", "flag"}, dt.ColumnNames())

	assert.Equal(t, reflect.String, dt.Column("name").DataType())
	assert.Equal(t, reflect.Int, dt.Column("count").DataType())
	assert.Equal(t, reflect.Float64, dt.Column("score").DataType())
	assert.Equal(t, reflect.Bool, dt.Column("flag").DataType())

	assert.Equal(t, "b", dt.Column("name").String1D(1))
	assert.Equal(t, 3.0, dt.Column("count").Float1D(2))
	assert.Equal(t, 1.5, dt.Column("score").Float1D(1))
	assert.Equal(t, 1.0, dt.Column("flag").Float1D(0))
}

func TestReadCSVOptions(t *testing.T) {
	csvData := "preamble,only\nnote\nname,count\na,1\nb,2\nc,3\n"
	dt := NewTable()
	err := dt.ReadCSVOptions(strings.NewReader(csvData), ReadOptions{
		SkipRows:    2,
		SkipColumns: []string{"count"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, []string{"name"}, dt.ColumnNames())

	dt = NewTable()
	err = dt.ReadCSVOptions(strings.NewReader(csvData), ReadOptions{SkipRows: 2, MaxRows: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, dt.NumRows())
	assert.Equal(t, "a", dt.Column("name").String1D(0))

	dt = NewTable()
	err = dt.ReadCSVOptions(strings.NewReader(csvData), ReadOptions{SkipRows: 10})
	assert.Error(t, err)
}

func TestReadCSVMissing(t *testing.T) {
	csvData := "x,y\n1,2\n,4\n3,\n"
	dt := NewTable()
	err := dt.ReadCSV(strings.NewReader(csvData), Comma)
	require.NoError(t, err)

	// int columns with missing cells promote to float64 to hold NaN
	assert.Equal(t, reflect.Float64, dt.Column("x").DataType())
	assert.True(t, math.IsNaN(dt.Column("x").Float1D(1)))
	assert.True(t, math.IsNaN(dt.Column("y").Float1D(2)))
	assert.Equal(t, 3.0, dt.Column("x").Float1D(2))
}

func TestReadHeaders(t *testing.T) {
	hdrs, err := ReadHeaders(strings.NewReader(simpleCSV), Comma)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "count", "score", "flag"}, hdrs)
}

func TestWriteCSV(t *testing.T) {
	dt := NewTable()
	err := dt.ReadCSV(strings.NewReader(simpleCSV), Comma)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = dt.WriteCSV(&buf, Comma)
	require.NoError(t, err)

	rt := NewTable()
	err = rt.ReadCSV(&buf, Comma)
	require.NoError(t, err)
	assert.Equal(t, dt.NumRows(), rt.NumRows())
	assert.Equal(t, dt.ColumnNames(), rt.ColumnNames())
	assert.Equal(t, dt.Column("score").Float1D(2), rt.Column("score").Float1D(2))
	assert.Equal(t, dt.Column("name").String1D(0), rt.Column("name").String1D(0))
}

func TestDelims(t *testing.T) {
	tsv := "a\tb\n1\t2\n"
	dt := NewTable()
	err := dt.ReadCSV(strings.NewReader(tsv), Tab)
	require.NoError(t, err)
	assert.Equal(t, 1, dt.NumRows())
	assert.Equal(t, 2.0, dt.Column("b").Float1D(0))
}
