// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweep infers a labeled multidimensional data cube from a
// flat, cartesian-product shaped table, such as a simulation
// parameter-sweep export.
//
// Columns are classified by the number of distinct values they take:
// working from the smallest cardinality upward, columns are selected
// as coordinate axes until the running product of their cardinalities
// equals the number of rows; remaining columns become variable data
// layers, and single-valued columns become metadata. This is a
// heuristic: it assumes coordinates have fewer distinct values than
// the measured outcomes, which may not hold if a model is not very
// dynamic and a large number of parameter values are swept.
package sweep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"

	"github.com/sweeplab/sweepcube/base/errors"
	"github.com/sweeplab/sweepcube/base/keylist"
	"github.com/sweeplab/sweepcube/table"
	"github.com/sweeplab/sweepcube/tensor"
)

// InvalidShapeError is returned when no prefix of the
// ascending-cardinality candidate coordinate columns has a
// cardinality product equal to the number of rows, so the table does
// not form a cross product. Excluding an extra column (one that is
// neither a swept parameter nor a measured outcome) via
// [table.ReadOptions.SkipColumns] usually resolves it.
type InvalidShapeError struct {
	// Rows is the number of data rows in the table.
	Rows int

	// Columns are the candidate coordinate columns considered
	// (cardinality > 1), in ascending cardinality order.
	Columns []string

	// Cardinalities are the distinct-value counts of Columns.
	Cardinalities []int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("sweep: %d rows do not match the cross product of any leading subset of the candidate coordinate columns %v (cardinalities %v); try excluding a column with SkipColumns", e.Rows, e.Columns, e.Cardinalities)
}

// colInfo holds the per-column classification state: the distinct
// value levels in first-seen order, and the level of each row.
type colInfo struct {
	index    int
	name     string
	tsr      tensor.Tensor
	card     int
	rowLevel []int // level index per row
	firstRow []int // first row at which each level occurs
}

// canonicalKey returns the canonical distinct-value key for the cell
// at the given row: the string value for string columns, and the
// full-precision float representation otherwise. FormatFloat 'g' -1
// round-trips, so distinct floats map to distinct keys.
func canonicalKey(tsr tensor.Tensor, row int) string {
	if tsr.IsString() {
		return tsr.String1D(row)
	}
	return tensor.Float64ToString(tsr.Float1D(row))
}

func newColInfo(index int, name string, tsr tensor.Tensor, rows int) *colInfo {
	ci := &colInfo{index: index, name: name, tsr: tsr}
	ci.rowLevel = make([]int, rows)
	lv := make(map[string]int, rows)
	for r := 0; r < rows; r++ {
		key := canonicalKey(tsr, r)
		li, ok := lv[key]
		if !ok {
			li = len(ci.firstRow)
			lv[key] = li
			ci.firstRow = append(ci.firstRow, r)
		}
		ci.rowLevel[r] = li
	}
	ci.card = len(ci.firstRow)
	return ci
}

// axisOrder returns the permutation of levels in ascending value
// order: numeric for numeric and bool columns, lexical for strings.
func (ci *colInfo) axisOrder() []int {
	ord := make([]int, ci.card)
	for i := range ord {
		ord[i] = i
	}
	if ci.tsr.IsString() {
		slices.SortStableFunc(ord, func(a, b int) int {
			av, bv := ci.tsr.String1D(ci.firstRow[a]), ci.tsr.String1D(ci.firstRow[b])
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		})
	} else {
		slices.SortStableFunc(ord, func(a, b int) int {
			av, bv := ci.tsr.Float1D(ci.firstRow[a]), ci.tsr.Float1D(ci.firstRow[b])
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		})
	}
	return ord
}

// scalarValue returns the cell at the given row as a typed scalar:
// string, bool, int, or float64 according to the column type.
func scalarValue(tsr tensor.Tensor, row int) any {
	switch tsr.DataType() {
	case reflect.String:
		return tsr.String1D(row)
	case reflect.Bool:
		return tsr.Float1D(row) != 0
	case reflect.Int:
		return int(tsr.Float1D(row))
	default:
		return tsr.Float1D(row)
	}
}

// FromTable classifies the columns of the given table and builds the
// labeled [Cube]: columns are stably ordered by ascending cardinality
// (ties keep original column order) and greedily selected as
// coordinates while the running cardinality product is less than the
// number of rows; the remaining multi-valued columns become variable
// layers, and single-valued columns are recorded in Cube.Meta using
// their row 0 value (which is trusted, not re-verified, to be
// constant across all rows).
//
// Returns [InvalidShapeError] if the running product never equals the
// number of rows exactly. A duplicate coordinate tuple also fails:
// with the product equal to the row count, a duplicate implies a
// missing cell elsewhere.
func FromTable(dt *table.Table) (*Cube, error) {
	rows := dt.NumRows()
	nc := dt.NumColumns()
	cols := make([]*colInfo, nc)
	for i := range cols {
		cols[i] = newColInfo(i, dt.ColumnName(i), dt.ColumnIndex(i), rows)
	}
	slices.SortStableFunc(cols, func(a, b *colInfo) int { return a.card - b.card })

	cum := 1
	valid := false
	var coords, vars, consts []*colInfo
	for _, ci := range cols {
		switch {
		case ci.card == 1:
			consts = append(consts, ci)
		case cum < rows:
			coords = append(coords, ci)
			cum *= ci.card
			if cum == rows {
				valid = true
			}
		default:
			vars = append(vars, ci)
		}
	}
	if !valid {
		e := &InvalidShapeError{Rows: rows}
		for _, ci := range cols {
			if ci.card > 1 {
				e.Columns = append(e.Columns, ci.name)
				e.Cardinalities = append(e.Cardinalities, ci.card)
			}
		}
		return nil, e
	}

	nd := len(coords)
	sizes := make([]int, nd)
	names := make([]string, nd)
	axes := make([]Axis, nd)
	axisPos := make([][]int, nd) // level -> axis position
	for d, ci := range coords {
		ord := ci.axisOrder()
		pos := make([]int, ci.card)
		vals := tensor.NewOfType(ci.tsr.DataType(), ci.card)
		for p, l := range ord {
			pos[l] = p
			tensor.CopyCell(vals, p, ci.tsr, ci.firstRow[l])
		}
		axisPos[d] = pos
		axes[d] = Axis{Name: ci.name, Values: vals}
		sizes[d] = ci.card
		names[d] = ci.name
	}
	shp := tensor.NewShape(sizes, names...)

	cb := &Cube{Axes: axes, Vars: keylist.New[string, tensor.Tensor]()}
	layers := make([]tensor.Tensor, len(vars))
	for i, ci := range vars {
		lay := tensor.NewOfType(ci.tsr.DataType(), sizes...)
		lay.SetNames(names...)
		layers[i] = lay
		cb.Vars.Add(ci.name, lay)
	}

	seen := make([]bool, shp.Len())
	idx := make([]int, nd)
	for r := 0; r < rows; r++ {
		for d, ci := range coords {
			idx[d] = axisPos[d][ci.rowLevel[r]]
		}
		off := shp.Offset(idx...)
		if seen[off] {
			return nil, fmt.Errorf("sweep: duplicate coordinate tuple at row %d: rows do not form a cross product", r)
		}
		seen[off] = true
		for i, ci := range vars {
			tensor.CopyCell(layers[i], off, ci.tsr, r)
		}
	}

	for _, ci := range consts {
		cb.Meta.Set(ci.name, scalarValue(ci.tsr, 0))
	}
	return cb, nil
}

// ReadCSV reads cartesian-product shaped CSV data from the given
// reader according to the given options and builds a [Cube] from it,
// see [FromTable] for the classification. Reader and CSV errors
// propagate unmodified.
func ReadCSV(r io.Reader, opts table.ReadOptions) (*Cube, error) {
	dt := table.NewTable()
	if err := dt.ReadCSVOptions(r, opts); err != nil {
		return nil, err
	}
	return FromTable(dt)
}

// OpenCSV reads a cartesian-product shaped CSV file and builds a
// [Cube] from it, see [ReadCSV].
func OpenCSV(filename string, opts table.ReadOptions) (*Cube, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), opts)
}
