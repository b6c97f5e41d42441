// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/sweeplab/sweepcube/base/errors"
	"github.com/sweeplab/sweepcube/tensor"
)

// Delims are standard CSV delimiter options (Comma, Tab, Space).
type Delims int32

const (
	// Comma is the comma rune delimiter, for CSV comma separated
	// values. This is the default.
	Comma Delims = iota

	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab

	// Space is the space rune delimiter, for SSV space separated values.
	Space
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Space:
		return ' '
	}
	return ','
}

// ReadOptions are options for reading CSV data into a Table.
// The zero value reads a comma-separated file whose first row
// is the header row.
type ReadOptions struct {
	// Delim is the field delimiter (default Comma).
	Delim Delims

	// SkipRows is the number of leading file rows to ignore before
	// the header row, for files with a fixed preamble block.
	SkipRows int

	// SkipColumns are names of columns to exclude from the table.
	SkipColumns []string

	// MaxRows limits the number of data rows read when > 0.
	MaxRows int
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the
// official CSV standard. The first row is the header row, and column
// types are inferred from the data values.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	return dt.OpenCSVOptions(filename, ReadOptions{Delim: delim})
}

// OpenCSVOptions is the version of [Table.OpenCSV] that takes the
// full set of [ReadOptions].
func (dt *Table) OpenCSVOptions(filename string, opts ReadOptions) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSVOptions(bufio.NewReader(fp), opts)
}

// ReadCSV reads a table from the given reader,
// see [Table.OpenCSV] for details.
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	return dt.ReadCSVOptions(r, ReadOptions{Delim: delim})
}

// ReadCSVOptions reads a table from the given reader according to the
// given [ReadOptions]. Any existing columns are removed first.
// Rows before the header row can be ragged relative to the header;
// CSV syntax errors otherwise propagate from encoding/csv unmodified.
func (dt *Table) ReadCSVOptions(r io.Reader, opts ReadOptions) error {
	cr := csv.NewReader(r)
	cr.Comma = opts.Delim.Rune()
	cr.FieldsPerRecord = -1 // skipped preamble rows need not align
	rec, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if opts.SkipRows >= len(rec) {
		return fmt.Errorf("table: no header row in input after skipping %d rows", opts.SkipRows)
	}
	rec = rec[opts.SkipRows:]
	hdrs := rec[0]
	data := rec[1:]
	if opts.MaxRows > 0 && len(data) > opts.MaxRows {
		data = data[:opts.MaxRows]
	}
	skip := make(map[string]bool, len(opts.SkipColumns))
	for _, sc := range opts.SkipColumns {
		skip[sc] = true
	}
	dt.DeleteAll()
	type colRef struct {
		ci  int
		tsr tensor.Tensor
	}
	var cols []colRef
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if skip[hd] {
			continue
		}
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		if dt.Columns.IndexByKey(hd) >= 0 { // mangle duplicate headers
			hd = fmt.Sprintf("%s_%d", hd, ci)
		}
		tsr := dt.AddColumnOfType(InferColumnType(data, ci), hd)
		cols = append(cols, colRef{ci: ci, tsr: tsr})
	}
	dt.SetNumRows(len(data))
	nan := math.NaN()
	for ri, rw := range data {
		for _, cl := range cols {
			if cl.ci >= len(rw) {
				continue
			}
			str := strings.TrimSpace(rw[cl.ci])
			if !cl.tsr.IsString() && missingValue(str) {
				cl.tsr.SetFloat1D(nan, ri)
			} else {
				cl.tsr.SetString1D(str, ri)
			}
		}
	}
	return nil
}

// ReadHeaders reads only the header (first) row from the given reader,
// returning the column names without reading any data rows.
func ReadHeaders(r io.Reader, delim Delims) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	hdrs, err := cr.Read()
	if err != nil {
		return nil, err
	}
	for i, hd := range hdrs {
		hdrs[i] = strings.TrimSpace(hd)
	}
	return hdrs, nil
}

// missingValue returns true for cell values representing a missing
// numeric value, stored as NaN.
func missingValue(str string) bool {
	switch str {
	case "", "NaN", "-NaN", "Inf", "-Inf":
		return true
	}
	return false
}

// InferColumnType infers the data type of column ci from the string
// representation of the given records: int generalizes to float64,
// any other mixture generalizes to string. Missing cells in an int
// column promote it to float64 (NaN representable), and in a bool
// column to string.
func InferColumnType(rec [][]string, ci int) reflect.Kind {
	typ := reflect.Invalid
	missing := false
	for _, rw := range rec {
		if ci >= len(rw) {
			missing = true
			continue
		}
		str := strings.TrimSpace(rw[ci])
		if missingValue(str) {
			missing = true
			continue
		}
		ct := InferDataType(str)
		switch {
		case typ == reflect.Invalid:
			typ = ct
		case typ == ct:
		case (typ == reflect.Int && ct == reflect.Float64) || (typ == reflect.Float64 && ct == reflect.Int):
			typ = reflect.Float64
		default:
			return reflect.String
		}
	}
	if typ == reflect.Invalid {
		return reflect.String
	}
	if missing {
		switch typ {
		case reflect.Int:
			typ = reflect.Float64
		case reflect.Bool:
			typ = reflect.String
		}
	}
	return typ
}

// InferDataType returns the inferred data type for the given string:
// one of Int, Float64, Bool, or String.
func InferDataType(str string) reflect.Kind {
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return reflect.Int
	}
	if _, err := strconv.ParseFloat(str, 64); err == nil {
		return reflect.Float64
	}
	if _, err := strconv.ParseBool(str); err == nil {
		return reflect.Bool
	}
	return reflect.String
}

//////// WriteCSV

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// with a plain header row of column names followed by the data.
func (dt *Table) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim)
	bw.Flush()
	return err
}

// WriteCSV writes a table to the given writer,
// see [Table.SaveCSV] for details.
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write(dt.ColumnNames()); err != nil {
		return err
	}
	nc := dt.NumColumns()
	rec := make([]string, nc)
	for ri := 0; ri < dt.NumRows(); ri++ {
		for ci := 0; ci < nc; ci++ {
			rec[ci] = dt.ColumnIndex(ci).String1D(ri)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
