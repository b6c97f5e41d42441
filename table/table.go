// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a Table of Tensor columns aligned by a common
// outermost row dimension, with CSV reading and writing.
package table

import (
	"fmt"
	"reflect"

	"github.com/sweeplab/sweepcube/base/keylist"
	"github.com/sweeplab/sweepcube/base/metadata"
	"github.com/sweeplab/sweepcube/tensor"
)

// Columns is the underlying column list and number of rows for Table.
type Columns struct {
	keylist.List[string, tensor.Tensor]

	// Rows is the number of rows, which is enforced to be the size of
	// the outermost row dimension of the column tensors.
	Rows int
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// SetNumRows sets the number of rows in the table, across all columns.
// The effective number of rows in the tensors is at least 1,
// as the row dimension cannot be 0.
func (cl *Columns) SetNumRows(rows int) {
	cl.Rows = rows
	for _, tsr := range cl.Values {
		tsr.SetNumRows(rows)
	}
}

// AddColumn adds the given tensor (as the outermost row dimension)
// as a column, returning an error and not adding if the name is not
// unique. The tensor is resized to the current number of rows.
func (cl *Columns) AddColumn(name string, tsr tensor.Tensor) error {
	err := cl.Add(name, tsr)
	if err != nil {
		return err
	}
	tsr.SetNumRows(cl.Rows)
	return nil
}

// Clone returns a complete copy of the columns.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns()
	cp.Rows = cl.Rows
	for i, nm := range cl.Keys {
		cp.AddColumn(nm, cl.Values[i].Clone())
	}
	return cp
}

// Table is a table of Tensor columns aligned by a common outermost
// row dimension, with associated metadata.
type Table struct {
	// Columns has the list of column tensor data for this table.
	Columns *Columns

	// Meta is misc metadata for the table, including any constant
	// per-column values extracted during cube classification.
	Meta metadata.Data
}

// NewTable returns a new Table with its own (empty) set of Columns.
// Can pass an optional name which sets metadata.
func NewTable(name ...string) *Table {
	dt := &Table{}
	dt.Columns = NewColumns()
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.Columns.Rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the tensor with given column name.
// Returns nil if not found.
func (dt *Table) Column(name string) tensor.Tensor {
	return dt.Columns.ValueByKey(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (tensor.Tensor, error) {
	cl := dt.Column(name)
	if cl != nil {
		return cl, nil
	}
	return nil, fmt.Errorf("table.Table: column named %q not found", name)
}

// ColumnIndex returns the tensor at the given column index.
func (dt *Table) ColumnIndex(idx int) tensor.Tensor {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of given column.
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// ColumnNames returns the list of column names.
func (dt *Table) ColumnNames() []string {
	return dt.Columns.Keys
}

// AddColumn adds the given tensor as a column to the table,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the shape to fit the current number of rows.
func (dt *Table) AddColumn(name string, tsr tensor.Tensor) error {
	return dt.Columns.AddColumn(name, tsr)
}

// AddColumnOfType adds a new scalar column to the table of given
// reflect type and column name (which must be unique).
// Supported types include string, bool, float64, float32, and int.
func (dt *Table) AddColumnOfType(typ reflect.Kind, name string) tensor.Tensor {
	rows := max(1, dt.Columns.Rows)
	tsr := tensor.NewOfType(typ, rows)
	tsr.SetNames("Row")
	dt.AddColumn(name, tsr)
	return tsr
}

// AddColumn adds a new scalar column to the table, of given type and
// column name (which must be unique).
func AddColumn[T tensor.DataTypes](dt *Table, name string) tensor.Tensor {
	rows := max(1, dt.Columns.Rows)
	tsr := tensor.New[T](rows)
	tsr.SetNames("Row")
	dt.AddColumn(name, tsr)
	return tsr
}

// AddStringColumn adds a new String column with given name.
func (dt *Table) AddStringColumn(name string) *tensor.String {
	return AddColumn[string](dt, name).(*tensor.String)
}

// AddFloat64Column adds a new float64 column with given name.
func (dt *Table) AddFloat64Column(name string) *tensor.Float64 {
	return AddColumn[float64](dt, name).(*tensor.Float64)
}

// AddIntColumn adds a new int column with given name.
func (dt *Table) AddIntColumn(name string) *tensor.Int {
	return AddColumn[int](dt, name).(*tensor.Int)
}

// AddBoolColumn adds a new bool column with given name.
func (dt *Table) AddBoolColumn(name string) *tensor.Bool {
	return AddColumn[bool](dt, name).(*tensor.Bool)
}

// DeleteColumnName deletes column of given name.
// Returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Columns.Reset()
	dt.Columns.Rows = 0
}

// SetNumRows sets the number of rows in the table, across all columns.
func (dt *Table) SetNumRows(rows int) *Table {
	dt.Columns.SetNumRows(rows)
	return dt
}

// Clone returns a complete copy of this table, including cloning
// the underlying columns tensors.
func (dt *Table) Clone() *Table {
	cp := &Table{}
	cp.Columns = dt.Columns.Clone()
	cp.Meta.Copy(dt.Meta)
	return cp
}
