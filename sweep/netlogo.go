// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/sweeplab/sweepcube/base/errors"
	"github.com/sweeplab/sweepcube/table"
)

const (
	// NetLogoRunColumn is the run-index column in a NetLogo
	// BehaviorSpace table export, excluded from classification.
	NetLogoRunColumn = "[run number]"

	// netLogoHeaderRow is the file row holding the main table
	// header in a BehaviorSpace table export; rows above it are
	// the fixed preamble block.
	netLogoHeaderRow = 6
)

// MetadataKey is the Meta key under which the NetLogo preamble
// information is stored, as a []any of the preamble header cells and
// values followed by a map[string]string of the settings row.
const MetadataKey = "Metadata"

// OpenNetLogoTable reads a NetLogo BehaviorSpace table CSV file and
// returns the [Cube] built from it, see [ReadNetLogoTable].
func OpenNetLogoTable(filename string) (*Cube, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	return ReadNetLogoTable(bytes.NewReader(data))
}

// ReadNetLogoTable reads a NetLogo BehaviorSpace table CSV export
// from the given reader and returns the [Cube] built from it.
// The main table starts at file row 6, and the run-number column is
// excluded from classification. The fixed-position preamble (3 rows
// of model provenance under the first header row, then a settings
// key row and value row) is stored in Cube.Meta under [MetadataKey],
// alongside the per-column constants. The preamble layout is not
// validated: a file that does not match it yields truncated or
// nonsensical metadata rather than an error.
func ReadNetLogoTable(r io.Reader) (*Cube, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cb, err := ReadCSV(bytes.NewReader(data), table.ReadOptions{
		Delim:       table.Comma,
		SkipRows:    netLogoHeaderRow,
		SkipColumns: []string{NetLogoRunColumn},
	})
	if err != nil {
		return nil, err
	}
	info, err := netLogoMetadata(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	cb.Meta.Set(MetadataKey, info)
	return cb, nil
}

// netLogoMetadata parses the fixed-position preamble block: the cells
// of rows 0 through 3 in order, followed by a map of the row 4 keys
// to the row 5 values.
func netLogoMetadata(r io.Reader) ([]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // preamble rows are ragged
	recs := make([][]string, 0, netLogoHeaderRow)
	for len(recs) < netLogoHeaderRow {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	var info []any
	for ri := 0; ri < min(4, len(recs)); ri++ {
		for _, cell := range recs[ri] {
			info = append(info, cell)
		}
	}
	settings := map[string]string{}
	if len(recs) >= netLogoHeaderRow {
		keys, vals := recs[4], recs[5]
		for i, key := range keys {
			if i < len(vals) {
				settings[key] = vals[i]
			}
		}
	}
	info = append(info, settings)
	return info, nil
}
