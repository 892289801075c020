// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"github.com/tealeg/xlsx"
)

// ReadXLSX reads a table from a sheet of an Excel workbook.
// If sheet is empty,
// the first sheet of the workbook will be used.
//
// The layout of the sheet is the same as a comma-delimited file:
// the first row is the header,
// and if index is true,
// the first column is the index column.
// Empty rows are ignored.
func ReadXLSX(name, sheet string, index bool) (*Table, error) {
	f, err := xlsx.OpenFile(name)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx file: %v", err)
	}

	var s *xlsx.Sheet
	if sheet == "" {
		if len(f.Sheets) == 0 {
			return nil, fmt.Errorf("workbook without sheets")
		}
		s = f.Sheets[0]
	} else {
		var ok bool
		s, ok = f.Sheet[sheet]
		if !ok {
			return nil, fmt.Errorf("no sheet %q", sheet)
		}
	}

	var b *builder
	for i, row := range s.Rows {
		if row == nil || len(row.Cells) == 0 {
			continue
		}
		vals := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			if c == nil {
				continue
			}
			vals[j] = c.Value
		}

		if b == nil {
			b, err = newBuilder(vals, index)
			if err != nil {
				return nil, fmt.Errorf("sheet %q: %v", s.Name, err)
			}
			continue
		}
		if err := b.add(vals); err != nil {
			return nil, fmt.Errorf("sheet %q: on row %d: %v", s.Name, i+1, err)
		}
	}
	if b == nil {
		return nil, fmt.Errorf("sheet %q: expecting header", s.Name)
	}
	return b.table()
}
