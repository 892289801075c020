// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadCSV reads a table from a comma-delimited file.
//
// The first row must be the header with the column names.
// If index is true,
// the first column is read as the index column.
// Empty cells are read as zero.
//
// Here is an example file with an index column:
//
//	yr,k_1_l_1,k_1_l_2,k_2_l_1
//	2020,5.0,0.0,1.5
//	2025,3.0,0.0,2.5
func ReadCSV(r io.Reader, index bool) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}

	b, err := newBuilder(head, index)
	if err != nil {
		return nil, err
	}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if err := b.add(row); err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
	}
	return b.table()
}

// ReadFile reads a table from a file.
//
// Files with the ".xlsx" extension are read as Excel workbooks,
// any other file is read as a comma-delimited file.
// To read a particular sheet of a workbook,
// add the sheet name after a colon,
// for example "results.xlsx:capacity".
func ReadFile(name string, index bool) (*Table, error) {
	if path, sheet, ok := splitSheet(name); ok {
		t, err := ReadXLSX(path, sheet, index)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		return t, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadCSV(f, index)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

func splitSheet(name string) (path, sheet string, ok bool) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return name, "", true
	}
	i := strings.LastIndex(name, ":")
	if i < 0 {
		return name, "", false
	}
	if !strings.EqualFold(filepath.Ext(name[:i]), ".xlsx") {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

// WriteCSV writes a table as a comma-delimited file.
func (t *Table) WriteCSV(w io.Writer) error {
	tab := csv.NewWriter(w)

	header := make([]string, 0, len(t.names)+1)
	if t.index != "" {
		header = append(header, t.index)
	}
	header = append(header, t.names...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for r := 0; r < t.n; r++ {
		row := make([]string, 0, len(header))
		if t.index != "" {
			row = append(row, t.rows[r])
		}
		for _, col := range t.data {
			row = append(row, strconv.FormatFloat(col[r], 'g', -1, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// A builder accumulates the rows of a table
// as read from a file.
type builder struct {
	index bool
	head  []string
	rows  []string
	cols  [][]float64
}

func newBuilder(head []string, index bool) (*builder, error) {
	for len(head) > 0 && strings.TrimSpace(head[len(head)-1]) == "" {
		head = head[:len(head)-1]
	}
	if len(head) == 0 {
		return nil, fmt.Errorf("empty header")
	}

	h := make([]string, len(head))
	seen := make(map[string]bool, len(head))
	for i, s := range head {
		s = strings.TrimSpace(s)
		if seen[s] {
			return nil, fmt.Errorf("header: repeated column %q", s)
		}
		seen[s] = true
		h[i] = s
	}

	n := len(h)
	if index {
		n--
	}
	return &builder{
		index: index,
		head:  h,
		cols:  make([][]float64, n),
	}, nil
}

func (b *builder) add(row []string) error {
	first := 0
	if b.index {
		s := ""
		if len(row) > 0 {
			s = strings.TrimSpace(row[0])
		}
		b.rows = append(b.rows, s)
		first = 1
	}

	for i := range b.cols {
		name := b.head[i+first]
		s := ""
		if i+first < len(row) {
			s = strings.TrimSpace(row[i+first])
		}
		v := 0.0
		if s != "" {
			var err error
			v, err = strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("field %q: %q: %v", name, s, err)
			}
		}
		b.cols[i] = append(b.cols[i], v)
	}
	return nil
}

func (b *builder) table() (*Table, error) {
	rows := len(b.rows)
	if !b.index {
		rows = 0
		if len(b.cols) > 0 {
			rows = len(b.cols[0])
		}
	}

	index := ""
	names := b.head
	if b.index {
		index = b.head[0]
		if index == "" {
			index = "index"
		}
		names = b.head[1:]
	}

	t := New(index, rows, b.rows)
	for i, name := range names {
		if err := t.Add(name, b.cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}
