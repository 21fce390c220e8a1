// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table renders rows of finance records as aligned text or CSV.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Row interface that a table row representation must implement.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// Table container.
//
// A typical use:
//
//	t := NewTable(HistoricRowHeader()...)
//	t.AddRow(HistoricRow(p))
//	err := t.Write(os.Stdout, Params{})
type Table struct {
	Header []string // optional, may be nil
	Rows   []Row
}

// NewTable creates a new Table instance with optional column headers. When
// present, the number of column headers must match the size of each Row.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int   // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool  // whether to print the header, default - yes
	CSV         bool  // Write in CSV format instead of text
	MaxColWidth int   // for text only; 0 = unlimited, otherwise must be >= 4
	Left        []int // for text only: left-aligned columns; default - right
}

func (p Params) header(t *Table) []string {
	if p.NoHeader || len(t.Header) == 0 {
		return nil
	}
	return t.Header
}

// rows returns the CSV representation of the rows to write.
func (p Params) rows(t *Table) [][]string {
	n := len(t.Rows)
	if p.Rows > 0 && p.Rows < n {
		n = p.Rows
	}
	res := make([][]string, n)
	for i := range res {
		res[i] = t.Rows[i].CSV()
	}
	return res
}

func (p Params) left(col int) bool {
	for _, c := range p.Left {
		if c == col {
			return true
		}
	}
	return false
}

// Write the table in the format selected by p.CSV.
func (t *Table) Write(w io.Writer, p Params) error {
	if p.CSV {
		return t.WriteCSV(w, p)
	}
	return t.WriteText(w, p)
}

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	if h := p.header(t); h != nil {
		if err := cw.Write(h); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
	}
	for _, r := range p.rows(t) {
		if err := cw.Write(r); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// columnWidths computes the width of each column, capped at maxWidth if it's
// positive. All rows must have the same non-zero size.
func columnWidths(rows [][]string, maxWidth int) ([]int, error) {
	var widths []int
	for _, row := range rows {
		if len(row) == 0 {
			return nil, errors.Reason("row size = 0")
		}
		if widths == nil {
			widths = make([]int, len(row))
		}
		if len(row) != len(widths) {
			return nil, errors.Reason("row size [%d] != expected size [%d]",
				len(row), len(widths))
		}
		for i, s := range row {
			if n := len([]rune(s)); widths[i] < n {
				widths[i] = n
			}
			if maxWidth > 0 && widths[i] > maxWidth {
				widths[i] = maxWidth
			}
		}
	}
	return widths, nil
}

// WriteText writes the table as a text formatted for ease of reading.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	header := p.header(t)
	rows := p.rows(t)
	all := rows
	if header != nil {
		all = append([][]string{header}, rows...)
	}
	widths, err := columnWidths(all, p.MaxColWidth)
	if err != nil {
		return errors.Annotate(err, "failed to compute column widths")
	}

	write := func(row []string) error {
		cells := make([]string, len(row))
		for i, s := range row {
			if r := []rune(s); len(r) > widths[i] {
				s = string(r[:widths[i]-2]) + ".."
			}
			if p.left(i) {
				cells[i] = fmt.Sprintf("%-[2]*[1]s", s, widths[i])
			} else {
				cells[i] = fmt.Sprintf("%[2]*[1]s", s, widths[i])
			}
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(strings.Join(cells, " | "), " "))
		return err
	}

	if header != nil {
		if err := write(header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
		dashes := make([]string, len(widths))
		for i, n := range widths {
			dashes[i] = strings.Repeat("-", n)
		}
		if err := write(dashes); err != nil {
			return errors.Annotate(err, "failed to write header separator")
		}
	}
	for _, r := range rows {
		if err := write(r); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}
