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

package table

import (
	"fmt"
	"strconv"

	"github.com/stockparfait/yahoo/finance"
)

// FieldRow is a name-value pair, such as a quote field.
type FieldRow struct {
	Name  string
	Value finance.Value
}

var _ Row = FieldRow{}

// FieldRowHeader is the header for FieldRow tables.
func FieldRowHeader() []string {
	return []string{"Field", "Value"}
}

// FormatValue prints a flattened value. Numbers are printed in full, without
// an exponent.
func FormatValue(v finance.Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

func (r FieldRow) CSV() []string {
	return []string{r.Name, FormatValue(r.Value)}
}

// QuoteRows lists all the fields of the quote in ascending order of names.
func QuoteRows(q finance.QuoteRecord) []Row {
	keys := q.Keys()
	rows := make([]Row, len(keys))
	for i, k := range keys {
		rows[i] = FieldRow{Name: k, Value: q.Fields[k]}
	}
	return rows
}

// SummaryRows lists the statistics of a historic series.
func SummaryRows(s finance.Summary) []Row {
	date := func(p int, t string) finance.Value {
		if p == 0 {
			return nil
		}
		return t
	}
	return []Row{
		FieldRow{"Points", float64(s.Points)},
		FieldRow{"First", date(s.Points, s.First.Format("2006-01-02"))},
		FieldRow{"Last", date(s.Points, s.Last.Format("2006-01-02"))},
		FieldRow{"Min Low", fmt.Sprintf("%.2f", s.MinLow)},
		FieldRow{"Max High", fmt.Sprintf("%.2f", s.MaxHigh)},
		FieldRow{"Mean Close", fmt.Sprintf("%.2f", s.MeanClose)},
		FieldRow{"StdDev Close", fmt.Sprintf("%.2f", s.StdDevClose)},
		FieldRow{"Mean Log Return", fmt.Sprintf("%.5f", s.MeanLogReturn)},
	}
}

// HistoricRow is a table row of a historic series.
type HistoricRow finance.HistoricPoint

var _ Row = HistoricRow{}

// HistoricRowHeader is the header for HistoricRow tables.
func HistoricRowHeader() []string {
	return []string{"Date", "Open", "High", "Low", "Close", "Adj Close"}
}

func (r HistoricRow) CSV() []string {
	return []string{
		finance.HistoricPoint(r).Time().Format("2006-01-02"),
		fmt.Sprintf("%.2f", r.Open),
		fmt.Sprintf("%.2f", r.High),
		fmt.Sprintf("%.2f", r.Low),
		fmt.Sprintf("%.2f", r.Close),
		fmt.Sprintf("%.2f", r.AdjClose),
	}
}

// SymbolRow is a single ticker symbol.
type SymbolRow string

var _ Row = SymbolRow("")

// SymbolRowHeader is the header for SymbolRow tables.
func SymbolRowHeader() []string {
	return []string{"Symbol"}
}

func (r SymbolRow) CSV() []string {
	return []string{string(r)}
}
