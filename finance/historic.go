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

package finance

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HistoricRequiredProperties must all be present and non-empty in
// chart.result[0].meta.
var HistoricRequiredProperties = []string{
	"currency",
	"symbol",
	"exchangeName",
	"instrumentType",
	"firstTradeDate",
	"timezone",
	"exchangeTimezoneName",
	"regularMarketPrice",
	"chartPreviousClose",
	"priceHint",
}

// indicatorGroup is a required group in chart.result[0].indicators along with
// the series required in its first element.
type indicatorGroup struct {
	Name   string
	Series []string
}

// HistoricIndicators lists the required indicator groups in the order they are
// checked.
var HistoricIndicators = []indicatorGroup{
	{Name: "quote", Series: []string{"low", "high", "volume", "close", "open"}},
	{Name: "adjclose", Series: []string{"adjclose"}},
}

// HistoricPoint is a single price sample of a historic series.
type HistoricPoint struct {
	Timestamp int64 // Unix seconds
	Open      float64
	Low       float64
	High      float64
	Close     float64
	AdjClose  float64
}

// Time of the sample in UTC.
func (p HistoricPoint) Time() time.Time {
	return time.Unix(p.Timestamp, 0).UTC()
}

// chartResult returns chart.result[0] as an object, or a validation error
// describing why it's not available.
func chartResult(tree Value) (map[string]interface{}, error) {
	chart, ok := lookup(tree, "chart")
	if !ok {
		return nil, ValidationError("Missing chart property")
	}
	v, ok := lookup(chart, "result")
	if !ok {
		return nil, ValidationError("Missing result property")
	}
	results, ok := array(v)
	if !ok || len(results) == 0 {
		return nil, ValidationError("Empty result property")
	}
	res, ok := object(results[0])
	if !ok {
		return nil, ValidationError("Empty result property")
	}
	return res, nil
}

// ValidateHistoric checks the chart payload and reports the first violation.
func ValidateHistoric(tree Value) error {
	res, err := chartResult(tree)
	if err != nil {
		return err
	}
	meta, ok := object(res["meta"])
	if !ok {
		return ValidationError("Missing meta property")
	}
	for _, p := range HistoricRequiredProperties {
		if !truthy(meta[p]) {
			return ValidationError("Missing %s property", p)
		}
	}
	indicators, ok := object(res["indicators"])
	if !ok {
		return ValidationError("Missing indicators property")
	}
	for _, g := range HistoricIndicators {
		first, ok := firstElement(indicators, g.Name)
		if !ok {
			return ValidationError("Missing %s property", g.Name)
		}
		series, ok := object(first)
		if !ok {
			return ValidationError("Missing %s property", g.Name)
		}
		for _, s := range g.Series {
			if !truthy(series[s]) {
				return ValidationError("Invalid sub-properties for %s", s)
			}
		}
	}
	return nil
}

// seriesAt returns the i-th element of a parallel series, or an error if the
// series is shorter than the timestamps.
func seriesAt(series []interface{}, name string, i int) (Value, error) {
	if i >= len(series) {
		return nil, TransformError(nil, "series %s has %d values, expected more than %d",
			name, len(series), i)
	}
	return series[i], nil
}

// FlattenHistoric zips the timestamps with the OHLC and adjusted close series of
// a validated chart payload. A point with a null in any of its prices is
// dropped. The source order is preserved.
func FlattenHistoric(tree Value) ([]HistoricPoint, error) {
	res, err := chartResult(tree)
	if err != nil {
		return nil, TransformError(err, "invalid chart result")
	}
	timestamps, ok := array(res["timestamp"])
	if !ok {
		return nil, TransformError(nil, "missing timestamp series")
	}
	quote, _ := firstElement(res, "indicators", "quote")
	adj, _ := firstElement(res, "indicators", "adjclose")
	names := []string{"open", "low", "high", "close"}
	series := make([][]interface{}, len(names)+1)
	for i, n := range names {
		v, _ := lookup(quote, n)
		if series[i], ok = array(v); !ok {
			return nil, TransformError(nil, "series %s is not an array", n)
		}
	}
	v, _ := lookup(adj, "adjclose")
	if series[len(names)], ok = array(v); !ok {
		return nil, TransformError(nil, "series adjclose is not an array")
	}
	names = append(names, "adjclose")

	points := []HistoricPoint{}
	prices := make([]float64, len(names))
	for i, ts := range timestamps {
		complete := true
		for j, s := range series {
			v, err := seriesAt(s, names[j], i)
			if err != nil {
				return nil, err
			}
			if v == nil {
				complete = false
				break
			}
			x, ok := v.(float64)
			if !ok {
				return nil, TransformError(nil, "%s[%d] is not a number: %v", names[j], i, v)
			}
			prices[j] = x
		}
		if !complete {
			continue
		}
		t, ok := ts.(float64)
		if !ok {
			return nil, TransformError(nil, "timestamp[%d] is not a number: %v", i, ts)
		}
		points = append(points, HistoricPoint{
			Timestamp: int64(t),
			Open:      prices[0],
			Low:       prices[1],
			High:      prices[2],
			Close:     prices[3],
			AdjClose:  prices[4],
		})
	}
	return points, nil
}

// TransformHistoric decodes, validates and flattens a chart payload.
func TransformHistoric(data string) ([]HistoricPoint, error) {
	tree, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateHistoric(tree); err != nil {
		return nil, err
	}
	return FlattenHistoric(tree)
}

// HistoricOutput returns the chart data in the requested format: FormatRaw or
// FormatDict.
func HistoricOutput(data string, f Format) (Output[[]HistoricPoint], error) {
	return selectOutput(data, f, FormatDict, TransformHistoric)
}

// Summary of a historic series.
type Summary struct {
	Points        int
	First         time.Time
	Last          time.Time
	MinLow        float64
	MaxHigh       float64
	MeanClose     float64
	StdDevClose   float64 // sample standard deviation; 0 for fewer than 2 points
	MeanLogReturn float64 // mean of log(close[i]/close[i-1])
}

// Summarize computes the Summary of the points. An empty series yields a zero
// Summary.
func Summarize(points []HistoricPoint) Summary {
	var s Summary
	if len(points) == 0 {
		return s
	}
	n := len(points)
	lows := make([]float64, n)
	highs := make([]float64, n)
	closes := make([]float64, n)
	for i, p := range points {
		lows[i] = p.Low
		highs[i] = p.High
		closes[i] = p.Close
	}
	s.Points = n
	s.First = points[0].Time()
	s.Last = points[n-1].Time()
	s.MinLow = floats.Min(lows)
	s.MaxHigh = floats.Max(highs)
	s.MeanClose = stat.Mean(closes, nil)
	if n < 2 {
		return s
	}
	s.StdDevClose = stat.StdDev(closes, nil)
	returns := make([]float64, n-1)
	for i := 1; i < n; i++ {
		returns[i-1] = math.Log(closes[i] / closes[i-1])
	}
	s.MeanLogReturn = stat.Mean(returns, nil)
	return s
}
