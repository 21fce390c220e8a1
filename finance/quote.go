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
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// QuoteRequiredProperties must all be present in the first quote result.
var QuoteRequiredProperties = []string{
	"currency",
	"symbol",
	"fullExchangeName",
	"firstTradeDateMilliseconds",
	"exchangeTimezoneName",
	"regularMarketPrice",
	"priceHint",
}

// QuoteMultiDimensionalProperties must be present in the first quote result as
// objects carrying both a "raw" value and its "fmt" formatted string.
var QuoteMultiDimensionalProperties = []string{
	"fiftyTwoWeekLowChange",
	"fiftyTwoWeekHighChangePercent",
	"regularMarketDayRange",
	"regularMarketDayHigh",
	"fiftyTwoWeekHigh",
	"regularMarketPreviousClose",
	"fiftyTwoWeekHighChange",
	"marketCap",
	"regularMarketChange",
	"fiftyTwoWeekRange",
	"regularMarketVolume",
	"regularMarketDayLow",
}

// QuoteRecord is a flattened quote. The typed fields duplicate the required
// properties; Fields holds every flattened property under its original name.
type QuoteRecord struct {
	Currency                   string
	Symbol                     string
	FullExchangeName           string
	FirstTradeDateMilliseconds int64
	ExchangeTimezoneName       string
	RegularMarketPrice         float64
	PriceHint                  int
	Fields                     map[string]Value // string or float64 values
}

// Keys of the flattened fields in ascending order.
func (r *QuoteRecord) Keys() []string {
	keys := maps.Keys(r.Fields)
	slices.Sort(keys)
	return keys
}

// quoteResult returns the first element of quoteResponse.result as an object.
func quoteResult(tree Value) (map[string]interface{}, bool) {
	v, ok := firstElement(tree, "quoteResponse", "result")
	if !ok {
		return nil, false
	}
	return object(v)
}

// ValidateQuote checks the quote payload and reports the first violation.
func ValidateQuote(tree Value) error {
	res, ok := quoteResult(tree)
	if !ok {
		return ValidationError("Missing quoteResponse property")
	}
	for _, p := range QuoteRequiredProperties {
		if _, ok := res[p]; !ok {
			return ValidationError("Missing %s property", p)
		}
	}
	for _, p := range QuoteMultiDimensionalProperties {
		m, ok := object(res[p])
		if !ok {
			return ValidationError("Invalid sub-properties for %s", p)
		}
		_, hasRaw := m["raw"]
		_, hasFmt := m["fmt"]
		if !hasRaw || !hasFmt {
			return ValidationError("Invalid sub-properties for %s", p)
		}
	}
	return nil
}

// FlattenFields reduces a JSON object to scalar fields. Strings and numbers are
// copied verbatim, objects with a "raw" key are replaced by their raw value,
// and everything else (arrays, booleans, nulls, other objects) is omitted.
func FlattenFields(m map[string]interface{}) (map[string]Value, error) {
	res := make(map[string]Value, len(m))
	for k, v := range m {
		switch x := v.(type) {
		case string, float64:
			res[k] = x
		case map[string]interface{}:
			raw, ok := x["raw"]
			if !ok {
				continue
			}
			switch r := raw.(type) {
			case nil:
			case string, float64:
				res[k] = r
			default:
				return nil, TransformError(nil, "unsupported raw value type for %s: %T", k, raw)
			}
		}
	}
	return res, nil
}

// stringField is the string value of the field, or "" if it has another type.
func stringField(fields map[string]Value, name string) string {
	s, _ := fields[name].(string)
	return s
}

// numberField is the numeric value of the field, or 0 if it has another type.
func numberField(fields map[string]Value, name string) float64 {
	x, _ := fields[name].(float64)
	return x
}

// FlattenQuote converts a validated quote payload into a QuoteRecord. Fields
// holds every flattened property as is; the typed fields are filled in only
// when the property has the expected type, and are left zero otherwise.
func FlattenQuote(tree Value) (QuoteRecord, error) {
	var r QuoteRecord
	res, ok := quoteResult(tree)
	if !ok {
		return r, TransformError(nil, "quote result is not an object")
	}
	fields, err := FlattenFields(res)
	if err != nil {
		return r, err
	}
	r.Fields = fields
	r.Currency = stringField(fields, "currency")
	r.Symbol = stringField(fields, "symbol")
	r.FullExchangeName = stringField(fields, "fullExchangeName")
	r.ExchangeTimezoneName = stringField(fields, "exchangeTimezoneName")
	r.FirstTradeDateMilliseconds = int64(numberField(fields, "firstTradeDateMilliseconds"))
	r.RegularMarketPrice = numberField(fields, "regularMarketPrice")
	r.PriceHint = int(numberField(fields, "priceHint"))
	return r, nil
}

// TransformQuote decodes, validates and flattens a quote payload.
func TransformQuote(data string) (QuoteRecord, error) {
	tree, err := Decode(data)
	if err != nil {
		return QuoteRecord{}, err
	}
	if err := ValidateQuote(tree); err != nil {
		return QuoteRecord{}, err
	}
	return FlattenQuote(tree)
}

// QuoteOutput returns the quote data in the requested format: FormatRaw or
// FormatDict.
func QuoteOutput(data string, f Format) (Output[QuoteRecord], error) {
	return selectOutput(data, f, FormatDict, TransformQuote)
}

// JoinFields returns the comma-separated list of the requested fields which
// are also allowed, in the requested order.
func JoinFields(fields, allowed []string) string {
	ok := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		ok[f] = struct{}{}
	}
	var valid []string
	for _, f := range fields {
		if _, found := ok[f]; found {
			valid = append(valid, f)
		}
	}
	return strings.Join(valid, ",")
}
