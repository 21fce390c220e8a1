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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func quoteResultTree(tree Value) map[string]interface{} {
	return at(tree, "quoteResponse", "result", 0).(map[string]interface{})
}

func TestQuote(t *testing.T) {
	t.Parallel()

	Convey("ValidateQuote works", t, func() {
		tree := mustDecode(TestQuoteJSON)
		res := quoteResultTree(tree)

		Convey("for a valid payload", func() {
			So(ValidateQuote(tree), ShouldBeNil)
		})

		Convey("with extra fields in a multi-dimensional property", func() {
			res["fiftyTwoWeekLowChange"].(map[string]interface{})["longFmt"] = "53.320007"
			So(ValidateQuote(tree), ShouldBeNil)
		})

		Convey("for an empty object", func() {
			err := ValidateQuote(map[string]interface{}{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Missing quoteResponse property")
			So(IsValidation(err), ShouldBeTrue)
		})

		Convey("for an empty result", func() {
			err := ValidateQuote(mustDecode(`{"quoteResponse": {"result": [], "error": null}}`))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Missing quoteResponse property")
		})

		Convey("for a missing symbol", func() {
			delete(res, "symbol")
			err := ValidateQuote(tree)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Missing symbol property")
		})

		Convey("for each missing required property", func() {
			for _, p := range QuoteRequiredProperties {
				tree := mustDecode(TestQuoteJSON)
				delete(quoteResultTree(tree), p)
				err := ValidateQuote(tree)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "Missing "+p+" property")
			}
		})

		Convey("for the first violation only", func() {
			delete(res, "priceHint")
			delete(res, "currency")
			delete(res, "marketCap")
			So(ValidateQuote(tree).Error(), ShouldEqual, "Missing currency property")
		})

		Convey("for an empty multi-dimensional property", func() {
			res["fiftyTwoWeekLowChange"] = map[string]interface{}{}
			So(ValidateQuote(tree).Error(), ShouldEqual,
				"Invalid sub-properties for fiftyTwoWeekLowChange")
		})

		Convey("for a missing fmt sub-property", func() {
			res["regularMarketDayLow"] = map[string]interface{}{"raw": 173.18}
			So(ValidateQuote(tree).Error(), ShouldEqual,
				"Invalid sub-properties for regularMarketDayLow")
		})

		Convey("for a scalar multi-dimensional property", func() {
			res["marketCap"] = 2774914039808.0
			So(ValidateQuote(tree).Error(), ShouldEqual, "Invalid sub-properties for marketCap")
		})

		Convey("for a missing multi-dimensional property", func() {
			delete(res, "regularMarketDayLow")
			So(ValidateQuote(tree).Error(), ShouldEqual,
				"Invalid sub-properties for regularMarketDayLow")
		})
	})

	Convey("FlattenFields works", t, func() {
		Convey("for strings", func() {
			f, err := FlattenFields(map[string]interface{}{
				"fullExchangeName":          "NasdaqGS",
				"exchangeTimezoneShortName": "EDT",
			})
			So(err, ShouldBeNil)
			So(f, ShouldResemble, map[string]Value{
				"fullExchangeName":          "NasdaqGS",
				"exchangeTimezoneShortName": "EDT",
			})
		})

		Convey("for raw values and dropped kinds", func() {
			f, err := FlattenFields(map[string]interface{}{
				"symbol":                       "AMD",
				"priceHint":                    2.0,
				"fiftyTwoWeekLowChangePercent": map[string]interface{}{"raw": 0.9931281, "fmt": "99.31%"},
				"regularMarketDayRange":        map[string]interface{}{"raw": "107.89 - 110.1"},
				"corporateActions":             []interface{}{},
				"tradeable":                    false,
				"pageViews":                    map[string]interface{}{"shortTermTrend": "UP"},
				"dividendDate":                 map[string]interface{}{"raw": nil},
				"nothing":                      nil,
			})
			So(err, ShouldBeNil)
			So(f, ShouldResemble, map[string]Value{
				"symbol":                       "AMD",
				"priceHint":                    2.0,
				"fiftyTwoWeekLowChangePercent": 0.9931281,
				"regularMarketDayRange":        "107.89 - 110.1",
			})
		})

		Convey("for an empty object", func() {
			f, err := FlattenFields(map[string]interface{}{})
			So(err, ShouldBeNil)
			So(f, ShouldResemble, map[string]Value{})
		})

		Convey("for an unsupported raw value", func() {
			_, err := FlattenFields(map[string]interface{}{
				"bad": map[string]interface{}{"raw": []interface{}{1.0}},
			})
			So(err, ShouldNotBeNil)
			So(IsTransform(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "unsupported raw value type for bad")
		})
	})

	Convey("TransformQuote works", t, func() {
		Convey("for a valid payload", func() {
			r, err := TransformQuote(TestQuoteJSON)
			So(err, ShouldBeNil)
			So(r.Currency, ShouldEqual, "USD")
			So(r.Symbol, ShouldEqual, "AAPL")
			So(r.FullExchangeName, ShouldEqual, "NasdaqGS")
			So(r.FirstTradeDateMilliseconds, ShouldEqual, int64(345479400000))
			So(r.ExchangeTimezoneName, ShouldEqual, "America/New_York")
			So(r.RegularMarketPrice, ShouldEqual, 177.49)
			So(r.PriceHint, ShouldEqual, 2)

			So(r.Fields["symbol"], ShouldEqual, "AAPL")
			So(r.Fields["firstTradeDateMilliseconds"], ShouldEqual, 345479400000.0)
			So(r.Fields["regularMarketPrice"], ShouldEqual, 177.49)
			So(r.Fields["marketCap"], ShouldEqual, 2774914039808.0)
			So(r.Fields["fiftyTwoWeekLowChange"], ShouldEqual, 53.320007)
			So(r.Fields["fiftyTwoWeekRange"], ShouldEqual, "124.17 - 198.23")
			So(r.Fields["gmtOffSetMilliseconds"], ShouldEqual, -14400000.0)
			So(r.Fields["longName"], ShouldEqual, "Apple Inc.")

			_, ok := r.Fields["corporateActions"]
			So(ok, ShouldBeFalse)
			_, ok = r.Fields["tradeable"]
			So(ok, ShouldBeFalse)
		})

		Convey("with every multi-dimensional property reduced to raw", func() {
			r, err := TransformQuote(TestQuoteJSON)
			So(err, ShouldBeNil)
			res := quoteResultTree(mustDecode(TestQuoteJSON))
			for _, p := range QuoteMultiDimensionalProperties {
				So(r.Fields[p], ShouldEqual, at(res, p, "raw"))
			}
		})

		Convey("idempotently", func() {
			r1, err := TransformQuote(TestQuoteJSON)
			So(err, ShouldBeNil)
			r2, err := TransformQuote(TestQuoteJSON)
			So(err, ShouldBeNil)
			So(r1, ShouldResemble, r2)
			So(r1.Keys(), ShouldResemble, r2.Keys())
		})

		Convey("with sorted keys", func() {
			r, err := TransformQuote(TestQuoteJSON)
			So(err, ShouldBeNil)
			keys := r.Keys()
			So(len(keys), ShouldEqual, len(r.Fields))
			So(keys[0], ShouldEqual, "currency")
		})

		Convey("for wrongly typed required fields", func() {
			tree := mustDecode(TestQuoteJSON)
			quoteResultTree(tree)["symbol"] = 42.0
			quoteResultTree(tree)["currency"] = nil
			quoteResultTree(tree)["priceHint"] = "2"
			So(ValidateQuote(tree), ShouldBeNil)
			r, err := FlattenQuote(tree)
			So(err, ShouldBeNil)
			So(r.Symbol, ShouldEqual, "")
			So(r.Fields["symbol"], ShouldEqual, 42.0)
			So(r.Currency, ShouldEqual, "")
			_, ok := r.Fields["currency"]
			So(ok, ShouldBeFalse)
			So(r.PriceHint, ShouldEqual, 0)
			So(r.Fields["priceHint"], ShouldEqual, "2")
			So(r.FullExchangeName, ShouldEqual, "NasdaqGS")
			So(r.RegularMarketPrice, ShouldEqual, 177.49)
		})

		Convey("for invalid JSON", func() {
			_, err := TransformQuote(`{"quoteResponse": {"result": [}}`)
			So(IsDecode(err), ShouldBeTrue)
		})

		Convey("for an empty payload", func() {
			_, err := TransformQuote("")
			So(err.Error(), ShouldEqual, EmptyInputMessage)
		})
	})

	Convey("QuoteOutput works", t, func() {
		Convey("in raw mode for any input", func() {
			for _, data := range []string{TestQuoteJSON, "", "not json", "{}"} {
				out, err := QuoteOutput(data, FormatRaw)
				So(err, ShouldBeNil)
				So(out.IsRaw(), ShouldBeTrue)
				So(out.Raw, ShouldEqual, data)
			}
		})

		Convey("in dict mode", func() {
			out, err := QuoteOutput(TestQuoteJSON, FormatDict)
			So(err, ShouldBeNil)
			So(out.IsRaw(), ShouldBeFalse)
			So(out.Value.Symbol, ShouldEqual, "AAPL")
		})

		Convey("for unknown formats", func() {
			for _, f := range []Format{"xml", FormatList, ""} {
				_, err := QuoteOutput(TestQuoteJSON, f)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, OutputFormatInvalid)
				So(IsValidation(err), ShouldBeTrue)
			}
		})
	})

	Convey("JoinFields works", t, func() {
		allowed := []string{"symbol", "regularMarketPrice", "marketCap"}
		So(JoinFields([]string{"marketCap", "bogus", "symbol"}, allowed),
			ShouldEqual, "marketCap,symbol")
		So(JoinFields(allowed, allowed), ShouldEqual, "symbol,regularMarketPrice,marketCap")
		So(JoinFields([]string{"bogus"}, allowed), ShouldEqual, "")
		So(JoinFields(nil, allowed), ShouldEqual, "")
	})
}
