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

package yahoo

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stockparfait/fetch"
	"github.com/stockparfait/testutil"
	"github.com/stockparfait/yahoo/finance"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	t.Parallel()

	Convey("Client works with a server", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		server.ResponseBody = []string{"{}"}

		ctx := fetch.UseClient(context.Background(), server.Client())
		config := DefaultConfig()
		config.QuoteEndpoint = server.URL() + "/v7/finance/quote"
		config.HistoryEndpoint = server.URL() + "/v8/finance/chart/"
		config.SimilarEndpoint = server.URL() + "/v6/finance/recommendationsbysymbol/"
		config.CookieEndpoint = server.URL() + "/cookie"
		config.CrumbEndpoint = server.URL() + "/v1/test/getcrumb"
		ctx = UseClient(ctx, NewClient(config, nil))
		c := GetClient(ctx)
		So(c, ShouldNotBeNil)
		So(c.Config(), ShouldEqual, config)

		window := Window{
			Start: time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2023, time.October, 10, 0, 0, 0, 0, time.UTC),
		}

		Convey("Quote", func() {
			Convey("in dict mode", func() {
				server.ResponseBody = []string{"cookie", "crumb-1", finance.TestQuoteJSON}
				q, err := c.Quote(ctx, "AAPL")
				So(err, ShouldBeNil)
				So(q.IsRaw(), ShouldBeFalse)
				So(q.Value.Symbol, ShouldEqual, "AAPL")
				So(q.Value.Currency, ShouldEqual, "USD")
				So(q.Value.Fields["marketCap"], ShouldEqual, 2774914039808.0)
				So(server.RequestPath, ShouldEqual, "/v7/finance/quote")
				So(server.RequestQuery, ShouldResemble, url.Values{
					"formatted":  {"true"},
					"crumb":      {"crumb-1"},
					"lang":       {"en-US"},
					"region":     {"US"},
					"symbols":    {"AAPL"},
					"fields":     {finance.JoinFields(QuoteFields, QuoteFields)},
					"corsDomain": {"finance.yahoo.com"},
				})
			})

			Convey("in raw mode", func() {
				config.QuoteOutput = "raw"
				server.ResponseBody = []string{"cookie", "crumb-1", "not even JSON"}
				q, err := c.Quote(ctx, "AAPL")
				So(err, ShouldBeNil)
				So(q.IsRaw(), ShouldBeTrue)
				So(q.Raw, ShouldEqual, "not even JSON")
			})

			Convey("with an invalid output format", func() {
				config.QuoteOutput = "xml"
				_, err := c.Quote(ctx, "AAPL")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, finance.OutputFormatInvalid)
			})

			Convey("with an empty crumb", func() {
				server.ResponseBody = []string{"cookie", ""}
				_, err := c.Quote(ctx, "AAPL")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, CrumbFailedMessage)
			})

			Convey("for an unknown symbol", func() {
				server.ResponseBody = []string{"cookie", "crumb-1",
					`{"quoteResponse":{"result":[],"error":null}}`}
				_, err := c.Quote(ctx, "NOPE")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, finance.ResponseErrorMessage)
				So(finance.IsValidation(err), ShouldBeTrue)
			})

			Convey("for an empty response", func() {
				server.ResponseBody = []string{"cookie", "crumb-1", " "}
				_, err := c.Quote(ctx, "AAPL")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, finance.EmptyInputMessage)
				So(finance.IsDecode(err), ShouldBeTrue)
			})
		})

		Convey("History", func() {
			Convey("in dict mode", func() {
				server.ResponseBody = []string{"cookie", "crumb-2", finance.TestChartJSON}
				h, err := c.History(ctx, "GS", window)
				So(err, ShouldBeNil)
				So(len(h.Value), ShouldEqual, 6)
				So(h.Value[0].Close, ShouldEqual, 318.5)
				So(server.RequestPath, ShouldEqual, "/v8/finance/chart/GS")
				So(server.RequestQuery, ShouldResemble, url.Values{
					"period1":  {"1696204800"},
					"period2":  {"1696896000"},
					"interval": {"1d"},
					"crumb":    {"crumb-2"},
				})
			})

			Convey("with a custom interval", func() {
				config.Interval = "1wk"
				server.ResponseBody = []string{"cookie", "crumb-2", finance.TestChartJSON}
				_, err := c.History(ctx, "GS", window)
				So(err, ShouldBeNil)
				So(server.RequestQuery.Get("interval"), ShouldEqual, "1wk")
			})

			Convey("in raw mode", func() {
				config.HistoryOutput = "raw"
				server.ResponseBody = []string{"cookie", "crumb-2", finance.TestChartJSON}
				h, err := c.History(ctx, "GS", window)
				So(err, ShouldBeNil)
				So(h.Raw, ShouldEqual, finance.TestChartJSON)
			})

			Convey("with a provider error", func() {
				server.ResponseBody = []string{"cookie", "crumb-2", `{"chart":{"result":null,` +
					`"error":{"code":"Not Found","description":"No data found"}}}`}
				_, err := c.History(ctx, "NOPE", window)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, finance.ResponseErrorMessage)
			})

			Convey("with inverted dates", func() {
				_, err := c.History(ctx, "GS", Window{Start: window.End, End: window.Start})
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, InvalidDatesMessage)
			})

			Convey("with an invalid interval", func() {
				config.Interval = "2h"
				_, err := c.History(ctx, "GS", window)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, InvalidIntervalMessage)
			})
		})

		Convey("Similar", func() {
			Convey("in list mode", func() {
				server.ResponseBody = []string{finance.TestSimilarJSON}
				s, err := c.Similar(ctx, "AMD")
				So(err, ShouldBeNil)
				So(s.Value, ShouldResemble, []string{"NVDA", "TSLA", "INTC", "META", "NFLX"})
				So(server.RequestPath, ShouldEqual, "/v6/finance/recommendationsbysymbol/AMD")
				So(len(server.RequestQuery), ShouldEqual, 0)
			})

			Convey("in raw mode", func() {
				config.SimilarOutput = "raw"
				server.ResponseBody = []string{finance.TestSimilarJSON}
				s, err := c.Similar(ctx, "AMD")
				So(err, ShouldBeNil)
				So(s.Raw, ShouldEqual, finance.TestSimilarJSON)
			})

			Convey("with dict mode", func() {
				config.SimilarOutput = "dict"
				_, err := c.Similar(ctx, "AMD")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, finance.OutputFormatInvalid)
			})

			Convey("with an invalid endpoint", func() {
				config.SimilarEndpoint = "not a URL/"
				_, err := c.Similar(ctx, "AMD")
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, InvalidURLMessage)
			})
		})
	})

	Convey("GetClient without a client", t, func() {
		So(GetClient(context.Background()), ShouldBeNil)
	})

	Convey("NewClient uses defaults", t, func() {
		c := NewClient(nil, nil)
		So(c.Config(), ShouldResemble, DefaultConfig())
	})
}
