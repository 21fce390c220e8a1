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

	"github.com/stockparfait/logging"
	"github.com/stockparfait/yahoo/finance"
)

// HistoryQuery builds the query of the chart endpoint.
func (c *Client) HistoryQuery(w Window, crumb string) url.Values {
	return url.Values{
		"period1":  {w.Period1()},
		"period2":  {w.Period2()},
		"interval": {c.config.Interval},
		"crumb":    {crumb},
	}
}

// History fetches the price series of the symbol within the window, sampled
// at Config.Interval, in the format of Config.HistoryOutput.
func (c *Client) History(ctx context.Context, symbol string, w Window) (finance.Output[[]finance.HistoricPoint], error) {
	var res finance.Output[[]finance.HistoricPoint]
	f := finance.Format(c.config.HistoryOutput)
	if err := finance.ValidFormat(f, finance.FormatDict); err != nil {
		return res, err
	}
	if err := CheckInterval(c.config.Interval); err != nil {
		return res, err
	}
	if err := w.Check(); err != nil {
		return res, err
	}
	crumb, err := c.Crumb(ctx)
	if err != nil {
		return res, annotate(err, "failed to obtain crumb")
	}
	uri := c.config.HistoryEndpoint + url.PathEscape(symbol)
	body, err := c.get(ctx, uri, c.HistoryQuery(w, crumb))
	if err != nil {
		return res, annotate(err, "failed to fetch history for %s", symbol)
	}
	res, err = output(body, f, finance.HistoricOutput)
	if err != nil {
		return res, err
	}
	if !res.IsRaw() {
		logging.Debugf(ctx, "%s: %d historic points from %s to %s", symbol,
			len(res.Value), w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
	}
	return res, nil
}
