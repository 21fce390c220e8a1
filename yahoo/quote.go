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

	"github.com/stockparfait/yahoo/finance"
)

// QuoteFields are the fields which may be requested from the quote endpoint.
var QuoteFields = []string{
	"longName",
	"shortName",
	"regularMarketPrice",
	"regularMarketChange",
	"regularMarketChangePercent",
	"messageBoardId",
	"marketCap",
	"underlyingSymbol",
	"underlyingExchangeSymbol",
	"headSymbolAsString",
	"regularMarketVolume",
	"uuid",
	"regularMarketOpen",
	"fiftyTwoWeekLow",
	"fiftyTwoWeekHigh",
	"toCurrency",
	"fromCurrency",
	"toExchange",
	"fromExchange",
	"corporateActions",
}

// QuoteQuery builds the query of the quote endpoint. When no fields are
// requested, all of QuoteFields are.
func (c *Client) QuoteQuery(symbol, crumb string, fields ...string) url.Values {
	if len(fields) == 0 {
		fields = QuoteFields
	}
	return url.Values{
		"formatted":  {c.config.Formatted},
		"crumb":      {crumb},
		"lang":       {c.config.Lang},
		"region":     {c.config.Region},
		"symbols":    {symbol},
		"fields":     {finance.JoinFields(fields, QuoteFields)},
		"corsDomain": {c.config.CorsDomain},
	}
}

// Quote fetches the quote of the symbol in the format of Config.QuoteOutput.
// Fields not in QuoteFields are ignored.
func (c *Client) Quote(ctx context.Context, symbol string, fields ...string) (finance.Output[finance.QuoteRecord], error) {
	var res finance.Output[finance.QuoteRecord]
	f := finance.Format(c.config.QuoteOutput)
	if err := finance.ValidFormat(f, finance.FormatDict); err != nil {
		return res, err
	}
	crumb, err := c.Crumb(ctx)
	if err != nil {
		return res, annotate(err, "failed to obtain crumb")
	}
	body, err := c.get(ctx, c.config.QuoteEndpoint, c.QuoteQuery(symbol, crumb, fields...))
	if err != nil {
		return res, annotate(err, "failed to fetch quote for %s", symbol)
	}
	return output(body, f, finance.QuoteOutput)
}
