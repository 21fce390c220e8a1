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

// Similar fetches the symbols of the securities recommended as similar to the
// given one, in the format of Config.SimilarOutput. This endpoint doesn't
// require a crumb.
func (c *Client) Similar(ctx context.Context, symbol string) (finance.Output[[]string], error) {
	var res finance.Output[[]string]
	f := finance.Format(c.config.SimilarOutput)
	if err := finance.ValidFormat(f, finance.FormatList); err != nil {
		return res, err
	}
	body, err := c.get(ctx, c.config.SimilarEndpoint+url.PathEscape(symbol), nil)
	if err != nil {
		return res, annotate(err, "failed to fetch similar securities for %s", symbol)
	}
	return output(body, f, finance.SimilarOutput)
}
