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

	"github.com/stockparfait/logging"
	"github.com/stockparfait/yahoo/finance"
)

// CrumbFailedMessage is the error message for an empty crumb.
const CrumbFailedMessage = "Crumb generation failed."

type crumbState uint8

const (
	crumbUnset crumbState = iota
	crumbCached
)

// crumbCache holds the crumb of a Client. The value is non-empty if and only
// if the state is crumbCached.
type crumbCache struct {
	state crumbState
	value string
}

// CheckCrumb returns the crumb if it is valid, i.e. not empty.
func CheckCrumb(crumb string) (string, error) {
	if crumb == "" {
		return "", finance.ValidationError(CrumbFailedMessage)
	}
	return crumb, nil
}

// Crumb returns the cached crumb, or performs the handshake to obtain a new
// one. The first request fetches the cookie endpoint only for the cookies it
// sets in the HTTP client, and its failure is not fatal. The second request
// fetches the crumb itself.
func (c *Client) Crumb(ctx context.Context) (string, error) {
	if c.crumb.state == crumbCached {
		return c.crumb.value, nil
	}
	if _, err := c.get(ctx, c.config.CookieEndpoint, nil); err != nil {
		if finance.IsValidation(err) {
			return "", err
		}
		logging.Warningf(ctx, "crumb: cookie request failed: %s", err.Error())
	}
	body, err := c.get(ctx, c.config.CrumbEndpoint, nil)
	if err != nil {
		return "", err
	}
	crumb, err := CheckCrumb(body)
	if err != nil {
		return "", err
	}
	c.crumb = crumbCache{state: crumbCached, value: crumb}
	logging.Debugf(ctx, "crumb: cached a new crumb")
	return crumb, nil
}

// SetCrumb caches a known crumb, e.g. from a previous session. An empty crumb
// resets the cache.
func (c *Client) SetCrumb(crumb string) {
	if crumb == "" {
		c.ResetCrumb()
		return
	}
	c.crumb = crumbCache{state: crumbCached, value: crumb}
}

// ResetCrumb forces the next Crumb call to perform the handshake again.
func (c *Client) ResetCrumb() {
	c.crumb = crumbCache{}
}
