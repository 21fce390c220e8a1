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
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/yahoo/finance"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

//go:generate mockgen -package=yahoo -destination=mock_getter_test.go -source=client.go

// Getter performs a single GET request and returns the response body.
type Getter interface {
	Get(ctx context.Context, uri string, query url.Values) (string, error)
}

// httpGetter is the default Getter using the HTTP client from the context, as
// set by fetch.UseClient. It makes a single attempt and returns the body
// regardless of the status code, since the provider reports errors in the
// body of non-2xx responses.
type httpGetter struct{}

var _ Getter = httpGetter{}

func (httpGetter) Get(ctx context.Context, uri string, query url.Values) (string, error) {
	client := fetch.GetClient(ctx)
	if client == nil {
		client = http.DefaultClient
	}
	if len(query) > 0 {
		uri = uri + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", errors.Annotate(err, "failed to create request for %s", uri)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Annotate(err, "failed to GET %s", uri)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Annotate(err, "failed to read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Debugf(ctx, "GET %s: status %s", uri, resp.Status)
	}
	return string(data), nil
}

// NewHTTPClient creates an HTTP client with a cookie jar, required for the
// crumb handshake, which sends a random browser user agent with every request.
func NewHTTPClient() (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to create a cookie jar")
	}
	return WithUserAgents(&http.Client{Jar: jar}, UserAgents()), nil
}

// Client for the Yahoo Finance API. It owns the crumb, so each instance
// performs its own handshake.
type Client struct {
	config *Config
	getter Getter
	crumb  crumbCache
}

// NewClient creates a new Client. A nil config means DefaultConfig(), and a
// nil getter uses the HTTP client from the context.
func NewClient(config *Config, getter Getter) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if getter == nil {
		getter = httpGetter{}
	}
	return &Client{config: config, getter: getter}
}

// Config used by the client.
func (c *Client) Config() *Config {
	return c.config
}

// UseClient injects the Client into the context.
func UseClient(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, clientContextKey, c)
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// get validates the URL and fetches its content.
func (c *Client) get(ctx context.Context, uri string, query url.Values) (string, error) {
	if err := ValidURL(uri); err != nil {
		return "", err
	}
	logging.Debugf(ctx, "GET %s", uri)
	body, err := c.getter.Get(ctx, uri, query)
	if err != nil {
		return "", err
	}
	logging.Debugf(ctx, "received %d bytes from %s", len(body), uri)
	return body, nil
}

// annotate adds context to transport errors. Errors of the finance kinds are
// returned as is, so their messages remain stable.
func annotate(err error, format string, args ...interface{}) error {
	if finance.KindOf(err) != finance.KindUnknown {
		return err
	}
	return errors.Annotate(err, format, args...)
}

// output checks the body for provider errors, unless raw output is requested,
// and converts it to the requested format.
func output[T any](body string, f finance.Format, convert func(string, finance.Format) (finance.Output[T], error)) (finance.Output[T], error) {
	if f != finance.FormatRaw {
		tree, err := finance.Decode(body)
		if err != nil {
			return finance.Output[T]{}, err
		}
		if err := finance.CheckResponseError(tree); err != nil {
			return finance.Output[T]{}, err
		}
	}
	return convert(body, f)
}
