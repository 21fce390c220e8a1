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
	"github.com/stockparfait/errors"
	"github.com/stockparfait/yahoo/finance"
	"github.com/stockparfait/yahoo/message"
)

// Config of the Client. All the fields have working defaults, see
// DefaultConfig.
type Config struct {
	QuoteEndpoint   string `json:"quote_endpoint" default:"https://query2.finance.yahoo.com/v7/finance/quote"`
	HistoryEndpoint string `json:"history_endpoint" default:"https://query1.finance.yahoo.com/v8/finance/chart/"`
	SimilarEndpoint string `json:"similar_endpoint" default:"https://query2.finance.yahoo.com/v6/finance/recommendationsbysymbol/"`
	CookieEndpoint  string `json:"cookie_endpoint" default:"https://fc.yahoo.com"`
	CrumbEndpoint   string `json:"crumb_endpoint" default:"https://query1.finance.yahoo.com/v1/test/getcrumb"`

	CorsDomain string `json:"cors_domain" default:"finance.yahoo.com"`
	Region     string `json:"region" default:"US"`
	Lang       string `json:"lang" default:"en-US"`
	Formatted  string `json:"formatted" default:"true" choices:"true,false"`
	Interval   string `json:"interval" default:"1d"`

	QuoteOutput   string `json:"quote_output" default:"dict"`
	HistoryOutput string `json:"history_output" default:"dict"`
	SimilarOutput string `json:"similar_output" default:"list"`
}

var _ message.Message = &Config{}

// InitMessage implements message.Message.
func (c *Config) InitMessage(js interface{}) error {
	if err := message.Init(c, js); err != nil {
		return errors.Annotate(err, "failed to init Config")
	}
	return c.Check()
}

// Check validates the endpoints, the interval and the output formats.
func (c *Config) Check() error {
	endpoints := []string{c.QuoteEndpoint, c.HistoryEndpoint, c.SimilarEndpoint,
		c.CookieEndpoint, c.CrumbEndpoint}
	for _, e := range endpoints {
		if err := ValidURL(e); err != nil {
			return errors.Annotate(err, "endpoint '%s'", e)
		}
	}
	if err := CheckInterval(c.Interval); err != nil {
		return err
	}
	formats := []struct {
		f, structured finance.Format
	}{
		{finance.Format(c.QuoteOutput), finance.FormatDict},
		{finance.Format(c.HistoryOutput), finance.FormatDict},
		{finance.Format(c.SimilarOutput), finance.FormatList},
	}
	for _, x := range formats {
		if err := finance.ValidFormat(x.f, x.structured); err != nil {
			return err
		}
	}
	return nil
}

// DefaultConfig returns a new Config with all the default values.
func DefaultConfig() *Config {
	var c Config
	if err := c.InitMessage(map[string]interface{}{}); err != nil {
		panic(errors.Annotate(err, "default config is invalid"))
	}
	return &c
}
