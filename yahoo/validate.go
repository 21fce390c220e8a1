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
	"regexp"
	"time"

	"github.com/stockparfait/yahoo/finance"
	"github.com/stockparfait/yahoo/message"
)

// Messages of the request validation errors.
const (
	InvalidURLMessage      = "Invalid URL"
	InvalidIntervalMessage = "Invalid Interval"
	InvalidDatesMessage    = "Invalid dates"
)

// Intervals accepted by the chart endpoint.
var Intervals = []string{
	"1d", "5d", "1wk", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

var urlRegexp = regexp.MustCompile(`^(https?://[^/]+)(/.*)?$`)

// ValidURL checks that uri is an absolute http(s) URL.
func ValidURL(uri string) error {
	if !urlRegexp.MatchString(uri) {
		return finance.ValidationError(InvalidURLMessage)
	}
	return nil
}

// CheckInterval checks that the interval code is one of Intervals.
func CheckInterval(interval string) error {
	if !message.StringIn(interval, Intervals...) {
		return finance.ValidationError(InvalidIntervalMessage)
	}
	return nil
}

// ValidateDates checks that both dates are set and start is strictly before
// end.
func ValidateDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return finance.ValidationError(InvalidDatesMessage)
	}
	return nil
}
