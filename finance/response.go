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
	"github.com/stockparfait/errors"
)

// ResponseErrorMessage is the message of the error for a provider response
// which carries an error instead of data.
const ResponseErrorMessage = "api response contains Error. Maybe your parameters are invalid"

// providerError extracts the cause from a provider's {"code", "description"}
// error object, if any.
func providerError(v Value) error {
	m, ok := object(v)
	if !ok {
		return nil
	}
	code, _ := m["code"].(string)
	descr, _ := m["description"].(string)
	if code == "" && descr == "" {
		return nil
	}
	return errors.Reason("%s: %s", code, descr)
}

// CheckResponseError detects a provider response reporting an error: a non-null
// chart.error, or an empty quoteResponse.result or finance.result.
func CheckResponseError(tree Value) error {
	if chartErr, ok := lookup(tree, "chart", "error"); ok && chartErr != nil {
		return &Error{Kind: KindValidation, Msg: ResponseErrorMessage, Err: providerError(chartErr)}
	}
	if res, ok := lookup(tree, "quoteResponse", "result"); ok && !truthy(res) {
		cause, _ := lookup(tree, "quoteResponse", "error")
		return &Error{Kind: KindValidation, Msg: ResponseErrorMessage, Err: providerError(cause)}
	}
	if res, ok := lookup(tree, "finance", "result"); ok && !truthy(res) {
		cause, _ := lookup(tree, "finance", "error")
		return &Error{Kind: KindValidation, Msg: ResponseErrorMessage, Err: providerError(cause)}
	}
	return nil
}
