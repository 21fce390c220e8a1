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
	"encoding/json"
	"strings"
)

// EmptyInputMessage is the error message for decoding an empty payload. It is
// distinct from the syntax error messages and may be matched on by callers.
const EmptyInputMessage = "Expecting value: line 1 column 1 (char 0)"

// Value is an arbitrary node of a decoded JSON tree: nil, bool, float64,
// string, []interface{} or map[string]interface{}.
type Value = interface{}

// Decode parses a textual payload into a generic JSON tree. The payload must be
// syntactically valid and its top level must not be empty (null, false, 0, "",
// {} or []).
func Decode(text string) (Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, DecodeError(EmptyInputMessage)
	}
	var v Value
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &Error{Kind: KindDecode, Msg: "Invalid JSON: " + err.Error(), Err: err}
	}
	if !truthy(v) {
		return nil, DecodeError("Invalid JSON: empty payload")
	}
	return v, nil
}

// object returns v as a JSON object, if it is one.
func object(v Value) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

// array returns v as a JSON array, if it is one.
func array(v Value) ([]interface{}, bool) {
	a, ok := v.([]interface{})
	return a, ok
}

// lookup descends into nested objects along the path of keys.
func lookup(v Value, keys ...string) (Value, bool) {
	for _, k := range keys {
		m, ok := object(v)
		if !ok {
			return nil, false
		}
		if v, ok = m[k]; !ok {
			return nil, false
		}
	}
	return v, true
}

// firstElement returns the first element of a non-empty array at the path.
func firstElement(v Value, keys ...string) (Value, bool) {
	v, ok := lookup(v, keys...)
	if !ok {
		return nil, false
	}
	a, ok := array(v)
	if !ok || len(a) == 0 {
		return nil, false
	}
	return a[0], true
}

// truthy follows the JSON-agnostic notion of a "present" value: null, false,
// zero, empty string, empty array and empty object are all falsy.
func truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []interface{}:
		return len(x) > 0
	case map[string]interface{}:
		return len(x) > 0
	}
	return true
}
