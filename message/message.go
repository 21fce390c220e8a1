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

// Package message initializes typed configuration structs from generic decoded
// trees, as produced by encoding/json or go-toml, using struct tags for
// required fields, defaults and allowed choices.
package message

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/stockparfait/errors"
)

// Message is implemented by struct pointers which can be initialized from a
// decoded tree, typically by calling Init:
//
//	type Endpoint struct {
//	  URL    string `json:"url" required:"true"`
//	  Output string `json:"output" default:"dict" choices:"dict,raw"`
//	}
//
//	func (e *Endpoint) InitMessage(js interface{}) error {
//	  return message.Init(e, js)
//	}
type Message interface {
	InitMessage(js interface{}) error
}

var rMessage = reflect.TypeOf((*Message)(nil)).Elem()

// fieldName is the key of the struct field in the tree, or "" if the field is
// not a part of the message.
func fieldName(f reflect.StructField) string {
	if f.PkgPath != "" { // unexported
		return ""
	}
	name := f.Name
	if tag := f.Tag.Get("json"); tag != "" {
		part := strings.Split(tag, ",")[0]
		if part == "-" {
			return ""
		}
		if part != "" {
			name = part
		}
	}
	return name
}

// number extracts a numeric value regardless of the decoder which produced it.
func number(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}

// convert turns a tree value into a value of type t. A nil value yields the
// zero value, except for Message types which are initialized from an empty
// object to receive their defaults.
func convert(v interface{}, t reflect.Type) (reflect.Value, error) {
	var Nil reflect.Value
	if pt := reflect.PtrTo(t); t.Kind() != reflect.Ptr && pt.Implements(rMessage) {
		if v == nil {
			v = map[string]interface{}{}
		}
		ptr := reflect.New(t)
		if err := ptr.Interface().(Message).InitMessage(v); err != nil {
			return Nil, errors.Annotate(err, "failed to init %s", t.Name())
		}
		return ptr.Elem(), nil
	}
	if v == nil {
		return reflect.Zero(t), nil
	}
	switch t.Kind() {
	case reflect.Ptr:
		el, err := convert(v, t.Elem())
		if err != nil {
			return Nil, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(el)
		return ptr, nil
	case reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return Nil, errors.Reason("expected a bool, got %v", v)
		}
		return reflect.ValueOf(b), nil
	case reflect.Int, reflect.Int64, reflect.Float64:
		x, ok := number(v)
		if !ok {
			return Nil, errors.Reason("expected a number, got %v", v)
		}
		return reflect.ValueOf(x).Convert(t), nil
	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return Nil, errors.Reason("expected a string, got %v", v)
		}
		return reflect.ValueOf(s).Convert(t), nil
	case reflect.Slice:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return Nil, errors.Reason("expected a list, got %v", v)
		}
		res := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := convert(rv.Index(i).Interface(), t.Elem())
			if err != nil {
				return Nil, errors.Annotate(err, "element %d", i)
			}
			res.Index(i).Set(el)
		}
		return res, nil
	}
	return Nil, errors.Reason("unsupported type %s", t)
}

// fromTag converts a default value from a struct tag.
func fromTag(s string, t reflect.Type) (reflect.Value, error) {
	var Nil reflect.Value
	switch t.Kind() {
	case reflect.Ptr:
		el, err := fromTag(s, t.Elem())
		if err != nil {
			return Nil, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(el)
		return ptr, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Nil, errors.Annotate(err, "invalid bool '%s'", s)
		}
		return reflect.ValueOf(b), nil
	case reflect.Int, reflect.Int64, reflect.Float64:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Nil, errors.Annotate(err, "invalid number '%s'", s)
		}
		return reflect.ValueOf(x).Convert(t), nil
	case reflect.String:
		return reflect.ValueOf(s).Convert(t), nil
	}
	return Nil, errors.Reason("default values are not supported for %s", t)
}

// Init sets the fields of the struct pointed to by m from the tree js, which
// must be a map[string]interface{}. Recognized struct tags:
//
//	json:"name"          - the key in the tree; "-" excludes the field
//	required:"true"      - the key must be present
//	default:"value"      - used when the key is absent (basic types or pointers)
//	choices:"a,b,c"      - allowed values of a string field
//
// Keys in the tree which don't match any field are reported as errors.
func Init(m Message, js interface{}) error {
	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return errors.Reason("message must be a struct pointer, got %T", m)
	}
	tree, ok := js.(map[string]interface{})
	if !ok {
		return errors.Reason("expected an object, got %v", js)
	}
	rv = rv.Elem()
	rt := rv.Type()
	seen := make(map[string]struct{}, len(tree))
	var missing []string
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := fieldName(f)
		if name == "" {
			continue
		}
		var v reflect.Value
		var err error
		if jv, ok := tree[name]; ok {
			seen[name] = struct{}{}
			v, err = convert(jv, f.Type)
		} else if f.Tag.Get("required") == "true" {
			missing = append(missing, name)
			continue
		} else if def, ok := f.Tag.Lookup("default"); ok {
			v, err = fromTag(def, f.Type)
		} else {
			v, err = convert(nil, f.Type)
		}
		if err != nil {
			return errors.Annotate(err, "invalid value for %s", name)
		}
		if choices, ok := f.Tag.Lookup("choices"); ok {
			if v.Kind() != reflect.String {
				return errors.Reason("choices apply only to strings, field %s", name)
			}
			if !StringIn(v.String(), strings.Split(choices, ",")...) {
				return errors.Reason("value of %s must be one of [%s], got '%s'",
					name, choices, v.String())
			}
		}
		rv.Field(i).Set(v)
	}
	if len(missing) > 0 {
		return errors.Reason("missing required fields: %s", strings.Join(missing, ", "))
	}
	var unknown []string
	for k := range tree {
		if _, ok := seen[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return errors.Reason("unknown fields for %s: %s", rt.Name(), strings.Join(unknown, ", "))
	}
	return nil
}

// StringIn checks that s equals one of the values.
func StringIn(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
