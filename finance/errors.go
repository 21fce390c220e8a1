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

// Package finance validates and flattens the JSON payloads of the Yahoo Finance
// quote, chart and recommendations endpoints.
package finance

import (
	"fmt"

	"github.com/stockparfait/errors"
)

// Kind of a failure produced by the decoding, validation and transformation
// pipeline.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDecode
	KindValidation
	KindTransform
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindValidation:
		return "validation"
	case KindTransform:
		return "transform"
	}
	return "unknown"
}

// Error is the error type shared by all data families. Error() returns only the
// message, which is stable and may be matched on by callers.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // the underlying cause, if any
}

var _ error = &Error{}

func (e *Error) Error() string {
	return e.Msg
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// DecodeError reports a payload which is not parseable JSON.
func DecodeError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDecode, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports a payload or an input which parses but violates a
// schema rule.
func ValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// TransformError reports a failure to reshape an already validated payload. The
// cause err may be nil.
func TransformError(err error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg += ": " + err.Error()
	}
	return &Error{Kind: KindTransform, Msg: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in the err's Unwrap chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsDecode(err error) bool     { return KindOf(err) == KindDecode }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsTransform(err error) bool  { return KindOf(err) == KindTransform }
