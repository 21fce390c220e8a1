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
	"testing"

	"github.com/stockparfait/errors"

	. "github.com/smartystreets/goconvey/convey"
)

// at descends into a decoded tree along string keys and int indices. It is
// meant for fixtures known to have the path.
func at(v Value, path ...interface{}) Value {
	for _, p := range path {
		switch k := p.(type) {
		case string:
			v = v.(map[string]interface{})[k]
		case int:
			v = v.([]interface{})[k]
		}
	}
	return v
}

func mustDecode(js string) Value {
	v, err := Decode(js)
	if err != nil {
		panic(err)
	}
	return v
}

func TestDecode(t *testing.T) {
	t.Parallel()

	Convey("Decode works", t, func() {
		Convey("for a valid object", func() {
			v, err := Decode(`{"fullExchangeName": "NasdaqGS"}`)
			So(err, ShouldBeNil)
			So(v, ShouldResemble, map[string]interface{}{"fullExchangeName": "NasdaqGS"})
		})

		Convey("for a valid array", func() {
			v, err := Decode(` [1, "two", null] `)
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []interface{}{1.0, "two", nil})
		})

		Convey("with a stable message for empty input", func() {
			_, err := Decode("")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Expecting value: line 1 column 1 (char 0)")
			So(IsDecode(err), ShouldBeTrue)

			_, err = Decode(" \n\t")
			So(err.Error(), ShouldEqual, EmptyInputMessage)
		})

		Convey("for syntax errors", func() {
			_, err := Decode(`{"key": "value",}`)
			So(err, ShouldNotBeNil)
			So(IsDecode(err), ShouldBeTrue)
			So(err.Error(), ShouldStartWith, "Invalid JSON: ")
			So(err.Error(), ShouldNotEqual, EmptyInputMessage)
		})

		Convey("for empty payloads", func() {
			for _, js := range []string{"{}", "[]", "null", `""`, "0", "false"} {
				_, err := Decode(js)
				So(err, ShouldNotBeNil)
				So(IsDecode(err), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "Invalid JSON: empty payload")
			}
		})
	})

	Convey("truthy works", t, func() {
		So(truthy(nil), ShouldBeFalse)
		So(truthy(false), ShouldBeFalse)
		So(truthy(0.0), ShouldBeFalse)
		So(truthy(""), ShouldBeFalse)
		So(truthy([]interface{}{}), ShouldBeFalse)
		So(truthy(map[string]interface{}{}), ShouldBeFalse)
		So(truthy(true), ShouldBeTrue)
		So(truthy(2.0), ShouldBeTrue)
		So(truthy("x"), ShouldBeTrue)
		So(truthy([]interface{}{nil}), ShouldBeTrue)
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	Convey("Error kinds work", t, func() {
		Convey("for direct errors", func() {
			So(KindOf(DecodeError("x")), ShouldEqual, KindDecode)
			So(KindOf(ValidationError("Missing %s property", "symbol")), ShouldEqual, KindValidation)
			So(ValidationError("Missing %s property", "symbol").Error(), ShouldEqual,
				"Missing symbol property")
			So(KindOf(nil), ShouldEqual, KindUnknown)
		})

		Convey("for wrapped errors", func() {
			cause := DecodeError("bad")
			err := TransformError(cause, "failed to reshape")
			So(err.Error(), ShouldEqual, "failed to reshape: bad")
			So(IsTransform(err), ShouldBeTrue)
			So(err.Unwrap(), ShouldEqual, cause)
		})

		Convey("for annotated errors", func() {
			err := errors.Annotate(ValidationError("Invalid dates"), "failed to fetch")
			So(KindOf(err), ShouldEqual, KindValidation)
			So(IsValidation(err), ShouldBeTrue)
			So(KindOf(errors.Reason("plain")), ShouldEqual, KindUnknown)
		})

		Convey("for kind names", func() {
			So(KindValidation.String(), ShouldEqual, "validation")
			So(KindUnknown.String(), ShouldEqual, "unknown")
		})
	})
}
