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

// Format selects the output mode of a data family.
type Format string

// Values of Format. FormatRaw is accepted by every family; FormatDict is the
// structured mode of the quote and historic families, FormatList - of the
// similar securities family.
const (
	FormatRaw  Format = "raw"
	FormatDict Format = "dict"
	FormatList Format = "list"
)

// OutputFormatInvalid is the message of the error for an unrecognized Format.
const OutputFormatInvalid = "Output format invalid"

// Output is the result of a family's output-mode selection. In FormatRaw only
// Raw is set, and it is exactly the original text; otherwise only Value is set.
type Output[T any] struct {
	Format Format
	Raw    string
	Value  T
}

// IsRaw is true when the output is the raw pass-through text.
func (o Output[T]) IsRaw() bool {
	return o.Format == FormatRaw
}

// selectOutput dispatches on the requested format. The raw mode never parses or
// validates data.
func selectOutput[T any](data string, f, structured Format, transform func(string) (T, error)) (Output[T], error) {
	switch f {
	case FormatRaw:
		return Output[T]{Format: FormatRaw, Raw: data}, nil
	case structured:
		v, err := transform(data)
		if err != nil {
			return Output[T]{}, err
		}
		return Output[T]{Format: structured, Value: v}, nil
	}
	return Output[T]{}, ValidationError(OutputFormatInvalid)
}

// ValidFormat checks that f is either raw or the structured format of a family.
func ValidFormat(f, structured Format) error {
	if f != FormatRaw && f != structured {
		return ValidationError(OutputFormatInvalid)
	}
	return nil
}
