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

// SimilarRequiredProperties must be present in finance.result[0].
var SimilarRequiredProperties = []string{"symbol", "recommendedSymbols"}

// RecommendationProperties must be present in every recommendedSymbols entry.
var RecommendationProperties = []string{"symbol", "score"}

// ValidateSimilar checks the recommendations payload and reports the first
// violation. An empty recommendedSymbols array is valid.
func ValidateSimilar(tree Value) error {
	fin, ok := object(tree)
	if ok {
		fin, ok = object(fin["finance"])
	}
	if !ok {
		return ValidationError("Missing finance property")
	}
	v, ok := fin["result"]
	if !ok {
		return ValidationError("Missing result property")
	}
	results, ok := array(v)
	if !ok || len(results) == 0 {
		return ValidationError("Empty result property")
	}
	first, _ := object(results[0])
	for _, p := range SimilarRequiredProperties {
		if _, ok := first[p]; !ok {
			return ValidationError("Missing %s property", p)
		}
	}
	recs, ok := array(first["recommendedSymbols"])
	if !ok {
		return ValidationError("Invalid recommendedSymbols format")
	}
	for _, r := range recs {
		rec, _ := object(r)
		for _, p := range RecommendationProperties {
			if _, ok := rec[p]; !ok {
				return ValidationError("Invalid sub-properties for %s", p)
			}
		}
	}
	return nil
}

// FlattenSimilar extracts the recommended symbols of every result, in source
// order. Entries with an empty or missing symbol are skipped.
func FlattenSimilar(tree Value) ([]string, error) {
	symbols := []string{}
	v, _ := lookup(tree, "finance", "result")
	results, ok := array(v)
	if !ok {
		return nil, TransformError(nil, "finance.result is not an array")
	}
	for i, r := range results {
		res, ok := object(r)
		if !ok {
			return nil, TransformError(nil, "result[%d] is not an object", i)
		}
		v, ok := res["recommendedSymbols"]
		if !ok {
			continue
		}
		recs, ok := array(v)
		if !ok {
			return nil, TransformError(nil, "result[%d].recommendedSymbols is not an array", i)
		}
		for j, rv := range recs {
			rec, ok := object(rv)
			if !ok {
				return nil, TransformError(nil,
					"result[%d].recommendedSymbols[%d] is not an object", i, j)
			}
			if !truthy(rec["symbol"]) {
				continue
			}
			s, ok := rec["symbol"].(string)
			if !ok {
				return nil, TransformError(nil,
					"result[%d].recommendedSymbols[%d].symbol is not a string: %v", i, j, rec["symbol"])
			}
			symbols = append(symbols, s)
		}
	}
	return symbols, nil
}

// TransformSimilar decodes, validates and flattens a recommendations payload.
func TransformSimilar(data string) ([]string, error) {
	tree, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateSimilar(tree); err != nil {
		return nil, err
	}
	return FlattenSimilar(tree)
}

// SimilarOutput returns the recommended symbols in the requested format:
// FormatRaw or FormatList.
func SimilarOutput(data string, f Format) (Output[[]string], error) {
	return selectOutput(data, f, FormatList, TransformSimilar)
}
