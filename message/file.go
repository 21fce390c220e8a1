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

package message

import (
	"io"
	"os"

	"github.com/stockparfait/errors"

	toml "github.com/pelletier/go-toml/v2"
)

// FromTOML decodes a TOML document and initializes m from it.
func FromTOML(m Message, r io.Reader) error {
	tree := make(map[string]interface{})
	if err := toml.NewDecoder(r).Decode(&tree); err != nil {
		return errors.Annotate(err, "failed to decode TOML")
	}
	if err := m.InitMessage(tree); err != nil {
		return errors.Annotate(err, "failed to init message")
	}
	return nil
}

// FromTOMLFile reads the TOML file and initializes m from it.
func FromTOMLFile(m Message, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Annotate(err, "failed to open '%s'", path)
	}
	defer f.Close()
	if err := FromTOML(m, f); err != nil {
		return errors.Annotate(err, "failed to read '%s'", path)
	}
	return nil
}
