/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/relx/apis"
)

// FormatNameYAML is the identifier of the YAML format.
const FormatNameYAML = "yaml"

// YAMLCodec handles YAML import/export of listings.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier.
func (c *YAMLCodec) Format() string {
	return FormatNameYAML
}

// yamlDocument is the YAML structure for a set of listings.
type yamlDocument struct {
	Relations []yamlRelation `yaml:"relations"`
}

type yamlRelation struct {
	Name    string      `yaml:"name,omitempty"`
	Kind    string      `yaml:"kind"`
	Entries []yamlEntry `yaml:"entries"`
}

type yamlEntry struct {
	Key    string   `yaml:"key"`
	Values []string `yaml:"values,flow"`
}

// Export writes listings as a single YAML document.
func (c *YAMLCodec) Export(w io.Writer, listings ...apis.Listing) error {
	doc := yamlDocument{Relations: make([]yamlRelation, 0, len(listings))}
	for _, l := range listings {
		yr := yamlRelation{
			Name:    l.Name,
			Kind:    l.Kind.String(),
			Entries: make([]yamlEntry, 0, len(l.Entries)),
		}
		for _, e := range l.Entries {
			yr.Entries = append(yr.Entries, yamlEntry{Key: e.Key, Values: e.Values})
		}
		doc.Relations = append(doc.Relations, yr)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(&doc); err != nil {
		_ = encoder.Close()
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}
	return nil
}

// Parse reads listings written by Export.
func (c *YAMLCodec) Parse(r io.Reader) ([]apis.Listing, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	out := make([]apis.Listing, 0, len(doc.Relations))
	for _, yr := range doc.Relations {
		kind, err := apis.ParseKind(yr.Kind)
		if err != nil {
			return nil, err
		}
		l := apis.Listing{Kind: kind, Name: yr.Name}
		for _, e := range yr.Entries {
			l.Entries = append(l.Entries, apis.ListingEntry{Key: e.Key, Values: e.Values})
		}
		out = append(out, l)
	}
	return out, nil
}
