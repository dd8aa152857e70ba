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

// Package codec renders relation listings for people and tools.
package codec

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"dirpx.dev/relx/apis"
)

// ErrUnknownFormat is returned by ByName for an unsupported format.
var ErrUnknownFormat = errors.New("relx(codec): unknown format")

// Exporter writes relation listings in one format.
type Exporter interface {
	Export(w io.Writer, listings ...apis.Listing) error
	Format() string
}

// Importer reads relation listings written by the matching Exporter.
type Importer interface {
	Parse(r io.Reader) ([]apis.Listing, error)
	Format() string
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatNameText, FormatNameYAML}
}

// ByName returns the exporter for format.
func ByName(format string) (Exporter, error) {
	switch format {
	case FormatNameText, "":
		return NewTextCodec(), nil
	case FormatNameYAML, "yml":
		return NewYAMLCodec(), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, format, Formats())
}

// multi reports whether a kind may relate one key to several values.
func multi(k apis.Kind) bool {
	return slices.Contains([]apis.Kind{apis.KindOneToMany, apis.KindManyToMany}, k)
}
