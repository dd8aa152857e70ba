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
	"strings"

	"dirpx.dev/relx/apis"
)

// FormatNameText is the identifier of the text format.
const FormatNameText = "text"

// TextCodec renders listings one per line.
type TextCodec struct{}

// NewTextCodec creates a new text codec.
func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

// Format returns the codec format identifier.
func (c *TextCodec) Format() string {
	return FormatNameText
}

// Export writes each listing on its own line.
func (c *TextCodec) Export(w io.Writer, listings ...apis.Listing) error {
	for _, l := range listings {
		if _, err := fmt.Fprintln(w, FormatText(l)); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
	}
	return nil
}

// FormatText renders l as "Kind name{key: value, key2: [v1, v2]}".
// Single-valued kinds print a bare value; the others print a list.
func FormatText(l apis.Listing) string {
	var b strings.Builder
	b.WriteString(l.Kind.String())
	if l.Name != "" {
		b.WriteByte(' ')
		b.WriteString(l.Name)
	}
	b.WriteByte('{')
	for i, e := range l.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key)
		b.WriteString(": ")
		if multi(l.Kind) || len(e.Values) != 1 {
			b.WriteString("[" + strings.Join(e.Values, ", ") + "]")
		} else {
			b.WriteString(e.Values[0])
		}
	}
	b.WriteByte('}')
	return b.String()
}
