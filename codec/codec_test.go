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

package codec_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/relx/apis"
	"dirpx.dev/relx/codec"
)

func sampleListings() []apis.Listing {
	return []apis.Listing{
		{
			Kind: apis.KindManyToOne,
			Name: "is_employed_by",
			Entries: []apis.ListingEntry{
				{Key: "Conan", Values: []string{"Fighter's Guild"}},
				{Key: "Pee-Wee", Values: []string{"Mage's Guild"}},
			},
		},
		{
			Kind: apis.KindOneToMany,
			Name: "employs",
			Entries: []apis.ListingEntry{
				{Key: "Fighter's Guild", Values: []string{"Conan", "Sonja"}},
			},
		},
		{Kind: apis.KindOneToOne},
	}
}

func TestFormatText(t *testing.T) {
	ls := sampleListings()

	assert.Equal(t, "ManyToOne is_employed_by{Conan: Fighter's Guild, Pee-Wee: Mage's Guild}", codec.FormatText(ls[0]))
	assert.Equal(t, "OneToMany employs{Fighter's Guild: [Conan, Sonja]}", codec.FormatText(ls[1]))
	assert.Equal(t, "OneToOne{}", codec.FormatText(ls[2]))
}

func TestFormatText_MultiKindSingleValueIsList(t *testing.T) {
	l := apis.Listing{
		Kind:    apis.KindManyToMany,
		Entries: []apis.ListingEntry{{Key: "a", Values: []string{"x"}}},
	}
	assert.Equal(t, "ManyToMany{a: [x]}", codec.FormatText(l))
}

func TestTextCodec_Export(t *testing.T) {
	var buf bytes.Buffer
	c := codec.NewTextCodec()
	require.NoError(t, c.Export(&buf, sampleListings()...))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "OneToOne{}", lines[2])
	assert.Equal(t, codec.FormatNameText, c.Format())
}

func TestYAMLCodec_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	c := codec.NewYAMLCodec()
	require.NoError(t, c.Export(&buf, sampleListings()[:2]...))

	assert.Contains(t, buf.String(), "relations:")
	assert.Contains(t, buf.String(), "kind: OneToMany")
	assert.Contains(t, buf.String(), "values: [Conan, Sonja]")

	got, err := c.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleListings()[:2], got)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestYAMLCodec_ExportWriteError(t *testing.T) {
	err := codec.NewYAMLCodec().Export(failingWriter{errors.New("disk full")}, sampleListings()...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestYAMLCodec_ParseUnknownKind(t *testing.T) {
	doc := "relations:\n  - name: x\n    kind: SomeToSome\n    entries: []\n"
	_, err := codec.NewYAMLCodec().Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, apis.ErrUnknownKind)
}

func TestYAMLCodec_ParseMalformed(t *testing.T) {
	_, err := codec.NewYAMLCodec().Parse(strings.NewReader("relations: [oops"))
	require.Error(t, err)
}

func TestByName(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"default", "", codec.FormatNameText},
		{"text", "text", codec.FormatNameText},
		{"yaml", "yaml", codec.FormatNameYAML},
		{"yml alias", "yml", codec.FormatNameYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := codec.ByName(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Format())
		})
	}

	_, err := codec.ByName("xml")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
}
