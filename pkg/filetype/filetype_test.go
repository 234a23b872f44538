package filetype_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

func TestZeroValueIsText(t *testing.T) {
	var ft filetype.FileType
	assert.Equal(t, filetype.Text, ft)
	assert.Equal(t, "text", ft.String())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want filetype.FileType
	}{
		{"canonical", "rust", filetype.Rust},
		{"mixed case", "TypeScript", filetype.TypeScript},
		{"surrounding space", "  go ", filetype.Go},
		{"alias", "golang", filetype.Go},
		{"text alias fundamental", "fundamental", filetype.Text},
		{"text alias plain-text", "Plain-Text", filetype.Text},
		{"text alias plaintext", "plaintext", filetype.Text},
		{"query alias", "tsq", filetype.TreeSitterQuery},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := filetype.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	ft, err := filetype.Parse("no-such-language")
	require.Error(t, err)
	assert.ErrorIs(t, err, filetype.ErrUnknown)
	assert.Equal(t, filetype.Text, ft)
}

func TestCanonicalNamesAreUniqueAndLowercase(t *testing.T) {
	seen := make(map[string]filetype.FileType)
	for _, ft := range filetype.All() {
		name := ft.String()
		require.NotEmpty(t, name)
		if prev, dup := seen[name]; dup {
			t.Fatalf("canonical name %q shared by %d and %d", name, prev, ft)
		}
		seen[name] = ft

		got, err := filetype.Parse(name)
		require.NoError(t, err)
		assert.Equal(t, ft, got, "canonical name %q", name)
	}
	for name := range seen {
		for _, r := range name {
			assert.False(t, r >= 'A' && r <= 'Z', "canonical name %q has upper case", name)
		}
	}
}

func TestAliasesRoundTrip(t *testing.T) {
	for _, ft := range filetype.All() {
		for _, alias := range ft.Aliases() {
			got, err := filetype.Parse(alias)
			require.NoError(t, err)
			assert.Equal(t, ft, got, "alias %q", alias)
		}
	}
}

func TestAllStartsWithText(t *testing.T) {
	all := filetype.All()
	require.NotEmpty(t, all)
	assert.Equal(t, filetype.Text, all[0])
	assert.Greater(t, len(all), 1000)
	for _, ft := range all {
		assert.True(t, ft.Valid())
	}
	assert.False(t, filetype.FileType(len(all)).Valid())
}

func TestTextMarshalling(t *testing.T) {
	type doc struct {
		Type filetype.FileType `json:"type" yaml:"type"`
	}

	b, err := json.Marshal(doc{Type: filetype.Python})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"python"}`, string(b))

	var fromJSON doc
	require.NoError(t, json.Unmarshal([]byte(`{"type":"golang"}`), &fromJSON))
	assert.Equal(t, filetype.Go, fromJSON.Type)

	var fromYAML doc
	require.NoError(t, yaml.Unmarshal([]byte("type: Markdown\n"), &fromYAML))
	assert.Equal(t, filetype.Markdown, fromYAML.Type)

	err = json.Unmarshal([]byte(`{"type":"nope"}`), &fromJSON)
	assert.ErrorIs(t, err, filetype.ErrUnknown)

	_, err = filetype.FileType(60000).MarshalText()
	assert.ErrorIs(t, err, filetype.ErrUnknown)
}
