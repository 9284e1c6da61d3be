package filesystem

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"i18ngen/internal/domain"
)

func TestSchemaLoaderJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "messages.schema.json", `{"keys": ["welcome", "login_success", "login_failed", "error"]}`)

	schema, err := NewSchemaLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, path, schema.Path)
	require.Equal(t, []string{"welcome", "login_success", "login_failed", "error"}, schema.Keys)
	require.Equal(t, 4, schema.Len())
}

func TestSchemaLoaderTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "messages.schema.toml", "keys = [\"welcome\", \"error\"]\n")

	schema, err := NewSchemaLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []string{"welcome", "error"}, schema.Keys)
}

func TestSchemaLoaderEmptyKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "messages.schema.json", `{"keys": []}`)

	schema, err := NewSchemaLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Empty(t, schema.Keys)
}

func TestSchemaLoaderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.schema.json")

	_, err := NewSchemaLoader().Load(context.Background(), path)
	var readErr *domain.SchemaReadError
	require.True(t, errors.As(err, &readErr))
	require.Equal(t, path, readErr.Path)
	require.Equal(t, "schema_read", domain.Code(err))
}

func TestSchemaLoaderParseErrors(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"keys": [`,
		"missing field": `{"names": ["welcome"]}`,
		"null field":    `{"keys": null}`,
		"not an object": `["welcome"]`,
		"non string":    `{"keys": ["welcome", 3]}`,
		"empty key":     `{"keys": ["welcome", ""]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "messages.schema.json", content)

			_, err := NewSchemaLoader().Load(context.Background(), path)
			var parseErr *domain.SchemaParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			require.Equal(t, path, parseErr.Path)
			require.Equal(t, "schema_parse", domain.Code(err))
		})
	}
}
