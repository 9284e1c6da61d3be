package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pelletier/go-toml/v2"

	"i18ngen/internal/domain"
	"i18ngen/internal/domain/entities"
	"i18ngen/internal/ports/output"
)

var log = logging.Logger("i18ngen/fs")

var _ output.SchemaSource = (*SchemaLoader)(nil)

// SchemaLoader reads the message-key schema from a JSON or TOML file holding
// a "keys" array of strings.
type SchemaLoader struct{}

func NewSchemaLoader() *SchemaLoader {
	return &SchemaLoader{}
}

type schemaDocument struct {
	Keys *[]any `json:"keys" toml:"keys"`
}

func (l *SchemaLoader) Load(_ context.Context, path string) (entities.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Schema{}, &domain.SchemaReadError{Path: path, Err: err}
	}

	var doc schemaDocument
	if isTOML(path) {
		err = toml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return entities.Schema{}, &domain.SchemaParseError{Path: path, Reason: "invalid content", Err: err}
	}
	if doc.Keys == nil {
		return entities.Schema{}, &domain.SchemaParseError{Path: path, Reason: `missing "keys" field`}
	}

	keys := make([]string, 0, len(*doc.Keys))
	for i, raw := range *doc.Keys {
		key, ok := raw.(string)
		if !ok {
			return entities.Schema{}, &domain.SchemaParseError{
				Path:   path,
				Reason: fmt.Sprintf("keys[%d] is %T, want string", i, raw),
			}
		}
		if strings.TrimSpace(key) == "" {
			return entities.Schema{}, &domain.SchemaParseError{
				Path:   path,
				Reason: fmt.Sprintf("keys[%d] is empty", i),
			}
		}
		keys = append(keys, key)
	}
	return entities.Schema{Path: path, Keys: keys}, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
