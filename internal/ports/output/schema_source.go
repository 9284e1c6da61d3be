package output

import (
	"context"

	"i18ngen/internal/domain/entities"
)

// SchemaSource loads the message-key schema.
type SchemaSource interface {
	Load(ctx context.Context, path string) (entities.Schema, error)
}
