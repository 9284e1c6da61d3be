package output

import (
	"context"

	"i18ngen/internal/domain/entities"
)

// LocaleSource discovers and decodes locale files.
type LocaleSource interface {
	// Scan lists the locale files of dir with their canonical tags.
	// Canonical tags are unique in the result.
	Scan(ctx context.Context, dir string) ([]entities.LocaleSource, error)
	// Read decodes one discovered file into a flat key/value mapping.
	Read(ctx context.Context, src entities.LocaleSource) (entities.LocaleFile, error)
}
