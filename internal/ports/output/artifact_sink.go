package output

import (
	"context"

	"i18ngen/internal/domain/entities"
)

// ArtifactSink persists generated artifacts under the destination directory.
type ArtifactSink interface {
	// Write stores a, replacing any previous content, and returns its path.
	Write(ctx context.Context, a entities.Artifact) (string, error)
	// Prune removes previously generated files that are not in keep
	// (relative paths) and returns the removed paths.
	Prune(ctx context.Context, keep []string) ([]string, error)
}
