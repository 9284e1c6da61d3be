package input

import (
	"context"

	"i18ngen/internal/domain/entities"
)

// GenerateRequest locates the inputs of one generation run.
type GenerateRequest struct {
	SchemaPath string
	LocalesDir string
}

type GeneratorUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*entities.GenerationResult, error)
}
