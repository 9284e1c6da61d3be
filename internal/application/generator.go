package application

import (
	"context"
	"fmt"
	"sort"

	logging "github.com/ipfs/go-log/v2"

	"i18ngen/internal/domain"
	"i18ngen/internal/domain/entities"
	"i18ngen/internal/ports/input"
	"i18ngen/internal/ports/output"
)

var log = logging.Logger("i18ngen")

var _ input.GeneratorUseCase = (*GeneratorService)(nil)

// GeneratorService runs the generation pipeline: load the schema, scan and
// validate every locale, then emit keys, locale tables and the registry.
type GeneratorService struct {
	schemas output.SchemaSource
	locales output.LocaleSource
	emitter output.Emitter
	sink    output.ArtifactSink
}

func NewGeneratorService(
	schemas output.SchemaSource,
	locales output.LocaleSource,
	emitter output.Emitter,
	sink output.ArtifactSink,
) *GeneratorService {
	return &GeneratorService{
		schemas: schemas,
		locales: locales,
		emitter: emitter,
		sink:    sink,
	}
}

// Generate regenerates the full artifact set. It stops at the first error.
// Every locale is validated before anything is written, so only a write
// failure can leave partial output behind.
func (s *GeneratorService) Generate(ctx context.Context, req input.GenerateRequest) (*entities.GenerationResult, error) {
	schema, err := s.schemas.Load(ctx, req.SchemaPath)
	if err != nil {
		return nil, err
	}
	idents, err := domain.CheckSchemaKeys(schema.Keys)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Path, err)
	}
	log.Infof("schema %s: %d keys", schema.Path, schema.Len())

	sources, err := s.locales.Scan(ctx, req.LocalesDir)
	if err != nil {
		return nil, err
	}
	log.Infof("locales %s: %d files", req.LocalesDir, len(sources))

	validated := make([]entities.ValidatedLocale, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := s.validate(ctx, src, schema)
		if err != nil {
			return nil, err
		}
		validated = append(validated, v)
	}
	sort.Slice(validated, func(i, j int) bool {
		return validated[i].Source.Tag.String() < validated[j].Source.Tag.String()
	})

	artifacts := make([]entities.Artifact, 0, len(validated)+2)
	keysArtifact, err := s.emitter.EmitKeys(schema, idents)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, keysArtifact)

	refs := make([]entities.TableRef, 0, len(validated))
	for _, v := range validated {
		a, err := s.emitter.EmitLocale(v, schema.Keys)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
		refs = append(refs, entities.TableRef{Tag: v.Source.Tag, Ident: v.Source.Ident()})
	}

	registry, err := s.emitter.EmitRegistry(refs)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, registry)

	result := &entities.GenerationResult{}
	keep := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := s.sink.Write(ctx, a)
		if err != nil {
			return nil, err
		}
		log.Debugf("wrote %s artifact %s", a.Kind, path)
		result.Written = append(result.Written, path)
		keep = append(keep, a.RelPath)
	}
	for _, ref := range refs {
		result.Tags = append(result.Tags, ref.Tag.String())
	}

	removed, err := s.sink.Prune(ctx, keep)
	if err != nil {
		return nil, err
	}
	for _, path := range removed {
		log.Infof("removed stale artifact %s", path)
	}
	result.Removed = removed
	return result, nil
}

func (s *GeneratorService) validate(ctx context.Context, src entities.LocaleSource, schema entities.Schema) (entities.ValidatedLocale, error) {
	file, err := s.locales.Read(ctx, src)
	if err != nil {
		return entities.ValidatedLocale{}, err
	}
	messages, err := domain.ValidateMessages(src.Path, file.Values, schema.Keys)
	if err != nil {
		return entities.ValidatedLocale{}, err
	}
	return entities.ValidatedLocale{Source: src, Messages: messages}, nil
}
