package output

import "i18ngen/internal/domain/entities"

// Emitter renders the generated source units.
type Emitter interface {
	EmitKeys(schema entities.Schema, idents []string) (entities.Artifact, error)
	EmitLocale(locale entities.ValidatedLocale, keys []string) (entities.Artifact, error)
	EmitRegistry(refs []entities.TableRef) (entities.Artifact, error)
}
