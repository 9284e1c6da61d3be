// Package codegen renders the generated Go sources: the message key set, one
// lookup table per locale and the registry tying tags to tables.
package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"

	"i18ngen/internal/domain"
	"i18ngen/internal/domain/entities"
	"i18ngen/internal/ports/output"
)

// DefaultRuntimeImport is the import path of the package providing
// catalog.Table and catalog.Registry to generated code.
const DefaultRuntimeImport = "i18ngen/pkg/catalog"

const (
	keysFile     = "keys.go"
	registryFile = "registry.go"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("codegen").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).ParseFS(templateFS, "templates/*.tmpl"))

var _ output.Emitter = (*Emitter)(nil)

// Options configure the generated packages.
type Options struct {
	// Package is the package name of keys.go and registry.go.
	Package string
	// ImportPath is the import path of the destination package. The locales
	// package is imported from ImportPath + "/locales".
	ImportPath string
	// ResolveImportPath supplies ImportPath when it is empty. It is called at
	// most once, by the first EmitRegistry that references a locale table.
	ResolveImportPath func() (string, error)
	// RuntimeImport is the import path of the catalog runtime package.
	RuntimeImport string
}

// Emitter renders artifacts. Output depends only on its inputs, so
// unchanged inputs give byte-identical files.
type Emitter struct {
	opts Options
}

func NewEmitter(opts Options) (*Emitter, error) {
	if !domain.IsPackageName(opts.Package) {
		return nil, fmt.Errorf("codegen: invalid package name %q", opts.Package)
	}
	if opts.ImportPath == "" && opts.ResolveImportPath == nil {
		return nil, errors.New("codegen: import path is required")
	}
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = DefaultRuntimeImport
	}
	return &Emitter{opts: opts}, nil
}

type keyData struct {
	ID    int
	Ident string
	Name  string
}

func (e *Emitter) EmitKeys(schema entities.Schema, idents []string) (entities.Artifact, error) {
	if len(idents) != len(schema.Keys) {
		return entities.Artifact{}, fmt.Errorf("codegen: %d identifiers for %d keys", len(idents), len(schema.Keys))
	}
	keys := make([]keyData, len(schema.Keys))
	for i, name := range schema.Keys {
		keys[i] = keyData{ID: i, Ident: idents[i], Name: name}
	}
	return e.render(entities.ArtifactKeys, keysFile, "keys.go.tmpl", map[string]any{
		"Header":     entities.GeneratedHeader,
		"Package":    e.opts.Package,
		"SchemaName": filepath.Base(schema.Path),
		"Keys":       keys,
	})
}

type entryData struct {
	Key   string
	Value string
}

// EmitLocale renders one locale table with its entries in schema order.
func (e *Emitter) EmitLocale(locale entities.ValidatedLocale, keys []string) (entities.Artifact, error) {
	entries := make([]entryData, 0, len(keys))
	for _, key := range keys {
		value, ok := locale.Messages[key]
		if !ok {
			return entities.Artifact{}, fmt.Errorf("codegen: locale %s has no value for %q", locale.Source.Tag, key)
		}
		entries = append(entries, entryData{Key: key, Value: value})
	}
	ident := locale.Source.Ident()
	rel := path.Join(entities.LocalesSubdir, ident+".go")
	return e.render(entities.ArtifactLocale, rel, "locale.go.tmpl", map[string]any{
		"Header":        entities.GeneratedHeader,
		"Package":       entities.LocalesSubdir,
		"RuntimeImport": e.opts.RuntimeImport,
		"Ident":         ident,
		"Tag":           locale.Source.Tag.String(),
		"Entries":       entries,
	})
}

type registryEntry struct {
	Tag   string
	Ident string
}

// EmitRegistry renders the registry. Entries are sorted by canonical tag so
// the output does not depend on directory listing order.
func (e *Emitter) EmitRegistry(refs []entities.TableRef) (entities.Artifact, error) {
	entries := make([]registryEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, registryEntry{Tag: ref.Tag.String(), Ident: ref.Ident})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Tag < entries[j].Tag })

	var localesImport string
	if len(entries) > 0 {
		importPath, err := e.importPath()
		if err != nil {
			return entities.Artifact{}, err
		}
		localesImport = path.Join(importPath, entities.LocalesSubdir)
	}
	return e.render(entities.ArtifactRegistry, registryFile, "registry.go.tmpl", map[string]any{
		"Header":        entities.GeneratedHeader,
		"Package":       e.opts.Package,
		"RuntimeImport": e.opts.RuntimeImport,
		"LocalesImport": localesImport,
		"Entries":       entries,
	})
}

func (e *Emitter) importPath() (string, error) {
	if e.opts.ImportPath != "" {
		return e.opts.ImportPath, nil
	}
	importPath, err := e.opts.ResolveImportPath()
	if err != nil {
		return "", fmt.Errorf("codegen: resolve import path: %w", err)
	}
	if importPath == "" {
		return "", errors.New("codegen: resolved an empty import path")
	}
	e.opts.ImportPath = importPath
	return importPath, nil
}

func (e *Emitter) render(kind entities.ArtifactKind, rel, name string, data any) (entities.Artifact, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return entities.Artifact{}, fmt.Errorf("codegen: render %s: %w", rel, err)
	}
	src, err := imports.Process(rel, buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return entities.Artifact{}, fmt.Errorf("codegen: format %s: %w", rel, err)
	}
	return entities.Artifact{Kind: kind, RelPath: rel, Content: src}, nil
}
