package filesystem

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"i18ngen/internal/domain"
	"i18ngen/internal/domain/entities"
	"i18ngen/internal/ports/output"
)

var _ output.LocaleSource = (*LocaleScanner)(nil)

// DefaultExtensions mark files as locale data.
var DefaultExtensions = []string{".json", ".toml"}

// LocaleScanner discovers locale files one level deep in a directory and
// decodes them.
type LocaleScanner struct {
	extensions map[string]struct{}
}

// NewLocaleScanner builds a scanner accepting the given extensions
// (".json" or "json"). With none, DefaultExtensions apply.
func NewLocaleScanner(extensions ...string) *LocaleScanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return &LocaleScanner{extensions: set}
}

// Scan returns the locale files of dir in directory-listing order. Entries
// whose name yields an empty tag are skipped. Two files normalizing to the
// same canonical tag, or to the same table identifier, are an error.
func (s *LocaleScanner) Scan(_ context.Context, dir string) ([]entities.LocaleSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.LocaleReadError{Path: dir, Err: err}
	}

	var sources []entities.LocaleSource
	byTag := map[string]string{}
	byIdent := map[string]entities.LocaleSource{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if _, ok := s.extensions[ext]; !ok {
			continue
		}
		raw := strings.TrimSuffix(name, ext)
		tag, err := domain.NormalizeTag(raw)
		if err != nil {
			return nil, err
		}
		if tag.IsZero() {
			log.Debugf("skipping %s: empty locale tag", name)
			continue
		}

		path := filepath.Join(dir, name)
		if first, ok := byTag[tag.String()]; ok {
			return nil, &domain.DuplicateTagError{Tag: tag.String(), First: first, Second: path}
		}
		byTag[tag.String()] = path

		src := entities.LocaleSource{Path: path, RawTag: raw, Tag: tag}
		ident := src.Ident()
		if !domain.IsExportedIdent(ident) {
			return nil, &domain.IdentifierError{Name: tag.String(), Ident: ident}
		}
		if other, ok := byIdent[ident]; ok {
			return nil, &domain.IdentifierError{Name: tag.String(), Ident: ident, Conflict: other.Tag.String()}
		}
		byIdent[ident] = src

		if _, err := language.Parse(tag.String()); err != nil {
			log.Warnf("%s: %q is not a well-formed BCP 47 tag: %v", path, tag.String(), err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// Read decodes a locale file holding one flat object.
func (s *LocaleScanner) Read(_ context.Context, src entities.LocaleSource) (entities.LocaleFile, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return entities.LocaleFile{}, &domain.LocaleReadError{Path: src.Path, Err: err}
	}

	var values map[string]any
	if isTOML(src.Path) {
		if err := toml.Unmarshal(data, &values); err != nil {
			return entities.LocaleFile{}, &domain.LocaleParseError{Path: src.Path, Reason: "invalid TOML", Err: err}
		}
	} else {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return entities.LocaleFile{}, &domain.LocaleParseError{Path: src.Path, Reason: "invalid JSON", Err: err}
		}
		obj, ok := doc.(map[string]any)
		if !ok {
			return entities.LocaleFile{}, &domain.LocaleParseError{Path: src.Path, Reason: "top-level value is not an object"}
		}
		values = obj
	}
	if values == nil {
		values = map[string]any{}
	}
	return entities.LocaleFile{Source: src, Values: values}, nil
}
