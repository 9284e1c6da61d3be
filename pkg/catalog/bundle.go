package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var _ T = (*BundleTranslator)(nil)

// BundleTranslator is a thin wrapper around go-i18n's Bundle/Localizer. It
// serves untransformed locale files loaded at process start, for programs
// that do not embed generated tables.
type BundleTranslator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	loaded          []string
}

// NewBundleTranslator loads every *.json and *.toml file at the root of fsys
// (e.g. os.DirFS("locales")) into a go-i18n bundle whose default language is
// defaultLocale. File names carry the locale: "en-IN.json", "fr.toml".
// Files go-i18n cannot parse are logged and skipped.
func NewBundleTranslator(fsys fs.FS, defaultLocale string) (*BundleTranslator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("catalog: list locale files: %w", err)
	}
	var loaded []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if ext := path.Ext(name); ext != ".json" && ext != ".toml" {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(fsys, name); err != nil {
			log.Warnf("i18n: failed to load %s: %v", name, err)
			continue
		}
		loaded = append(loaded, name)
	}
	sort.Strings(loaded)

	return &BundleTranslator{
		bundle:          bundle,
		defaultLanguage: tag,
		loaded:          loaded,
	}, nil
}

// Loaded returns the names of the files that were loaded.
func (t *BundleTranslator) Loaded() []string {
	return append([]string(nil), t.loaded...)
}

// Tags returns the languages present in the bundle.
func (t *BundleTranslator) Tags() []language.Tag {
	return t.bundle.LanguageTags()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *BundleTranslator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		// go-i18n returns the default-language message alongside a not-found
		// error when the requested locale lacks the key.
		var notFound *i18n.MessageNotFoundErr
		if msg != "" && errors.As(err, &notFound) {
			return msg
		}
		log.Debugf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}
