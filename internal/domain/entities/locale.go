package entities

import "i18ngen/internal/domain"

// LocaleSource is a locale file discovered in the locale directory.
type LocaleSource struct {
	Path   string
	RawTag string // file stem, e.g. "en-in"
	Tag    domain.CanonicalTag
}

// Ident returns the Go identifier of the locale's generated table.
func (s LocaleSource) Ident() string { return s.Tag.Ident() }

// LocaleFile is the decoded content of a LocaleSource.
type LocaleFile struct {
	Source LocaleSource
	Values map[string]any
}

// ValidatedLocale holds exactly the schema's keys, all bound to strings.
type ValidatedLocale struct {
	Source   LocaleSource
	Messages map[string]string
}

// TableRef pairs a canonical tag with the identifier of its generated table.
type TableRef struct {
	Tag   domain.CanonicalTag
	Ident string
}
