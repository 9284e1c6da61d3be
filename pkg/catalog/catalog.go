// Package catalog is the runtime side of i18ngen: immutable per-locale
// tables, the registry generated code builds from them, and translators
// resolving a message for a requested locale.
package catalog

// T exposes a minimal i18n contract for user-facing messages.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
