package domain

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reservedIdents are declared by the generated package itself.
var reservedIdents = map[string]struct{}{
	"MessageKey":         {},
	"MessageKeyCount":    {},
	"MessageKeyFromID":   {},
	"MessageKeyFromName": {},
	"MessageKeys":        {},
	"GeneratedRegistry":  {},
}

// KeyIdent converts a snake_case key name into a capitalized CamelCase
// identifier ("login_success" -> "LoginSuccess"). Any rune that is neither a
// letter nor a digit separates words, so dotted keys convert as well.
func KeyIdent(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

// IsExportedIdent reports whether s can be used as an exported Go identifier.
func IsExportedIdent(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}

// CheckSchemaKeys verifies that key names are unique and map to distinct,
// valid identifiers. It returns the identifiers in schema order.
func CheckSchemaKeys(keys []string) ([]string, error) {
	positions := make(map[string]int, len(keys))
	owners := make(map[string]string, len(keys))
	idents := make([]string, 0, len(keys))
	for i, key := range keys {
		if first, ok := positions[key]; ok {
			return nil, &DuplicateKeyError{Key: key, First: first, Second: i}
		}
		positions[key] = i

		ident := KeyIdent(key)
		if !IsExportedIdent(ident) {
			return nil, &IdentifierError{Name: key, Ident: ident}
		}
		if _, ok := reservedIdents[ident]; ok {
			return nil, &IdentifierError{Name: key, Ident: ident, Conflict: ident}
		}
		if other, ok := owners[ident]; ok {
			return nil, &IdentifierError{Name: key, Ident: ident, Conflict: other}
		}
		owners[ident] = key
		idents = append(idents, ident)
	}
	return idents, nil
}

// IsPackageName reports whether s can name a generated Go package.
func IsPackageName(s string) bool {
	return token.IsIdentifier(s) && s != "_" && s != "main"
}
