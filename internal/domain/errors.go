package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrSchemaRead    = errors.New("schema unreadable")
	ErrSchemaParse   = errors.New("schema malformed")
	ErrLocaleRead    = errors.New("locale unreadable")
	ErrLocaleParse   = errors.New("locale malformed")
	ErrTagFormat     = errors.New("locale tag has too many subtags")
	ErrDuplicateTag  = errors.New("duplicate canonical locale tag")
	ErrKeyMismatch   = errors.New("locale keys do not match schema")
	ErrValueType     = errors.New("translation value is not a string")
	ErrDuplicateKey  = errors.New("duplicate schema key")
	ErrIdentifier    = errors.New("invalid or colliding identifier")
	ErrWriteArtifact = errors.New("artifact not written")
)

// SchemaReadError reports a schema file that is absent or unreadable.
type SchemaReadError struct {
	Path string
	Err  error
}

func (e *SchemaReadError) Error() string {
	return fmt.Sprintf("read schema %s: %v", e.Path, e.Err)
}

func (e *SchemaReadError) Unwrap() []error { return []error{ErrSchemaRead, e.Err} }

// SchemaParseError reports a schema that is not valid structured data or
// lacks the keys field.
type SchemaParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *SchemaParseError) Error() string {
	msg := fmt.Sprintf("parse schema %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaParseError) Unwrap() []error { return []error{ErrSchemaParse, e.Err} }

// LocaleReadError reports a locale directory or file that is absent or unreadable.
type LocaleReadError struct {
	Path string
	Err  error
}

func (e *LocaleReadError) Error() string {
	return fmt.Sprintf("read locale %s: %v", e.Path, e.Err)
}

func (e *LocaleReadError) Unwrap() []error { return []error{ErrLocaleRead, e.Err} }

// LocaleParseError reports a locale file that is not a flat object.
type LocaleParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LocaleParseError) Error() string {
	msg := fmt.Sprintf("parse locale %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LocaleParseError) Unwrap() []error { return []error{ErrLocaleParse, e.Err} }

// TagFormatError reports a raw tag with more than three subtags.
type TagFormatError struct {
	Tag      string
	Segments int
}

func (e *TagFormatError) Error() string {
	return fmt.Sprintf("locale %q has more than %d subtags (%d)", e.Tag, MaxSubtags, e.Segments)
}

func (e *TagFormatError) Unwrap() error { return ErrTagFormat }

// DuplicateTagError reports two locale files normalizing to the same tag.
type DuplicateTagError struct {
	Tag    string
	First  string
	Second string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("duplicate canonical tag %s: %s and %s", e.Tag, e.First, e.Second)
}

func (e *DuplicateTagError) Unwrap() error { return ErrDuplicateTag }

// KeyMismatchError carries every missing and extra key of a locale file.
type KeyMismatchError struct {
	File    string
	Missing []string
	Extra   []string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("%s: key mismatch: missing [%s], extra [%s]",
		e.File, strings.Join(e.Missing, ", "), strings.Join(e.Extra, ", "))
}

func (e *KeyMismatchError) Unwrap() error { return ErrKeyMismatch }

// ValueTypeError reports a translation value that is not a string.
type ValueTypeError struct {
	File string
	Key  string
	Got  string
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("%s: value of key %q is %s, want string", e.File, e.Key, e.Got)
}

func (e *ValueTypeError) Unwrap() error { return ErrValueType }

// DuplicateKeyError reports a key declared twice in the schema.
type DuplicateKeyError struct {
	Key    string
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("schema key %q declared at positions %d and %d", e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// IdentifierError reports a key or tag whose Go identifier is invalid or
// collides with the identifier of another key or tag.
type IdentifierError struct {
	Name     string
	Ident    string
	Conflict string
}

func (e *IdentifierError) Error() string {
	if e.Conflict != "" {
		return fmt.Sprintf("%q and %q both map to identifier %s", e.Conflict, e.Name, e.Ident)
	}
	return fmt.Sprintf("%q maps to %q, which is not a valid exported Go identifier", e.Name, e.Ident)
}

func (e *IdentifierError) Unwrap() error { return ErrIdentifier }

// WriteError reports an artifact that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWriteArtifact, e.Err} }

var codes = []struct {
	err  error
	code string
}{
	{ErrSchemaRead, "schema_read"},
	{ErrSchemaParse, "schema_parse"},
	{ErrLocaleRead, "locale_read"},
	{ErrLocaleParse, "locale_parse"},
	{ErrTagFormat, "tag_format"},
	{ErrDuplicateTag, "duplicate_tag"},
	{ErrKeyMismatch, "key_mismatch"},
	{ErrValueType, "value_type"},
	{ErrDuplicateKey, "duplicate_key"},
	{ErrIdentifier, "identifier"},
	{ErrWriteArtifact, "write"},
}

// Code returns the stable code of a domain error, or "" when err is not one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
