package catalog

import (
	"fmt"
	"strings"
	"sync"

	logging "github.com/ipfs/go-log/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"golang.org/x/text/language"
)

var log = logging.Logger("catalog")

var _ T = (*Translator)(nil)

// Translator resolves messages from a Registry of generated tables. It is
// built once at startup and shared by reference. Messages are rendered with
// go-i18n's text parser, the same one BundleTranslator uses, and parsed
// templates are cached per message source.
type Translator struct {
	registry   *Registry
	byFold     map[string]*Table
	supported  []*Table
	matcher    language.Matcher
	defaultTag string
	fallback   *Table

	parser template.Parser
	parsed sync.Map // message source -> template.ParsedTemplate
}

// NewTranslator builds a Translator over reg. defaultLocale must name one of
// the registry's tables; it is used when no table matches the requested
// locale or when the matched table lacks a key.
func NewTranslator(reg *Registry, defaultLocale string) (*Translator, error) {
	tr := &Translator{
		registry: reg,
		byFold:   make(map[string]*Table, reg.Len()),
		parser:   &template.TextParser{},
	}
	for _, e := range reg.Entries() {
		tr.byFold[strings.ToLower(e.Tag)] = e.Table
	}
	fallback, ok := tr.byFold[strings.ToLower(defaultLocale)]
	if !ok {
		return nil, fmt.Errorf("catalog: default locale %q is not registered (have %v)", defaultLocale, reg.Tags())
	}
	tr.fallback = fallback
	tr.defaultTag = fallback.Tag()

	// The default goes first so the matcher falls back to it.
	ordered := []*Table{fallback}
	for _, e := range reg.Entries() {
		if e.Table != fallback {
			ordered = append(ordered, e.Table)
		}
	}
	var tags []language.Tag
	for _, table := range ordered {
		tag, err := language.Parse(table.Tag())
		if err != nil {
			log.Debugf("catalog: %q is not a BCP 47 tag, exact matches only: %v", table.Tag(), err)
			continue
		}
		tags = append(tags, tag)
		tr.supported = append(tr.supported, table)
	}
	if len(tags) > 0 {
		tr.matcher = language.NewMatcher(tags)
	}
	return tr, nil
}

// DefaultLocale returns the tag of the fallback table.
func (tr *Translator) DefaultLocale() string { return tr.defaultTag }

// Registry returns the registry the translator reads from.
func (tr *Translator) Registry() *Registry { return tr.registry }

// Resolve returns the table serving locale: an exact (case-insensitive) tag
// match first, then the closest BCP 47 match, then the default table.
func (tr *Translator) Resolve(locale string) *Table {
	if table, ok := tr.byFold[strings.ToLower(strings.ReplaceAll(locale, "_", "-"))]; ok {
		return table
	}
	if tr.matcher != nil && locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			_, idx, conf := tr.matcher.Match(tag)
			if conf != language.No && idx < len(tr.supported) {
				return tr.supported[idx]
			}
		}
	}
	return tr.fallback
}

// Lookup returns the raw message for key in locale, falling back to the
// default table when the resolved table lacks key.
func (tr *Translator) Lookup(locale, key string) (string, bool) {
	if msg, ok := tr.Resolve(locale).Lookup(key); ok {
		return msg, true
	}
	return tr.fallback.Lookup(key)
}

// T renders the message identified by key for the given locale. Messages are
// go-i18n templates executed with data; a message that fails to parse or
// render is returned unrendered. Unknown keys render as the key itself.
func (tr *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, ok := tr.Lookup(locale, key)
	if !ok {
		log.Debugf("catalog: no message for key=%s locale=%s", key, locale)
		return key
	}
	tmpl, err := tr.template(msg)
	if err != nil {
		log.Warnf("catalog: parse template (key=%s, locale=%s): %v", key, locale, err)
		return msg
	}
	out, err := tmpl.Execute(data)
	if err != nil {
		log.Warnf("catalog: render template (key=%s, locale=%s): %v", key, locale, err)
		return msg
	}
	return out
}

func (tr *Translator) template(src string) (template.ParsedTemplate, error) {
	if cached, ok := tr.parsed.Load(src); ok {
		return cached.(template.ParsedTemplate), nil
	}
	tmpl, err := tr.parser.Parse(src, "", "")
	if err != nil {
		return nil, err
	}
	if tr.parser.Cacheable() {
		tr.parsed.Store(src, tmpl)
	}
	return tmpl, nil
}
