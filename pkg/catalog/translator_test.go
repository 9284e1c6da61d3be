package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry(
		Entry{Tag: "en", Table: NewTable("en", map[string]string{
			"welcome":       "Welcome",
			"login_success": "Hello {{.Name}}",
			"only_en":       "English only",
		})},
		Entry{Tag: "en-IN", Table: NewTable("en-IN", map[string]string{
			"welcome":       "Namaste",
			"login_success": "Hello {{.Name}}ji",
		})},
		Entry{Tag: "fr", Table: NewTable("fr", map[string]string{
			"welcome":       "Bienvenue",
			"login_success": "Bonjour {{.Name}}",
		})},
	)
}

func TestNewTranslatorUnknownDefault(t *testing.T) {
	_, err := NewTranslator(testRegistry(), "de")
	require.Error(t, err)
}

func TestTranslatorResolve(t *testing.T) {
	tr, err := NewTranslator(testRegistry(), "en")
	require.NoError(t, err)
	require.Equal(t, "en", tr.DefaultLocale())

	cases := map[string]string{
		"en-IN": "en-IN",
		"en-in": "en-IN",
		"en_IN": "en-IN",
		"fr":    "fr",
		"fr-CA": "fr",
		"en-US": "en",
		"de":    "en",
		"":      "en",
		"???":   "en",
	}
	for locale, want := range cases {
		require.Equal(t, want, tr.Resolve(locale).Tag(), "locale %q", locale)
	}
}

func TestTranslatorT(t *testing.T) {
	tr, err := NewTranslator(testRegistry(), "en")
	require.NoError(t, err)

	require.Equal(t, "Namaste", tr.T("en-IN", "welcome", nil))
	require.Equal(t, "Bonjour Ana", tr.T("fr", "login_success", map[string]any{"Name": "Ana"}))
	require.Equal(t, "English only", tr.T("fr", "only_en", nil))
	require.Equal(t, "missing_key", tr.T("fr", "missing_key", nil))
	require.Equal(t, "", tr.T("fr", "", nil))
	require.Equal(t, "Hello <no value>", tr.T("en", "login_success", nil))
	require.Equal(t, "Hello ", tr.T("en", "login_success", map[string]any{"Name": ""}))

	msg, ok := tr.Lookup("de", "welcome")
	require.True(t, ok)
	require.Equal(t, "Welcome", msg)
}

func TestTranslatorParseError(t *testing.T) {
	reg := NewRegistry(Entry{Tag: "en", Table: NewTable("en", map[string]string{"broken": "Hi {{.Name"})})
	tr, err := NewTranslator(reg, "en")
	require.NoError(t, err)
	require.Equal(t, "Hi {{.Name", tr.T("en", "broken", map[string]any{"Name": "Ana"}))
}

func TestTranslatorsRenderAlike(t *testing.T) {
	messages := map[string]string{
		"greet": "Hi {{.Name}}",
		"plain": "Plain text",
		"count": "{{.Count}} new messages",
	}
	generated, err := NewTranslator(NewRegistry(Entry{Tag: "en", Table: NewTable("en", messages)}), "en")
	require.NoError(t, err)

	bundle, err := NewBundleTranslator(fstest.MapFS{
		"en.json": {Data: []byte(`{"greet": "Hi {{.Name}}", "plain": "Plain text", "count": "{{.Count}} new messages"}`)},
	}, "en")
	require.NoError(t, err)

	inputs := []map[string]any{
		nil,
		{},
		{"Name": "Ana", "Count": 3},
	}
	for key := range messages {
		for _, data := range inputs {
			require.Equal(t, bundle.T("en", key, data), generated.T("en", key, data), "key %s data %v", key, data)
		}
	}
	require.Equal(t, "Hi <no value>", generated.T("en", "greet", nil))

	// Second render comes from the parsed-template cache.
	require.Equal(t, "Hi Ana", generated.T("en", "greet", map[string]any{"Name": "Ana"}))
	require.Equal(t, "Hi Bo", generated.T("en", "greet", map[string]any{"Name": "Bo"}))
}
