package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyIdent(t *testing.T) {
	cases := map[string]string{
		"welcome":          "Welcome",
		"login_success":    "LoginSuccess",
		"login_failed":     "LoginFailed",
		"error":            "Error",
		"http_404_message": "Http404Message",
		"hub.access_key":   "HubAccessKey",
		"alreadyCamel":     "AlreadyCamel",
		"__leading":        "Leading",
	}
	for in, want := range cases {
		require.Equal(t, want, KeyIdent(in), "key %q", in)
	}
}

func TestCheckSchemaKeys(t *testing.T) {
	idents, err := CheckSchemaKeys([]string{"welcome", "login_success", "login_failed", "error"})
	require.NoError(t, err)
	require.Equal(t, []string{"Welcome", "LoginSuccess", "LoginFailed", "Error"}, idents)

	idents, err = CheckSchemaKeys(nil)
	require.NoError(t, err)
	require.Empty(t, idents)
}

func TestCheckSchemaKeysDuplicate(t *testing.T) {
	_, err := CheckSchemaKeys([]string{"welcome", "error", "welcome"})
	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "welcome", dup.Key)
	require.Equal(t, 0, dup.First)
	require.Equal(t, 2, dup.Second)
	require.Equal(t, "duplicate_key", Code(err))
}

func TestCheckSchemaKeysIdentifierErrors(t *testing.T) {
	cases := []struct {
		name     string
		keys     []string
		conflict string
	}{
		{name: "collision", keys: []string{"login_success", "login__success"}, conflict: "login_success"},
		{name: "leading digit", keys: []string{"2fa_code"}},
		{name: "no letters", keys: []string{"___"}},
		{name: "reserved", keys: []string{"message_key"}, conflict: "MessageKey"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CheckSchemaKeys(tc.keys)
			var identErr *IdentifierError
			require.True(t, errors.As(err, &identErr), "got %v", err)
			require.Equal(t, tc.conflict, identErr.Conflict)
			require.Equal(t, "identifier", Code(err))
		})
	}
}
