package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateMessages(t *testing.T) {
	keys := []string{"welcome", "login_success"}
	got, err := ValidateMessages("locales/en.json", map[string]any{
		"welcome":       "Hi",
		"login_success": "Logged in",
	}, keys)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"welcome": "Hi", "login_success": "Logged in"}, got)
}

func TestValidateMessagesMissing(t *testing.T) {
	_, err := ValidateMessages("locales/en.json", map[string]any{"welcome": "Hi"}, []string{"welcome", "login_success"})

	var mismatch *KeyMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, "locales/en.json", mismatch.File)
	require.Equal(t, []string{"login_success"}, mismatch.Missing)
	require.Equal(t, []string{}, mismatch.Extra)
	require.Equal(t, "key_mismatch", Code(err))
}

func TestValidateMessagesExtra(t *testing.T) {
	_, err := ValidateMessages("locales/en.json", map[string]any{
		"welcome":       "Hi",
		"login_success": "Logged in",
		"foo":           "bar",
	}, []string{"welcome", "login_success"})

	var mismatch *KeyMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, []string{}, mismatch.Missing)
	require.Equal(t, []string{"foo"}, mismatch.Extra)
}

func TestValidateMessagesReportsEveryKey(t *testing.T) {
	_, err := ValidateMessages("fr.json", map[string]any{
		"zeta":  "z",
		"alpha": "a",
		"c":     "c",
	}, []string{"c", "b", "a"})

	var mismatch *KeyMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, []string{"b", "a"}, mismatch.Missing)
	require.Equal(t, []string{"alpha", "zeta"}, mismatch.Extra)
	require.Contains(t, err.Error(), "missing [b, a], extra [alpha, zeta]")
}

func TestValidateMessagesValueType(t *testing.T) {
	cases := map[string]any{
		"a number":  float64(3),
		"an object": map[string]any{"one": "x"},
		"an array":  []any{"x"},
		"a boolean": true,
		"null":      nil,
	}
	for want, value := range cases {
		t.Run(want, func(t *testing.T) {
			_, err := ValidateMessages("en.json", map[string]any{"welcome": "Hi", "error": value}, []string{"welcome", "error"})
			var typeErr *ValueTypeError
			require.True(t, errors.As(err, &typeErr))
			require.Equal(t, "error", typeErr.Key)
			require.Equal(t, "en.json", typeErr.File)
			require.Equal(t, want, typeErr.Got)
			require.Equal(t, "value_type", Code(err))
		})
	}
}
