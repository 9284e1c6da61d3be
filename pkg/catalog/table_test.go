package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableIsImmutable(t *testing.T) {
	src := map[string]string{"welcome": "Hi", "error": "Oops"}
	table := NewTable("en", src)
	src["welcome"] = "changed"
	src["extra"] = "x"

	msg, ok := table.Lookup("welcome")
	require.True(t, ok)
	require.Equal(t, "Hi", msg)
	_, ok = table.Lookup("extra")
	require.False(t, ok)
	require.Equal(t, 2, table.Len())
	require.Equal(t, []string{"error", "welcome"}, table.Keys())
	require.Equal(t, "en", table.Tag())
}

func TestNilTable(t *testing.T) {
	var table *Table
	_, ok := table.Lookup("welcome")
	require.False(t, ok)
	require.Zero(t, table.Len())
	require.Nil(t, table.Keys())
}

func TestRegistry(t *testing.T) {
	en := NewTable("en", map[string]string{"welcome": "Hi"})
	fr := NewTable("fr", map[string]string{"welcome": "Salut"})
	reg := NewRegistry(Entry{Tag: "en", Table: en}, Entry{Tag: "fr", Table: fr})

	require.Equal(t, 2, reg.Len())
	require.Equal(t, []string{"en", "fr"}, reg.Tags())
	got, ok := reg.Table("fr")
	require.True(t, ok)
	require.Same(t, fr, got)
	_, ok = reg.Table("de")
	require.False(t, ok)

	entries := reg.Entries()
	entries[0] = Entry{Tag: "xx"}
	require.Equal(t, []string{"en", "fr"}, reg.Tags())
}

func TestRegistryRejectsInvalidEntries(t *testing.T) {
	en := NewTable("en", nil)
	require.Panics(t, func() { NewRegistry(Entry{Tag: "en", Table: en}, Entry{Tag: "en", Table: en}) })
	require.Panics(t, func() { NewRegistry(Entry{Tag: "en"}) })
	require.Equal(t, 0, NewRegistry().Len())
}
