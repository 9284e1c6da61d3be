package gomod

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindModuleRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/test\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindModuleRoot(nested)
	require.NoError(t, err)
	require.Equal(t, root, got)

	got, err = FindModuleRoot(filepath.Join(root, "not", "created"))
	require.NoError(t, err)
	require.Equal(t, root, got)
}

func TestFindModuleRootMissing(t *testing.T) {
	_, err := FindModuleRoot(t.TempDir())
	require.Error(t, err)
}

func TestImportPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/app\n\ngo 1.24\n"), 0o644))

	got, err := ImportPath(filepath.Join(root, "internal", "generated", "i18n"))
	require.NoError(t, err)
	require.Equal(t, "example.com/app/internal/generated/i18n", got)

	got, err = ImportPath(root)
	require.NoError(t, err)
	require.Equal(t, "example.com/app", got)
}

func TestImportPathWithoutModuleDirective(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("go 1.24\n"), 0o644))

	_, err := ImportPath(filepath.Join(root, "pkg"))
	require.Error(t, err)
}
