package filesystem

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"i18ngen/internal/domain"
	"i18ngen/internal/domain/entities"
	"i18ngen/internal/ports/output"
)

var _ output.ArtifactSink = (*ArtifactWriter)(nil)

// ArtifactWriter writes artifacts below a destination directory. Existing
// files are overwritten; nothing is merged with previous output.
type ArtifactWriter struct {
	root string
}

func NewArtifactWriter(root string) *ArtifactWriter {
	return &ArtifactWriter{root: root}
}

// Root returns the destination directory.
func (w *ArtifactWriter) Root() string { return w.root }

func (w *ArtifactWriter) Write(_ context.Context, a entities.Artifact) (string, error) {
	full := filepath.Join(w.root, filepath.FromSlash(a.RelPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", &domain.WriteError{Path: full, Err: err}
	}
	if err := os.WriteFile(full, a.Content, 0o644); err != nil {
		return "", &domain.WriteError{Path: full, Err: err}
	}
	return full, nil
}

// Prune removes generated Go files in the locales subdirectory that this run
// did not write. Files without the generated header are left alone.
func (w *ArtifactWriter) Prune(_ context.Context, keep []string) ([]string, error) {
	kept := make(map[string]struct{}, len(keep))
	for _, rel := range keep {
		kept[path.Clean(rel)] = struct{}{}
	}

	dir := filepath.Join(w.root, entities.LocalesSubdir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.WriteError{Path: dir, Err: err}
	}

	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if _, ok := kept[path.Join(entities.LocalesSubdir, name)]; ok {
			continue
		}
		full := filepath.Join(dir, name)
		generated, err := hasGeneratedHeader(full)
		if err != nil {
			return nil, &domain.WriteError{Path: full, Err: err}
		}
		if !generated {
			continue
		}
		if err := os.Remove(full); err != nil {
			return nil, &domain.WriteError{Path: full, Err: err}
		}
		removed = append(removed, full)
	}
	sort.Strings(removed)
	return removed, nil
}

// hasGeneratedHeader reports whether the first line of path is the generated
// header. Only len(header)+2 bytes are read, so long first lines are fine.
func hasGeneratedHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	prefix := make([]byte, len(entities.GeneratedHeader)+2)
	n, err := io.ReadFull(f, prefix)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	line, _, _ := strings.Cut(string(prefix[:n]), "\n")
	return strings.TrimSpace(line) == entities.GeneratedHeader, nil
}
