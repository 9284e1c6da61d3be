package entities

// GeneratedHeader opens every generated file. Files carrying it are owned by
// the generator and may be overwritten or removed.
const GeneratedHeader = "// Code generated by i18ngen. DO NOT EDIT."

// LocalesSubdir is the destination subdirectory holding per-locale tables.
const LocalesSubdir = "locales"

// ArtifactKind names the three generated source units.
type ArtifactKind string

const (
	ArtifactKeys     ArtifactKind = "keys"
	ArtifactLocale   ArtifactKind = "locale"
	ArtifactRegistry ArtifactKind = "registry"
)

// Artifact is one generated Go source file.
type Artifact struct {
	Kind    ArtifactKind
	RelPath string // slash-separated, relative to the destination directory
	Content []byte
}

// GenerationResult summarizes a completed run.
type GenerationResult struct {
	Written []string
	Removed []string
	Tags    []string
}
