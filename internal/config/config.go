package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/joho/godotenv"

	"i18ngen/internal/domain"
	"i18ngen/internal/infrastructure/codegen"
	"i18ngen/internal/infrastructure/filesystem"
)

// Defaults applied when the matching variable is unset.
const (
	DefaultSchemaFile    = "messages.schema.json"
	DefaultLocalesDir    = "locales"
	DefaultOutSubpath    = "internal/generated/i18n"
	DefaultRuntimeImport = codegen.DefaultRuntimeImport
	DefaultLogLevel      = "info"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	SourceRoot    string
	DestDir       string
	SchemaPath    string
	LocalesDir    string
	Extensions    []string
	Package       string
	ImportPath    string // empty: resolved from the enclosing go.mod
	RuntimeImport string
	LogLevel      string
}

// Load builds the configuration for one run. sourceRoot defaults to the
// working directory and destDir to <sourceRoot>/I18NGEN_OUT_SUBPATH.
// A .env file in the source root is loaded first when present; variables
// already set in the environment win.
func Load(sourceRoot, destDir string) (*Config, error) {
	if strings.TrimSpace(sourceRoot) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: working directory: %w", err)
		}
		sourceRoot = wd
	}

	if err := godotenv.Load(filepath.Join(sourceRoot, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := &Config{
		SourceRoot:    sourceRoot,
		DestDir:       destDir,
		SchemaPath:    os.Getenv("I18NGEN_SCHEMA"),
		LocalesDir:    os.Getenv("I18NGEN_LOCALES_DIR"),
		Extensions:    splitList(os.Getenv("I18NGEN_EXTENSIONS")),
		Package:       os.Getenv("I18NGEN_PACKAGE"),
		ImportPath:    os.Getenv("I18NGEN_IMPORT_PATH"),
		RuntimeImport: os.Getenv("I18NGEN_RUNTIME_IMPORT"),
		LogLevel:      os.Getenv("I18NGEN_LOG_LEVEL"),
	}
	if strings.TrimSpace(cfg.DestDir) == "" {
		subpath := os.Getenv("I18NGEN_OUT_SUBPATH")
		if strings.TrimSpace(subpath) == "" {
			subpath = DefaultOutSubpath
		}
		cfg.DestDir = filepath.Join(sourceRoot, filepath.FromSlash(subpath))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate fills defaults and checks every field.
func (c *Config) validate() error {
	if strings.TrimSpace(c.SchemaPath) == "" {
		c.SchemaPath = DefaultSchemaFile
	}
	if !filepath.IsAbs(c.SchemaPath) {
		c.SchemaPath = filepath.Join(c.SourceRoot, c.SchemaPath)
	}

	if strings.TrimSpace(c.LocalesDir) == "" {
		c.LocalesDir = DefaultLocalesDir
	}
	if !filepath.IsAbs(c.LocalesDir) {
		c.LocalesDir = filepath.Join(c.SourceRoot, c.LocalesDir)
	}

	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), filesystem.DefaultExtensions...)
	}
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ext == "." || strings.ContainsAny(ext[1:], `./\`) {
			return fmt.Errorf("%w: I18NGEN_EXTENSIONS entry %q", ErrInvalid, c.Extensions[i])
		}
		c.Extensions[i] = ext
	}

	if strings.TrimSpace(c.Package) == "" {
		c.Package = packageFromDir(c.DestDir)
	}
	if !domain.IsPackageName(c.Package) {
		return fmt.Errorf("%w: package name %q (set I18NGEN_PACKAGE)", ErrInvalid, c.Package)
	}

	if strings.TrimSpace(c.RuntimeImport) == "" {
		c.RuntimeImport = DefaultRuntimeImport
	}
	if strings.ContainsAny(c.RuntimeImport, " \"\\") {
		return fmt.Errorf("%w: I18NGEN_RUNTIME_IMPORT %q", ErrInvalid, c.RuntimeImport)
	}
	if strings.ContainsAny(c.ImportPath, " \"\\") {
		return fmt.Errorf("%w: I18NGEN_IMPORT_PATH %q", ErrInvalid, c.ImportPath)
	}

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	return nil
}

// packageFromDir derives a package name from the last path element:
// lowercased, keeping letters, digits and underscores.
func packageFromDir(dir string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(filepath.Base(dir)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
