package main

import (
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"i18ngen/internal/application"
	"i18ngen/internal/config"
	"i18ngen/internal/infrastructure/codegen"
	"i18ngen/internal/infrastructure/filesystem"
	"i18ngen/internal/infrastructure/gomod"
	"i18ngen/internal/ports/input"
)

var log = logging.Logger("i18ngen/cmd")

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "i18ngen",
		Usage:     "generate Go message keys, locale tables and a locale registry",
		ArgsUsage: "[source-root] [dest-dir]",
		Description: `i18ngen reads <source-root>/messages.schema.json and every locale file in
   <source-root>/locales, checks each locale against the schema and writes:

     <dest-dir>/keys.go            message key identifiers
     <dest-dir>/locales/<TAG>.go   one immutable table per locale
     <dest-dir>/registry.go        canonical tag -> table registry

   source-root defaults to the working directory and dest-dir to
   <source-root>/internal/generated/i18n. Settings can also come from
   I18NGEN_* variables or a .env file in the source root.`,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"I18NGEN_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Action: generate,
	}
}

func generate(cctx *cli.Context) error {
	if cctx.NArg() > 2 {
		return fmt.Errorf("expected at most 2 arguments, got %d", cctx.NArg())
	}

	cfg, err := config.Load(cctx.Args().Get(0), cctx.Args().Get(1))
	if err != nil {
		return err
	}
	if cctx.IsSet("log-level") {
		cfg.LogLevel = cctx.String("log-level")
	}
	if cctx.Bool("quiet") {
		cfg.LogLevel = "error"
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}

	log.Infof("source root: %s", cfg.SourceRoot)
	log.Infof("dest dir: %s (package %s)", cfg.DestDir, cfg.Package)

	// go.mod is only consulted once a registry referencing locale tables is
	// emitted, so input errors are reported outside a module too.
	emitter, err := codegen.NewEmitter(codegen.Options{
		Package:       cfg.Package,
		ImportPath:    cfg.ImportPath,
		RuntimeImport: cfg.RuntimeImport,
		ResolveImportPath: func() (string, error) {
			importPath, err := gomod.ImportPath(cfg.DestDir)
			if err != nil {
				return "", fmt.Errorf("%w (set I18NGEN_IMPORT_PATH)", err)
			}
			log.Infof("import path: %s", importPath)
			return importPath, nil
		},
	})
	if err != nil {
		return err
	}
	svc := application.NewGeneratorService(
		filesystem.NewSchemaLoader(),
		filesystem.NewLocaleScanner(cfg.Extensions...),
		emitter,
		filesystem.NewArtifactWriter(cfg.DestDir),
	)

	res, err := svc.Generate(cctx.Context, input.GenerateRequest{
		SchemaPath: cfg.SchemaPath,
		LocalesDir: cfg.LocalesDir,
	})
	if err != nil {
		return err
	}

	out := cctx.App.Writer
	for _, path := range res.Written {
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	for _, path := range res.Removed {
		fmt.Fprintf(out, "removed %s\n", path)
	}
	log.Infof("codegen finished: %d locales %v", len(res.Tags), res.Tags)
	return nil
}

// setupLogging routes every go-log subsystem to stderr at level.
func setupLogging(level string) error {
	lvl, err := logging.LevelFromString(level)
	if err != nil {
		return fmt.Errorf("%w: log level %q", config.ErrInvalid, level)
	}
	logging.SetupLogging(logging.Config{
		Format: logging.PlaintextOutput,
		Stderr: true,
		Level:  lvl,
	})
	return nil
}
