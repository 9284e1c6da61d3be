package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"i18ngen/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		if code := domain.Code(err); code != "" {
			fmt.Fprintf(os.Stderr, "i18ngen: %s: %v\n", code, err)
		} else {
			fmt.Fprintf(os.Stderr, "i18ngen: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
