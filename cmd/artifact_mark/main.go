package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/app"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/config"
)

func main() {
	appRoot, err := app.FindRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load(appRoot, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(app.ExitCode(err))
	}
}
