package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/corekit/internal/cli"
	"github.com/vk/corekit/internal/hcl"
	"github.com/vk/corekit/internal/kernel"
)

// main is the entrypoint for the corekit runtime.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx := context.Background()
	loader := hcl.NewLoader()

	manifest, err := loader.LoadManifest(ctx, opts.ManifestPath)
	if err != nil {
		return err
	}

	// Flags override the manifest's runtime block.
	cfg := &kernel.Config{
		Root:      manifest.Runtime.Root,
		Debug:     manifest.Runtime.Debug || opts.Debug,
		LogLevel:  opts.LogLevel,
		LogFormat: opts.LogFormat,
	}
	if opts.Root != "" {
		cfg.Root = opts.Root
	}
	if manifest.Runtime.LogLevel != "" && opts.LogLevel == "info" {
		cfg.LogLevel = manifest.Runtime.LogLevel
	}
	if manifest.Runtime.LogFormat != "" && opts.LogFormat == "text" {
		cfg.LogFormat = manifest.Runtime.LogFormat
	}

	k := kernel.New(outW, cfg, loader)
	if err := k.Boot(ctx, manifest); err != nil {
		return err
	}
	defer k.SetApplication(nil)

	return k.Run(ctx)
}
