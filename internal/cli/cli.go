// Package cli parses command-line arguments into startup options.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the parsed command-line options. Values left at their zero
// value defer to the manifest's runtime block.
type Options struct {
	ManifestPath string
	Root         string
	Debug        bool
	LogFormat    string
	LogLevel     string
}

// Parse processes command-line arguments. It returns populated Options, a
// boolean indicating the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("corekit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
corekit - a dynamic alias-resolution and component-construction runtime.

Usage:
  corekit [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to the application manifest (.hcl file).

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the application manifest.")
	mFlag := flagSet.String("m", "", "Path to the application manifest (shorthand).")
	rootFlag := flagSet.String("root", "", "Path seeding the fixed 'app' root alias. Overrides the manifest.")
	debugFlag := flagSet.Bool("debug", false, "Enable trace logging and strict definition file-name checks.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		slog.Debug("No manifest path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	return &Options{
		ManifestPath: path,
		Root:         *rootFlag,
		Debug:        *debugFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	}, false, nil
}
