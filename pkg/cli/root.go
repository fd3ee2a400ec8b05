/*
Copyright © 2025 recipelog authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/modpack-tools/recipelog/pkg/logging"
)

const (
	name           = "recipelog"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd assembles the top-level command with all subcommands.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Extract structured recipe records from mod-pack build logs",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			extractCmd(),
			formatsCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and handles SIGINT and
// SIGTERM for graceful shutdown.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
