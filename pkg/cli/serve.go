/*
Copyright © 2025 recipelog authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/modpack-tools/recipelog/pkg/report"
	"github.com/modpack-tools/recipelog/pkg/serializer"
	"github.com/modpack-tools/recipelog/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve an extraction report over HTTP",
		Description: `Load a previously generated extraction report and serve it over a
read-only HTTP API with outcome filtering, batch statistics, and the
registered handler set.

# Examples

Serve a report on the default port (8080):
  recipelog serve -r report.json

Serve on a custom port:
  recipelog serve -r report.yaml -p 9090`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "report",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path of the extraction report to serve (json or yaml)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides the PORT environment variable)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("report")
			rep, err := serializer.FromFile[report.Report](path)
			if err != nil {
				return fmt.Errorf("failed to load report from %q: %w", path, err)
			}

			cfg := server.NewConfig()
			cfg.Version = version
			if p := int(cmd.Int("port")); p > 0 {
				cfg.Port = p
			}

			slog.Info("serving report",
				"path", path,
				"port", cfg.Port,
				"outcomes", len(rep.Outcomes))

			return server.RunWithConfig(cfg, rep)
		},
	}
}
