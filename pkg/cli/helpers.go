/*
Copyright © 2025 recipelog authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/modpack-tools/recipelog/pkg/serializer"
)

// Flags shared by multiple commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format (json, yaml, table)",
		Sources: cli.EnvVars("RECIPELOG_FORMAT"),
		Value:   "json",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("RECIPELOG_LOG_LEVEL"),
		Value:   "info",
	}
)

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// openSource opens a build log for reading. Supports local paths, HTTP and
// HTTPS URLs, and "-" for stdin. Remote logs are downloaded to a temporary
// file first.
func openSource(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		tmp := filepath.Join(os.TempDir(), fmt.Sprintf("recipelog-log-%d.tmp", time.Now().UnixNano()))
		if err := serializer.NewHttpReader().Download(path, tmp); err != nil {
			return nil, fmt.Errorf("failed to download log from %q: %w", path, err)
		}
		return os.Open(tmp)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %q: %w", path, err)
	}
	return f, nil
}
