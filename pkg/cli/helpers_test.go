/*
Copyright © 2025 recipelog authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/modpack-tools/recipelog/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
			wantErr:    false,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
			wantErr:    false,
		},
		{
			name:       "invalid format xml",
			format:     "xml",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "invalid format csv",
			format:     "csv",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "invalid format unknown",
			format:     "unknown",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "empty format",
			format:     "",
			wantFormat: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a minimal CLI command with the format flag
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestOpenSource_Stdin(t *testing.T) {
	rc, err := openSource("-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()
	if rc == nil {
		t.Fatal("expected reader for stdin")
	}
}

func TestOpenSource_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")
	content := `furnace.addRecipe("iron", <item:minecraft:iron_ingot>, <item:minecraft:iron_ore>, 0.7, 200);`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write log: %v", err)
	}

	rc, err := openSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if string(got) != content {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestOpenSource_MissingFile(t *testing.T) {
	if _, err := openSource(filepath.Join(t.TempDir(), "nope.log")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenSource_HTTP(t *testing.T) {
	content := `<recipetype:mekanism:crushing>.addRecipe("gravel", <item:minecraft:cobblestone>, <item:minecraft:gravel>);`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(content))
	}))
	defer srv.Close()

	rc, err := openSource(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if string(got) != content {
		t.Fatalf("unexpected content: %q", got)
	}
}
