/*
Copyright © 2025 recipelog authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/modpack-tools/recipelog/pkg/handler"
	"github.com/modpack-tools/recipelog/pkg/header"
	"github.com/modpack-tools/recipelog/pkg/report"
	"github.com/modpack-tools/recipelog/pkg/serializer"
)

// HandlerSet is the serializable listing of registered handlers.
type HandlerSet struct {
	header.Header `json:",inline" yaml:",inline"`

	Count    int            `json:"count" yaml:"count"`
	Handlers []HandlerEntry `json:"handlers" yaml:"handlers"`
}

// HandlerEntry describes one registered handler.
type HandlerEntry struct {
	Name       string `json:"name" yaml:"name"`
	RecipeType string `json:"recipeType,omitempty" yaml:"recipeType,omitempty"`
	Format     string `json:"format" yaml:"format"`
	Arities    []int  `json:"arities" yaml:"arities"`
}

func formatsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "formats",
		EnableShellCompletion: true,
		Usage:                 "List the recipe signatures the extractor recognizes",
		Description: `List every registered handler with its record format, recipe type
(empty for untyped built-in calls like furnace.addRecipe), and the
field counts it accepts.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			reg := handler.Default()
			set := &HandlerSet{
				Count:    reg.Len(),
				Handlers: make([]HandlerEntry, 0, reg.Len()),
			}
			set.Init(header.KindHandlerSet, report.FullAPIVersion, version)

			for _, h := range reg.Handlers() {
				set.Handlers = append(set.Handlers, HandlerEntry{
					Name:       h.Name,
					RecipeType: h.RecipeType(),
					Format:     string(h.Format),
					Arities:    h.AcceptedCounts(),
				})
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()

			return writer.Serialize(ctx, set)
		},
	}
}
