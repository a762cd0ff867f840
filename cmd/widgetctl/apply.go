package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/internal/logger"
	"github.com/joshuapare/widgetkit/internal/plan"
	"github.com/joshuapare/widgetkit/pkg/widget"
)

var applyConcurrency int

func init() {
	cmd := newApplyCmd()
	cmd.Flags().IntVarP(&applyConcurrency, "concurrency", "j", 0, "Documents processed in parallel (default from config)")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <plan.yaml|plan.jsonc> <config.xml>...",
		Short: "Apply an edit plan to one or more manifests",
		Long: `The apply command loads a declarative edit plan (YAML, or JSON with
comments) and applies it to every listed manifest. Each document is written
only if all of its edits succeed.

Example:
  widgetctl apply release.yaml config.xml
  widgetctl apply release.jsonc apps/*/config.xml -j 8`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), args)
		},
	}
	return cmd
}

func runApply(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	planPath, paths := args[0], args[1:]

	printVerbose("Loading plan: %s\n", planPath)
	p, err := plan.Load(planPath)
	if err != nil {
		return err
	}

	concurrency := cfg.Concurrency
	if applyConcurrency > 0 {
		concurrency = applyConcurrency
	}

	if dryRun {
		for _, path := range paths {
			doc, err := openDoc(path)
			if err != nil {
				return err
			}
			if err := p.Apply(doc); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := saveDoc(doc); err != nil {
				return err
			}
		}
		return nil
	}

	err = plan.ApplyFiles(ctx, p, paths, plan.Batch{
		Concurrency: concurrency,
		Backup:      cfg.Backup,
		Options: []widget.Option{
			widget.WithIndent(cfg.Indent),
			widget.WithLogger(logger.WithComponent("widget")),
		},
		Logger: logger.WithComponent("plan"),
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"plan":    planPath,
			"files":   paths,
			"edits":   p.Len(),
			"success": true,
		})
	}
	printInfo("✓ Applied %d edit(s) from %s to %d file(s)\n", p.Len(), planPath, len(paths))
	return nil
}
