package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

func init() {
	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newHookTypesCmd())
}

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook <config.xml> <type> <src>",
		Short: "Attach a script to a build lifecycle event",
		Long: `The hook command appends <hook type="..." src="..." />. The type must be
one of the names printed by 'widgetctl hook-types'.

Example:
  widgetctl hook config.xml before_build scripts/lint.js`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeHookType,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(args)
		},
	}
	return cmd
}

func newHookTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook-types",
		Short: "List the accepted hook types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHookTypes()
		},
	}
}

func completeHookType(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 1 {
		return widget.HookTypes(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}

func runHook(args []string) error {
	path, typ, src := args[0], args[1], args[2]

	err := edit(path, func(doc *widget.Document) error {
		return doc.AddHook(typ, src)
	})
	if err != nil {
		return err
	}
	return printResult(path, "Added "+typ+" hook", map[string]string{"type": typ, "src": src})
}

func runHookTypes() error {
	if jsonOut {
		return printJSON(widget.HookTypes())
	}
	for _, typ := range widget.HookTypes() {
		printInfo("%s\n", typ)
	}
	return nil
}
