package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

func init() {
	rootCmd.AddCommand(newRawCmd())
}

func newRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw <config.xml> <xml|->",
		Short: "Append a raw XML fragment to the manifest",
		Long: `The raw command parses a single-rooted XML fragment and appends it as the
last child of <widget>. Pass - to read the fragment from stdin.

Example:
  widgetctl raw config.xml '<platform name="ios"><icon src="res/icon.png" /></platform>'
  widgetctl raw config.xml - < platform.xml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaw(args, cmd.InOrStdin())
		},
	}
	return cmd
}

func runRaw(args []string, stdin io.Reader) error {
	path, raw := args[0], args[1]
	if raw == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read fragment: %w", err)
		}
		raw = string(data)
	}

	var tag string
	err := edit(path, func(doc *widget.Document) error {
		el, err := doc.AddRawXML(raw)
		if err != nil {
			return err
		}
		tag = el.Tag
		return nil
	})
	if err != nil {
		return err
	}
	return printResult(path, "Appended <"+tag+">", map[string]string{"tag": tag})
}
