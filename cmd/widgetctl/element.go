package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

var elementAttrs attrFlag

func init() {
	cmd := newElementCmd()
	cmd.Flags().VarP(&elementAttrs, "attr", "a", "Attribute to set (repeatable)")
	rootCmd.AddCommand(cmd)
}

func newElementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element <config.xml> <tag> [text]",
		Short: "Create or replace a named child element",
		Long: `The element command finds the first child of <widget> with the given tag,
creating it when missing, then sets its text and replaces all of its
attributes with the --attr flags.

Example:
  widgetctl element config.xml name "Hello World"
  widgetctl element config.xml icon --attr src=res/icon.png --attr width=57`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElement(args)
		},
	}
	return cmd
}

func runElement(args []string) error {
	path, tag := args[0], args[1]
	text := ""
	if len(args) == 3 {
		text = args[2]
	}

	err := edit(path, func(doc *widget.Document) error {
		doc.SetElement(tag, text, elementAttrs...)
		return nil
	})
	if err != nil {
		return err
	}
	return printResult(path, "Set element <"+tag+">", map[string]string{"tag": tag, "text": text})
}
