package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

var (
	setEmail string
	setHref  string
)

// setters maps field names accepted by `set` to document mutations.
var setters = map[string]func(doc *widget.Document, value string) error{
	"id":                    (*widget.Document).SetID,
	"version":               (*widget.Document).SetVersion,
	"android-version-code":  func(d *widget.Document, v string) error { return d.SetAndroidVersionCode(v) },
	"android-package-name":  (*widget.Document).SetAndroidPackageName,
	"ios-bundle-version":    (*widget.Document).SetIOSBundleVersion,
	"ios-bundle-identifier": (*widget.Document).SetIOSBundleIdentifier,
	"name":                  func(d *widget.Document, v string) error { d.SetName(v); return nil },
	"description":           func(d *widget.Document, v string) error { d.SetDescription(v); return nil },
	"content":               func(d *widget.Document, v string) error { d.SetContent(v); return nil },
	"author": func(d *widget.Document, v string) error {
		d.SetAuthor(v, setEmail, setHref)
		return nil
	},
}

func setFields() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setEmail, "email", "", "Author email (author field only)")
	cmd.Flags().StringVar(&setHref, "href", "", "Author website (author field only)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <config.xml> <field> <value>",
		Short: "Set a validated root field or named element",
		Long: `The set command changes one field of a widget manifest. Root attributes
are validated before the document is touched.

Fields: ` + strings.Join(setFields(), ", ") + `

Example:
  widgetctl set config.xml version 1.2.0
  widgetctl set config.xml android-version-code 120
  widgetctl set config.xml author "Jane Doe" --email jane@example.com`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: setFields(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, field, value := args[0], args[1], args[2]

	set, ok := setters[field]
	if !ok {
		return fmt.Errorf("unknown field %q (expected one of %s)", field, strings.Join(setFields(), ", "))
	}

	err := edit(path, func(doc *widget.Document) error {
		return set(doc, value)
	})
	if err != nil {
		return err
	}
	return printResult(path, "Set "+field, map[string]string{"field": field, "value": value})
}
