package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fmtCheck bool

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVar(&fmtCheck, "check", false, "Report files that are not canonically formatted without rewriting them")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <config.xml>...",
		Short: "Rewrite manifests in canonical form",
		Long: `The fmt command parses each manifest and writes it back with the XML
declaration, stable indentation and self-closed empty elements. Comments are
not preserved.

Example:
  widgetctl fmt config.xml
  widgetctl fmt --check config.xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	var unformatted []string
	for _, path := range args {
		original, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		doc, err := openDoc(path)
		if err != nil {
			return err
		}
		formatted, err := doc.Bytes()
		if err != nil {
			return err
		}
		if bytes.Equal(original, formatted) {
			printVerbose("%s already formatted\n", path)
			continue
		}
		unformatted = append(unformatted, path)
		if fmtCheck {
			continue
		}
		if err := saveDoc(doc); err != nil {
			return err
		}
	}

	if jsonOut && !dryRun {
		if unformatted == nil {
			unformatted = []string{}
		}
		return printJSON(map[string]any{"changed": unformatted, "check": fmtCheck})
	}
	for _, path := range unformatted {
		printInfo("%s\n", path)
	}
	if fmtCheck && len(unformatted) > 0 {
		return fmt.Errorf("%d file(s) not formatted", len(unformatted))
	}
	return nil
}
