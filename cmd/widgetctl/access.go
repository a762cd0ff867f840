package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

var (
	accessAttrs     attrFlag
	accessRemove    bool
	accessRemoveAll bool
)

func init() {
	cmd := newAccessCmd()
	cmd.Flags().VarP(&accessAttrs, "attr", "a", "Extra attribute on the <access> element (repeatable)")
	cmd.Flags().BoolVar(&accessRemove, "remove", false, "Remove the origin")
	cmd.Flags().BoolVar(&accessRemoveAll, "remove-all", false, "Remove every access origin")
	cmd.MarkFlagsMutuallyExclusive("remove", "remove-all")
	rootCmd.AddCommand(cmd)
}

func newAccessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "access <config.xml> [origin]",
		Short: "List, add or remove access origins",
		Long: `The access command manages the <access origin="..."> whitelist. Adding an
origin that is already present replaces its entry.

Example:
  widgetctl access config.xml
  widgetctl access config.xml "https://*" --attr launch-external=yes
  widgetctl access config.xml "*" --remove
  widgetctl access config.xml --remove-all`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccess(args)
		},
	}
	return cmd
}

func runAccess(args []string) error {
	path := args[0]

	if accessRemoveAll {
		if len(args) == 2 {
			return fmt.Errorf("--remove-all takes no origin")
		}
		removed := 0
		err := edit(path, func(doc *widget.Document) error {
			removed = doc.RemoveAccessOrigins()
			return nil
		})
		if err != nil {
			return err
		}
		return printResult(path, fmt.Sprintf("Removed %d access origin(s)", removed), nil)
	}

	if len(args) == 1 {
		if accessRemove {
			return fmt.Errorf("--remove requires an origin")
		}
		doc, err := openDoc(path)
		if err != nil {
			return err
		}
		origins := doc.AccessOrigins()
		if jsonOut {
			if origins == nil {
				origins = []string{}
			}
			return printJSON(origins)
		}
		for _, origin := range origins {
			printInfo("%s\n", origin)
		}
		return nil
	}

	origin := args[1]
	if accessRemove {
		err := edit(path, func(doc *widget.Document) error {
			if !doc.RemoveAccessOrigin(origin) {
				return fmt.Errorf("access origin %q not found", origin)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return printResult(path, "Removed access origin "+origin, map[string]string{"origin": origin})
	}

	err := edit(path, func(doc *widget.Document) error {
		doc.SetAccessOrigin(origin, accessAttrs...)
		return nil
	})
	if err != nil {
		return err
	}
	return printResult(path, "Set access origin "+origin, map[string]string{"origin": origin})
}
