package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

var prefRemove bool

func init() {
	cmd := newPrefCmd()
	cmd.Flags().BoolVar(&prefRemove, "remove", false, "Remove the preference")
	rootCmd.AddCommand(cmd)
}

func newPrefCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pref <config.xml> <name> [value]",
		Short: "Get, set or remove a preference",
		Long: `The pref command manages <preference name="..." value="..."> entries.
With a value it replaces any existing preference of that name; without one
it prints the current value.

Example:
  widgetctl pref config.xml Fullscreen true
  widgetctl pref config.xml Orientation
  widgetctl pref config.xml ShowTitle --remove`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPref(args)
		},
	}
	return cmd
}

func runPref(args []string) error {
	path, name := args[0], args[1]

	switch {
	case prefRemove:
		if len(args) == 3 {
			return fmt.Errorf("--remove takes no value")
		}
		err := edit(path, func(doc *widget.Document) error {
			if !doc.RemovePreference(name) {
				return fmt.Errorf("preference %q not found", name)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return printResult(path, "Removed preference "+name, map[string]string{"name": name})

	case len(args) == 3:
		value := args[2]
		err := edit(path, func(doc *widget.Document) error {
			doc.SetPreference(name, value)
			return nil
		})
		if err != nil {
			return err
		}
		return printResult(path, "Set preference "+name, map[string]string{"name": name, "value": value})

	default:
		doc, err := openDoc(path)
		if err != nil {
			return err
		}
		value, ok := doc.Preference(name)
		if !ok {
			return fmt.Errorf("preference %q not found", name)
		}
		if jsonOut {
			return printJSON(nameValue{Name: name, Value: value})
		}
		printInfo("%s\n", value)
		return nil
	}
}
