package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

var pluginRemove bool

func init() {
	cmd := newPluginCmd()
	cmd.Flags().BoolVar(&pluginRemove, "remove", false, "Remove the plugin and its variables")
	rootCmd.AddCommand(cmd)
}

func newPluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin <config.xml> <name> [variable value]",
		Short: "Add a plugin or set one of its variables",
		Long: `The plugin command makes sure <plugin name="..."> exists and optionally
sets a <variable> inside it. An existing variable keeps its position.

Example:
  widgetctl plugin config.xml cordova-plugin-camera
  widgetctl plugin config.xml cordova-plugin-facebook APP_ID 1234
  widgetctl plugin config.xml cordova-plugin-camera --remove`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 && len(args) != 4 {
				return fmt.Errorf("expected 2 or 4 argument(s), got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlugin(args)
		},
	}
	return cmd
}

func runPlugin(args []string) error {
	path, name := args[0], args[1]

	if pluginRemove {
		if len(args) != 2 {
			return fmt.Errorf("--remove takes no variable")
		}
		err := edit(path, func(doc *widget.Document) error {
			if !doc.RemovePlugin(name) {
				return fmt.Errorf("plugin %q not found", name)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return printResult(path, "Removed plugin "+name, map[string]string{"plugin": name})
	}

	err := edit(path, func(doc *widget.Document) error {
		doc.AddPluginVariable(name, args[2:]...)
		return nil
	})
	if err != nil {
		return err
	}
	if len(args) == 4 {
		return printResult(path, fmt.Sprintf("Set %s variable %s", name, args[2]),
			map[string]string{"plugin": name, "variable": args[2], "value": args[3]})
	}
	return printResult(path, "Added plugin "+name, map[string]string{"plugin": name})
}
