package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/widgetkit/pkg/widget"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <config.xml>",
		Short: "Show the identity, preferences and plugins of a manifest",
		Long: `The info command parses a widget manifest and prints its root fields,
named elements, preferences, access origins, plugins and hooks.

Example:
  widgetctl info config.xml
  widgetctl info config.xml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type nameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type pluginInfo struct {
	Name      string      `json:"name"`
	Variables []nameValue `json:"variables,omitempty"`
}

type authorInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Href  string `json:"href,omitempty"`
}

type docInfo struct {
	File                string        `json:"file"`
	ID                  string        `json:"id"`
	Version             string        `json:"version"`
	AndroidVersionCode  string        `json:"android_version_code,omitempty"`
	AndroidPackageName  string        `json:"android_package_name,omitempty"`
	IOSBundleVersion    string        `json:"ios_bundle_version,omitempty"`
	IOSBundleIdentifier string        `json:"ios_bundle_identifier,omitempty"`
	Name                string        `json:"name,omitempty"`
	Description         string        `json:"description,omitempty"`
	Content             string        `json:"content,omitempty"`
	Author              *authorInfo   `json:"author,omitempty"`
	Preferences         []nameValue   `json:"preferences"`
	Access              []string      `json:"access"`
	Plugins             []pluginInfo  `json:"plugins"`
	Hooks               []widget.Hook `json:"hooks"`
}

func collectInfo(doc *widget.Document) docInfo {
	info := docInfo{
		File:                doc.Path(),
		ID:                  doc.ID(),
		Version:             doc.Version(),
		AndroidVersionCode:  doc.AndroidVersionCode(),
		AndroidPackageName:  doc.AndroidPackageName(),
		IOSBundleVersion:    doc.IOSBundleVersion(),
		IOSBundleIdentifier: doc.IOSBundleIdentifier(),
		Name:                doc.Name(),
		Description:         doc.Description(),
		Content:             doc.Content(),
		Preferences:         []nameValue{},
		Access:              []string{},
		Plugins:             []pluginInfo{},
		Hooks:               []widget.Hook{},
	}
	if doc.Element(widget.TagAuthor) != nil {
		name, email, href := doc.Author()
		info.Author = &authorInfo{Name: name, Email: email, Href: href}
	}
	for _, p := range doc.Preferences() {
		info.Preferences = append(info.Preferences, nameValue{p.Name, p.Value})
	}
	info.Access = append(info.Access, doc.AccessOrigins()...)
	for _, name := range doc.Plugins() {
		pi := pluginInfo{Name: name}
		for _, v := range doc.PluginVariables(name) {
			pi.Variables = append(pi.Variables, nameValue{v.Name, v.Value})
		}
		info.Plugins = append(info.Plugins, pi)
	}
	info.Hooks = append(info.Hooks, doc.Hooks()...)
	return info
}

func runInfo(args []string) error {
	doc, err := openDoc(args[0])
	if err != nil {
		return err
	}
	info := collectInfo(doc)

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nWidget Information:\n")
	printInfo("  File: %s\n", info.File)
	printInfo("  ID: %s\n", info.ID)
	printInfo("  Version: %s\n", info.Version)
	printField("Android version code", info.AndroidVersionCode)
	printField("Android package name", info.AndroidPackageName)
	printField("iOS bundle version", info.IOSBundleVersion)
	printField("iOS bundle identifier", info.IOSBundleIdentifier)
	printField("Name", info.Name)
	printField("Description", info.Description)
	printField("Content", info.Content)
	if info.Author != nil {
		printInfo("  Author: %s", info.Author.Name)
		if info.Author.Email != "" {
			printInfo(" <%s>", info.Author.Email)
		}
		if info.Author.Href != "" {
			printInfo(" %s", info.Author.Href)
		}
		printInfo("\n")
	}

	if len(info.Preferences) > 0 {
		printInfo("\nPreferences:\n")
		for _, p := range info.Preferences {
			printInfo("  %s = %s\n", p.Name, p.Value)
		}
	}
	if len(info.Access) > 0 {
		printInfo("\nAccess origins:\n")
		for _, origin := range info.Access {
			printInfo("  %s\n", origin)
		}
	}
	if len(info.Plugins) > 0 {
		printInfo("\nPlugins:\n")
		for _, p := range info.Plugins {
			printInfo("  %s\n", p.Name)
			for _, v := range p.Variables {
				printInfo("    %s = %s\n", v.Name, v.Value)
			}
		}
	}
	if len(info.Hooks) > 0 {
		printInfo("\nHooks:\n")
		for _, h := range info.Hooks {
			printInfo("  %s: %s\n", h.Type, h.Src)
		}
	}
	return nil
}

func printField(label, value string) {
	if value != "" {
		printInfo("  %s: %s\n", label, value)
	}
}
