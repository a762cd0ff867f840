package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joshuapare/widgetkit/internal/config"
	"github.com/joshuapare/widgetkit/internal/logger"
	"github.com/joshuapare/widgetkit/internal/writer"
	"github.com/joshuapare/widgetkit/pkg/widget"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	dryRun     bool
	configPath string
	indent     int
	backup     bool
	logLevel   string

	// cfg is the effective configuration after flag overrides.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "widgetctl",
	Short: "Inspect and edit Cordova config.xml widget manifests",
	Long: `widgetctl reads a config.xml widget manifest, applies validated edits
(ids, versions, preferences, access origins, plugins, hooks, raw XML) and
writes it back atomically with stable indentation.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.BoolVarP(&dryRun, "dry-run", "n", false, "Print the edited document instead of writing it")
	pf.StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath+")")
	pf.IntVar(&indent, "indent", config.DefaultIndent, "Spaces per nesting level when writing")
	pf.BoolVar(&backup, "backup", false, "Copy the document to <file>.bak before writing")
	pf.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func execute() {
	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config file, lets explicitly set flags override it and
// initializes logging.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	applyFlagOverrides(cmd.Flags())

	level := cfg.LogLevel
	if level == "" && verbose {
		level = "debug"
	}
	return logger.Init(logger.Options{
		Enabled: level != "",
		Level:   level,
		Output:  os.Stderr,
		Console: true,
		LogDir:  cfg.LogDir,
	})
}

func applyFlagOverrides(fs *pflag.FlagSet) {
	if fs.Changed("indent") {
		cfg.Indent = indent
	}
	if fs.Changed("backup") {
		cfg.Backup = backup
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

// openDoc loads a manifest with the effective settings.
func openDoc(path string) (*widget.Document, error) {
	printVerbose("Opening document: %s\n", path)
	return widget.Open(path,
		widget.WithIndent(cfg.Indent),
		widget.WithLogger(logger.WithComponent("widget")),
	)
}

// saveDoc writes doc back to its file, or to stdout with --dry-run.
func saveDoc(doc *widget.Document) error {
	if dryRun {
		_, err := doc.WriteTo(os.Stdout)
		return err
	}
	if cfg.Backup {
		if err := writer.Backup(doc.Path(), doc.Path()+".bak"); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		printVerbose("Backup created: %s.bak\n", doc.Path())
	}
	if err := doc.WriteSync(); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	printVerbose("Wrote %s\n", doc.Path())
	return nil
}

// edit opens path, runs fn and saves the result.
func edit(path string, fn func(*widget.Document) error) error {
	doc, err := openDoc(path)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return saveDoc(doc)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet && !dryRun {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet && !dryRun {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printResult reports a successful edit as JSON or text.
func printResult(file, action string, fields map[string]string) error {
	if dryRun {
		return nil
	}
	if jsonOut {
		result := map[string]any{
			"file":    file,
			"action":  action,
			"success": true,
		}
		for k, v := range fields {
			result[k] = v
		}
		return printJSON(result)
	}
	printInfo("✓ %s (%s)\n", action, file)
	return nil
}
