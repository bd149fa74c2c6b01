package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/semdocs/config"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Documentation generator for OWL/RDF ontologies",
		Long: `Semdocs inspects the class, property, and axiom structure of an OWL
ontology and writes natural-language definitions, scope notes, SHACL
constraints, and labels back onto the graph as annotation triples.

Generated text carries a dated AUTOGEN marker, so repeated runs are
idempotent and human-authored annotations are never touched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(flags.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newGenerateCmd(flags),
		newPolishCmd(flags),
		newSHACLCmd(flags),
		newLabelsCmd(flags),
		newReifyCmd(flags),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig reads an explicit config file, or falls back to the layered
// loader (defaults, user config, project config).
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath != "" {
		cfg, err := config.LoadFromFile(flags.configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(slog.Default()).Load()
}

// checkInput verifies the input ontology exists before anything is written.
func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return exitErrorf(exitMissingInput, "input file not found: %s", path)
	}
	if info.IsDir() {
		return exitErrorf(exitMissingInput, "input is a directory: %s", path)
	}
	return nil
}

// defaultOutput derives the output path by suffixing the input stem:
// ontology.ttl with suffix "_with_documentation" becomes
// ontology_with_documentation.ttl.
func defaultOutput(input, suffix, ext string) string {
	dir := filepath.Dir(input)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, stem+suffix+ext)
}

// handleExisting applies the output-collision policy. Overwrite does
// nothing, error refuses, backup renames the existing file out of the way.
func handleExisting(path, policy string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	switch policy {
	case "overwrite":
		return nil
	case "error":
		return exitErrorf(exitOutputExists, "refusing to overwrite existing file: %s", path)
	case "backup":
		backup := path + ".bak-" + time.Now().Format("20060102-150405")
		if err := os.Rename(path, backup); err != nil {
			return exitErrorf(exitBackupFailure, "failed to back up existing file: %v", err)
		}
		fmt.Printf("Backed up existing output to: %s\n", backup)
		return nil
	default:
		return fmt.Errorf("unknown --on-exist policy: %s", policy)
	}
}
