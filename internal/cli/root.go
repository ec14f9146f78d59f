// Package cli provides the command-line interface for huesight.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huesight/internal/version"
)

// NewRootCmd builds the root command and its subcommand tree.
// Commands are constructed fresh on every call so tests can run them
// in isolation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "huesight",
		Short: "Name the colour a camera or image region points at",
		Long: `Huesight classifies colours into everyday vocabulary ("Teal",
"Mustard", "Dusty Rose") instead of raw RGB values, as an aid for
colourblind users.

In streaming mode it adapts to ambient lighting: a rolling window of
recent samples drives a gray-world white-balance correction, so a
warm desk lamp or a blue overcast sky stops tinting every answer.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Accept underscore spellings like --log_level.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newNamesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI. Called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger from persistent flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huesight",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
