// Package cmd implements the CLI commands for updatesheet using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "updatesheet",
	Short: "updatesheet — turn cloud update feeds and price-list PDFs into spreadsheets",
	Long: `updatesheet collects structured rows into xlsx workbooks from two sources:
the AWS and Azure update feeds (with each item's detail page), and a fixed-layout
price-list PDF.

Usage:
  updatesheet updates [flags]
  updatesheet pricelist <file.pdf> [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Execute runs the root command.
func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// normalizeArgs accepts the single-dash long form of flags that users of
// the price-list tool are used to.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		switch a {
		case "-debug", "-test", "-verbose":
			a = "-" + a
		}
		out[i] = a
	}
	return out
}
