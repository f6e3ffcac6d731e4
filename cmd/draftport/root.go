package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/draftport"
)

var (
	verbose   bool
	overwrite bool
	scheme    string
	watchMode bool
)

// rootCmd converts an export when called without any subcommand.
var rootCmd = &cobra.Command{
	Use:   "draftport [infile] [outdir]",
	Short: "Convert a Drafts export into Markdown notes with YAML frontmatter",
	Long: `Draftport turns a bulk Drafts JSON export into one Markdown document per
note, each with a unique human-readable filename derived from its content.
Filename collisions are resolved with date prefixes, timestamp prefixes and
sequence suffixes, in that order of preference.`,
	Args: cobra.MaximumNArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		infile := draftport.DefaultInput
		outdir := "."
		if len(args) > 0 {
			infile = args[0]
		}
		if len(args) > 1 {
			outdir = args[1]
		}

		opts := []draftport.Option{
			draftport.WithInput(infile),
			draftport.WithOutputDir(outdir),
			draftport.WithScheme(scheme),
			draftport.WithOverwrite(overwrite),
			draftport.WithLogger(slog.Default()),
		}

		if watchMode {
			if err := draftport.Watch(cmd.Context(), opts...); err != nil {
				fatal("Watch failed", err)
			}
			return
		}

		res, err := draftport.Convert(cmd.Context(), opts...)
		if err != nil {
			fatal("Conversion failed", err)
		}
		fmt.Printf("%d notes read from %s\n", res.NotesRead, res.Source)
		fmt.Printf("%d notes written to %s\n", res.NotesWritten, res.OutDir)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Allow overwriting existing files")
	rootCmd.Flags().StringVar(&scheme, "dedup", "datetime", "Filename deduplication scheme (datetime, seqno)")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Keep running and reconvert when the export changes")
}
