package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/draftport/pkg/adapters/fs"
)

// checkCmd verifies a previously converted directory.
var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Verify converted notes against their frontmatter timestamps",
	Long: `Check walks a directory of converted notes, parses each document's
frontmatter, and compares the recorded creation timestamp against the file's
modification time. A conversion restores mtime from the creation timestamp,
so drift means the file was modified after it was written.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		paths, err := fs.ListDocuments(dir)
		if err != nil {
			fatal("Failed to list documents", err)
		}
		if len(paths) == 0 {
			fmt.Printf("no notes found in %s\n", dir)
			return
		}

		var drifted int
		for _, path := range paths {
			info, err := fs.InspectDocument(path)
			if err != nil {
				fatal("Check failed", err)
			}
			if info.Drift > 0 {
				drifted++
				fmt.Printf("%s: mtime %s drifted %s from created %s\n",
					info.Path, info.MTime.Format(fs.TimestampLayout),
					info.Drift, info.Created.Format(fs.TimestampLayout))
			}
		}

		fmt.Printf("%d notes checked, %d with drifted timestamps\n", len(paths), drifted)
		if drifted > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
