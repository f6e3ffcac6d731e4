package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/draftport"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of draftport",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("draftport version %s\n", strings.TrimSpace(draftport.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
