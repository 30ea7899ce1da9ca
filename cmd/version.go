package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "v0.1.0"

// VersionCmd used to get current version of projetos
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of projetos",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "projetos", Version)
	},
}
