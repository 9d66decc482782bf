package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopile",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopile v%s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.GitCommit)
		fmt.Printf("  built:  %s\n", version.BuildTime)
		fmt.Println("Beam on Nonlinear Winkler Foundation pile analysis (API RP 2A / 2GEO)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
