package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopt/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopt v%s\n", version.String())
		fmt.Println("Post-Tensioned Tendon Loss Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
