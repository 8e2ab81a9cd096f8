package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gopt/internal/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gopt",
	Short: "Post-Tensioned Tendon Loss Tool",
	Long: `gopt - Go Post-Tensioned Tendon Losses

A CLI tool for the prestress loss analysis of post-tensioned
simply supported beams with a parabolic tendon.

This tool helps structural engineers evaluate:
  - Friction losses along the tendon (curvature and wobble)
  - Anchorage slip (wedge draw-in) and its influence length
  - Elastic shortening for tendons tensioned in sequence
  - Time-dependent losses from creep, shrinkage and relaxation

Material defaults follow ABNT NBR 6118.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.WarnLevel)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopt v%-50s║\n", version.Version)
		fmt.Println("  ║   Go Post-Tensioned Tendon Losses                         ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the prestress loss analysis of")
		fmt.Println("  post-tensioned beams with a parabolic tendon.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Friction, anchorage slip, elastic shortening and long-term losses")
		fmt.Println("    • Scenario files in JSON or INI")
		fmt.Println("    • Polygon section properties")
		fmt.Println("    • Creep coefficient lookup")
		fmt.Println("    • Force charts, CSV and Excel reports")
		fmt.Println()
		fmt.Println("  Use 'gopt --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each stage of the computation")
}
