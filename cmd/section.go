package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygon section properties",
	Long: `Compute the properties of a concrete section defined in a JSON
file by its outline vertices (cm, counter-clockwise or clockwise).

This allows loss analysis of T-beams, I-beams, box girders or any
arbitrary polygonal section.

Subcommands:
  analyze  - Area, centroid, inertia, section moduli and fiber stresses

Example JSON file structure:
{
  "name": "T-Beam Section",
  "unit_weight": 25,
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 20, "y": 0},
    {"x": 20, "y": 100},
    {"x": 60, "y": 100},
    {"x": 60, "y": 120},
    {"x": -40, "y": 120},
    {"x": -40, "y": 100},
    {"x": 0, "y": 100}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
