package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gopt/internal/creep"
	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/spf13/cobra"
)

var (
	creepFck       float64
	creepHumidity  float64
	creepThickness float64
	creepAge       float64
	creepShowTable bool
)

var creepCmd = &cobra.Command{
	Use:   "creep",
	Short: "Look up the final creep coefficient φ(t∞, t0)",
	Long: `Interpolate the final creep coefficient from the NBR 6118
Table 8.2 grid over relative humidity, notional thickness 2Ac/u
and concrete age at loading.

Examples:
  gopt creep --fck 35 --humidity 75 --thickness 35 --age 30
  gopt creep --fck 60 --humidity 55 --thickness 20 --age 5 --table`,
	Run: runCreep,
}

func init() {
	rootCmd.AddCommand(creepCmd)

	creepCmd.Flags().Float64Var(&creepFck, "fck", 0, "Concrete characteristic strength (MPa) [required]")
	creepCmd.Flags().Float64Var(&creepHumidity, "humidity", 75, "Relative humidity (%)")
	creepCmd.Flags().Float64Var(&creepThickness, "thickness", 0, "Notional thickness 2Ac/u (cm) [required]")
	creepCmd.Flags().Float64Var(&creepAge, "age", 30, "Concrete age at loading (days)")
	creepCmd.Flags().BoolVar(&creepShowTable, "table", false, "Print the grid of the strength group")

	creepCmd.MarkFlagRequired("fck")
	creepCmd.MarkFlagRequired("thickness")
}

func runCreep(cmd *cobra.Command, args []string) {
	table := creep.NBR6118()
	phi, err := table.Coefficient(losses.CreepQuery{
		Fck:               creepFck,
		AgeAtLoading:      creepAge,
		Humidity:          creepHumidity,
		NotionalThickness: creepThickness,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	group, _ := table.Group(creepFck)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CREEP COEFFICIENT - NBR 6118")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  fck:\t%.1f MPa (%s)\n", creepFck, group.Name)
	fmt.Fprintf(w, "  Relative humidity:\t%.0f %%\n", creepHumidity)
	fmt.Fprintf(w, "  Notional thickness:\t%.1f cm\n", creepThickness)
	fmt.Fprintf(w, "  Age at loading:\t%.0f days\n", creepAge)
	w.Flush()
	fmt.Println()

	if creepShowTable {
		fmt.Printf("GRID %s (rows: humidity, columns: thickness / age):\n", group.Name)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		header := []string{"  U (%)"}
		for _, h := range table.Thicknesses {
			for _, t := range table.Ages {
				header = append(header, fmt.Sprintf("%g/%g", h, t))
			}
		}
		fmt.Fprintln(w, strings.Join(header, "\t")+"\t")
		for i, u := range table.Humidities {
			row := []string{fmt.Sprintf("  %g", u)}
			for _, byAge := range group.Values[i] {
				for _, v := range byAge {
					row = append(row, fmt.Sprintf("%.1f", v))
				}
			}
			fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  CREEP COEFFICIENT φ(t∞, t0) = %.3f    \n", phi)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
