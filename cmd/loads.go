package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopt/internal/nbr6118"
	"github.com/spf13/cobra"
)

var (
	// Unfactored distributed loads (kN/m)
	loadsPermanent []float64
	loadsVariable  float64
	loadsSpan      float64

	loadsPsi1 float64
	loadsPsi2 float64
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Combine distributed loads using NBR 6118 service combinations",
	Long: `Combine unfactored distributed loads into the quasi-permanent,
frequent and rare service combinations (NBR 6118 Section 11.8.3)
and report the midspan moment wL²/8 of each.

The quasi-permanent total is the sustained load the long-term
loss stage works with.

Examples:
  # Self-weight 15 kN/m, finishes 5 kN/m, live load 10 kN/m on a 25 m span
  gopt loads --permanent 15,5 --variable 10 --span 25

  # Storage building factors
  gopt loads --permanent 15 --variable 10 --span 25 --psi1 0.7 --psi2 0.6`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64SliceVarP(&loadsPermanent, "permanent", "g", nil, "Permanent loads g1, g2, ... (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadsVariable, "variable", "q", 0, "Main variable load (kN/m)")
	loadsCmd.Flags().Float64Var(&loadsSpan, "span", 0, "Simply supported span (m) [required]")
	loadsCmd.Flags().Float64Var(&loadsPsi1, "psi1", 0.6, "Frequent factor ψ1")
	loadsCmd.Flags().Float64Var(&loadsPsi2, "psi2", 0.4, "Quasi-permanent factor ψ2")

	loadsCmd.MarkFlagRequired("span")
}

// serviceCombinations returns the three service combinations for the given factors
func serviceCombinations(psi1, psi2 float64) []nbr6118.LoadCombination {
	combos := make([]nbr6118.LoadCombination, len(nbr6118.ServiceCombinations))
	copy(combos, nbr6118.ServiceCombinations)
	for i := range combos {
		switch combos[i].ID {
		case "QP":
			combos[i].Variable = psi2
		case "FR":
			combos[i].Variable = psi1
		}
	}
	return combos
}

func runLoads(cmd *cobra.Command, args []string) {
	loads := nbr6118.DistributedLoads{
		Permanent: loadsPermanent,
		Variable:  loadsVariable,
	}

	if len(loads.Permanent) == 0 && loads.Variable == 0 {
		fmt.Println("Error: Please provide at least one distributed load.")
		fmt.Println("Use 'gopt loads --help' for usage information.")
		return
	}
	if loadsSpan <= 0 {
		fmt.Println("Error: span must be positive.")
		return
	}

	combinations := serviceCombinations(loadsPsi1, loadsPsi2)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NBR 6118 SERVICE LOAD COMBINATIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, g := range loads.Permanent {
		fmt.Fprintf(w, "  Permanent (g%d):\t%.2f\n", i+1, g)
	}
	if loads.Variable != 0 {
		fmt.Fprintf(w, "  Variable (q):\t%.2f\n", loads.Variable)
	}
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", loadsSpan)
	w.Flush()
	fmt.Println()

	maxLoad, governing := nbr6118.GoverningLoad(loads, combinations)

	fmt.Println("COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tw (kN/m)\tM (kN-m)\n")
	fmt.Fprintf(w, "  ─\t───────────\t────────\t────────\n")
	for _, combo := range combinations {
		total := combo.Total(loads)
		marker := ""
		if combo.ID == governing.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", combo.ID, combo.Description, total, total*loadsSpan*loadsSpan/8, marker)
	}
	w.Flush()
	fmt.Println()

	sustained := combinations[0].Total(loads)
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  SUSTAINED LOAD (QP) = %.2f kN/m         \n", sustained)
	fmt.Printf("  ║  MAXIMUM SERVICE MOMENT = %.2f kN-m      \n", maxLoad*loadsSpan*loadsSpan/8)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()
}
