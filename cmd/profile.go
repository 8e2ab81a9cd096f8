package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopt/internal/diagram"
	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/alexiusacademia/gopt/internal/measure"
	"github.com/spf13/cobra"
)

var (
	profileSpan         float64
	profileEccentricity float64
	profileAnchorOffset float64
	profileStations     int
	profileExportFile   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Tabulate the parabolic tendon path",
	Long: `Tabulate the parabolic tendon path through the anchors and
the midspan eccentricity: offset y, slope y', tilt angle α and the
cumulative angular deviation from the start anchor at each station.

Examples:
  gopt profile --span 25 --eccentricity -48
  gopt profile --span 25 -e -48 --anchor-offset 10 --stations 11 -o tendon.png`,
	Run: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().Float64Var(&profileSpan, "span", 0, "Span L (m) [required]")
	profileCmd.Flags().Float64VarP(&profileEccentricity, "eccentricity", "e", 0, "Tendon offset at midspan (cm, negative below the centroid)")
	profileCmd.Flags().Float64Var(&profileAnchorOffset, "anchor-offset", 0, "Tendon offset at the anchors (cm)")
	profileCmd.Flags().IntVar(&profileStations, "stations", 21, "Number of stations")
	profileCmd.Flags().StringVarP(&profileExportFile, "output", "o", "", "Export the tendon profile to file (png, svg, pdf)")

	profileCmd.MarkFlagRequired("span")
}

func runProfile(cmd *cobra.Command, args []string) {
	span := measure.New(profileSpan, measure.Metre).MustIn(measure.Centimetre)
	p, err := losses.NewSpanProfile(span, profileEccentricity, profileAnchorOffset, profileStations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PARABOLIC TENDON PROFILE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	x, _ := p.Positions().In(measure.Metre)
	y := p.Offsets()
	slope := p.Slopes()
	tilt := p.TiltAngles()
	dev := p.Deviations()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tx (m)\ty (cm)\ty'\tα (°)\tΣα (rad)\t\n")
	fmt.Fprintf(w, "  ─\t─────\t──────\t──\t─────\t────────\t\n")
	for i := 0; i < p.Stations(); i++ {
		fmt.Fprintf(w, "  %d\t%.2f\t%.2f\t%.5f\t%.3f\t%.5f\t\n",
			i, x.Value(i), y.Value(i), slope.Value(i), tilt.Value(i)*180/math.Pi, dev.Value(i))
	}
	w.Flush()
	fmt.Println()

	total := math.Abs(dev.Value(p.Stations() - 1))
	fmt.Print(diagram.DrawSummaryBox("TENDON", []string{
		fmt.Sprintf("Sag (anchor to midspan)   %.2f cm", math.Abs(p.AnchorOffset()-p.Eccentricity())),
		fmt.Sprintf("Tilt at the anchors       %.3f°", math.Abs(tilt.Value(0))*180/math.Pi),
		fmt.Sprintf("Total angular deviation   %.5f rad", total),
	}))
	fmt.Println()

	if profileExportFile != "" {
		if err := diagram.ExportTendonProfile(p.Positions().Values(), y.Values(), profileExportFile); err != nil {
			fmt.Printf("Error exporting tendon profile: %v\n", err)
			return
		}
		fmt.Printf("  Tendon profile exported to: %s\n", profileExportFile)
		fmt.Println()
	}
}
