package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopt/internal/diagram"
	"github.com/alexiusacademia/gopt/internal/measure"
	"github.com/alexiusacademia/gopt/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionAnalyzeFile         string
	sectionAnalyzeForce        float64
	sectionAnalyzeTendonHeight float64
	sectionAnalyzeMoment       float64
	sectionAnalyzeShowDiagram  bool
	sectionAnalyzeExportFile   string
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the properties of a polygon section",
	Long: `Compute the gross area, centroid, second moment of area, section
moduli and notional thickness of a section defined in a JSON file.

With --force, the extreme fiber stresses under a prestress force at
the given tendon height and a sagging moment are also reported.

Examples:
  gopt section analyze --file t-beam.json
  gopt section analyze -f t-beam.json --force -1500 --tendon-height 12 --moment 950 --diagram`,
	Run: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to section JSON file [required]")
	sectionAnalyzeCmd.MarkFlagRequired("file")

	// Prestress flags
	sectionAnalyzeCmd.Flags().Float64VarP(&sectionAnalyzeForce, "force", "P", 0, "Prestress force (kN, compression negative)")
	sectionAnalyzeCmd.Flags().Float64Var(&sectionAnalyzeTendonHeight, "tendon-height", 0, "Tendon height above the section bottom (cm)")
	sectionAnalyzeCmd.Flags().Float64VarP(&sectionAnalyzeMoment, "moment", "m", 0, "Sagging bending moment (kN-m)")

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) {
	// Load section from file
	sec, err := section.LoadFromFile(sectionAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}
	props := sec.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     POLYGON SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (max):\t%.1f cm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.1f cm\n", props.Height)
	fmt.Fprintf(w, "  Gross Area (Ac):\t%.1f cm²\n", props.Area)
	fmt.Fprintf(w, "  Perimeter (u):\t%.1f cm\n", props.Perimeter)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	w.Flush()
	fmt.Println()

	fmt.Println("CENTROIDAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Centroid (x, y):\t%.2f, %.2f cm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Inertia (Ic):\t%.6g cm⁴\n", props.Inertia)
	fmt.Fprintf(w, "  Top fiber (yt):\t%.2f cm\n", props.TopFiber)
	fmt.Fprintf(w, "  Bottom fiber (yb):\t%.2f cm\n", props.BottomFiber)
	fmt.Fprintf(w, "  Section modulus (Wt):\t%.6g cm³\n", props.ModulusTop)
	fmt.Fprintf(w, "  Section modulus (Wb):\t%.6g cm³\n", props.ModulusBottom)
	fmt.Fprintf(w, "  Notional thickness (2Ac/u):\t%.2f cm\n", props.NotionalThickness)
	fmt.Fprintf(w, "  Self-weight:\t%.3f kN/m\n",
		measure.New(sec.SelfWeight(), measure.KilonewtonPerCentimetre).MustIn(measure.KilonewtonPerMetre))
	w.Flush()
	fmt.Println()

	cg := props.CentroidY - props.MinY
	data := diagram.SectionDiagramData{
		Width:          props.Width,
		Height:         props.Height,
		CentroidY:      cg,
		TendonMidspanY: cg,
		TendonAnchorY:  cg,
	}
	for _, v := range sec.Vertices {
		data.Vertices = append(data.Vertices, diagram.Point{X: v.X, Y: v.Y - props.MinY})
	}

	if sectionAnalyzeForce != 0 {
		ecc, err := sec.TendonEccentricity(sectionAnalyzeTendonHeight)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		moment := measure.New(sectionAnalyzeMoment, measure.KilonewtonMetre).MustIn(measure.KilonewtonCentimetre)
		sigma := props.StressesAt(sectionAnalyzeForce, ecc, moment)
		data.TendonMidspanY = sectionAnalyzeTendonHeight
		data.TendonAnchorY = sectionAnalyzeTendonHeight
		data.StressTop = measure.New(sigma.Top, measure.KilonewtonPerSquareCentimetre).MustIn(measure.Megapascal)
		data.StressBottom = measure.New(sigma.Bottom, measure.KilonewtonPerSquareCentimetre).MustIn(measure.Megapascal)

		fmt.Println("FIBER STRESSES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Prestress (P):\t%.2f kN\n", sectionAnalyzeForce)
		fmt.Fprintf(w, "  Eccentricity (e):\t%.2f cm\n", ecc)
		fmt.Fprintf(w, "  Width at tendon level:\t%.1f cm\n", sec.WidthAtDepth(props.Height-sectionAnalyzeTendonHeight))
		fmt.Fprintf(w, "  Moment (M):\t%.2f kN-m\n", sectionAnalyzeMoment)
		fmt.Fprintf(w, "  Top fiber:\t%.3f MPa\n", data.StressTop)
		fmt.Fprintf(w, "  Bottom fiber:\t%.3f MPa\n", data.StressBottom)
		w.Flush()
		fmt.Println()
	}

	// Show diagram if requested
	if sectionAnalyzeShowDiagram {
		fmt.Println(diagram.DrawASCIISectionDiagram(data))
	}

	// Export diagram if requested
	if sectionAnalyzeExportFile != "" {
		err := diagram.ExportSectionDiagram(data, sectionAnalyzeExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", sectionAnalyzeExportFile)
		}
	}
}
