package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gopt/internal/diagram"
	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/alexiusacademia/gopt/internal/measure"
	"github.com/alexiusacademia/gopt/internal/report"
	"github.com/alexiusacademia/gopt/internal/scenario"
	"github.com/alexiusacademia/gopt/internal/section"
	"github.com/spf13/cobra"
)

var (
	lossFile string

	// Inline scenario
	lossScenario      scenario.Scenario
	lossSectionWidth  float64
	lossSectionHeight float64

	// Output options
	lossShowDiagram bool
	lossExportFile  string
	lossTendonFile  string
	lossXLSXFile    string
	lossCSVFile     string
)

var lossesCmd = &cobra.Command{
	Use:   "losses",
	Short: "Compute the prestress losses along a post-tensioned tendon",
	Long: `Compute the prestress force after each loss stage along a
simply supported beam with a parabolic tendon:

  Patr  after friction (curvature and wobble)
  Panc  after anchorage slip
  P0    after elastic shortening
  Pinf  after creep, shrinkage and relaxation

The beam is read from a scenario file (JSON or INI) or given with flags.
Forces are in kN with compression negative.

Examples:
  # From a scenario file, with the force chart and an Excel report
  gopt losses --file beam.json --diagram --xlsx beam.xlsx

  # 25 m span, 50x120 cm section, tendon 12 cm above the bottom
  gopt losses --span 25 --width 50 --height 120 --tendon-height 12 \
    --force -2000 --duct metal --slip 5 --tendon-area 17.82 --fck 35`,
	Run: runLosses,
}

func init() {
	rootCmd.AddCommand(lossesCmd)
	f := lossesCmd.Flags()
	s := &lossScenario

	f.StringVarP(&lossFile, "file", "f", "", "Scenario file (json or ini); replaces the beam flags")

	// Geometry flags
	f.Float64Var(&s.Span, "span", 0, "Span L (m)")
	f.Float64VarP(&s.Eccentricity, "eccentricity", "e", 0, "Tendon offset from the centroid at midspan (cm, negative below)")
	f.Float64Var(&s.TendonHeight, "tendon-height", 0, "Tendon height above the section bottom at midspan (cm)")
	f.Float64Var(&s.AnchorOffset, "anchor-offset", 0, "Tendon offset from the centroid at the anchors (cm)")
	f.IntVar(&s.Stations, "stations", scenario.DefaultStations, "Number of stations along the span")

	// Tensioning flags
	f.StringVar(&s.Anchoring, "anchoring", "active-passive", "active-passive, passive-active or active-active")
	f.Float64VarP(&s.JackingForce, "force", "P", 0, "Jacking force (kN, compression negative)")
	f.Float64Var(&s.Mu, "mu", 0, "Curvature friction coefficient μ")
	f.StringVar(&s.Duct, "duct", "", "Duct type for μ: none, indented, metal, lubricated, polypropylene")
	f.Float64Var(&s.Wobble, "wobble", 0, "Wobble coefficient k (1/m), 0.01μ when zero")
	f.BoolVar(&s.NoWobble, "no-wobble", false, "Take k = 0 instead of the 0.01μ default")
	f.Float64Var(&s.Slip, "slip", 0, "Anchorage seating slip (mm)")

	// Tendon flags
	f.Float64Var(&s.TendonArea, "tendon-area", 0, "Tendon area Ap (cm²)")
	f.Float64Var(&s.TendonModulus, "tendon-modulus", 0, "Tendon modulus Ep (GPa), 195 when zero")
	f.IntVarP(&s.Tendons, "tendons", "n", 1, "Tendons tensioned in sequence")

	// Concrete flags
	f.Float64Var(&s.Fck, "fck", 0, "Concrete characteristic strength (MPa)")
	f.StringVar(&s.Aggregate, "aggregate", "granite", "Coarse aggregate: basalt, granite, limestone, sandstone")
	f.Float64Var(&s.ConcreteModulus, "ec", 0, "Concrete secant modulus Ecs (GPa), from fck when zero")

	// Section flags
	f.Float64Var(&lossSectionWidth, "width", 0, "Rectangular section width (cm)")
	f.Float64Var(&lossSectionHeight, "height", 0, "Rectangular section height (cm)")
	f.Float64Var(&s.Area, "area", 0, "Section area Ac (cm²)")
	f.Float64Var(&s.Inertia, "inertia", 0, "Section inertia Ic (cm⁴)")
	f.Float64Var(&s.Perimeter, "perimeter", 0, "Section perimeter u exposed to air (cm)")
	f.StringVar(&s.SectionFile, "section", "", "Polygon section JSON file")

	// Load flags
	f.Float64VarP(&s.SelfWeight, "self-weight", "g", 0, "Self-weight (kN/m), from the section when zero")
	f.Float64SliceVar(&s.AdditionalPermanent, "permanent", nil, "Additional permanent loads (kN/m)")
	f.Float64Var(&s.LiveLoad, "live", 0, "Variable load (kN/m)")
	f.Float64Var(&s.Psi2, "psi2", scenario.DefaultPsi2, "Quasi-permanent factor ψ2 of the variable load")

	// Long-term flags
	f.StringVar(&s.Method, "method", "formula", "Long-term loss: formula or lump-sum")
	f.Float64Var(&s.LossFactor, "loss-factor", 0, "Lump-sum long-term loss fraction of P0")
	f.Float64Var(&s.Creep, "creep", 0, "Creep coefficient φ, from the NBR 6118 table when zero")
	f.Float64Var(&s.Humidity, "humidity", scenario.DefaultHumidity, "Relative humidity (%)")
	f.Float64Var(&s.AgeAtLoading, "age", scenario.DefaultAgeAtLoading, "Concrete age at tensioning (days)")

	// Output options
	f.BoolVar(&lossShowDiagram, "diagram", false, "Show ASCII force chart and section diagram")
	f.StringVarP(&lossExportFile, "output", "o", "", "Export the force chart to file (png, svg, pdf)")
	f.StringVar(&lossTendonFile, "tendon-output", "", "Export the tendon profile to file (png, svg, pdf)")
	f.StringVar(&lossXLSXFile, "xlsx", "", "Write the station table to an Excel workbook")
	f.StringVar(&lossCSVFile, "csv", "", "Write the station table to a CSV file")
}

// lossesScenario returns the scenario from --file or from the beam flags
func lossesScenario() (*scenario.Scenario, error) {
	if lossFile != "" {
		return scenario.LoadFromFile(lossFile)
	}
	s := lossScenario
	if lossSectionWidth > 0 && lossSectionHeight > 0 {
		s.Vertices = section.Rectangle("", lossSectionWidth, lossSectionHeight).Vertices
	}
	if s.Name == "" {
		s.Name = "Beam"
	}
	return &s, nil
}

func runLosses(cmd *cobra.Command, args []string) {
	sc, err := lossesScenario()
	if err != nil {
		fmt.Printf("Error loading scenario: %v\n", err)
		return
	}

	in, err := sc.Input()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	pl, err := losses.New(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printLosses(sc, in, pl)

	if lossShowDiagram {
		fmt.Print(diagram.DrawForceChart(pl.Stages(), 60))
		fmt.Println()
		if data, ok := sectionDiagram(sc, pl); ok {
			fmt.Print(diagram.DrawASCIISectionDiagram(data))
			fmt.Println()
		}
	}

	positions := pl.Profile().Positions().Values()
	if lossExportFile != "" {
		if err := diagram.ExportForceProfile(positions, pl.Stages(), lossExportFile); err != nil {
			fmt.Printf("Error exporting force chart: %v\n", err)
		} else {
			fmt.Printf("  Force chart exported to: %s\n", lossExportFile)
		}
	}
	if lossTendonFile != "" {
		if err := diagram.ExportTendonProfile(positions, pl.Profile().Offsets().Values(), lossTendonFile); err != nil {
			fmt.Printf("Error exporting tendon profile: %v\n", err)
		} else {
			fmt.Printf("  Tendon profile exported to: %s\n", lossTendonFile)
		}
	}
	if lossXLSXFile != "" {
		if err := report.WriteXLSX(lossXLSXFile, sc.Name, pl); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("  Station table written to: %s\n", lossXLSXFile)
		}
	}
	if lossCSVFile != "" {
		if err := writeCSVFile(lossCSVFile, pl); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
		} else {
			fmt.Printf("  Station table written to: %s\n", lossCSVFile)
		}
	}
	fmt.Println()
}

func printLosses(sc *scenario.Scenario, in losses.Input, pl *losses.Pipeline) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     POST-TENSIONED TENDON LOSSES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if sc.Name != "" {
		fmt.Printf("  Beam: %s\n", sc.Name)
		fmt.Println()
	}

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	sec := pl.Section()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", measure.New(in.Span, measure.Centimetre).MustIn(measure.Metre))
	fmt.Fprintf(w, "  Tendon eccentricity (midspan):\t%.2f cm\n", in.Eccentricity)
	fmt.Fprintf(w, "  Tendon offset (anchors):\t%.2f cm\n", in.AnchorOffset)
	fmt.Fprintf(w, "  Anchoring:\t%s\n", in.Anchoring)
	fmt.Fprintf(w, "  Jacking force (P):\t%.2f kN\n", in.JackingForce)
	fmt.Fprintf(w, "  μ / k:\t%.3f / %.5f 1/m\n", in.Mu, pl.Friction().Wobble())
	fmt.Fprintf(w, "  Seating slip:\t%.2f mm\n", measure.New(in.Slip, measure.Centimetre).MustIn(measure.Millimetre))
	fmt.Fprintf(w, "  Tendon (Ap, Ep):\t%.2f cm², %.0f MPa\n", in.TendonArea,
		measure.New(in.TendonModulus, measure.KilonewtonPerSquareCentimetre).MustIn(measure.Megapascal))
	fmt.Fprintf(w, "  Tendons in sequence:\t%d\n", in.Tendons)
	fmt.Fprintf(w, "  Concrete (Ecs):\t%.0f MPa\n",
		measure.New(in.ConcreteModulus, measure.KilonewtonPerSquareCentimetre).MustIn(measure.Megapascal))
	fmt.Fprintf(w, "  Section (Ac, Ic):\t%.1f cm², %.4g cm⁴\n", sec.Area, sec.Inertia)
	fmt.Fprintf(w, "  Self-weight (g1):\t%.3f kN/m\n", measure.New(in.SelfWeight, measure.KilonewtonPerCentimetre).MustIn(measure.KilonewtonPerMetre))
	for i, g := range in.AdditionalPermanent {
		fmt.Fprintf(w, "  Permanent load (g%d):\t%.3f kN/m\n", i+2, measure.New(g, measure.KilonewtonPerCentimetre).MustIn(measure.KilonewtonPerMetre))
	}
	w.Flush()
	fmt.Println()

	// Stage scalars
	fmt.Println("LOSS STAGES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	slip := pl.AnchorageSlip()
	short := pl.ElasticShortening()
	td := pl.TimeDependent()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Friction loss rate (β):\t%.4f kN/m\n", pl.Friction().LossRate().MustIn(measure.KilonewtonPerMetre))
	fmt.Fprintf(w, "  Slip regime:\t%s\n", slip.Regime())
	if slip.Regime() != losses.NoSlip {
		fmt.Fprintf(w, "  Influence length (xr):\t%.2f m\n", measure.New(slip.InfluenceLength(), measure.Centimetre).MustIn(measure.Metre))
		fmt.Fprintf(w, "  Peak slip loss (ΔPmax):\t%.2f kN\n", slip.PeakLoss())
	}
	if slip.Regime() == losses.OverlappingInfluence {
		fmt.Fprintf(w, "  Midspan slip loss:\t%.2f kN\n", slip.MidspanLoss())
	}
	fmt.Fprintf(w, "  Modular ratio (αp):\t%.3f\n", short.ModularRatio())
	fmt.Fprintf(w, "  Sequence factor (n-1)/2n:\t%.4f\n", short.Factor())
	fmt.Fprintf(w, "  Long-term method:\t%s\n", td.Method())
	if td.Method() == losses.CodeFormula {
		fmt.Fprintf(w, "  Creep coefficient (φ):\t%.3f\n", pl.Creep())
	}
	w.Flush()
	fmt.Println()

	// Station table
	fmt.Println("FORCES ALONG THE SPAN (kN):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  x (m)\ty (cm)\tPatr\tPanc\tP0\tPinf\tLoss (%%)\t\n")
	fmt.Fprintf(w, "  ─────\t──────\t────\t────\t──\t────\t────────\t\n")
	for _, r := range report.Rows(pl) {
		fmt.Fprintf(w, "  %.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			r.X, r.Y, r.Forces[0], r.Forces[1], r.Forces[2], r.Forces[3], r.TotalLoss)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("FINAL PRESTRESS", summaryLines(pl.Summary())))
	fmt.Println()
}

// summaryLines formats Pinf and the total loss at the anchors and midspan
func summaryLines(s losses.Summary) []string {
	var lines []string
	for _, pt := range s.Points {
		final := pt.Forces[len(pt.Forces)-1]
		lines = append(lines, fmt.Sprintf("%-8s x = %6.2f m   Pinf = %9.2f kN   loss %5.1f%%",
			pt.Label, pt.X/100, final, pt.LossPercent))
	}
	return lines
}

// sectionDiagram draws the polygon section with the midspan fiber stresses at transfer
func sectionDiagram(sc *scenario.Scenario, pl *losses.Pipeline) (diagram.SectionDiagramData, bool) {
	sec, err := sc.Section()
	if err != nil || sec == nil {
		return diagram.SectionDiagramData{}, false
	}
	props := sec.CalculateProperties()
	vertices := make([]diagram.Point, len(sec.Vertices))
	for i, v := range sec.Vertices {
		vertices[i] = diagram.Point{X: v.X, Y: v.Y - props.MinY}
	}

	mid := pl.Profile().MidspanStation()
	p0 := pl.ElasticShortening().Forces().Value(mid)
	mg := pl.ElasticShortening().Moments().Value(mid)
	ecc := pl.Profile().Offsets().Value(mid)
	sigma := props.StressesAt(p0, ecc, mg)
	toMPa := func(v float64) float64 {
		return measure.New(v, measure.KilonewtonPerSquareCentimetre).MustIn(measure.Megapascal)
	}

	cg := props.CentroidY - props.MinY
	return diagram.SectionDiagramData{
		Width:          props.Width,
		Height:         props.Height,
		Vertices:       vertices,
		CentroidY:      cg,
		TendonMidspanY: cg + ecc,
		TendonAnchorY:  cg + pl.Profile().AnchorOffset(),
		StressTop:      toMPa(sigma.Top),
		StressBottom:   toMPa(sigma.Bottom),
	}, true
}

func writeCSVFile(path string, pl *losses.Pipeline) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteCSV(f, pl); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

