package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"

	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/alexiusacademia/gopt/internal/report"
	"github.com/alexiusacademia/gopt/internal/scenario"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	batchJobs      int
	batchReportDir string
)

var batchCmd = &cobra.Command{
	Use:   "batch [scenario files...]",
	Short: "Compute the losses of several scenario files",
	Long: `Run the loss pipeline for every scenario file (JSON or INI)
and print one summary row per beam. Scenarios are evaluated
concurrently; a failing scenario is reported in its own row.

Examples:
  gopt batch beams/*.json
  gopt batch --jobs 4 --reports out/ b1.json b2.ini`,
	Args: cobra.MinimumNArgs(1),
	Run:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", runtime.NumCPU(), "Scenarios evaluated at the same time")
	batchCmd.Flags().StringVar(&batchReportDir, "reports", "", "Write an Excel workbook per scenario to this directory")
}

// batchResult is the outcome of one scenario file
type batchResult struct {
	path    string
	name    string
	summary losses.Summary
	err     error
}

// evaluateScenario loads a scenario file and runs its loss pipeline
func evaluateScenario(path, reportDir string) batchResult {
	r := batchResult{path: path, name: filepath.Base(path)}

	sc, err := scenario.LoadFromFile(path)
	if err != nil {
		r.err = err
		return r
	}
	r.name = sc.Name

	in, err := sc.Input()
	if err != nil {
		r.err = err
		return r
	}
	pl, err := losses.New(in)
	if err != nil {
		r.err = err
		return r
	}
	r.summary = pl.Summary()

	if reportDir != "" {
		out := filepath.Join(reportDir, sc.Name+".xlsx")
		if err := report.WriteXLSX(out, sc.Name, pl); err != nil {
			r.err = fmt.Errorf("report: %w", err)
		}
	}
	return r
}

// evaluateAll runs every scenario with at most jobs in flight, keeping the input order
func evaluateAll(paths []string, jobs int, reportDir string) []batchResult {
	results := make([]batchResult, len(paths))

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = evaluateScenario(path, reportDir)
			log.WithFields(log.Fields{
				"file":  path,
				"error": results[i].err,
			}).Debug("scenario evaluated")
			return nil
		})
	}
	// never fails: each scenario keeps its error in its own result
	_ = g.Wait()

	return results
}

func runBatch(cmd *cobra.Command, args []string) {
	if batchReportDir != "" {
		if err := os.MkdirAll(batchReportDir, 0755); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	results := evaluateAll(args, batchJobs, batchReportDir)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     POST-TENSIONED TENDON LOSSES - BATCH")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam\tP (kN)\tRegime\tPinf start\tPinf mid\tPinf end\tMax loss (%%)\n")
	fmt.Fprintf(w, "  ────\t──────\t──────\t──────────\t────────\t────────\t────────────\n")
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "  %s\t⚠ %v\t\t\t\t\t\n", r.name, r.err)
			continue
		}
		s := r.summary
		final := make([]float64, len(s.Points))
		maxLoss := 0.0
		for i, pt := range s.Points {
			final[i] = pt.Forces[len(pt.Forces)-1]
			if pt.LossPercent > maxLoss {
				maxLoss = pt.LossPercent
			}
		}
		fmt.Fprintf(w, "  %s\t%.1f\t%s\t%.1f\t%.1f\t%.1f\t%.1f\n",
			r.name, s.JackingForce, s.Regime, final[0], final[1], final[2], maxLoss)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d scenario(s), %d failed\n", len(results), failed)
	if batchReportDir != "" {
		fmt.Printf("  Workbooks written to: %s\n", batchReportDir)
	}
	fmt.Println()
}
