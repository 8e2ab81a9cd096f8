package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/alexiusacademia/gopt/internal/measure"
	"github.com/xuri/excelize/v2"
)

// Header names the station table columns
var Header = []string{
	"Station", "x (m)", "y (cm)",
	"Patr (kN)", "Panc (kN)", "P0 (kN)", "Pinf (kN)",
	"Slip loss (kN)", "Δσp (MPa)", "Long-term loss (%)", "Total loss (%)",
}

// Row is one station of the station table
type Row struct {
	Station       int
	X             float64 // m
	Y             float64 // cm
	Forces        [4]float64
	SlipLoss      float64 // kN
	ShorteningMPa float64
	LongTermLoss  float64 // %
	TotalLoss     float64 // %
}

func (r Row) values() []interface{} {
	return []interface{}{
		r.Station, r.X, r.Y,
		r.Forces[0], r.Forces[1], r.Forces[2], r.Forces[3],
		r.SlipLoss, r.ShorteningMPa, r.LongTermLoss, r.TotalLoss,
	}
}

// Rows tabulates every station of the pipeline
func Rows(pl *losses.Pipeline) []Row {
	x, _ := pl.Profile().Positions().In(measure.Metre)
	y := pl.Profile().Offsets()
	stages := pl.Stages()
	slip := pl.AnchorageSlip().Losses()
	dsig, _ := pl.ElasticShortening().StressLosses().In(measure.Megapascal)
	longTerm := pl.TimeDependent().LossPercents()
	jack := math.Abs(pl.Friction().Input().JackingForce)

	rows := make([]Row, x.Len())
	for i := range rows {
		r := Row{
			Station:       i,
			X:             x.Value(i),
			Y:             y.Value(i),
			SlipLoss:      slip.Value(i),
			ShorteningMPa: dsig.Value(i),
			LongTermLoss:  longTerm.Value(i),
		}
		for s := range r.Forces {
			r.Forces[s] = stages[s].Forces.Value(i)
		}
		r.TotalLoss = 100 * (jack - math.Abs(r.Forces[3])) / jack
		rows[i] = r
	}
	return rows
}

// WriteCSV writes the station table as comma-separated values
func WriteCSV(w io.Writer, pl *losses.Pipeline) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, r := range Rows(pl) {
		record := make([]string, 0, len(Header))
		for _, v := range r.values() {
			switch t := v.(type) {
			case int:
				record = append(record, fmt.Sprintf("%d", t))
			case float64:
				record = append(record, fmt.Sprintf("%.6f", t))
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX saves the station table and the summary as an Excel workbook
func WriteXLSX(path, title string, pl *losses.Pipeline) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Stations"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, r := range Rows(pl) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, r.values()); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	if err := writeSummary(f, title, pl.Summary()); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, title string, s losses.Summary) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	cells := [][]interface{}{
		{"Scenario", title},
		{"Jacking force (kN)", s.JackingForce},
		{"β (kN/m)", s.Beta * 100},
		{"Slip regime", s.Regime.String()},
		{"Influence length xr (m)", s.InfluenceLength / 100},
		{"Peak slip loss (kN)", s.PeakSlipLoss},
		{"Modular ratio αp", s.ModularRatio},
		{"Creep coefficient φ", s.Creep},
		{},
		{"Point", "x (m)", "Patr (kN)", "Panc (kN)", "P0 (kN)", "Pinf (kN)", "Total loss (%)"},
	}
	for _, p := range s.Points {
		row := []interface{}{p.Label, p.X / 100}
		for _, v := range p.Forces {
			row = append(row, v)
		}
		cells = append(cells, append(row, p.LossPercent))
	}

	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
