// Package export writes takeoff results and laid-out faces to files the
// shop uses outside the estimator: an Excel workbook and a DXF drawing.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/CabFace/internal/model"
	"github.com/piwi3910/CabFace/internal/takeoff"
)

// Sheet names of the takeoff workbook, in tab order.
const (
	SheetFaces      = "Faces"
	SheetBox        = "Box"
	SheetBanding    = "Banding"
	SheetFrame      = "Frame"
	SheetHardware   = "Hardware"
	SheetShelves    = "Shelves"
	SheetPartitions = "Partitions"
)

// WriteTakeoffXLSX writes a takeoff to an Excel workbook with one sheet per
// calculator.
func WriteTakeoffXLSX(path string, cab model.Cabinet, res takeoff.Result) error {
	f, err := BuildTakeoffWorkbook(cab, res)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// BuildTakeoffWorkbook fills a new workbook with the takeoff. The caller
// closes it.
func BuildTakeoffWorkbook(cab model.Cabinet, res takeoff.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	w := &sheetWriter{f: f, header: bold}
	w.sheet(SheetFaces, []any{"Node", "Kind", "Type", "Width", "Height", "Qty", "Glass"})
	for _, p := range res.FaceSummary {
		w.row(p.NodeID, string(p.Kind), p.Type.String(), p.Width, p.Height, p.Quantity, p.GlassID)
	}

	w.sheet(SheetBox, []any{"Part", "Width", "Height", "Qty", "Finish", "Banding", "Grain"})
	for _, p := range res.BoxSummary.Parts {
		w.row(p.Label, p.Width, p.Height, p.Quantity, p.Finish, p.EdgeBanding.String(), p.Grain.String())
	}
	w.blank()
	w.row("Banding (ft, with waste)", res.BoxSummary.EdgeBanding.TotalWithWasteFt)
	w.row("Sheets (with waste)", res.BoxSummary.Sheets.SheetsWithWaste)
	w.row("Board feet", res.BoxSummary.Sheets.TotalBoardFeet)
	w.row("Finished area (sq ft)", res.BoxSummary.Sheets.FinishedArea/144)

	w.sheet(SheetBanding, []any{"Part", "Width", "Height", "Qty", "Edges", "Per piece", "Total"})
	for _, b := range model.CalculatePerPartEdgeBanding(res.BoxSummary.Parts) {
		w.row(b.Label, b.Width, b.Height, b.Quantity, b.Edges, b.LengthPerUnit, b.TotalLength)
	}

	w.sheet(SheetFrame, []any{"Node", "Member", "Position", "Width", "Length"})
	for _, p := range res.FrameParts {
		w.row(p.NodeID, string(p.Kind), p.Position, p.Width, p.Length)
	}

	hw := res.BoxHardware
	w.sheet(SheetHardware, []any{"Item", "Qty"})
	w.row("Hinges", hw.Hinges)
	w.row("Slides", hw.Slides)
	w.row("Pulls", hw.Pulls)
	w.row("Appliance pulls", hw.AppliancePulls)

	sm := res.ShelfMetrics
	w.sheet(SheetShelves, []any{"Node", "Qty", "Width", "Depth", "Drill holes"})
	for _, s := range sm.Shelves {
		w.row(s.NodeID, s.Quantity, s.Width, s.Depth, s.DrillHoles)
	}
	w.blank()
	w.row("Area (sq in)", sm.Area)
	w.row("Banding (in)", sm.EdgeBanding)
	w.row("Perimeter (in)", sm.Perimeter)

	pm := res.PartitionMetrics
	w.sheet(SheetPartitions, []any{"Node", "Qty", "Length", "Depth", "Banded"})
	for _, p := range pm.Partitions {
		w.row(p.NodeID, p.Quantity, p.Length, p.Depth, p.Banded)
	}
	w.blank()
	w.row("Area (sq in)", pm.Area)
	w.row("Banding (in)", pm.EdgeBanding)

	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("%s takeoff", cab.Label),
		Subject: fmt.Sprintf("%gx%gx%g", cab.Width, cab.Height, cab.Depth),
	}); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// sheetWriter appends rows to the current sheet and keeps the first error.
type sheetWriter struct {
	f      *excelize.File
	header int
	name   string
	next   int
	err    error
}

func (w *sheetWriter) sheet(name string, header []any) {
	if w.err != nil {
		return
	}
	if w.name == "" {
		// The default sheet becomes the first tab.
		w.err = w.f.SetSheetName(w.f.GetSheetName(0), name)
	} else {
		_, w.err = w.f.NewSheet(name)
	}
	w.name, w.next = name, 1
	w.row(header...)
	if w.err == nil {
		w.err = w.f.SetRowStyle(name, 1, 1, w.header)
	}
}

func (w *sheetWriter) row(values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(w.name, cell, &values)
	w.next++
}

func (w *sheetWriter) blank() {
	w.next++
}
