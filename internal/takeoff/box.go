package takeoff

import (
	"fmt"
	"math"

	"github.com/piwi3910/CabFace/internal/model"
)

// Fixed piece sizes in inches.
const (
	NosingReturn   = 3.0 // Return leg of a deep end panel nosing
	FillerReturn   = 3.0 // Return leg of an L filler
	DepthTolerance = model.QuantizeStep
)

// BoxSummary is the sheet-goods part list of a cabinet with its edge banding
// and sheet totals.
type BoxSummary struct {
	Parts       []model.Part             `json:"parts"`
	EdgeBanding model.EdgeBandingSummary `json:"edge_banding"`
	Sheets      model.SheetEstimate      `json:"sheets"`
}

// CalculateBox builds the box part list for the item kind. Carcass kinds
// also carry the shelves and partitions found in the face.
func CalculateBox(root *model.FaceNode, p Params, shelves ShelfMetrics, partitions PartitionMetrics) BoxSummary {
	var parts []model.Part
	switch p.Type.Kind {
	case model.KindBase, model.KindWall, model.KindTall:
		parts = rectangularBox(p)
	case model.KindCorner45:
		parts = cornerBox(p)
	case model.KindEndPanel:
		parts = endPanelNosing(p)
	case model.KindFiller:
		parts = fillerParts(p)
	}
	if p.Type.Kind.HasBox() {
		parts = append(parts, shelfParts(shelves, p)...)
		parts = append(parts, partitionParts(partitions, p)...)
	}
	if parts == nil {
		parts = []model.Part{}
	}

	s := p.Settings
	return BoxSummary{
		Parts:       parts,
		EdgeBanding: model.CalculateEdgeBanding(parts, s.BandingWastePercent),
		Sheets:      model.CalculateSheetEstimate(parts, s.SheetWidth, s.SheetHeight, s.KerfWidth, s.WastePercent),
	}
}

func finishedPart(label string, w, h float64, qty int, finish bool) model.Part {
	part := model.NewPart(label, w, h, qty)
	part.Finish = finish
	return part
}

// rectangularBox is the five-piece carcass: two sides, top and bottom
// captured between the sides, and a full back.
func rectangularBox(p Params) []model.Part {
	t := p.Settings.BoxThickness
	inner := p.Width - 2*t

	left := finishedPart("Left Side", p.Depth, p.Height, 1, p.Finish.Left)
	right := finishedPart("Right Side", p.Depth, p.Height, 1, p.Finish.Right)
	top := finishedPart("Top", inner, p.Depth, 1, p.Finish.Top)
	bottom := finishedPart("Bottom", inner, p.Depth, 1, p.Finish.Bottom)
	back := finishedPart("Back", p.Width, p.Height, 1, p.Finish.Back)

	left.Grain, right.Grain, back.Grain = model.GrainVertical, model.GrainVertical, model.GrainVertical
	left.EdgeBanding = model.EdgeBanding{Left: true}
	right.EdgeBanding = model.EdgeBanding{Left: true}
	top.EdgeBanding = model.EdgeBanding{Bottom: true}
	bottom.EdgeBanding = model.EdgeBanding{Bottom: true}
	return []model.Part{left, right, top, bottom, back}
}

// CornerLeg returns the wall leg of a 45 degree corner cabinet whose
// diagonal face is width wide.
func CornerLeg(width, depth float64) float64 {
	return width/math.Sqrt2 + depth
}

// cornerBox is the six-piece 45 degree corner carcass: two sides, two backs
// meeting in the corner, and pentagon top and bottom.
func cornerBox(p Params) []model.Part {
	t := p.Settings.BoxThickness
	leg := CornerLeg(p.Width, p.Depth)

	outline := model.Outline{
		{X: 0, Y: 0},
		{X: leg, Y: 0},
		{X: leg, Y: p.Depth},
		{X: p.Depth, Y: leg},
		{X: 0, Y: leg},
	}

	left := finishedPart("Left Side", p.Depth, p.Height, 1, p.Finish.Left)
	right := finishedPart("Right Side", p.Depth, p.Height, 1, p.Finish.Right)
	backLeft := finishedPart("Back Left", leg, p.Height, 1, p.Finish.Back)
	backRight := finishedPart("Back Right", leg-t, p.Height, 1, p.Finish.Back)
	top := finishedPart("Top", leg, leg, 1, p.Finish.Top)
	bottom := finishedPart("Bottom", leg, leg, 1, p.Finish.Bottom)
	top.Outline = outline
	bottom.Outline = outline

	diagonal := model.EdgeBanding{Top: true}
	top.EdgeBanding = diagonal
	bottom.EdgeBanding = diagonal
	return []model.Part{left, right, backLeft, backRight, top, bottom}
}

// endPanelNosing returns the nosing of an end panel. A panel at standard
// depth gets a zero-width nosing strip; a deeper panel gets a main piece for
// the extra depth plus a fixed return.
func endPanelNosing(p Params) []model.Part {
	finish := p.Finish.Left || p.Finish.Right
	extra := p.Depth - model.StandardDepth
	if extra <= DepthTolerance {
		return []model.Part{finishedPart("Nosing", 0, p.Height, 1, finish)}
	}
	return []model.Part{
		finishedPart("Nosing", extra, p.Height, 1, finish),
		finishedPart("Nosing Return", NosingReturn, p.Height, 1, finish),
	}
}

// fillerParts is the L filler: a face strip and a return glued behind it.
func fillerParts(p Params) []model.Part {
	face := finishedPart("Filler", p.Width, p.Height, 1, true)
	ret := finishedPart("Filler Return", FillerReturn, p.Height, 1, false)
	face.Grain, ret.Grain = model.GrainVertical, model.GrainVertical
	return []model.Part{face, ret}
}

func shelfParts(m ShelfMetrics, p Params) []model.Part {
	var parts []model.Part
	for _, s := range m.Shelves {
		part := finishedPart(fmt.Sprintf("Shelf %s", s.NodeID), s.Width, s.Depth, s.Quantity, p.Finish.Interior)
		part.Grain = model.GrainHorizontal
		part.EdgeBanding = model.EdgeBanding{Bottom: true}
		parts = append(parts, part)
	}
	return parts
}

func partitionParts(m PartitionMetrics, p Params) []model.Part {
	var parts []model.Part
	for _, pt := range m.Partitions {
		part := finishedPart(fmt.Sprintf("Partition %s", pt.NodeID), pt.Depth, pt.Length, pt.Quantity, p.Finish.Interior)
		part.Grain = model.GrainVertical
		if pt.Banded {
			part.EdgeBanding = model.EdgeBanding{Left: true}
		}
		parts = append(parts, part)
	}
	return parts
}
