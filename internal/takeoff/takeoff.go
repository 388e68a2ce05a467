// Package takeoff derives manufacturing quantities from a cabinet face tree:
// hardware counts, shelf and partition metrics, face-frame parts, box
// materials and the face list handed to the estimating screens. Every
// calculator is a read-only walk over the laid-out tree and nothing is priced.
package takeoff

import (
	"fmt"

	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/model"
)

// Params are the ambient inputs of a takeoff besides the face tree.
type Params struct {
	Width    float64
	Height   float64
	Depth    float64
	Style    model.StyleInfo
	Type     model.TypeInfo
	Finish   model.FinishFlags
	Settings model.EstimateSettings
}

// NewParams resolves a cabinet's style and item type through the catalog.
func NewParams(cab model.Cabinet, cat engine.Catalog, settings model.EstimateSettings) (Params, error) {
	style, ok := cat.Style(cab.StyleID)
	if !ok {
		return Params{}, fmt.Errorf("unknown style %d", cab.StyleID)
	}
	typ, ok := cat.ItemType(cab.TypeID)
	if !ok {
		return Params{}, fmt.Errorf("unknown item type %d", cab.TypeID)
	}
	return Params{
		Width:    cab.Width,
		Height:   cab.Height,
		Depth:    cab.Depth,
		Style:    style,
		Type:     typ,
		Finish:   cab.Finish,
		Settings: settings,
	}, nil
}

// Result is the combined takeoff handed to the estimating layer.
type Result struct {
	FaceSummary      []FacePart       `json:"face_summary"`
	BoxSummary       BoxSummary       `json:"box_summary"`
	FrameParts       []FramePart      `json:"frame_parts"`
	BoxHardware      Hardware         `json:"box_hardware"`
	ShelfMetrics     ShelfMetrics     `json:"shelf_metrics"`
	PartitionMetrics PartitionMetrics `json:"partition_metrics"`
}

// Calculate lays out root and runs every calculator over it.
func Calculate(root *model.FaceNode, p Params) Result {
	laid := engine.Layout(root)
	shelves := CalculateShelves(laid, p)
	partitions := CalculatePartitions(laid, p)
	return Result{
		FaceSummary:      CalculateFaces(laid, p),
		BoxSummary:       CalculateBox(laid, p, shelves, partitions),
		FrameParts:       CalculateFrame(laid, p),
		BoxHardware:      CalculateHardware(laid, p),
		ShelfMetrics:     shelves,
		PartitionMetrics: partitions,
	}
}

// q snaps a linear value to 1/16" before it is accumulated.
func q(v float64) float64 {
	return model.Quantize(v)
}
