package model

import "math"

// EdgeBandingSummary holds the calculated edge banding requirements for a set of parts.
type EdgeBandingSummary struct {
	TotalLinearIn    float64 `json:"total_linear_in"`     // Total banding length in inches (no waste)
	TotalLinearFt    float64 `json:"total_linear_ft"`     // Total banding length in feet (no waste)
	WastePercent     float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWasteIn float64 `json:"total_with_waste_in"` // Total with waste in inches
	TotalWithWasteFt float64 `json:"total_with_waste_ft"` // Total with waste in feet
	PartCount        int     `json:"part_count"`          // Number of individual pieces needing banding
	EdgeCount        int     `json:"edge_count"`          // Total number of edges needing banding
}

// CalculateEdgeBanding totals the banding for a part list. Each piece is
// snapped to 1/16" before summing; the total with wastePercent added is
// rounded up to whole inches.
func CalculateEdgeBanding(parts []Part, wastePercent float64) EdgeBandingSummary {
	sum := EdgeBandingSummary{WastePercent: wastePercent}
	for _, row := range CalculatePerPartEdgeBanding(parts) {
		sum.TotalLinearIn += row.TotalLength
		sum.PartCount += row.Quantity
		sum.EdgeCount += row.EdgeCount * row.Quantity
	}
	sum.TotalLinearFt = sum.TotalLinearIn / 12
	sum.TotalWithWasteIn = math.Ceil(sum.TotalLinearIn * (1 + wastePercent/100))
	sum.TotalWithWasteFt = sum.TotalWithWasteIn / 12
	return sum
}

// PerPartEdgeBanding returns a per-part breakdown of edge banding needs.
type PerPartEdgeBanding struct {
	Label         string  `json:"label"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Quantity      int     `json:"quantity"`
	Edges         string  `json:"edges"`           // e.g., "T+B+L+R"
	EdgeCount     int     `json:"edge_count"`      // Banded edges per piece
	LengthPerUnit float64 `json:"length_per_unit"` // in per piece
	TotalLength   float64 `json:"total_length"`    // in for all pieces
}

// CalculatePerPartEdgeBanding returns a breakdown of banding per part type.
func CalculatePerPartEdgeBanding(parts []Part) []PerPartEdgeBanding {
	var results []PerPartEdgeBanding
	for _, p := range parts {
		if !p.EdgeBanding.HasAny() {
			continue
		}
		lengthPerUnit := Quantize(p.EdgeBanding.LinearLength(p.Width, p.Height))
		results = append(results, PerPartEdgeBanding{
			Label:         p.Label,
			Width:         p.Width,
			Height:        p.Height,
			Quantity:      p.Quantity,
			Edges:         p.EdgeBanding.String(),
			EdgeCount:     p.EdgeBanding.EdgeCount(),
			LengthPerUnit: lengthPerUnit,
			TotalLength:   lengthPerUnit * float64(p.Quantity),
		})
	}
	return results
}
