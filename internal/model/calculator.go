package model

import "math"

// SheetEstimate holds the results of a sheet-goods quantity calculation.
// Pricing is left to the estimating screens.
type SheetEstimate struct {
	TotalPartArea     float64  `json:"total_part_area"`     // Total area of all parts incl. kerf (sq in)
	TotalBoardFeet    float64  `json:"total_board_feet"`    // Total area in board feet (1 bf = 144 sq in)
	FinishedArea      float64  `json:"finished_area"`       // Area of parts with a finished face (sq in)
	SheetArea         float64  `json:"sheet_area"`          // Area of one sheet (sq in)
	SheetsNeededExact float64  `json:"sheets_needed_exact"` // Exact fractional number of sheets
	SheetsNeededMin   int      `json:"sheets_needed_min"`   // Minimum sheets (ceiling of exact)
	SheetsWithWaste   int      `json:"sheets_with_waste"`   // Recommended sheets including waste factor
	WastePercent      float64  `json:"waste_percent"`       // Waste factor applied (e.g., 15 for 15%)
	KerfWidth         float64  `json:"kerf_width"`          // Kerf width used in calculation
	Oversized         []string `json:"oversized,omitempty"` // Parts that do not fit a sheet along their grain
}

// sqInPerBoardFoot is the face area of one board foot (12" x 12").
const sqInPerBoardFoot = 144.0

// CalculateSheetEstimate computes how many sheets a part list consumes.
// Shaped parts count their outline area; every part carries one kerf along
// its width and height. Parts that cannot be cut from a sheet with their
// grain along the sheet length are listed in Oversized.
func CalculateSheetEstimate(parts []Part, sheetWidth, sheetHeight, kerfWidth, wastePercent float64) SheetEstimate {
	est := SheetEstimate{
		WastePercent: wastePercent,
		KerfWidth:    kerfWidth,
	}
	for _, p := range parts {
		kerfed := p.Area() + kerfWidth*(p.Width+p.Height) + kerfWidth*kerfWidth
		est.TotalPartArea += kerfed * float64(p.Quantity)
		if p.Finish {
			est.FinishedArea += p.TotalArea()
		}
		if sheetWidth > 0 && sheetHeight > 0 && !p.FitsSheet(sheetWidth, sheetHeight) {
			est.Oversized = append(est.Oversized, p.Label)
		}
	}
	est.TotalBoardFeet = est.TotalPartArea / sqInPerBoardFoot

	est.SheetArea = sheetWidth * sheetHeight
	if est.SheetArea <= 0 {
		est.SheetArea = 0
		return est
	}

	est.SheetsNeededExact = est.TotalPartArea / est.SheetArea
	est.SheetsNeededMin = int(math.Ceil(est.SheetsNeededExact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	est.SheetsWithWaste = max(int(math.Ceil(est.SheetsNeededExact*wasteFactor)), est.SheetsNeededMin)
	return est
}
