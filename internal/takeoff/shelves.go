package takeoff

import (
	"math"

	"github.com/piwi3910/CabFace/internal/model"
)

// Shelf pin holes start 2" from the top and bottom of the opening and repeat
// every 1.25", four columns per opening.
const (
	DrillClearance = 4.0
	DrillSpacing   = 1.25
	DrillColumns   = 4
)

// Shelf is the shelving behind one face leaf.
type Shelf struct {
	NodeID     string  `json:"node_id"`
	Quantity   int     `json:"quantity"`
	Width      float64 `json:"width"`
	Depth      float64 `json:"depth"`
	DrillHoles int     `json:"drill_holes"`
}

// ShelfMetrics totals the adjustable shelving of a cabinet. Areas are square
// inches and lengths inches.
type ShelfMetrics struct {
	Count       int     `json:"count"`
	Area        float64 `json:"area"`
	EdgeBanding float64 `json:"edge_banding"`
	Perimeter   float64 `json:"perimeter"`
	DrillHoles  int     `json:"drill_holes"`
	Shelves     []Shelf `json:"shelves"`
}

// DrillHolesFor returns the shelf pin holes drilled for an opening of height h.
func DrillHolesFor(h float64) int {
	if h <= DrillClearance {
		return 0
	}
	return int(math.Ceil((h-DrillClearance)/DrillSpacing)) * DrillColumns
}

// CalculateShelves sums shelving for every leaf with shelves. Only carcass
// item kinds hold shelves.
func CalculateShelves(root *model.FaceNode, p Params) ShelfMetrics {
	m := ShelfMetrics{Shelves: []Shelf{}}
	if !p.Type.Kind.HasBox() {
		return m
	}
	d := q(p.Depth)
	for _, leaf := range root.Leaves() {
		if leaf.ShelfQty <= 0 {
			continue
		}
		qty := float64(leaf.ShelfQty)
		w := q(leaf.Width)
		s := Shelf{
			NodeID:     leaf.ID,
			Quantity:   leaf.ShelfQty,
			Width:      w,
			Depth:      d,
			DrillHoles: DrillHolesFor(q(leaf.Height)),
		}
		m.Shelves = append(m.Shelves, s)
		m.Count += leaf.ShelfQty
		m.Area += qty * w * d
		m.EdgeBanding += qty * w
		m.Perimeter += qty * 2 * (w + d)
		m.DrillHoles += s.DrillHoles
	}
	return m
}
