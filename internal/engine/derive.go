package engine

import (
	"math"

	"github.com/piwi3910/CabFace/internal/model"
)

// Derived component sizes in inches.
const (
	RollOutClearance = 2.0  // Roll-out tray width loss for slides and door hinges
	RollOutHeight    = 4.0  // Roll-out tray side height
	ShelfThickness   = 0.75 // Adjustable shelf stock
	ShelfSetback     = 1.0  // Shelf front edge behind the face
	SlideStep        = 3.0  // Drawer slides come in 3" length steps
	MinSlideLength   = 9.0
)

// SlideLength returns the longest standard slide that fits a cabinet of the
// given depth, leaving an inch for the back.
func SlideLength(depth float64) float64 {
	l := math.Floor((depth-1)/SlideStep) * SlideStep
	if l < MinSlideLength {
		return model.Quantize(max(depth-1, 0))
	}
	return l
}

// RefreshDerived recomputes the derived dimension caches of every face leaf
// from its current extents and the cabinet depth, and re-sizes attached
// accessories. Containers and reveals carry no caches.
func RefreshDerived(root *model.FaceNode, depth float64, accessories AccessoryLookup) {
	slide := SlideLength(depth)
	root.Walk(func(n, _ *model.FaceNode) bool {
		if !n.IsLeaf() || n.IsReveal() {
			n.ClearLeafFields()
			return true
		}
		t := n.Type

		n.DrawerBoxDimensions = nil
		if t.SupportsDrawerBox() {
			n.DrawerBoxDimensions = &model.BoxDimensions{
				Width:  model.Quantize(max(n.Width-DrawerSideClearance, 0)),
				Height: model.Quantize(max(n.Height-DrawerHeightClearance, 0)),
				Depth:  slide,
			}
		}

		if !t.SupportsRollOuts() {
			n.RollOutQty = 0
		}
		n.RollOutDimensions = nil
		if n.RollOutQty > 0 {
			n.RollOutDimensions = &model.BoxDimensions{
				Width:  model.Quantize(max(n.Width-RollOutClearance, 0)),
				Height: RollOutHeight,
				Depth:  slide,
			}
		}

		if !t.SupportsShelves() {
			n.ShelfQty = 0
		}
		n.ShelfDimensions = nil
		if n.ShelfQty > 0 {
			n.ShelfDimensions = &model.BoxDimensions{
				Width:  model.Quantize(n.Width),
				Height: ShelfThickness,
				Depth:  model.Quantize(max(depth-ShelfSetback, 0)),
			}
		}

		for i := range n.Accessories {
			def := model.AccessoryDef{ID: n.Accessories[i].DefID}
			if accessories != nil {
				for _, d := range accessories.AccessoriesFor(t) {
					if d.ID == def.ID {
						def = d
						break
					}
				}
			}
			n.Accessories[i].Resize(def, n.Width, n.Height)
		}
		return true
	})
}
