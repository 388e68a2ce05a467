package takeoff

import (
	"math"

	"github.com/piwi3910/CabFace/internal/model"
)

// Hinge spacing in inches: end clearance taken off the door height, then one
// hinge per span of the remainder.
const (
	HingeClearance = 8.0
	HingeSpan      = 33.0
	MinHinges      = 2
)

// Hardware counts the hinges, slides and pulls a face needs.
type Hardware struct {
	Hinges         int `json:"hinges"`
	Slides         int `json:"slides"`
	Pulls          int `json:"pulls"`
	AppliancePulls int `json:"appliance_pulls"`
}

// Total returns the number of hardware pieces.
func (h Hardware) Total() int {
	return h.Hinges + h.Slides + h.Pulls + h.AppliancePulls
}

// HingesFor returns the hinge count for one door leaf of height h.
func HingesFor(h float64) int {
	return max(MinHinges, MinHinges+int(math.Floor((h-HingeClearance)/HingeSpan)))
}

// CalculateHardware counts hardware over every face leaf. Each half of a
// pair door is hinged and pulled on its own. Drawer fronts and drawer boxes
// run on one pair of slides each, counted as one unit, and every roll-out
// adds another.
func CalculateHardware(root *model.FaceNode, p Params) Hardware {
	var hw Hardware
	for _, leaf := range root.Leaves() {
		h := q(leaf.Height)
		switch leaf.Type {
		case model.NodeDoor:
			hw.Hinges += HingesFor(h)
			hw.Pulls++
		case model.NodePairDoor:
			hw.Hinges += 2 * HingesFor(h)
			hw.Pulls += 2
		case model.NodeDrawerFront:
			hw.Slides++
			hw.Pulls++
		case model.NodeDrawerBox:
			hw.Slides++
		case model.NodeFalseFront:
			hw.Pulls++
		}
		hw.Slides += leaf.RollOutQty
	}
	if p.Type.Kind == model.KindAppliancePanel {
		hw.AppliancePulls = 1
	}
	return hw
}
