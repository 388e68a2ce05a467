package takeoff

import (
	"math"

	"github.com/piwi3910/CabFace/internal/model"
)

// GlassInset is the total border taken off a leaf for its glass: 2.5" per side.
const GlassInset = 5.0

// FacePartKind separates faces from the glass cut for them.
type FacePartKind string

const (
	FaceKindFace       FacePartKind = "face"
	FaceKindGlassPanel FacePartKind = "glass_panel"
	FaceKindGlassShelf FacePartKind = "glass_shelf"
)

// FacePart is one entry of the face summary.
type FacePart struct {
	NodeID   string         `json:"node_id"`
	Kind     FacePartKind   `json:"kind"`
	Type     model.NodeType `json:"type"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Quantity int            `json:"quantity"`
	GlassID  string         `json:"glass_id,omitempty"`
}

// CalculateFaces lists every face leaf. A pair door is listed as two
// half-width doors. Leaves that reference glass also get glass panel and
// glass shelf entries inset from the face; glass shelves are as deep as the
// cabinet less the same inset.
func CalculateFaces(root *model.FaceNode, p Params) []FacePart {
	parts := []FacePart{}
	for _, leaf := range root.Leaves() {
		w, h := q(leaf.Width), q(leaf.Height)

		doors := 1
		typ := leaf.Type
		if typ == model.NodePairDoor {
			doors = 2
			typ = model.NodeDoor
			w = q(w / 2)
		}
		for i := 0; i < doors; i++ {
			parts = append(parts, FacePart{NodeID: leaf.ID, Kind: FaceKindFace, Type: typ, Width: w, Height: h, Quantity: 1})
		}

		if leaf.GlassPanelID != "" {
			parts = append(parts, FacePart{
				NodeID:   leaf.ID,
				Kind:     FaceKindGlassPanel,
				Type:     typ,
				Width:    insetGlass(w),
				Height:   insetGlass(h),
				Quantity: doors,
				GlassID:  leaf.GlassPanelID,
			})
		}
		if leaf.GlassShelvesID != "" {
			parts = append(parts, FacePart{
				NodeID:   leaf.ID,
				Kind:     FaceKindGlassShelf,
				Type:     leaf.Type,
				Width:    insetGlass(q(leaf.Width)),
				Height:   insetGlass(q(p.Depth)),
				Quantity: max(leaf.ShelfQty, 1),
				GlassID:  leaf.GlassShelvesID,
			})
		}
	}
	return parts
}

func insetGlass(v float64) float64 {
	return q(math.Max(v-GlassInset, 0))
}
