package takeoff

import "github.com/piwi3910/CabFace/internal/model"

// FrameKind names a face-frame member.
type FrameKind string

const (
	FrameRail  FrameKind = "rail"
	FrameStile FrameKind = "stile"
)

// FramePart is one face-frame member.
type FramePart struct {
	NodeID   string    `json:"node_id"`
	Kind     FrameKind `json:"kind"`
	Position string    `json:"position"` // top, bottom, left, right or divider
	Width    float64   `json:"width"`
	Length   float64   `json:"length"`
}

// CalculateFrame lists face-frame members. The outer reveals become rails
// across the cabinet width and stiles along its height; each internal
// reveal becomes a rail in a horizontal split and a stile in a vertical one,
// as long as the reveal's cross extent. Only face-frame styles and
// face-frame items have a frame.
func CalculateFrame(root *model.FaceNode, p Params) []FramePart {
	parts := []FramePart{}
	if !p.Style.FaceFrame && p.Type.Kind != model.KindFaceFrame {
		return parts
	}

	if rr := root.RootReveals; rr != nil {
		outer := []struct {
			pos   string
			kind  FrameKind
			width float64
			along float64
		}{
			{"top", FrameRail, rr.Top, p.Width},
			{"bottom", FrameRail, rr.Bottom, p.Width},
			{"left", FrameStile, rr.Left, p.Height},
			{"right", FrameStile, rr.Right, p.Height},
		}
		for _, o := range outer {
			if o.width <= 0 {
				continue
			}
			parts = append(parts, FramePart{
				NodeID:   root.ID,
				Kind:     o.kind,
				Position: o.pos,
				Width:    q(o.width),
				Length:   q(o.along),
			})
		}
	}

	root.Walk(func(n, _ *model.FaceNode) bool {
		if !n.IsContainer() {
			return true
		}
		kind := FrameStile
		if n.SplitDirection == model.DirectionHorizontal {
			kind = FrameRail
		}
		for _, c := range n.Children {
			if !c.IsReveal() {
				continue
			}
			parts = append(parts, FramePart{
				NodeID:   c.ID,
				Kind:     kind,
				Position: "divider",
				Width:    q(c.SplitExtent(n.SplitDirection)),
				Length:   q(c.CrossExtent(n.SplitDirection)),
			})
		}
		return true
	})
	return parts
}
