package engine

import "github.com/piwi3910/CabFace/internal/model"

// Layout returns a copy of the tree with absolute, display-ready X, Y,
// Width and Height on every node. The root is offset by its left and top
// reveals; each container hands its own offset and cross extent down to its
// children and advances along the split axis. Stored extents are assumed to
// already satisfy the axis-sum invariant and the input is not modified.
func Layout(root *model.FaceNode) *model.FaceNode {
	if root == nil {
		return nil
	}
	out := root.Clone()
	var x, y float64
	if out.RootReveals != nil {
		x = out.RootReveals.Left
		y = out.RootReveals.Top
	}
	place(out, x, y)
	return out
}

func place(n *model.FaceNode, x, y float64) {
	n.X, n.Y = x, y
	if !n.IsContainer() {
		return
	}
	switch n.SplitDirection {
	case model.DirectionHorizontal:
		currentX := x
		for _, c := range n.Children {
			c.Height = n.Height
			place(c, currentX, y)
			currentX += c.Width
		}
	default:
		currentY := y
		for _, c := range n.Children {
			c.Width = n.Width
			place(c, x, currentY)
			currentY += c.Height
		}
	}
}
