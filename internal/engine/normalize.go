package engine

import "github.com/piwi3910/CabFace/internal/model"

// Normalize returns a clean copy of a stored face config for a cabinet.
// Older saved configs may lack ids, root reveals or node types, break the
// face/reveal alternation or carry axis sums that no longer add up; all of
// that is repaired with computed defaults rather than reported. A nil config
// yields a fresh single-leaf root, and so does a layout that cannot be
// scaled to the cabinet without a face dropping below the minimum. The input
// is not modified.
func Normalize(stored *model.FaceNode, cab model.Cabinet, reveals model.RootReveals, defaultFace model.NodeType) *model.FaceNode {
	root, _ := normalize(stored, cab, reveals, defaultFace)
	return root
}

// normalize is Normalize that also reports whether a stored layout was
// discarded because it did not fit.
func normalize(stored *model.FaceNode, cab model.Cabinet, reveals model.RootReveals, defaultFace model.NodeType) (*model.FaceNode, bool) {
	if !defaultFace.IsFace() {
		defaultFace = model.NodeDoor
	}
	if stored == nil {
		return NewRoot(cab.Width, cab.Height, reveals, defaultFace), false
	}

	root := stored.Clone()
	root.ID = model.RootID
	if root.RootReveals == nil {
		rr := reveals
		root.RootReveals = &rr
	}
	if root.RootReveals.Reveal <= 0 {
		root.RootReveals.Reveal = reveals.Reveal
	}
	repair(root, defaultFace, root.RootReveals.Reveal)

	if cab.Width > 0 && cab.Height > 0 {
		rr := root.RootReveals
		root.Width = cab.Width - rr.Left - rr.Right
		root.Height = cab.Height - rr.Top - rr.Bottom
	}
	renumber(root)
	UpdateChildrenFromParent(root)
	if root.IsContainer() && hasUndersizedFace(root) {
		return NewRoot(cab.Width, cab.Height, *root.RootReveals, defaultFace), true
	}
	return root, false
}

// repair fixes the structure of n and its subtree in place.
func repair(n *model.FaceNode, defaultFace model.NodeType, reveal float64) {
	var faces, dividers []*model.FaceNode
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if c.Type == model.NodeReveal {
			dividers = append(dividers, c)
			continue
		}
		repair(c, defaultFace, reveal)
		faces = append(faces, c)
	}

	switch len(faces) {
	case 0:
		n.Children = nil
		n.SplitDirection = model.DirectionNone
		if !n.Type.IsFace() {
			n.Type = defaultFace
			resetFeatures(n)
		}
		return
	case 1:
		promote(n, faces[0])
		return
	}

	if !n.SplitDirection.Valid() {
		n.SplitDirection = model.DirectionVertical
	}
	dir := n.SplitDirection
	children := make([]*model.FaceNode, 0, 2*len(faces)-1)
	for i, f := range faces {
		if i > 0 {
			var d *model.FaceNode
			if i-1 < len(dividers) {
				d = dividers[i-1]
			} else {
				d = &model.FaceNode{Type: model.NodeReveal}
			}
			d.Children = nil
			d.SplitDirection = model.DirectionNone
			d.ClearLeafFields()
			if d.SplitExtent(dir) <= 0 {
				d.SetSplitExtent(dir, reveal)
			}
			children = append(children, d)
		}
		children = append(children, f)
	}
	n.Type = model.NodeContainer
	n.ClearLeafFields()
	n.Children = children
}
