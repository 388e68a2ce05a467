package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/piwi3910/CabFace/internal/model"
)

// UpdateChildrenFromParent pushes a container's extents down to its children
// after the container itself was resized. Every child takes the container's
// cross extent; face children are scaled so that face and reveal extents
// together fill the split extent again. Reveals keep their width. Container
// children are updated recursively. Leaves are left alone.
func UpdateChildrenFromParent(n *model.FaceNode) {
	if n == nil || !n.IsContainer() {
		return
	}
	dir := n.SplitDirection
	cross := n.CrossExtent(dir)

	var faces []*model.FaceNode
	var extents []float64
	var revealTotal float64
	for _, c := range n.Children {
		c.SetCrossExtent(dir, cross)
		if c.IsReveal() {
			revealTotal += c.SplitExtent(dir)
			continue
		}
		faces = append(faces, c)
		extents = append(extents, c.SplitExtent(dir))
	}
	if len(faces) == 0 {
		return
	}

	available := n.SplitExtent(dir) - revealTotal
	oldSum := floats.Sum(extents)
	if oldSum > 0 {
		floats.Scale(available/oldSum, extents)
	} else {
		for i := range extents {
			extents[i] = available / float64(len(extents))
		}
	}
	for i, f := range faces {
		f.SetSplitExtent(dir, extents[i])
		UpdateChildrenFromParent(f)
	}
}

// Drag applies one pointer-move step of a divider drag between nodeID and
// siblingID. The pointer displacement is converted to inches with
// displayScale (pixels per inch) and snapped to 1/16". The node grows by the
// step and the sibling shrinks by the same amount. A step that would leave
// any face below the minimum is rejected as a whole.
func Drag(root *model.FaceNode, nodeID, siblingID string, pointerDelta, displayScale float64) error {
	if !finite(pointerDelta, displayScale) || displayScale <= 0 {
		return fmt.Errorf("%w: drag %v at scale %v", ErrInvalidTarget, pointerDelta, displayScale)
	}
	ix := NewIndex(root)
	node, sibling, parent, err := adjacentPair(ix, nodeID, siblingID)
	if err != nil {
		return err
	}
	delta := model.Quantize(pointerDelta / displayScale)
	if delta == 0 {
		return nil
	}
	return resizePair(parent.SplitDirection, node, sibling, delta)
}

// adjacentPair resolves two face siblings separated by exactly one reveal.
func adjacentPair(ix *Index, nodeID, siblingID string) (node, sibling, parent *model.FaceNode, err error) {
	node, ok := ix.Node(nodeID)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrNotFound, nodeID)
	}
	sibling, ok = ix.Node(siblingID)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrNotFound, siblingID)
	}
	parent = ix.Parent(nodeID)
	if parent == nil || parent != ix.Parent(siblingID) {
		return nil, nil, nil, fmt.Errorf("%w: %s and %s are not siblings", ErrInvalidTarget, nodeID, siblingID)
	}
	if node.IsReveal() || sibling.IsReveal() {
		return nil, nil, nil, fmt.Errorf("%w: reveals cannot be dragged", ErrInvalidTarget)
	}
	i, j := ix.Position(nodeID), ix.Position(siblingID)
	if i-j != 2 && j-i != 2 {
		return nil, nil, nil, fmt.Errorf("%w: %s and %s are not adjacent", ErrInvalidTarget, nodeID, siblingID)
	}
	return node, sibling, parent, nil
}

// resizePair grows node by delta and shrinks sibling by delta, rescaling both
// subtrees. Either both change or neither does.
func resizePair(dir model.Direction, node, sibling *model.FaceNode, delta float64) error {
	a := node.SplitExtent(dir) + delta
	b := sibling.SplitExtent(dir) - delta
	if a < model.MinExtent || b < model.MinExtent {
		return fmt.Errorf("%w: %s would be %.4f, %s would be %.4f", ErrBelowMinimum, node.ID, a, sibling.ID, b)
	}

	nodeBackup, siblingBackup := node.Clone(), sibling.Clone()
	node.SetSplitExtent(dir, a)
	sibling.SetSplitExtent(dir, b)
	UpdateChildrenFromParent(node)
	UpdateChildrenFromParent(sibling)
	if hasUndersizedFace(node) || hasUndersizedFace(sibling) {
		*node = *nodeBackup
		*sibling = *siblingBackup
		return fmt.Errorf("%w: nested face in %s or %s", ErrBelowMinimum, node.ID, sibling.ID)
	}
	return nil
}

// SetSiblingDimension applies a typed dimension to a child of a container.
//
// For a face child the adjacent face sibling absorbs the difference: the next
// sibling, or the previous one when the child is last. With two faces this
// makes the sibling parentExtent - value - reveal.
//
// For a reveal the container must hold exactly two faces; the change is split
// evenly and taken from both of them.
func SetSiblingDimension(root *model.FaceNode, childID string, value float64) error {
	if !finite(value) {
		return fmt.Errorf("%w: dimension %v", ErrInvalidTarget, value)
	}
	ix := NewIndex(root)
	child, ok := ix.Node(childID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, childID)
	}
	parent := ix.Parent(childID)
	if parent == nil {
		return fmt.Errorf("%w: %s has no siblings", ErrInvalidTarget, childID)
	}
	dir := parent.SplitDirection
	pos := ix.Position(childID)
	value = model.Quantize(value)

	if !child.IsReveal() {
		siblingPos := pos + 2
		if siblingPos >= len(parent.Children) {
			siblingPos = pos - 2
		}
		return resizePair(dir, child, parent.Children[siblingPos], value-child.SplitExtent(dir))
	}

	if len(faceChildren(parent)) != 2 {
		return fmt.Errorf("%w: reveal %s needs exactly two face siblings", ErrInvalidTarget, childID)
	}
	if value < 0 {
		return fmt.Errorf("%w: negative reveal %.4f", ErrInvalidTarget, value)
	}
	before, after := parent.Children[pos-1], parent.Children[pos+1]
	half := (value - child.SplitExtent(dir)) / 2
	a := before.SplitExtent(dir) - half
	b := after.SplitExtent(dir) - half
	if a < model.MinExtent || b < model.MinExtent {
		return fmt.Errorf("%w: reveal %.4f leaves %.4f and %.4f", ErrBelowMinimum, value, a, b)
	}

	backup := parent.Clone()
	child.SetSplitExtent(dir, value)
	before.SetSplitExtent(dir, a)
	after.SetSplitExtent(dir, b)
	UpdateChildrenFromParent(before)
	UpdateChildrenFromParent(after)
	if hasUndersizedFace(before) || hasUndersizedFace(after) {
		*parent = *backup
		return fmt.Errorf("%w: nested face next to reveal %s", ErrBelowMinimum, childID)
	}
	return nil
}

// EqualizeSiblings gives every face child of a container the same extent
// along the split axis. Shares are snapped to 1/16" and the last face takes
// the rounding remainder so the axis sum still holds.
func EqualizeSiblings(root *model.FaceNode, containerID string) error {
	c := Find(root, containerID)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, containerID)
	}
	if !c.IsContainer() {
		return fmt.Errorf("%w: %s is not a container", ErrInvalidTarget, containerID)
	}
	dir := c.SplitDirection
	faces := faceChildren(c)
	var revealTotal float64
	for _, ch := range c.Children {
		if ch.IsReveal() {
			revealTotal += ch.SplitExtent(dir)
		}
	}
	available := c.SplitExtent(dir) - revealTotal
	share := available / float64(len(faces))
	if share < model.MinExtent {
		return fmt.Errorf("%w: equal share %.4f", ErrBelowMinimum, share)
	}
	q := model.Quantize(share)
	last := available - q*float64(len(faces)-1)
	if last < model.MinExtent {
		return fmt.Errorf("%w: last share %.4f", ErrBelowMinimum, last)
	}

	backup := c.Clone()
	for i, f := range faces {
		if i == len(faces)-1 {
			f.SetSplitExtent(dir, last)
		} else {
			f.SetSplitExtent(dir, q)
		}
		UpdateChildrenFromParent(f)
	}
	if hasUndersizedFace(c) {
		*c = *backup
		return fmt.Errorf("%w: nested face in %s", ErrBelowMinimum, containerID)
	}
	return nil
}

// ApplyCabinetSize recomputes the root extents from an outer cabinet size
// and reveal set, resets every divider to the new reveal width and rescales
// the whole tree. Nothing changes if a face would end up below the minimum.
func ApplyCabinetSize(root *model.FaceNode, width, height float64, reveals model.RootReveals) error {
	if !finite(width, height, reveals.Top, reveals.Bottom, reveals.Left, reveals.Right, reveals.Reveal) {
		return fmt.Errorf("%w: cabinet size %v x %v", ErrInvalidTarget, width, height)
	}
	w := width - reveals.Left - reveals.Right
	h := height - reveals.Top - reveals.Bottom
	if w < model.MinExtent || h < model.MinExtent {
		return fmt.Errorf("%w: face would be %.4f x %.4f", ErrBelowMinimum, w, h)
	}

	backup := root.Clone()
	rr := reveals
	root.RootReveals = &rr
	root.Width, root.Height = w, h
	setRevealWidths(root, reveals.Reveal)
	UpdateChildrenFromParent(root)
	if hasUndersizedFace(root) {
		*root = *backup
		return fmt.Errorf("%w: face %.4f x %.4f is too small for its layout", ErrBelowMinimum, w, h)
	}
	return nil
}

func setRevealWidths(root *model.FaceNode, width float64) {
	root.Walk(func(node, parent *model.FaceNode) bool {
		if node.IsReveal() && parent != nil {
			node.SetSplitExtent(parent.SplitDirection, width)
		}
		return true
	})
}
