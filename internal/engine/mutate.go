package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/piwi3910/CabFace/internal/model"
)

// Drawer box clearances in inches: side-mount slides take 1/2" per side and
// the box sits 1/2" inside the front top and bottom.
const (
	DrawerSideClearance   = 1.0
	DrawerHeightClearance = 1.0
)

// AccessoryLookup returns the accessory definitions that may attach to a
// leaf of the given type.
type AccessoryLookup interface {
	AccessoriesFor(t model.NodeType) []model.AccessoryDef
}

// NewRoot creates the single-leaf face for a cabinet of the given size.
func NewRoot(width, height float64, reveals model.RootReveals, faceType model.NodeType) *model.FaceNode {
	if !faceType.IsFace() {
		faceType = model.NodeDoor
	}
	rr := reveals
	root := &model.FaceNode{
		ID:          model.RootID,
		Type:        faceType,
		Width:       width - reveals.Left - reveals.Right,
		Height:      height - reveals.Top - reveals.Bottom,
		RootReveals: &rr,
	}
	resetFeatures(root)
	return root
}

// DefaultShelfQty is the number of adjustable shelves fitted behind a face of
// height h: one per 12" after 4" of top and bottom clearance.
func DefaultShelfQty(h float64) int {
	return max(0, int(math.Floor((h-4)/12)))
}

// resetFeatures sets leaf feature fields to the defaults of the node's type
// and clears features the type does not support.
func resetFeatures(n *model.FaceNode) {
	t := n.Type
	n.ShelfQty = 0
	n.RollOutQty = 0
	n.RollOutDimensions = nil
	n.DrawerBoxDimensions = nil
	n.ShelfDimensions = nil
	if t.SupportsShelves() {
		n.ShelfQty = DefaultShelfQty(n.Height)
	}
	if t.SupportsDrawerBox() {
		n.DrawerBoxDimensions = &model.BoxDimensions{
			Width:  model.Quantize(max(n.Width-DrawerSideClearance, 0)),
			Height: model.Quantize(max(n.Height-DrawerHeightClearance, 0)),
		}
	}
	if !t.SupportsGlass() {
		n.GlassPanelID = ""
		n.GlassShelvesID = ""
	}
}

// Split turns the leaf leafID into a container of two equal faces with a
// reveal between them. The faces keep the leaf's type when it was a face
// type and otherwise get defaultType.
func Split(root *model.FaceNode, leafID string, dir model.Direction, defaultType model.NodeType) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: split direction %q", ErrInvalidTarget, dir)
	}
	node := Find(root, leafID)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, leafID)
	}
	if !node.IsLeaf() || node.IsReveal() {
		return fmt.Errorf("%w: only face leaves can be split", ErrInvalidTarget)
	}

	reveal := revealWidth(root)
	half := (node.SplitExtent(dir) - reveal) / 2
	cross := node.CrossExtent(dir)
	if half < model.MinExtent || cross < model.MinExtent {
		return fmt.Errorf("%w: halves of %s would be %.4f", ErrBelowMinimum, leafID, half)
	}

	childType := node.Type
	if !childType.IsFace() {
		childType = defaultType
	}
	if !childType.IsFace() {
		childType = model.NodeDoor
	}

	newChild := func(i int, t model.NodeType, extent float64) *model.FaceNode {
		c := &model.FaceNode{ID: childID(node.ID, i), Type: t}
		c.SetSplitExtent(dir, extent)
		c.SetCrossExtent(dir, cross)
		if t.IsFace() {
			resetFeatures(c)
		}
		return c
	}
	children := []*model.FaceNode{
		newChild(0, childType, half),
		newChild(1, model.NodeReveal, reveal),
		newChild(2, childType, half),
	}

	node.ClearLeafFields()
	node.Type = model.NodeContainer
	node.SplitDirection = dir
	node.Children = children
	return nil
}

// Delete removes the face nodeID together with the reveal before it (after
// it, when the node is the first child). The freed extent is shared among
// the remaining faces in proportion to their size. A container left with a
// single face collapses into that face, keeping its own id and extents.
func Delete(root *model.FaceNode, nodeID string) error {
	if nodeID == root.ID {
		return ErrRootDelete
	}
	ix := NewIndex(root)
	node, ok := ix.Node(nodeID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, nodeID)
	}
	if node.IsReveal() {
		return fmt.Errorf("%w: reveals are removed with their face", ErrInvalidTarget)
	}
	parent := ix.Parent(nodeID)
	dir := parent.SplitDirection
	pos := ix.Position(nodeID)

	revealPos := pos - 1
	if pos == 0 {
		revealPos = 1
	}
	removed := node.SplitExtent(dir) + parent.Children[revealPos].SplitExtent(dir)
	lo := min(pos, revealPos)
	remaining := make([]*model.FaceNode, 0, len(parent.Children)-2)
	remaining = append(remaining, parent.Children[:lo]...)
	remaining = append(remaining, parent.Children[lo+2:]...)
	parent.Children = remaining

	faces := faceChildren(parent)
	extents := make([]float64, len(faces))
	for i, f := range faces {
		extents[i] = f.SplitExtent(dir)
	}
	total := floats.Sum(extents)
	for i, f := range faces {
		share := 1 / float64(len(faces))
		if total > 0 {
			share = extents[i] / total
		}
		f.SetSplitExtent(dir, extents[i]+removed*share)
	}

	if len(faces) == 1 {
		promote(parent, faces[0])
	}
	renumber(parent)
	UpdateChildrenFromParent(parent)
	return nil
}

// promote replaces container with the content of its only remaining child.
// The container keeps its id, position, extents and root reveals.
func promote(container, only *model.FaceNode) {
	id := container.ID
	x, y := container.X, container.Y
	w, h := container.Width, container.Height
	reveals := container.RootReveals

	*container = *only
	container.ID = id
	container.X, container.Y = x, y
	container.Width, container.Height = w, h
	container.RootReveals = reveals
	if !container.IsContainer() {
		container.SplitDirection = model.DirectionNone
	}
}

// SetLeafType changes the type of a face leaf and resets its features to
// the new type's defaults. Accessories the new type does not allow are
// dropped; with a nil lookup all accessories are dropped.
func SetLeafType(root *model.FaceNode, nodeID string, t model.NodeType, accessories AccessoryLookup) error {
	if !t.IsFace() {
		return fmt.Errorf("%w: %q is not a face type", ErrInvalidTarget, t)
	}
	node := Find(root, nodeID)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, nodeID)
	}
	if !node.IsLeaf() || node.IsReveal() {
		return fmt.Errorf("%w: %s is not a face leaf", ErrInvalidTarget, nodeID)
	}

	node.Type = t
	resetFeatures(node)

	var kept []model.Accessory
	if accessories != nil {
		allowed := make(map[string]bool)
		for _, def := range accessories.AccessoriesFor(t) {
			allowed[def.ID] = true
		}
		for _, a := range node.Accessories {
			if allowed[a.DefID] {
				kept = append(kept, a)
			}
		}
	}
	node.Accessories = kept
	return nil
}
