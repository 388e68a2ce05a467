package model

import "math"

// MinExtent is the smallest width or height (in inches) a face leaf may have.
const MinExtent = 2.0

// QuantizeStep is the 1/16" grid that dragged and derived dimensions snap to.
const QuantizeStep = 1.0 / 16.0

// RootID is the id of every face tree root.
const RootID = "root"

// NodeType identifies what a FaceNode represents. The set is closed: every
// value is one of the constants below.
type NodeType string

const (
	NodeDoor        NodeType = "door"
	NodePairDoor    NodeType = "pair_door"
	NodeDrawerFront NodeType = "drawer_front"
	NodeFalseFront  NodeType = "false_front"
	NodePanel       NodeType = "panel"
	NodeOpen        NodeType = "open"
	NodeDrawerBox   NodeType = "drawer_box" // Face of a standalone drawer-box item
	NodeContainer   NodeType = "container"
	NodeReveal      NodeType = "reveal"
)

// FaceTypes lists the leaf types a user can assign, in menu order.
var FaceTypes = []NodeType{
	NodeDoor,
	NodePairDoor,
	NodeDrawerFront,
	NodeFalseFront,
	NodePanel,
	NodeOpen,
	NodeDrawerBox,
}

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeDoor, NodePairDoor, NodeDrawerFront, NodeFalseFront, NodePanel,
		NodeOpen, NodeDrawerBox, NodeContainer, NodeReveal:
		return true
	}
	return false
}

// IsFace reports whether t is a physical face (anything except containers and reveals).
func (t NodeType) IsFace() bool {
	return t.Valid() && t != NodeContainer && t != NodeReveal
}

// SupportsShelves reports whether leaves of this type carry adjustable shelves.
func (t NodeType) SupportsShelves() bool {
	switch t {
	case NodeDoor, NodePairDoor, NodeOpen:
		return true
	}
	return false
}

// SupportsRollOuts reports whether leaves of this type can hold roll-out trays.
func (t NodeType) SupportsRollOuts() bool {
	switch t {
	case NodeDoor, NodePairDoor, NodeOpen:
		return true
	}
	return false
}

// SupportsDrawerBox reports whether leaves of this type sit in front of a drawer box.
func (t NodeType) SupportsDrawerBox() bool {
	return t == NodeDrawerFront || t == NodeDrawerBox
}

// SupportsGlass reports whether leaves of this type may reference glass parts.
func (t NodeType) SupportsGlass() bool {
	switch t {
	case NodeDoor, NodePairDoor, NodeOpen:
		return true
	}
	return false
}

func (t NodeType) String() string {
	switch t {
	case NodeDoor:
		return "Door"
	case NodePairDoor:
		return "Pair Door"
	case NodeDrawerFront:
		return "Drawer Front"
	case NodeFalseFront:
		return "False Front"
	case NodePanel:
		return "Panel"
	case NodeOpen:
		return "Open"
	case NodeDrawerBox:
		return "Drawer Box"
	case NodeContainer:
		return "Container"
	case NodeReveal:
		return "Reveal"
	default:
		return string(t)
	}
}

// Direction is the split direction of a container.
type Direction string

const (
	DirectionNone       Direction = ""
	DirectionHorizontal Direction = "horizontal" // Children side by side along the width
	DirectionVertical   Direction = "vertical"   // Children stacked along the height, first on top
)

// Valid reports whether d names an actual split direction.
func (d Direction) Valid() bool {
	return d == DirectionHorizontal || d == DirectionVertical
}

// RootReveals holds the four outer offsets of the face plus the width of
// every internal divider.
type RootReveals struct {
	Top    float64 `json:"top" yaml:"top" toml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   float64 `json:"left" yaml:"left" toml:"left"`
	Right  float64 `json:"right" yaml:"right" toml:"right"`
	Reveal float64 `json:"reveal" yaml:"reveal" toml:"reveal"`
}

// IsZero reports whether all outer offsets are zero.
func (r RootReveals) IsZero() bool {
	return r.Top == 0 && r.Bottom == 0 && r.Left == 0 && r.Right == 0
}

// BoxDimensions is a derived width x height x depth cache in inches.
type BoxDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Accessory is an attached accessory reference sized to its owning leaf.
type Accessory struct {
	ID     string  `json:"id"`
	DefID  string  `json:"def_id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FaceNode is one node of the cabinet face partition tree.
type FaceNode struct {
	ID             string      `json:"id"`
	Type           NodeType    `json:"type"`
	Width          float64     `json:"width"`
	Height         float64     `json:"height"`
	X              float64     `json:"x"`
	Y              float64     `json:"y"`
	SplitDirection Direction   `json:"split_direction,omitempty"`
	Children       []*FaceNode `json:"children,omitempty"`

	// Leaf-only fields
	RollOutQty          int            `json:"roll_out_qty,omitempty"`
	ShelfQty            int            `json:"shelf_qty,omitempty"`
	GlassPanelID        string         `json:"glass_panel_id,omitempty"`
	GlassShelvesID      string         `json:"glass_shelves_id,omitempty"`
	Accessories         []Accessory    `json:"accessories,omitempty"`
	RollOutDimensions   *BoxDimensions `json:"roll_out_dimensions,omitempty"`
	DrawerBoxDimensions *BoxDimensions `json:"drawer_box_dimensions,omitempty"`
	ShelfDimensions     *BoxDimensions `json:"shelf_dimensions,omitempty"`

	// Root-only field
	RootReveals *RootReveals `json:"root_reveals,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *FaceNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsContainer reports whether the node is a split region with children.
func (n *FaceNode) IsContainer() bool {
	return n.Type == NodeContainer && len(n.Children) > 0
}

// IsReveal reports whether the node is a divider.
func (n *FaceNode) IsReveal() bool {
	return n.Type == NodeReveal
}

// SplitExtent returns the node's extent along the given split direction:
// width for horizontal splits, height for vertical ones.
func (n *FaceNode) SplitExtent(d Direction) float64 {
	if d == DirectionHorizontal {
		return n.Width
	}
	return n.Height
}

// CrossExtent returns the node's extent across the given split direction.
func (n *FaceNode) CrossExtent(d Direction) float64 {
	if d == DirectionHorizontal {
		return n.Height
	}
	return n.Width
}

// SetSplitExtent sets the extent along the given split direction.
func (n *FaceNode) SetSplitExtent(d Direction, v float64) {
	if d == DirectionHorizontal {
		n.Width = v
	} else {
		n.Height = v
	}
}

// SetCrossExtent sets the extent across the given split direction.
func (n *FaceNode) SetCrossExtent(d Direction, v float64) {
	if d == DirectionHorizontal {
		n.Height = v
	} else {
		n.Width = v
	}
}

// ClearLeafFields drops every leaf-only field. Used when a leaf becomes a container.
func (n *FaceNode) ClearLeafFields() {
	n.RollOutQty = 0
	n.ShelfQty = 0
	n.GlassPanelID = ""
	n.GlassShelvesID = ""
	n.Accessories = nil
	n.RollOutDimensions = nil
	n.DrawerBoxDimensions = nil
	n.ShelfDimensions = nil
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *FaceNode) Clone() *FaceNode {
	if n == nil {
		return nil
	}
	cp := *n
	if n.Children != nil {
		cp.Children = make([]*FaceNode, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Clone()
		}
	}
	if n.Accessories != nil {
		cp.Accessories = make([]Accessory, len(n.Accessories))
		copy(cp.Accessories, n.Accessories)
	}
	cp.RollOutDimensions = cloneDims(n.RollOutDimensions)
	cp.DrawerBoxDimensions = cloneDims(n.DrawerBoxDimensions)
	cp.ShelfDimensions = cloneDims(n.ShelfDimensions)
	if n.RootReveals != nil {
		rr := *n.RootReveals
		cp.RootReveals = &rr
	}
	return &cp
}

func cloneDims(d *BoxDimensions) *BoxDimensions {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

// Walk visits n and every descendant depth-first, parents before children.
// The parent of the root is nil. Returning false from fn skips the node's children.
func (n *FaceNode) Walk(fn func(node, parent *FaceNode) bool) {
	walk(n, nil, fn)
}

func walk(n, parent *FaceNode, fn func(node, parent *FaceNode) bool) {
	if n == nil {
		return
	}
	if !fn(n, parent) {
		return
	}
	for _, c := range n.Children {
		walk(c, n, fn)
	}
}

// Leaves returns every leaf in layout order.
func (n *FaceNode) Leaves() []*FaceNode {
	var leaves []*FaceNode
	n.Walk(func(node, _ *FaceNode) bool {
		if node.IsLeaf() && !node.IsReveal() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// Quantize rounds v to the nearest 1/16".
func Quantize(v float64) float64 {
	return math.Round(v/QuantizeStep) * QuantizeStep
}

// AlmostEqual reports whether a and b differ by no more than one quantization step.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) <= QuantizeStep+1e-9
}
