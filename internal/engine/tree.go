package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/CabFace/internal/model"
)

// Index maps node ids to nodes and to their parents so operations avoid
// walking from the root for every lookup. It is valid until the next
// structural change of the tree it was built from.
type Index struct {
	nodes   map[string]*model.FaceNode
	parents map[string]*model.FaceNode
}

// NewIndex builds an index over the tree rooted at root.
func NewIndex(root *model.FaceNode) *Index {
	ix := &Index{
		nodes:   make(map[string]*model.FaceNode),
		parents: make(map[string]*model.FaceNode),
	}
	root.Walk(func(node, parent *model.FaceNode) bool {
		ix.nodes[node.ID] = node
		if parent != nil {
			ix.parents[node.ID] = parent
		}
		return true
	})
	return ix
}

// Node returns the node with the given id.
func (ix *Index) Node(id string) (*model.FaceNode, bool) {
	n, ok := ix.nodes[id]
	return n, ok
}

// Parent returns the parent of the node with the given id, or nil for the root.
func (ix *Index) Parent(id string) *model.FaceNode {
	return ix.parents[id]
}

// Position returns the index of the node within its parent's children, or -1.
func (ix *Index) Position(id string) int {
	p := ix.parents[id]
	if p == nil {
		return -1
	}
	for i, c := range p.Children {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the node with the given id, or nil.
func Find(root *model.FaceNode, id string) *model.FaceNode {
	var found *model.FaceNode
	root.Walk(func(node, _ *model.FaceNode) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// childID derives a positional child id from its parent's id.
func childID(parentID string, i int) string {
	return fmt.Sprintf("%s-%d", parentID, i)
}

// renumber reassigns hierarchical ids below n after its children changed.
func renumber(n *model.FaceNode) {
	for i, c := range n.Children {
		c.ID = childID(n.ID, i)
		renumber(c)
	}
}

// revealWidth returns the internal divider width stored on the root.
func revealWidth(root *model.FaceNode) float64 {
	if root.RootReveals == nil {
		return 0
	}
	return root.RootReveals.Reveal
}

// faceChildren returns the non-reveal children of a container.
func faceChildren(n *model.FaceNode) []*model.FaceNode {
	var faces []*model.FaceNode
	for _, c := range n.Children {
		if !c.IsReveal() {
			faces = append(faces, c)
		}
	}
	return faces
}

// hasUndersizedFace reports whether any face leaf in the subtree is smaller
// than the minimum extent in either direction.
func hasUndersizedFace(n *model.FaceNode) bool {
	undersized := false
	n.Walk(func(node, _ *model.FaceNode) bool {
		if undersized {
			return false
		}
		if node.IsLeaf() && !node.IsReveal() && belowMin(node) {
			undersized = true
			return false
		}
		return true
	})
	return undersized
}

// belowMin also holds for NaN extents.
func belowMin(n *model.FaceNode) bool {
	const eps = 1e-9
	return !(n.Width >= model.MinExtent-eps) || !(n.Height >= model.MinExtent-eps)
}

// finite reports whether every value is a real number.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Stats summarizes the shape of a face tree.
type Stats struct {
	Faces      int `json:"faces"`
	Reveals    int `json:"reveals"`
	Containers int `json:"containers"`
	Depth      int `json:"depth"`
}

// CountNodes returns leaf, reveal and container counts and the tree depth.
// A single-leaf root has depth 1.
func CountNodes(root *model.FaceNode) Stats {
	var s Stats
	var visit func(n *model.FaceNode, depth int)
	visit = func(n *model.FaceNode, depth int) {
		if depth > s.Depth {
			s.Depth = depth
		}
		switch {
		case n.IsReveal():
			s.Reveals++
		case n.IsLeaf():
			s.Faces++
		default:
			s.Containers++
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	if root != nil {
		visit(root, 1)
	}
	return s
}
