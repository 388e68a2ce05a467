package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/CabFace/internal/model"
)

// Violation is one broken tree invariant.
type Violation struct {
	NodeID  string `json:"node_id"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.NodeID, v.Message)
}

// Validate checks a face tree against its structural and geometric
// invariants and returns every violation found. An empty result means the
// tree is consistent.
func Validate(root *model.FaceNode) []Violation {
	var out []Violation
	add := func(id, format string, args ...any) {
		out = append(out, Violation{NodeID: id, Message: fmt.Sprintf(format, args...)})
	}
	if root == nil {
		add("", "missing root")
		return out
	}
	if root.ID != model.RootID {
		add(root.ID, "root id must be %q", model.RootID)
	}
	if root.RootReveals == nil {
		add(root.ID, "root reveals missing")
	}
	if root.IsReveal() {
		add(root.ID, "root cannot be a reveal")
	}

	seen := make(map[string]bool)
	root.Walk(func(n, parent *model.FaceNode) bool {
		if seen[n.ID] {
			add(n.ID, "duplicate id")
		}
		seen[n.ID] = true
		if !n.Type.Valid() {
			add(n.ID, "unknown type %q", n.Type)
		}
		if parent != nil && n.RootReveals != nil {
			add(n.ID, "root reveals on a non-root node")
		}

		if n.IsLeaf() {
			if n.Type == model.NodeContainer {
				add(n.ID, "container without children")
			}
			if n.SplitDirection != model.DirectionNone {
				add(n.ID, "split direction on a leaf")
			}
			if !n.IsReveal() && belowMin(n) {
				add(n.ID, "face %.4f x %.4f is below the %.0f\" minimum", n.Width, n.Height, model.MinExtent)
			}
			return true
		}

		validateContainer(n, add)
		return true
	})
	return out
}

func validateContainer(n *model.FaceNode, add func(id, format string, args ...any)) {
	if n.Type != model.NodeContainer {
		add(n.ID, "%s node has children", n.Type)
	}
	if !n.SplitDirection.Valid() {
		add(n.ID, "invalid split direction %q", n.SplitDirection)
		return
	}
	if len(n.Children) < 3 || len(n.Children)%2 == 0 {
		add(n.ID, "has %d children, want an odd count of at least 3", len(n.Children))
	}
	dir := n.SplitDirection
	var sum float64
	for i, c := range n.Children {
		wantReveal := i%2 == 1
		if c.IsReveal() != wantReveal {
			add(c.ID, "position %d breaks the face/reveal alternation", i)
		}
		if c.IsReveal() && c.SplitExtent(dir) < 0 {
			add(c.ID, "negative reveal width")
		}
		if math.Abs(c.CrossExtent(dir)-n.CrossExtent(dir)) > 1e-6 {
			add(c.ID, "cross extent %.4f differs from container %.4f", c.CrossExtent(dir), n.CrossExtent(dir))
		}
		sum += c.SplitExtent(dir)
	}
	if !model.AlmostEqual(sum, n.SplitExtent(dir)) {
		add(n.ID, "children sum to %.4f along the split axis, want %.4f", sum, n.SplitExtent(dir))
	}
}
