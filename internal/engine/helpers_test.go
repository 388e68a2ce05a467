package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CabFace/internal/model"
)

// frameless is the style 13 reveal set: no outer offsets, 1/8" dividers.
var frameless = model.RootReveals{Reveal: 0.125}

func newTestRoot(w, h float64, reveals model.RootReveals) *model.FaceNode {
	return NewRoot(w, h, reveals, model.NodeDoor)
}

// threeWay builds a root container with three equal faces along dir.
func threeWay(dir model.Direction, face, cross, reveal float64) *model.FaceNode {
	root := &model.FaceNode{
		ID:             model.RootID,
		Type:           model.NodeContainer,
		SplitDirection: dir,
		RootReveals:    &model.RootReveals{Reveal: reveal},
	}
	root.SetSplitExtent(dir, 3*face+2*reveal)
	root.SetCrossExtent(dir, cross)
	for i := 0; i < 5; i++ {
		c := &model.FaceNode{Type: model.NodeDoor}
		ext := face
		if i%2 == 1 {
			c.Type = model.NodeReveal
			ext = reveal
		}
		c.SetSplitExtent(dir, ext)
		c.SetCrossExtent(dir, cross)
		root.Children = append(root.Children, c)
	}
	renumber(root)
	return root
}

func requireValid(t *testing.T, root *model.FaceNode) {
	t.Helper()
	require.Empty(t, Validate(root))
}

func splitExtents(n *model.FaceNode) []float64 {
	var out []float64
	for _, c := range n.Children {
		out = append(out, c.SplitExtent(n.SplitDirection))
	}
	return out
}

func assertExtents(t *testing.T, want []float64, n *model.FaceNode) {
	t.Helper()
	got := splitExtents(n)
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "child %d", i)
	}
}
