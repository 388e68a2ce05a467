package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CabFace/internal/model"
)

var baseCabinet = model.Cabinet{Width: 36, Height: 30, Depth: 24, StyleID: 13, TypeID: 1}

func TestNormalize_NilConfigGivesFreshRoot(t *testing.T) {
	root := Normalize(nil, baseCabinet, frameless, model.NodeDrawerFront)

	assert.Equal(t, model.RootID, root.ID)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, model.NodeDrawerFront, root.Type)
	assert.Equal(t, 36.0, root.Width)
	assert.Equal(t, 30.0, root.Height)
	requireValid(t, root)
}

func TestNormalize_LegacyConfig(t *testing.T) {
	// Missing ids, missing root reveals, no reveal between the faces and
	// extents that no longer match the cabinet.
	stored := &model.FaceNode{
		Type:           model.NodeContainer,
		SplitDirection: model.DirectionHorizontal,
		Width:          30,
		Height:         20,
		Children: []*model.FaceNode{
			{Type: model.NodeDoor, Width: 10, Height: 20},
			{Type: model.NodeDrawerFront, Width: 10, Height: 20},
		},
	}
	before := stored.Clone()

	root := Normalize(stored, baseCabinet, frameless, model.NodeDoor)

	assert.Equal(t, before, stored, "input must not change")
	requireValid(t, root)
	require.NotNil(t, root.RootReveals)
	assert.Equal(t, frameless, *root.RootReveals)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "root-0", root.Children[0].ID)
	assert.Equal(t, model.NodeDoor, root.Children[0].Type)
	assert.Equal(t, model.NodeReveal, root.Children[1].Type)
	assert.Equal(t, model.NodeDrawerFront, root.Children[2].Type)
	assertExtents(t, []float64{17.9375, 0.125, 17.9375}, root)
	assert.Equal(t, 30.0, root.Children[2].Height)
}

func TestNormalize_KeepsStoredRevealsAndFixesDividers(t *testing.T) {
	stored := threeWay(model.DirectionVertical, 8, 36, 0.75)
	stored.ID = ""
	stored.Children[3].Height = 0

	root := Normalize(stored, baseCabinet, frameless, model.NodeDoor)

	requireValid(t, root)
	assert.Equal(t, 0.75, root.RootReveals.Reveal)
	assert.Equal(t, 0.75, root.Children[3].Height)
	assert.InDelta(t, 30.0, root.Height, 1e-9)
}

func TestNormalize_CollapsesSingleFaceContainers(t *testing.T) {
	stored := &model.FaceNode{
		ID:             "root",
		Type:           model.NodeContainer,
		SplitDirection: model.DirectionVertical,
		Children: []*model.FaceNode{
			{Type: model.NodeReveal, Height: 0.125},
			{Type: model.NodePanel, Width: 36, Height: 29.875},
		},
	}

	root := Normalize(stored, baseCabinet, frameless, model.NodeDoor)

	requireValid(t, root)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, model.NodePanel, root.Type)
	assert.Equal(t, 36.0, root.Width)
	assert.Equal(t, 30.0, root.Height)
}

func TestNormalize_LayoutTooLargeForCabinetResets(t *testing.T) {
	stored := threeWay(model.DirectionHorizontal, 11.5, 30, 0.75)
	stored.RootReveals = nil
	narrow := model.Cabinet{Width: 6, Height: 30, Depth: 24, StyleID: 13, TypeID: 1}

	root, reset := normalize(stored, narrow, frameless, model.NodeDoor)

	assert.True(t, reset)
	requireValid(t, root)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, model.NodeDoor, root.Type)
	assert.Equal(t, 6.0, root.Width)
	assert.Equal(t, 30.0, root.Height)

	// The same layout still fits a full-width cabinet.
	root, reset = normalize(stored, baseCabinet, frameless, model.NodeDoor)
	assert.False(t, reset)
	require.Len(t, root.Children, 5)
	requireValid(t, root)
}

func TestNormalize_ZeroRevealTakesStyleReveal(t *testing.T) {
	stored := threeWay(model.DirectionVertical, 9, 36, 0)
	stored.Children[1].Height = 0.125
	stored.Children[3].Height = 0.125

	root := Normalize(stored, baseCabinet, frameless, model.NodeDoor)

	assert.Equal(t, frameless.Reveal, root.RootReveals.Reveal)
	requireValid(t, root)
}

func TestNormalize_UnknownTypesFallBackToDefault(t *testing.T) {
	stored := &model.FaceNode{ID: "root", Type: model.NodeContainer}
	root := Normalize(stored, baseCabinet, frameless, model.NodeDrawerFront)
	assert.Equal(t, model.NodeDrawerFront, root.Type)
	requireValid(t, root)

	stored = &model.FaceNode{
		Type:           model.NodeContainer,
		SplitDirection: "sideways",
		Children: []*model.FaceNode{
			{Type: "cupboard"},
			nil,
			{Type: model.NodeReveal},
			{Type: model.NodeOpen},
		},
	}
	root = Normalize(stored, baseCabinet, frameless, model.NodePanel)
	requireValid(t, root)
	assert.Equal(t, model.DirectionVertical, root.SplitDirection)
	assert.Equal(t, model.NodePanel, root.Children[0].Type)
	assert.Equal(t, model.NodeOpen, root.Children[2].Type)
}

func TestValidate_ReportsViolations(t *testing.T) {
	root := threeWay(model.DirectionHorizontal, 10, 20, 0.75)
	root.Children[2].Width = 1
	root.Children[4].Height = 19
	root.Children[4].ID = "root-0"
	root.Children = append(root.Children, &model.FaceNode{ID: "root-5", Type: model.NodeDoor, Width: 3, Height: 20})

	violations := Validate(root)
	messages := make(map[string]bool)
	for _, v := range violations {
		messages[v.String()] = true
	}

	assert.NotEmpty(t, violations)
	assert.Contains(t, messages, "root: has 6 children, want an odd count of at least 3")
	assert.Contains(t, messages, "root-0: duplicate id")
	assert.Contains(t, messages, "root-2: face 1.0000 x 20.0000 is below the 2\" minimum")
	assert.Contains(t, messages, "root-5: position 5 breaks the face/reveal alternation")

	assert.Equal(t, []Violation{{NodeID: "", Message: "missing root"}}, Validate(nil))
}

func TestRefreshDerived(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionVertical, model.NodeDoor))
	require.NoError(t, SetLeafType(root, "root-0", model.NodeDrawerFront, testAccessories))
	door := Find(root, "root-2")
	door.RollOutQty = 2
	door.ShelfQty = 1
	door.Accessories = []model.Accessory{{ID: "a1", DefID: basket.ID}}

	RefreshDerived(root, 24, testAccessories)

	drawer := Find(root, "root-0")
	require.NotNil(t, drawer.DrawerBoxDimensions)
	assert.Equal(t, model.BoxDimensions{Width: 35, Height: 13.9375, Depth: 21}, *drawer.DrawerBoxDimensions)
	assert.Nil(t, drawer.ShelfDimensions)

	require.NotNil(t, door.RollOutDimensions)
	assert.Equal(t, model.BoxDimensions{Width: 34, Height: 4, Depth: 21}, *door.RollOutDimensions)
	require.NotNil(t, door.ShelfDimensions)
	assert.Equal(t, model.BoxDimensions{Width: 36, Height: 0.75, Depth: 23}, *door.ShelfDimensions)
	assert.Equal(t, 34.5, door.Accessories[0].Width)
	assert.Equal(t, 13.4375, door.Accessories[0].Height)

	assert.Nil(t, root.ShelfDimensions)
}

func TestSlideLength(t *testing.T) {
	assert.Equal(t, 21.0, SlideLength(24))
	assert.Equal(t, 9.0, SlideLength(12))
	assert.Equal(t, 6.0, SlideLength(7))
}

func TestSnapshot(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	s := MakeSnapshot(root, "original")
	require.NoError(t, Split(root, "root", model.DirectionVertical, model.NodeDoor))

	restored := s.Restore()
	assert.True(t, restored.IsLeaf())
	assert.False(t, s.IsZero())
	assert.True(t, Snapshot{}.IsZero())

	// Restoring twice yields independent trees.
	restored.Width = 1
	assert.Equal(t, 36.0, s.Restore().Width)
}
