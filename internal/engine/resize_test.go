package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CabFace/internal/model"
)

func TestUpdateChildrenFromParent_ProportionalRescale(t *testing.T) {
	root := &model.FaceNode{
		ID:             model.RootID,
		Type:           model.NodeContainer,
		SplitDirection: model.DirectionHorizontal,
		Width:          10.75,
		Height:         10,
		RootReveals:    &model.RootReveals{Reveal: 0.75},
		Children: []*model.FaceNode{
			{ID: "root-0", Type: model.NodeDoor, Width: 4, Height: 10},
			{ID: "root-1", Type: model.NodeReveal, Width: 0.75, Height: 10},
			{ID: "root-2", Type: model.NodeDoor, Width: 6, Height: 10},
		},
	}

	root.Width = 21.5
	root.Height = 12
	UpdateChildrenFromParent(root)

	// Faces keep their 2:3 ratio and fill everything the fixed reveal leaves.
	assertExtents(t, []float64{8.3, 0.75, 12.45}, root)
	for _, c := range root.Children {
		assert.Equal(t, 12.0, c.Height)
	}
	requireValid(t, root)
}

func TestUpdateChildrenFromParent_Nested(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionVertical, model.NodeDoor))
	require.NoError(t, Split(root, "root-0", model.DirectionHorizontal, model.NodeDoor))

	root.Width = 48
	UpdateChildrenFromParent(root)

	requireValid(t, root)
	top := Find(root, "root-0")
	assert.Equal(t, 48.0, top.Width)
	assert.InDelta(t, (48-0.125)/2, Find(root, "root-0-0").Width, 1e-9)
}

func TestUpdateChildrenFromParent_LeafIsNoop(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	before := root.Clone()
	UpdateChildrenFromParent(root)
	UpdateChildrenFromParent(nil)
	assert.Equal(t, before, root)
}

func TestDrag_QuantizesAndMovesPair(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))

	// 80px at 8px/in is exactly 10".
	require.NoError(t, Drag(root, "root-0", "root-2", 80, 8))
	assertExtents(t, []float64{27.9375, 0.125, 7.9375}, root)

	// 0.3px is 0.0375", which snaps to 1/16".
	require.NoError(t, Drag(root, "root-2", "root-0", 0.3, 8))
	assertExtents(t, []float64{27.875, 0.125, 8.0}, root)

	// Sub-half-step movement is a no-op.
	require.NoError(t, Drag(root, "root-0", "root-2", 0.1, 8))
	assertExtents(t, []float64{27.875, 0.125, 8.0}, root)
	requireValid(t, root)
}

func TestDrag_RejectsBelowMinimum(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))
	before := root.Clone()

	err := Drag(root, "root-0", "root-2", 128, 8)
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Equal(t, before, root)
}

func TestDrag_RejectsNestedBelowMinimum(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))
	require.NoError(t, Split(root, "root-0", model.DirectionHorizontal, model.NodeDoor))
	before := root.Clone()

	// root-0 itself stays at 3.9375" but its two halves would drop to 1.90625".
	err := Drag(root, "root-2", "root-0", 112, 8)
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Equal(t, before, root)

	require.NoError(t, Drag(root, "root-2", "root-0", 96, 8))
	assert.InDelta(t, 5.9375, Find(root, "root-0").Width, 1e-9)
	assert.InDelta(t, 2.90625, Find(root, "root-0-0").Width, 1e-9)
	requireValid(t, root)
}

func TestDrag_InvalidPairs(t *testing.T) {
	root := threeWay(model.DirectionHorizontal, 10, 20, 0.75)

	assert.ErrorIs(t, Drag(root, "root-0", "root-4", 8, 8), ErrInvalidTarget)
	assert.ErrorIs(t, Drag(root, "root-0", "root-1", 8, 8), ErrInvalidTarget)
	assert.ErrorIs(t, Drag(root, "root-0", "nope", 8, 8), ErrNotFound)
	assert.ErrorIs(t, Drag(root, "root-0", "root-2", 8, 0), ErrInvalidTarget)
	assert.ErrorIs(t, Drag(root, "root", "root-2", 8, 8), ErrInvalidTarget)
}

func TestSetSiblingDimension_Face(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))

	require.NoError(t, SetSiblingDimension(root, "root-0", 20))
	assertExtents(t, []float64{20, 0.125, 15.875}, root)

	// The last child pushes into the one before it.
	require.NoError(t, SetSiblingDimension(root, "root-2", 10))
	assertExtents(t, []float64{25.875, 0.125, 10}, root)
	requireValid(t, root)
}

func TestSetSiblingDimension_Reveal(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))

	require.NoError(t, SetSiblingDimension(root, "root-1", 1.125))
	assertExtents(t, []float64{17.4375, 1.125, 17.4375}, root)
	requireValid(t, root)
}

func TestSetSiblingDimension_Rejections(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))
	before := root.Clone()

	assert.ErrorIs(t, SetSiblingDimension(root, "root-0", 35), ErrBelowMinimum)
	assert.ErrorIs(t, SetSiblingDimension(root, "root-1", 33), ErrBelowMinimum)
	assert.ErrorIs(t, SetSiblingDimension(root, "root-1", -1), ErrInvalidTarget)
	assert.ErrorIs(t, SetSiblingDimension(root, "root", 10), ErrInvalidTarget)
	assert.ErrorIs(t, SetSiblingDimension(root, "root-9", 10), ErrNotFound)
	assert.Equal(t, before, root)

	three := threeWay(model.DirectionHorizontal, 10, 20, 0.75)
	assert.ErrorIs(t, SetSiblingDimension(three, "root-1", 1), ErrInvalidTarget)
}

func TestEqualizeSiblings(t *testing.T) {
	root := threeWay(model.DirectionVertical, 7, 20, 0.75)
	root.Height = 24.5
	root.Children[0].Height = 10
	root.Children[2].Height = 6
	root.Children[4].Height = 7

	require.NoError(t, EqualizeSiblings(root, "root"))

	// (24.5 - 1.5) / 3 = 7.667 snaps to 7.6875; the last face takes the rest.
	assertExtents(t, []float64{7.6875, 0.75, 7.6875, 0.75, 7.625}, root)
	requireValid(t, root)
}

func TestEqualizeSiblings_Rejections(t *testing.T) {
	root := threeWay(model.DirectionHorizontal, 2, 10, 0.75)
	root.Width = 6.5
	root.Children[0].Width = 2.5
	root.Children[2].Width = 2
	root.Children[4].Width = 0.5 // legacy bad value, equal share is 1.667
	before := root.Clone()

	assert.ErrorIs(t, EqualizeSiblings(root, "root"), ErrBelowMinimum)
	assert.Equal(t, before, root)
	assert.ErrorIs(t, EqualizeSiblings(root, "root-0"), ErrInvalidTarget)
	assert.ErrorIs(t, EqualizeSiblings(root, "missing"), ErrNotFound)
}

func TestApplyCabinetSize(t *testing.T) {
	root := newTestRoot(36.125, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))
	require.NoError(t, SetSiblingDimension(root, "root-0", 12))
	assertExtents(t, []float64{12, 0.125, 24}, root)

	overlay := model.RootReveals{Top: 1.5, Bottom: 1.5, Left: 1.75, Right: 1.75, Reveal: 1.5}
	require.NoError(t, ApplyCabinetSize(root, 48, 34.5, overlay))

	assert.InDelta(t, 44.5, root.Width, 1e-9)
	assert.InDelta(t, 31.5, root.Height, 1e-9)
	assert.Equal(t, overlay, *root.RootReveals)
	// Faces keep their 1:2 ratio around the wider reveal.
	assertExtents(t, []float64{43.0 / 3, 1.5, 86.0 / 3}, root)
	requireValid(t, root)
}

func TestApplyCabinetSize_RejectsTooSmall(t *testing.T) {
	root := newTestRoot(36, 30, frameless)
	require.NoError(t, Split(root, "root", model.DirectionHorizontal, model.NodeDoor))
	before := root.Clone()

	assert.ErrorIs(t, ApplyCabinetSize(root, 4, 30, frameless), ErrBelowMinimum)
	assert.ErrorIs(t, ApplyCabinetSize(root, 1, 30, frameless), ErrBelowMinimum)
	assert.Equal(t, before, root)
}

func TestResize_RejectsNonFiniteValues(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	root := threeWay(model.DirectionHorizontal, 10, 30, 0.75)
	before := root.Clone()

	assert.ErrorIs(t, SetSiblingDimension(root, "root-0", nan), ErrInvalidTarget)
	assert.ErrorIs(t, SetSiblingDimension(root, "root-0", inf), ErrInvalidTarget)
	assert.ErrorIs(t, SetSiblingDimension(root, "root-1", nan), ErrInvalidTarget)
	assert.ErrorIs(t, Drag(root, "root-0", "root-2", nan, 8), ErrInvalidTarget)
	assert.ErrorIs(t, Drag(root, "root-0", "root-2", 8, inf), ErrInvalidTarget)
	assert.ErrorIs(t, ApplyCabinetSize(root, nan, 30, frameless), ErrInvalidTarget)
	assert.ErrorIs(t, ApplyCabinetSize(root, 36, math.Inf(-1), frameless), ErrInvalidTarget)
	assert.ErrorIs(t, ApplyCabinetSize(root, 36, 30, model.RootReveals{Reveal: nan}), ErrInvalidTarget)

	assert.Equal(t, before, root)
	requireValid(t, root)
}

func TestValidate_ReportsNaNExtents(t *testing.T) {
	root := threeWay(model.DirectionHorizontal, 10, 30, 0.75)
	root.Children[2].Width = math.NaN()
	assert.NotEmpty(t, Validate(root))
	assert.True(t, hasUndersizedFace(root))
}
