package takeoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CabFace/internal/catalog"
	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/model"
)

func testParams(t *testing.T, w, h, d float64, styleID, typeID int) Params {
	t.Helper()
	cab := model.NewCabinet("test", w, h, d, styleID, typeID)
	p, err := NewParams(cab, catalog.Default(), model.DefaultEstimateSettings())
	require.NoError(t, err)
	return p
}

// testFace builds the face the editor would start from for these params.
func testFace(p Params) *model.FaceNode {
	reveals := catalog.Default().Reveals(p.Style.ID, p.Type.ID)
	return engine.NewRoot(p.Width, p.Height, reveals, p.Type.DefaultFace)
}

func TestNewParams(t *testing.T) {
	cab := model.NewCabinet("B36", 36, 30, 24, 13, 1)
	cab.Finish.Left = true

	p, err := NewParams(cab, catalog.Default(), model.DefaultEstimateSettings())
	require.NoError(t, err)
	assert.Equal(t, "Frameless", p.Style.Name)
	assert.Equal(t, model.KindBase, p.Type.Kind)
	assert.True(t, p.Finish.Left)
	assert.Equal(t, 24.0, p.Depth)

	cab.StyleID = 99
	_, err = NewParams(cab, catalog.Default(), model.DefaultEstimateSettings())
	assert.ErrorContains(t, err, "unknown style")

	cab.StyleID, cab.TypeID = 13, 99
	_, err = NewParams(cab, catalog.Default(), model.DefaultEstimateSettings())
	assert.ErrorContains(t, err, "unknown item type")
}

func TestCalculate_EndToEnd(t *testing.T) {
	p := testParams(t, 36, 30, 24, 13, 1)
	root := testFace(p)
	require.NoError(t, engine.Split(root, "root", model.DirectionVertical, p.Type.DefaultFace))
	require.NoError(t, engine.Split(root, "root-0", model.DirectionHorizontal, p.Type.DefaultFace))
	before := root.Clone()

	res := Calculate(root, p)

	assert.Equal(t, before, root, "takeoff must not modify the face")
	require.Len(t, res.FaceSummary, 3)
	for _, f := range res.FaceSummary {
		assert.Equal(t, model.NodeDoor, f.Type)
		assert.Equal(t, 14.9375, f.Height)
	}

	assert.Equal(t, Hardware{Hinges: 6, Pulls: 3}, res.BoxHardware)
	assert.Equal(t, 2, res.PartitionMetrics.Count)
	assert.Equal(t, 36.0, res.PartitionMetrics.Partitions[0].Length)
	assert.Equal(t, 14.9375, res.PartitionMetrics.Partitions[1].Length)
	assert.Zero(t, res.ShelfMetrics.Count)
	assert.Empty(t, res.FrameParts)

	// Five carcass pieces plus the two partitions.
	assert.Len(t, res.BoxSummary.Parts, 7)
	assert.Greater(t, res.BoxSummary.Sheets.SheetsWithWaste, 0)
	assert.Greater(t, res.BoxSummary.EdgeBanding.TotalLinearIn, 0.0)
}
