package takeoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/model"
)

func TestHingesFor(t *testing.T) {
	tests := []struct {
		height float64
		want   int
	}{
		{5, 2},
		{8, 2},
		{40.9375, 2},
		{41, 3},
		{75, 4},
		{90, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HingesFor(tt.height), "height %v", tt.height)
	}
}

func TestCalculateHardware_DoorAndPairDoor(t *testing.T) {
	p := testParams(t, 24, 75, 12, 13, 3)
	door := engine.NewRoot(24, 75, model.RootReveals{}, model.NodeDoor)

	hw := CalculateHardware(engine.Layout(door), p)
	assert.Equal(t, 4, hw.Hinges)
	assert.Equal(t, 1, hw.Pulls)

	door.Type = model.NodePairDoor
	hw = CalculateHardware(engine.Layout(door), p)
	assert.Equal(t, 8, hw.Hinges)
	assert.Equal(t, 2, hw.Pulls)
	assert.Equal(t, 10, hw.Total())
}

func TestCalculateHardware_SlidesAndPulls(t *testing.T) {
	p := testParams(t, 36, 30, 24, 13, 1)
	root := testFace(p)
	require.NoError(t, engine.Split(root, "root", model.DirectionVertical, model.NodeDoor))
	require.NoError(t, engine.SetLeafType(root, "root-0", model.NodeDrawerFront, nil))
	engine.Find(root, "root-2").RollOutQty = 2

	hw := CalculateHardware(engine.Layout(root), p)
	assert.Equal(t, Hardware{Hinges: 2, Slides: 3, Pulls: 2}, hw)

	require.NoError(t, engine.SetLeafType(root, "root-2", model.NodeFalseFront, nil))
	hw = CalculateHardware(engine.Layout(root), p)
	assert.Equal(t, Hardware{Slides: 1, Pulls: 2}, hw)
}

func TestCalculateHardware_AppliancePull(t *testing.T) {
	p := testParams(t, 24, 30, 0.75, 13, 8)
	hw := CalculateHardware(engine.Layout(testFace(p)), p)
	assert.Equal(t, Hardware{AppliancePulls: 1}, hw)
}
