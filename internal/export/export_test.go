package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/CabFace/internal/catalog"
	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/model"
	"github.com/piwi3910/CabFace/internal/takeoff"
)

// threeDoorBase is a 36x30 frameless base with one full-width door on the
// bottom and two doors side by side above it.
func threeDoorBase(t *testing.T) (model.Cabinet, *model.FaceNode, takeoff.Result) {
	t.Helper()
	cat := catalog.Default()
	cab := model.NewCabinet("B36", 36, 30, 24, 13, 1)
	p, err := takeoff.NewParams(cab, cat, model.DefaultEstimateSettings())
	require.NoError(t, err)

	root := engine.NewRoot(cab.Width, cab.Height, cat.Reveals(cab.StyleID, cab.TypeID), p.Type.DefaultFace)
	require.NoError(t, engine.Split(root, "root", model.DirectionVertical, p.Type.DefaultFace))
	require.NoError(t, engine.Split(root, "root-0", model.DirectionHorizontal, p.Type.DefaultFace))
	cab.FaceConfig = root
	return cab, root, takeoff.Calculate(root, p)
}

func TestWriteTakeoffXLSX(t *testing.T) {
	cab, _, res := threeDoorBase(t)
	path := filepath.Join(t.TempDir(), "takeoff.xlsx")
	require.NoError(t, WriteTakeoffXLSX(path, cab, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetFaces, SheetBox, SheetBanding, SheetFrame, SheetHardware, SheetShelves, SheetPartitions}, f.GetSheetList())

	faces, err := f.GetRows(SheetFaces)
	require.NoError(t, err)
	require.Len(t, faces, 4)
	assert.Equal(t, "Node", faces[0][0])
	assert.Equal(t, "Door", faces[1][2])

	hw, err := f.GetRows(SheetHardware)
	require.NoError(t, err)
	require.Len(t, hw, 5)
	assert.Equal(t, []string{"Hinges", "6"}, hw[1])
	assert.Equal(t, []string{"Pulls", "3"}, hw[3])

	parts, err := f.GetRows(SheetPartitions)
	require.NoError(t, err)
	assert.Equal(t, "root-1", parts[1][0])

	box, err := f.GetRows(SheetBox)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(box), len(res.BoxSummary.Parts)+1)
	assert.Equal(t, res.BoxSummary.Parts[0].Label, box[1][0])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "B36 takeoff", props.Title)
}

func TestBuildTakeoffWorkbook_EmptyResult(t *testing.T) {
	f, err := BuildTakeoffWorkbook(model.NewCabinet("E", 12, 12, 12, 13, 9), takeoff.Result{})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetFaces)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestWriteFaceDXF(t *testing.T) {
	cab, root, _ := threeDoorBase(t)
	laid := engine.Layout(root)
	path := filepath.Join(t.TempDir(), "face.dxf")
	require.NoError(t, WriteFaceDXF(path, cab, laid))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var rects [][][]float64
	for _, e := range drawing.Entities() {
		if lw, ok := e.(*entity.LwPolyline); ok {
			var pts [][]float64
			for _, v := range lw.Vertices {
				pts = append(pts, []float64{v[0], v[1]})
			}
			rects = append(rects, pts)
		}
	}
	// Cabinet outline, three doors and two reveals.
	require.Len(t, rects, 6)
	assert.Equal(t, [][]float64{{0, 0}, {36, 0}, {36, 30}, {0, 30}}, rects[0])

	for _, r := range rects {
		require.Len(t, r, 4)
		for _, v := range r {
			assert.True(t, v[0] >= 0 && v[0] <= cab.Width, "x %v outside cabinet", v[0])
			assert.True(t, v[1] >= 0 && v[1] <= cab.Height, "y %v outside cabinet", v[1])
		}
	}

	// The first vertical child is on top, so its rectangles sit highest.
	top := laid.Children[0].Children[0]
	y := cab.Height - top.Y - top.Height
	assert.InDelta(t, y, rects[1][0][1], 1e-9)
	assert.Greater(t, rects[1][0][1], rects[5][0][1])
}
