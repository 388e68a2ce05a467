package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/CabFace/internal/model"
)

// DXF layer names.
const (
	LayerCabinet = "CABINET"
	LayerFaces   = "FACES"
	LayerReveals = "REVEALS"
	LayerLabels  = "LABELS"
)

// LabelHeight is the text height of face labels in inches.
const LabelHeight = 0.75

// WriteFaceDXF draws a laid-out face as closed rectangles: the cabinet
// outline, every face leaf and every reveal on their own layers, with a
// type label in each face. Layout coordinates grow downward from the top of
// the cabinet; the drawing flips them so the cabinet bottom sits on Y=0.
func WriteFaceDXF(path string, cab model.Cabinet, laid *model.FaceNode) error {
	d := dxf.NewDrawing()
	layers := []struct {
		name string
		cl   color.ColorNumber
	}{
		{LayerCabinet, color.White},
		{LayerFaces, color.Cyan},
		{LayerReveals, color.Red},
		{LayerLabels, color.Yellow},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	if err := rect(d, LayerCabinet, 0, 0, cab.Width, cab.Height); err != nil {
		return err
	}

	var drawErr error
	laid.Walk(func(n, _ *model.FaceNode) bool {
		if drawErr != nil || !n.IsLeaf() {
			return drawErr == nil
		}
		y := cab.Height - n.Y - n.Height
		layer := LayerFaces
		if n.IsReveal() {
			layer = LayerReveals
		}
		if drawErr = rect(d, layer, n.X, y, n.Width, n.Height); drawErr != nil {
			return false
		}
		if !n.IsReveal() && n.Width > LabelHeight && n.Height > LabelHeight {
			drawErr = label(d, n.Type.String(), n.X+LabelHeight/2, y+n.Height/2)
		}
		return drawErr == nil
	})
	if drawErr != nil {
		return drawErr
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save drawing: %w", err)
	}
	return nil
}

func rect(d *drawing.Drawing, layer string, x, y, w, h float64) error {
	if err := d.ChangeLayer(layer); err != nil {
		return err
	}
	_, err := d.LwPolyline(true,
		[]float64{x, y},
		[]float64{x + w, y},
		[]float64{x + w, y + h},
		[]float64{x, y + h},
	)
	return err
}

func label(d *drawing.Drawing, text string, x, y float64) error {
	if err := d.ChangeLayer(LayerLabels); err != nil {
		return err
	}
	_, err := d.Text(text, x, y, 0, LabelHeight)
	return err
}
