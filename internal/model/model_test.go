package model

import (
	"testing"
)

func TestNewPartQuantizes(t *testing.T) {
	p := NewPart("Shelf", 34.47, 22.99, 2)
	if p.Width != 34.5 || p.Height != 23 {
		t.Errorf("expected 34.5 x 23, got %v x %v", p.Width, p.Height)
	}
	if p.ID == "" || p.Grain != GrainNone {
		t.Errorf("unexpected part %+v", p)
	}
	if p.TotalArea() != 2*34.5*23 {
		t.Errorf("unexpected total area %v", p.TotalArea())
	}
}

func TestOutlineBoundingBox(t *testing.T) {
	o := Outline{{X: 0, Y: 0}, {X: 36, Y: 0}, {X: 36, Y: 12}, {X: 12, Y: 36}, {X: 0, Y: 36}}
	min, max := o.BoundingBox()
	if min != (Point2D{}) || max != (Point2D{X: 36, Y: 36}) {
		t.Errorf("unexpected bounds %v %v", min, max)
	}

	min, max = Outline{}.BoundingBox()
	if min != (Point2D{}) || max != (Point2D{}) {
		t.Error("expected zero bounds for an empty outline")
	}
}

func TestEdgeBandingLinearLength(t *testing.T) {
	e := EdgeBanding{Top: true, Left: true, Right: true}
	if got := e.LinearLength(10, 4); got != 18 {
		t.Errorf("expected 18, got %v", got)
	}
	if e.EdgeCount() != 3 || !e.HasAny() {
		t.Errorf("unexpected edge count %d", e.EdgeCount())
	}
	if (EdgeBanding{}).HasAny() {
		t.Error("expected no banded edges")
	}
}

func TestGrainString(t *testing.T) {
	for g, want := range map[Grain]string{GrainNone: "None", GrainHorizontal: "Horizontal", GrainVertical: "Vertical"} {
		if got := g.String(); got != want {
			t.Errorf("Grain(%d).String() = %q, want %q", g, got, want)
		}
	}
}

func TestOutlineArea(t *testing.T) {
	o := Outline{{X: 0, Y: 0}, {X: 36, Y: 0}, {X: 36, Y: 12}, {X: 12, Y: 36}, {X: 0, Y: 36}}
	if got := o.Area(); got != 1008 {
		t.Errorf("expected pentagon area 1008, got %v", got)
	}

	p := NewPart("Top", 36, 36, 2)
	p.Outline = o
	if p.TotalArea() != 2016 {
		t.Errorf("shaped part should use its outline, got %v", p.TotalArea())
	}
}

func TestPartFitsSheet(t *testing.T) {
	tests := []struct {
		name  string
		w, h  float64
		grain Grain
		want  bool
	}{
		{"upright side", 24, 90, GrainVertical, true},
		{"side across the grain", 90, 24, GrainVertical, false},
		{"long shelf", 90, 12, GrainHorizontal, true},
		{"shelf turned", 12, 90, GrainHorizontal, false},
		{"rotatable", 90, 24, GrainNone, true},
		{"too big", 50, 100, GrainNone, false},
	}
	for _, tt := range tests {
		p := Part{Label: tt.name, Width: tt.w, Height: tt.h, Quantity: 1, Grain: tt.grain}
		if got := p.FitsSheet(48, 96); got != tt.want {
			t.Errorf("%s: FitsSheet = %v, want %v", tt.name, got, tt.want)
		}
	}
}
