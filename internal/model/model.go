package model

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Grain represents the grain direction constraint for a part.
type Grain int

const (
	GrainNone       Grain = iota // No grain constraint, can rotate freely
	GrainHorizontal              // Grain runs along the width
	GrainVertical                // Grain runs along the height
)

func (g Grain) String() string {
	switch g {
	case GrainHorizontal:
		return "Horizontal"
	case GrainVertical:
		return "Vertical"
	default:
		return "None"
	}
}

// Point2D represents a 2D coordinate in inches.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Area returns the enclosed area of the outline (shoelace formula).
func (o Outline) Area() float64 {
	var sum float64
	for i, p := range o {
		q := o[(i+1)%len(o)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// EdgeBanding marks which edges of a part receive banding tape.
type EdgeBanding struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// HasAny reports whether at least one edge is banded.
func (e EdgeBanding) HasAny() bool {
	return e.Top || e.Bottom || e.Left || e.Right
}

// EdgeCount returns the number of banded edges.
func (e EdgeBanding) EdgeCount() int {
	n := 0
	for _, b := range []bool{e.Top, e.Bottom, e.Left, e.Right} {
		if b {
			n++
		}
	}
	return n
}

// LinearLength returns the banding length for one w x h piece.
// Top and bottom run along the width, left and right along the height.
func (e EdgeBanding) LinearLength(w, h float64) float64 {
	var total float64
	if e.Top {
		total += w
	}
	if e.Bottom {
		total += w
	}
	if e.Left {
		total += h
	}
	if e.Right {
		total += h
	}
	return total
}

func (e EdgeBanding) String() string {
	var edges []string
	if e.Top {
		edges = append(edges, "T")
	}
	if e.Bottom {
		edges = append(edges, "B")
	}
	if e.Left {
		edges = append(edges, "L")
	}
	if e.Right {
		edges = append(edges, "R")
	}
	if len(edges) == 0 {
		return "None"
	}
	return strings.Join(edges, "+")
}

// Part is one manufactured piece produced by a takeoff.
type Part struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Width       float64     `json:"width"`  // in (bounding box width for non-rectangular parts)
	Height      float64     `json:"height"` // in (bounding box height for non-rectangular parts)
	Quantity    int         `json:"quantity"`
	Grain       Grain       `json:"grain"`
	Finish      bool        `json:"finish"`
	EdgeBanding EdgeBanding `json:"edge_banding"`
	Outline     Outline     `json:"outline,omitempty"` // Non-rectangular part outline; nil for rectangular parts
}

func NewPart(label string, w, h float64, qty int) Part {
	return Part{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    Quantize(w),
		Height:   Quantize(h),
		Quantity: qty,
		Grain:    GrainNone,
	}
}

// Area returns the area of a single piece in square inches. Shaped parts
// use their outline rather than the bounding box.
func (p Part) Area() float64 {
	if len(p.Outline) >= 3 {
		return p.Outline.Area()
	}
	return p.Width * p.Height
}

// FitsSheet reports whether the part can be cut from a sheetW x sheetH sheet
// whose grain runs along its height. Parts without grain may be rotated.
func (p Part) FitsSheet(sheetW, sheetH float64) bool {
	upright := p.Width <= sheetW && p.Height <= sheetH
	turned := p.Height <= sheetW && p.Width <= sheetH
	switch p.Grain {
	case GrainVertical:
		return upright
	case GrainHorizontal:
		return turned
	default:
		return upright || turned
	}
}

// TotalArea returns the area of all pieces in square inches.
func (p Part) TotalArea() float64 {
	return p.Area() * float64(p.Quantity)
}
