package geometry2D

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ondrolexa/sg2/utils"
)

var (
	ErrInsufficientPoints = errors.New("geometry2D: not enough distinct points")
	ErrInvalidCount       = errors.New("geometry2D: sample count must be at least 2")
	ErrLengthMismatch     = errors.New("geometry2D: coordinate slices differ in length")
)

type Point = utils.Vector2

// Polyline is an ordered point sequence, closed when first == last.
type Polyline []Point

func NewPolyline(x, y []float64) (pl Polyline, err error) {
	if len(x) != len(y) {
		err = fmt.Errorf("len(x) = %d, len(y) = %d: %w", len(x), len(y), ErrLengthMismatch)
		return
	}
	pl = make(Polyline, len(x))
	for i := range x {
		pl[i] = Point{x[i], y[i]}
	}
	return
}

// XY splits the points into coordinate slices.
func (pl Polyline) XY() (x, y []float64) {
	x, y = make([]float64, len(pl)), make([]float64, len(pl))
	for i, pt := range pl {
		x[i], y[i] = pt[0], pt[1]
	}
	return
}

func (pl Polyline) IsClosed() bool {
	return len(pl) > 1 && pl[0] == pl[len(pl)-1]
}

// Close returns pl with the first point appended if either coordinate of the
// last point differs from the first.
func (pl Polyline) Close() Polyline {
	if len(pl) == 0 || pl.IsClosed() {
		return pl
	}
	out := make(Polyline, len(pl), len(pl)+1)
	copy(out, pl)
	return append(out, pl[0])
}

// Chords returns the lengths of consecutive segments.
func (pl Polyline) Chords() (d []float64) {
	if len(pl) < 2 {
		return nil
	}
	d = make([]float64, len(pl)-1)
	for i := range d {
		d[i] = floats.Distance(pl[i+1][:], pl[i][:], 2)
	}
	return
}

func (pl Polyline) Length() float64 { return floats.Sum(pl.Chords()) }

// Area is the signed area enclosed by a closed polyline, positive when
// counterclockwise.
func (pl Polyline) Area() (area float64) {
	// Green's theorem in the plane
	for i := 0; i < len(pl)-1; i++ {
		area += pl[i][0]*pl[i+1][1] - pl[i+1][0]*pl[i][1]
	}
	return 0.5 * area
}

// Centroid of the enclosed region of a closed polyline.
func (pl Polyline) Centroid() (ct Point) {
	/*
		From: https://en.wikipedia.org/wiki/Centroid#Centroid_of_a_polygon
	*/
	area := pl.Area()
	if area == 0 {
		return
	}
	for i := 0; i < len(pl)-1; i++ {
		x0, y0 := pl[i][0], pl[i][1]
		x1, y1 := pl[i+1][0], pl[i+1][1]
		metric := x0*y1 - y0*x1
		ct[0] += (x0 + x1) * metric
		ct[1] += (y0 + y1) * metric
	}
	return ct.Scale(1 / (6 * area))
}

// PointInside uses the winding number of the closed polyline around point.
func (pl Polyline) PointInside(point Point) (inside bool) {
	if !NewBoundingBox(pl).PointInside(point) {
		return false
	}
	/*
		Winding Number from http://geomalgorithms.com/a03-_inclusion.html#wn_PnPoly()
		isLeft > 0 for P2 left of the line through P0 and P1, = 0 on the line
	*/
	isLeft := func(P0, P1, P2 Point) float64 {
		return (P1[0]-P0[0])*(P2[1]-P0[1]) - (P2[0]-P0[0])*(P1[1]-P0[1])
	}
	var wn int
	for i := 0; i < len(pl)-1; i++ {
		pt0, pt1 := pl[i], pl[i+1]
		if pt0[1] <= point[1] {
			if pt1[1] > point[1] && isLeft(pt0, pt1, point) > 0 {
				wn++
			}
		} else if pt1[1] <= point[1] && isLeft(pt0, pt1, point) < 0 {
			wn--
		}
	}
	return wn != 0
}

type BoundingBox struct {
	XMin, XMax Point
}

func NewBoundingBox(geom []Point) (box *BoundingBox) {
	if len(geom) == 0 {
		return nil
	}
	box = &BoundingBox{XMin: geom[0], XMax: geom[0]}
	for _, point := range geom {
		for i := 0; i < 2; i++ {
			box.XMin[i] = math.Min(box.XMin[i], point[i])
			box.XMax[i] = math.Max(box.XMax[i], point[i])
		}
	}
	return
}

func (bb *BoundingBox) Centroid() Point {
	return bb.XMin.Add(bb.XMax).Scale(0.5)
}

// Grow extends bb to cover newBB.
func (bb *BoundingBox) Grow(newBB *BoundingBox) {
	for i := 0; i < 2; i++ {
		bb.XMin[i] = math.Min(bb.XMin[i], newBB.XMin[i])
		bb.XMax[i] = math.Max(bb.XMax[i], newBB.XMax[i])
	}
}

// Scale about the centroid.
func (bb *BoundingBox) Scale(scale float64) (bbOut *BoundingBox) {
	ct := bb.Centroid()
	return &BoundingBox{
		XMin: bb.XMin.Sub(ct).Scale(scale).Add(ct),
		XMax: bb.XMax.Sub(ct).Scale(scale).Add(ct),
	}
}

func (bb *BoundingBox) PointInside(point Point) bool {
	if bb == nil {
		return false
	}
	for ii := 0; ii < 2; ii++ {
		if point[ii] > bb.XMax[ii] || point[ii] < bb.XMin[ii] {
			return false
		}
	}
	return true
}

func (bb *BoundingBox) Outline() Polyline {
	return Polyline{
		bb.XMin,
		{bb.XMax[0], bb.XMin[1]},
		bb.XMax,
		{bb.XMin[0], bb.XMax[1]},
		bb.XMin,
	}
}
