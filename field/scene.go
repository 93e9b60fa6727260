package field

import (
	"github.com/ondrolexa/sg2/geometry2D"
	"github.com/ondrolexa/sg2/strain"
	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

// FramePadding enlarges the scene bounds into the plot frame.
const FramePadding = 1.1

// Scene gathers what a renderer needs to draw a homogeneous deformation: the
// displacement field, the unit circle and its strain ellipse, and the
// principal stretch cross.
type Scene struct {
	Title     string                  `json:"title"`
	Field     VectorField             `json:"field"`
	Inside    []bool                  `json:"inside"` // field samples enclosed by the ellipse
	Reference geometry2D.Polyline     `json:"reference"`
	Ellipse   geometry2D.Polyline     `json:"ellipse"`
	Stretches [4]utils.Vector2        `json:"stretches"`
	Summary   strain.Summary          `json:"summary"`
	Bounds    *geometry2D.BoundingBox `json:"bounds"`
	Frame     geometry2D.Polyline     `json:"frame"`
}

// NewScene builds a scene from a deformation or displacement gradient.
func NewScene(T strain.Tensor) (sc Scene, err error) {
	var (
		F, J strain.Tensor
	)
	if F, err = T.ToDeformationGradient(); err != nil {
		return
	}
	if J, err = T.ToDisplacementGradient(); err != nil {
		return
	}
	if sc.Summary, err = F.Summary(); err != nil {
		return
	}
	if sc.Field, err = SampleGridField(J.Matrix(), DisplacementGrid); err != nil {
		return
	}
	if sc.Reference, sc.Ellipse, err = MapBoundaryCurve(F.Matrix(), types.Circle); err != nil {
		return
	}
	sc.Title = T.Label() + ", " + sc.Summary.String()
	sc.Stretches = PrincipalStretchVectors(sc.Summary.SVD)
	sc.Bounds = NewBoundingBoxOf(sc.Field, sc.Reference, sc.Ellipse)
	sc.Frame = sc.Bounds.Scale(FramePadding).Outline()
	sc.Inside = make([]bool, sc.Field.Len())
	for i, smp := range sc.Field.Samples {
		sc.Inside[i] = sc.Ellipse.PointInside(smp.Position)
	}
	return
}

func DeformationScene(F utils.Matrix2) (sc Scene, err error) {
	var T strain.Tensor
	if T, err = strain.NewDeformationGradient(F); err != nil {
		return
	}
	return NewScene(T)
}

func DisplacementScene(J utils.Matrix2) (sc Scene, err error) {
	var T strain.Tensor
	if T, err = strain.NewDisplacementGradient(J); err != nil {
		return
	}
	return NewScene(T)
}

// NewBoundingBoxOf covers the field positions and every curve.
func NewBoundingBoxOf(vf VectorField, curves ...geometry2D.Polyline) (bb *geometry2D.BoundingBox) {
	pts := make([]geometry2D.Point, len(vf.Samples))
	for i, s := range vf.Samples {
		pts[i] = s.Position
	}
	bb = geometry2D.NewBoundingBox(pts)
	for _, c := range curves {
		cb := geometry2D.NewBoundingBox(c)
		switch {
		case cb == nil:
		case bb == nil:
			bb = cb
		default:
			bb.Grow(cb)
		}
	}
	return
}
