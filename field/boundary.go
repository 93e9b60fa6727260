package field

import (
	"fmt"

	"github.com/ondrolexa/sg2/geometry2D"
	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

const CirclePoints = 180

// MapBoundaryCurve returns a reference shape and its image under M. The
// circle is sampled at CirclePoints angles over [0, 2π], the square is the
// closed outline of [-1, 1]².
func MapBoundaryCurve(M utils.Matrix2, shape types.Shape) (original, mapped geometry2D.Polyline, err error) {
	switch shape {
	case types.Circle:
		original, _ = geometry2D.NewPolyline(utils.UnitCircle(CirclePoints))
	case types.Square:
		original = geometry2D.Polyline{{-1, -1}, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	default:
		err = fmt.Errorf("%v: %w", shape, ErrUnknownShape)
		return
	}
	mapped = MapPoints(M, original)
	return
}

// MapPoints applies M to every point of pl.
func MapPoints(M utils.Matrix2, pl geometry2D.Polyline) (out geometry2D.Polyline) {
	out = make(geometry2D.Polyline, len(pl))
	utils.ParallelFor(len(pl), func(kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			out[k] = M.MulVec(pl[k])
		}
	})
	return
}

// PrincipalStretchVectors returns the semi-axes of the strain ellipse as
// +S0·U0, +S1·U1, -S0·U0, -S1·U1 for a cross drawn from the origin.
func PrincipalStretchVectors(svd utils.SVD) (v [4]utils.Vector2) {
	for i := 0; i < 2; i++ {
		ax := svd.U.Col(i).Scale(svd.S[i])
		v[i], v[i+2] = ax, ax.Scale(-1)
	}
	return
}
