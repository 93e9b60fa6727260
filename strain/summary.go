package strain

import (
	"fmt"
	"math"

	"github.com/ondrolexa/sg2/utils"
)

// Summary is the strain ellipse of a deformation gradient: the ratio of
// principal stretches and the direction of the long axis.
type Summary struct {
	AxialRatio     float64   `json:"axialRatio"`     // S[0]/S[1]
	OrientationDeg float64   `json:"orientationDeg"` // long axis from the x axis, [0, 180)
	SVD            utils.SVD `json:"svd"`
}

func NewSummary(F utils.Matrix2) (s Summary, err error) {
	s.SVD = F.SVD()
	if s.SVD.S[1] == 0 || math.IsInf(s.SVD.S[0]/s.SVD.S[1], 0) {
		err = fmt.Errorf("degenerate strain ellipse, S = %v: %w", s.SVD.S, utils.ErrSingularMatrix)
		return
	}
	s.AxialRatio = s.SVD.S[0] / s.SVD.S[1]
	s.OrientationDeg = Orientation(s.SVD.U.Col(0))
	return
}

// Orientation is the angle in degrees between the axis through u and the x
// axis, folded into [0, 180).
func Orientation(u utils.Vector2) (deg float64) {
	var (
		n = u.Norm()
	)
	if n == 0 {
		return
	}
	if u[1] < 0 {
		u = u.Scale(-1)
	}
	deg = utils.Degrees(math.Acos(utils.Clamp(u[0]/n, -1, 1)))
	if deg >= 180 {
		deg = 0
	}
	return
}

func (s Summary) String() string {
	return fmt.Sprintf("AR=%s, θ=%s°", utils.FormatFloat(s.AxialRatio), utils.FormatFloat(s.OrientationDeg))
}

// Summaries computes summaries for a batch of tensors in parallel.
func Summaries(ts []Tensor) (ss []Summary, err error) {
	var (
		errs = make([]error, len(ts))
	)
	ss = make([]Summary, len(ts))
	utils.ParallelFor(len(ts), func(kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			ss[k], errs[k] = ts[k].Summary()
		}
	})
	for k, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("tensor %d: %w", k, e)
		}
	}
	return
}
