package geometry2D

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

const (
	DefaultDensifyCount = 500
	periodicPad         = 3
)

// Densify resamples pl to n points along a piecewise linear curve through the
// input points, parameterized by cumulative chord length scaled to [0, 1]
// and sampled at n evenly spaced parameters. A periodic curve is closed
// first and the result ends on its first point.
func Densify(pl Polyline, n int, periodic bool) (Polyline, error) {
	return DensifyWith(pl, n, periodic, types.Linear)
}

// DensifyWith is Densify with a choice of interpolating spline.
func DensifyWith(pl Polyline, n int, periodic bool, ip types.Interpolation) (out Polyline, err error) {
	var (
		knots    Polyline
		u        []float64
		distinct int
	)
	if n < 2 {
		err = fmt.Errorf("n = %d: %w", n, ErrInvalidCount)
		return
	}
	if periodic {
		pl = pl.Close()
	}
	if knots = dropRepeats(pl); len(knots) > 1 {
		knots, u = chordParameters(knots)
	}
	distinct = len(knots)
	if periodic && knots.IsClosed() {
		distinct--
	}
	if distinct < ip.MinPoints() {
		err = fmt.Errorf("%d distinct points for %v interpolation: %w", distinct, ip, ErrInsufficientPoints)
		return
	}
	if periodic && ip != types.Linear {
		knots, u = wrapPad(knots, u, periodicPad)
	}
	x, y := knots.XY()
	fx, fy := newPredictor(ip), newPredictor(ip)
	if err = fx.Fit(u, x); err != nil {
		return
	}
	if err = fy.Fit(u, y); err != nil {
		return
	}
	ts := utils.Linspace(0, 1, n)
	ts[n-1] = 1
	out = make(Polyline, n)
	for i, t := range ts {
		out[i] = Point{fx.Predict(t), fy.Predict(t)}
	}
	if periodic {
		out[n-1] = out[0]
	}
	return
}

func newPredictor(ip types.Interpolation) interp.FittablePredictor {
	switch ip {
	case types.Akima:
		return &interp.AkimaSpline{}
	case types.FritschButland:
		return &interp.FritschButland{}
	case types.NaturalCubic:
		return &interp.NaturalCubic{}
	}
	return &interp.PiecewiseLinear{}
}

// dropRepeats removes points equal to their predecessor so every chord has
// positive length.
func dropRepeats(pl Polyline) (out Polyline) {
	for i, pt := range pl {
		if i > 0 && pt == out[len(out)-1] {
			continue
		}
		out = append(out, pt)
	}
	return
}

// chordParameters is the cumulative chord length along pl scaled to end at
// 1. Points within utils.NODETOL of the previous parameter are dropped, the
// final point is always kept.
func chordParameters(pl Polyline) (knots Polyline, u []float64) {
	var (
		d  = append([]float64{0}, pl.Chords()...)
		cu = floats.CumSum(make([]float64, len(d)), d)
	)
	floats.Scale(1/cu[len(cu)-1], cu)
	cu[len(cu)-1] = 1
	for i, ui := range cu {
		if last := len(u) - 1; last >= 0 && ui-u[last] <= utils.NODETOL {
			if i == len(cu)-1 {
				knots[last], u[last] = pl[i], ui
			}
			continue
		}
		knots, u = append(knots, pl[i]), append(u, ui)
	}
	return
}

// wrapPad extends a closed curve by pad points on either side, continuing
// the parameter past [0, 1] by whole periods.
func wrapPad(pl Polyline, u []float64, pad int) (Polyline, []float64) {
	var (
		m    = len(pl) - 1 // distinct points, pl[m] == pl[0]
		outP = make(Polyline, 0, m+1+2*pad)
		outU = make([]float64, 0, m+1+2*pad)
	)
	for j := -pad; j <= m+pad; j++ {
		var (
			idx    = ((j % m) + m) % m
			period = float64((j - idx) / m)
		)
		outP = append(outP, pl[idx])
		outU = append(outU, u[idx]+period)
	}
	return outP, outU
}
