package utils

import "math"

// Expm returns exp(m*t). With A = m*t split into half*I + B, B traceless,
// B*B = disc*I so the series sums to cosh/sinh (disc > 0), cos/sin
// (disc < 0) or I + B (disc = 0), scaled by exp(half).
func Expm(m Matrix2, t float64) (R Matrix2, err error) {
	if t == 0 {
		return Identity2(), nil
	}
	var (
		a          = m.Scale(t)
		half, disc = a.characteristic()
		b          = a.Shift(-half)
		c, sinc    = 1., 1.
		scale      = math.Exp(half)
	)
	switch {
	case disc > 0:
		s := math.Sqrt(disc)
		if s < 1 {
			c, sinc = math.Cosh(s), math.Sinh(s)/s
			break
		}
		// cosh(s) alone overflows for s > ~710 even when exp(half - s)
		// does not, so exp(half) goes inside.
		e1, e2 := math.Exp(half+s), math.Exp(half-s)
		c, sinc, scale = 0.5*(e1+e2), 0.5*(e1-e2)/s, 1
	case disc < 0:
		s := math.Sqrt(-disc)
		c, sinc = math.Cos(s), math.Sin(s)/s
	}
	R = b.Scale(sinc).Shift(c).Scale(scale)
	if !R.IsFinite() {
		err = ErrNotFinite
	}
	return
}
