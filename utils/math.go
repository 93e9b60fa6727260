package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from lo to hi inclusive. A single
// value is lo.
func Linspace(lo, hi float64, n int) (v []float64) {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// UnitCircle samples n points on the unit circle over [0, 2π] inclusive, so
// the first and last points coincide up to round-off.
func UnitCircle(n int) (x, y []float64) {
	var (
		theta = Linspace(0, 2*math.Pi, n)
	)
	x, y = make([]float64, n), make([]float64, n)
	for i, th := range theta {
		y[i], x[i] = math.Sincos(th)
	}
	return
}

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
