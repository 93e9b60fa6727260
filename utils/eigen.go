package utils

import (
	"fmt"
	"math"
	"math/cmplx"
)

type EigenPair struct {
	Value  complex128
	Vector [2]complex128 // unit length
}

// IsReal reports whether the eigenvalue and eigenvector have no imaginary part.
func (ep EigenPair) IsReal() bool {
	return imag(ep.Value) == 0 && imag(ep.Vector[0]) == 0 && imag(ep.Vector[1]) == 0
}

func (ep EigenPair) RealVector() Vector2 {
	return Vector2{real(ep.Vector[0]), real(ep.Vector[1])}
}

// EigenDecomposition holds two eigenpairs sorted by eigenvalue descending:
// real part first, then imaginary part, so the +i member of a complex
// conjugate pair comes first.
type EigenDecomposition [2]EigenPair

func (ed EigenDecomposition) Values() [2]complex128 {
	return [2]complex128{ed[0].Value, ed[1].Value}
}

func (ed EigenDecomposition) Vectors() [2][2]complex128 {
	return [2][2]complex128{ed[0].Vector, ed[1].Vector}
}

func (ed EigenDecomposition) IsReal() bool {
	return ed[0].IsReal() && ed[1].IsReal()
}

// Eigen solves the characteristic polynomial of m in closed form and takes
// each eigenvector from the null space of m - lambda*I.
//
// A defective matrix (repeated eigenvalue, one eigenvector direction)
// returns the repeated eigenvalue with the same vector in both pairs along
// with ErrSingularSystem.
func Eigen(m Matrix2) (ed EigenDecomposition, err error) {
	var (
		half, disc = m.characteristic()
		scale      = m.MaxAbs()
	)
	if !m.IsFinite() {
		err = ErrNotFinite
		return
	}
	switch {
	case math.Sqrt(math.Abs(disc)) <= NODETOL*scale:
		lambda := complex(half, 0)
		if m.isScalar(half, scale) {
			ed[0] = EigenPair{lambda, [2]complex128{1, 0}}
			ed[1] = EigenPair{lambda, [2]complex128{0, 1}}
			return
		}
		v := nullVector(m, lambda)
		ed[0] = EigenPair{lambda, v}
		ed[1] = EigenPair{lambda, v}
		err = fmt.Errorf("repeated eigenvalue %g: %w", half, ErrSingularSystem)
	case disc > 0:
		var (
			s      = math.Sqrt(disc)
			det    = m.Det()
			l1, l2 float64
		)
		// Take the larger magnitude root directly and the other from the
		// determinant to avoid cancellation.
		if half >= 0 {
			l1 = half + s
			l2 = det / l1
		} else {
			l2 = half - s
			l1 = det / l2
		}
		if l2 > l1 {
			l1, l2 = l2, l1
		}
		for i, l := range [2]float64{l1, l2} {
			lambda := complex(l, 0)
			ed[i] = EigenPair{lambda, nullVector(m, lambda)}
		}
	default:
		s := math.Sqrt(-disc)
		for i, lambda := range [2]complex128{complex(half, s), complex(half, -s)} {
			ed[i] = EigenPair{lambda, nullVector(m, lambda)}
		}
	}
	return
}

func (m Matrix2) isScalar(half, scale float64) bool {
	var (
		tol = NODETOL * scale
	)
	return math.Abs(m[0][1]) <= tol && math.Abs(m[1][0]) <= tol &&
		math.Abs(m[0][0]-half) <= tol && math.Abs(m[1][1]-half) <= tol
}

// nullVector returns a unit vector orthogonal to the larger row of
// m - lambda*I, phase-normalized so its largest component is real and
// positive.
func nullVector(m Matrix2, lambda complex128) (v [2]complex128) {
	var (
		a, b = complex(m[0][0], 0), complex(m[0][1], 0)
		c, d = complex(m[1][0], 0), complex(m[1][1], 0)
		v1   = [2]complex128{b, lambda - a}
		v2   = [2]complex128{lambda - d, c}
		n1   = math.Hypot(cmplx.Abs(v1[0]), cmplx.Abs(v1[1]))
		n2   = math.Hypot(cmplx.Abs(v2[0]), cmplx.Abs(v2[1]))
	)
	switch {
	case n1 == 0 && n2 == 0:
		return [2]complex128{1, 0}
	case n1 >= n2:
		v = [2]complex128{v1[0] / complex(n1, 0), v1[1] / complex(n1, 0)}
	default:
		v = [2]complex128{v2[0] / complex(n2, 0), v2[1] / complex(n2, 0)}
	}
	big := v[0]
	if cmplx.Abs(v[1]) > cmplx.Abs(v[0]) {
		big = v[1]
	}
	phase := big / complex(cmplx.Abs(big), 0)
	v[0] /= phase
	v[1] /= phase
	if imag(lambda) == 0 {
		// Drop round-off imaginary parts from the phase division.
		v[0] = complex(real(v[0]), 0)
		v[1] = complex(real(v[1]), 0)
	}
	return
}
