package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Matrix2 is a real 2x2 matrix stored row-major. All methods return new
// values and never change the receiver.
type Matrix2 [2][2]float64

func NewMatrix2(a11, a12, a21, a22 float64) Matrix2 {
	return Matrix2{{a11, a12}, {a21, a22}}
}

func Identity2() Matrix2 { return Matrix2{{1, 0}, {0, 1}} }

func Diag2(d0, d1 float64) Matrix2 { return Matrix2{{d0, 0}, {0, d1}} }

// Rotation2 is the counter-clockwise rotation by theta radians.
func Rotation2(theta float64) Matrix2 {
	var (
		s, c = math.Sincos(theta)
	)
	return Matrix2{{c, -s}, {s, c}}
}

// Matrix2FromDense copies a 2x2 gonum matrix.
func Matrix2FromDense(A mat.Matrix) (R Matrix2, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != 2 || nc != 2 {
		err = fmt.Errorf("dims = %d x %d: %w", nr, nc, ErrBadShape)
		return
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			R[i][j] = A.At(i, j)
		}
	}
	if !R.IsFinite() {
		err = ErrNotFinite
	}
	return
}

// Dense returns a gonum copy of the matrix.
func (m Matrix2) Dense() *mat.Dense {
	return mat.NewDense(2, 2, m.Data())
}

// Data returns the entries in row-major order.
func (m Matrix2) Data() []float64 {
	return []float64{m[0][0], m[0][1], m[1][0], m[1][1]}
}

func (m Matrix2) At(i, j int) float64 { return m[i][j] }
func (m Matrix2) Col(j int) Vector2   { return Vector2{m[0][j], m[1][j]} }
func (m Matrix2) Row(i int) Vector2   { return Vector2{m[i][0], m[i][1]} }

func (m Matrix2) Add(A Matrix2) (R Matrix2) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			R[i][j] = m[i][j] + A[i][j]
		}
	}
	return
}

func (m Matrix2) Sub(A Matrix2) (R Matrix2) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			R[i][j] = m[i][j] - A[i][j]
		}
	}
	return
}

func (m Matrix2) Scale(a float64) (R Matrix2) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			R[i][j] = a * m[i][j]
		}
	}
	return
}

// Shift returns m + a*I.
func (m Matrix2) Shift(a float64) (R Matrix2) {
	R = m
	R[0][0] += a
	R[1][1] += a
	return
}

func (m Matrix2) Mul(A Matrix2) (R Matrix2) {
	R[0][0] = m[0][0]*A[0][0] + m[0][1]*A[1][0]
	R[0][1] = m[0][0]*A[0][1] + m[0][1]*A[1][1]
	R[1][0] = m[1][0]*A[0][0] + m[1][1]*A[1][0]
	R[1][1] = m[1][0]*A[0][1] + m[1][1]*A[1][1]
	return
}

func (m Matrix2) MulVec(v Vector2) Vector2 {
	return Vector2{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

func (m Matrix2) Det() float64   { return m[0][0]*m[1][1] - m[0][1]*m[1][0] }
func (m Matrix2) Trace() float64 { return m[0][0] + m[1][1] }

// MaxAbs is the largest entry magnitude.
func (m Matrix2) MaxAbs() (max float64) {
	for _, val := range m.Data() {
		if a := math.Abs(val); a > max {
			max = a
		}
	}
	return
}

func (m Matrix2) IsFinite() bool {
	return !IsNan(m) && !IsInf(m)
}

// EqualApprox compares entries within tol, absolute or relative.
func (m Matrix2) EqualApprox(A Matrix2, tol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !scalar.EqualWithinAbsOrRel(m[i][j], A[i][j], tol, tol) {
				return false
			}
		}
	}
	return true
}

func (m Matrix2) String() string {
	return "[" + m.Row(0).String() + " " + m.Row(1).String() + "]"
}

func (m Matrix2) Inverse() (R Matrix2, err error) {
	var (
		det = m.Det()
		mx  = m.MaxAbs()
	)
	if mx == 0 || math.Abs(det) <= SingularTol*mx*mx {
		err = fmt.Errorf("det = %g: %w", det, ErrSingularMatrix)
		return
	}
	R = Matrix2{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}
	return
}

// Power raises m to an integer power by repeated squaring. Negative powers
// use the inverse, zero returns the identity for any m.
func (m Matrix2) Power(n int) (R Matrix2, err error) {
	var (
		base = m
	)
	R = Identity2()
	if n == 0 {
		return
	}
	if n < 0 {
		if base, err = m.Inverse(); err != nil {
			return
		}
		n = -n
	}
	for n > 0 {
		if n&1 == 1 {
			R = R.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	if !R.IsFinite() {
		err = ErrNotFinite
	}
	return
}

// Sqrt is the principal square root, the root whose eigenvalues have
// positive real part. From Cayley-Hamilton, sqrt(M) = (M + sI)/t with
// s = sqrt(det M) and t = sqrt(tr M + 2s), the trace of the root.
func (m Matrix2) Sqrt() (R Matrix2, err error) {
	var (
		half, disc = m.characteristic()
		det        = m.Det()
		s, t       float64
	)
	if disc >= 0 && (half <= 0 || det <= 0) {
		err = fmt.Errorf("eigenvalue on the non-positive real axis: %w", ErrNoPrincipalRoot)
		return
	}
	s = math.Sqrt(det)
	switch {
	case disc >= 0:
		t = math.Sqrt(m.Trace() + 2*s)
	case half >= 0:
		t = math.Sqrt(2 * (s + half))
	default:
		// Eigenvalues half +/- i*nu near the negative real axis, where
		// s + half cancels. Use s + half = nu^2/(s - half).
		nu := math.Sqrt(-disc)
		t = nu * math.Sqrt2 / math.Sqrt(s-half)
	}
	R = m.Shift(s).Scale(1 / t)
	if !R.IsFinite() {
		err = ErrNotFinite
	}
	return
}

// characteristic returns tr/2 and the discriminant ((a-d)/2)^2 + bc of the
// characteristic polynomial, eigenvalues are half +/- sqrt(disc).
func (m Matrix2) characteristic() (half, disc float64) {
	var (
		d = 0.5 * (m[0][0] - m[1][1])
	)
	half = 0.5 * m.Trace()
	disc = d*d + m[0][1]*m[1][0]
	return
}
