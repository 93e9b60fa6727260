package utils

import "math"

// SVD is M = U * diag(S) * Vᵗ with U, V orthogonal and S[0] >= S[1] >= 0.
type SVD struct {
	U Matrix2    `json:"u"`
	V Matrix2    `json:"v"`
	S [2]float64 `json:"s"`
}

// SVD factors m as a rotation, an axis-aligned scaling and a second
// rotation. Writing E, F, G, H for the symmetric/antisymmetric halves of m,
// m = R(phi) * diag(Q+R, Q-R) * R(theta) with Q = |(E, H)|, R = |(F, G)|.
// A negative second factor is moved into V so both singular values are
// non-negative.
func (m Matrix2) SVD() (svd SVD) {
	var (
		e     = 0.5 * (m[0][0] + m[1][1])
		f     = 0.5 * (m[0][0] - m[1][1])
		g     = 0.5 * (m[1][0] + m[0][1])
		h     = 0.5 * (m[1][0] - m[0][1])
		q     = math.Hypot(e, h)
		r     = math.Hypot(f, g)
		a1    = math.Atan2(g, f)
		a2    = math.Atan2(h, e)
		theta = 0.5 * (a2 - a1)
		phi   = 0.5 * (a2 + a1)
		vt    = Rotation2(theta)
	)
	svd.S = [2]float64{q + r, q - r}
	if svd.S[1] < 0 {
		svd.S[1] = -svd.S[1]
		vt[1][0], vt[1][1] = -vt[1][0], -vt[1][1]
	}
	svd.U = Rotation2(phi)
	svd.V = vt.Transpose()
	return
}

// Compose rebuilds U * diag(S) * Vᵗ.
func (svd SVD) Compose() Matrix2 {
	return svd.U.Mul(Diag2(svd.S[0], svd.S[1])).Mul(svd.V.Transpose())
}
