package strain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

func TestTensor(t *testing.T) {
	{ // Conversions round trip exactly
		F, err := NewDeformationGradient(utils.NewMatrix2(0.1, 0.7, 1.3, 0.3))
		require.NoError(t, err)
		J, err := F.ToDisplacementGradient()
		require.NoError(t, err)
		assert.Equal(t, types.Displacement, J.Role())
		assert.InDelta(t, -0.9, J.Matrix()[0][0], 1e-15)
		F2, err := J.ToDeformationGradient()
		require.NoError(t, err)
		assert.Equal(t, F.Matrix(), F2.Matrix())
		F3, err := F.ToDeformationGradient()
		require.NoError(t, err)
		assert.Equal(t, F, F3)
	}
	{ // Velocity gradients do not convert
		L, err := NewVelocityGradient(utils.NewMatrix2(0, 1, 0, 0))
		require.NoError(t, err)
		_, err = L.ToDeformationGradient()
		assert.ErrorIs(t, err, ErrRoleMismatch)
		_, err = L.ToDisplacementGradient()
		assert.ErrorIs(t, err, ErrRoleMismatch)
		_, err = L.Summary()
		assert.ErrorIs(t, err, ErrRoleMismatch)
	}
	{
		_, err := New(types.Role(7), utils.Identity2())
		assert.ErrorIs(t, err, ErrRoleMismatch)
		_, err = NewDeformationGradient(utils.NewMatrix2(math.NaN(), 0, 0, 1))
		assert.ErrorIs(t, err, utils.ErrNotFinite)
	}
	{ // Derived tensors keep the role
		F, _ := NewDeformationGradient(utils.Diag2(4, 9))
		R, err := F.Sqrt()
		require.NoError(t, err)
		assert.Equal(t, types.Deformation, R.Role())
		assert.True(t, R.Matrix().EqualApprox(utils.Diag2(2, 3), 1e-15))
		Fi, err := F.Inverse()
		require.NoError(t, err)
		assert.True(t, Fi.Matrix().EqualApprox(utils.Diag2(0.25, 1./9), 1e-15))
		P, err := F.Power(2)
		require.NoError(t, err)
		assert.Equal(t, utils.Diag2(16, 81), P.Matrix())
		vals, err := F.Eigenvalues()
		require.NoError(t, err)
		assert.Equal(t, [2]complex128{9, 4}, vals)
		assert.Equal(t, "Deformation gradient [[4 0] [0 9]]", F.Label())
	}
	{ // Eigenvectors pair with the eigenvalues in the same order
		F, _ := NewDeformationGradient(utils.NewMatrix2(2, 1, 1, 2))
		vals, err := F.Eigenvalues()
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{3, 1}, []float64{real(vals[0]), real(vals[1])}, 1e-15)
		vecs, err := F.Eigenvectors()
		require.NoError(t, err)
		m := F.Matrix()
		for k, v := range vecs {
			assert.Zero(t, imag(v[0]))
			assert.Zero(t, imag(v[1]))
			x := utils.Vector2{real(v[0]), real(v[1])}
			assert.InDelta(t, 1, x.Norm(), 1e-15)
			want, got := x.Scale(real(vals[k])), m.MulVec(x)
			assert.InDeltaSlice(t, want[:], got[:], 1e-14)
		}
		assert.InDelta(t, math.Sqrt2/2, math.Abs(real(vecs[0][0])), 1e-15)
		assert.InDelta(t, 0, real(vecs[0][0]*vecs[1][0]+vecs[0][1]*vecs[1][1]), 1e-15)
	}
	{ // Simple shear is defective, both vectors lie along x
		F, _ := NewDeformationGradient(utils.NewMatrix2(1, 1, 0, 1))
		vecs, err := F.Eigenvectors()
		assert.ErrorIs(t, err, utils.ErrSingularSystem)
		assert.Equal(t, vecs[0], vecs[1])
		assert.InDelta(t, 1, math.Abs(real(vecs[0][0])), 1e-15)
		assert.Zero(t, vecs[0][1])
	}
}

func TestSummary(t *testing.T) {
	{
		F, _ := NewDeformationGradient(utils.Diag2(2, 0.5))
		s, err := F.Summary()
		require.NoError(t, err)
		assert.InDelta(t, 4, s.AxialRatio, 1e-14)
		assert.InDelta(t, 0, s.OrientationDeg, 1e-12)
		assert.InDeltaSlice(t, []float64{2, 0.5}, s.SVD.S[:], 1e-14)
	}
	for _, alpha := range []float64{30, 150, 90, 10} {
		var (
			R = utils.Rotation2(alpha * math.Pi / 180)
			F = R.Mul(utils.Diag2(3, 1)).Mul(R.Transpose())
		)
		s, err := NewSummary(F)
		require.NoError(t, err)
		assert.InDelta(t, 3, s.AxialRatio, 1e-12)
		assert.InDelta(t, alpha, s.OrientationDeg, 1e-9)
	}
	{ // A displacement gradient is summarized through F = J + I
		J, _ := NewDisplacementGradient(utils.Diag2(1, -0.5))
		s, err := J.Summary()
		require.NoError(t, err)
		assert.InDelta(t, 4, s.AxialRatio, 1e-14)
	}
	{
		_, err := NewSummary(utils.Diag2(3, 0))
		assert.ErrorIs(t, err, utils.ErrSingularMatrix)
	}
	{
		assert.InDelta(t, 0, Orientation(utils.Vector2{-1, 0}), 1e-14)
		assert.InDelta(t, 135, Orientation(utils.Vector2{1, -1}), 1e-12)
		assert.InDelta(t, 90, Orientation(utils.Vector2{0, -2}), 1e-12)
		assert.Equal(t, 0., Orientation(utils.Vector2{}))
	}
	{
		var ts []Tensor
		for i := 0; i < 5000; i++ {
			F, _ := NewDeformationGradient(utils.Diag2(1+float64(i), 1))
			ts = append(ts, F)
		}
		ss, err := Summaries(ts)
		require.NoError(t, err)
		require.Len(t, ss, len(ts))
		for i, s := range ss {
			assert.InDelta(t, 1+float64(i), s.AxialRatio, 1e-9)
		}
		bad, _ := NewDeformationGradient(utils.Diag2(1, 0))
		_, err = Summaries([]Tensor{ts[0], bad})
		assert.ErrorIs(t, err, utils.ErrSingularMatrix)
		assert.Contains(t, err.Error(), "tensor 1")
	}
}

func TestStepIncremental(t *testing.T) {
	var (
		M     = utils.NewMatrix2(1.1, 0.2, 0, 0.95)
		I, _  = NewDeformationGradient(utils.Identity2())
		dF, _ = NewDeformationGradient(M)
		M3    = M.Mul(M).Mul(M)
	)
	{
		R, err := StepIncremental(I, dF, 3)
		require.NoError(t, err)
		assert.Equal(t, types.Deformation, R.Role())
		assert.True(t, R.Matrix().EqualApprox(M3, 1e-14))
	}
	{
		R, err := StepIncremental(dF, I, 0)
		require.NoError(t, err)
		assert.Equal(t, dF, R)
		_, err = StepIncremental(I, dF, -1)
		assert.ErrorIs(t, err, ErrInvalidStepCount)
	}
	{ // Displacement increments are read as F = J + I
		dJ, _ := NewDisplacementGradient(M.Shift(-1))
		R, err := StepIncremental(I, dJ, 3)
		require.NoError(t, err)
		assert.True(t, R.Matrix().EqualApprox(M3, 1e-14))
		L, _ := NewVelocityGradient(M)
		_, err = StepIncremental(I, L, 3)
		assert.ErrorIs(t, err, ErrRoleMismatch)
	}
	{
		path, err := IncrementalPath(I, dF, 3)
		require.NoError(t, err)
		require.Len(t, path, 4)
		assert.Equal(t, utils.Identity2(), path[0].Matrix())
		assert.True(t, path[3].Matrix().EqualApprox(M3, 1e-14))
		_, err = IncrementalPath(I, dF, -2)
		assert.ErrorIs(t, err, ErrInvalidStepCount)
	}
}

func TestIntegrateVelocity(t *testing.T) {
	{ // Spin through a quarter turn
		L, _ := NewVelocityGradient(utils.NewMatrix2(0, -1, 1, 0))
		F, err := IntegrateVelocity(L, math.Pi/2)
		require.NoError(t, err)
		assert.Equal(t, types.Deformation, F.Role())
		assert.True(t, F.Matrix().EqualApprox(utils.NewMatrix2(0, -1, 1, 0), 1e-12))
		F0, err := IntegrateVelocity(L, 0)
		require.NoError(t, err)
		assert.Equal(t, utils.Identity2(), F0.Matrix())
	}
	{ // n increments of exp(L dt) equal exp(L n dt)
		var (
			L, _ = NewVelocityGradient(utils.NewMatrix2(0.3, 1, 0.2, -0.3))
			I, _ = NewDeformationGradient(utils.Identity2())
		)
		dF, err := IntegrateVelocity(L, 0.1)
		require.NoError(t, err)
		R, err := StepIncremental(I, dF, 10)
		require.NoError(t, err)
		F, err := IntegrateVelocity(L, 1)
		require.NoError(t, err)
		assert.True(t, R.Matrix().EqualApprox(F.Matrix(), 1e-12))

		path, err := VelocityPath(L, 1, 11)
		require.NoError(t, err)
		require.Len(t, path, 11)
		assert.True(t, path[10].Matrix().EqualApprox(F.Matrix(), 1e-14))
		assert.Equal(t, utils.Identity2(), path[0].Matrix())
		_, err = VelocityPath(L, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidStepCount)
	}
	{
		F, _ := NewDeformationGradient(utils.Identity2())
		_, err := IntegrateVelocity(F, 1)
		assert.ErrorIs(t, err, ErrRoleMismatch)
		L, _ := NewVelocityGradient(utils.Diag2(1000, 0))
		_, err = IntegrateVelocity(L, 10)
		assert.ErrorIs(t, err, utils.ErrNotFinite)
	}
}
