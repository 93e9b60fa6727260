package strain

import (
	"errors"
	"fmt"

	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

var (
	ErrInvalidStepCount = errors.New("strain: step count must not be negative")
	ErrRoleMismatch     = errors.New("strain: operation not defined for tensor role")
)

// Tensor is an immutable 2x2 matrix tagged with the role it plays. A tensor
// produced by a deformation/displacement conversion keeps the matrix it was
// converted from, so converting back returns that matrix exactly.
type Tensor struct {
	m         utils.Matrix2
	role      types.Role
	source    utils.Matrix2
	hasSource bool
}

func New(role types.Role, m utils.Matrix2) (t Tensor, err error) {
	switch {
	case role > types.Velocity:
		err = fmt.Errorf("%v: %w", role, ErrRoleMismatch)
		return
	case !m.IsFinite():
		err = fmt.Errorf("%v gradient %v: %w", role, m, utils.ErrNotFinite)
		return
	}
	t = Tensor{m: m, role: role}
	return
}

func NewDeformationGradient(F utils.Matrix2) (Tensor, error) {
	return New(types.Deformation, F)
}

func NewDisplacementGradient(J utils.Matrix2) (Tensor, error) {
	return New(types.Displacement, J)
}

func NewVelocityGradient(L utils.Matrix2) (Tensor, error) {
	return New(types.Velocity, L)
}

func (t Tensor) Matrix() utils.Matrix2 { return t.m }
func (t Tensor) Role() types.Role      { return t.role }

// Label formats the matrix entries for annotation text.
func (t Tensor) Label() string {
	return t.role.String() + " gradient " + t.m.String()
}

func (t Tensor) String() string { return t.Label() }

// ToDisplacementGradient returns J = F - I.
func (t Tensor) ToDisplacementGradient() (Tensor, error) {
	switch t.role {
	case types.Displacement:
		return t, nil
	case types.Deformation:
		return t.convert(types.Displacement, -1), nil
	}
	return Tensor{}, fmt.Errorf("%v to displacement gradient: %w", t.role, ErrRoleMismatch)
}

// ToDeformationGradient returns F = J + I.
func (t Tensor) ToDeformationGradient() (Tensor, error) {
	switch t.role {
	case types.Deformation:
		return t, nil
	case types.Displacement:
		return t.convert(types.Deformation, 1), nil
	}
	return Tensor{}, fmt.Errorf("%v to deformation gradient: %w", t.role, ErrRoleMismatch)
}

func (t Tensor) convert(role types.Role, shift float64) Tensor {
	if t.hasSource {
		return Tensor{m: t.source, role: role, source: t.m, hasSource: true}
	}
	return Tensor{m: t.m.Shift(shift), role: role, source: t.m, hasSource: true}
}

func (t Tensor) withMatrix(m utils.Matrix2) Tensor {
	return Tensor{m: m, role: t.role}
}

func (t Tensor) Inverse() (R Tensor, err error) {
	var m utils.Matrix2
	if m, err = t.m.Inverse(); err != nil {
		return
	}
	R = t.withMatrix(m)
	return
}

func (t Tensor) Power(n int) (R Tensor, err error) {
	var m utils.Matrix2
	if m, err = t.m.Power(n); err != nil {
		return
	}
	R = t.withMatrix(m)
	return
}

func (t Tensor) Sqrt() (R Tensor, err error) {
	var m utils.Matrix2
	if m, err = t.m.Sqrt(); err != nil {
		return
	}
	R = t.withMatrix(m)
	return
}

func (t Tensor) Eigen() (utils.EigenDecomposition, error) { return utils.Eigen(t.m) }

func (t Tensor) Eigenvalues() ([2]complex128, error) {
	ed, err := utils.Eigen(t.m)
	return ed.Values(), err
}

func (t Tensor) Eigenvectors() ([2][2]complex128, error) {
	ed, err := utils.Eigen(t.m)
	return ed.Vectors(), err
}

func (t Tensor) SVD() utils.SVD { return t.m.SVD() }

// Summary is the strain summary of the deformation gradient form.
func (t Tensor) Summary() (s Summary, err error) {
	var F Tensor
	if F, err = t.ToDeformationGradient(); err != nil {
		return
	}
	return NewSummary(F.m)
}
