package strain

import (
	"fmt"

	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

// StepIncremental applies increment to initial steps times from the left,
// increment^steps * initial. Both are read as deformation gradients and the
// result is a deformation gradient; zero steps returns initial unchanged.
func StepIncremental(initial, increment Tensor, steps int) (R Tensor, err error) {
	var (
		F0, dF Tensor
		P      utils.Matrix2
	)
	switch {
	case steps < 0:
		err = fmt.Errorf("steps = %d: %w", steps, ErrInvalidStepCount)
		return
	case steps == 0:
		return initial, nil
	}
	if F0, dF, err = deformationPair(initial, increment); err != nil {
		return
	}
	if P, err = dF.m.Power(steps); err != nil {
		return
	}
	return NewDeformationGradient(P.Mul(F0.m))
}

// IncrementalPath returns the states after 0, 1, ..., steps increments.
func IncrementalPath(initial, increment Tensor, steps int) (path []Tensor, err error) {
	var (
		F0, dF Tensor
	)
	if steps < 0 {
		err = fmt.Errorf("steps = %d: %w", steps, ErrInvalidStepCount)
		return
	}
	if F0, dF, err = deformationPair(initial, increment); err != nil {
		return
	}
	path = make([]Tensor, steps+1)
	path[0] = F0
	for k := 1; k <= steps; k++ {
		if path[k], err = NewDeformationGradient(dF.m.Mul(path[k-1].m)); err != nil {
			return nil, fmt.Errorf("step %d: %w", k, err)
		}
	}
	return
}

func deformationPair(initial, increment Tensor) (F0, dF Tensor, err error) {
	if F0, err = initial.ToDeformationGradient(); err != nil {
		return
	}
	dF, err = increment.ToDeformationGradient()
	return
}

// IntegrateVelocity returns the deformation gradient exp(L t) accumulated
// under a constant velocity gradient. t may be negative or zero.
func IntegrateVelocity(L Tensor, t float64) (F Tensor, err error) {
	var m utils.Matrix2
	if L.role != types.Velocity {
		err = fmt.Errorf("integrating a %v gradient: %w", L.role, ErrRoleMismatch)
		return
	}
	if m, err = utils.Expm(L.m, t); err != nil {
		return
	}
	return NewDeformationGradient(m)
}

// VelocityPath samples exp(L t_i) at n times evenly spaced over [0, t].
func VelocityPath(L Tensor, t float64, n int) (path []Tensor, err error) {
	if n < 1 {
		err = fmt.Errorf("n = %d: %w", n, ErrInvalidStepCount)
		return
	}
	times := utils.Linspace(0, t, n)
	path = make([]Tensor, n)
	for i, ti := range times {
		if path[i], err = IntegrateVelocity(L, ti); err != nil {
			return nil, err
		}
	}
	return
}
