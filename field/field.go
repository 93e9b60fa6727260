package field

import (
	"errors"
	"fmt"

	"github.com/ondrolexa/sg2/geometry2D"
	"github.com/ondrolexa/sg2/strain"
	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

var (
	ErrInvalidResolution = errors.New("field: grid resolution must be at least 1")
	ErrUnknownShape      = errors.New("field: unknown boundary shape")
)

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// GridSpec is a regular grid with Nx samples over X and Ny over Y, end
// points included.
type GridSpec struct {
	X  Range `json:"x"`
	Y  Range `json:"y"`
	Nx int   `json:"nx"`
	Ny int   `json:"ny"`
}

var (
	DisplacementGrid = GridSpec{X: Range{-3, 3}, Y: Range{-2, 2}, Nx: 21, Ny: 17}
	VelocityGrid     = GridSpec{X: Range{-2, 2}, Y: Range{-2, 2}, Nx: 17, Ny: 17}
)

type Sample struct {
	Position utils.Vector2 `json:"position"`
	Vector   utils.Vector2 `json:"vector"`
}

// VectorField holds samples in row order, x varying fastest. Nx and Ny are
// zero for fields sampled on a point list.
type VectorField struct {
	Samples []Sample `json:"samples"`
	Nx      int      `json:"nx,omitempty"`
	Ny      int      `json:"ny,omitempty"`
}

func (vf VectorField) Len() int { return len(vf.Samples) }

// Components splits the samples into the X, Y, U, V arrays of a quiver plot.
func (vf VectorField) Components() (X, Y, U, V []float64) {
	n := len(vf.Samples)
	X, Y, U, V = make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, s := range vf.Samples {
		X[i], Y[i] = s.Position[0], s.Position[1]
		U[i], V[i] = s.Vector[0], s.Vector[1]
	}
	return
}

// SampleGridField evaluates M·p at every node of the grid.
func SampleGridField(M utils.Matrix2, g GridSpec) (vf VectorField, err error) {
	if g.Nx < 1 || g.Ny < 1 {
		err = fmt.Errorf("%d x %d: %w", g.Nx, g.Ny, ErrInvalidResolution)
		return
	}
	var (
		xs = utils.Linspace(g.X.Min, g.X.Max, g.Nx)
		ys = utils.Linspace(g.Y.Min, g.Y.Max, g.Ny)
	)
	vf = VectorField{Samples: make([]Sample, 0, g.Nx*g.Ny), Nx: g.Nx, Ny: g.Ny}
	for _, y := range ys {
		for _, x := range xs {
			p := utils.Vector2{x, y}
			vf.Samples = append(vf.Samples, Sample{Position: p, Vector: M.MulVec(p)})
		}
	}
	return
}

// SamplePointField evaluates M·p at each point of pl.
func SamplePointField(M utils.Matrix2, pl geometry2D.Polyline) (vf VectorField) {
	mapped := MapPoints(M, pl)
	vf.Samples = make([]Sample, len(pl))
	for i := range pl {
		vf.Samples[i] = Sample{Position: pl[i], Vector: mapped[i]}
	}
	return
}

// DisplacementField samples the displacement gradient form of T on
// DisplacementGrid.
func DisplacementField(T strain.Tensor) (vf VectorField, err error) {
	var J strain.Tensor
	if J, err = T.ToDisplacementGradient(); err != nil {
		return
	}
	return SampleGridField(J.Matrix(), DisplacementGrid)
}

// DeformationField samples the displacements F - I of a deformation gradient.
func DeformationField(F utils.Matrix2) (vf VectorField, err error) {
	var T strain.Tensor
	if T, err = strain.NewDeformationGradient(F); err != nil {
		return
	}
	return DisplacementField(T)
}

// VelocityField samples L on VelocityGrid.
func VelocityField(L strain.Tensor) (vf VectorField, err error) {
	if L.Role() != types.Velocity {
		err = fmt.Errorf("velocity field of a %v gradient: %w", L.Role(), strain.ErrRoleMismatch)
		return
	}
	return SampleGridField(L.Matrix(), VelocityGrid)
}
