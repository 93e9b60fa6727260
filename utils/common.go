package utils

import "errors"

const (
	NODETOL = 1.e-12
	// SingularTol bounds |det| relative to the squared largest entry.
	SingularTol = 1.e-12
)

var (
	// ErrSingularMatrix is returned when an inverse is requested for a
	// matrix whose determinant is negligible relative to its entries.
	ErrSingularMatrix = errors.New("utils: singular matrix")

	// ErrSingularSystem is returned by Eigen for a defective matrix, one
	// with a repeated eigenvalue and a single eigenvector direction.
	ErrSingularSystem = errors.New("utils: defective eigensystem")

	// ErrNoPrincipalRoot is returned by Sqrt when an eigenvalue lies on the
	// closed negative real axis.
	ErrNoPrincipalRoot = errors.New("utils: no principal square root")

	// ErrNotFinite is returned when a result would contain NaN or Inf.
	ErrNotFinite = errors.New("utils: NaN or Inf encountered")

	// ErrBadShape is returned when converting a matrix that is not 2x2.
	ErrBadShape = errors.New("utils: matrix is not 2x2")
)
