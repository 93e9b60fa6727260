package types

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLabel = errors.New("types: unknown label")

// Role states how a 2x2 matrix is to be read. It is never inferred from data.
type Role uint8

const (
	Deformation  Role = iota // F, reference to deformed configuration
	Displacement             // J = F - I
	Velocity                 // L, F(t) = exp(L t)
)

var RoleNameMap = map[string]Role{
	"deformation":  Deformation,
	"f":            Deformation,
	"def":          Deformation,
	"displacement": Displacement,
	"j":            Displacement,
	"dis":          Displacement,
	"velocity":     Velocity,
	"l":            Velocity,
	"vel":          Velocity,
}

func (r Role) String() string {
	switch r {
	case Deformation:
		return "Deformation"
	case Displacement:
		return "Displacement"
	case Velocity:
		return "Velocity"
	}
	return fmt.Sprintf("Role(%d)", r)
}

func NewRole(label string) (r Role, err error) {
	var ok bool
	if r, ok = RoleNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("role %q: %w", label, ErrUnknownLabel)
	}
	return
}

// Shape is a reference boundary mapped through a tensor.
type Shape uint8

const (
	Circle Shape = iota
	Square
)

var ShapeNameMap = map[string]Shape{
	"circle":  Circle,
	"ellipse": Circle,
	"square":  Square,
}

func (s Shape) String() string {
	switch s {
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	}
	return fmt.Sprintf("Shape(%d)", s)
}

func NewShape(label string) (s Shape, err error) {
	var ok bool
	if s, ok = ShapeNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("shape %q: %w", label, ErrUnknownLabel)
	}
	return
}

// Interpolation selects the spline used to resample curves.
type Interpolation uint8

const (
	Linear Interpolation = iota
	Akima
	FritschButland
	NaturalCubic
)

var InterpolationNameMap = map[string]Interpolation{
	"linear":         Linear,
	"akima":          Akima,
	"fritschbutland": FritschButland,
	"pchip":          FritschButland,
	"naturalcubic":   NaturalCubic,
	"cubic":          NaturalCubic,
}

func (ip Interpolation) String() string {
	switch ip {
	case Linear:
		return "Linear"
	case Akima:
		return "Akima"
	case FritschButland:
		return "FritschButland"
	case NaturalCubic:
		return "NaturalCubic"
	}
	return fmt.Sprintf("Interpolation(%d)", ip)
}

// MinPoints is the fewest distinct points the interpolation accepts.
func (ip Interpolation) MinPoints() int {
	if ip == Linear {
		return 2
	}
	return 3
}

func NewInterpolation(label string) (ip Interpolation, err error) {
	var ok bool
	if ip, ok = InterpolationNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("interpolation %q: %w", label, ErrUnknownLabel)
	}
	return
}
