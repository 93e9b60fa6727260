package InputParameters

import (
	"errors"
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/ondrolexa/sg2/field"
	"github.com/ondrolexa/sg2/geometry2D"
	"github.com/ondrolexa/sg2/strain"
	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

var ErrInvalidInput = errors.New("InputParameters: invalid input")

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title         string          `json:"Title"`
	Role          string          `json:"Role"`      // deformation (F), displacement (J) or velocity (L)
	Tensor        [][]float64     `json:"Tensor"`    // 2x2, row major
	Increment     [][]float64     `json:"Increment"` // incremental deformation applied Steps times
	Steps         int             `json:"Steps"`
	Time          float64         `json:"Time"`   // velocity integration end time
	Frames        int             `json:"Frames"` // samples along a velocity path
	Shape         string          `json:"Shape"`
	Grid          *field.GridSpec `json:"Grid"`
	X             []float64       `json:"X"`
	Y             []float64       `json:"Y"`
	Count         int             `json:"Count"`
	Periodic      *bool           `json:"Periodic"`
	Interpolation string          `json:"Interpolation"`
}

func (ip *InputParameters2D) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return ip.Validate()
}

func (ip *InputParameters2D) setDefaults() {
	if ip.Role == "" {
		ip.Role = types.Deformation.String()
	}
	if ip.Shape == "" {
		ip.Shape = types.Circle.String()
	}
	if ip.Interpolation == "" {
		ip.Interpolation = types.Linear.String()
	}
	if ip.Count == 0 {
		ip.Count = geometry2D.DefaultDensifyCount
	}
	if ip.Frames == 0 {
		ip.Frames = 2
	}
}

func (ip *InputParameters2D) Validate() (err error) {
	var (
		errs []error
	)
	check := func(e error) {
		if e != nil {
			errs = append(errs, e)
		}
	}
	_, e := types.NewRole(ip.Role)
	check(e)
	_, e = types.NewShape(ip.Shape)
	check(e)
	_, e = types.NewInterpolation(ip.Interpolation)
	check(e)
	if ip.Tensor != nil {
		_, e = NewMatrix2(ip.Tensor)
		check(e)
	}
	if ip.Increment != nil {
		_, e = NewMatrix2(ip.Increment)
		check(e)
	}
	if len(ip.X) != len(ip.Y) {
		check(fmt.Errorf("X has %d values, Y has %d", len(ip.X), len(ip.Y)))
	}
	if ip.Steps < 0 {
		check(fmt.Errorf("Steps = %d", ip.Steps))
	}
	if ip.Frames < 1 {
		check(fmt.Errorf("Frames = %d", ip.Frames))
	}
	if len(errs) != 0 {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return
}

// NewMatrix2 reads a 2x2 row-major nested list.
func NewMatrix2(rows [][]float64) (m utils.Matrix2, err error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		err = fmt.Errorf("tensor %v is not 2x2: %w", rows, ErrInvalidInput)
		return
	}
	m = utils.NewMatrix2(rows[0][0], rows[0][1], rows[1][0], rows[1][1])
	return
}

// GetTensor returns Tensor tagged with Role.
func (ip *InputParameters2D) GetTensor() (T strain.Tensor, err error) {
	return ip.tensor(ip.Tensor, ip.Role)
}

// GetIncrement returns Increment read as a deformation gradient, or with
// Role when Role is displacement.
func (ip *InputParameters2D) GetIncrement() (T strain.Tensor, err error) {
	role := ip.Role
	if r, _ := types.NewRole(role); r == types.Velocity {
		role = types.Deformation.String()
	}
	return ip.tensor(ip.Increment, role)
}

func (ip *InputParameters2D) tensor(rows [][]float64, label string) (T strain.Tensor, err error) {
	var (
		m    utils.Matrix2
		role types.Role
	)
	if rows == nil {
		err = fmt.Errorf("no tensor given: %w", ErrInvalidInput)
		return
	}
	if m, err = NewMatrix2(rows); err != nil {
		return
	}
	if role, err = types.NewRole(label); err != nil {
		return
	}
	return strain.New(role, m)
}

func (ip *InputParameters2D) GetShape() (types.Shape, error) { return types.NewShape(ip.Shape) }

func (ip *InputParameters2D) GetInterpolation() (types.Interpolation, error) {
	return types.NewInterpolation(ip.Interpolation)
}

func (ip *InputParameters2D) IsPeriodic() bool { return ip.Periodic == nil || *ip.Periodic }

// GetGrid is Grid when given, else the preset for the role.
func (ip *InputParameters2D) GetGrid() field.GridSpec {
	if ip.Grid != nil {
		return *ip.Grid
	}
	if r, _ := types.NewRole(ip.Role); r == types.Velocity {
		return field.VelocityGrid
	}
	return field.DisplacementGrid
}

func (ip *InputParameters2D) GetPolyline() (geometry2D.Polyline, error) {
	return geometry2D.NewPolyline(ip.X, ip.Y)
}

// Print echoes the deck to w, kept off the output stream.
func (ip *InputParameters2D) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Role\n", ip.Role)
	if ip.Tensor != nil {
		fmt.Fprintf(w, "%v\t= Tensor\n", ip.Tensor)
	}
	if ip.Increment != nil {
		fmt.Fprintf(w, "%v\t= Increment\n", ip.Increment)
		fmt.Fprintf(w, "[%d]\t\t\t= Steps\n", ip.Steps)
	}
	fmt.Fprintf(w, "%8.5f\t\t= Time\n", ip.Time)
	fmt.Fprintf(w, "[%d]\t\t\t= Frames\n", ip.Frames)
	fmt.Fprintf(w, "[%s]\t\t= Shape\n", ip.Shape)
	if len(ip.X) != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t= Points\n", len(ip.X))
		fmt.Fprintf(w, "[%d]\t\t\t= Count\n", ip.Count)
		fmt.Fprintf(w, "[%v]\t\t\t= Periodic\n", ip.IsPeriodic())
		fmt.Fprintf(w, "[%s]\t\t= Interpolation\n", ip.Interpolation)
	}
}
