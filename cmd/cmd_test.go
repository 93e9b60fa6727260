package cmd

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondrolexa/sg2/InputParameters"
	"github.com/ondrolexa/sg2/field"
	"github.com/ondrolexa/sg2/utils"
)

func parseDeck(t *testing.T, deck string) *InputParameters.InputParameters2D {
	var ip InputParameters.InputParameters2D
	require.NoError(t, ip.Parse([]byte(deck)))
	return &ip
}

func TestRunEllipse(t *testing.T) {
	{
		out, err := RunEllipse(parseDeck(t, `
Title: Pure shear
Role: displacement
Tensor: [[1, 0], [0, -0.5]]
`))
		require.NoError(t, err)
		assert.Equal(t, "Circle", out.Shape)
		assert.Len(t, out.Mapped, field.CirclePoints)
		assert.InDelta(t, 4, out.Summary.AxialRatio, 1e-14)
		assert.InDelta(t, 2, out.Stretches[0].Norm(), 1e-14)
		assert.Equal(t, "Displacement gradient [[1 0] [0 -0.5]]", out.Title)
	}
	{
		out, err := RunEllipse(parseDeck(t, `
Tensor: [[1, 1], [0, 1]]
Shape: square
`))
		require.NoError(t, err)
		assert.Equal(t, utils.Vector2{-2, -1}, out.Mapped[0])
		assert.True(t, out.Mapped.IsClosed())
	}
	{
		_, err := RunEllipse(parseDeck(t, `
Role: velocity
Tensor: [[0, 1], [0, 0]]
`))
		assert.Error(t, err)
		_, err = RunEllipse(parseDeck(t, `Title: no tensor`))
		assert.ErrorIs(t, err, InputParameters.ErrInvalidInput)
	}
}

func TestRunField(t *testing.T) {
	{
		out, err := RunField(parseDeck(t, `Tensor: [[2, 0], [0, 1]]`))
		require.NoError(t, err)
		assert.Equal(t, 21, out.Nx)
		assert.Equal(t, 17, out.Ny)
		for _, c := range [][]float64{out.X, out.Y, out.U, out.V} {
			assert.Len(t, c, 357)
		}
		// F - I is sampled
		assert.Equal(t, "Displacement", out.Role)
		assert.Equal(t, []float64{-3, -2, -3, 0}, []float64{out.X[0], out.Y[0], out.U[0], out.V[0]})
		assert.InDeltaSlice(t, []float64{-2.7, -2, -2.7, 0}, []float64{out.X[1], out.Y[1], out.U[1], out.V[1]}, 1e-15)
	}
	{
		out, err := RunField(parseDeck(t, `
Role: velocity
Tensor: [[0, 1], [0, 0]]
`))
		require.NoError(t, err)
		assert.Len(t, out.U, 289)
		assert.Equal(t, "Velocity", out.Role)
		assert.Equal(t, []float64{-2, 0}, []float64{out.U[0], out.V[0]})
	}
	{
		out, err := RunField(parseDeck(t, `
Tensor: [[1, 0], [0, 1]]
Grid: {x: {min: 0, max: 1}, y: {min: 0, max: 1}, nx: 2, ny: 3}
`))
		require.NoError(t, err)
		assert.Len(t, out.X, 6)
		assert.Equal(t, []float64{0, 1, 0, 1, 0, 1}, out.X)
		assert.Equal(t, []float64{0, 0, 0.5, 0.5, 1, 1}, out.Y)
	}
	{
		sc, err := RunScene(parseDeck(t, `Tensor: [[2, 0], [0, 0.5]]`))
		require.NoError(t, err)
		assert.InDelta(t, 4, sc.Summary.AxialRatio, 1e-14)
		assert.Equal(t, 357, sc.Field.Len())
	}
}

func TestRunIntegrate(t *testing.T) {
	{
		out, err := RunIntegrate(parseDeck(t, `
Role: velocity
Tensor: [[0, -1], [1, 0]]
Time: 1.5707963267948966
Frames: 3
`))
		require.NoError(t, err)
		require.Len(t, out.Path, 3)
		assert.True(t, out.Final.EqualApprox(utils.NewMatrix2(0, -1, 1, 0), 1e-12))
		assert.Equal(t, out.Final, out.Path[2].F)
		assert.InDelta(t, math.Pi/4, out.Path[1].Time, 1e-15)
		assert.Equal(t, utils.Identity2(), out.Path[0].F)
		for _, s := range out.Path {
			assert.InDelta(t, 1, s.Summary.AxialRatio, 1e-12)
		}
	}
	{
		out, err := RunIntegrate(parseDeck(t, `
Tensor: [[1, 0], [0, 1]]
Increment: [[1.1, 0], [0, 0.9]]
Steps: 2
`))
		require.NoError(t, err)
		require.Len(t, out.Path, 3)
		assert.True(t, out.Final.EqualApprox(utils.Diag2(1.21, 0.81), 1e-14))
		assert.Equal(t, 2, out.Path[2].Step)
		assert.InDelta(t, 1.21/0.81, out.Path[2].Summary.AxialRatio, 1e-12)
	}
	{
		_, err := RunIntegrate(parseDeck(t, `Tensor: [[1, 0], [0, 1]]`))
		assert.ErrorIs(t, err, InputParameters.ErrInvalidInput)
	}
}

func TestRunDensify(t *testing.T) {
	{
		out, err := RunDensify(parseDeck(t, `
X: [0, 1, 1, 0]
Y: [0, 0, 1, 1]
Count: 9
Tensor: [[2, 0], [0, 1]]
`))
		require.NoError(t, err)
		require.Len(t, out.Densified, 9)
		assert.InDelta(t, 4, out.Length, 1e-14)
		assert.InDelta(t, 1, out.Area, 1e-14)
		require.NotNil(t, out.Centroid)
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, out.Centroid[:], 1e-14)
		require.Len(t, out.Mapped, 9)
		assert.InDeltaSlice(t, []float64{2, 1}, out.Mapped[4][:], 1e-14)
	}
	{
		out, err := RunDensify(parseDeck(t, `
X: [0, 3]
Y: [0, 0]
Count: 4
Periodic: false
`))
		require.NoError(t, err)
		assert.Nil(t, out.Mapped)
		assert.Zero(t, out.Area)
		assert.Nil(t, out.Centroid)
		assert.InDeltaSlice(t, []float64{2, 0}, out.Densified[2][:], 1e-14)
	}
	{
		_, err := RunDensify(parseDeck(t, `
X: [0, 1]
Y: [0, 0]
Interpolation: akima
Periodic: false
`))
		assert.Error(t, err)
	}
}

func TestRunSummary(t *testing.T) {
	{ // Simple shear is defective but invertible
		out, err := RunSummary(parseDeck(t, `Tensor: [[1, 1], [0, 1]]`))
		require.NoError(t, err)
		assert.True(t, out.Defective)
		require.Len(t, out.Eigen, 2)
		assert.Equal(t, [2]float64{1, 0}, out.Eigen[0].Value)
		require.NotNil(t, out.Inverse)
		assert.Equal(t, utils.NewMatrix2(1, -1, 0, 1), *out.Inverse)
		require.NotNil(t, out.Sqrt)
		assert.True(t, out.Sqrt.EqualApprox(utils.NewMatrix2(1, 0.5, 0, 1), 1e-15))
		require.NotNil(t, out.Strain)
		phi := (1 + math.Sqrt(5)) / 2
		assert.InDelta(t, phi*phi, out.Strain.AxialRatio, 1e-12)
	}
	{ // A spin has complex eigenvalues and no strain
		out, err := RunSummary(parseDeck(t, `
Role: velocity
Tensor: [[0, -1], [1, 0]]
`))
		require.NoError(t, err)
		assert.False(t, out.Defective)
		assert.InDeltaSlice(t, []float64{0, 1}, out.Eigen[0].Value[:], 1e-15)
		assert.InDeltaSlice(t, []float64{0, -1}, out.Eigen[1].Value[:], 1e-15)
		assert.Nil(t, out.Strain)
		assert.NotNil(t, out.Sqrt)
	}
	{
		out, err := RunSummary(parseDeck(t, `Tensor: [[1, 2], [2, 4]]`))
		require.NoError(t, err)
		assert.Nil(t, out.Inverse)
		assert.Nil(t, out.Sqrt)
		assert.Nil(t, out.Strain)
		assert.Equal(t, 5., out.Trace)
	}
}

func TestInputOutput(t *testing.T) {
	var (
		dir   = t.TempDir()
		deck  = filepath.Join(dir, "deck.yaml")
		outFn = filepath.Join(dir, "out.yaml")
	)
	_, err := readInput("")
	assert.Error(t, err)
	_, err = readInput(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(deck, []byte("Title: bad\nShape: hexagon\n"), 0644))
	_, err = readInput(deck)
	assert.ErrorIs(t, err, InputParameters.ErrInvalidInput)

	require.NoError(t, os.WriteFile(deck, []byte(exampleFile), 0644))
	ip, err := readInput(deck)
	require.NoError(t, err)
	assert.Equal(t, "Simple shear", ip.Title)

	out, err := RunEllipse(ip)
	require.NoError(t, err)
	require.NoError(t, writeOutput(io.Discard, outFn, out))
	data, err := os.ReadFile(outFn)
	require.NoError(t, err)
	var back EllipseOutput
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, out.Title, back.Title)
	assert.Equal(t, out.Original, back.Original)
	assert.InDelta(t, out.Summary.AxialRatio, back.Summary.AxialRatio, 1e-15)
}

func TestRunCommandStreams(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(deck, []byte(exampleFile), 0644))
	viper.Set("inputFile", deck)
	viper.Set("outputFile", "")
	viper.Set("verbose", true)
	defer func() {
		viper.Set("inputFile", "")
		viper.Set("verbose", false)
	}()

	var stdout, stderr bytes.Buffer
	c := &cobra.Command{Use: "ellipse"}
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	require.NoError(t, runCommand(c, func(ip *InputParameters.InputParameters2D) (interface{}, error) {
		return RunEllipse(ip)
	}))
	// The deck echo goes to stderr, stdout holds only the YAML
	assert.Contains(t, stderr.String(), "\"Simple shear\"\t\t= Title")
	assert.NotContains(t, stdout.String(), "= Title")
	var back EllipseOutput
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &back))
	assert.Equal(t, "Circle", back.Shape)
	assert.Len(t, back.Mapped, field.CirclePoints)
}
