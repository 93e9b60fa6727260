/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ondrolexa/sg2/InputParameters"
	"github.com/ondrolexa/sg2/field"
	"github.com/ondrolexa/sg2/strain"
	"github.com/ondrolexa/sg2/types"
)

// FieldCmd samples the displacement or velocity field on a grid
var FieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Displacement or velocity vectors on a regular grid",
	Long: `
Samples J·p (deformation and displacement gradients) or L·p (velocity
gradients) on the deck Grid, by default 21x17 points over [-3,3]x[-2,2] for
displacements and 17x17 over [-2,2]² for velocities. With --scene the
displacement field is bundled with the strain ellipse and stretch cross.

sg2 field -I deck.yaml --scene`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, _ := cmd.Flags().GetBool("scene")
		return runCommand(cmd, func(ip *InputParameters.InputParameters2D) (interface{}, error) {
			if scene {
				return RunScene(ip)
			}
			return RunField(ip)
		})
	},
}

func init() {
	rootCmd.AddCommand(FieldCmd)
	FieldCmd.Flags().BoolP("scene", "s", false, "add the strain ellipse and stretch cross to the displacement field")
}

// FieldOutput holds the quiver arrays of a sampled field.
type FieldOutput struct {
	Title string    `json:"title"`
	Role  string    `json:"role"`
	Nx    int       `json:"nx"`
	Ny    int       `json:"ny"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	U     []float64 `json:"u"`
	V     []float64 `json:"v"`
}

func RunField(ip *InputParameters.InputParameters2D) (out FieldOutput, err error) {
	var (
		T  strain.Tensor
		vf field.VectorField
	)
	if T, err = ip.GetTensor(); err != nil {
		return
	}
	if T.Role() != types.Velocity {
		if T, err = T.ToDisplacementGradient(); err != nil {
			return
		}
	}
	if vf, err = field.SampleGridField(T.Matrix(), ip.GetGrid()); err != nil {
		return
	}
	log.WithField("role", T.Role()).Debugf("%d x %d samples", vf.Nx, vf.Ny)
	out.Title, out.Role = T.Label(), T.Role().String()
	out.Nx, out.Ny = vf.Nx, vf.Ny
	out.X, out.Y, out.U, out.V = vf.Components()
	return
}

func RunScene(ip *InputParameters.InputParameters2D) (sc field.Scene, err error) {
	var (
		T strain.Tensor
	)
	if T, err = ip.GetTensor(); err != nil {
		return
	}
	return field.NewScene(T)
}
