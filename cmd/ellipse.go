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
	"github.com/ondrolexa/sg2/geometry2D"
	"github.com/ondrolexa/sg2/strain"
	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

type EllipseOutput struct {
	Title     string              `json:"title"`
	Shape     string              `json:"shape"`
	Original  geometry2D.Polyline `json:"original"`
	Mapped    geometry2D.Polyline `json:"mapped"`
	Stretches [4]utils.Vector2    `json:"stretches"`
	Summary   strain.Summary      `json:"summary"`
}

// EllipseCmd maps the reference circle or square through the deformation
var EllipseCmd = &cobra.Command{
	Use:   "ellipse",
	Short: "Strain ellipse (or deformed square) of a deformation or displacement gradient",
	Long: `
Maps the unit circle (180 points) or the square [-1,1]² through F, where F is
the deck Tensor or Tensor + I for a displacement gradient, and reports the
principal stretch cross, axial ratio and orientation.

sg2 ellipse -I deck.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(ip *InputParameters.InputParameters2D) (interface{}, error) {
			return RunEllipse(ip)
		})
	},
}

func init() {
	rootCmd.AddCommand(EllipseCmd)
}

func RunEllipse(ip *InputParameters.InputParameters2D) (out EllipseOutput, err error) {
	var (
		T, F  strain.Tensor
		shape types.Shape
	)
	if T, err = ip.GetTensor(); err != nil {
		return
	}
	if F, err = T.ToDeformationGradient(); err != nil {
		return
	}
	if shape, err = ip.GetShape(); err != nil {
		return
	}
	if out.Original, out.Mapped, err = field.MapBoundaryCurve(F.Matrix(), shape); err != nil {
		return
	}
	if out.Summary, err = F.Summary(); err != nil {
		return
	}
	out.Title = T.Label()
	out.Shape = shape.String()
	out.Stretches = field.PrincipalStretchVectors(out.Summary.SVD)
	log.WithField("shape", shape).Debugf("%v", out.Summary)
	return
}
