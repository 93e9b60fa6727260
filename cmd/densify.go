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
)

type DensifyOutput struct {
	Original  geometry2D.Polyline `json:"original"`
	Densified geometry2D.Polyline `json:"densified"`
	Mapped    geometry2D.Polyline `json:"mapped,omitempty"`
	Length    float64             `json:"length"`
	Area      float64             `json:"area,omitempty"`
	Centroid  *geometry2D.Point   `json:"centroid,omitempty"`
}

// DensifyCmd resamples a custom shape and optionally deforms it
var DensifyCmd = &cobra.Command{
	Use:   "densify",
	Short: "Resample a custom shape along its chord length",
	Long: `
Resamples the deck X, Y points to Count points (default 500) along a curve
parameterized by chord length, closing it when Periodic (default true). When
the deck has a Tensor the resampled shape is also mapped through F.

sg2 densify -I shape.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(ip *InputParameters.InputParameters2D) (interface{}, error) {
			return RunDensify(ip)
		})
	},
}

func init() {
	rootCmd.AddCommand(DensifyCmd)
}

func RunDensify(ip *InputParameters.InputParameters2D) (out DensifyOutput, err error) {
	var (
		interpolation types.Interpolation
		T, F          strain.Tensor
	)
	if out.Original, err = ip.GetPolyline(); err != nil {
		return
	}
	if interpolation, err = ip.GetInterpolation(); err != nil {
		return
	}
	if out.Densified, err = geometry2D.DensifyWith(out.Original, ip.Count, ip.IsPeriodic(), interpolation); err != nil {
		return
	}
	out.Length = out.Densified.Length()
	if out.Densified.IsClosed() {
		out.Area = out.Densified.Area()
		ct := out.Densified.Centroid()
		out.Centroid = &ct
	}
	if ip.Tensor == nil {
		return
	}
	if T, err = ip.GetTensor(); err != nil {
		return
	}
	if F, err = T.ToDeformationGradient(); err != nil {
		return
	}
	out.Mapped = field.MapPoints(F.Matrix(), out.Densified)
	log.WithField("points", len(out.Densified)).Debugf("mapped through %v", F)
	return
}
