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
	"github.com/ondrolexa/sg2/strain"
	"github.com/ondrolexa/sg2/types"
	"github.com/ondrolexa/sg2/utils"
)

type PathState struct {
	Step    int            `json:"step"`
	Time    float64        `json:"time"`
	F       utils.Matrix2  `json:"F"`
	Summary strain.Summary `json:"summary"`
}

type PathOutput struct {
	Title string        `json:"title"`
	Final utils.Matrix2 `json:"final"`
	Path  []PathState   `json:"path"`
}

// IntegrateCmd accumulates finite deformation along a path
var IntegrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Finite deformation from incremental steps or a velocity gradient",
	Long: `
For a velocity gradient L the deck Time and Frames give F(t) = exp(L t) at
Frames times evenly spaced over [0, Time]. Otherwise the deck Increment is
applied Steps times to Tensor, F(n) = Increment^n · Tensor.

sg2 integrate -I deck.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(ip *InputParameters.InputParameters2D) (interface{}, error) {
			return RunIntegrate(ip)
		})
	},
}

func init() {
	rootCmd.AddCommand(IntegrateCmd)
}

func RunIntegrate(ip *InputParameters.InputParameters2D) (out PathOutput, err error) {
	var (
		T, final strain.Tensor
		path     []strain.Tensor
		times    []float64
		ss       []strain.Summary
	)
	if T, err = ip.GetTensor(); err != nil {
		return
	}
	if T.Role() == types.Velocity {
		if path, err = strain.VelocityPath(T, ip.Time, ip.Frames); err != nil {
			return
		}
		if final, err = strain.IntegrateVelocity(T, ip.Time); err != nil {
			return
		}
		times = utils.Linspace(0, ip.Time, ip.Frames)
	} else {
		var inc strain.Tensor
		if inc, err = ip.GetIncrement(); err != nil {
			return
		}
		if path, err = strain.IncrementalPath(T, inc, ip.Steps); err != nil {
			return
		}
		if final, err = strain.StepIncremental(T, inc, ip.Steps); err != nil {
			return
		}
		if final, err = final.ToDeformationGradient(); err != nil {
			return
		}
	}
	if ss, err = strain.Summaries(path); err != nil {
		return
	}
	out.Title = T.Label()
	out.Final = final.Matrix()
	out.Path = make([]PathState, len(path))
	for i, F := range path {
		out.Path[i] = PathState{Step: i, F: F.Matrix(), Summary: ss[i]}
		if times != nil {
			out.Path[i].Time = times[i]
		}
	}
	log.WithField("states", len(path)).Debugf("final %v", out.Final)
	return
}
