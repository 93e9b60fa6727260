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
	"errors"

	"github.com/spf13/cobra"

	"github.com/ondrolexa/sg2/InputParameters"
	"github.com/ondrolexa/sg2/strain"
	"github.com/ondrolexa/sg2/utils"
)

// Complex numbers are written as [re, im].
type EigenOutput struct {
	Value  [2]float64    `json:"value"`
	Vector [2][2]float64 `json:"vector"`
}

type SummaryOutput struct {
	Title     string          `json:"title"`
	Matrix    utils.Matrix2   `json:"matrix"`
	Trace     float64         `json:"trace"`
	Det       float64         `json:"det"`
	Eigen     []EigenOutput   `json:"eigen"`
	Defective bool            `json:"defective,omitempty"`
	SVD       utils.SVD       `json:"svd"`
	Inverse   *utils.Matrix2  `json:"inverse,omitempty"`
	Sqrt      *utils.Matrix2  `json:"sqrt,omitempty"`
	Strain    *strain.Summary `json:"strain,omitempty"`
}

// SummaryCmd reports the decomposition of a tensor
var SummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Eigen decomposition, SVD, inverse, square root and strain of a tensor",
	Long: `
Reports the algebraic properties of the deck Tensor. Quantities that do not
exist for the tensor (the inverse of a singular matrix, the square root of a
matrix with a non-positive real eigenvalue, the strain of a velocity
gradient) are left out.

sg2 summary -I deck.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(ip *InputParameters.InputParameters2D) (interface{}, error) {
			return RunSummary(ip)
		})
	},
}

func init() {
	rootCmd.AddCommand(SummaryCmd)
}

func RunSummary(ip *InputParameters.InputParameters2D) (out SummaryOutput, err error) {
	var (
		T  strain.Tensor
		ed utils.EigenDecomposition
		m  utils.Matrix2
	)
	if T, err = ip.GetTensor(); err != nil {
		return
	}
	m = T.Matrix()
	out.Title = T.Label()
	out.Matrix, out.Trace, out.Det = m, m.Trace(), m.Det()
	if ed, err = T.Eigen(); err != nil {
		if !errors.Is(err, utils.ErrSingularSystem) {
			return
		}
		log.Warn(err)
		out.Defective, err = true, nil
	}
	for _, ep := range ed {
		eo := EigenOutput{Value: [2]float64{real(ep.Value), imag(ep.Value)}}
		for i, c := range ep.Vector {
			eo.Vector[i] = [2]float64{real(c), imag(c)}
		}
		out.Eigen = append(out.Eigen, eo)
	}
	out.SVD = T.SVD()
	if R, e := T.Inverse(); e == nil {
		inv := R.Matrix()
		out.Inverse = &inv
	} else {
		log.Debug(e)
	}
	if R, e := T.Sqrt(); e == nil {
		sq := R.Matrix()
		out.Sqrt = &sq
	} else {
		log.Debug(e)
	}
	if s, e := T.Summary(); e == nil {
		out.Strain = &s
	} else {
		log.Debug(e)
	}
	return
}
