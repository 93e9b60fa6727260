package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"

	"github.com/ondrolexa/sg2/InputParameters"
)

const exampleFile = `
########################################
Title: "Simple shear"
Role: deformation # Can be displacement or velocity
Tensor: [[1, 1], [0, 1]]
Shape: circle # Can be square
########################################
`

func readInput(fileName string) (ip *InputParameters.InputParameters2D, err error) {
	var data []byte
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputFile), for example:%s", exampleFile)
		return
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.InputParameters2D{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("%s: %w", fileName, err)
		ip = nil
	}
	return
}

// writeOutput writes YAML to fileName, or to w when no file is named.
func writeOutput(w io.Writer, fileName string, out interface{}) (err error) {
	var data []byte
	if data, err = yaml.Marshal(out); err != nil {
		return
	}
	if len(fileName) == 0 {
		_, err = w.Write(data)
		return
	}
	return os.WriteFile(fileName, data, 0644)
}
