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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gosh/InputParameters"
	"github.com/notargets/gosh/sampling"
	"github.com/notargets/gosh/sh"
)

type ModelSample struct {
	InputFile      string
	L, M           int
	TessX, TessY   int
	ParallelDegree int
	Graph          bool
	MeshFile       string
}

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample a basis function or a coefficient field over a tessellated sphere",
	Long: `
Samples one basis function (given degree and order) or the coefficient
weighted reconstruction from a YAML input file over a longitude by latitude
sphere grid, with optional plotting and binary mesh output.

gosh sample -l 2 -m 1 -x 64 -y 33 -g`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("sample called")
		ms := &ModelSample{}
		if ms.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		ms.L, _ = cmd.Flags().GetInt("degree")
		ms.M, _ = cmd.Flags().GetInt("order")
		ms.TessX, _ = cmd.Flags().GetInt("tessX")
		ms.TessY, _ = cmd.Flags().GetInt("tessY")
		ms.Graph, _ = cmd.Flags().GetBool("graph")
		ms.MeshFile, _ = cmd.Flags().GetString("meshFile")
		ms.ParallelDegree, _ = cmd.Flags().GetInt("pdegree")
		RunSample(ms)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().StringP("inputFile", "I", "", "YAML file with MaxDegree, Tessellation and Coefficients")
	sampleCmd.Flags().IntP("degree", "l", 0, "degree l of the basis function to sample")
	sampleCmd.Flags().IntP("order", "m", 0, "order m of the basis function to sample, -l <= m <= l")
	sampleCmd.Flags().IntP("tessX", "x", 64, "longitude tessellation count")
	sampleCmd.Flags().IntP("tessY", "y", 33, "latitude tessellation count, at least 2")
	sampleCmd.Flags().BoolP("graph", "g", false, "display the sampled field in the theta-phi plane")
	sampleCmd.Flags().StringP("meshFile", "o", "", "write the plot mesh to this file in binary")
}

func RunSample(ms *ModelSample) (points []sh.Point, indices []uint32, tess sampling.Tessellation) {
	tess = sampling.Tessellation{X: ms.TessX, Y: ms.TessY}
	if ms.InputFile != "" {
		ip := processInput(ms.InputFile)
		ip.Print()
		if ip.TessellationX != 0 {
			tess = sampling.Tessellation{X: ip.TessellationX, Y: ip.TessellationY}
		}
		np := ms.ParallelDegree
		if np == 0 {
			np = ip.ParallelDegree
		}
		if len(ip.Coefficients) == 0 {
			fmt.Printf("error: input file %s carries no Coefficients\n", ms.InputFile)
			os.Exit(1)
		}
		points, indices = sampling.SampleSums(ip.Dims(), ip.CoefficientCount(),
			tess, ip.Coefficients, np)
		ms.Graph = ms.Graph || ip.Plot
		if ms.MeshFile == "" {
			ms.MeshFile = ip.MeshFile
		}
	} else {
		points, indices = sampling.Sample(ms.L, ms.M, tess, ms.ParallelDegree)
	}
	fmt.Printf("sampled %d vertices, %d triangle indices\n", len(points), len(indices))
	if ms.MeshFile != "" {
		gm, field := sampling.PlotMesh(tess, points, indices)
		if err := sampling.WriteMeshFile(ms.MeshFile, gm, field); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", ms.MeshFile)
	}
	if ms.Graph {
		sampling.Plot(tess, points, indices)
	}
	return
}

func processInput(fileName string) (ip *InputParameters.InputParametersSH) {
	var (
		err  error
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	ip = &InputParameters.InputParametersSH{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Pure DC reconstruction"
MaxDegree: 1
TessellationX: 64
TessellationY: 33
Coefficients: [1, 0, 0, 0]
Plot: true
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	return
}
