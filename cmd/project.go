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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gosh/geometry"
	"github.com/notargets/gosh/projection"
	"github.com/notargets/gosh/sh"
	"github.com/notargets/gosh/utils"
)

type ModelProject struct {
	InputFile      string
	NDirections    int
	L, M           int
	ParallelDegree int
	Graph          bool
}

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Fit coefficients to a field sampled at scattered directions",
	Long: `
Evaluates a reference field (a single basis function, or the coefficients
from a YAML input file) at scattered directions, builds the projection
matrix and fits coefficients back by least squares, reporting the recovery
distance.

gosh project -l 2 -m 1 -n 800`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("project called")
		mp := &ModelProject{}
		if mp.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		mp.NDirections, _ = cmd.Flags().GetInt("directions")
		mp.L, _ = cmd.Flags().GetInt("degree")
		mp.M, _ = cmd.Flags().GetInt("order")
		mp.Graph, _ = cmd.Flags().GetBool("graph")
		mp.ParallelDegree, _ = cmd.Flags().GetInt("pdegree")
		RunProject(mp)
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.Flags().StringP("inputFile", "I", "", "YAML file with MaxDegree and reference Coefficients")
	projectCmd.Flags().IntP("directions", "n", 500, "number of scattered directions to fit at")
	projectCmd.Flags().IntP("degree", "l", 0, "degree l of the reference basis function")
	projectCmd.Flags().IntP("order", "m", 0, "order m of the reference basis function")
	projectCmd.Flags().BoolP("graph", "g", false, "display the reference field over the triangulated directions")
}

func RunProject(mp *ModelProject) (fit []float64, distance float64) {
	var (
		err   error
		truth []float64
		count int
	)
	if mp.InputFile != "" {
		ip := processInput(mp.InputFile)
		ip.Print()
		if len(ip.Coefficients) == 0 {
			fmt.Printf("error: input file %s carries no Coefficients\n", mp.InputFile)
			os.Exit(1)
		}
		count = ip.CoefficientCount()
		truth = ip.Coefficients[:count] // First instance of a volume
		if mp.ParallelDegree == 0 {
			mp.ParallelDegree = ip.ParallelDegree
		}
	} else {
		count = sh.CoefficientCount(mp.L)
		truth = make([]float64, count)
		truth[sh.CoefficientIndex(mp.L, mp.M)] = 1
	}
	var (
		points    = chartDirections(mp.NDirections)
		maxDegree = sh.MaximumDegree(count)
	)
	for i := range points {
		points[i].Value = sh.EvaluateSum(maxDegree, points[i].Theta, points[i].Phi, truth)
	}
	A := projection.CalculateMatrix(points, count, mp.ParallelDegree)
	nr, nc := A.Dims()
	fmt.Printf("projection matrix %d x %d\n", nr, nc)
	if fit, err = projection.Fit(points, count, mp.ParallelDegree); err != nil {
		panic(err)
	}
	utils.IsNanPanic(fit)
	distance = sh.L2Distance(fit, truth)
	fmt.Printf("L1 coefficient recovery distance: %g\n", sh.L1Distance(fit, truth))
	fmt.Printf("L2 coefficient recovery distance: %g\n", distance)
	if mp.Graph {
		geometry.PlotField(points)
	}
	return
}

// chartDirections spreads n directions over the sphere on a golden ratio
// spiral.
func chartDirections(n int) (points []sh.Point) {
	var (
		golden = (1 + math.Sqrt(5)) / 2
	)
	points = make([]sh.Point, n)
	for i := range points {
		points[i] = sh.Point{
			Theta: 2 * math.Pi * math.Mod(float64(i)/golden, 1),
			Phi:   math.Acos(1 - 2*(float64(i)+0.5)/float64(n)),
		}
	}
	return
}
