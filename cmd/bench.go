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
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gosh/coupling"
	"github.com/notargets/gosh/kernel"
	"github.com/notargets/gosh/projection"
	"github.com/notargets/gosh/sampling"
	"github.com/notargets/gosh/sh"
	"github.com/notargets/gosh/utils"
)

type ModelBench struct {
	MaxDegree      int
	TessX, TessY   int
	NDirections    int
	Iterations     int
	ParallelDegree int
	Counters       bool
}

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the sampling, projection and coupling kernels",
	Long: `
Runs each kernel repeatedly over a fixed workload and reports wall time per
operation, with optional hardware cycle and instruction counters on linux.

gosh bench -l 4 -i 20 -p 4`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bench called")
		mb := &ModelBench{}
		mb.MaxDegree, _ = cmd.Flags().GetInt("degree")
		mb.TessX, _ = cmd.Flags().GetInt("tessX")
		mb.TessY, _ = cmd.Flags().GetInt("tessY")
		mb.NDirections, _ = cmd.Flags().GetInt("directions")
		mb.Iterations, _ = cmd.Flags().GetInt("iterations")
		mb.Counters, _ = cmd.Flags().GetBool("counters")
		mb.ParallelDegree, _ = cmd.Flags().GetInt("pdegree")
		RunBench(mb)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntP("degree", "l", 4, "maximum degree of the benchmark spectra")
	benchCmd.Flags().IntP("tessX", "x", 128, "longitude tessellation count")
	benchCmd.Flags().IntP("tessY", "y", 65, "latitude tessellation count")
	benchCmd.Flags().IntP("directions", "n", 2048, "directions per projection matrix")
	benchCmd.Flags().IntP("iterations", "i", 10, "iterations per kernel")
	benchCmd.Flags().BoolP("counters", "c", false, "read hardware cycle and instruction counters (linux)")
}

func RunBench(mb *ModelBench) {
	var (
		count        = sh.CoefficientCount(mb.MaxDegree)
		tess         = sampling.Tessellation{X: mb.TessX, Y: mb.TessY}
		np           = mb.ParallelDegree
		dims         = kernel.Space{X: 2, Y: 2, Z: 2}
		coefficients = make([]float64, count)
		volume       = make([]float64, dims.Size()*count)
		points       = chartDirections(mb.NDirections)
		allPoints    = chartDirections(dims.Size() * mb.NDirections)
	)
	for i := range coefficients {
		coefficients[i] = 1 / float64(i+1)
	}
	for i := range volume {
		volume[i] = 1 / float64(i+1)
	}
	benches := []struct {
		name string
		fn   func()
	}{
		{"sample", func() { sampling.Sample(mb.MaxDegree, 1, tess, np) }},
		{"sample_sum", func() { sampling.SampleSum(count, tess, coefficients, np) }},
		{"sample_sums", func() { sampling.SampleSums(dims, count, tess, volume, np) }},
		{"matrix", func() { projection.CalculateMatrix(points, count, np) }},
		{"matrices", func() { projection.CalculateMatrices(dims, allPoints, mb.NDirections, count, np) }},
		{"product", func() { coupling.Product(count, coefficients, coefficients, np) }},
		{"products", func() { coupling.Products(dims, count, volume, volume, np) }},
	}
	fmt.Printf("maxDegree %d, %d coefficients, tessellation %d x %d, %d directions, volume %d x %d x %d\n",
		mb.MaxDegree, count, mb.TessX, mb.TessY, mb.NDirections, dims.X, dims.Y, dims.Z)
	for _, b := range benches {
		start := time.Now()
		for i := 0; i < mb.Iterations; i++ {
			b.fn()
		}
		elapsed := time.Since(start)
		fmt.Printf("%-12s %10.3f ms/op\n", b.name,
			elapsed.Seconds()*1.e3/float64(mb.Iterations))
		if mb.Counters {
			reportCounters(b.name, b.fn)
		}
	}
	fmt.Println(utils.GetMemUsage())
}
