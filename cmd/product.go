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

	"github.com/notargets/gosh/coupling"
	"github.com/notargets/gosh/sh"
)

type ModelProduct struct {
	InputFile      string
	ParallelDegree int
	UseTable       bool
}

// productCmd represents the product command
var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Couple two coefficient vectors through Clebsch-Gordan weights",
	Long: `
Reads LHS and RHS coefficient vectors from a YAML input file and computes
the coefficients of their pointwise product field, one instance or a whole
volume, through the kernel product or a precomputed coupling table.

gosh product -I coupling.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("product called")
		mp := &ModelProduct{}
		if mp.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		mp.UseTable, _ = cmd.Flags().GetBool("table")
		mp.ParallelDegree, _ = cmd.Flags().GetInt("pdegree")
		RunProduct(mp)
	},
}

func init() {
	rootCmd.AddCommand(productCmd)
	productCmd.Flags().StringP("inputFile", "I", "", "YAML file with MaxDegree, LHS and RHS")
	productCmd.Flags().BoolP("table", "t", false, "couple through a precomputed sparse weight table")
}

func RunProduct(mp *ModelProduct) (out []float64) {
	if mp.InputFile == "" {
		fmt.Printf("error: must supply an input file (-I, --inputFile) with LHS and RHS\n")
		exampleFile := `
########################################
Title: "Constant times constant"
MaxDegree: 1
LHS: [1, 0, 0, 0]
RHS: [1, 0, 0, 0]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	ip := processInput(mp.InputFile)
	ip.Print()
	if len(ip.LHS) == 0 || len(ip.RHS) == 0 {
		fmt.Printf("error: input file %s needs both LHS and RHS\n", mp.InputFile)
		os.Exit(1)
	}
	var (
		count = ip.CoefficientCount()
		np    = mp.ParallelDegree
	)
	if np == 0 {
		np = ip.ParallelDegree
	}
	switch {
	case mp.UseTable:
		tab := coupling.NewTable(count)
		fmt.Printf("coupling table holds %d nonzero weights\n", tab.W.NNZ())
		out = make([]float64, ip.InstanceCount()*count)
		for n := 0; n < ip.InstanceCount(); n++ {
			o := n * count
			tab.ApplyInto(ip.LHS[o:o+count], ip.RHS[o:o+count], out[o:o+count])
		}
	case ip.InstanceCount() == 1:
		out = coupling.Product(count, ip.LHS, ip.RHS, np)
	default:
		out = coupling.Products(ip.Dims(), count, ip.LHS, ip.RHS, np)
	}
	printCoefficients(out, count)
	return
}

func printCoefficients(out []float64, count int) {
	for i, v := range out {
		l, m := sh.CoefficientLM(i % count)
		fmt.Printf("%4d (l=%2d, m=%3d): %12.6f\n", i, l, m, v)
	}
}
