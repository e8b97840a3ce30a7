package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/notargets/gosh/projection"
	"github.com/notargets/gosh/sh"
)

var (
	maxDegree int
	steps     int
	start     int
	pdegree   int
)

func main() {
	maxDegreePtr := flag.Int("degree", 3, "maximum degree of the fitted spectrum")
	stepsPtr := flag.Int("steps", 6, "number of direction count doublings")
	startPtr := flag.Int("start", 0, "starting direction count, 0 uses twice the coefficient count")
	pdegreePtr := flag.Int("pdegree", 0, "parallel degree, 0 uses every CPU")
	flag.Parse()
	maxDegree = *maxDegreePtr
	steps = *stepsPtr
	start = *startPtr
	pdegree = *pdegreePtr
	if maxDegree < 0 || steps < 1 {
		flag.Usage()
		os.Exit(1)
	}
	var (
		count    = sh.CoefficientCount(maxDegree)
		refCount = sh.CoefficientCount(maxDegree + 1)
		ref      = make([]float64, refCount)
	)
	if start == 0 {
		start = 2 * count
	}
	// The reference field carries content one degree above the fitted
	// spectrum, so the recovery error measures how well the scattered
	// directions resolve the basis.
	for i := range ref {
		ref[i] = 1 / float64(i+1)
	}
	fs := NewFitStudy(maxDegree)
	for s := 0; s < steps; s++ {
		n := start << uint(s)
		points := spiralDirections(n)
		for i := range points {
			points[i].Value = sh.EvaluateSum(maxDegree+1, points[i].Theta, points[i].Phi, ref)
		}
		fit, err := projection.Fit(points, count, pdegree)
		if err != nil {
			panic(err)
		}
		fs.Add(n, sh.L2Distance(fit, ref[:count]))
	}
	fmt.Printf("Degree = %d, Coefficients = %d\n", fs.degree, count)
	fmt.Printf("%12s %14s %8s\n", "nDirections", "L2 distance", "order")
	for i := range fs.nDirections {
		if i == 0 {
			fmt.Printf("%12d %14.6e\n", fs.nDirections[i], fs.distance[i])
			continue
		}
		order := math.Log2(fs.distance[i-1] / fs.distance[i])
		fmt.Printf("%12d %14.6e %8.3f\n", fs.nDirections[i], fs.distance[i], order)
	}
}

type FitStudy struct {
	degree      int
	nDirections []int
	distance    []float64
}

func NewFitStudy(degree int) *FitStudy {
	return &FitStudy{
		degree: degree,
	}
}

func (fs *FitStudy) Add(nDirections int, distance float64) {
	fs.nDirections = append(fs.nDirections, nDirections)
	fs.distance = append(fs.distance, distance)
}

func spiralDirections(n int) (points []sh.Point) {
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
