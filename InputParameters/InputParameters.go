package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gosh/kernel"
	"github.com/notargets/gosh/sh"
)

// Parameters obtained from the YAML input file
type InputParametersSH struct {
	Title          string    `yaml:"Title"`
	MaxDegree      int       `yaml:"MaxDegree"`
	TessellationX  int       `yaml:"TessellationX"`
	TessellationY  int       `yaml:"TessellationY"`
	Coefficients   []float64 `yaml:"Coefficients"` // One block of (MaxDegree+1)^2 per instance
	LHS            []float64 `yaml:"LHS"`
	RHS            []float64 `yaml:"RHS"`
	InstancesX     int       `yaml:"InstancesX"`
	InstancesY     int       `yaml:"InstancesY"`
	InstancesZ     int       `yaml:"InstancesZ"`
	ParallelDegree int       `yaml:"ParallelDegree"`
	Plot           bool      `yaml:"Plot"`
	MeshFile       string    `yaml:"MeshFile"`
}

func (ip *InputParametersSH) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	return ip.validate()
}

// validate checks degree and length coherence at the CLI boundary. The
// engines assume preconditioned inputs.
func (ip *InputParametersSH) validate() error {
	if ip.MaxDegree < 0 {
		return fmt.Errorf("MaxDegree must be non-negative, got %d", ip.MaxDegree)
	}
	if (ip.TessellationX != 0 || ip.TessellationY != 0) &&
		(ip.TessellationX < 1 || ip.TessellationY < 2) {
		return fmt.Errorf("tessellation must be at least 1 x 2, got %d x %d",
			ip.TessellationX, ip.TessellationY)
	}
	var (
		count = ip.CoefficientCount()
		want  = ip.InstanceCount() * count
	)
	for name, cs := range map[string][]float64{
		"Coefficients": ip.Coefficients,
		"LHS":          ip.LHS,
		"RHS":          ip.RHS,
	} {
		if len(cs) != 0 && len(cs) != want {
			return fmt.Errorf("%s needs %d values for %d instances of %d coefficients, got %d",
				name, want, ip.InstanceCount(), count, len(cs))
		}
	}
	return nil
}

func (ip *InputParametersSH) CoefficientCount() int {
	return sh.CoefficientCount(ip.MaxDegree)
}

// Dims is the instance volume, zero axes counting as one.
func (ip *InputParametersSH) Dims() kernel.Space {
	return kernel.Space{
		X: dimOrOne(ip.InstancesX),
		Y: dimOrOne(ip.InstancesY),
		Z: dimOrOne(ip.InstancesZ),
	}
}

func (ip *InputParametersSH) InstanceCount() int { return ip.Dims().Size() }

func dimOrOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (ip *InputParametersSH) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= MaxDegree\n", ip.MaxDegree)
	fmt.Printf("[%d x %d]\t\t= Tessellation\n", ip.TessellationX, ip.TessellationY)
	fmt.Printf("[%d x %d x %d]\t\t= Instances\n",
		dimOrOne(ip.InstancesX), dimOrOne(ip.InstancesY), dimOrOne(ip.InstancesZ))
	fmt.Printf("[%d]\t\t\t= ParallelDegree\n", ip.ParallelDegree)
	fmt.Printf("[%v]\t\t\t= Plot\n", ip.Plot)
	if len(ip.Coefficients) != 0 {
		fmt.Printf("%d\t\t\t= Coefficient values\n", len(ip.Coefficients))
	}
	if len(ip.LHS) != 0 {
		fmt.Printf("%d\t\t\t= LHS values\n", len(ip.LHS))
	}
	if len(ip.RHS) != 0 {
		fmt.Printf("%d\t\t\t= RHS values\n", len(ip.RHS))
	}
	if ip.MeshFile != "" {
		fmt.Printf("[%s]\t= MeshFile\n", ip.MeshFile)
	}
}
