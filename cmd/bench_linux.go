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

	perf "github.com/hodgesds/perf-utils"
)

// reportCounters prints hardware cycle and instruction counts for one run.
// Needs perf_event_open access.
func reportCounters(name string, fn func()) {
	cycles, err := perf.CPUCycles(fn)
	if err != nil {
		fmt.Printf("%-12s counters unavailable: %v\n", name, err)
		return
	}
	instructions, err := perf.CPUInstructions(fn)
	if err != nil {
		fmt.Printf("%-12s counters unavailable: %v\n", name, err)
		return
	}
	fmt.Printf("%-12s %d cycles, %d instructions, %.2f ipc\n",
		name, cycles.Value, instructions.Value,
		float64(instructions.Value)/float64(cycles.Value))
}
