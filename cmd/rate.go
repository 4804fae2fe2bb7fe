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

	"github.com/icesim/glenflow/field"
	"github.com/icesim/glenflow/params"
)

// RateCmd represents the rate command
var RateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Tabulate the Glen's-law rate factor over a temperature range",
	Long: `
Evaluates the two-branch Arrhenius rate factor A(T) over a range of
temperatures and prints a table with the active branch, for example

glenflow rate --tMin 250 --tMax 275 --steps 26`,
	Run: func(cmd *cobra.Command, args []string) {
		tMin, _ := cmd.Flags().GetFloat64("tMin")
		tMax, _ := cmd.Flags().GetFloat64("tMax")
		steps, _ := cmd.Flags().GetInt("steps")
		paramFile, _ := cmd.Flags().GetString("params")
		p := params.Default()
		if len(paramFile) != 0 {
			data, err := os.ReadFile(paramFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if err = p.Parse(data); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		p.Print()
		RunRate(p, tMin, tMax, steps)
	},
}

func init() {
	rootCmd.AddCommand(RateCmd)
	RateCmd.Flags().Float64("tMin", 250, "lowest temperature [K]")
	RateCmd.Flags().Float64("tMax", 273.15, "highest temperature [K]")
	RateCmd.Flags().IntP("steps", "s", 24, "number of table rows")
	RateCmd.Flags().StringP("params", "p", "", "YAML rheology parameter file")
}

func RunRate(p params.RheologyParameters, tMin, tMax float64, steps int) {
	if steps < 2 {
		steps = 2
	}
	var (
		arr = p.Arrhenius()
		T   = field.NewScalarField(steps)
		dT  = (tMax - tMin) / float64(steps-1)
	)
	for i := 0; i < steps; i++ {
		T.Set(i, tMin+float64(i)*dT)
	}
	A := arr.RateFactorField(T)
	fmt.Printf("\n%12s %16s %8s\n", "T [K]", "A [MPa^-n/yr]", "branch")
	for i := 0; i < steps; i++ {
		branch := "warm"
		if T.At(i) < p.TransitionTemperature {
			branch = "cold"
		}
		fmt.Printf("%12.3f %16.6e %8s\n", T.At(i), A.At(i), branch)
	}
}
