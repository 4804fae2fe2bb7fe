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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/icesim/glenflow/field"
	"github.com/icesim/glenflow/grid"
	"github.com/icesim/glenflow/rheology"
	"github.com/icesim/glenflow/ssa"
)

// EnergyCmd represents the energy command
var EnergyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Evaluate the viscous action on a synthetic flow field",
	Long: `
Builds a uniform grid with a pure-shear velocity field and uniform
thickness and temperature, then evaluates the viscous part of the
depth-averaged action functional and the driving stress, for example

glenflow energy --nx 200 --ny 200 --shear 0.2`,
	Run: func(cmd *cobra.Command, args []string) {
		nx, _ := cmd.Flags().GetInt("nx")
		ny, _ := cmd.Flags().GetInt("ny")
		lx, _ := cmd.Flags().GetFloat64("lx")
		ly, _ := cmd.Flags().GetFloat64("ly")
		shear, _ := cmd.Flags().GetFloat64("shear")
		thickness, _ := cmd.Flags().GetFloat64("thickness")
		temp, _ := cmd.Flags().GetFloat64("temp")
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start().Stop()
		}
		if err := RunEnergy(nx, ny, lx, ly, shear, thickness, temp); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(EnergyCmd)
	EnergyCmd.Flags().Int("nx", 100, "grid nodes in x")
	EnergyCmd.Flags().Int("ny", 100, "grid nodes in y")
	EnergyCmd.Flags().Float64("lx", 10e3, "domain extent in x [m]")
	EnergyCmd.Flags().Float64("ly", 10e3, "domain extent in y [m]")
	EnergyCmd.Flags().Float64("shear", 0.2, "shear strain rate of the synthetic flow [1/yr]")
	EnergyCmd.Flags().Float64("thickness", 500, "uniform ice thickness [m]")
	EnergyCmd.Flags().Float64("temp", 258.15, "uniform ice temperature [K]")
	EnergyCmd.Flags().Bool("profile", false, "write a CPU profile")
}

func RunEnergy(nx, ny int, lx, ly, shear, thickness, temp float64) error {
	g, err := grid.New(nx, ny, lx, ly)
	if err != nil {
		return err
	}
	var (
		u = g.InterpolateVector(func(x, y float64) (float64, float64) {
			return shear * y, shear * x
		})
		h = field.NewConstScalarField(g.N(), thickness)
		T = field.NewConstScalarField(g.N(), temp)
		A = rheology.RateFactorField(T)
		m = ssa.NewDepthAveraged(g, g)
	)
	fmt.Printf("Depth-Averaged Viscous Action\n")
	fmt.Printf("%d x %d grid on %g x %g m, shear = %g /yr\n", nx, ny, lx, ly, shear)
	fmt.Printf("T = %8.3f K => A = %12.6e MPa^-n/yr\n", temp, A.At(0))
	action := m.ViscousAction(u, h, A)
	fmt.Printf("viscous action    = %14.6e\n", action)

	s := ssa.Surface(field.NewConstScalarField(g.N(), 0), h)
	tau := ssa.DrivingStress(g, s, h)
	fmt.Printf("driving stress L2 = %14.6e\n", field.NormL2Vector(g, tau))
	return nil
}
