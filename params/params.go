// Package params reads rheology parameters from a YAML input file, so the
// branch coefficients and regularization floor can be recalibrated without
// touching the algorithm. Defaults reproduce the standard constants.
package params

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/icesim/glenflow/constants"
	"github.com/icesim/glenflow/rheology"
)

// Parameters obtained from the YAML input file
type RheologyParameters struct {
	Title                 string  `yaml:"Title"`
	A0Cold                float64 `yaml:"A0Cold"`        // MPa**-n yr**-1
	A0Warm                float64 `yaml:"A0Warm"`        // MPa**-n yr**-1
	QCold                 float64 `yaml:"QCold"`         // kJ/mol
	QWarm                 float64 `yaml:"QWarm"`         // kJ/mol
	TransitionTemperature float64 `yaml:"TransitionTemperature"` // K
	GlenExponent          float64 `yaml:"GlenExponent"`
	MinStrainRate         float64 `yaml:"MinStrainRate"` // yr**-1
}

func Default() RheologyParameters {
	return RheologyParameters{
		Title:                 "glacier ice, standard coefficients",
		A0Cold:                constants.A0Cold,
		A0Warm:                constants.A0Warm,
		QCold:                 constants.QCold,
		QWarm:                 constants.QWarm,
		TransitionTemperature: constants.TransitionTemperature,
		GlenExponent:          constants.GlenFlowLaw,
		MinStrainRate:         rheology.DefaultMinStrainRate,
	}
}

// Parse overlays YAML data onto the receiver. Call on a Default() value so
// omitted keys keep their standard values.
func (p *RheologyParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("parsing rheology parameters: %w", err)
	}
	return p.Validate()
}

func (p *RheologyParameters) Validate() error {
	if p.GlenExponent <= 1 {
		return fmt.Errorf("Glen exponent must be > 1, have %g", p.GlenExponent)
	}
	if p.A0Cold <= 0 || p.A0Warm <= 0 {
		return fmt.Errorf("prefactors must be positive, have cold %g, warm %g", p.A0Cold, p.A0Warm)
	}
	if p.TransitionTemperature <= 0 {
		return fmt.Errorf("transition temperature must be positive Kelvin, have %g", p.TransitionTemperature)
	}
	if p.MinStrainRate < 0 {
		return fmt.Errorf("regularization floor must be >= 0, have %g", p.MinStrainRate)
	}
	return nil
}

func (p *RheologyParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("%12.5e\t= A0Cold [MPa^-n yr^-1]\n", p.A0Cold)
	fmt.Printf("%12.5e\t= A0Warm [MPa^-n yr^-1]\n", p.A0Warm)
	fmt.Printf("%8.3f\t\t= QCold [kJ/mol]\n", p.QCold)
	fmt.Printf("%8.3f\t\t= QWarm [kJ/mol]\n", p.QWarm)
	fmt.Printf("%8.3f\t\t= Transition Temperature [K]\n", p.TransitionTemperature)
	fmt.Printf("%8.3f\t\t= Glen Exponent\n", p.GlenExponent)
	fmt.Printf("%12.5e\t= Min Strain Rate [yr^-1]\n", p.MinStrainRate)
}

// Arrhenius binds the temperature-law coefficients.
func (p RheologyParameters) Arrhenius() rheology.Arrhenius {
	return rheology.Arrhenius{
		A0Cold:     p.A0Cold,
		A0Warm:     p.A0Warm,
		QCold:      p.QCold,
		QWarm:      p.QWarm,
		Transition: p.TransitionTemperature,
	}
}

// Law binds the flow-law parameters.
func (p RheologyParameters) Law() rheology.Law {
	return rheology.Law{N: p.GlenExponent, MinStrainRate: p.MinStrainRate}
}
