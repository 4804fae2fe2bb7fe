// Package constants holds the physical constants used throughout the
// glenflow library. All values are fixed at compile time; the rheological
// subset can be overridden per-run through the params package without
// touching anything here.
package constants

// Year is the length of a Julian year in seconds. Rate factors and strain
// rates are expressed per year rather than per second, which keeps their
// magnitudes near unity for typical glacier flow.
const Year = 365.25 * 24 * 60 * 60

// IdealGas is the ideal gas constant in kJ / (mol K).
const IdealGas = 8.3144621e-3

// GlenFlowLaw is the exponent n in Glen's flow law.
const GlenFlowLaw = 3.0

// TransitionTemperature splits the Arrhenius law for the rate factor into
// its cold and warm branches, in Kelvin. Temperatures strictly below the
// transition take the cold branch.
const TransitionTemperature = 263.15

// Prefactors for the two Arrhenius branches, in MPa**-3 yr**-1. The raw
// laboratory values are in Pa**-3 s**-1 and are rescaled here once.
const (
	A0Cold = 3.985e-13 * Year * 1.0e18
	A0Warm = 1.916e3 * Year * 1.0e18
)

// Activation energies for the two Arrhenius branches, in kJ / mol.
const (
	QCold = 60.0
	QWarm = 139.0
)

// Densities in kg / m**3 and gravitational acceleration in m / s**2,
// used by the depth-averaged model glue (surface elevation, driving
// stress). Sea water density is used for the flotation criterion.
const (
	RhoIce   = 917.0
	RhoWater = 1024.0
	Gravity  = 9.81
)
