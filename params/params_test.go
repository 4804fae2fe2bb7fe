package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icesim/glenflow/constants"
)

func TestDefaultValidates(t *testing.T) {
	p := Default()
	assert.NoError(t, p.Validate())
	assert.Equal(t, constants.GlenFlowLaw, p.GlenExponent)
	assert.Equal(t, constants.TransitionTemperature, p.TransitionTemperature)
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
Title: recalibrated
GlenExponent: 4
MinStrainRate: 1.0e-6
`)
	p := Default()
	require.NoError(t, p.Parse(data))
	assert.Equal(t, "recalibrated", p.Title)
	assert.Equal(t, 4.0, p.GlenExponent)
	assert.Equal(t, 1e-6, p.MinStrainRate)
	// untouched keys keep their standard values
	assert.Equal(t, constants.A0Cold, p.A0Cold)
	assert.Equal(t, constants.QWarm, p.QWarm)
}

func TestParseRejectsBadExponent(t *testing.T) {
	p := Default()
	err := p.Parse([]byte("GlenExponent: 1"))
	assert.Error(t, err)
	err = p.Parse([]byte("GlenExponent: -3"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	p := Default()
	assert.Error(t, p.Parse([]byte("GlenExponent: [not a number")))
}

func TestBindings(t *testing.T) {
	p := Default()
	p.GlenExponent = 3.5
	p.MinStrainRate = 2e-5
	p.TransitionTemperature = 260

	law := p.Law()
	assert.Equal(t, 3.5, law.N)
	assert.Equal(t, 2e-5, law.MinStrainRate)

	arr := p.Arrhenius()
	assert.Equal(t, 260.0, arr.Transition)
	assert.Equal(t, constants.A0Warm, arr.A0Warm)
}
