package buildenv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlantern/buildenv/probe"
	"github.com/getlantern/buildenv/probe/probetest"
)

func TestReport(t *testing.T) {
	c := New(&probetest.Platform{
		Receipt:    probe.SandboxReceiptName,
		Executable: "/var/containers/Bundle/Application/X/App.app/App",
		Power:      probe.PowerUnplugged,
	})
	r := c.Report()
	assert.Equal(t, TestFlight, r.Environment)
	assert.True(t, r.TestFlight)
	assert.True(t, r.Release)
	assert.False(t, r.AppStore)
	assert.False(t, r.CableConnected)
	assert.Equal(t, probe.PowerUnplugged, r.PowerState)

	signals := r.Signals()
	assert.Len(t, signals, 10)
	assert.True(t, signals["testflight"])
	assert.False(t, signals["simulator"])

	text := r.String()
	assert.Contains(t, text, "environment:       testflight\n")
	assert.Contains(t, text, "testflight:        true\n")
	assert.Contains(t, text, "powerState:        unplugged\n")
	assert.Contains(t, text, "executable:        /var/containers/Bundle/Application/X/App.app/App\n")
}

func TestReportJSON(t *testing.T) {
	c := New(&probetest.Platform{Simulator: true, Power: probe.PowerFull})
	out, err := json.Marshal(c.Report())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "simulator", decoded["environment"])
	assert.Equal(t, "full", decoded["powerState"])
	assert.Equal(t, true, decoded["cableBuild"])
	assert.NotContains(t, decoded, "executable")
}
