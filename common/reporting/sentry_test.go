package reporting

import (
	"fmt"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlantern/buildenv"
	"github.com/getlantern/buildenv/common"
	"github.com/getlantern/buildenv/probe"
	"github.com/getlantern/buildenv/probe/probetest"
)

func TestInit(t *testing.T) {
	c := buildenv.New(&probetest.Platform{Receipt: probe.SandboxReceiptName})
	require.NoError(t, Init("", "1.2.3", c))

	client := sentry.CurrentHub().Client()
	require.NotNil(t, client)
	opts := client.Options()
	assert.Equal(t, "testflight", opts.Environment)
	assert.Equal(t, "1.2.3", opts.Release)
}

func TestInitInvalidDSN(t *testing.T) {
	c := buildenv.New(&probetest.Platform{})
	assert.Error(t, Init("not a dsn", "1.2.3", c))
}

func TestTags(t *testing.T) {
	c := buildenv.New(&probetest.Platform{DebugBuild: true, Power: probe.PowerCharging})
	tags := Tags(c.Report())
	assert.Equal(t, "debug", tags["buildenv.environment"])
	assert.Equal(t, "true", tags["buildenv.cable_build"])
	assert.Equal(t, "false", tags["buildenv.simulator"])
	assert.Equal(t, "charging", tags["buildenv.power_state"])
	assert.Equal(t, fmt.Sprint(common.IsMobile()), tags["platform.mobile"])
	assert.Len(t, tags, 13)
}
