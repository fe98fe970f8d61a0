package buildenv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentString(t *testing.T) {
	want := map[Environment]string{
		Simulator:  "simulator",
		Debug:      "debug",
		AdHoc:      "adhoc",
		TestFlight: "testflight",
		AppStore:   "appStore",
		Other:      "other",
	}
	seen := map[string]bool{}
	for _, env := range Environments() {
		name := env.String()
		assert.Equal(t, want[env], name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.Len(t, seen, 6)
	assert.Equal(t, "other", Environment(42).String())
}

func TestParseEnvironment(t *testing.T) {
	for _, env := range Environments() {
		got, err := ParseEnvironment(env.String())
		require.NoError(t, err)
		assert.Equal(t, env, got)
	}

	got, err := ParseEnvironment(" AppStore ")
	require.NoError(t, err)
	assert.Equal(t, AppStore, got)

	_, err = ParseEnvironment("enterprise")
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
}

func TestEnvironmentJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Environment{"env": TestFlight})
	require.NoError(t, err)
	assert.JSONEq(t, `{"env":"testflight"}`, string(out))

	var decoded map[string]Environment
	require.NoError(t, json.Unmarshal([]byte(`{"env":"adhoc"}`), &decoded))
	assert.Equal(t, AdHoc, decoded["env"])

	assert.Error(t, json.Unmarshal([]byte(`{"env":"beta"}`), &decoded))
}
