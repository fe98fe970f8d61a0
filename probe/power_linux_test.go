//go:build linux

package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sysfsWith lays out class/power_supply/<name>/<file> under a temporary mount point.
func sysfsWith(t *testing.T, supplies map[string]map[string]string) string {
	t.Helper()
	root := t.TempDir()
	class := filepath.Join(root, "class", "power_supply")
	require.NoError(t, os.MkdirAll(class, 0o755))
	for name, files := range supplies {
		require.NoError(t, os.MkdirAll(filepath.Join(class, name), 0o755))
		for file, contents := range files {
			require.NoError(t, os.WriteFile(filepath.Join(class, name, file), []byte(contents), 0o644))
		}
	}
	return root
}

func TestPowerStateFrom(t *testing.T) {
	tests := []struct {
		name     string
		supplies map[string]map[string]string
		want     PowerState
	}{
		{
			name: "charging battery",
			supplies: map[string]map[string]string{
				"BAT0": {"type": "Battery\n", "status": "Charging\n"},
			},
			want: PowerCharging,
		},
		{
			name: "mains adapter without status",
			supplies: map[string]map[string]string{
				"AC":   {"type": "Mains\n", "online": "1\n"},
				"BAT0": {"type": "Battery\n", "status": "Discharging\n"},
			},
			want: PowerUnplugged,
		},
		{
			name: "first known status by name",
			supplies: map[string]map[string]string{
				"BAT0": {"status": "Unknown\n"},
				"BAT1": {"status": "Full\n"},
				"BAT2": {"status": "Discharging\n"},
			},
			want: PowerFull,
		},
		{
			name: "no supplies",
			want: PowerUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := powerStateFrom(sysfsWith(t, tt.supplies))
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestPowerStateFromMissingClass(t *testing.T) {
	state, err := powerStateFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, PowerUnknown, state)
}

func TestPowerStateFromMissingMount(t *testing.T) {
	_, err := powerStateFrom(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestDebuggerAttachedLinux(t *testing.T) {
	_, err := debuggerAttached()
	assert.NoError(t, err)
}
