package buildenv

import (
	"fmt"
	"strings"

	"github.com/getlantern/buildenv/probe"
)

// Report is a snapshot of every signal and the resulting classification.
type Report struct {
	Environment      Environment      `json:"environment" yaml:"environment"`
	Simulator        bool             `json:"simulator" yaml:"simulator"`
	Debug            bool             `json:"debug" yaml:"debug"`
	AdHoc            bool             `json:"adhoc" yaml:"adhoc"`
	TestFlight       bool             `json:"testflight" yaml:"testflight"`
	AppStore         bool             `json:"appStore" yaml:"appStore"`
	Release          bool             `json:"release" yaml:"release"`
	DebuggerAttached bool             `json:"debuggerAttached" yaml:"debuggerAttached"`
	AppExtension     bool             `json:"appExtension" yaml:"appExtension"`
	CableConnected   bool             `json:"cableConnected" yaml:"cableConnected"`
	CableBuild       bool             `json:"cableBuild" yaml:"cableBuild"`
	Executable       string           `json:"executable,omitempty" yaml:"executable,omitempty"`
	PowerState       probe.PowerState `json:"powerState" yaml:"powerState"`
}

// Report collects the current values of all accessors.
func (c *Classifier) Report() Report {
	return Report{
		Environment:      c.Environment(),
		Simulator:        c.IsSimulator(),
		Debug:            c.IsDebug(),
		AdHoc:            c.IsAdHoc(),
		TestFlight:       c.IsTestFlight(),
		AppStore:         c.IsAppStore(),
		Release:          c.IsRelease(),
		DebuggerAttached: c.IsDebuggerAttached(),
		AppExtension:     c.IsRunningInAppExtension(),
		CableConnected:   c.IsCableConnected(),
		CableBuild:       c.IsCableBuild(),
		Executable:       c.executablePath(),
		PowerState:       c.powerState(),
	}
}

// Signals returns the boolean signals keyed by name, for use as log attributes or reporting tags.
func (r Report) Signals() map[string]bool {
	return map[string]bool{
		"simulator":         r.Simulator,
		"debug":             r.Debug,
		"adhoc":             r.AdHoc,
		"testflight":        r.TestFlight,
		"app_store":         r.AppStore,
		"release":           r.Release,
		"debugger_attached": r.DebuggerAttached,
		"app_extension":     r.AppExtension,
		"cable_connected":   r.CableConnected,
		"cable_build":       r.CableBuild,
	}
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "environment:       %s\n", r.Environment)
	rows := []struct {
		name  string
		value bool
	}{
		{"simulator", r.Simulator},
		{"debug", r.Debug},
		{"adhoc", r.AdHoc},
		{"testflight", r.TestFlight},
		{"appStore", r.AppStore},
		{"release", r.Release},
		{"debuggerAttached", r.DebuggerAttached},
		{"appExtension", r.AppExtension},
		{"cableConnected", r.CableConnected},
		{"cableBuild", r.CableBuild},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-18s %t\n", row.name+":", row.value)
	}
	fmt.Fprintf(&b, "%-18s %s\n", "powerState:", r.PowerState)
	if r.Executable != "" {
		fmt.Fprintf(&b, "%-18s %s\n", "executable:", r.Executable)
	}
	return b.String()
}
