// Package probetest provides a controllable probe.Platform for tests.
package probetest

import (
	"sync/atomic"

	"github.com/getlantern/buildenv/probe"
)

// Platform returns the values in its fields and counts how often each probe runs. The Err fields
// make the corresponding probe fail.
type Platform struct {
	Simulator         bool
	DebugBuild        bool
	EmbeddedProvision bool
	Receipt           string
	DebuggerAttached  bool
	Executable        string
	Power             probe.PowerState

	ProvisionErr  error
	ReceiptErr    error
	DebuggerErr   error
	ExecutableErr error
	PowerErr      error

	calls [7]atomic.Int32
}

var _ probe.Platform = (*Platform)(nil)

// Probe indexes the call counters.
type Probe int

const (
	SimulatorProbe Probe = iota
	DebugBuildProbe
	ProvisionProbe
	ReceiptProbe
	DebuggerProbe
	ExecutableProbe
	PowerProbe
)

// Calls returns how many times the given probe has run.
func (p *Platform) Calls(which Probe) int {
	return int(p.calls[which].Load())
}

func (p *Platform) IsSimulator() bool {
	p.calls[SimulatorProbe].Add(1)
	return p.Simulator
}

func (p *Platform) IsDebugBuild() bool {
	p.calls[DebugBuildProbe].Add(1)
	return p.DebugBuild
}

func (p *Platform) HasEmbeddedProvision() (bool, error) {
	p.calls[ProvisionProbe].Add(1)
	return p.EmbeddedProvision, p.ProvisionErr
}

func (p *Platform) ReceiptName() (string, error) {
	p.calls[ReceiptProbe].Add(1)
	return p.Receipt, p.ReceiptErr
}

func (p *Platform) IsDebuggerAttached() (bool, error) {
	p.calls[DebuggerProbe].Add(1)
	return p.DebuggerAttached, p.DebuggerErr
}

func (p *Platform) ExecutablePath() (string, error) {
	p.calls[ExecutableProbe].Add(1)
	return p.Executable, p.ExecutableErr
}

func (p *Platform) PowerState() (probe.PowerState, error) {
	p.calls[PowerProbe].Add(1)
	return p.Power, p.PowerErr
}
