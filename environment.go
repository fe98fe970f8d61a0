package buildenv

import (
	"errors"
	"fmt"
	"strings"
)

// Environment is the build/distribution channel the running binary was installed from.
type Environment int

const (
	// Other is the fallback when no known channel matches.
	Other Environment = iota
	Simulator
	Debug
	AdHoc
	TestFlight
	AppStore
)

// ErrUnknownEnvironment is returned when parsing a name that does not map to an Environment.
var ErrUnknownEnvironment = errors.New("unknown environment")

var environmentNames = map[Environment]string{
	Simulator:  "simulator",
	Debug:      "debug",
	AdHoc:      "adhoc",
	TestFlight: "testflight",
	AppStore:   "appStore",
	Other:      "other",
}

// Environments lists every category in priority order, highest first.
func Environments() []Environment {
	return []Environment{Simulator, Debug, AdHoc, TestFlight, AppStore, Other}
}

func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return environmentNames[Other]
}

// ParseEnvironment returns the Environment with the given name. Matching is case-insensitive.
func ParseEnvironment(name string) (Environment, error) {
	for env, n := range environmentNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return env, nil
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
}

func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}
