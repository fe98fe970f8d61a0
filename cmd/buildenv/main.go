// Command buildenv prints how the current binary classifies its build environment. It is mostly
// useful inside packaged app bundles and in CI, where --expect guards against shipping a build with
// the wrong signing configuration.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/goccy/go-yaml"
	"go.opentelemetry.io/otel"

	"github.com/getlantern/buildenv"
	"github.com/getlantern/buildenv/common"
	"github.com/getlantern/buildenv/common/atomicfile"
	"github.com/getlantern/buildenv/common/reporting"
	"github.com/getlantern/buildenv/config"
	"github.com/getlantern/buildenv/probe"
	"github.com/getlantern/buildenv/telemetry"
)

const tracerName = "github.com/getlantern/buildenv/cmd/buildenv"

var errUnexpectedEnvironment = errors.New("unexpected environment")

type args struct {
	Config   string `arg:"--config,env:BUILDENV_CONFIG" help:"path to a JSON config file (default: buildenv.json in the working directory)"`
	Bundle   string `arg:"--bundle" help:"application bundle root (default: executable directory)"`
	Receipt  string `arg:"--receipt" help:"distribution receipt path"`
	Format   string `arg:"--format" default:"text" help:"output format: text, json or yaml"`
	Out      string `arg:"-o,--out" help:"write the report to this file instead of stdout"`
	Expect   string `arg:"--expect" help:"fail unless the detected environment has this name"`
	LogLevel string `arg:"--log-level" help:"trace, debug, info, warn or error"`
	LogFile  string `arg:"--log-file" help:"also write logs to this rotated file"`
}

func (args) Description() string {
	return "Reports the build/distribution environment (simulator, debug, adhoc, testflight, appStore, other)."
}

func (args) Version() string {
	return common.Name + " " + common.Version
}

func main() {
	var a args
	arg.MustParse(&a)
	if err := run(a, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", common.Name, err)
		os.Exit(1)
	}
}

func run(a args, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(a)
	if err != nil {
		return err
	}

	log, closeLog, err := common.InitLogger(stderr, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	if common.IsIOS() && cfg.ReceiptPath == "" {
		log.Warn("No receipt path configured; TestFlight installs will report as App Store")
	}

	c := buildenv.New(probe.NewHost(cfg.ProbeOptions()), buildenv.WithLogger(log))
	if cfg.SentryDSN != "" {
		if err := reporting.Init(cfg.SentryDSN, common.Version, c); err != nil {
			log.Error("Failed to initialize crash reporting", "error", err)
		} else {
			defer func() {
				if r := recover(); r != nil {
					reporting.PanicListener(fmt.Sprint(r))
					panic(r)
				}
			}()
		}
	}

	ctx, span := otel.Tracer(tracerName).Start(context.Background(), "classify")
	report := c.Report()
	telemetry.RecordClassification(ctx, c)
	span.End()
	log.Debug("Classified build",
		"environment", report.Environment,
		"resource", telemetry.Resource(cfg.ServiceName, common.Version, c).String())

	out, err := encode(report, a.Format)
	if err != nil {
		return err
	}
	if a.Out != "" {
		if err := atomicfile.WriteFile(a.Out, out, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	} else if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if a.Expect != "" {
		want, err := buildenv.ParseEnvironment(a.Expect)
		if err != nil {
			return err
		}
		if report.Environment != want {
			return fmt.Errorf("%w: got %s, want %s", errUnexpectedEnvironment, report.Environment, want)
		}
	}
	return nil
}

// loadConfig reads the config file and applies command line flags on top. A missing config file
// leaves the defaults in place.
func loadConfig(a args) (*config.Config, error) {
	path := a.Config
	if path == "" {
		path = common.ConfigFileName
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if a.Bundle != "" {
		cfg.BundlePath = a.Bundle
	}
	if a.Receipt != "" {
		cfg.ReceiptPath = a.Receipt
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	if a.LogFile != "" {
		cfg.LogFile = a.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func encode(report buildenv.Report, format string) ([]byte, error) {
	switch format {
	case "", "text":
		return []byte(report.String()), nil
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
