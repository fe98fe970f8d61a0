// Package reporting configures Sentry crash reporting with the build environment, so events from
// debug, TestFlight and App Store builds can be told apart.
package reporting

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/getlantern/buildenv"
	"github.com/getlantern/buildenv/common"
)

const flushTimeout = 6 * time.Second

// Init initializes the Sentry client. The client's environment is the classifier's environment name
// and every boolean signal is set as a tag. An empty dsn leaves the client disabled.
func Init(dsn, version string, c *buildenv.Classifier) error {
	report := c.Report()
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
		Release:          version,
		Environment:      report.Environment.String(),
	})
	if err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(Tags(report))
	})
	return nil
}

// Tags converts the report's signals to Sentry tags.
func Tags(report buildenv.Report) map[string]string {
	tags := make(map[string]string, len(report.Signals())+3)
	for name, value := range report.Signals() {
		tags["buildenv."+name] = fmt.Sprint(value)
	}
	tags["buildenv.environment"] = report.Environment.String()
	tags["buildenv.power_state"] = report.PowerState.String()
	tags["platform.mobile"] = fmt.Sprint(common.IsMobile())
	return tags
}

// PanicListener reports msg as a fatal event and waits for it to be sent.
func PanicListener(msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelFatal)
		sentry.CaptureMessage(msg)
	})
	if result := sentry.Flush(flushTimeout); !result {
		slog.Error("sentry.Flush: timeout")
	}
}
