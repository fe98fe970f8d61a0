// Package telemetry describes the running build to OpenTelemetry, so traces and metrics exported by
// the embedding application carry the build environment.
package telemetry

import (
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/getlantern/buildenv"
	"github.com/getlantern/buildenv/common"
)

// Attributes returns the resource attributes for the classifier: deployment.environment plus one
// buildenv.* attribute per signal.
func Attributes(c *buildenv.Classifier) []attribute.KeyValue {
	report := c.Report()
	attrs := []attribute.KeyValue{
		semconv.DeploymentEnvironmentKey.String(report.Environment.String()),
		attribute.String("platform", common.Platform()),
		attribute.Bool("platform.mobile", common.IsMobile()),
		attribute.String("os.arch", runtime.GOARCH),
		attribute.String("buildenv.power_state", report.PowerState.String()),
	}
	for name, value := range report.Signals() {
		attrs = append(attrs, attribute.Bool("buildenv."+name, value))
	}
	return attrs
}

// Resource builds an OpenTelemetry resource for the given service, to be passed to the embedding
// application's tracer and meter providers.
func Resource(serviceName, version string, c *buildenv.Classifier) *resource.Resource {
	attrs := append([]attribute.KeyValue{
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(version),
	}, Attributes(c)...)
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}
