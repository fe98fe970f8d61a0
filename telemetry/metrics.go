package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/getlantern/buildenv"
)

const instrumentationName = "github.com/getlantern/buildenv/telemetry"

// RegisterMetrics registers the buildenv.info gauge with mp. The gauge always observes 1 and
// carries the classifier's attributes, so dashboards can split any other metric by build
// environment. Call Unregister on the result to stop reporting.
func RegisterMetrics(mp metric.MeterProvider, c *buildenv.Classifier) (metric.Registration, error) {
	meter := mp.Meter(instrumentationName)
	info, err := meter.Int64ObservableGauge("buildenv.info",
		metric.WithDescription("Build environment of the running process, always 1"))
	if err != nil {
		return nil, fmt.Errorf("creating buildenv.info gauge: %w", err)
	}
	attrs := metric.WithAttributeSet(attribute.NewSet(Attributes(c)...))
	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(info, 1, attrs)
		return nil
	}, info)
	if err != nil {
		return nil, fmt.Errorf("registering buildenv.info callback: %w", err)
	}
	return reg, nil
}
