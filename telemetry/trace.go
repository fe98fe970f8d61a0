package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/getlantern/buildenv"
)

// ClassifiedEvent is the name of the span event added by RecordClassification.
const ClassifiedEvent = "buildenv.classified"

// RecordClassification adds a ClassifiedEvent with the classifier's attributes to the span in ctx.
// It does nothing when ctx carries no recording span.
func RecordClassification(ctx context.Context, c *buildenv.Classifier) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(ClassifiedEvent, trace.WithAttributes(Attributes(c)...))
}
