package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunContext holds observability context for a single analysis run.
type RunContext struct {
	AnalysisID string
	StartTime  time.Time
	Metrics    *Metrics
}

// NewRunContext creates a run context for the given analysis id.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(analysisID string, metrics *Metrics) *RunContext {
	return &RunContext{
		AnalysisID: analysisID,
		StartTime:  time.Now(),
		Metrics:    metrics,
	}
}

// runContextKey is the context key for RunContext.
type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// StartRun starts the root span for an analysis run and records the
// run-start metric.
func (rc *RunContext) StartRun(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanAnalyze)
	span.SetAttributes(attribute.String(AttrAnalysisID, rc.AnalysisID))

	if rc.Metrics != nil {
		rc.Metrics.RecordAnalysisStart(ctx)
	}
	return WithRunContext(ctx, rc), span
}

// EndRun ends the root span and records run-end metrics.
func (rc *RunContext) EndRun(ctx context.Context, span trace.Span, status string, segments, speakers int, err error) {
	duration := time.Since(rc.StartTime)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrSegmentCount, segments),
		attribute.Int(AttrSpeakerCount, speakers),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordAnalysisEnd(ctx, status, segments, speakers, duration)
	}
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
