// Package observability provides OpenTelemetry tracing and metrics
// integration for the analysis engine.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("speakerkit"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanCluster)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("speakerkit"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("speakerkit"))
//	metrics.RecordAnalysisEnd(ctx, "ok", segments, speakers, duration)
//
// RunContext ties both together for a single analysis run:
//
//	rc := observability.NewRunContext(analysisID, metrics)
//	ctx, span := rc.StartRun(ctx)
//	defer rc.EndRun(ctx, span, "ok", segments, speakers, nil)
package observability
