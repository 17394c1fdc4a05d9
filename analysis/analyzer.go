package analysis

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/skillsenselab/speakerkit/acoustic"
	"github.com/skillsenselab/speakerkit/errors"
	"github.com/skillsenselab/speakerkit/logger"
	"github.com/skillsenselab/speakerkit/observability"
	"github.com/skillsenselab/speakerkit/version"
	"github.com/skillsenselab/speakerkit/voiceprint"
)

// Analyzer runs the conversation analysis pipeline. It holds configuration
// and optional providers but no per-conversation state; a single Analyzer
// is safe for concurrent use and every Analyze call is independent.
type Analyzer struct {
	opts       Options
	log        *logger.Logger
	metrics    *observability.Metrics
	acoustic   acoustic.Provider
	voiceprint voiceprint.Provider
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithOptions replaces the default analysis options. Zero fields are filled
// with their documented defaults.
func WithOptions(opts Options) Option {
	return func(a *Analyzer) { a.opts = opts }
}

// WithLogger sets the logger used by the analyzer and its stages.
func WithLogger(l *logger.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

// WithMetrics sets the metric instruments recorded during analysis.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithAcousticProvider sets the provider used to measure acoustic
// characteristics. Without one, acoustic values are placeholders and the
// affected speakers are marked unmeasured.
func WithAcousticProvider(p acoustic.Provider) Option {
	return func(a *Analyzer) { a.acoustic = p }
}

// WithVoiceprintProvider sets the provider consulted to recognize speakers
// across conversations. Without one, identities stay within-conversation.
func WithVoiceprintProvider(p voiceprint.Provider) Option {
	return func(a *Analyzer) { a.voiceprint = p }
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{opts: DefaultOptions()}
	for _, o := range opts {
		o(a)
	}
	a.opts.ApplyDefaults()
	if a.log == nil {
		a.log = logger.Get("analysis")
	}
	return a
}

// Analyze runs the full pipeline over a time-ordered transcript and returns
// the analysis artifact. nameHints maps speaker hints (as they appear on
// segments) to display names and may be nil. An empty transcript is not an
// error; it yields an artifact with no speakers. The same input always
// yields the same artifact, except for AnalysisID.
func (a *Analyzer) Analyze(ctx context.Context, segments []Segment, nameHints map[string]string) (*ConversationAnalysis, error) {
	analysisID := uuid.NewString()
	ctx = logger.ContextWithAnalysisID(ctx, analysisID)
	log := a.log.WithContext(ctx)

	rc := observability.NewRunContext(analysisID, a.metrics)
	ctx, span := rc.StartRun(ctx)

	if err := a.opts.Validate(); err != nil {
		err = errors.Validation(err.Error())
		rc.EndRun(ctx, span, "error", len(segments), 0, err)
		return nil, err
	}

	if err := validateSegments(segments); err != nil {
		rc.EndRun(ctx, span, "invalid", len(segments), 0, err)
		if a.metrics != nil {
			code := string(errors.ErrCodeInvalidInput)
			if appErr, ok := errors.AsAppError(err); ok {
				code = string(appErr.Code)
			}
			a.metrics.RecordError(ctx, code, "analysis")
		}
		log.Warn("transcript rejected",
			logger.MergeWithError(logger.Fields(logger.FieldSegmentCount, len(segments)), err))
		return nil, err
	}

	result := a.run(ctx, analysisID, segments, nameHints)

	rc.EndRun(ctx, span, "ok", len(segments), len(result.Speakers), nil)
	log.Info("analysis complete", logger.Fields(
		logger.FieldAnalysisID, analysisID,
		logger.FieldSegmentCount, len(segments),
		logger.FieldSpeakerCount, len(result.Speakers),
		"duration_s", result.Duration,
	))
	return result, nil
}

// run executes the pipeline stages over a validated transcript.
func (a *Analyzer) run(ctx context.Context, analysisID string, segments []Segment, nameHints map[string]string) *ConversationAnalysis {
	result := &ConversationAnalysis{
		AnalysisID:      analysisID,
		EngineVersion:   version.Version,
		Speakers:        []SpeakerProfile{},
		SpeakingTime:    make(map[string]float64),
		Characteristics: make(map[string]VoiceCharacteristics),
	}
	if len(segments) == 0 {
		result.TurnTaking = a.analyzeTurnTaking(nil)
		result.Confidence = a.scoreConfidence(nil, nil)
		result.Insights = synthesizeInsights(nil, result.TurnTaking)
		return result
	}

	span := segments[len(segments)-1].End - segments[0].Start
	result.Duration = span

	cctx, cspan := observability.StartSpan(ctx, observability.SpanCluster)
	clusters := clusterSegments(segments, a.opts)
	observability.SetSpanAttribute(cctx, observability.AttrSpeakerCount, len(clusters.order))
	cspan.End()

	ictx, ispan := observability.StartSpan(ctx, observability.SpanIdentity)
	identities := a.assignIdentities(ictx, clusters, nameHints)
	ispan.End()

	speakerOf := make(map[string]string, len(identities))
	for _, id := range identities {
		speakerOf[id.clusterID] = id.speakerID
	}
	labeled := make([]labeledSegment, len(segments))
	for i, seg := range segments {
		labeled[i] = labeledSegment{seg: seg, speakerID: speakerOf[clusters.assignments[i]]}
	}

	// Per-speaker extraction is independent; fan out one goroutine per
	// speaker, bounded by Options.Workers. Each goroutine writes only its
	// own slot.
	type speakerResult struct {
		characteristics VoiceCharacteristics
		participation   ParticipationMetrics
	}
	ectx, espan := observability.StartSpan(ctx, observability.SpanCharacteristics)
	results := make([]speakerResult, len(identities))
	sem := make(chan struct{}, a.workerCount(len(identities)))
	var wg sync.WaitGroup
	for i, id := range identities {
		wg.Add(1)
		go func(i int, id identity) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			segs := clusters.segments[id.clusterID]
			results[i].characteristics = a.extractCharacteristics(ectx, id.speakerID, segs)
			results[i].participation = a.calculateParticipation(id.speakerID, segs, labeled, span)
		}(i, id)
	}
	wg.Wait()
	espan.End()

	_, tspan := observability.StartSpan(ctx, observability.SpanTurnTaking)
	tt := a.analyzeTurnTaking(labeled)
	result.TurnTaking = tt
	tspan.End()

	for i, id := range identities {
		profile := SpeakerProfile{
			ID:                       id.speakerID,
			Name:                     id.name,
			FirstAppearance:          i,
			IdentificationConfidence: id.confidence,
			Characteristics:          results[i].characteristics,
			Pattern:                  a.summarizePattern(id.speakerID, tt, span),
			Participation:            results[i].participation,
			RecognitionHistory:       id.history,
		}
		result.Speakers = append(result.Speakers, profile)
		result.SpeakingTime[id.speakerID] = profile.Participation.TotalSpeakingTime
		result.Characteristics[id.speakerID] = profile.Characteristics
	}

	_, fspan := observability.StartSpan(ctx, observability.SpanConfidence)
	result.Confidence = a.scoreConfidence(result.Speakers, segments)
	fspan.End()

	_, nspan := observability.StartSpan(ctx, observability.SpanInsights)
	result.Insights = synthesizeInsights(result.Speakers, tt)
	nspan.End()

	return result
}

// workerCount bounds the extraction fan-out. Zero Workers means one
// goroutine per speaker.
func (a *Analyzer) workerCount(speakers int) int {
	if speakers < 1 {
		return 1
	}
	if a.opts.Workers > 0 && a.opts.Workers < speakers {
		return a.opts.Workers
	}
	return speakers
}
