package analysis

import (
	"context"
	"fmt"

	"github.com/skillsenselab/speakerkit/acoustic"
	"github.com/skillsenselab/speakerkit/errors"
	"github.com/skillsenselab/speakerkit/logger"
)

// Placeholder acoustic values used when no provider supplies measurements.
// They stand in for unavailable signal analysis and are flagged via
// VoiceCharacteristics.Measured so consumers never mistake them for data.
const (
	placeholderPitch             = 150.0
	placeholderEnergy            = 0.5
	placeholderClarity           = 0.7
	placeholderEmotionalVariance = 0.3
)

// extractCharacteristics derives one speaker's voice and linguistic features
// from the speaker's chronological segments.
func (a *Analyzer) extractCharacteristics(ctx context.Context, speakerID string, segs []Segment) VoiceCharacteristics {
	ch := VoiceCharacteristics{
		Pitch:             placeholderPitch,
		Energy:            placeholderEnergy,
		Clarity:           placeholderClarity,
		EmotionalVariance: placeholderEmotionalVariance,
	}
	if len(segs) == 0 {
		return ch
	}

	speaking := 0.0
	words := 0
	var segmentPaces []float64
	var tokens []string
	text := ""
	for _, s := range segs {
		d := s.Duration()
		speaking += d
		w := wordCount(s.Text)
		words += w
		if d > 0 {
			segmentPaces = append(segmentPaces, float64(w)/(d/60.0))
		}
		tokens = append(tokens, tokenize(s.Text)...)
		if text != "" {
			text += " "
		}
		text += s.Text
	}

	if speaking > 0 {
		ch.WordsPerMinute = float64(words) / (speaking / 60.0)
	}
	ch.PaceVariance = variance(segmentPaces)
	ch.PausesPerMinute = a.pauseFrequency(segs)

	if len(tokens) > 0 {
		distinct := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			distinct[t] = struct{}{}
		}
		ch.VocabularyComplexity = float64(len(distinct)) / float64(len(tokens))
		ch.FillerWordRate = float64(countFillers(tokens, a.opts.FillerWords)) / float64(len(tokens))
	}

	sentences := splitSentences(text)
	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += len(tokenize(s))
		}
		ch.MeanSentenceLength = float64(total) / float64(len(sentences))
	}

	if a.acoustic != nil {
		a.measureAcoustics(ctx, speakerID, segs, &ch)
	}
	return ch
}

// pauseFrequency counts silences above the pause threshold between the
// speaker's own consecutive segments, normalized per minute of the speaker's
// span (first start to last end).
func (a *Analyzer) pauseFrequency(segs []Segment) float64 {
	span := segs[len(segs)-1].End - segs[0].Start
	if span <= 0 {
		return 0
	}
	pauses := 0
	for i := 1; i < len(segs); i++ {
		if segs[i].Start-segs[i-1].End > a.opts.PauseGap {
			pauses++
		}
	}
	return float64(pauses) / (span / 60.0)
}

// measureAcoustics replaces placeholder acoustic values with provider
// measurements averaged over the speaker's segments. Provider errors and
// panics degrade to placeholders for this speaker only; the failure is
// logged and the analysis continues.
func (a *Analyzer) measureAcoustics(ctx context.Context, speakerID string, segs []Segment, ch *VoiceCharacteristics) {
	resp, err := a.safeExtract(ctx, segs)
	if err != nil {
		a.log.Warn("acoustic extraction failed, using placeholder characteristics",
			logger.MergeWithError(logger.Fields(logger.FieldSpeakerID, speakerID), err))
		if a.metrics != nil {
			a.metrics.RecordDegraded(ctx, speakerID)
		}
		return
	}

	var pitch, energy, clarity, emo []float64
	for _, s := range segs {
		f, ok := resp.Features[s.ID]
		if !ok {
			continue
		}
		pitch = append(pitch, f.Pitch)
		energy = append(energy, f.Energy)
		clarity = append(clarity, f.Clarity)
		emo = append(emo, f.EmotionalVariance)
	}
	if len(pitch) == 0 {
		return
	}

	ch.Pitch = mean(pitch)
	ch.Energy = mean(energy)
	ch.Clarity = mean(clarity)
	ch.EmotionalVariance = mean(emo)
	ch.Measured = true
}

// safeExtract invokes the acoustic provider, converting panics into a typed
// computation error so a misbehaving provider cannot abort the analysis.
func (a *Analyzer) safeExtract(ctx context.Context, segs []Segment) (resp *acoustic.ExtractResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = errors.Computation("characteristic extraction", fmt.Errorf("acoustic provider panic: %v", r))
		}
	}()

	windows := make([]acoustic.Window, 0, len(segs))
	for _, s := range segs {
		windows = append(windows, acoustic.Window{SegmentID: s.ID, Start: s.Start, End: s.End})
	}
	resp, extractErr := a.acoustic.Extract(ctx, acoustic.ExtractRequest{Windows: windows})
	if extractErr != nil {
		return nil, errors.Computation("characteristic extraction", extractErr)
	}
	if resp == nil {
		return nil, errors.Computation("characteristic extraction", fmt.Errorf("acoustic provider returned no features"))
	}
	return resp, nil
}
