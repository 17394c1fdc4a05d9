package analysis

import "fmt"

// Options contains the tunable thresholds and heuristics of the engine.
// Every value has a documented default; zero values are replaced by
// ApplyDefaults. The struct is viper-loadable under an "analysis" key.
type Options struct {
	// SpeakerChangeGap is the silence in seconds above which a hint-less
	// segment is treated as a likely speaker change. The heuristic is
	// intentionally conservative: gaps at or below this threshold keep the
	// previous speaker.
	SpeakerChangeGap float64 `yaml:"speaker_change_gap" mapstructure:"speaker_change_gap"`
	// PauseGap is the silence in seconds between a speaker's own consecutive
	// segments that counts as a pause.
	PauseGap float64 `yaml:"pause_gap" mapstructure:"pause_gap"`
	// InterruptionOverlap is the overlap in seconds beyond which a speaker
	// change is classified as an interruption.
	InterruptionOverlap float64 `yaml:"interruption_overlap" mapstructure:"interruption_overlap"`
	// ResponseWindow is the maximum silence in seconds for a segment to count
	// as a reply to the previous speaker.
	ResponseWindow float64 `yaml:"response_window" mapstructure:"response_window"`
	// NeutralConfidence substitutes for segments whose transcriber reported
	// no confidence.
	NeutralConfidence float64 `yaml:"neutral_confidence" mapstructure:"neutral_confidence"`
	// HintedConfidence is the identification confidence for clusters built
	// from explicit speaker hints.
	HintedConfidence float64 `yaml:"hinted_confidence" mapstructure:"hinted_confidence"`
	// InferredConfidence is the identification confidence for clusters built
	// by the timing heuristic alone.
	InferredConfidence float64 `yaml:"inferred_confidence" mapstructure:"inferred_confidence"`
	// PlaceholderPenalty is subtracted from a speaker's confidence when
	// acoustic characteristics are placeholders rather than measurements.
	PlaceholderPenalty float64 `yaml:"placeholder_penalty" mapstructure:"placeholder_penalty"`
	// FillerWords is the token list counted as fillers. Multi-word entries
	// are matched as adjacent token sequences.
	FillerWords []string `yaml:"filler_words" mapstructure:"filler_words"`
	// Workers bounds the per-speaker extraction goroutines. Zero means one
	// worker per speaker.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// DefaultFillerWords is the default filler token list.
var DefaultFillerWords = []string{"um", "uh", "like", "you know", "basically", "actually"}

// DefaultOptions returns Options with all defaults applied.
func DefaultOptions() Options {
	var o Options
	o.ApplyDefaults()
	return o
}

// ApplyDefaults fills zero fields with their documented defaults.
func (o *Options) ApplyDefaults() {
	if o.SpeakerChangeGap == 0 {
		o.SpeakerChangeGap = 2.0
	}
	if o.PauseGap == 0 {
		o.PauseGap = 1.0
	}
	if o.InterruptionOverlap == 0 {
		o.InterruptionOverlap = 0.5
	}
	if o.ResponseWindow == 0 {
		o.ResponseWindow = 5.0
	}
	if o.NeutralConfidence == 0 {
		o.NeutralConfidence = 0.5
	}
	if o.HintedConfidence == 0 {
		o.HintedConfidence = 0.9
	}
	if o.InferredConfidence == 0 {
		o.InferredConfidence = 0.6
	}
	if o.PlaceholderPenalty == 0 {
		o.PlaceholderPenalty = 0.1
	}
	if len(o.FillerWords) == 0 {
		o.FillerWords = DefaultFillerWords
	}
}

// Validate validates the options.
func (o *Options) Validate() error {
	if o.SpeakerChangeGap <= 0 {
		return fmt.Errorf("analysis.speaker_change_gap must be positive (got: %v)", o.SpeakerChangeGap)
	}
	if o.PauseGap <= 0 {
		return fmt.Errorf("analysis.pause_gap must be positive (got: %v)", o.PauseGap)
	}
	if o.InterruptionOverlap <= 0 {
		return fmt.Errorf("analysis.interruption_overlap must be positive (got: %v)", o.InterruptionOverlap)
	}
	if o.ResponseWindow <= 0 {
		return fmt.Errorf("analysis.response_window must be positive (got: %v)", o.ResponseWindow)
	}
	for name, v := range map[string]float64{
		"neutral_confidence":  o.NeutralConfidence,
		"hinted_confidence":   o.HintedConfidence,
		"inferred_confidence": o.InferredConfidence,
		"placeholder_penalty": o.PlaceholderPenalty,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("analysis.%s must be between 0 and 1 (got: %v)", name, v)
		}
	}
	if o.Workers < 0 {
		return fmt.Errorf("analysis.workers must not be negative (got: %d)", o.Workers)
	}
	return nil
}
