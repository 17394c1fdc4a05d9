package analysis

import "github.com/skillsenselab/speakerkit/util"

// scoreConfidence aggregates per-speaker identification confidence into the
// overall scalar and builds the temporal series. Per-speaker confidence is
// the identity-assignment confidence minus the placeholder penalty when the
// speaker's acoustic characteristics are not real measurements. This stage
// stays deliberately thin so a calibrated model can replace the heuristic
// without touching downstream insight logic.
func (a *Analyzer) scoreConfidence(profiles []SpeakerProfile, segments []Segment) ConfidenceSummary {
	summary := ConfidenceSummary{
		PerSpeaker: make(map[string]float64, len(profiles)),
		Temporal:   make([]ConfidencePoint, 0, len(segments)),
	}

	var values []float64
	for _, p := range profiles {
		conf := p.IdentificationConfidence
		if !p.Characteristics.Measured {
			conf = util.Clamp(conf-a.opts.PlaceholderPenalty, 0, 1)
		}
		summary.PerSpeaker[p.ID] = conf
		values = append(values, conf)
	}
	summary.Overall = mean(values)

	for _, s := range segments {
		summary.Temporal = append(summary.Temporal, ConfidencePoint{
			Timestamp:  s.Start,
			Confidence: util.DerefOr(s.Confidence, a.opts.NeutralConfidence),
		})
	}
	return summary
}
