package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillsenselab/speakerkit/logger"
	"github.com/skillsenselab/speakerkit/util"
	"github.com/skillsenselab/speakerkit/voiceprint"
)

// Identity observation sources recorded in a profile's recognition history.
const (
	sourceHint       = "hint"
	sourceHeuristic  = "heuristic"
	sourceVoiceprint = "voiceprint"
)

// identity is one cluster's resolved speaker identity.
type identity struct {
	clusterID  string
	speakerID  string
	name       string
	confidence float64
	history    []RecognitionEvent
}

// assignIdentities canonicalizes cluster ids into stable speaker ids ordered
// by first appearance and attaches display names from the hint map. When a
// voiceprint provider is available it is consulted per cluster; a match
// revises the display name and confidence and is appended to the history.
// Voiceprint failures degrade to the heuristic identity, never abort.
func (a *Analyzer) assignIdentities(ctx context.Context, c clustering, nameHints map[string]string) []identity {
	identities := make([]identity, 0, len(c.order))
	for i, clusterID := range c.order {
		segs := c.segments[clusterID]

		id := identity{
			clusterID: clusterID,
			speakerID: fmt.Sprintf("speaker_%d", i),
			name:      nameHints[clusterID],
		}
		source := sourceHeuristic
		id.confidence = a.opts.InferredConfidence
		if c.hinted[clusterID] {
			source = sourceHint
			id.confidence = a.opts.HintedConfidence
		}
		id.history = append(id.history, RecognitionEvent{
			Timestamp:  segs[0].Start,
			Confidence: id.confidence,
			Source:     source,
		})

		if a.voiceprint != nil {
			a.lookupVoiceprint(ctx, &id, segs)
		}
		identities = append(identities, id)
	}
	return identities
}

func (a *Analyzer) lookupVoiceprint(ctx context.Context, id *identity, segs []Segment) {
	if !a.voiceprint.IsAvailable(ctx) {
		a.log.Warn("voiceprint provider unavailable, keeping heuristic identity",
			logger.Fields(logger.FieldSpeakerID, id.speakerID))
		return
	}

	texts := make([]string, 0, len(segs))
	speaking := 0.0
	hint := ""
	for _, s := range segs {
		texts = append(texts, s.Text)
		speaking += s.Duration()
		if s.SpeakerHint != "" {
			hint = s.SpeakerHint
		}
	}

	match, err := a.voiceprint.Identify(ctx, voiceprint.IdentifyRequest{
		ClusterID:    id.clusterID,
		SpeakerHint:  hint,
		SampleText:   strings.Join(texts, " "),
		SpeakingTime: speaking,
	})
	if err != nil {
		a.log.Warn("voiceprint lookup failed, keeping heuristic identity",
			logger.MergeWithError(logger.Fields(logger.FieldSpeakerID, id.speakerID), err))
		return
	}
	if match == nil {
		return
	}

	id.name = match.SpeakerName
	id.confidence = util.Clamp(match.Confidence, 0, 1)
	id.history = append(id.history, RecognitionEvent{
		Timestamp:  segs[len(segs)-1].End,
		Confidence: id.confidence,
		Source:     sourceVoiceprint,
	})
}
