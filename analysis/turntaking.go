package analysis

// labeledSegment pairs a segment with its resolved speaker id.
type labeledSegment struct {
	seg       Segment
	speakerID string
}

// analyzeTurnTaking reconstructs the chronological turn sequence and
// classifies every speaker change by its timing gap: an overlap beyond the
// interruption threshold is an interruption, a silence beyond the
// speaker-change gap is a gap, anything else is smooth. A single-speaker
// conversation yields turns but no transitions.
func (a *Analyzer) analyzeTurnTaking(labeled []labeledSegment) TurnTaking {
	tt := TurnTaking{
		Turns:              make([]Turn, 0, len(labeled)),
		Transitions:        make([]Transition, 0),
		InterruptionMatrix: make(map[string]map[string]int),
		AverageTurnLength:  make(map[string]float64),
	}

	durations := make(map[string][]float64)
	for i, ls := range labeled {
		tt.Turns = append(tt.Turns, Turn{
			SpeakerID: ls.speakerID,
			Start:     ls.seg.Start,
			End:       ls.seg.End,
		})
		durations[ls.speakerID] = append(durations[ls.speakerID], ls.seg.Duration())

		if i == 0 || labeled[i-1].speakerID == ls.speakerID {
			continue
		}

		prev := labeled[i-1]
		gap := ls.seg.Start - prev.seg.End
		kind := TransitionSmooth
		switch {
		case gap < -a.opts.InterruptionOverlap:
			kind = TransitionInterruption
			if tt.InterruptionMatrix[ls.speakerID] == nil {
				tt.InterruptionMatrix[ls.speakerID] = make(map[string]int)
			}
			tt.InterruptionMatrix[ls.speakerID][prev.speakerID]++
		case gap > a.opts.SpeakerChangeGap:
			kind = TransitionGap
		}
		tt.Transitions = append(tt.Transitions, Transition{
			From: prev.speakerID,
			To:   ls.speakerID,
			At:   ls.seg.Start,
			Gap:  gap,
			Kind: kind,
		})
	}

	for id, ds := range durations {
		tt.AverageTurnLength[id] = mean(ds)
	}
	return tt
}

// summarizePattern derives one speaker's turn-taking summary from the
// reconstructed structure.
func (a *Analyzer) summarizePattern(speakerID string, tt TurnTaking, span float64) SpeakingPattern {
	p := SpeakingPattern{MeanTurnLength: tt.AverageTurnLength[speakerID]}

	interruptions := 0
	for _, n := range tt.InterruptionMatrix[speakerID] {
		interruptions += n
	}
	if span > 0 {
		p.InterruptionRate = float64(interruptions) / (span / 60.0)
	}

	var latencies []float64
	turnsTaken := 0
	initiations := 0
	if len(tt.Turns) > 0 && tt.Turns[0].SpeakerID == speakerID {
		turnsTaken++
		initiations++ // opening the conversation counts as initiating a topic
	}
	for _, tr := range tt.Transitions {
		if tr.To != speakerID {
			continue
		}
		turnsTaken++
		if tr.Kind == TransitionGap {
			initiations++
		}
		if tr.Gap >= 0 && tr.Gap <= a.opts.ResponseWindow {
			latencies = append(latencies, tr.Gap)
		}
	}
	p.MeanResponseLatency = mean(latencies)
	if turnsTaken > 0 {
		p.TopicInitiationRate = float64(initiations) / float64(turnsTaken)
	}
	return p
}
