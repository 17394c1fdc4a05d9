package analysis

import "github.com/skillsenselab/speakerkit/util"

// calculateParticipation computes one speaker's share of the conversation.
// The labeled slice is the full transcript with resolved speaker ids, read
// only to decide whether a segment is a reply to a different speaker.
func (a *Analyzer) calculateParticipation(speakerID string, segs []Segment, labeled []labeledSegment, span float64) ParticipationMetrics {
	p := ParticipationMetrics{SegmentCount: len(segs)}
	for _, s := range segs {
		p.TotalSpeakingTime += s.Duration()
		p.WordCount += wordCount(s.Text)
	}
	if span > 0 {
		p.DominanceScore = p.TotalSpeakingTime / span
	}

	if len(segs) > 0 {
		questions := 0
		responses := 0
		for i, ls := range labeled {
			if ls.speakerID != speakerID {
				continue
			}
			if endsWithQuestion(ls.seg.Text) {
				questions++
			}
			if i > 0 && labeled[i-1].speakerID != speakerID &&
				ls.seg.Start-labeled[i-1].seg.End <= a.opts.ResponseWindow {
				responses++
			}
		}
		questionRate := float64(questions) / float64(len(segs))
		responseRate := float64(responses) / float64(len(segs))
		p.EngagementLevel = util.Clamp((questionRate*0.4+responseRate*0.6)*2, 0, 1)
	}
	return p
}
